/*
Copyright © 2025 Sugar Labs
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/sugarlabs/aslo-catalog/pkg/generator"
	"github.com/sugarlabs/aslo-catalog/pkg/index"
	"github.com/sugarlabs/aslo-catalog/pkg/oci"
	"github.com/sugarlabs/aslo-catalog/pkg/serializer"
)

// buildCmdOptions holds parsed options for the build command.
type buildCmdOptions struct {
	bundlesDir  string
	siteDir     string
	mappingPath string
	summaryPath string
	format      serializer.Format
	checksums   bool
	noHTML      bool
	publish     string
	plainHTTP   bool
	insecureTLS bool
}

// parseBuildCmdOptions parses and validates command options.
func parseBuildCmdOptions(cmd *cli.Command) (*buildCmdOptions, error) {
	// Exactly two positional arguments: the bundles directory and the
	// site output directory.
	args := cmd.Args()
	if args.Len() != 2 {
		return nil, fmt.Errorf("expected exactly 2 arguments (BUNDLES_DIR SITE_DIR), got %d", args.Len())
	}

	opts := &buildCmdOptions{
		bundlesDir:  args.Get(0),
		siteDir:     args.Get(1),
		mappingPath: cmd.String("mapping"),
		summaryPath: cmd.String("summary"),
		format:      serializer.Format(cmd.String("format")),
		checksums:   cmd.Bool("checksums"),
		noHTML:      cmd.Bool("no-html"),
		publish:     cmd.String("publish"),
		plainHTTP:   cmd.Bool("plain-http"),
		insecureTLS: cmd.Bool("insecure-tls"),
	}

	if opts.format.IsUnknown() {
		return nil, fmt.Errorf("unknown output format: %q (supported: %v)",
			opts.format, serializer.SupportedFormats())
	}

	return opts, nil
}

func buildCmd() *cli.Command {
	return &cli.Command{
		Name:                  "build",
		EnableShellCompletion: true,
		Usage:                 "Generate the catalog site from a directory of activity bundles",
		ArgsUsage:             "BUNDLES_DIR SITE_DIR",
		Description: `Generates the static catalog site from the .xo activity bundles found
under BUNDLES_DIR, writing the result to SITE_DIR.

Each bundle contributes a metadata record (info.json), a search index
entry (js/index.js), its icon (icons/), a detail page (app/), and a copy
of the archive itself (bundles/). Bundles that cannot be fully processed
are listed in per-problem report files at the site root; a problem with
one bundle never aborts the run.

# Examples

Generate a site:
  aslo build ./bundles ./site

Use a custom metadata field mapping:
  aslo build --mapping mapping.yaml ./bundles ./site

Write the run summary to a file and add checksums:
  aslo build --summary run.yaml --checksums ./bundles ./site

Generate and publish the site to an OCI registry:
  aslo build --publish oci://ghcr.io/sugarlabs/aslo-catalog:v1 ./bundles ./site`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "mapping",
				Aliases: []string{"m"},
				Usage:   "Path to a YAML/JSON field-mapping file (default: built-in mapping)",
			},
			&cli.BoolFlag{
				Name:  "checksums",
				Usage: "Generate a sha256sum-compatible checksums.txt over the site files",
			},
			&cli.BoolFlag{
				Name:  "no-html",
				Usage: "Skip generation of per-activity HTML detail pages",
			},
			summaryFlag,
			formatFlag,
			&cli.StringFlag{
				Name:  "publish",
				Usage: "Push the generated site to an OCI registry (oci://registry/repository[:tag])",
			},
			&cli.BoolFlag{
				Name:  "plain-http",
				Usage: "Use HTTP instead of HTTPS for the OCI registry (for local development)",
			},
			&cli.BoolFlag{
				Name:  "insecure-tls",
				Usage: "Skip TLS certificate verification for the OCI registry",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts, err := parseBuildCmdOptions(cmd)
			if err != nil {
				return err
			}

			mapping := index.DefaultMapping()
			if opts.mappingPath != "" {
				mapping, err = index.LoadMapping(opts.mappingPath)
				if err != nil {
					return fmt.Errorf("failed to load mapping from %q: %w", opts.mappingPath, err)
				}
			}

			var ref *oci.Reference
			if opts.publish != "" {
				// Validate the publish target before doing any work.
				ref, err = oci.ParseReference(opts.publish)
				if err != nil {
					return err
				}
				if ref.Tag == "" {
					ref = ref.WithTag(version)
				}
			}

			slog.Info("generating catalog",
				"bundles", opts.bundlesDir,
				"site", opts.siteDir,
			)

			g, err := generator.New(
				generator.WithVersion(version),
				generator.WithMapping(mapping),
				generator.WithChecksums(opts.checksums),
				generator.WithHTMLPages(!opts.noHTML),
			)
			if err != nil {
				return err
			}

			rep, err := g.Build(ctx, opts.bundlesDir, opts.siteDir)
			if err != nil {
				slog.Error("catalog generation failed", "error", err)
				return err
			}

			if err := writeSummary(ctx, rep, opts); err != nil {
				return err
			}

			if rep.HasErrors() {
				slog.Warn("some bundles could not be fully processed",
					"problem_bundles", rep.ErrorCount(),
					"site", opts.siteDir,
				)
			}

			if ref != nil {
				result, err := oci.Push(ctx, oci.PushOptions{
					SiteDir:     opts.siteDir,
					Reference:   ref,
					Version:     version,
					PlainHTTP:   opts.plainHTTP,
					InsecureTLS: opts.insecureTLS,
				})
				if err != nil {
					return err
				}
				slog.Info("catalog site published",
					"reference", result.Reference,
					"digest", result.Digest,
				)
			}

			return nil
		},
	}
}

// writeSummary serializes the run report to the configured output, falling
// back to stdout when no --summary path is given.
func writeSummary(ctx context.Context, rep any, opts *buildCmdOptions) error {
	w := serializer.NewFileWriterOrStdout(opts.format, opts.summaryPath)
	defer func() { _ = w.Close() }()

	if err := w.Serialize(ctx, rep); err != nil {
		return fmt.Errorf("failed to write run summary: %w", err)
	}
	return nil
}
