/*
Copyright © 2025 Sugar Labs
SPDX-License-Identifier: Apache-2.0
*/

package generator

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/sugarlabs/aslo-catalog/pkg/bundle"
	"github.com/sugarlabs/aslo-catalog/pkg/checksum"
	"github.com/sugarlabs/aslo-catalog/pkg/index"
	"github.com/sugarlabs/aslo-catalog/pkg/report"
	"github.com/sugarlabs/aslo-catalog/pkg/site"
)

// Generator runs the full catalog generation batch: discovery, validation,
// extraction, index aggregation, and site output.
//
// A Generator is reusable; all per-run mutable state lives in the run
// context created by Build.
type Generator struct {
	mapping   index.FieldMapping
	extractor *bundle.Extractor
	version   string
	htmlPages bool
	checksums bool

	aggregator *index.Aggregator
}

// Option defines a functional option for configuring the Generator.
type Option func(*Generator)

// WithMapping sets the field-mapping table used for index aggregation.
// If nil, the default mapping is used.
func WithMapping(m index.FieldMapping) Option {
	return func(g *Generator) {
		if m != nil {
			g.mapping = m
		}
	}
}

// WithExtractor sets the bundle extractor.
func WithExtractor(e *bundle.Extractor) Option {
	return func(g *Generator) {
		if e != nil {
			g.extractor = e
		}
	}
}

// WithVersion sets the tool version recorded in the run report.
func WithVersion(version string) Option {
	return func(g *Generator) {
		g.version = version
	}
}

// WithHTMLPages enables or disables per-activity HTML detail pages.
// Default is enabled.
func WithHTMLPages(enabled bool) Option {
	return func(g *Generator) {
		g.htmlPages = enabled
	}
}

// WithChecksums enables generation of a checksums.txt over all written site
// files. Default is disabled.
func WithChecksums(enabled bool) Option {
	return func(g *Generator) {
		g.checksums = enabled
	}
}

// New creates a Generator. The field-mapping table is validated here, before
// any bundle is processed; an invalid table is a configuration defect and
// fails fast.
func New(opts ...Option) (*Generator, error) {
	g := &Generator{
		mapping:   index.DefaultMapping(),
		extractor: bundle.NewExtractor(),
		htmlPages: true,
	}
	for _, opt := range opts {
		opt(g)
	}

	aggregator, err := index.NewAggregator(index.WithMapping(g.mapping))
	if err != nil {
		return nil, err
	}
	g.aggregator = aggregator

	return g, nil
}

// run holds the mutable state of one generation pass: the record and entry
// lists plus the report buckets, owned exclusively by this run.
type run struct {
	writer  *site.Writer
	report  *report.Report
	records []bundle.Info
	entries []index.Entry
}

// Build performs one full batch pass: every discovered path is processed
// exactly once, per-bundle failures are bucketed rather than raised, and
// the report files are always written. Bundles are processed strictly
// sequentially, one archive open at a time.
func (g *Generator) Build(ctx context.Context, bundlesDir, siteDir string) (*report.Report, error) {
	start := time.Now()

	r := &run{
		writer: site.NewWriter(siteDir),
		report: report.New(g.version, bundlesDir, siteDir),
	}

	if err := r.writer.Bootstrap(); err != nil {
		return nil, err
	}

	paths, err := bundle.Discover(bundlesDir)
	if err != nil {
		return nil, err
	}
	r.report.Discovered = len(paths)

	valid, invalid := bundle.Partition(paths)
	for _, path := range invalid {
		r.report.Record(report.BucketNotArchive, path)
	}
	slog.Info("validated bundles",
		"discovered", len(paths),
		"valid", len(valid),
		"invalid", len(invalid),
	)

	if err := g.extract(ctx, r, valid); err != nil {
		return nil, err
	}
	r.report.Records = len(r.records)

	r.entries = g.aggregator.Aggregate(r.records)

	if err := g.write(ctx, r); err != nil {
		return nil, err
	}

	r.report.TotalFiles = len(r.writer.Files())
	r.report.TotalSize = r.writer.TotalSize()
	if g.checksums {
		if info, err := os.Stat(checksum.FilePath(siteDir)); err == nil {
			r.report.AddFile(info.Size())
		}
	}
	r.report.TotalDuration = time.Since(start)

	slog.Info("catalog generated",
		"records", r.report.Records,
		"files", r.report.TotalFiles,
		"size_bytes", r.report.TotalSize,
		"problem_bundles", r.report.ErrorCount(),
		"duration", r.report.TotalDuration,
	)

	return r.report, nil
}

// extract processes each valid archive in order: metadata, icon, and bundle
// copy. Per-bundle failures are recorded and never abort the batch; only
// context cancellation and destination I/O faults do.
func (g *Generator) extract(ctx context.Context, r *run, valid []string) error {
	for _, path := range valid {
		if err := ctx.Err(); err != nil {
			return err
		}

		ex, err := g.extractor.Extract(path)
		if err != nil {
			var dce *bundle.DescriptorCountError
			if errors.As(err, &dce) {
				slog.Warn("descriptor count mismatch", "bundle", path, "count", dce.Count)
				r.report.Record(report.BucketDescriptorCount, path)
			} else {
				slog.Warn("bundle not processable", "bundle", path, "error", err)
				r.report.Record(report.BucketMisc, path)
			}
			continue
		}

		r.records = append(r.records, ex.Info)

		name := ex.Info.Name()
		if name == "" {
			slog.Warn("bundle has no usable name", "bundle", path)
			r.report.Record(report.BucketMissingName, path)
			continue
		}

		if ex.IconMissing {
			r.report.Record(report.BucketIconMissing, path)
		} else {
			if err := r.writer.WriteIcon(name, ex.Icon); err != nil {
				return err
			}
		}

		// copying the archive is the last step for each bundle
		if err := r.writer.CopyBundle(path, name); err != nil {
			return err
		}
	}
	return nil
}

// write emits the aggregate outputs: info.json, the index script, detail
// pages, the per-bucket reports, and (optionally) checksums.
func (g *Generator) write(ctx context.Context, r *run) error {
	if err := r.writer.WriteInfoJSON(r.records); err != nil {
		return err
	}
	if err := r.writer.WriteIndexScript(r.entries); err != nil {
		return err
	}

	if g.htmlPages {
		for _, entry := range r.entries {
			if entry.Name == "" {
				continue
			}
			if err := r.writer.WriteActivityPage(entry); err != nil {
				return err
			}
		}
	}

	if err := r.writer.WriteReports(r.report); err != nil {
		return err
	}

	if g.checksums {
		if err := checksum.Generate(ctx, r.writer.Root(), r.writer.Files()); err != nil {
			return err
		}
	}

	return nil
}
