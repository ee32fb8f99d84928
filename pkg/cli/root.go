/*
Copyright © 2025 Sugar Labs
SPDX-License-Identifier: Apache-2.0
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"

	"github.com/sugarlabs/aslo-catalog/pkg/logging"
)

const (
	name           = "aslo"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// New assembles the root command with all subcommands.
func New() *cli.Command {
	return &cli.Command{
		Name:  name,
		Usage: "Sugar Labs activity catalog generator",
		Description: `Builds a static activity catalog site from a directory of .xo activity
bundles: extracts each bundle's metadata and icon, aggregates a search
index, and writes the site tree together with per-problem report files.`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "Log level (debug, info, warn, error)",
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			logging.SetDefaultStructuredLoggerWithLevel(name, version, cmd.String("log-level"))
			slog.Debug("starting",
				"name", name,
				"version", version,
				"commit", commit,
				"date", date,
			)
			return ctx, nil
		},
		Commands: []*cli.Command{
			buildCmd(),
			versionCmd(),
		},
	}
}

// Execute runs the root command. It is called by main.main() and handles
// SIGINT/SIGTERM for graceful shutdown.
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "\nReceived interrupt signal, shutting down gracefully...")
		cancel()
	}()

	if err := New().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
