// Package main provides the Scope model-profiling CLI.
package main

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
)

const version = "v0.1.0-dev"

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		With().Timestamp().Logger()

	cmd := &cli.Command{
		Name:    "scope",
		Usage:   "per-layer statistics and filter-magnitude profiling for CNN models",
		Version: version,
		Commands: []*cli.Command{
			archsCmd(),
			statsCmd(&logger),
			filtersCmd(&logger),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		logger.Error().Err(err).Msg("scope failed")
		os.Exit(1)
	}
}
