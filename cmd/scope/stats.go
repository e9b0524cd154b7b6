package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"

	"github.com/born-ml/scope/internal/report"
	"github.com/born-ml/scope/profile"
	"github.com/born-ml/scope/zoo"
)

func statsCmd(logger *zerolog.Logger) *cli.Command {
	var (
		arch     string
		ds       string
		seed     int
		group    string
		htmlPath string
	)

	return &cli.Command{
		Name:  "stats",
		Usage: "Collect per-layer volumes and MAC counts for a model",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "arch",
				Aliases:     []string{"a"},
				Usage:       "architecture name (see 'scope archs')",
				Destination: &arch,
				Required:    true,
			},
			&cli.StringFlag{
				Name:        "dataset",
				Aliases:     []string{"d"},
				Usage:       "dataset identifier fixing input shape and class count",
				Destination: &ds,
				Value:       "imagenet",
			},
			&cli.IntFlag{Name: "seed", Usage: "weight initialization seed", Destination: &seed},
			&cli.StringFlag{Name: "group", Usage: "only show layers with this attribute key, e.g. 'k=(3,3)'", Destination: &group},
			&cli.StringFlag{Name: "html", Usage: "write comparison charts to this HTML file", Destination: &htmlPath},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			_ = ctx

			net, err := zoo.Build(arch, ds, zoo.WithSeed(int64(seed)))
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			input, err := zoo.InputShape(ds)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			logger.Info().Str("arch", arch).Str("dataset", ds).
				Str("input", input.String()).Msg("collecting layer statistics")

			table, err := profile.Collect(net, input)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: collect statistics: %v", err), 1)
			}
			if group != "" {
				table = table.Filter(group)
			}

			if err := report.NewTextTable(os.Stdout).RenderTable(table); err != nil {
				return cli.Exit(fmt.Sprintf("error: render table: %v", err), 1)
			}

			if htmlPath != "" {
				if err := writeStatsCharts(htmlPath, table); err != nil {
					return cli.Exit(fmt.Sprintf("error: %v", err), 1)
				}
				logger.Info().Str("path", htmlPath).Msg("wrote charts")
			}
			return nil
		},
	}
}

func writeStatsCharts(path string, table *profile.Table) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	charts := report.NewHTMLReport(f)
	if err := report.ProfileCharts(charts, table); err != nil {
		return err
	}
	return charts.Close()
}
