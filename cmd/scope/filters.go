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

func filtersCmd(logger *zerolog.Logger) *cli.Command {
	var (
		arch     string
		ds       string
		param    string
		sorted   bool
		ranks    bool
		seed     int
		htmlPath string
	)

	return &cli.Command{
		Name:  "filters",
		Usage: "Rank a weight tensor's filters by mean absolute magnitude",
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
			&cli.StringFlag{
				Name:        "param",
				Aliases:     []string{"p"},
				Usage:       "weight tensor name, e.g. 'conv1.weight' (omit to list eligible names)",
				Destination: &param,
			},
			&cli.BoolFlag{Name: "sort", Usage: "return magnitudes in ascending order", Destination: &sorted},
			&cli.BoolFlag{Name: "ranks", Usage: "show ascending (channel, magnitude) pairs instead of a plain vector", Destination: &ranks},
			&cli.IntFlag{Name: "seed", Usage: "weight initialization seed", Destination: &seed},
			&cli.StringFlag{Name: "html", Usage: "write a magnitude chart to this HTML file", Destination: &htmlPath},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			_ = ctx

			net, err := zoo.Build(arch, ds, zoo.WithSeed(int64(seed)))
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			params := net.NamedParameters()

			if param == "" {
				fmt.Println("Eligible weight tensors:")
				for _, name := range profile.WeightNames(params) {
					fmt.Printf("  %-20s %v\n", name, params[name].Shape())
				}
				return nil
			}

			logger.Info().Str("arch", arch).Str("param", param).
				Bool("sort", sorted).Msg("ranking filters")

			out := report.NewTextTable(os.Stdout)
			if ranks {
				ranked, err := profile.RankFilters(params, param)
				if err != nil {
					return cli.Exit(fmt.Sprintf("error: %v", err), 1)
				}
				if err := out.RenderRanks(param, ranked); err != nil {
					return cli.Exit(fmt.Sprintf("error: %v", err), 1)
				}
				return nil
			}

			mags, err := profile.FilterMagnitudes(params, param, sorted)
			if err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}
			if err := out.RenderMagnitudes(param, mags, sorted); err != nil {
				return cli.Exit(fmt.Sprintf("error: %v", err), 1)
			}

			if htmlPath != "" {
				if err := writeMagnitudeChart(htmlPath, param, mags); err != nil {
					return cli.Exit(fmt.Sprintf("error: %v", err), 1)
				}
				logger.Info().Str("path", htmlPath).Msg("wrote chart")
			}
			return nil
		},
	}
}

func writeMagnitudeChart(path, param string, mags []float64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()

	charts := report.NewHTMLReport(f)
	if err := charts.Line(fmt.Sprintf("L1 filter magnitude: %s", param), mags); err != nil {
		return err
	}
	return charts.Close()
}
