package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/born-ml/scope/zoo"
)

func archsCmd() *cli.Command {
	return &cli.Command{
		Name:  "archs",
		Usage: "List the known architectures and datasets",
		Action: func(ctx context.Context, c *cli.Command) error {
			_ = ctx

			fmt.Println("Architectures:")
			for _, name := range zoo.Architectures() {
				fmt.Printf("  %s\n", name)
			}

			fmt.Println("Datasets:")
			for _, name := range zoo.Datasets() {
				shape, err := zoo.InputShape(name)
				if err != nil {
					return cli.Exit(fmt.Sprintf("error: %v", err), 1)
				}
				classes, err := zoo.NumClasses(name)
				if err != nil {
					return cli.Exit(fmt.Sprintf("error: %v", err), 1)
				}
				fmt.Printf("  %-10s input=%v classes=%d\n", name, shape, classes)
			}
			return nil
		},
	}
}
