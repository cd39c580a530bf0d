package main

import (
	"fmt"

	"github.com/common-nighthawk/go-figure"
	"github.com/urfave/cli/v2"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Print the fiber version",
		Action: func(c *cli.Context) error {
			banner := figure.NewFigure("fiber", "", true)
			fmt.Fprintln(c.App.Writer, banner.String())
			fmt.Fprintf(c.App.Writer, "fiber %s\n", version)
			return nil
		},
	}
}
