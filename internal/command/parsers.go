package command

import (
	"fmt"
	"text/tabwriter"

	"github.com/urfave/cli/v2"
)

// ParsersCommand returns the parsers subcommand.
func ParsersCommand() *cli.Command {
	return &cli.Command{
		Name:   "parsers",
		Usage:  "List registered parsers, enabled ones first in guess priority order",
		Action: parsersAction,
	}
}

func parsersAction(c *cli.Context) error {
	cfg, err := newConfig(c)
	if err != nil {
		return err
	}

	registry := cfg.Registry()
	writer := tabwriter.NewWriter(c.App.Writer, 0, 0, 2, ' ', 0)

	fmt.Fprintln(writer, "EXTENSION\tSTATUS\tPRIORITY")

	for i, ext := range registry.Enabled() {
		fmt.Fprintf(writer, "%s\tenabled\t%d\n", ext, i+1)
	}

	for _, ext := range registry.Registered() {
		if !registry.IsEnabled(ext) {
			fmt.Fprintf(writer, "%s\tdisabled\t-\n", ext)
		}
	}

	return writer.Flush()
}
