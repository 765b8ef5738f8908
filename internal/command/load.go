package command

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	config "github.com/0xalexb/hjarta-config"
	"github.com/0xalexb/hjarta-config/parser/yaml"
	"github.com/0xalexb/hjarta-config/tree"

	"github.com/urfave/cli/v2"
)

// Output formats for the load command.
const (
	OutputYAML = "yaml"
	OutputJSON = "json"
)

var (
	// ErrNoFiles is returned when load receives no file arguments.
	ErrNoFiles = errors.New("at least one file is required")
	// ErrUnknownOutput is returned for an unsupported --output value.
	ErrUnknownOutput = errors.New("unknown output format")
)

// LoadCommand returns the load subcommand.
func LoadCommand() *cli.Command {
	return &cli.Command{
		Name:      "load",
		Usage:     "Merge configuration files and print the result",
		ArgsUsage: "FILE...",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:    "dir",
				Aliases: []string{"d"},
				Usage:   "Directory to search, lowest priority first (repeatable, default ./config)",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Output format: yaml, json",
				Value:   OutputYAML,
			},
			&cli.StringFlag{
				Name:    "path",
				Aliases: []string{"p"},
				Usage:   "Print only the section at a colon separated path",
			},
		},
		Action: loadAction,
	}
}

func loadAction(c *cli.Context) error {
	files := c.Args().Slice()
	if len(files) == 0 {
		return ErrNoFiles
	}

	output := strings.ToLower(c.String("output"))
	if output != OutputYAML && output != OutputJSON {
		return fmt.Errorf("%w: %q", ErrUnknownOutput, output)
	}

	cfg, err := newConfig(c, config.WithDirectories(c.StringSlice("dir")...))
	if err != nil {
		return err
	}

	merged, err := cfg.Load(c.Context, files...)
	if err != nil {
		return err
	}

	section, err := merged.Lookup(c.String("path"))
	if err != nil {
		return err
	}

	data, err := render(section, output)
	if err != nil {
		return err
	}

	_, err = c.App.Writer.Write(data)

	return err
}

func render(value tree.Value, output string) ([]byte, error) {
	native := tree.Native(value)

	if output == OutputJSON {
		data, err := json.MarshalIndent(native, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding json: %w", err)
		}

		return append(data, '\n'), nil
	}

	data, err := yaml.Marshal(native)
	if err != nil {
		return nil, fmt.Errorf("encoding yaml: %w", err)
	}

	return data, nil
}
