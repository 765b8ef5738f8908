package command

import (
	"fmt"
	"log/slog"

	config "github.com/0xalexb/hjarta-config"
	"github.com/0xalexb/hjarta-config/logging"

	"github.com/urfave/cli/v2"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "hjarta-config",
		Usage:   "Resolve and merge layered configuration files",
		Version: fmt.Sprintf("%s (built: %s)", config.Version, config.CompiledAt),
		Flags:   globalFlags(),
		Commands: []*cli.Command{
			LoadCommand(),
			ParsersCommand(),
		},
	}
}

// globalFlags returns the global CLI flags.
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "log-level",
			Aliases: []string{"l"},
			Usage:   "Log level: debug, info, warn, error",
			EnvVars: []string{"HJARTA_CONFIG_LOG_LEVEL"},
			Value:   "warn",
		},
		&cli.StringFlag{
			Name:    "log-format",
			Usage:   "Log format: text, json",
			EnvVars: []string{"HJARTA_CONFIG_LOG_FORMAT"},
			Value:   logging.FormatText,
		},
		&cli.StringSliceFlag{
			Name:    "enable",
			Aliases: []string{"e"},
			Usage:   "Enable a parser by extension, highest guess priority first (repeatable)",
		},
	}
}

// newLogger builds the logger for a run. Records go to the app's error writer
// so they never mix with command output.
func newLogger(c *cli.Context) *slog.Logger {
	return logging.NewLogger(logging.LoggerConfig{
		Level:  c.String("log-level"),
		Format: c.String("log-format"),
	}, c.App.ErrWriter)
}

// newConfig builds a config.Config from the global flags plus extra options.
func newConfig(c *cli.Context, opts ...config.Option) (*config.Config, error) {
	all := []config.Option{
		config.WithLogger(newLogger(c)),
		config.WithEnabled(c.StringSlice("enable")...),
	}

	cfg, err := config.New(append(all, opts...)...)
	if err != nil {
		return nil, fmt.Errorf("configuring parsers: %w", err)
	}

	return cfg, nil
}
