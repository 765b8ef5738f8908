package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/0xalexb/hjarta-config/fetcher/file"
	"github.com/0xalexb/hjarta-config/loader"
	"github.com/0xalexb/hjarta-config/logging"
	"github.com/0xalexb/hjarta-config/metrics"
	"github.com/0xalexb/hjarta-config/parser"
	"github.com/0xalexb/hjarta-config/parser/yaml"
	"github.com/0xalexb/hjarta-config/tree"
)

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Config bundles a parser registry with a loader and the directories to search.
type Config struct {
	registry    *parser.Registry
	loader      *loader.Loader
	directories []string
}

// New creates a Config from options.
func New(opts ...Option) (*Config, error) {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	fsys := options.Filesystem
	if fsys == nil {
		fsys = file.OS{}
	}

	registry, err := newRegistry(&options, fsys)
	if err != nil {
		return nil, err
	}

	loaderOpts := []loader.Option{
		loader.WithFilesystem(fsys),
		loader.WithLogger(newLogger(&options)),
	}

	if options.Registerer != nil {
		observer, err := metrics.New(options.Registerer)
		if err != nil {
			return nil, err
		}

		loaderOpts = append(loaderOpts, loader.WithObserver(observer))
	}

	return &Config{
		registry:    registry,
		loader:      loader.New(registry, loaderOpts...),
		directories: options.Directories,
	}, nil
}

func newRegistry(options *Options, fsys file.Reader) (*parser.Registry, error) {
	registry := parser.NewRegistry(parser.WithReader(fsys))

	err := parser.RegisterDefaults(registry)
	if err != nil {
		return nil, fmt.Errorf("registering default parsers: %w", err)
	}

	for _, binding := range options.Parsers {
		err := registry.Register(binding.Capability, binding.Extensions...)
		if err != nil {
			return nil, fmt.Errorf("registering parser %v: %w", binding.Extensions, err)
		}
	}

	enabled := options.Enabled
	if len(enabled) == 0 {
		enabled = parser.DefaultEnabled
	}

	for _, ext := range enabled {
		_, err := registry.Enable(ext)
		if err != nil {
			return nil, fmt.Errorf("enabling parser: %w", err)
		}
	}

	return registry, nil
}

func newLogger(options *Options) *slog.Logger {
	if options.Logger != nil {
		return options.Logger
	}

	if options.LogLevel != "" {
		return logging.NewLogger(logging.LoggerConfig{Level: options.LogLevel}, os.Stderr)
	}

	return slog.Default()
}

// Registry returns the parser registry.
func (c *Config) Registry() *parser.Registry {
	return c.registry
}

// Loader returns the underlying loader.
func (c *Config) Loader() *loader.Loader {
	return c.loader
}

// Load merges files from the configured directories, lowest priority first.
func (c *Config) Load(ctx context.Context, files ...string) (tree.Mapping, error) {
	return c.loader.Load(ctx, files, c.directories...)
}

// LoadFrom merges files from dirs instead of the configured directories.
func (c *Config) LoadFrom(ctx context.Context, files []string, dirs ...string) (tree.Mapping, error) {
	return c.loader.Load(ctx, files, dirs...)
}

// Provider returns a function that loads files, decodes the section at path
// into target, sets defaults and validates it.
//
// The path uses colon (:) separators; "" binds the whole merged document.
func Provider[T any](target *T, path string, files ...string) func(*Config) (*T, error) {
	return func(cfg *Config) (*T, error) {
		merged, err := cfg.Load(context.Background(), files...)
		if err != nil {
			return nil, fmt.Errorf("loading error: %w", err)
		}

		err = Bind(merged, target, path)
		if err != nil {
			return nil, err
		}

		return target, nil
	}
}

// Bind decodes the section of merged at path into target, then applies
// Defaulter and Validator when target implements them.
func Bind(merged tree.Mapping, target any, path string) error {
	data, err := yaml.Marshal(merged.Native())
	if err != nil {
		return fmt.Errorf("encoding error: %w", err)
	}

	err = yaml.NewBinder().Bind(data, target, path)
	if err != nil {
		if errors.Is(err, yaml.ErrPathNotFound) {
			return fmt.Errorf("%w: %s", tree.ErrPathNotFound, path)
		}

		return fmt.Errorf("parsing error: %w", err)
	}

	targetDefaulter, isDefaulter := target.(Defaulter)
	if isDefaulter {
		changed := targetDefaulter.SetDefaults()
		if changed {
			slog.Info("defaults applied", slog.String("path", path))
		}
	}

	targetValidatable, isValidatable := target.(Validator)
	if isValidatable {
		err := targetValidatable.Validate()
		if err != nil {
			return fmt.Errorf("validating error: %w", err)
		}
	}

	return nil
}
