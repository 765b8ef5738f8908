package config

import (
	"log/slog"

	"github.com/0xalexb/hjarta-config/fetcher/file"
	"github.com/0xalexb/hjarta-config/parser"

	"github.com/prometheus/client_golang/prometheus"
)

// Options holds settings used by New.
type Options struct {
	Enabled     []string
	Directories []string
	Filesystem  file.Filesystem
	Logger      *slog.Logger
	LogLevel    string
	Registerer  prometheus.Registerer
	Parsers     []ParserBinding
}

// ParserBinding pairs a custom capability with the extensions it handles.
type ParserBinding struct {
	Capability parser.Capability
	Extensions []string
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithEnabled sets the enabled extensions, highest guess priority first.
// It replaces the default of "json" only.
func WithEnabled(exts ...string) Option {
	return func(opts *Options) {
		opts.Enabled = append(opts.Enabled, exts...)
	}
}

// WithDirectories sets the directories searched by Load, lowest priority first.
// Without it Load searches <cwd>/config.
func WithDirectories(dirs ...string) Option {
	return func(opts *Options) {
		opts.Directories = append(opts.Directories, dirs...)
	}
}

// WithFilesystem sets the filesystem files are resolved and read from.
func WithFilesystem(fsys file.Filesystem) Option {
	return func(opts *Options) {
		opts.Filesystem = fsys
	}
}

// WithLogger sets the logger. It takes precedence over WithLogLevel.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}

// WithLogLevel creates a JSON logger on stderr with the given level.
// Valid levels are: "debug", "info", "warn", "error".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithRegisterer registers loader metrics with the given Prometheus registerer.
func WithRegisterer(registerer prometheus.Registerer) Option {
	return func(opts *Options) {
		opts.Registerer = registerer
	}
}

// WithParser registers a custom capability for exts. Registered extensions
// still need WithEnabled to be used.
func WithParser(capability parser.Capability, exts ...string) Option {
	return func(opts *Options) {
		opts.Parsers = append(opts.Parsers, ParserBinding{Capability: capability, Extensions: exts})
	}
}
