package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/0xalexb/hjarta-config/fetcher/file"
	"github.com/0xalexb/hjarta-config/parser"
	"github.com/0xalexb/hjarta-config/resolve"
	"github.com/0xalexb/hjarta-config/tree"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds concurrent existence checks.
const DefaultConcurrency = 8

// Failure kinds re-exported from the parser package so callers need only this package.
var (
	ErrExtensionRequired    = parser.ErrExtensionRequired
	ErrUnsupportedExtension = parser.ErrUnsupportedExtension
	ErrIO                   = parser.ErrIO
	ErrParse                = parser.ErrParse
)

// ErrNoConfigurationFound is returned when none of the candidate paths exists.
var ErrNoConfigurationFound = errors.New("no configuration file found")

// Observer is notified about load progress.
type Observer interface {
	FileLoaded(path, ext string)
	LoadFinished(elapsed time.Duration, err error)
}

// Loader folds configuration files into one tree.
type Loader struct {
	registry    *parser.Registry
	fsys        file.Filesystem
	logger      *slog.Logger
	observer    Observer
	defaultDir  string
	concurrency int
}

// Option configures a Loader.
type Option func(*Loader)

// WithFilesystem sets the filesystem used for existence checks and reads. Defaults to file.OS.
func WithFilesystem(fsys file.Filesystem) Option {
	return func(l *Loader) {
		l.fsys = fsys
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) {
		l.logger = logger
	}
}

// WithObserver registers an observer for load events.
func WithObserver(observer Observer) Option {
	return func(l *Loader) {
		l.observer = observer
	}
}

// WithDefaultDir sets the directory searched when Load receives none.
// Defaults to resolve.DefaultDirectory().
func WithDefaultDir(dir string) Option {
	return func(l *Loader) {
		l.defaultDir = dir
	}
}

// WithConcurrency bounds concurrent existence checks. Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(l *Loader) {
		if n > 0 {
			l.concurrency = n
		}
	}
}

// New creates a Loader bound to registry.
func New(registry *parser.Registry, opts ...Option) *Loader {
	loader := &Loader{
		registry:    registry,
		fsys:        file.OS{},
		concurrency: DefaultConcurrency,
	}

	for _, apply := range opts {
		apply(loader)
	}

	if loader.logger == nil {
		loader.logger = slog.Default()
	}

	return loader
}

// Registry returns the registry the loader parses with.
func (l *Loader) Registry() *parser.Registry {
	return l.registry
}

// Candidates returns the resolved candidate paths, lowest priority first.
func (l *Loader) Candidates(files []string, dirs ...string) []string {
	resolver := resolve.Resolver{
		Enabled:    l.registry.Enabled,
		DefaultDir: l.defaultDir,
	}

	return resolver.Resolve(files, dirs)
}

// Load merges files found in dirs into one tree.
//
// File tokens and directories are ordered by ascending priority. The returned
// tree is never nil: on failure it holds every file merged before the failing one.
func (l *Loader) Load(ctx context.Context, files []string, dirs ...string) (tree.Mapping, error) {
	started := time.Now()
	acc := tree.Mapping{}

	err := l.load(ctx, acc, files, dirs)

	if l.observer != nil {
		l.observer.LoadFinished(time.Since(started), err)
	}

	return acc, err
}

func (l *Loader) load(ctx context.Context, acc tree.Mapping, files, dirs []string) error {
	candidates := l.Candidates(files, dirs...)
	l.logger.DebugContext(ctx, "checking configuration files", slog.Any("candidates", candidates))

	existing, err := l.filterExisting(ctx, candidates)
	if err != nil {
		return err
	}

	if len(existing) == 0 {
		return ErrNoConfigurationFound
	}

	for _, path := range existing {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("loading %q: %w", path, err)
		}

		l.logger.DebugContext(ctx, "loading configuration file", slog.String("path", path))

		parsed, err := l.registry.ParseFileFrom(l.fsys, path)
		if err != nil {
			return err
		}

		tree.Merge(acc, parsed)

		if l.observer != nil {
			l.observer.FileLoaded(path, parser.NormalizeExtension(filepath.Ext(path)))
		}
	}

	return nil
}

// filterExisting checks every candidate concurrently and returns the existing
// ones in their original order.
func (l *Loader) filterExisting(ctx context.Context, candidates []string) ([]string, error) {
	found := make([]bool, len(candidates))

	var group errgroup.Group

	group.SetLimit(l.concurrency)

	for i, path := range candidates {
		group.Go(func() error {
			exists, err := l.fsys.Exists(path)
			if err != nil {
				return &parser.FileError{Path: path, Err: fmt.Errorf("%w: %w", ErrIO, err)}
			}

			if !exists {
				l.logger.DebugContext(ctx, "configuration file not found", slog.String("path", path))
			}

			found[i] = exists

			return nil
		})
	}

	err := group.Wait()
	if err != nil {
		return nil, err
	}

	existing := make([]string, 0, len(candidates))

	for i, path := range candidates {
		if found[i] {
			existing = append(existing, path)
		}
	}

	return existing, nil
}
