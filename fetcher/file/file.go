package file

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

// ErrPathIsDirectory is returned when a path to be read points to a directory instead of a file.
var ErrPathIsDirectory = errors.New("path is a directory, not a file")

// Reader reads the full contents of a path.
type Reader interface {
	ReadAll(path string) ([]byte, error)
}

// Filesystem is the pair of capabilities needed to resolve configuration files.
type Filesystem interface {
	Reader
	Exists(path string) (bool, error)
}

// OS implements Filesystem on the local disk.
type OS struct{}

// Exists reports whether the path exists. Directories exist too; reading them fails.
func (OS) Exists(fpath string) (bool, error) {
	_, err := os.Stat(filepath.Clean(fpath))
	if err == nil {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, fmt.Errorf("stat file %q: %w", fpath, err)
}

// ReadAll reads the whole file.
func (OS) ReadAll(fpath string) ([]byte, error) {
	cleanPath := filepath.Clean(fpath)

	stat, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", cleanPath, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", cleanPath, ErrPathIsDirectory)
	}

	data, err := os.ReadFile(cleanPath) // #nosec G304 -- path is cleaned and validated
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", cleanPath, err)
	}

	return data, nil
}

// FS implements Filesystem on top of an io/fs.FS.
// Paths are slash-separated and relative to the root of the wrapped filesystem.
type FS struct {
	fsys fs.FS
}

// NewFS wraps fsys.
func NewFS(fsys fs.FS) *FS {
	return &FS{fsys: fsys}
}

// Exists reports whether the path exists in the wrapped filesystem.
// Paths an io/fs.FS cannot name, such as absolute ones, do not exist.
func (f *FS) Exists(fpath string) (bool, error) {
	name := toFSPath(fpath)
	if !fs.ValidPath(name) {
		return false, nil
	}

	_, err := fs.Stat(f.fsys, name)
	if err == nil {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, fmt.Errorf("stat file %q: %w", fpath, err)
}

// ReadAll reads the whole file from the wrapped filesystem.
func (f *FS) ReadAll(fpath string) ([]byte, error) {
	name := toFSPath(fpath)

	stat, err := fs.Stat(f.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("stat file %q: %w", name, err)
	}

	if stat.IsDir() {
		return nil, fmt.Errorf("path %q: %w", name, ErrPathIsDirectory)
	}

	data, err := fs.ReadFile(f.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading file %q: %w", name, err)
	}

	return data, nil
}

func toFSPath(fpath string) string {
	return path.Clean(filepath.ToSlash(fpath))
}
