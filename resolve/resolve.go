package resolve

import (
	"os"
	"path/filepath"
	"slices"
)

// DefaultDirName is the directory searched under the working directory when no directory is given.
const DefaultDirName = "config"

// Resolver crosses file tokens with directories and inferred extensions.
type Resolver struct {
	// Enabled returns the enabled extensions, highest guess priority first.
	Enabled func() []string
	// DefaultDir is used when Resolve receives no directory.
	// Empty means DefaultDirectory().
	DefaultDir string
}

// DefaultDirectory returns <cwd>/config, or "config" when the working directory is unknown.
func DefaultDirectory() string {
	cwd, err := os.Getwd()
	if err != nil {
		return DefaultDirName
	}

	return filepath.Join(cwd, DefaultDirName)
}

// Resolve returns candidate paths, lowest priority first.
//
// A token without extension expands to one candidate per enabled extension,
// in reverse enabled order, so the first-enabled extension comes last. Absolute
// candidates are kept verbatim; relative ones are joined with every directory.
// When the same path is produced twice only its last occurrence is kept.
func (r Resolver) Resolve(files, dirs []string) []string {
	if len(files) == 0 {
		return []string{}
	}

	if len(dirs) == 0 {
		dirs = []string{r.defaultDir()}
	}

	var enabled []string
	if r.Enabled != nil {
		enabled = r.Enabled()
	}

	var paths []string

	for _, name := range files {
		for _, candidate := range Expand(name, enabled) {
			if filepath.IsAbs(candidate) {
				paths = append(paths, filepath.Clean(candidate))

				continue
			}

			for _, dir := range dirs {
				paths = append(paths, filepath.Join(dir, candidate))
			}
		}
	}

	return dedupKeepLast(paths)
}

func (r Resolver) defaultDir() string {
	if r.DefaultDir != "" {
		return r.DefaultDir
	}

	return DefaultDirectory()
}

// Expand returns the file names to try for one token, lowest priority first.
func Expand(name string, enabled []string) []string {
	if filepath.Ext(name) != "" {
		return []string{name}
	}

	names := make([]string, 0, len(enabled))

	for _, ext := range slices.Backward(enabled) {
		names = append(names, name+"."+ext)
	}

	return names
}

func dedupKeepLast(paths []string) []string {
	last := make(map[string]int, len(paths))
	for i, p := range paths {
		last[p] = i
	}

	out := make([]string, 0, len(last))

	for i, p := range paths {
		if last[p] == i {
			out = append(out, p)
		}
	}

	return out
}
