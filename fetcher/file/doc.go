// Package file provides the filesystem boundary used by the loader and the
// parser registry.
//
// Two capabilities are required: checking whether a path exists and reading
// its full contents. OS implements them on the local disk; FS adapts any
// io/fs.FS (embed.FS, fstest.MapFS, ...) so configuration can be resolved
// from virtual trees.
//
// Usage:
//
//	fsys := file.OS{}
//	ok, err := fsys.Exists("config/app.yml")
//	data, err := fsys.ReadAll("config/app.yml")
//
// Error Handling:
//   - Exists reports (false, nil) for missing paths; other stat failures are returned
//   - ReadAll errors include the path
//   - Use errors.Is(err, file.ErrPathIsDirectory) to check for directory errors
package file
