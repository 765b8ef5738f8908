// Package logging builds the slog loggers used by the loader and the CLI.
// JSON output is the default; "text" switches to the human-readable handler.
package logging
