// Package command provides CLI command definitions for hjarta-config.
//
// It uses urfave/cli/v2 for command parsing. Every command builds its own
// config.Config from the global and command flags, so runs never share state.
package command
