// Package config resolves a logical configuration from several files, in
// several formats, spread over several directories, and merges them into one
// tree in explicit priority order.
//
// The package wires the building blocks together:
//   - parser: extension registry with enable order as guess priority
//   - resolve: files × directories × inferred extensions
//   - loader: concurrent existence checks, sequential fail-fast merge
//   - tree: tagged configuration values and the deep merge
//
// # Priority
//
// Every list is ordered lowest priority first. Given
//
//	cfg, _ := config.New(
//	    config.WithEnabled("json", "yml"),
//	    config.WithDirectories("config", "config/override"),
//	)
//	merged, err := cfg.Load(ctx, "defaults.yml", "app")
//
// the candidates are, in merge order:
//
//	config/defaults.yml, config/override/defaults.yml,
//	config/app.yml, config/override/app.yml,
//	config/app.json, config/override/app.json
//
// Missing files are skipped; the first file that fails to read or parse stops
// the load and the error is returned with everything merged so far.
//
// # Typed binding
//
// Provider and Bind decode a section of the merged tree into a struct,
// navigating colon-separated paths ("database:connection"), then apply
// Defaulter and Validator. NewModule exposes Config, the registry and the
// loader to an Fx application.
package config
