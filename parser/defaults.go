package parser

import (
	"fmt"

	"github.com/0xalexb/hjarta-config/parser/ini"
	"github.com/0xalexb/hjarta-config/parser/json"
	"github.com/0xalexb/hjarta-config/parser/json5"
	"github.com/0xalexb/hjarta-config/parser/yaml"
)

// DefaultEnabled lists the extensions NewDefault enables.
var DefaultEnabled = []string{"json"} //nolint:gochecknoglobals // read-only default

// RegisterDefaults registers the built-in decoders:
//
//	json       -> parser/json
//	yml, yaml  -> parser/yaml
//	ini        -> parser/ini
//	js, json5  -> parser/json5
func RegisterDefaults(r *Registry) error {
	builtins := []struct {
		decode func(string) (any, error)
		exts   []string
	}{
		{decode: json.Parse, exts: []string{"json"}},
		{decode: yaml.Parse, exts: []string{"yml", "yaml"}},
		{decode: ini.Parse, exts: []string{"ini"}},
		{decode: json5.Parse, exts: []string{"js", "json5"}},
	}

	for _, builtin := range builtins {
		err := r.Register(Create(builtin.decode), builtin.exts...)
		if err != nil {
			return err
		}
	}

	return nil
}

// NewDefault creates a registry with the built-in decoders registered and
// DefaultEnabled enabled.
func NewDefault(opts ...RegistryOption) (*Registry, error) {
	registry := NewRegistry(opts...)

	err := RegisterDefaults(registry)
	if err != nil {
		return nil, fmt.Errorf("registering default parsers: %w", err)
	}

	for _, ext := range DefaultEnabled {
		_, err := registry.Enable(ext)
		if err != nil {
			return nil, fmt.Errorf("enabling default parser: %w", err)
		}
	}

	return registry, nil
}
