package parser

import (
	"fmt"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/0xalexb/hjarta-config/fetcher/file"
	"github.com/0xalexb/hjarta-config/tree"
)

// Capability decodes raw text into a configuration tree.
type Capability interface {
	Parse(text string) (tree.Mapping, error)
}

// CapabilityFunc adapts a function to Capability.
type CapabilityFunc func(text string) (tree.Mapping, error)

// Parse calls f.
func (f CapabilityFunc) Parse(text string) (tree.Mapping, error) {
	return f(text)
}

// Create wraps a plain decoder into a Capability.
// Panics raised by fn are returned as errors wrapping ErrPanic, and the decoded
// value is normalized into a tree.Mapping. A nil fn yields a nil Capability,
// which Register rejects.
//
//nolint:ireturn // Capability is the registration contract
func Create(fn func(text string) (any, error)) Capability {
	if fn == nil {
		return nil
	}

	return CapabilityFunc(func(text string) (tree.Mapping, error) {
		var raw any

		err := guard(func() error {
			var decodeErr error

			raw, decodeErr = fn(text)

			return decodeErr
		})
		if err != nil {
			return nil, err
		}

		return tree.MappingFromAny(raw)
	})
}

func guard(call func() error) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = fmt.Errorf("%w: %v", ErrPanic, recovered)
		}
	}()

	return call()
}

// Registry holds registered capabilities and the enabled extension order.
type Registry struct {
	mu         sync.RWMutex
	registered map[string]Capability
	enabled    []string
	reader     file.Reader
}

// RegistryOption configures a Registry.
type RegistryOption func(*Registry)

// WithReader sets the reader used by ParseFile. Defaults to file.OS.
func WithReader(reader file.Reader) RegistryOption {
	return func(r *Registry) {
		r.reader = reader
	}
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...RegistryOption) *Registry {
	registry := &Registry{
		registered: make(map[string]Capability),
		reader:     file.OS{},
	}

	for _, apply := range opts {
		apply(registry)
	}

	return registry
}

// NormalizeExtension lowercases ext and strips a leading dot.
func NormalizeExtension(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// Register associates capability with each extension. The last registration wins.
func (r *Registry) Register(capability Capability, exts ...string) error {
	if isNil(capability) {
		return fmt.Errorf("%w: capability must not be nil", ErrInvalidCapability)
	}

	if len(exts) == 0 {
		return fmt.Errorf("%w: at least one extension required", ErrInvalidCapability)
	}

	for _, ext := range exts {
		if NormalizeExtension(ext) == "" {
			return fmt.Errorf("%w: empty extension", ErrInvalidCapability)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, ext := range exts {
		r.registered[NormalizeExtension(ext)] = capability
	}

	return nil
}

func isNil(capability Capability) bool {
	if capability == nil {
		return true
	}

	fn, ok := capability.(CapabilityFunc)

	return ok && fn == nil
}

// Enable appends ext to the enabled order.
// It returns false without error when ext is already enabled.
func (r *Registry) Enable(ext string) (bool, error) {
	ext = NormalizeExtension(ext)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.registered[ext]; !ok {
		return false, fmt.Errorf("%w: %q", ErrUnregisteredExtension, ext)
	}

	if slices.Contains(r.enabled, ext) {
		return false, nil
	}

	r.enabled = append(r.enabled, ext)

	return true, nil
}

// Disable removes ext from the enabled order.
// It returns false without error when ext is not enabled.
func (r *Registry) Disable(ext string) (bool, error) {
	ext = NormalizeExtension(ext)

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.registered[ext]; !ok {
		return false, fmt.Errorf("%w: %q", ErrUnregisteredExtension, ext)
	}

	idx := slices.Index(r.enabled, ext)
	if idx < 0 {
		return false, nil
	}

	r.enabled = slices.Delete(r.enabled, idx, idx+1)

	return true, nil
}

// IsEnabled reports whether ext is enabled.
func (r *Registry) IsEnabled(ext string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Contains(r.enabled, NormalizeExtension(ext))
}

// IsRegistered reports whether ext has a capability.
func (r *Registry) IsRegistered(ext string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.registered[NormalizeExtension(ext)]

	return ok
}

// Enabled returns the enabled extensions, highest guess priority first.
func (r *Registry) Enabled() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return slices.Clone(r.enabled)
}

// Registered returns all registered extensions in lexical order.
func (r *Registry) Registered() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	exts := make([]string, 0, len(r.registered))
	for ext := range r.registered {
		exts = append(exts, ext)
	}

	slices.Sort(exts)

	return exts
}

// Lookup returns the capability for ext if it is registered and enabled.
//
//nolint:ireturn // Capability is the registration contract
func (r *Registry) Lookup(ext string) (Capability, bool) {
	ext = NormalizeExtension(ext)

	r.mu.RLock()
	defer r.mu.RUnlock()

	if !slices.Contains(r.enabled, ext) {
		return nil, false
	}

	capability, ok := r.registered[ext]

	return capability, ok
}

// ParseString decodes text with the enabled parser for ext.
func (r *Registry) ParseString(text, ext string) (tree.Mapping, error) {
	capability, ok := r.Lookup(ext)
	if !ok {
		return nil, fmt.Errorf("%w: no parser found for extension %q", ErrUnsupportedExtension, NormalizeExtension(ext))
	}

	return parse(capability, text)
}

// ParseFile reads and decodes a single file through the registry reader.
func (r *Registry) ParseFile(path string) (tree.Mapping, error) {
	return r.ParseFileFrom(r.reader, path)
}

// ParseFileFrom reads path with reader and decodes it with the parser matching its extension.
// Every failure is a *FileError naming path.
func (r *Registry) ParseFileFrom(reader file.Reader, path string) (tree.Mapping, error) {
	ext := NormalizeExtension(filepath.Ext(path))
	if ext == "" {
		return nil, &FileError{Path: path, Err: ErrExtensionRequired}
	}

	capability, ok := r.Lookup(ext)
	if !ok {
		return nil, &FileError{
			Path: path,
			Ext:  ext,
			Err:  fmt.Errorf("%w: no parser found for extension %q", ErrUnsupportedExtension, ext),
		}
	}

	data, err := reader.ReadAll(path)
	if err != nil {
		return nil, &FileError{Path: path, Ext: ext, Err: fmt.Errorf("%w: %w", ErrIO, err)}
	}

	result, err := parse(capability, string(data))
	if err != nil {
		return nil, &FileError{Path: path, Ext: ext, Err: err}
	}

	return result, nil
}

func parse(capability Capability, text string) (tree.Mapping, error) {
	var result tree.Mapping

	err := guard(func() error {
		var parseErr error

		result, parseErr = capability.Parse(text)

		return parseErr
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}

	if result == nil {
		result = tree.Mapping{}
	}

	return result, nil
}
