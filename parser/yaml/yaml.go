package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
)

// ErrEmptyData is returned when the input data is empty.
var ErrEmptyData = errors.New("empty data")

// ErrPathNotFound is returned when the specified path is not found in the YAML document.
var ErrPathNotFound = errors.New("path not found")

// Parse decodes a YAML document into plain Go values.
// An empty document decodes to nil.
func Parse(text string) (any, error) {
	var doc any

	err := yaml.Unmarshal([]byte(text), &doc)
	if err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return doc, nil
}

// Binder unmarshals YAML data into typed targets.
type Binder struct{}

// NewBinder creates a new YAML binder instance.
func NewBinder() *Binder {
	return &Binder{}
}

// Bind unmarshals data into the target.
// The path parameter specifies a navigation path using colon (:) as separator.
// Empty path binds the entire document.
func (b *Binder) Bind(data []byte, target any, path string) error {
	if len(data) == 0 {
		return ErrEmptyData
	}

	if path == "" {
		err := yaml.Unmarshal(data, target)
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	pathObj, err := yaml.PathString(convertToYAMLPath(path))
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	err = pathObj.Read(bytes.NewReader(data), target)
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		return fmt.Errorf("reading path %q: %w", path, err)
	}

	return nil
}

// Marshal encodes v as YAML.
func Marshal(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshal error: %w", err)
	}

	return data, nil
}

// convertToYAMLPath converts a colon-separated path to goccy/go-yaml PathString format.
func convertToYAMLPath(path string) string {
	return "$." + strings.Join(strings.Split(path, ":"), ".")
}
