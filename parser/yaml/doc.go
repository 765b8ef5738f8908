// Package yaml decodes YAML configuration files.
//
// Parse is the raw decoder registered for the "yml" and "yaml" extensions.
// Binder unmarshals YAML into typed structs and can navigate to a section
// first using goccy/go-yaml PathString; colon-separated paths
// (e.g., "api:permissions") are converted to YAML path format
// (e.g., "$.api.permissions") internally.
//
// Path Conversion:
//   - Empty path "" -> unmarshal entire document
//   - Single key "key" -> "$.key"
//   - Nested path "api:permissions" -> "$.api.permissions"
package yaml
