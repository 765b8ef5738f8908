// Package json5 decodes JSON5 documents, the object-literal format used by
// ".js" configuration files: unquoted keys, single quotes, comments and
// trailing commas are accepted.
package json5
