// Package ini decodes INI configuration files.
//
// Keys outside any section land at the document root; every named section
// becomes a nested mapping. All values are strings, as INI has no types.
package ini
