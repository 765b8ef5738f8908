// Package json decodes JSON configuration files.
package json
