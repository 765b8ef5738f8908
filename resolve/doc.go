// Package resolve expands requested configuration files into the ordered
// list of concrete paths to try.
//
// Inputs and output are ordered by ascending priority: the last file token,
// the last directory and the last path win when results are merged.
package resolve
