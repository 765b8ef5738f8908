// Package loader resolves, reads, parses and merges configuration files.
//
// A load walks a strictly linear state machine:
//
//	resolving -> filtering -> loading(i) -> loading(i+1) | failed | succeeded
//
// Existence checks run concurrently but the surviving candidates keep their
// resolved order. Files are then read, parsed and merged one at a time in that
// order; the first failure stops the fold and no later file is read.
package loader
