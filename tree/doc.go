// Package tree models a configuration document as a tagged variant and
// implements the deep merge used to fold several documents into one.
//
// A document is always a Mapping at its root. Values inside it are one of:
//   - Mapping: nested string-keyed section
//   - Sequence: ordered list of values
//   - Scalar: any leaf (string, bool, int64, float64, time, nil)
//
// Merge recursion only happens when both sides hold a Mapping for the same
// key; any other combination is a plain overwrite by the incoming value.
//
// Paths use colon (:) as the separator for nested keys, the same convention
// as the config package:
//
//	"server:http:address" -> m["server"]["http"]["address"]
package tree
