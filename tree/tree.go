package tree

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"
)

// PathSeparator separates nested keys in a lookup path.
const PathSeparator = ":"

// ErrUnsupportedValue is returned when a decoded value cannot be represented in a tree.
var ErrUnsupportedValue = errors.New("unsupported value")

// ErrNotMapping is returned when a document root or a path segment is not a mapping.
var ErrNotMapping = errors.New("value is not a mapping")

// ErrPathNotFound is returned when a lookup path does not exist in the tree.
var ErrPathNotFound = errors.New("path not found")

// Value is a node of a configuration tree: Mapping, Sequence or Scalar.
type Value interface {
	isValue()
}

// Mapping is a string-keyed section of a configuration tree.
type Mapping map[string]Value

// Sequence is an ordered list of values.
type Sequence []Value

// Scalar is a leaf value.
type Scalar struct {
	Raw any
}

func (Mapping) isValue()  {}
func (Sequence) isValue() {}
func (Scalar) isValue()   {}

// S is shorthand for a Scalar holding v.
func S(v any) Scalar {
	return Scalar{Raw: v}
}

// FromAny converts the output of a format decoder into a tree Value.
// Integer kinds are normalized to int64 and floating point kinds to float64.
func FromAny(v any) (Value, error) {
	switch typed := v.(type) {
	case Value:
		return typed, nil
	case nil:
		return Scalar{}, nil
	case map[string]any:
		out := make(Mapping, len(typed))

		for key, item := range typed {
			conv, err := FromAny(item)
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}

			out[key] = conv
		}

		return out, nil
	case []any:
		out := make(Sequence, len(typed))

		for i, item := range typed {
			conv, err := FromAny(item)
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}

			out[i] = conv
		}

		return out, nil
	case string, bool, time.Time, time.Duration:
		return Scalar{Raw: typed}, nil
	case json.Number:
		if n, err := typed.Int64(); err == nil {
			return Scalar{Raw: n}, nil
		}

		f, err := typed.Float64()
		if err != nil {
			return nil, fmt.Errorf("number %q: %w", typed.String(), ErrUnsupportedValue)
		}

		return Scalar{Raw: f}, nil
	}

	return fromReflect(reflect.ValueOf(v))
}

func fromReflect(rv reflect.Value) (Value, error) {
	//nolint:exhaustive // remaining kinds are rejected below
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return Scalar{}, nil
		}

		return FromAny(rv.Elem().Interface())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Scalar{Raw: rv.Int()}, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return Scalar{Raw: u}, nil
		}

		return Scalar{Raw: int64(u)}, nil
	case reflect.Float32, reflect.Float64:
		return Scalar{Raw: rv.Float()}, nil
	case reflect.String:
		return Scalar{Raw: rv.String()}, nil
	case reflect.Bool:
		return Scalar{Raw: rv.Bool()}, nil
	case reflect.Slice, reflect.Array:
		out := make(Sequence, rv.Len())

		for i := range rv.Len() {
			conv, err := FromAny(rv.Index(i).Interface())
			if err != nil {
				return nil, fmt.Errorf("index %d: %w", i, err)
			}

			out[i] = conv
		}

		return out, nil
	case reflect.Map:
		out := make(Mapping, rv.Len())
		iter := rv.MapRange()

		for iter.Next() {
			key := fmt.Sprint(iter.Key().Interface())

			conv, err := FromAny(iter.Value().Interface())
			if err != nil {
				return nil, fmt.Errorf("key %q: %w", key, err)
			}

			out[key] = conv
		}

		return out, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedValue, rv.Kind())
	}
}

// MappingFromAny converts a decoded document into a Mapping.
// A nil document yields an empty mapping.
func MappingFromAny(v any) (Mapping, error) {
	if v == nil {
		return Mapping{}, nil
	}

	conv, err := FromAny(v)
	if err != nil {
		return nil, err
	}

	switch typed := conv.(type) {
	case Mapping:
		return typed, nil
	case Scalar:
		if typed.Raw == nil {
			return Mapping{}, nil
		}
	}

	return nil, fmt.Errorf("document root: %w", ErrNotMapping)
}

// Native converts the mapping back into plain Go values.
func (m Mapping) Native() map[string]any {
	out := make(map[string]any, len(m))

	for key, value := range m {
		out[key] = Native(value)
	}

	return out
}

// Native converts the sequence back into plain Go values.
func (s Sequence) Native() []any {
	out := make([]any, len(s))

	for i, value := range s {
		out[i] = Native(value)
	}

	return out
}

// Native converts any value back into plain Go values. Scalars yield their raw value.
func Native(v Value) any {
	switch typed := v.(type) {
	case Mapping:
		return typed.Native()
	case Sequence:
		return typed.Native()
	case Scalar:
		return typed.Raw
	default:
		return nil
	}
}

// Clone returns a deep copy of the mapping.
func (m Mapping) Clone() Mapping {
	if m == nil {
		return nil
	}

	out := make(Mapping, len(m))

	for key, value := range m {
		out[key] = clone(value)
	}

	return out
}

func clone(v Value) Value {
	switch typed := v.(type) {
	case Mapping:
		return typed.Clone()
	case Sequence:
		out := make(Sequence, len(typed))

		for i, item := range typed {
			out[i] = clone(item)
		}

		return out
	default:
		return v
	}
}

// Lookup returns the value at a colon-separated path.
// An empty path returns the mapping itself.
func (m Mapping) Lookup(path string) (Value, error) {
	if path == "" {
		return m, nil
	}

	var current Value = m

	for _, segment := range strings.Split(path, PathSeparator) {
		section, ok := current.(Mapping)
		if !ok {
			return nil, fmt.Errorf("%w: %s at %q", ErrNotMapping, path, segment)
		}

		current, ok = section[segment]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}
	}

	return current, nil
}
