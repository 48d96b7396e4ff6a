// Package nested reads values out of maps of maps by key path.
package nested

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

var (
	// ErrKeyNotFound is matched by every *KeyError.
	ErrKeyNotFound = errors.New("key not found")

	// ErrTypeMismatch is returned by Get when the value has another type.
	ErrTypeMismatch = errors.New("type mismatch")
)

// Map is a mapping whose values may themselves be mappings, as produced by
// decoding a JSON object into map[string]any.
type Map = map[string]any

// KeyError reports the first path segment that could not be resolved.
type KeyError struct {
	// Key is the segment that was missing, or that was applied to a value
	// which is not a mapping.
	Key string
	// Path is the prefix that resolved successfully before Key.
	Path []string
}

func (e *KeyError) Error() string {
	if len(e.Path) == 0 {
		return fmt.Sprintf("key %q not found", e.Key)
	}
	return fmt.Sprintf("key %q not found under %q", e.Key, strings.Join(e.Path, "."))
}

// Is makes errors.Is(err, ErrKeyNotFound) hold.
func (e *KeyError) Is(target error) bool {
	return target == ErrKeyNotFound
}

// AccessNestedMap follows path through m and returns the value it ends on.
// An empty path returns m itself.
//
//	AccessNestedMap(Map{"a": Map{"b": 2}}, "a", "b") // 2, nil
//	AccessNestedMap(Map{"a": 1}, "a", "b")           // nil, KeyError{Key: "b"}
func AccessNestedMap(m Map, path ...string) (any, error) {
	var current any = m

	for i, key := range path {
		mapping, ok := asMap(current)
		if !ok {
			return nil, &KeyError{Key: key, Path: slices.Clone(path[:i])}
		}

		v, ok := mapping[key]
		if !ok {
			return nil, &KeyError{Key: key, Path: slices.Clone(path[:i])}
		}
		current = v
	}

	return current, nil
}

// Get is AccessNestedMap with the result asserted to V.
func Get[V any](m Map, path ...string) (V, error) {
	var zero V

	v, err := AccessNestedMap(m, path...)
	if err != nil {
		return zero, err
	}

	typed, ok := v.(V)
	if !ok {
		return zero, fmt.Errorf("%w: %s is %T, want %T", ErrTypeMismatch, strings.Join(path, "."), v, zero)
	}
	return typed, nil
}

func asMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		return m, m != nil
	case map[string]map[string]any:
		out := make(map[string]any, len(m))
		for k, inner := range m {
			out[k] = inner
		}
		return out, true
	default:
		return nil, false
	}
}
