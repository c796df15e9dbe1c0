// Package map2d declares the Map2D container type, its sentinel errors,
// functional options, and the New constructor.
//
// Errors:
//
//	ErrNilKey - a row or column key is nil on an insertion path.
package map2d

import (
	"errors"
	"reflect"
)

// Sentinel errors for map2d operations.
var (
	// ErrNilKey indicates a nil row or column key was passed to an insertion
	// operation. Keys must be usable as map keys with a concrete identity;
	// values, by contrast, may be anything including nil.
	ErrNilKey = errors.New("map2d: row and column keys must be non-nil")
)

// Nilable lets pointer-backed key types report nilness without reflection,
// even when stored inside interfaces (typed-nil safe).
type Nilable interface {
	IsNil() bool
}

// Map2D is a sparse two-dimensional associative container.
//
// It maps an ordered (row key, column key) pair to a value, stored as a
// nested map from row key to (column key -> value). Both map levels are
// exclusively owned by the container; every view method returns a fresh
// copy, never an alias into live storage.
//
// Invariants:
//   - every row present in storage has at least one column entry
//     (empty rows are pruned on the remove path, never persisted);
//   - a (row, column) pair occurs at most once.
//
// Map2D performs no internal locking; see the package documentation for the
// concurrency contract.
type Map2D[R comparable, C comparable, V any] struct {
	// rows[rowKey][columnKey] = value
	rows map[R]map[C]V
}

// Option configures a Map2D before creation.
type Option func(*options)

// options collects constructor tunables shared by all instantiations.
type options struct {
	rowCapacity int
}

// WithRowCapacity pre-sizes the outer row map for n expected distinct rows.
// Values below one are ignored.
func WithRowCapacity(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.rowCapacity = n
		}
	}
}

// New creates an empty Map2D with the given options.
// Complexity: O(1).
func New[R comparable, C comparable, V any](opts ...Option) *Map2D[R, C, V] {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	return &Map2D[R, C, V]{rows: make(map[R]map[C]V, o.rowCapacity)}
}

// isNilKey reports whether k, boxed from a comparable key type, carries no
// usable identity: a nil interface, a typed-nil pointer or channel, or a
// Nilable reporting IsNil. Non-nilable kinds (strings, ints, structs, arrays)
// never match.
func isNilKey(k any) bool {
	if k == nil {
		return true
	}
	if n, ok := k.(Nilable); ok {
		return n.IsNil()
	}
	switch v := reflect.ValueOf(k); v.Kind() {
	case reflect.Pointer, reflect.Chan:
		return v.IsNil()
	}

	return false
}

// valuesEqual compares two stored values. Comparable values compare exactly
// as == would; non-comparable values fall back to deep equality rather than
// panicking.
func valuesEqual(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
