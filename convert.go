// File: convert.go
// Role: Whole-container copies: Clone (same types) and Convert (new types).

package map2d

// Clone returns a deep copy of the container: both map levels are freshly
// allocated, values are copied by assignment. The clone and the receiver are
// fully independent afterwards.
// Complexity: O(entries).
func (m *Map2D[R, C, V]) Clone() *Map2D[R, C, V] {
	out := New[R, C, V](WithRowCapacity(len(m.rows)))
	for r, row := range m.rows {
		inner := make(map[C]V, len(row))
		for c, v := range row {
			inner[c] = v
		}
		out.rows[r] = inner
	}

	return out
}

// Equal reports whether m and other hold exactly the same set of
// (row, column, value) triples. Value comparison matches ContainsValue
// (deep equality for non-comparable types). A nil other is never equal.
// Complexity: O(entries).
func (m *Map2D[R, C, V]) Equal(other *Map2D[R, C, V]) bool {
	if other == nil || len(m.rows) != len(other.rows) {
		return false
	}
	for r, row := range m.rows {
		otherRow, ok := other.rows[r]
		if !ok || len(row) != len(otherRow) {
			return false
		}
		for c, v := range row {
			ov, ok := otherRow[c]
			if !ok || !valuesEqual(v, ov) {
				return false
			}
		}
	}

	return true
}

// Convert produces an independent container by applying rowFn, columnFn and
// valueFn to every stored (row, column, value) triple of m. Go methods cannot
// introduce type parameters, so the type-converting copy is a top-level
// function.
//
// Traversal order is unspecified (Go map iteration). When two distinct source
// pairs convert to the same (R2, C2) pair, the later-processed value wins:
// collisions are a destructive many-to-one reduction, not an error. Callers
// needing deterministic collision resolution must supply conversion functions
// that cannot collide.
//
// The conversion functions are treated as pure and total. Returns ErrNilKey
// if rowFn or columnFn produces a nil key; the partially built copy is
// discarded and m is untouched.
//
// Complexity: O(entries) plus the cost of the conversion functions.
func Convert[R, C, R2, C2 comparable, V, V2 any](
	m *Map2D[R, C, V],
	rowFn func(R) R2,
	columnFn func(C) C2,
	valueFn func(V) V2,
) (*Map2D[R2, C2, V2], error) {
	out := New[R2, C2, V2](WithRowCapacity(len(m.rows)))
	for r, row := range m.rows {
		for c, v := range row {
			if _, _, err := out.Put(rowFn(r), columnFn(c), valueFn(v)); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}
