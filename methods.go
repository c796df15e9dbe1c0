// File: methods.go
// Role: Point operations and existence checks on Map2D.
//
// Determinism:
//   - All methods here are order-independent: membership and counting only.
//
// Concurrency:
//   - No locking; see package documentation for the single-writer contract.

package map2d

// Put inserts or replaces the value at the (rowKey, columnKey) pair.
//
// If the row has no inner map yet, one is created. The previous value stored
// at the exact pair is returned with replaced=true; otherwise the zero value
// with replaced=false.
//
// Returns ErrNilKey — before any mutation — when rowKey or columnKey is nil
// (nil pointer, nil channel, nil interface, or Nilable reporting IsNil).
// Values carry no such restriction and may themselves be nil.
//
// Complexity: O(1) amortized.
func (m *Map2D[R, C, V]) Put(rowKey R, columnKey C, value V) (prev V, replaced bool, err error) {
	if isNilKey(rowKey) || isNilKey(columnKey) {
		return prev, false, ErrNilKey
	}

	row, ok := m.rows[rowKey]
	if !ok {
		row = make(map[C]V)
		m.rows[rowKey] = row
	}
	prev, replaced = row[columnKey]
	row[columnKey] = value

	return prev, replaced, nil
}

// Get returns the value stored at (rowKey, columnKey) and whether it exists.
// Unknown rows and unknown columns are normal lookups, never errors.
// Complexity: O(1).
func (m *Map2D[R, C, V]) Get(rowKey R, columnKey C) (V, bool) {
	row, ok := m.rows[rowKey]
	if !ok {
		var zero V
		return zero, false
	}
	v, ok := row[columnKey]

	return v, ok
}

// GetOrDefault returns the value stored at (rowKey, columnKey), or def when
// the pair is absent. Presence alone decides: a stored zero value is present
// and is returned as-is.
// Complexity: O(1).
func (m *Map2D[R, C, V]) GetOrDefault(rowKey R, columnKey C, def V) V {
	if v, ok := m.Get(rowKey, columnKey); ok {
		return v
	}

	return def
}

// Remove deletes the entry at (rowKey, columnKey) if present and returns the
// removed value. When the removal empties the row's inner map, the row itself
// is pruned so that ContainsRow immediately reports false.
// Complexity: O(1) amortized.
func (m *Map2D[R, C, V]) Remove(rowKey R, columnKey C) (V, bool) {
	row, ok := m.rows[rowKey]
	if !ok {
		var zero V
		return zero, false
	}
	v, ok := row[columnKey]
	if !ok {
		var zero V
		return zero, false
	}
	delete(row, columnKey)
	if len(row) == 0 {
		delete(m.rows, rowKey)
	}

	return v, true
}

// Size returns the number of (row, column, value) triples stored — the sum
// of all inner map sizes, not the row count.
// Complexity: O(rows).
func (m *Map2D[R, C, V]) Size() int {
	total := 0
	for _, row := range m.rows {
		total += len(row)
	}

	return total
}

// IsEmpty reports whether the container holds no entries.
// Complexity: O(1) — invariant 1 guarantees no hollow rows.
func (m *Map2D[R, C, V]) IsEmpty() bool {
	return len(m.rows) == 0
}

// NonEmpty reports whether the container holds at least one entry.
func (m *Map2D[R, C, V]) NonEmpty() bool {
	return !m.IsEmpty()
}

// Clear removes every row and entry, returning the container to its initial
// empty state. Safe to call repeatedly or on an already-empty container.
func (m *Map2D[R, C, V]) Clear() {
	clear(m.rows)
}

// ContainsKey reports whether a value is stored at (rowKey, columnKey).
// Complexity: O(1).
func (m *Map2D[R, C, V]) ContainsKey(rowKey R, columnKey C) bool {
	row, ok := m.rows[rowKey]
	if !ok {
		return false
	}
	_, ok = row[columnKey]

	return ok
}

// ContainsRow reports whether at least one entry exists under rowKey.
// Complexity: O(1).
func (m *Map2D[R, C, V]) ContainsRow(rowKey R) bool {
	_, ok := m.rows[rowKey]

	return ok
}

// ContainsColumn reports whether at least one row stores an entry under
// columnKey. Columns are not independently indexed, so every row is scanned.
// Complexity: O(rows).
func (m *Map2D[R, C, V]) ContainsColumn(columnKey C) bool {
	for _, row := range m.rows {
		if _, ok := row[columnKey]; ok {
			return true
		}
	}

	return false
}

// ContainsValue reports whether any stored value equals v. Equality is value
// equality (deep for non-comparable types), not identity. Short-circuits on
// the first match.
// Complexity: O(entries) worst case.
func (m *Map2D[R, C, V]) ContainsValue(v V) bool {
	for _, row := range m.rows {
		for _, stored := range row {
			if valuesEqual(stored, v) {
				return true
			}
		}
	}

	return false
}
