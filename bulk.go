// File: bulk.go
// Role: Bulk copies in and out of the container.
//
// Every method here returns the receiver ("floating" receiver) so calls can
// be chained:
//
//	m.PutAllToRow(hdr, "r1").PutAllToRow(body, "r2").PutAll(other)
//
// Overlap policy: bulk insertion follows Put semantics — a later entry at an
// occupied (row, column) pair overwrites the earlier one.

package map2d

// FillMapFromRow copies every (column, value) entry of rowKey into dst
// without clearing it first (additive merge into the caller's map). No-op
// when the row holds no entries. dst must be non-nil unless the row is empty.
// Complexity: O(row size).
func (m *Map2D[R, C, V]) FillMapFromRow(dst map[C]V, rowKey R) *Map2D[R, C, V] {
	row, ok := m.rows[rowKey]
	if !ok {
		return m
	}
	for c, v := range row {
		dst[c] = v
	}

	return m
}

// FillMapFromColumn copies every (row, value) entry stored under columnKey
// into dst without clearing it first. No-op when no row holds the column.
// Complexity: O(rows).
func (m *Map2D[R, C, V]) FillMapFromColumn(dst map[R]V, columnKey C) *Map2D[R, C, V] {
	for r, row := range m.rows {
		if v, ok := row[columnKey]; ok {
			dst[r] = v
		}
	}

	return m
}

// PutAll copies every (row, column, value) triple of src into m with Put
// semantics: overlapping pairs take src's value. src is not mutated; sharing
// no structure with src afterwards is guaranteed.
// Complexity: O(src entries).
func (m *Map2D[R, C, V]) PutAll(src *Map2D[R, C, V]) *Map2D[R, C, V] {
	for r, srcRow := range src.rows {
		row, ok := m.rows[r]
		if !ok {
			row = make(map[C]V, len(srcRow))
			m.rows[r] = row
		}
		for c, v := range srcRow {
			row[c] = v
		}
	}

	return m
}

// PutAllToRow inserts every (key, value) entry of src under the fixed rowKey,
// treating each src key as a column key. An empty src is a strict no-op: no
// row entry is created for rowKey.
// Complexity: O(len(src)).
func (m *Map2D[R, C, V]) PutAllToRow(src map[C]V, rowKey R) *Map2D[R, C, V] {
	if len(src) == 0 {
		return m
	}
	row, ok := m.rows[rowKey]
	if !ok {
		row = make(map[C]V, len(src))
		m.rows[rowKey] = row
	}
	for c, v := range src {
		row[c] = v
	}

	return m
}

// PutAllToColumn inserts every (key, value) entry of src under the fixed
// columnKey, treating each src key as a row key. An empty src performs no
// insertions and creates no rows.
// Complexity: O(len(src)).
func (m *Map2D[R, C, V]) PutAllToColumn(src map[R]V, columnKey C) *Map2D[R, C, V] {
	for r, v := range src {
		row, ok := m.rows[r]
		if !ok {
			row = make(map[C]V, 1)
			m.rows[r] = row
		}
		row[columnKey] = v
	}

	return m
}
