// File: views.go
// Role: Independent snapshots of container contents.
//
// Every method in this file returns freshly allocated maps or slices sharing
// no structure with live storage: mutating the container after a view is
// taken never alters the view, and mutating a view never alters the container.
//
// Determinism:
//   - Returned maps follow Go map semantics: membership is deterministic,
//     iteration order is not. Rows()/Columns() order is unspecified.

package map2d

// RowView returns a snapshot of the column->value contents of rowKey at call
// time. An unknown row yields an empty, non-nil map — never nil.
// Complexity: O(row size).
func (m *Map2D[R, C, V]) RowView(rowKey R) map[C]V {
	row, ok := m.rows[rowKey]
	if !ok {
		return map[C]V{}
	}
	out := make(map[C]V, len(row))
	for c, v := range row {
		out[c] = v
	}

	return out
}

// ColumnView returns a snapshot of the row->value pairs stored under
// columnKey, built by scanning every row. An unknown column yields an empty,
// non-nil map.
// Complexity: O(rows).
func (m *Map2D[R, C, V]) ColumnView(columnKey C) map[R]V {
	out := make(map[R]V)
	for r, row := range m.rows {
		if v, ok := row[columnKey]; ok {
			out[r] = v
		}
	}

	return out
}

// RowMapView returns a full snapshot of the container as row -> (column ->
// value), with every inner map copied.
// Complexity: O(entries).
func (m *Map2D[R, C, V]) RowMapView() map[R]map[C]V {
	out := make(map[R]map[C]V, len(m.rows))
	for r, row := range m.rows {
		inner := make(map[C]V, len(row))
		for c, v := range row {
			inner[c] = v
		}
		out[r] = inner
	}

	return out
}

// ColumnMapView returns a transposed full snapshot of the container as
// column -> (row -> value), regrouping every stored triple by column first.
// Complexity: O(entries).
func (m *Map2D[R, C, V]) ColumnMapView() map[C]map[R]V {
	out := make(map[C]map[R]V)
	for r, row := range m.rows {
		for c, v := range row {
			inner, ok := out[c]
			if !ok {
				inner = make(map[R]V)
				out[c] = inner
			}
			inner[r] = v
		}
	}

	return out
}

// Rows returns the row keys currently holding at least one entry, in
// unspecified order.
// Complexity: O(rows).
func (m *Map2D[R, C, V]) Rows() []R {
	out := make([]R, 0, len(m.rows))
	for r := range m.rows {
		out = append(out, r)
	}

	return out
}

// Columns returns the distinct column keys stored under any row, in
// unspecified order.
// Complexity: O(entries).
func (m *Map2D[R, C, V]) Columns() []C {
	seen := make(map[C]struct{})
	out := make([]C, 0)
	for _, row := range m.rows {
		for c := range row {
			if _, ok := seen[c]; ok {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, c)
		}
	}

	return out
}

// RowCount returns the number of rows holding at least one entry.
// Prefer RowCount over len(Rows()) to avoid the slice allocation.
// Complexity: O(1).
func (m *Map2D[R, C, V]) RowCount() int {
	return len(m.rows)
}

// ForEach invokes fn once per stored (row, column, value) triple, in
// unspecified order. fn must not mutate the container during traversal.
// Complexity: O(entries).
func (m *Map2D[R, C, V]) ForEach(fn func(rowKey R, columnKey C, value V)) {
	for r, row := range m.rows {
		for c, v := range row {
			fn(r, c, v)
		}
	}
}
