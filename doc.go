// Package map2d provides a generic two-dimensional associative container:
// a sparse mapping from an ordered (row key, column key) pair to a value,
// with row- and column-oriented views, bulk merges and type-converting copies.
//
// 🚀 What is Map2D?
//
//	A reusable in-memory structure for callers who need sparse matrix-like
//	storage without committing to dense array allocation:
//	  • Point operations: Put, Get, GetOrDefault, Remove — amortized O(1)
//	  • Existence checks: ContainsKey, ContainsRow, ContainsColumn, ContainsValue
//	  • Views: RowView, ColumnView, RowMapView, ColumnMapView — independent snapshots
//	  • Bulk operations: PutAll, PutAllToRow, PutAllToColumn, FillMapFromRow,
//	    FillMapFromColumn — floating receivers for call chaining
//	  • Copies: Clone, Convert (per-triple key/value conversion functions)
//
// ✨ Key properties:
//   - Sparse nested-map storage: map[R]map[C]V; empty rows are pruned eagerly,
//     so ContainsRow is O(1) and never reports a hollow row
//   - Views are defensive copies — later mutation of the container never leaks
//     into a view already handed to a caller, and vice versa
//   - Lookups on unknown keys are normal returns (comma-ok, empty maps),
//     never errors; the only validation failure is ErrNilKey on insertion
//   - Pure Go, no cgo; the only external dependencies are test-side
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/map2d"
//
//	m := map2d.New[string, string, int]()
//	m.Put("r1", "c1", 10)
//	m.Put("r1", "c2", 20)
//
//	row := m.RowView("r1")        // map[string]int{"c1": 10, "c2": 20}
//	v, ok := m.Get("r1", "c1")    // 10, true
//	prev, replaced, _ := m.Put("r1", "c1", 99) // 10, true
//
//	// Type-converting copy; colliding converted keys resolve last-write-wins.
//	n, err := map2d.Convert(m, strings.ToUpper, strings.ToUpper, strconv.Itoa)
//
// Concurrency:
//
//	Map2D performs no internal locking. Concurrent mutation without external
//	synchronization is a data race; the single-writer model keeps the common
//	case allocation-light. A view, once returned, is an independent snapshot
//	and needs no further synchronization.
//
// Complexity:
//
//   - Put / Get / Remove / ContainsKey / ContainsRow: O(1) amortized
//   - Size / ColumnView / ContainsColumn / FillMapFromColumn: O(rows)
//   - ContainsValue / RowMapView / ColumnMapView / Convert / Clone: O(entries)
//
// Errors:
//
//   - ErrNilKey: a row or column key was nil on an insertion path.
//     Raised before any mutation; the container is never left half-updated.
//
// See example_test.go for runnable scenarios.
package map2d
