// Package matrix provides the dense integer grid consumed by the assignment
// solver.
//
// The matrix package provides:
//
//   - Matrix, a minimal interface (Rows, Cols, At, Set, Clone) so callers can
//     plug their own storage into the solver.
//   - Dense, a row-major int64 implementation with bounds-checked accessors,
//     no-copy row views for hot loops and row/column reductions.
//   - Transpose and Equal helpers, and validators for shape and nil checks.
//
// Dense matrices use O(r·c) memory; there is no sparse representation.
//
// See example_test.go for usage patterns.
package matrix
