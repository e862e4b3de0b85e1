// Package hungarian solves the rectangular linear assignment problem with the
// Kuhn–Munkres (Hungarian) algorithm.
//
// 🚀 What is it?
//
//	Given an R×C matrix of integer costs, pick min(R,C) cells so that no two
//	share a row or a column and their total cost is minimal. Typical uses:
//	  • workers → tasks
//	  • detections → tracks
//	  • requests → servers
//
// ✨ Algorithm outline:
//  1. Transpose when R > C, so every row can receive its own column.
//  2. Subtract each row's minimum (and each column's when square).
//  3. Greedily assign zeros in row-major order, covering their columns.
//  4. Repeat until all rows are assigned:
//     - prime uncovered zeros in assigned rows (cover row, uncover its column);
//     - an uncovered zero in a free row starts an augmenting path: flip it,
//     then reset primes and covers;
//     - no uncovered zero left: subtract the smallest uncovered value from
//     uncovered cells and add it to doubly covered cells.
//  5. Map the pairs back to the caller's orientation.
//
// ⚙️ Usage:
//
//	cost, _ := matrix.NewDenseInts([][]int{
//	  {4, 1, 3},
//	  {2, 0, 5},
//	  {3, 2, 2},
//	})
//	pairs, err := hungarian.Solve(cost)
//	total, _ := hungarian.TotalCost(cost, pairs)
//
// SolveColumns returns the same answer as cols[row] when R ≤ C.
//
// Errors:
//   - ErrInvalidInput      nil matrix, zero rows/columns, ragged slices.
//   - ErrMoreRowsThanCols  SolveColumns with R > C.
//   - ErrOptionViolation   invalid Option.
//   - ErrIterationLimit    WithMaxReductions exceeded.
//   - ErrInvariant         *InvariantError; unreachable in correct use.
//
// Performance:
//
//   - Time:   O(n²·m) for n = min(R,C), m = max(R,C)
//   - Memory: O(n·m) for the private working copy
//
// Every call owns its state; concurrent calls on different (or the same,
// read-only) matrices are safe.
package hungarian
