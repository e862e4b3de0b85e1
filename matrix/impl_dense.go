// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Offer no-copy row views (Row) and in-place row/column reductions for solvers.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set: O(1); Clone: O(r*c); Row: O(1).

package matrix

import (
	"fmt"
	"strconv"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"  // method tag used in error wrappers
	ctxSet  = "Set" // method tag used in error wrappers
	ctxFrom = "NewDenseFrom"
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices,
// producing "Dense.<method>(row,col): <sentinel>".
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int     // row and column counts (>0)
	data []int64 // contiguous row-major storage (len == r*c)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]int64, rows*cols)}, nil
}

// NewDenseFrom copies a rectangular slice-of-slices into a new Dense.
//
// Errors:
//   - ErrInvalidDimensions when rows is empty or the first row is empty.
//   - ErrNonRectangular (wrapped with the offending row) for ragged input.
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDenseFrom(rows [][]int64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}

	var i int
	for i = range rows {
		if len(rows[i]) != m.c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w",
				ctxFrom, i, len(rows[i]), m.c, ErrNonRectangular)
		}
		copy(m.data[i*m.c:(i+1)*m.c], rows[i])
	}

	return m, nil
}

// NewDenseInts is NewDenseFrom for int literals, which is what most callers
// and tests have at hand.
func NewDenseInts(rows [][]int) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}

	var i, j int
	for i = range rows {
		if len(rows[i]) != m.c {
			return nil, fmt.Errorf("%s: row %d has %d values, want %d: %w",
				ctxFrom, i, len(rows[i]), m.c, ErrNonRectangular)
		}
		for j = range rows[i] {
			m.data[i*m.c+j] = int64(rows[i][j])
		}
	}

	return m, nil
}

// Rows returns the number of rows.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
func (m *Dense) Cols() int { return m.c }

// Shape returns (rows, cols) in one call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the flat offset of (row, col) or returns a wrapped ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At returns the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (int64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v int64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy with independent storage.
// Complexity: Time O(r*c), Space O(r*c).
func (m *Dense) Clone() Matrix {
	cp := make([]int64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// Row returns a no-copy view of row i. Writes through the slice mutate m.
// It panics when i is out of range: the view is meant for solver hot loops
// that already iterate within bounds.
func (m *Dense) Row(i int) []int64 {
	if i < 0 || i >= m.r {
		panic(denseErrorf("Row", i, 0, ErrOutOfRange))
	}

	return m.data[i*m.c : (i+1)*m.c : (i+1)*m.c]
}

// RowMin returns the smallest value in row i (i must be in range).
// Complexity: O(c).
func (m *Dense) RowMin(i int) int64 {
	row := m.Row(i)
	minV := row[0]
	for _, v := range row[1:] {
		if v < minV {
			minV = v
		}
	}

	return minV
}

// ColMin returns the smallest value in column j (j must be in range).
// Complexity: O(r).
func (m *Dense) ColMin(j int) int64 {
	minV := m.data[j]
	var i int
	for i = 1; i < m.r; i++ {
		if v := m.data[i*m.c+j]; v < minV {
			minV = v
		}
	}

	return minV
}

// SubRow subtracts v from every element of row i.
func (m *Dense) SubRow(i int, v int64) {
	row := m.Row(i)
	for j := range row {
		row[j] -= v
	}
}

// SubCol subtracts v from every element of column j.
func (m *Dense) SubCol(j int, v int64) {
	var i int
	for i = 0; i < m.r; i++ {
		m.data[i*m.c+j] -= v
	}
}

// Do visits each element in row-major order and stops early when f
// returns false.
// Complexity: Time O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v int64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// String renders rows as comma-separated lines for diagnostics.
// Not for hot paths.
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * m.c
		for j = 0; j < m.c; j++ {
			b.WriteString(strconv.FormatInt(m.data[base+j], 10))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
