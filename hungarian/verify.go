// SPDX-License-Identifier: MIT

package hungarian

import (
	"fmt"

	"github.com/katalvlaran/munkres/bitvec"
	"github.com/katalvlaran/munkres/matrix"
)

// Validate checks that pairs is a complete feasible assignment for a
// rows×cols matrix: exactly min(rows, cols) pairs, indices in range, and no
// row or column used twice.
//
// Errors: ErrInvalidAssignment wrapped with the first violation found.
// Complexity: O(len(pairs) + rows + cols).
func Validate(pairs []Pair, rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return fmt.Errorf("%w: shape %dx%d", ErrInvalidAssignment, rows, cols)
	}
	if want := min(rows, cols); len(pairs) != want {
		return fmt.Errorf("%w: %d pairs, want %d", ErrInvalidAssignment, len(pairs), want)
	}

	usedRows, usedCols := bitvec.New(rows), bitvec.New(cols)
	for _, p := range pairs {
		if p.Row < 0 || p.Row >= rows || p.Col < 0 || p.Col >= cols {
			return fmt.Errorf("%w: pair %v outside %dx%d", ErrInvalidAssignment, p, rows, cols)
		}
		if usedRows.Get(p.Row) {
			return fmt.Errorf("%w: row %d used twice", ErrInvalidAssignment, p.Row)
		}
		if usedCols.Get(p.Col) {
			return fmt.Errorf("%w: column %d used twice", ErrInvalidAssignment, p.Col)
		}
		usedRows.Set(p.Row, true)
		usedCols.Set(p.Col, true)
	}

	return nil
}

// TotalCost sums cost over pairs. Pass the original matrix: the solver's
// internal reductions change values but not which assignment is optimal.
//
// Errors: ErrInvalidInput for a nil or empty matrix; the matrix's own
// out-of-range error for a pair outside it.
func TotalCost(cost matrix.Matrix, pairs []Pair) (int64, error) {
	if err := matrix.ValidateShape(cost); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	var total int64
	for _, p := range pairs {
		v, err := cost.At(p.Row, p.Col)
		if err != nil {
			return 0, fmt.Errorf("hungarian: TotalCost %v: %w", p, err)
		}
		total += v
	}

	return total, nil
}
