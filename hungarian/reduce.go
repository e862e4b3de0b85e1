// SPDX-License-Identifier: MIT

package hungarian

import (
	"log/slog"
	"math"
)

// reduceUncovered runs when a Search pass finds no uncovered zero. With k the
// minimum over cells in an uncovered row and an uncovered column, it adds k to
// every cell in a covered row and a covered column and subtracts k from every
// cell in an uncovered row and an uncovered column. Cells covered exactly once
// keep their value, so assigned and primed zeros survive, and at least one
// new uncovered zero appears.
//
// Covers and primes are left as they are.
//
// Complexity: O(rows·cols).
func (s *state) reduceUncovered() error {
	s.reductions++
	if s.opts.MaxReductions > 0 && s.reductions > s.opts.MaxReductions {
		return ErrIterationLimit
	}

	k := int64(math.MaxInt64)
	var r, c int
	for r = 0; r < s.rows; r++ {
		if s.rowCover.Get(r) {
			continue
		}
		row := s.work.Row(r)
		for c = 0; c < s.cols; c++ {
			if !s.colCover.Get(c) && row[c] < k {
				k = row[c]
			}
		}
	}
	if k == math.MaxInt64 {
		return s.invariantError("reduce", "no cell is both in an uncovered row and an uncovered column")
	}
	if k <= 0 {
		return s.invariantError("reduce", "minimum uncovered value %d is not positive", k)
	}

	// column covers, unpacked for the inner loop
	covered := make([]bool, s.cols)
	for c = 0; c < s.cols; c++ {
		covered[c] = s.colCover.Get(c)
	}
	for r = 0; r < s.rows; r++ {
		row := s.work.Row(r)
		rowCovered := s.rowCover.Get(r)
		for c = 0; c < s.cols; c++ {
			switch {
			case rowCovered && covered[c]:
				row[c] += k
			case !rowCovered && !covered[c]:
				row[c] -= k
			}
		}
	}

	s.opts.OnReduce(k)
	s.debug("reduce", slog.Int64("min", k), slog.Int("reductions", s.reductions))

	return nil
}
