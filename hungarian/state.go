// SPDX-License-Identifier: MIT

package hungarian

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/munkres/bitvec"
	"github.com/katalvlaran/munkres/matrix"
)

// state is the mutable bookkeeping of one solve. It is created per call and
// never shared.
//
// Invariants outside of augment:
//   - assigned[r] != none ⇒ work[r][assigned[r]] == 0
//   - no column appears twice in assigned
//   - colCover equals the set of assigned columns, except for columns
//     uncovered because their row was primed (that row is then row-covered).
type state struct {
	work       *matrix.Dense // oriented private copy, rows ≤ cols
	rows, cols int
	flipped    bool // work is the transpose of the caller's matrix

	none     int   // sentinel column (== cols) for "no assignment/prime"
	assigned []int // assigned[r] = column of r's assigned zero, or none
	primed   []int // primed[r] = column of r's primed zero, or none
	byCol    []int // byCol[c] = row assigned to c, or rows; rebuilt per augment

	rowCover *bitvec.Vector
	colCover *bitvec.Vector

	remaining  int // rows still unassigned
	reductions int // uncovered-value reductions performed so far

	opts Options
}

// newState copies cost into an oriented working matrix (columns ≥ rows) and
// allocates the maps and covers.
func newState(cost matrix.Matrix, opts Options) (*state, error) {
	if err := matrix.ValidateShape(cost); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	var (
		work    *matrix.Dense
		flipped = cost.Cols() < cost.Rows()
		err     error
	)
	if flipped {
		work, err = matrix.Transpose(cost)
	} else {
		work, err = matrix.ToDense(cost)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	rows, cols := work.Shape()
	s := &state{
		work:      work,
		rows:      rows,
		cols:      cols,
		flipped:   flipped,
		none:      cols,
		assigned:  make([]int, rows),
		primed:    make([]int, rows),
		byCol:     make([]int, cols),
		rowCover:  bitvec.New(rows),
		colCover:  bitvec.New(cols),
		remaining: rows,
		opts:      opts,
	}
	fill(s.assigned, s.none)
	fill(s.primed, s.none)

	return s, nil
}

func fill(xs []int, v int) {
	for i := range xs {
		xs[i] = v
	}
}

// reduceInitial subtracts each row's minimum, and for square matrices each
// column's minimum afterwards, so every row holds at least one zero.
func (s *state) reduceInitial() {
	var i, j int
	for i = 0; i < s.rows; i++ {
		s.work.SubRow(i, s.work.RowMin(i))
	}
	if s.rows != s.cols {
		return
	}
	for j = 0; j < s.cols; j++ {
		s.work.SubCol(j, s.work.ColMin(j))
	}
}

// assignGreedy assigns zeros in row-major order to free rows and uncovered
// columns, covering each assigned column.
func (s *state) assignGreedy() {
	var i, j int
	for i = 0; i < s.rows; i++ {
		row := s.work.Row(i)
		for j = 0; j < s.cols; j++ {
			if row[j] == 0 && !s.colCover.Get(j) {
				s.assigned[i] = j
				s.colCover.Set(j, true)

				break
			}
		}
	}
	s.remaining = s.rows - s.colCover.Count()
}

// coverAssigned clears primes and covers, then covers exactly the assigned columns.
func (s *state) coverAssigned() {
	fill(s.primed, s.none)
	s.rowCover.Clear()
	s.colCover.Clear()
	for _, c := range s.assigned {
		if c != s.none {
			s.colCover.Set(c, true)
		}
	}
}

// indexByCol rebuilds the column → assigned row lookup.
func (s *state) indexByCol() {
	fill(s.byCol, s.rows)
	for r, c := range s.assigned {
		if c != s.none {
			s.byCol[c] = r
		}
	}
}

func (s *state) invariantError(phase, format string, args ...any) *InvariantError {
	return &InvariantError{
		Phase:    phase,
		Detail:   fmt.Sprintf(format, args...),
		RowCover: s.rowCover.String(),
		ColCover: s.colCover.String(),
	}
}

// checkComplete verifies the final state: every row assigned to a distinct
// column holding a zero.
// Complexity: O(rows + cols).
func (s *state) checkComplete() error {
	seen := bitvec.New(s.cols)
	for r, c := range s.assigned {
		if c == s.none {
			return s.invariantError("verify", "row %d unassigned", r)
		}
		if seen.Get(c) {
			return s.invariantError("verify", "column %d assigned twice", c)
		}
		seen.Set(c, true)
		if v := s.work.Row(r)[c]; v != 0 {
			return s.invariantError("verify", "assigned cell (%d,%d) holds %d, not zero", r, c, v)
		}
	}

	return nil
}

// pairs projects the assignment back to the caller's orientation, sorted by Row.
func (s *state) pairs() []Pair {
	out := make([]Pair, s.rows)
	for r, c := range s.assigned {
		if s.flipped {
			out[r] = Pair{Row: c, Col: r}
		} else {
			out[r] = Pair{Row: r, Col: c}
		}
	}
	if s.flipped {
		slices.SortFunc(out, func(a, b Pair) int { return a.Row - b.Row })
	}

	return out
}

// columns projects the assignment as cols[row]; only valid when !flipped.
func (s *state) columns() []int {
	return slices.Clone(s.assigned)
}
