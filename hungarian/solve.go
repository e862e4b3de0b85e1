// SPDX-License-Identifier: MIT

// Package hungarian - solver entry points and the augmenting-path loop.
//
// Stages per call:
//  1. Orientation: transpose when the caller's matrix has more rows than columns.
//  2. Initial reduction (rows; columns too when square).
//  3. Greedy zero assignment; return early when every row is assigned.
//  4. Search/augment/reduce loop until no row is left unassigned.
//  5. Verification and projection back to the caller's orientation.
package hungarian

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/munkres/matrix"
)

// sweep outcomes of one Search pass.
type sweep int

const (
	sweepIdle      sweep = iota // no uncovered zero: reduce next
	sweepPrimed                 // primes placed, no augmenting path yet
	sweepAugmented              // one more row assigned
)

// Solve returns a minimum-cost assignment of cost as min(R, C) pairs, one per
// row of the smaller dimension, sorted by Row. Each row and column appears at
// most once. cost is not modified; the solver works on its own copy.
//
// Costs are signed integers; the caller must leave enough headroom that
// subtracting the smallest value in a row (and adding reduction minima to
// covered columns) cannot overflow int64.
//
// Errors: ErrInvalidInput, ErrOptionViolation, ErrIterationLimit and, for
// broken internal bookkeeping, an *InvariantError (errors.Is ErrInvariant).
//
// Complexity: O(n²·m) time for an n×m oriented matrix (n ≤ m), O(n·m) memory.
func Solve(cost matrix.Matrix, opts ...Option) ([]Pair, error) {
	pairs, err := run(cost, opts, (*state).pairs)
	if err != nil {
		return nil, err
	}
	// feasibility in the caller's orientation
	if err = Validate(pairs, cost.Rows(), cost.Cols()); err != nil {
		return nil, &InvariantError{Phase: "verify", Detail: err.Error()}
	}

	return pairs, nil
}

// SolveColumns is the implicit form of Solve: cols[i] is the column
// assigned to row i. It requires Rows() ≤ Cols() and returns
// ErrMoreRowsThanCols otherwise.
func SolveColumns(cost matrix.Matrix, opts ...Option) ([]int, error) {
	if err := matrix.ValidateShape(cost); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	if cost.Rows() > cost.Cols() {
		return nil, ErrMoreRowsThanCols
	}

	return run(cost, opts, (*state).columns)
}

// SolveSlices is Solve for callers holding a rectangular [][]int64.
func SolveSlices(cost [][]int64, opts ...Option) ([]Pair, error) {
	m, err := matrix.NewDenseFrom(cost)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	return Solve(m, opts...)
}

// run is the single core routine; project shapes the result.
func run[T any](cost matrix.Matrix, opts []Option, project func(*state) T) (T, error) {
	var zero T

	o, err := gatherOptions(opts)
	if err != nil {
		return zero, err
	}
	s, err := newState(cost, o)
	if err != nil {
		return zero, err
	}
	if err = s.solve(); err != nil {
		return zero, err
	}

	return project(s), nil
}

// solve drives stages 2–4 on an initialized state.
func (s *state) solve() error {
	s.reduceInitial()
	s.assignGreedy()
	s.debug("greedy", slog.Int("rows", s.rows), slog.Int("cols", s.cols),
		slog.Bool("flipped", s.flipped), slog.Int("remaining", s.remaining))

	for s.remaining > 0 {
		outcome, err := s.search()
		if err != nil {
			return err
		}
		if outcome != sweepIdle {
			continue
		}
		if err = s.reduceUncovered(); err != nil {
			return err
		}
	}

	return s.checkComplete()
}

// search makes one row-major pass over uncovered cells. An uncovered zero in
// an assigned row is primed: the row gets covered and its assigned column
// uncovered. An uncovered zero in a free row starts an augmenting path, after
// which the pass ends.
func (s *state) search() (sweep, error) {
	outcome := sweepIdle

	var r, c int
	for r = 0; r < s.rows; r++ {
		if s.rowCover.Get(r) {
			continue
		}
		row := s.work.Row(r)
		for c = 0; c < s.cols; c++ {
			if row[c] != 0 || s.colCover.Get(c) {
				continue
			}
			if s.assigned[r] == s.none {
				if err := s.augment(r, c); err != nil {
					return outcome, err
				}

				return sweepAugmented, nil
			}

			s.primed[r] = c
			s.rowCover.Set(r, true)
			s.colCover.Set(s.assigned[r], false)
			s.opts.OnPrime(r, c)
			s.debug("prime", slog.Int("row", r), slog.Int("col", c),
				slog.Int("uncovered_col", s.assigned[r]))
			outcome = sweepPrimed

			break // row r is covered now
		}
	}

	return outcome, nil
}

// augment flips the alternating path that starts at the uncovered zero
// (row, col) of an unassigned row: from each column with an assigned row it
// moves to that row's primed column, until it reaches a free column. Every
// visited (row, col) becomes an assignment, so one more row is assigned.
func (s *state) augment(row, col int) error {
	s.indexByCol()

	r, c := row, col
	for steps := 0; ; steps++ {
		if steps > s.rows {
			return s.invariantError("augment", "path from (%d,%d) longer than %d rows", row, col, s.rows)
		}
		next := s.byCol[c] // row currently holding column c, read before overwriting
		s.assigned[r] = c
		if next == s.rows {
			break
		}
		r = next
		c = s.primed[r]
		if c == s.none {
			return s.invariantError("augment", "row %d on path has no primed zero", r)
		}
	}

	s.coverAssigned()
	s.remaining--
	s.opts.OnAugment(row, col, s.remaining)
	s.debug("augment", slog.Int("row", row), slog.Int("col", col), slog.Int("remaining", s.remaining))

	return nil
}

func (s *state) debug(msg string, attrs ...slog.Attr) {
	if s.opts.Logger == nil {
		return
	}
	s.opts.Logger.LogAttrs(context.Background(), slog.LevelDebug, "hungarian: "+msg, attrs...)
}
