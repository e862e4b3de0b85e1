// SPDX-License-Identifier: MIT

// Package hungarian defines options, results and error definitions for the
// Kuhn–Munkres assignment solver.
package hungarian

import (
	"errors"
	"fmt"
	"log/slog"
)

// Sentinel errors for solver execution.
var (
	// ErrInvalidInput is returned for a nil matrix, a matrix with zero rows
	// or columns, or ragged slice input.
	ErrInvalidInput = errors.New("hungarian: invalid input")

	// ErrMoreRowsThanCols is returned by SolveColumns when the cost matrix has
	// more rows than columns, so not every row can receive a column.
	ErrMoreRowsThanCols = fmt.Errorf("%w: more rows than columns", ErrInvalidInput)

	// ErrInvariant marks a broken internal invariant. It is never expected in
	// correct use; the concrete error is an *InvariantError.
	ErrInvariant = errors.New("hungarian: internal invariant violated")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("hungarian: invalid option supplied")

	// ErrIterationLimit is returned when WithMaxReductions is exceeded.
	ErrIterationLimit = errors.New("hungarian: reduction limit exceeded")

	// ErrInvalidAssignment is returned by Validate for infeasible pairings.
	ErrInvalidAssignment = errors.New("hungarian: invalid assignment")
)

// InvariantError reports the solver phase where the cover/assignment
// bookkeeping stopped being consistent, together with the cover sets at that
// moment. errors.Is(err, ErrInvariant) holds for every InvariantError.
type InvariantError struct {
	Phase    string // "reduce", "augment" or "verify"
	Detail   string
	RowCover string // bit string of covered rows, e.g. "[0110]"
	ColCover string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%s in %s: %s (rows=%s cols=%s)",
		ErrInvariant, e.Phase, e.Detail, e.RowCover, e.ColCover)
}

// Unwrap exposes ErrInvariant to errors.Is.
func (e *InvariantError) Unwrap() error { return ErrInvariant }

// Pair is one row→column assignment in the caller's indexing.
type Pair struct {
	Row int
	Col int
}

func (p Pair) String() string { return fmt.Sprintf("(%d,%d)", p.Row, p.Col) }

// Option configures the solver via functional arguments.
// If an Option is invalid (e.g. a negative limit), it is recorded
// internally and surfaced as ErrOptionViolation when the solver is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to observe a solve.
//
// Hook coordinates are in the solver's working orientation: when the input
// has more rows than columns the matrix is transposed first, so hook rows
// are the caller's columns.
type Options struct {
	// Logger receives Debug-level events for primes, augmentations and
	// reductions. Nil disables logging.
	Logger *slog.Logger

	// OnPrime is called whenever an uncovered zero is primed.
	OnPrime func(row, col int)

	// OnAugment is called after each augmenting path is applied. (row, col)
	// is the zero that started the path; remaining counts rows still
	// unassigned afterwards.
	OnAugment func(row, col, remaining int)

	// OnReduce is called with the minimum uncovered value of each reduction.
	OnReduce func(min int64)

	// MaxReductions, if > 0, bounds the number of uncovered-value
	// reductions; exceeding it fails the solve with ErrIterationLimit.
	// 0 means no limit.
	MaxReductions int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with:
//   - no logger
//   - no-op hooks
//   - no reduction limit.
func DefaultOptions() Options {
	return Options{
		OnPrime:   func(int, int) {},
		OnAugment: func(int, int, int) {},
		OnReduce:  func(int64) {},
	}
}

// WithLogger routes Debug-level solver events to l.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithOnPrime registers a callback to run on every primed zero.
func WithOnPrime(fn func(row, col int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnPrime = fn
		}
	}
}

// WithOnAugment registers a callback to run after every augmentation.
func WithOnAugment(fn func(row, col, remaining int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnAugment = fn
		}
	}
}

// WithOnReduce registers a callback to run on every uncovered-value reduction.
func WithOnReduce(fn func(min int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnReduce = fn
		}
	}
}

// WithMaxReductions bounds the number of reductions.
//
//	n > 0: fail with ErrIterationLimit after n reductions
//	n == 0: explicit no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxReductions(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxReductions cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxReductions = n
	}
}

func gatherOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o, o.err
}
