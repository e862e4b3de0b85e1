// SPDX-License-Identifier: MIT

// Package matrix provides universal operations on any Matrix implementation:
// conversion to Dense, transpose and equality. All functions perform strict
// fail-fast validation and return clear errors on misuse.
package matrix

import "fmt"

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opTranspose = "Transpose"
	opToDense   = "ToDense"
)

// matrixErrorf wraps an underlying error with the given tag.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ToDense returns an independent *Dense copy of m.
// Stage 1 (Validate): nil and shape checks.
// Stage 2 (Execute): fast-path Clone for *Dense, otherwise element-wise copy.
// Time Complexity: O(r·c); Space Complexity: O(r·c).
func ToDense(m Matrix) (*Dense, error) {
	if err := ValidateShape(m); err != nil {
		return nil, matrixErrorf(opToDense, err)
	}
	if dm, ok := m.(*Dense); ok {
		return dm.Clone().(*Dense), nil
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(opToDense, err)
	}
	var (
		i, j int
		v    int64
	)
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opToDense, err)
			}
			res.data[i*cols+j] = v
		}
	}

	return res, nil
}

// Transpose returns a new Dense with rows and columns swapped.
// Stage 1 (Validate): nil and shape checks.
// Stage 2 (Prepare): allocate Dense(cols×rows).
// Stage 3 (Execute): fast-path for *Dense or fallback to interface.
// Time Complexity: O(r·c); Space Complexity: O(r·c).
func Transpose(m Matrix) (*Dense, error) {
	if err := ValidateShape(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}

		return res, nil
	}

	// Fallback: generic interface loop
	var v int64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opTranspose, err)
			}
			res.data[j*rows+i] = v
		}
	}

	return res, nil
}

// Equal reports whether a and b have the same shape and elements.
// Two nil matrices are equal; nil and non-nil are not.
// Complexity: O(r·c).
func Equal(a, b Matrix) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if ValidateSameShape(a, b) != nil {
		return false
	}

	var i, j int
	for i = 0; i < a.Rows(); i++ {
		for j = 0; j < a.Cols(); j++ {
			av, errA := a.At(i, j)
			bv, errB := b.At(i, j)
			if errA != nil || errB != nil || av != bv {
				return false
			}
		}
	}

	return true
}
