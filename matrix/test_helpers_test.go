package matrix_test

import "github.com/katalvlaran/munkres/matrix"

// sliceMatrix is a minimal non-Dense Matrix used to drive the generic
// (interface) code paths of Transpose/ToDense/Equal.
type sliceMatrix struct{ a [][]int64 }

var _ matrix.Matrix = sliceMatrix{}

func (m sliceMatrix) Rows() int { return len(m.a) }
func (m sliceMatrix) Cols() int {
	if len(m.a) == 0 {
		return 0
	}

	return len(m.a[0])
}
func (m sliceMatrix) At(i, j int) (int64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, matrix.ErrOutOfRange
	}

	return m.a[i][j], nil
}
func (m sliceMatrix) Set(i, j int, v int64) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return matrix.ErrOutOfRange
	}
	m.a[i][j] = v

	return nil
}
func (m sliceMatrix) Clone() matrix.Matrix {
	cp := make([][]int64, len(m.a))
	for i := range m.a {
		cp[i] = append([]int64(nil), m.a[i]...)
	}

	return sliceMatrix{a: cp}
}

// emptyMatrix reports a 0×0 shape.
type emptyMatrix struct{ sliceMatrix }

func (emptyMatrix) Clone() matrix.Matrix { return emptyMatrix{} }
