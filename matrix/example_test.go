package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/munkres/matrix"
)

// ExampleNewDenseInts builds a cost grid and reduces its first row by the row minimum.
func ExampleNewDenseInts() {
	m, err := matrix.NewDenseInts([][]int{
		{4, 1, 3},
		{2, 0, 5},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	m.SubRow(0, m.RowMin(0))
	fmt.Print(m)
	// Output:
	// [3, 0, 2]
	// [2, 0, 5]
}

// ExampleTranspose swaps the roles of rows and columns.
func ExampleTranspose() {
	m, _ := matrix.NewDenseInts([][]int{{1, 2, 3}})
	tr, _ := matrix.Transpose(m)
	fmt.Println(tr.Rows(), tr.Cols())
	// Output:
	// 3 1
}
