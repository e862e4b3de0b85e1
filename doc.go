// Package munkres solves the rectangular linear assignment problem: given an
// R×C matrix of integer costs, choose min(R,C) cells, no two in the same row
// or column, with the smallest possible sum.
//
// 🚀 What is inside?
//
//	matrix/     int64 Dense matrix, validators, Transpose/Equal helpers
//	bitvec/     fixed-length bit vector used for row/column covers
//	hungarian/  Kuhn–Munkres solver (Solve, SolveColumns, SolveSlices),
//	              Validate and TotalCost
//	examples/   runnable courier and tracking scenarios
//
// ✨ Quick start:
//
//	cost, _ := matrix.NewDenseInts([][]int{
//		{82, 83, 69, 92},
//		{77, 37, 49, 92},
//		{11, 69, 5, 86},
//		{8, 9, 98, 23},
//	})
//	pairs, _ := hungarian.Solve(cost) // [(0,2) (1,1) (2,0) (3,3)], total 140
//
// Rectangular input is fine either way: a tall matrix leaves R−C rows
// unassigned, a wide one leaves C−R columns unused.
//
//	go get github.com/katalvlaran/munkres
package munkres
