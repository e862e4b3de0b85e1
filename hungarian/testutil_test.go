// Package hungarian_test provides fixtures and a brute-force oracle shared
// across *_test.go files in this package.
package hungarian_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/munkres/hungarian"
	"github.com/katalvlaran/munkres/matrix"
)

// tenByTen has optimum 112.
var tenByTen = [][]int{
	{59, 34, 46, 36, 41, 89, 20, 71, 15, 50},
	{78, 12, 44, 9, 61, 13, 62, 43, 84, 97},
	{12, 11, 50, 49, 29, 52, 46, 59, 94, 58},
	{40, 57, 75, 50, 14, 47, 19, 25, 98, 8},
	{24, 96, 98, 57, 5, 85, 96, 67, 85, 84},
	{54, 4, 49, 27, 19, 11, 80, 82, 78, 69},
	{77, 77, 72, 44, 35, 94, 66, 25, 3, 26},
	{48, 81, 36, 50, 82, 55, 93, 7, 25, 34},
	{22, 46, 18, 50, 33, 51, 25, 40, 74, 59},
	{53, 62, 53, 48, 70, 26, 11, 73, 72, 97},
}

// tenByNine has optimum 68 with one row left out.
var tenByNine = [][]int{
	{13, 76, 34, 92, 65, 6, 32, 24, 82},
	{64, 88, 44, 54, 14, 7, 8, 62, 78},
	{35, 39, 68, 3, 30, 4, 86, 42, 1},
	{53, 21, 31, 52, 78, 76, 9, 5, 69},
	{87, 51, 7, 96, 49, 91, 19, 33, 38},
	{21, 49, 26, 73, 4, 96, 42, 31, 13},
	{44, 62, 3, 58, 69, 53, 72, 92, 18},
	{36, 3, 59, 95, 83, 49, 21, 25, 19},
	{33, 7, 93, 43, 68, 18, 9, 91, 38},
	{19, 38, 78, 23, 18, 9, 23, 42, 32},
}

func mustDense(t testing.TB, rows [][]int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseInts(rows)
	require.NoError(t, err)

	return m
}

func transposeInts(a [][]int) [][]int {
	out := make([][]int, len(a[0]))
	for j := range out {
		out[j] = make([]int, len(a))
		for i := range a {
			out[j][i] = a[i][j]
		}
	}

	return out
}

func transposePairs(ps []hungarian.Pair) []hungarian.Pair {
	out := make([]hungarian.Pair, len(ps))
	for i, p := range ps {
		out[i] = hungarian.Pair{Row: p.Col, Col: p.Row}
	}

	return out
}

// randomInts fills an r×c grid with values in [lo, hi].
func randomInts(rng *rand.Rand, r, c, lo, hi int) [][]int {
	out := make([][]int, r)
	for i := range out {
		out[i] = make([]int, c)
		for j := range out[i] {
			out[i][j] = lo + rng.Intn(hi-lo+1)
		}
	}

	return out
}

// bruteForceMin enumerates every injective map from the smaller dimension
// into the larger one and returns the cheapest total.
// Complexity: O(P(m, n)·n); keep n, m ≤ 6.
func bruteForceMin(a [][]int) int64 {
	rows, cols := len(a), len(a[0])
	small, large := rows, cols
	if rows > cols {
		small, large = cols, rows
	}

	best := int64(math.MaxInt64)
	for _, perm := range combin.Permutations(large, small) {
		var sum int64
		for k, v := range perm {
			if rows <= cols {
				sum += int64(a[k][v])
			} else {
				sum += int64(a[v][k])
			}
		}
		if sum < best {
			best = sum
		}
	}

	return best
}
