package hungarian_test

import (
	"math/rand"
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/munkres/hungarian"
)

const propertyTrials = 400

// TestRandomAgainstBruteForce checks feasibility, completeness and optimality
// on small random matrices, mixing signs and heavy ties.
func TestRandomAgainstBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(20240601))
	for trial := 0; trial < propertyTrials; trial++ {
		r, c := 1+rng.Intn(6), 1+rng.Intn(6)
		lo, hi := 0, 20
		switch trial % 3 {
		case 1:
			lo, hi = -15, 15
		case 2:
			hi = 2 // many ties
		}
		a := randomInts(rng, r, c, lo, hi)
		m := mustDense(t, a)

		pairs, err := hungarian.Solve(m)
		require.NoError(t, err, spew.Sdump(a))
		require.NoError(t, hungarian.Validate(pairs, r, c), spew.Sdump(a, pairs))

		got, err := hungarian.TotalCost(m, pairs)
		require.NoError(t, err)
		require.Equal(t, bruteForceMin(a), got, "trial %d:\n%s", trial, spew.Sdump(a, pairs))
	}
}

// TestOrientationInvariance solves A and Aᵀ. Costs always agree; for
// non-square input the working matrix is identical, so pairs mirror exactly.
func TestOrientationInvariance(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for trial := 0; trial < propertyTrials/2; trial++ {
		r, c := 1+rng.Intn(6), 1+rng.Intn(6)
		a := randomInts(rng, r, c, 0, 30)
		at := transposeInts(a)

		p1, err := hungarian.Solve(mustDense(t, a))
		require.NoError(t, err)
		p2, err := hungarian.Solve(mustDense(t, at))
		require.NoError(t, err)

		c1, err := hungarian.TotalCost(mustDense(t, a), p1)
		require.NoError(t, err)
		c2, err := hungarian.TotalCost(mustDense(t, at), p2)
		require.NoError(t, err)
		require.Equal(t, c1, c2, spew.Sdump(a))

		if r != c {
			assert.ElementsMatch(t, p1, transposePairs(p2), spew.Sdump(a))
		}
	}
}

// TestReductionIdempotence subtracts a constant from one line of the fully
// assigned dimension: every feasible assignment shifts by the same amount,
// so the answer stays optimal for the original matrix.
func TestReductionIdempotence(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for trial := 0; trial < propertyTrials/2; trial++ {
		r, c := 1+rng.Intn(6), 1+rng.Intn(6)
		a := randomInts(rng, r, c, 0, 25)
		shift := 1 + rng.Intn(10)

		shifted := make([][]int, r)
		for i := range a {
			shifted[i] = append([]int(nil), a[i]...)
		}
		if r <= c {
			row := rng.Intn(r)
			for j := range shifted[row] {
				shifted[row][j] -= shift
			}
		} else {
			col := rng.Intn(c)
			for i := range shifted {
				shifted[i][col] -= shift
			}
		}

		pairs, err := hungarian.Solve(mustDense(t, shifted))
		require.NoError(t, err)

		got, err := hungarian.TotalCost(mustDense(t, a), pairs)
		require.NoError(t, err)
		require.Equal(t, bruteForceMin(a), got, spew.Sdump(a, shifted, pairs))
	}
}
