// SPDX-License-Identifier: MIT

// Package bitvec - fixed-size boolean vector.
//
// Purpose:
//   - Back the row/column cover sets of the assignment solver with a compact
//     []uint64 word array instead of []bool.
//   - Keep Clear and Count O(n/64) so cover resets after every augmentation
//     stay cheap on wide matrices.
//
// Misuse (negative size, index out of range) is a programmer error and panics.
package bitvec

import (
	"fmt"
	"math/bits"
	"strings"
)

const wordBits = 64

// Vector is a fixed-length sequence of bits. The zero value is an empty vector.
type Vector struct {
	n     int      // logical length in bits
	words []uint64 // len == ceil(n/64); bits past n are always zero
}

var _ fmt.Stringer = (*Vector)(nil)

// New returns a vector of n cleared bits.
// Complexity: O(n/64).
func New(n int) *Vector {
	if n < 0 {
		panic(fmt.Sprintf("bitvec: negative length %d", n))
	}

	return &Vector{n: n, words: make([]uint64, (n+wordBits-1)/wordBits)}
}

// Len returns the number of bits.
func (v *Vector) Len() int { return v.n }

func (v *Vector) check(i int) {
	if i < 0 || i >= v.n {
		panic(fmt.Sprintf("bitvec: index %d out of range [0,%d)", i, v.n))
	}
}

// Get reports bit i.
func (v *Vector) Get(i int) bool {
	v.check(i)

	return v.words[i/wordBits]&(1<<(uint(i)%wordBits)) != 0
}

// Set assigns bit i.
func (v *Vector) Set(i int, on bool) {
	v.check(i)
	mask := uint64(1) << (uint(i) % wordBits)
	if on {
		v.words[i/wordBits] |= mask
	} else {
		v.words[i/wordBits] &^= mask
	}
}

// Clear turns every bit off.
func (v *Vector) Clear() {
	clear(v.words)
}

// Count returns the number of set bits.
func (v *Vector) Count() int {
	total := 0
	for _, w := range v.words {
		total += bits.OnesCount64(w)
	}

	return total
}

// Any reports whether at least one bit is set.
func (v *Vector) Any() bool {
	for _, w := range v.words {
		if w != 0 {
			return true
		}
	}

	return false
}

// Indices returns the positions of set bits in ascending order.
func (v *Vector) Indices() []int {
	out := make([]int, 0, v.Count())
	for wi, w := range v.words {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			out = append(out, wi*wordBits+tz)
			w &= w - 1
		}
	}

	return out
}

// String renders the bits as "[0110]", lowest index first.
func (v *Vector) String() string {
	var b strings.Builder
	b.Grow(v.n + 2)
	b.WriteByte('[')
	for i := 0; i < v.n; i++ {
		if v.Get(i) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	b.WriteByte(']')

	return b.String()
}
