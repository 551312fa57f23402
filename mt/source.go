// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mt

import "math/rand/v2"

// Rand provides an interface with the standard rand.Rand methods
// that are useful on top of an MT stream, so that code written
// against the standard library can be driven by a seeded MT.
type Rand interface {
	// Uint32 returns a pseudo-random 32-bit value as a uint32.
	Uint32() uint32

	// Uint64 returns a pseudo-random 64-bit value as a uint64.
	Uint64() uint64

	// IntN returns, as an int, a non-negative pseudo-random number in the half-open interval [0,n).
	// It panics if n <= 0.
	IntN(n int) int

	// NormFloat64 returns a normally distributed float64 in the range
	// [-math.MaxFloat64, +math.MaxFloat64] with
	// standard normal distribution (mean = 0, stddev = 1).
	NormFloat64() float64

	// ExpFloat64 returns an exponentially distributed float64 in the range
	// (0, +math.MaxFloat64] with an exponential distribution whose rate parameter
	// (lambda) is 1 and whose mean is 1/lambda (1).
	ExpFloat64() float64

	// Perm returns, as a slice of n ints, a pseudo-random permutation of the integers
	// in the half-open interval [0,n).
	Perm(n int) []int

	// Shuffle pseudo-randomizes the order of elements.
	// n is the number of elements. Shuffle panics if n < 0.
	// swap swaps the elements with indexes i and j.
	Shuffle(n int, swap func(i, j int))
}

var (
	_ rand.Source = (*MT)(nil)
	_ Rand        = (*rand.Rand)(nil)
)

// Uint64 returns a pseudo-random 64-bit value built from two
// consecutive words, high word first. It makes MT a [rand.Source].
func (r *MT) Uint64() uint64 {
	hi := uint64(r.Uint32())
	return hi<<32 | uint64(r.Uint32())
}

// Rand returns a new [rand.Rand] that draws from r. The returned value
// shares r's state, so every draw it makes advances r.
func (r *MT) Rand() *rand.Rand {
	return rand.New(r)
}
