// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mt

import (
	"errors"
	"fmt"
)

// ErrRange is returned when an integer range has min > max.
var ErrRange = errors.New("mt: invalid range")

const (
	// fiftyThreeOnes is 2^53 - 1, the largest 53 bit value.
	fiftyThreeOnes = 9007199254740991.0

	invClosed = 1.0 / fiftyThreeOnes
	invOpen   = 1.0 / (fiftyThreeOnes + 1)
)

// float53 combines 27 bits from one word with 26 bits from the next
// into a 53 bit integer and multiplies it by scale.
func (r *MT) float53(scale float64) float64 {
	a := uint64(r.Uint32() >> 5)
	b := uint64(r.Uint32() >> 6)
	return (float64(a)*67108864.0 + float64(b)) * scale
}

// Float64 returns a pseudo-random number in [0,1] if includeOne is true,
// or in [0,1) otherwise. It consumes exactly two words.
func (r *MT) Float64(includeOne bool) float64 {
	if includeOne {
		return r.float53(invClosed)
	}
	return r.float53(invOpen)
}

// Float32 returns Float64(includeOne) rounded to single precision.
// When includeOne is false, a value that rounds up to 1 is drawn again,
// so the result is always strictly less than one.
func (r *MT) Float32(includeOne bool) float32 {
	if includeOne {
		return float32(r.float53(invClosed))
	}
again:
	f := float32(r.float53(invOpen))
	if f == 1 {
		goto again
	}
	return f
}

// Int31 returns a non-negative pseudo-random 31-bit integer as an int32.
func (r *MT) Int31() int32 {
	return int32(r.Uint32() >> 1)
}

// Range returns a pseudo-random integer in the half-open interval [min,max).
// Callers that need max itself must ask for max+1. If min == max, min is
// returned without consuming a draw. If min > max, an error wrapping
// [ErrRange] is returned and the generator is left untouched. Every
// other call consumes one Float64(false) draw, for any span up to the
// full range of int.
func (r *MT) Range(min, max int) (int, error) {
	if min > max {
		return min, fmt.Errorf("Range(%d, %d): %w", min, max, ErrRange)
	}
	if min == max {
		return min, nil
	}
	// max-min in two's complement, exact for every range of int
	span := uint64(max) - uint64(min)
	off := uint64(float64(span) * r.Float64(false))
	if off >= span {
		off = span - 1
	}
	return int(uint64(min) + off), nil
}
