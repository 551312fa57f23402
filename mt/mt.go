// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mt provides a deterministic MT19937 Mersenne Twister generator.
// The output sequence is a pure function of the seed, so two generators
// created with the same seed or seed key produce identical streams on
// every platform.
//
// An MT is not safe for concurrent use: use one generator per goroutine
// or guard it with a mutex.
package mt

import (
	"crypto/rand"
	"encoding/binary"
	"time"
	"unicode/utf16"
)

const (
	n          = 624
	m          = 397
	matrixA    = 0x9908b0df
	upperMask  = 0x80000000
	lowerMask  = 0x7fffffff
	temperingB = 0x9d2c5680
	temperingC = 0xefc60000

	// keySeed is the init_genrand seed used before mixing in a key.
	keySeed = 19650218
)

// MT is the MT19937 generator state: the 624 word state vector
// and the index of the next word to temper.
type MT struct {
	state [n]uint32
	index int
}

// New returns a generator initialized from the given seed,
// equivalent to the reference init_genrand.
func New(seed uint32) *MT {
	r := &MT{}
	r.init(seed)
	return r
}

// NewKey returns a generator initialized from the given key,
// equivalent to the reference init_by_array. An empty key
// is treated as the single element key {0}.
func NewKey(key []uint32) *MT {
	r := &MT{}
	r.initKey(key)
	return r
}

// NewPhrase returns a generator seeded by the character codes of phrase.
// See [PhraseKey].
func NewPhrase(phrase string) *MT {
	return NewKey(PhraseKey(phrase))
}

// NewEntropy returns a generator seeded from system entropy.
// If the system source fails, the current time is used instead.
func NewEntropy() *MT {
	return New(EntropySeed())
}

// EntropySeed returns a seed drawn from crypto/rand, or from the
// current time if that fails.
func EntropySeed() uint32 {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return uint32(time.Now().UnixNano())
	}
	return binary.LittleEndian.Uint32(b[:])
}

// PhraseKey converts phrase into a seed key holding one code per
// character, in order. Characters are UTF-16 code units, so text
// outside the basic multilingual plane contributes a surrogate pair.
func PhraseKey(phrase string) []uint32 {
	units := utf16.Encode([]rune(phrase))
	key := make([]uint32, len(units))
	for i, u := range units {
		key[i] = uint32(u)
	}
	return key
}

func (r *MT) init(seed uint32) {
	r.state[0] = seed
	for i := 1; i < n; i++ {
		r.state[i] = 1812433253*(r.state[i-1]^(r.state[i-1]>>30)) + uint32(i)
	}
	r.index = n
}

func (r *MT) initKey(key []uint32) {
	if len(key) == 0 {
		key = []uint32{0}
	}
	r.init(keySeed)
	i, j := 1, 0
	k := max(n, len(key))
	for ; k > 0; k-- {
		r.state[i] = (r.state[i] ^ ((r.state[i-1] ^ (r.state[i-1] >> 30)) * 1664525)) + key[j] + uint32(j)
		i++
		j++
		if i >= n {
			r.state[0] = r.state[n-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = n - 1; k > 0; k-- {
		r.state[i] = (r.state[i] ^ ((r.state[i-1] ^ (r.state[i-1] >> 30)) * 1566083941)) - uint32(i)
		i++
		if i >= n {
			r.state[0] = r.state[n-1]
			i = 1
		}
	}
	r.state[0] = upperMask // MSB is 1, assuring a non-zero initial array
}

// generate refills the whole state vector.
func (r *MT) generate() {
	mag01 := [2]uint32{0, matrixA}
	var y uint32
	kk := 0
	for ; kk < n-m; kk++ {
		y = (r.state[kk] & upperMask) | (r.state[kk+1] & lowerMask)
		r.state[kk] = r.state[kk+m] ^ (y >> 1) ^ mag01[y&1]
	}
	for ; kk < n-1; kk++ {
		y = (r.state[kk] & upperMask) | (r.state[kk+1] & lowerMask)
		r.state[kk] = r.state[kk+(m-n)] ^ (y >> 1) ^ mag01[y&1]
	}
	y = (r.state[n-1] & upperMask) | (r.state[0] & lowerMask)
	r.state[n-1] = r.state[m-1] ^ (y >> 1) ^ mag01[y&1]
	r.index = 0
}

// Uint32 returns a pseudo-random 32-bit value over the full uint32 range.
func (r *MT) Uint32() uint32 {
	if r.index >= n {
		r.generate()
	}
	y := r.state[r.index]
	r.index++

	y ^= y >> 11
	y ^= (y << 7) & temperingB
	y ^= (y << 15) & temperingC
	y ^= y >> 18
	return y
}
