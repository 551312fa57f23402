// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mt

// Seeds is a set of random seeds, typically used one per run,
// so that each run gets its own reproducible stream.
type Seeds []uint32

// Init allocates given number of seeds and initializes them to
// sequential numbers 1..n
func (rs *Seeds) Init(n int) {
	*rs = make([]uint32, n)
	for i := range *rs {
		(*rs)[i] = uint32(i) + 1
	}
}

// NewSeeds sets a new set of random seeds starting from an entropy seed.
func (rs *Seeds) NewSeeds() {
	rn := EntropySeed()
	for i := range *rs {
		(*rs)[i] = rn + uint32(i)
	}
}

// New returns a generator seeded with the seed at index idx.
func (rs Seeds) New(idx int) *MT {
	return New(rs[idx])
}
