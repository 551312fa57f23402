// Copyright (c) 2019, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dists

import (
	"math"
	"testing"

	"cogentcore.org/mtrand/mt"
	"github.com/stretchr/testify/assert"
)

func TestPoissonMode(t *testing.T) {
	vr := 8.0
	mi := 30
	rnd := mt.New(8)
	pd := make([]int, mi)
	for i := 0; i < 100000; i++ {
		v, _ := Poisson(rnd, vr)
		kv := int(v)
		if kv < mi {
			pd[kv]++
		}
	}

	ed := make([]int, mi)
	li := 0
	ep := math.Exp(-vr)
	p := 1.0
	for i := 0; i < 1000000; i++ {
		p *= rnd.Float64(false)
		if p <= ep {
			d := i - li
			if d < mi {
				ed[d]++
			}
			li = i
			p = 1
		}
	}

	mxi := 0
	mxe := 0
	im := 0
	em := 0
	for i := 0; i < mi; i++ {
		v := pd[i]
		if v > mxi {
			mxi = v
			im = i
		}
		v = ed[i]
		if v > mxe {
			mxe = v
			em = i
		}
	}
	// the mode of Poisson(8) is shared by 7 and 8
	assert.InDelta(t, vr, im, 1, "mode != lambda")
	assert.InDelta(t, vr, em, 1, "empirical mode != lambda")
}
