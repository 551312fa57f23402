// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shapes samples points in and on 2D and 3D shapes:
// squares, circles and disks, cubes, spheres, and spherical caps and rings.
//
// Every sampler takes the Source to draw from for the duration of the
// call only. The *Dist variants replace the raw uniform draws with
// deviates from a [dists.Dists], so the same sampler code serves every
// distribution.
package shapes

import "cogentcore.org/mtrand/dists"

// Source is a stream of uniform deviates, implemented by *mt.MT.
type Source interface {
	dists.Source

	// Int31 returns a non-negative pseudo-random 31-bit integer.
	Int31() int32
}

// maxInt31 is the largest Int31 value as a float32.
const maxInt31 = float32(1<<31 - 1)

// scaleUnit maps u from [0,1] onto [lo,hi].
func scaleUnit(u, lo, hi float32) float32 {
	return u/(1/(hi-lo)) + lo
}

// gen draws one deviate from d. d and temperature must already have
// passed [dists.Dists.Check].
func gen(src Source, d dists.Dists, temperature float32) float32 {
	v, _ := d.Gen(src, float64(temperature))
	return float32(v)
}
