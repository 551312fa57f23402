// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package mtrand provides seed reproducible random numbers, deviates,
points and colors on top of a Mersenne Twister (MT19937) generator.

A [Random] owns one generator for its lifetime:

	r := mtrand.New(12345678)
	v := r.Value()         // uniform in [0,1]
	p := r.PointOnSphere() // uniform on the unit sphere

The same seed, or the same seed phrase given to [NewPhrase], always
yields the same sequence of results, on every platform.

The building blocks are usable on their own:

  - package mt is the generator itself
  - package dists maps uniform draws to normal, power-law, exponential,
    Poisson, gamma and binomial deviates
  - package shapes samples squares, circles, disks, cubes, spheres,
    and spherical caps and rings

None of these are safe for concurrent use on a single generator: give each
goroutine its own, or guard it with a mutex.
*/
package mtrand
