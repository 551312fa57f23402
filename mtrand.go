// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mtrand

import (
	"fmt"
	"image/color"
	"math"

	"cogentcore.org/core/math32"
	"cogentcore.org/mtrand/dists"
	"cogentcore.org/mtrand/mt"
	"cogentcore.org/mtrand/shapes"
)

var (
	// ErrDomain is returned when a parameter lies outside the domain
	// of a distribution or mapping.
	ErrDomain = dists.ErrDomain

	// ErrRange is returned for an inverted integer range or a
	// color range outside [0,1].
	ErrRange = mt.ErrRange
)

// Random generates deviates, points and colors from one Mersenne Twister
// stream that it owns for its whole lifetime. Every call advances the
// same stream, so results depend on the order of calls, while two
// Randoms made from the same seed produce the same results independently.
//
// A Random is not safe for concurrent use.
type Random struct {
	mt *mt.MT

	// std serves the standard library algorithms (Perm, Shuffle)
	// from the same stream.
	std mt.Rand
}

func newRandom(r *mt.MT) *Random {
	return &Random{mt: r, std: r.Rand()}
}

// New returns a Random seeded with seed.
func New(seed uint32) *Random {
	return newRandom(mt.New(seed))
}

// NewPhrase returns a Random seeded with the character codes of phrase,
// one code per character, in order.
func NewPhrase(phrase string) *Random {
	return newRandom(mt.NewPhrase(phrase))
}

// NewKey returns a Random seeded with key.
func NewKey(key []uint32) *Random {
	return newRandom(mt.NewKey(key))
}

// NewEntropy returns a Random seeded from system entropy.
func NewEntropy() *Random {
	return newRandom(mt.NewEntropy())
}

// Engine returns the generator that r draws from.
// Drawing from it directly advances r's stream.
func (r *Random) Engine() *mt.MT {
	return r.mt
}

//////// Values

// Value returns a pseudo-random number in [0,1].
func (r *Random) Value() float32 {
	return r.mt.Float32(true)
}

// Float returns a pseudo-random number in [0,1] if includeOne is true,
// or in [0,1) otherwise.
func (r *Random) Float(includeOne bool) float32 {
	return r.mt.Float32(includeOne)
}

// Uint32 returns a pseudo-random 32-bit value.
func (r *Random) Uint32() uint32 {
	return r.mt.Uint32()
}

// ValueNorm returns a normal deviate centered on 0.5 with standard
// deviation temperature. Most values lie in [0,1].
func (r *Random) ValueNorm(temperature float32) float32 {
	v, _ := dists.NormalDist.Gen(r.mt, float64(temperature))
	return float32(v)
}

// ValuePower returns a power-law deviate in [0,1] with density
// proportional to x^temperature.
func (r *Random) ValuePower(temperature float32) (float32, error) {
	v, err := dists.PowerLawGen(r.mt, float64(temperature), 0, 1)
	return float32(v), err
}

// ValuePoisson returns an integer valued Poisson deviate with mean lambda.
func (r *Random) ValuePoisson(lambda float32) (float32, error) {
	v, err := dists.Poisson(r.mt, float64(lambda))
	return float32(v), err
}

// ValueExponential returns an exponential deviate with rate lambda.
func (r *Random) ValueExponential(lambda float32) (float32, error) {
	v, err := dists.ExponentialGen(r.mt, float64(lambda))
	return float32(v), err
}

// ValueGamma returns a gamma deviate of the given integer order.
func (r *Random) ValueGamma(order int) (float32, error) {
	v, err := dists.Gamma(r.mt, order)
	return float32(v), err
}

// ValueBinomial returns the number of successes in n trials of probability p.
func (r *Random) ValueBinomial(n int, p float32) (float32, error) {
	v, err := dists.Binomial(r.mt, n, float64(p))
	return float32(v), err
}

//////// Ranges

// Range returns a pseudo-random integer in [min,max], both inclusive.
func (r *Random) Range(min, max int) (int, error) {
	return r.RangeMax(min, max, true)
}

// RangeMax returns a pseudo-random integer in [min,max] if includeMax
// is true, or in [min,max) otherwise. Any min <= max is valid, including
// the full range of int.
func (r *Random) RangeMax(min, max int, includeMax bool) (int, error) {
	if !includeMax {
		return r.mt.Range(min, max)
	}
	switch {
	case min > max:
		return min, fmt.Errorf("Range(%d, %d): %w", min, max, ErrRange)
	case max < math.MaxInt:
		return r.mt.Range(min, max+1)
	case min == math.MinInt:
		return int(r.mt.Uint64()), nil
	}
	// [min-1,max) shifted up by one, as max+1 would overflow
	v, err := r.mt.Range(min-1, max)
	return v + 1, err
}

// RangeFloat returns a pseudo-random number in [min,max].
func (r *Random) RangeFloat(min, max float32) float32 {
	return scaleUnit(r.Value(), min, max)
}

// RangeNorm returns [Random.ValueNorm] mapped from [0,1] onto [min,max].
func (r *Random) RangeNorm(min, max, temperature float32) float32 {
	return scaleUnit(r.ValueNorm(temperature), min, max)
}

// RangePower returns [Random.ValuePower] mapped from [0,1] onto [min,max].
func (r *Random) RangePower(min, max, temperature float32) (float32, error) {
	v, err := r.ValuePower(temperature)
	if err != nil {
		return 0, err
	}
	return scaleUnit(v, min, max), nil
}

// PChoose returns an index of ps chosen with the probability of each item
// (ps must sum to 1).
func (r *Random) PChoose(ps []float32) int {
	return dists.PChoose32(r.mt, ps)
}

// Perm returns a pseudo-random permutation of the integers in [0,n).
func (r *Random) Perm(n int) []int {
	return r.std.Perm(n)
}

// Shuffle pseudo-randomizes the order of n elements using swap.
func (r *Random) Shuffle(n int, swap func(i, j int)) {
	r.std.Shuffle(n, swap)
}

//////// Colors

// Color returns the color of a pseudo-random point of the visible spectrum.
func (r *Random) Color() color.RGBA {
	return ColorFromScalar(r.Value())
}

// ColorRange returns the color of a pseudo-random point of the visible
// spectrum restricted to the [min,max] part of it. It returns an error
// wrapping [ErrRange], without drawing, unless 0 <= min < max <= 1.
func (r *Random) ColorRange(min, max float32) (color.RGBA, error) {
	if max <= min || min < 0 || max > 1 {
		return color.RGBA{}, fmt.Errorf("ColorRange(%g, %g): %w", min, max, ErrRange)
	}
	return ColorFromScalar(scaleUnit(r.Value(), min, max)), nil
}

//////// Points

// PointInSquare returns a point in the square [-1,1]x[-1,1].
func (r *Random) PointInSquare() math32.Vector2 {
	return shapes.Square(r.mt)
}

// PointInSquareDist returns a point in the square with coordinates from d.
func (r *Random) PointInSquareDist(d dists.Dists, temperature float32) (math32.Vector2, error) {
	return shapes.SquareDist(r.mt, d, temperature)
}

// PointInCircle returns a point on the unit circle.
func (r *Random) PointInCircle() math32.Vector2 {
	return shapes.Circle(r.mt)
}

// PointInCircleDist returns a point on the unit circle with its angle from d.
func (r *Random) PointInCircleDist(d dists.Dists, temperature float32) (math32.Vector2, error) {
	return shapes.CircleDist(r.mt, d, temperature)
}

// PointInDisk returns a point uniformly distributed over the unit disk.
func (r *Random) PointInDisk() math32.Vector2 {
	return shapes.Disk(r.mt)
}

// PointInDiskDist returns a point in the unit disk with its radius and angle from d.
func (r *Random) PointInDiskDist(d dists.Dists, temperature float32) (math32.Vector2, error) {
	return shapes.DiskDist(r.mt, d, temperature)
}

// PointInCube returns a point in the cube [-1,1]^3.
func (r *Random) PointInCube() math32.Vector3 {
	return shapes.CubeVolume(r.mt)
}

// PointInCubeDist returns a point in the cube with coordinates from d.
func (r *Random) PointInCubeDist(d dists.Dists, temperature float32) (math32.Vector3, error) {
	return shapes.CubeVolumeDist(r.mt, d, temperature)
}

// PointOnCube returns a unit vector from cube rejection: candidates in
// the cube [-1,1]^3 outside the unit ball are redrawn and the accepted
// one is normalized. It draws like [Random.PointOnSphere].
func (r *Random) PointOnCube() math32.Vector3 {
	return shapes.CubeSurface(r.mt)
}

// PointOnCubeDist returns the unit vector in the direction of a cube
// candidate with coordinates from d.
func (r *Random) PointOnCubeDist(d dists.Dists, temperature float32) (math32.Vector3, error) {
	return shapes.CubeSurfaceDist(r.mt, d, temperature)
}

// PointInSphere returns a point in the unit ball.
func (r *Random) PointInSphere() math32.Vector3 {
	return shapes.SphereVolume(r.mt)
}

// PointOnSphere returns a point on the unit sphere.
func (r *Random) PointOnSphere() math32.Vector3 {
	return shapes.SphereSurface(r.mt)
}

// PointOnCap returns a point on the unit sphere within spotAngle degrees of +Z.
func (r *Random) PointOnCap(spotAngle float32) math32.Vector3 {
	return shapes.Cap(spotAngle, r.mt)
}

// PointOnCapOriented returns a [Random.PointOnCap] point rotated by orientation.
func (r *Random) PointOnCapOriented(spotAngle float32, orientation math32.Quat) math32.Vector3 {
	return shapes.CapOriented(spotAngle, r.mt, orientation)
}

// PointOnRing returns a point on the unit sphere between innerAngle and
// outerAngle degrees from +Z.
func (r *Random) PointOnRing(innerAngle, outerAngle float32) math32.Vector3 {
	return shapes.Ring(innerAngle, outerAngle, r.mt)
}

// PointOnRingOriented returns a [Random.PointOnRing] point rotated by orientation.
func (r *Random) PointOnRingOriented(innerAngle, outerAngle float32, orientation math32.Quat) math32.Vector3 {
	return shapes.RingOriented(innerAngle, outerAngle, r.mt, orientation)
}

//////// Functions

// ScaleToRange maps x from [oldMin,oldMax] onto [newMin,newMax] as
//
//	x / ((oldMax-oldMin)/(newMax-newMin)) + newMin
//
// which does not subtract oldMin, so it is an exact affine map only when
// oldMin is 0. It returns an error wrapping [ErrDomain] if oldMax == oldMin.
func ScaleToRange(x, newMin, newMax, oldMin, oldMax float32) (float32, error) {
	if oldMax == oldMin {
		return 0, fmt.Errorf("ScaleToRange: empty range [%g,%g]: %w", oldMin, oldMax, ErrDomain)
	}
	return x/((oldMax-oldMin)/(newMax-newMin)) + newMin, nil
}

// scaleUnit is ScaleToRange from [0,1], which cannot fail.
func scaleUnit(x, newMin, newMax float32) float32 {
	return x/(1/(newMax-newMin)) + newMin
}
