// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"math"

	"cogentcore.org/core/math32"
	"cogentcore.org/mtrand/dists"
)

// Square returns a point uniformly distributed in the square [-1,1]x[-1,1].
// It consumes two Float32(true) draws, x first.
func Square(src Source) math32.Vector2 {
	x := src.Float32(true)
	y := src.Float32(true)
	return math32.Vec2(2*x-1, 2*y-1)
}

// SquareDist returns a point in the square whose coordinates come
// from d, mapped from the unit scale onto [-1,1] by 2v-1. For
// [dists.NormalDist] the 0.5 offset comes first, so coordinates are
// centered at 0 with standard deviation 2*temperature.
func SquareDist(src Source, d dists.Dists, temperature float32) (math32.Vector2, error) {
	if err := d.Check(float64(temperature)); err != nil {
		return math32.Vector2{}, err
	}
	x := gen(src, d, temperature)
	y := gen(src, d, temperature)
	return math32.Vec2(2*x-1, 2*y-1), nil
}

// Circle returns a point uniformly distributed on the unit circle.
// The angle comes from one Int31 draw scaled onto [0,2π].
func Circle(src Source) math32.Vector2 {
	t := float32(src.Int31())
	a := t / (maxInt31 / (2 * math32.Pi))
	return math32.Vec2(math32.Cos(a), math32.Sin(a))
}

// CircleDist returns a point on the unit circle whose angle is
// 2π times a deviate from d.
func CircleDist(src Source, d dists.Dists, temperature float32) (math32.Vector2, error) {
	if err := d.Check(float64(temperature)); err != nil {
		return math32.Vector2{}, err
	}
	a := gen(src, d, temperature) * (2 * math32.Pi)
	return math32.Vec2(math32.Cos(a), math32.Sin(a)), nil
}

// Disk returns a point uniformly distributed over the area of the unit disk.
// The radius is the square root of a Float32(true) draw and the angle is
// 2π times a Float32(false) draw.
func Disk(src Source) math32.Vector2 {
	t := float64(src.Float32(true))
	theta := float64(src.Float32(false)) * 2 * math.Pi
	return polar(t, theta)
}

// DiskDist returns a point in the unit disk whose squared radius and
// angle fraction both come from d. A negative squared radius, from the
// tails of a normal, puts the point on the opposite side of the center.
func DiskDist(src Source, d dists.Dists, temperature float32) (math32.Vector2, error) {
	if err := d.Check(float64(temperature)); err != nil {
		return math32.Vector2{}, err
	}
	t := float64(gen(src, d, temperature))
	theta := float64(gen(src, d, temperature)) * 2 * math.Pi
	return polar(t, theta), nil
}

// polar returns the point at radius sqrt(r2) and angle theta.
func polar(r2, theta float64) math32.Vector2 {
	r := math.Copysign(math.Sqrt(math.Abs(r2)), r2)
	return math32.Vec2(float32(r*math.Cos(theta)), float32(r*math.Sin(theta)))
}
