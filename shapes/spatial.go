// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"math"

	"cogentcore.org/core/math32"
	"cogentcore.org/mtrand/dists"
)

// cubePoint draws a point uniformly in [-1,1]^3 with three
// Float32(true) draws, in x, y, z order.
func cubePoint(src Source) math32.Vector3 {
	x := scaleUnit(src.Float32(true), -1, 1)
	y := scaleUnit(src.Float32(true), -1, 1)
	z := scaleUnit(src.Float32(true), -1, 1)
	return math32.Vec3(x, y, z)
}

func cubePointDist(src Source, d dists.Dists, temperature float32) math32.Vector3 {
	x := gen(src, d, temperature)
	y := gen(src, d, temperature)
	z := gen(src, d, temperature)
	return math32.Vec3(2*x-1, 2*y-1, 2*z-1)
}

// CubeVolume returns a point uniformly distributed in the cube [-1,1]^3.
// It consumes three Float32(true) draws.
func CubeVolume(src Source) math32.Vector3 {
	return cubePoint(src)
}

// CubeVolumeDist returns a point in the cube whose coordinates come from d.
func CubeVolumeDist(src Source, d dists.Dists, temperature float32) (math32.Vector3, error) {
	if err := d.Check(float64(temperature)); err != nil {
		return math32.Vector3{}, err
	}
	return cubePointDist(src, d, temperature), nil
}

// CubeSurface returns a unit vector from cube rejection: candidates are
// drawn in the cube [-1,1]^3 and retried until one lies inside the unit
// ball, away from the center, and the accepted candidate is divided by
// its norm. It draws exactly like [SphereSurface], so both return the same
// point for the same stream.
func CubeSurface(src Source) math32.Vector3 {
	return unitSurface(src)
}

// CubeSurfaceDist returns a unit vector in the direction of a candidate
// whose coordinates come from d. Candidates at the center or with
// infinite coordinates are redrawn.
func CubeSurfaceDist(src Source, d dists.Dists, temperature float32) (math32.Vector3, error) {
	if err := d.Check(float64(temperature)); err != nil {
		return math32.Vector3{}, err
	}
	for {
		p := cubePointDist(src, d, temperature)
		x, y, z := float64(p.X), float64(p.Y), float64(p.Z)
		k := math.Sqrt(x*x + y*y + z*z)
		if k > 0 && !math.IsInf(k, 0) {
			return math32.Vec3(float32(x/k), float32(y/k), float32(z/k)), nil
		}
	}
}

// SphereVolume returns a point uniformly distributed in the unit ball,
// by Marsaglia's method: candidates are drawn uniformly in the bounding
// cube until one has squared norm <= 1. About 52% of candidates are
// accepted (π/6), so a call takes 1.91 candidates on average.
func SphereVolume(src Source) math32.Vector3 {
	for {
		p := cubePoint(src)
		if p.LengthSquared() <= 1 {
			return p
		}
	}
}

// SphereSurface returns a point uniformly distributed on the unit sphere:
// a [SphereVolume] candidate divided by its norm. The center is rejected
// along with candidates outside the ball.
func SphereSurface(src Source) math32.Vector3 {
	return unitSurface(src)
}

// unitSurface is the Marsaglia surface sampler behind [SphereSurface]
// and [CubeSurface].
func unitSurface(src Source) math32.Vector3 {
	for {
		p := cubePoint(src)
		if d := p.LengthSquared(); d <= 1 && d > 0 {
			k := math32.Sqrt(d)
			return math32.Vec3(p.X/k, p.Y/k, p.Z/k)
		}
	}
}

// Cap returns a point on the unit sphere within the cone of half angle
// spotAngle (degrees, 0 to 180) around the +Z axis. The azimuth and the
// polar angle are each uniform, from one Float32(true) draw apiece.
// A spotAngle of 0 always yields (0, 0, 1).
func Cap(spotAngle float32, src Source) math32.Vector3 {
	azimuth := scaleUnit(src.Float32(true), 0, 2*math32.Pi)
	polar := scaleUnit(src.Float32(true), 0, spotAngle*math32.DegToRadFactor)
	return spherical(azimuth, polar)
}

// CapOriented is [Cap] with the cone axis rotated by orientation.
func CapOriented(spotAngle float32, src Source, orientation math32.Quat) math32.Vector3 {
	return Cap(spotAngle, src).MulQuat(orientation)
}

// Ring returns a point on the unit sphere within the cone of half angle
// outerAngle around the +Z axis, but outside the cone of half angle
// innerAngle (degrees). Equal angles give points on a single circle.
func Ring(innerAngle, outerAngle float32, src Source) math32.Vector3 {
	azimuth := scaleUnit(src.Float32(true), 0, 2*math32.Pi)
	polar := scaleUnit(src.Float32(true), innerAngle, outerAngle) * math32.DegToRadFactor
	return spherical(azimuth, polar)
}

// RingOriented is [Ring] with the cone axis rotated by orientation.
func RingOriented(innerAngle, outerAngle float32, src Source, orientation math32.Quat) math32.Vector3 {
	return Ring(innerAngle, outerAngle, src).MulQuat(orientation)
}

// spherical returns the unit vector with the given azimuth around
// and polar angle from the +Z axis.
func spherical(azimuth, polar float32) math32.Vector3 {
	s := math32.Sin(polar)
	return math32.Vec3(math32.Sin(azimuth)*s, math32.Cos(azimuth)*s, math32.Cos(polar))
}
