// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package shapes

import (
	"math"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/mtrand/dists"
	"cogentcore.org/mtrand/mt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countSource counts the calls made through it.
type countSource struct {
	src *mt.MT
	n   int
}

func newCount(seed uint32) *countSource {
	return &countSource{src: mt.New(seed)}
}

func (c *countSource) Float64(includeOne bool) float64 {
	c.n++
	return c.src.Float64(includeOne)
}

func (c *countSource) Float32(includeOne bool) float32 {
	c.n++
	return c.src.Float32(includeOne)
}

func (c *countSource) Int31() int32 {
	c.n++
	return c.src.Int31()
}

func inUnit(v float32) bool {
	return v >= -1 && v <= 1
}

func TestSquare(t *testing.T) {
	src := newCount(1)
	for range 10000 {
		p := Square(src)
		require.True(t, inUnit(p.X) && inUnit(p.Y), "%v", p)
	}
	assert.Equal(t, 20000, src.n)

	a, b := mt.New(2), mt.New(2)
	x, y := b.Float32(true), b.Float32(true)
	assert.Equal(t, math32.Vec2(2*x-1, 2*y-1), Square(a))

	// the uniform distribution gives the plain sampler
	a, b = mt.New(3), mt.New(3)
	for range 100 {
		p, err := SquareDist(a, dists.UniformDist, 0)
		require.NoError(t, err)
		require.Equal(t, Square(b), p)
	}
}

func TestSquareDist(t *testing.T) {
	src := newCount(4)
	_, err := SquareDist(src, dists.PowerLawDist, -1)
	assert.ErrorIs(t, err, dists.ErrDomain)
	assert.Equal(t, 0, src.n)

	// x^3 density piles points up toward the +1 edge
	sum := float32(0)
	for range 10000 {
		p, err := SquareDist(src, dists.PowerLawDist, 3)
		require.NoError(t, err)
		require.True(t, inUnit(p.X) && inUnit(p.Y), "%v", p)
		sum += p.X
	}
	// mean of x on [0,1] is 4/5, so 3/5 after the move to [-1,1]
	assert.InDelta(t, 0.6, sum/10000, 0.02)

	// the 0.5 offset comes before 2v-1: centered at 0, spread 2*temperature
	sum = 0
	sq := float32(0)
	for range 10000 {
		p, err := SquareDist(src, dists.NormalDist, 0.1)
		require.NoError(t, err)
		sum += p.Y
		sq += p.Y * p.Y
	}
	assert.InDelta(t, 0, sum/10000, 0.01)
	assert.InDelta(t, 0.04, sq/10000, 0.003)
}

func TestCircle(t *testing.T) {
	src := newCount(5)
	var quad [4]int
	for range 10000 {
		p := Circle(src)
		require.InDelta(t, 1, p.Length(), 1e-6)
		qi := 0
		if p.X < 0 {
			qi++
		}
		if p.Y < 0 {
			qi += 2
		}
		quad[qi]++
	}
	assert.Equal(t, 10000, src.n)
	for _, q := range quad {
		assert.InDelta(t, 2500, q, 150)
	}

	for _, d := range dists.DistsValues() {
		p, err := CircleDist(src, d, 0.5)
		require.NoError(t, err)
		assert.InDelta(t, 1, p.Length(), 1e-6, "%v", d)
	}
	_, err := CircleDist(src, dists.Dists(9), 0)
	assert.ErrorIs(t, err, dists.ErrDomain)
}

func TestDiskArea(t *testing.T) {
	const bins = 10
	nsamp := 10000
	src := mt.New(21)
	var r2Hist, rHist [bins]int
	for range nsamp {
		p := Disk(src)
		r2 := float64(p.X)*float64(p.X) + float64(p.Y)*float64(p.Y)
		require.LessOrEqual(t, r2, 1+1e-6)
		r2Hist[min(int(r2*bins), bins-1)]++
		rHist[min(int(math.Sqrt(r2)*bins), bins-1)]++
	}
	exp := float64(nsamp) / bins
	chi := 0.0
	for _, c := range r2Hist {
		d := float64(c) - exp
		chi += d * d / exp
	}
	// 9 degrees of freedom, p = 0.01
	assert.Less(t, chi, 21.666, "radius² histogram %v", r2Hist)

	// the radius itself is not uniform: the inner ring holds ~1% of the points
	assert.Less(t, rHist[0], nsamp/50, "radius histogram %v", rHist)
	assert.Greater(t, rHist[bins-1], nsamp/7, "radius histogram %v", rHist)
}

func TestDiskDist(t *testing.T) {
	src := mt.New(6)
	for _, d := range dists.DistsValues() {
		for range 1000 {
			p, err := DiskDist(src, d, 0.2)
			require.NoError(t, err)
			require.False(t, math32.IsNaN(p.X) || math32.IsNaN(p.Y))
		}
	}
	// normal tails can give a negative squared radius
	p := polar(-0.25, 0)
	assert.InDelta(t, -0.5, p.X, 1e-7)
	assert.InDelta(t, 0, p.Y, 1e-7)
}

func TestCube(t *testing.T) {
	src := newCount(7)
	for range 10000 {
		p := CubeVolume(src)
		require.True(t, inUnit(p.X) && inUnit(p.Y) && inUnit(p.Z), "%v", p)
	}
	assert.Equal(t, 30000, src.n)

	a, b := mt.New(8), mt.New(8)
	for range 100 {
		p, err := CubeVolumeDist(a, dists.UniformDist, 0)
		require.NoError(t, err)
		require.Equal(t, CubeVolume(b), p)
	}
	_, err := CubeVolumeDist(a, dists.PowerLawDist, -1)
	assert.ErrorIs(t, err, dists.ErrDomain)
}

func TestCubeSurface(t *testing.T) {
	src := newCount(9)
	nsamp := 12000
	var mean, sq [3]float64
	for range nsamp {
		p := CubeSurface(src)
		require.InDelta(t, 1, p.LengthSquared(), 1e-6, "%v", p)
		require.True(t, inUnit(p.X) && inUnit(p.Y) && inUnit(p.Z), "%v", p)
		for i, c := range []float32{p.X, p.Y, p.Z} {
			mean[i] += float64(c)
			sq[i] += float64(c * c)
		}
	}
	for i := range 3 {
		assert.InDelta(t, 0, mean[i]/float64(nsamp), 0.02)
		assert.InDelta(t, 1.0/3, sq[i]/float64(nsamp), 0.02)
	}
	// three draws per candidate, rejected outside the ball
	assert.Equal(t, 0, src.n%3)
	assert.Greater(t, src.n, 3*nsamp)

	a, b := mt.New(31), mt.New(31)
	for range 1000 {
		require.Equal(t, SphereSurface(a), CubeSurface(b))
	}

	for _, d := range dists.DistsValues() {
		for _, temp := range []float32{0.3, 2, 5} {
			for range 200 {
				p, err := CubeSurfaceDist(src, d, temp)
				require.NoError(t, err)
				require.InDelta(t, 1, p.LengthSquared(), 1e-6, "%v %g %v", d, temp, p)
			}
		}
	}
}

func TestSphere(t *testing.T) {
	nsamp := 10000
	src := newCount(22)
	for range nsamp {
		p := SphereVolume(src)
		require.LessOrEqual(t, p.LengthSquared(), float32(1))
	}
	// three draws per candidate
	cands := src.n / 3
	rejPerAccept := float64(cands-nsamp) / float64(nsamp)
	assert.InDelta(t, 6/math.Pi-1, rejPerAccept, 0.05)

	src = newCount(23)
	for range nsamp {
		p := SphereSurface(src)
		require.InDelta(t, 1, p.LengthSquared(), 1e-6, "%v", p)
	}

	a, b := mt.New(24), mt.New(24)
	for range 1000 {
		require.Equal(t, SphereSurface(a), SphereSurface(b))
	}
}

func TestCap(t *testing.T) {
	src := newCount(10)
	assert.Equal(t, math32.Vec3(0, 0, 1), Cap(0, src))
	assert.Equal(t, 2, src.n)

	cz := math32.Cos(30 * math32.DegToRadFactor)
	for range 5000 {
		p := Cap(30, src)
		require.InDelta(t, 1, p.Length(), 1e-6)
		require.GreaterOrEqual(t, p.Z, cz-1e-6)
	}

	// rotate the +Z axis onto +X
	q := math32.NewQuatAxisAngle(math32.Vec3(0, 1, 0), math32.Pi/2)
	p := CapOriented(0, src, q)
	assert.InDelta(t, 1, p.X, 1e-6)
	assert.InDelta(t, 0, p.Y, 1e-6)
	assert.InDelta(t, 0, p.Z, 1e-6)
}

func TestRing(t *testing.T) {
	src := mt.New(11)
	lo := math32.Cos(40 * math32.DegToRadFactor)
	hi := math32.Cos(20 * math32.DegToRadFactor)
	for range 5000 {
		p := Ring(20, 40, src)
		require.InDelta(t, 1, p.Length(), 1e-6)
		require.True(t, p.Z >= lo-1e-6 && p.Z <= hi+1e-6, "%v", p)
	}

	// equal angles give a single circle
	for range 100 {
		p := Ring(60, 60, src)
		require.InDelta(t, 0.5, p.Z, 1e-6)
	}

	q := math32.NewQuatAxisAngle(math32.Vec3(1, 0, 0), math32.Pi)
	p := RingOriented(10, 10, src, q)
	assert.InDelta(t, -math32.Cos(10*math32.DegToRadFactor), p.Z, 1e-6)
}
