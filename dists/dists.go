// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dists maps uniform deviates into other distributions.
//
// The pure transforms (Normal, PowerLaw, Exponential) take a uniform
// deviate u; the generators take a [Source] and consume draws from it.
// The number and order of draws each generator consumes is fixed, since
// it determines every value that follows in the stream.
package dists

import (
	"errors"
	"fmt"
	"math"
)

// ErrDomain is returned when a parameter lies outside the
// mathematical domain of a distribution.
var ErrDomain = errors.New("dists: parameter out of domain")

// Source is a stream of uniform deviates, implemented by *mt.MT.
type Source interface {
	// Float64 returns a number in [0,1] if includeOne, else in [0,1).
	Float64(includeOne bool) float64

	// Float32 returns a number in [0,1] if includeOne, else in [0,1).
	Float32(includeOne bool) float32
}

// Normal maps u in (0,1) to a normal deviate with mean 0 and
// standard deviation temperature, using the inverse normal CDF.
// u of exactly 0 or 1 maps to -Inf or +Inf. [NormalDist] adds 0.5
// to this before any sampler rescales it.
func Normal(u, temperature float64) float64 {
	return temperature * math.Sqrt2 * math.Erfinv(2*u-1)
}

// NormalGen returns a normal deviate with standard deviation temperature.
// It consumes one Float64(true) draw.
func NormalGen(src Source, temperature float64) float64 {
	return Normal(src.Float64(true), temperature)
}

// PowerLaw maps u in [0,1] to a power-law deviate in [min,max] with
// density proportional to x^exponent, by the inverse CDF:
//
//	((max^(e+1) - min^(e+1))*u + min^(e+1))^(1/(e+1))
//
// It returns an error wrapping [ErrDomain] if exponent == -1.
func PowerLaw(u, exponent, min, max float64) (float64, error) {
	if exponent == -1 {
		return 0, fmt.Errorf("PowerLaw: exponent -1: %w", ErrDomain)
	}
	e1 := exponent + 1
	lo := math.Pow(min, e1)
	return math.Pow((math.Pow(max, e1)-lo)*u+lo, 1/e1), nil
}

// PowerLawGen returns a power-law deviate in [min,max].
// It validates before drawing and then consumes one Float32(true) draw.
func PowerLawGen(src Source, exponent, min, max float64) (float64, error) {
	if exponent == -1 {
		return 0, fmt.Errorf("PowerLawGen: exponent -1: %w", ErrDomain)
	}
	return PowerLaw(float64(src.Float32(true)), exponent, min, max)
}

// Exponential maps u in [0,1) to an exponential deviate with rate lambda:
// -ln(1-u)/lambda. It returns an error wrapping [ErrDomain] if
// lambda <= 0 or u is outside [0,1).
func Exponential(u, lambda float64) (float64, error) {
	if err := checkExponential(lambda); err != nil {
		return 0, err
	}
	if u < 0 || u >= 1 {
		return 0, fmt.Errorf("Exponential: u = %g not in [0,1): %w", u, ErrDomain)
	}
	return -math.Log(1-u) / lambda, nil
}

func checkExponential(lambda float64) error {
	if !(lambda > 0) {
		return fmt.Errorf("Exponential: lambda = %g <= 0: %w", lambda, ErrDomain)
	}
	return nil
}

// ExponentialGen returns an exponential deviate with rate lambda.
// It consumes one Float32(false) draw.
func ExponentialGen(src Source, lambda float64) (float64, error) {
	if err := checkExponential(lambda); err != nil {
		return 0, err
	}
	return Exponential(float64(src.Float32(false)), lambda)
}

// gammlnCof are the Lanczos series coefficients for [Gammln].
var gammlnCof = [6]float64{
	76.18009172947146,
	-86.50532032941677,
	24.01409824083091,
	-1.231739572450155,
	0.1208650973866179e-2,
	-0.5395239384953e-5,
}

// Gammln returns ln(Gamma(x)) for x > 0, using the six term Lanczos
// approximation from Numerical Recipes (gammln, section 6.1).
// The fixed coefficients keep results identical across implementations.
func Gammln(x float64) float64 {
	y := x
	tmp := x + 5.5
	tmp -= (x + 0.5) * math.Log(tmp)
	ser := 1.000000000190015
	for _, c := range gammlnCof {
		y++
		ser += c / y
	}
	return -tmp + math.Log(2.5066282746310005*ser/x)
}

// Poisson returns an integer valued deviate from a Poisson distribution
// with mean lambda. All uniform draws are Float32(true).
//
// NUMERICAL RECIPES IN C: THE ART OF SCIENTIFIC COMPUTING (ISBN 0-521-43108-5)
// p. 294 (poidev)
//
// For lambda < 12 it multiplies uniform deviates until the product
// drops to e^-lambda; the result is the number of draws minus one.
// Otherwise it uses rejection from a Lorentzian comparison function,
// consuming one draw per candidate plus one draw per acceptance test.
func Poisson(src Source, lambda float64) (float64, error) {
	if lambda < 0 || math.IsNaN(lambda) {
		return 0, fmt.Errorf("Poisson: lambda = %g < 0: %w", lambda, ErrDomain)
	}
	if lambda < 12 {
		// Instead of adding exponential deviates it is equivalent to
		// multiply uniform deviates, compared against the precomputed exponential.
		g := math.Exp(-lambda)
		em := -1.0
		t := 1.0
		for {
			em++
			t *= float64(src.Float32(true))
			if t <= g {
				break
			}
		}
		return em, nil
	}
	sq := math.Sqrt(2 * lambda)
	alxm := math.Log(lambda)
	g := lambda*alxm - Gammln(lambda+1)
	for {
		var em, y float64
		for {
			// y is the deviate from a Lorentzian comparison function
			y = math.Tan(math.Pi * float64(src.Float32(true)))
			em = sq*y + lambda
			if em >= 0 {
				break
			}
		}
		em = math.Floor(em)
		t := 0.9 * (1 + y*y) * math.Exp(em*alxm-Gammln(em+1)-g)
		if float64(src.Float32(true)) <= t {
			return em, nil
		}
	}
}

// Gamma returns a deviate from a gamma distribution of integer order
// and unit rate, the waiting time to the order-th event of a unit rate
// Poisson process. All uniform draws are Float32(true).
//
// It sums order unit exponential deviates, computed as -ln of the
// product of order uniform draws, so every call consumes exactly
// order draws. The product is folded into the sum before it can
// underflow.
func Gamma(src Source, order int) (float64, error) {
	if order <= 0 {
		return 0, fmt.Errorf("Gamma: order %d <= 0: %w", order, ErrDomain)
	}
	x, prod := 0.0, 1.0
	for range order {
		prod *= float64(src.Float32(true))
		if prod < gammaFold {
			x -= math.Log(prod)
			prod = 1
		}
	}
	return x - math.Log(prod), nil
}

// gammaFold is the running product below which [Gamma] moves it into the sum.
const gammaFold = 1e-280

// Binomial returns the number of successes in n trials each of
// probability p. All uniform draws are Float64(false).
//
// NUMERICAL RECIPES IN C: THE ART OF SCIENTIFIC COMPUTING (ISBN 0-521-43108-5)
// p. 295-6 (bnldev)
func Binomial(src Source, n int, p float64) (float64, error) {
	if n < 0 {
		return 0, fmt.Errorf("Binomial: n = %d < 0: %w", n, ErrDomain)
	}
	if !(p >= 0 && p <= 1) {
		return 0, fmt.Errorf("Binomial: p = %g not in [0,1]: %w", p, ErrDomain)
	}
	porg := p
	if p > 0.5 {
		p = 1 - p
	}
	nf := float64(n)
	am := nf * p

	var bnl float64
	switch {
	case n < 25:
		// Use direct method.
		for range n {
			if src.Float64(false) < p {
				bnl++
			}
		}
	case am < 1:
		// Use the direct Poisson method, since the distribution is nearly Poisson.
		g := math.Exp(-am)
		t := 1.0
		j := 0
		for ; j <= n; j++ {
			t *= src.Float64(false)
			if t < g {
				break
			}
		}
		bnl = float64(min(j, n))
	default:
		// Use rejection method with Cauchy proposal.
		g := Gammln(nf + 1)
		plog := math.Log(p)
		pclog := math.Log(1 - p)
		sq := math.Sqrt(2 * am * (1 - p))
		for {
			var em, y float64
			for {
				y = math.Tan(math.Pi * src.Float64(false))
				em = sq*y + am
				if em >= 0 && em < nf+1 {
					break
				}
			}
			em = math.Floor(em)
			t := 1.2 * sq * (1 + y*y) * math.Exp(g-Gammln(em+1)-Gammln(nf-em+1)+em*plog+(nf-em)*pclog)
			if src.Float64(false) <= t {
				bnl = em
				break
			}
		}
	}
	if p != porg {
		bnl = nf - bnl
	}
	return bnl, nil
}
