// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dists

import (
	"fmt"
	"strings"
)

// Dists selects how a sampler turns a draw into a unit scale deviate.
// Samplers only call [Dists.Gen], so adding a value here does not
// require any change in the samplers.
type Dists int32

const (
	// UniformDist uses the raw Float32(true) draw.
	UniformDist Dists = iota

	// NormalDist is 0.5 plus a zero centered [NormalGen] deviate with
	// standard deviation equal to the temperature, so it sits on the same
	// unit scale as the others. Samplers apply their rescale after the
	// offset, so a point coordinate centers at 2*0.5-1 = 0.
	// Values fall outside [0,1] in the tails.
	NormalDist

	// PowerLawDist uses PowerLaw(u, temperature, 0, 1).
	PowerLawDist

	// DistsN is the number of Dists values.
	DistsN
)

var distsNames = [DistsN]string{"Uniform", "Normal", "PowerLaw"}

// String returns the name of the distribution.
func (d Dists) String() string {
	if d < 0 || d >= DistsN {
		return fmt.Sprintf("Dists(%d)", int32(d))
	}
	return distsNames[d]
}

// SetString sets d from its name, ignoring case.
func (d *Dists) SetString(s string) error {
	for i, nm := range distsNames {
		if strings.EqualFold(nm, s) {
			*d = Dists(i)
			return nil
		}
	}
	return fmt.Errorf("%q is not a valid value for type Dists", s)
}

// DistsValues returns all possible values for the type Dists.
func DistsValues() []Dists {
	return []Dists{UniformDist, NormalDist, PowerLawDist}
}

// Check returns an error wrapping [ErrDomain] if d is not a valid
// value, or if it cannot use the given temperature.
func (d Dists) Check(temperature float64) error {
	switch {
	case d < 0 || d >= DistsN:
		return fmt.Errorf("%v: %w", d, ErrDomain)
	case d == PowerLawDist && temperature == -1:
		return fmt.Errorf("PowerLaw: temperature -1: %w", ErrDomain)
	}
	return nil
}

// Gen draws one deviate on the unit scale from src.
// Every value consumes exactly one Float32(true) draw, except NormalDist
// which consumes one Float64(true) draw. Parameters are checked with
// [Dists.Check] before anything is drawn.
func (d Dists) Gen(src Source, temperature float64) (float64, error) {
	if err := d.Check(temperature); err != nil {
		return 0, err
	}
	switch d {
	case NormalDist:
		return 0.5 + NormalGen(src, temperature), nil
	case PowerLawDist:
		return PowerLawGen(src, temperature, 0, 1)
	}
	return float64(src.Float32(true)), nil
}
