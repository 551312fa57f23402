// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mtrand

import (
	"image/color"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Visible spectrum bounds in nanometers.
const (
	WavelengthMin = 380
	WavelengthMax = 780
)

// ColorFromScalar maps u in [0,1] linearly onto the visible spectrum,
// from violet at 0 to deep red at 1, and returns the opaque sRGB color
// of that wavelength. Values outside [0,1] are clamped.
func ColorFromScalar(u float32) color.RGBA {
	u = min(max(u, 0), 1)
	wl := WavelengthMin + float64(u)*(WavelengthMax-WavelengthMin)
	c := WavelengthToColor(wl)
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, 0xff}
}

// WavelengthToColor returns the color of light of wavelength wl (nm),
// using Dan Bruton's piecewise linear approximation of the spectrum
// with intensity falling off toward both ends of the visible range.
// The linear components are companded to sRGB. Wavelengths outside
// the visible range are black.
func WavelengthToColor(wl float64) colorful.Color {
	var r, g, b float64
	switch {
	case wl >= 380 && wl < 440:
		r = -(wl - 440) / (440 - 380)
		b = 1
	case wl >= 440 && wl < 490:
		g = (wl - 440) / (490 - 440)
		b = 1
	case wl >= 490 && wl < 510:
		g = 1
		b = -(wl - 510) / (510 - 490)
	case wl >= 510 && wl < 580:
		r = (wl - 510) / (580 - 510)
		g = 1
	case wl >= 580 && wl < 645:
		r = 1
		g = -(wl - 645) / (645 - 580)
	case wl >= 645 && wl <= 780:
		r = 1
	}

	var f float64
	switch {
	case wl >= 380 && wl < 420:
		f = 0.3 + 0.7*(wl-380)/(420-380)
	case wl >= 420 && wl <= 700:
		f = 1
	case wl > 700 && wl <= 780:
		f = 0.3 + 0.7*(780-wl)/(780-700)
	}
	return colorful.LinearRgb(math.Min(r*f, 1), math.Min(g*f, 1), math.Min(b*f, 1)).Clamped()
}
