// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func capture(t *testing.T) *bytes.Buffer {
	var b bytes.Buffer
	old := stdout
	stdout = &b
	t.Cleanup(func() { stdout = old })
	return &b
}

func config() *Config {
	return &Config{Seed: 12345678, Runs: 1, N: 5, Dist: "uniform", Param: 1, Prob: 0.5,
		Shape: "sphere", Sampler: "Uniform", Temperature: 0.5, Outer: 30, Format: "text", Max: 1}
}

func TestCheck(t *testing.T) {
	b := capture(t)
	require.NoError(t, Check(config()))
	out := b.String()
	assert.Contains(t, out, "Using seed NUMBER: 12345678 EXPECTING: 0.2458042 RESULT: OK")
	assert.Contains(t, out, `Using seed STRING: "seed test" EXPECTING: 0.1944317 RESULT: OK`)
}

func TestValues(t *testing.T) {
	b := capture(t)
	c := config()
	c.N = 1
	require.NoError(t, Values(c))
	assert.Equal(t, "run 0: 0.2458042\n", b.String())

	for _, d := range []string{"normal", "power", "poisson", "exponential", "gamma", "binomial"} {
		c.Dist = d
		assert.NoError(t, Values(c), d)
	}
	c.Dist = "cauchy"
	assert.Error(t, Values(c))
	c.Dist = "exponential"
	c.Param = 0
	assert.Error(t, Values(c))

	b.Reset()
	c.Dist = "uniform"
	c.Runs = 3
	require.NoError(t, Values(c))
	assert.Len(t, strings.Split(strings.TrimSpace(b.String()), "\n"), 3)
}

func TestPoints(t *testing.T) {
	b := capture(t)
	c := config()
	for _, s := range []string{"square", "circle", "disk", "cube", "cube-surface", "sphere", "sphere-surface", "cap", "ring"} {
		b.Reset()
		c.Shape = s
		require.NoError(t, Points(c), s)
		assert.Len(t, strings.Split(strings.TrimSpace(b.String()), "\n"), c.N, s)
	}

	b.Reset()
	c.Format = "yaml"
	require.NoError(t, Points(c))
	var ys []point
	require.NoError(t, yaml.Unmarshal(b.Bytes(), &ys))
	assert.Len(t, ys, c.N)

	b.Reset()
	c.Format = "toml"
	require.NoError(t, Points(c))
	var ts struct {
		Points []point `toml:"points"`
	}
	require.NoError(t, toml.Unmarshal(b.Bytes(), &ts))
	assert.Equal(t, ys, ts.Points)

	c.Format = "json"
	assert.Error(t, Points(c))
	c.Format = "text"
	c.Shape = "torus"
	assert.Error(t, Points(c))
	c.Shape = "square"
	c.Sampler = "Cauchy"
	assert.Error(t, Points(c))
}

func TestColors(t *testing.T) {
	b := capture(t)
	c := config()
	require.NoError(t, Colors(c))
	assert.Len(t, strings.Split(strings.TrimSpace(b.String()), "\n"), c.N)
	assert.Contains(t, b.String(), "#")

	c.Min, c.Max = 0.6, 0.4
	assert.Error(t, Colors(c))
}
