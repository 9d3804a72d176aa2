// Copyright 2026 Teradata
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package sampledata generates the illustrative random datasets some
// lessons plot. Every generator draws from an injected source, so a fixed
// seed reproduces a page exactly.
package sampledata

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/teradata-labs/vizlessons/pkg/visualization"
)

// Generator produces sample data from one random source.
type Generator struct {
	rng *rand.Rand
}

// New returns a generator drawing from rng.
func New(rng *rand.Rand) *Generator {
	return &Generator{rng: rng}
}

// Seeded returns a generator with a deterministic source.
func Seeded(seed uint64) *Generator {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Uniform returns a value in [lo, lo+span).
func (g *Generator) Uniform(lo, span float64) float64 {
	return lo + g.rng.Float64()*span
}

// noise returns a value in [-span/2, span/2).
func (g *Generator) noise(span float64) float64 {
	return (g.rng.Float64() - 0.5) * span
}

// Flights returns n (distance, delay) points around delayCenter with a
// random bubble radius in [3, 11).
func (g *Generator) Flights(n int, delayCenter float64) []visualization.Point {
	pts := make([]visualization.Point, n)
	for i := range pts {
		pts[i] = visualization.Point{
			X: math.Round(g.Uniform(200, 2600)),
			Y: math.Round(delayCenter + g.noise(80)),
			R: g.Uniform(3, 8),
		}
	}
	return pts
}

// Points returns n (distance, delay) points around center minutes
// (scaled by five) without radii.
func (g *Generator) Points(n int, center float64) []visualization.Point {
	pts := make([]visualization.Point, n)
	for i := range pts {
		pts[i] = visualization.Point{
			X: math.Round(g.Uniform(200, 2600)),
			Y: math.Round(center*5 + g.noise(80)),
		}
	}
	return pts
}

// Radii returns n values in [lo, lo+span).
func (g *Generator) Radii(n int, lo, span float64) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = g.Uniform(lo, span)
	}
	return out
}

// Preprints is a quarterly submission series from 2007 to 2018.
type Preprints struct {
	Labels []string
	QBio   []float64
}

// QBio generates arXiv q-bio submissions: exponential growth until 2013,
// flat afterwards.
func (g *Generator) QBio() Preprints {
	var p Preprints
	for year := 2007; year <= 2018; year++ {
		for q := 1; q <= 4; q++ {
			p.Labels = append(p.Labels, fmt.Sprintf("%d Q%d", year, q))
			t := float64((year-2007)*4 + (q - 1))
			if year < 2014 {
				p.QBio = append(p.QBio, math.Round(10*math.Exp(0.09*t)+g.noise(8)))
			} else {
				p.QBio = append(p.QBio, math.Round(115+g.noise(20)))
			}
		}
	}
	return p
}

// BioRxiv generates bioRxiv submissions for the quarters of labels: a gap
// before 2014, exponential growth from there.
func (g *Generator) BioRxiv(labels []string) []float64 {
	out := make([]float64, len(labels))
	for i, label := range labels {
		var year, q int
		if _, err := fmt.Sscanf(label, "%d Q%d", &year, &q); err != nil || year < 2014 {
			out[i] = math.NaN()
			continue
		}
		t := float64((year-2014)*4 + (q - 1))
		out[i] = math.Round(5*math.Exp(0.12*t) + g.noise(10))
	}
	return out
}
