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
package sampledata

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeeded_Reproducible(t *testing.T) {
	a := Seeded(7).QBio()
	b := Seeded(7).QBio()
	assert.Equal(t, a, b)

	c := Seeded(8).QBio()
	assert.NotEqual(t, a.QBio, c.QBio)
}

func TestQBio_Shape(t *testing.T) {
	p := Seeded(1).QBio()
	require.Len(t, p.Labels, 48)
	require.Len(t, p.QBio, 48)
	assert.Equal(t, "2007 Q1", p.Labels[0])
	assert.Equal(t, "2018 Q4", p.Labels[47])

	// growth phase starts near 10, plateau stays in 105..125
	assert.InDelta(t, 10, p.QBio[0], 4)
	for _, v := range p.QBio[28:] {
		assert.GreaterOrEqual(t, v, 105.0)
		assert.LessOrEqual(t, v, 125.0)
	}
}

func TestBioRxiv_GapBefore2014(t *testing.T) {
	g := Seeded(3)
	p := g.QBio()
	bio := g.BioRxiv(p.Labels)
	require.Len(t, bio, len(p.Labels))
	for i, label := range p.Labels {
		if i < 28 {
			assert.True(t, math.IsNaN(bio[i]), label)
		} else {
			assert.False(t, math.IsNaN(bio[i]), label)
		}
	}
	assert.True(t, math.IsNaN(g.BioRxiv([]string{"garbage"})[0]))
}

func TestFlights_Ranges(t *testing.T) {
	g := Seeded(11)
	for _, p := range g.Flights(200, 25) {
		assert.GreaterOrEqual(t, p.X, 200.0)
		assert.LessOrEqual(t, p.X, 2800.0)
		assert.InDelta(t, 25, p.Y, 41)
		assert.GreaterOrEqual(t, p.R, 3.0)
		assert.Less(t, p.R, 11.0)
	}
	for _, p := range g.Points(50, -1.2) {
		assert.InDelta(t, -6, p.Y, 41)
		assert.Zero(t, p.R)
	}
	for _, r := range g.Radii(20, 3, 7) {
		assert.GreaterOrEqual(t, r, 3.0)
		assert.Less(t, r, 10.0)
	}
}
