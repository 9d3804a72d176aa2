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
package theme

import (
	"fmt"
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ParseHex parses a #rgb or #rrggbb color.
func ParseHex(hex string) (colorful.Color, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid hex color %q: %w", hex, err)
	}
	return c, nil
}

// WithAlpha appends an alpha byte to a hex color ("#6366f1" + 0x88 →
// "#6366f188"). Colors that are not plain hex are returned unchanged.
func WithAlpha(hex string, alpha uint8) string {
	c, err := ParseHex(hex)
	if err != nil {
		return hex
	}
	return fmt.Sprintf("%s%02x", c.Hex(), alpha)
}

// Darken scales each channel down by amount (0.0–1.0).
func Darken(hex string, amount float64) string {
	c, err := ParseHex(hex)
	if err != nil {
		return hex
	}
	k := 1.0 - amount
	return colorful.Color{R: c.R * k, G: c.G * k, B: c.B * k}.Clamped().Hex()
}

// Tint blends hex toward white in Lab space.
func Tint(hex string, amount float64) string {
	c, err := ParseHex(hex)
	if err != nil {
		return hex
	}
	return c.BlendLab(colorful.Color{R: 1, G: 1, B: 1}, amount).Clamped().Hex()
}

// Lightness returns the CIE L* of a hex color scaled to 0–1.
func Lightness(hex string) float64 {
	c, err := ParseHex(strings.TrimSpace(hex))
	if err != nil {
		return 0
	}
	l, _, _ := c.Lab()
	return l
}

// MinDistance returns the smallest CIEDE2000 distance between any two
// colors of a palette. Unparseable entries are skipped.
func MinDistance(palette []string) float64 {
	cols := make([]colorful.Color, 0, len(palette))
	for _, h := range palette {
		if c, err := ParseHex(h); err == nil {
			cols = append(cols, c)
		}
	}
	best := math.Inf(1)
	for i := range cols {
		for j := i + 1; j < len(cols); j++ {
			if d := cols[i].DistanceCIEDE2000(cols[j]); d < best {
				best = d
			}
		}
	}
	return best
}
