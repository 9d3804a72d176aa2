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
	"os"

	"gopkg.in/yaml.v3"
)

// Overrides is a partial theme read from YAML. Empty fields keep the
// base theme's value.
type Overrides struct {
	Name         string   `yaml:"name"`
	Colors       Colors   `yaml:"colors"`
	Palette      []string `yaml:"palette"`
	MutedPalette []string `yaml:"muted_palette"`
	BadPalette   []string `yaml:"bad_palette"`
	FontFamily   string   `yaml:"font_family"`
}

// Derivation amounts for colors an override leaves out.
const (
	accentTint = 0.25
	mutedShade = 0.25
)

// With returns a new theme with o layered over t. t is not modified.
// An accent without a light variant gets a tinted one, and a palette
// without a muted twin gets a darkened copy.
func (t *Theme) With(o Overrides) *Theme {
	merged := &Theme{
		name:         t.name,
		colors:       mergeColors(t.colors, o.Colors),
		palette:      t.Palette(),
		mutedPalette: t.MutedPalette(),
		badPalette:   t.BadPalette(),
		fontFamily:   t.fontFamily,
	}
	if o.Name != "" {
		merged.name = o.Name
	}
	if o.Colors.Accent != "" && o.Colors.AccentLight == "" {
		merged.colors.AccentLight = Tint(o.Colors.Accent, accentTint)
	}
	if len(o.Palette) > 0 {
		merged.palette = append([]string(nil), o.Palette...)
		merged.mutedPalette = make([]string, len(o.Palette))
		for i, c := range o.Palette {
			merged.mutedPalette[i] = Darken(c, mutedShade)
		}
	}
	if len(o.MutedPalette) > 0 {
		merged.mutedPalette = append([]string(nil), o.MutedPalette...)
	}
	if len(o.BadPalette) > 0 {
		merged.badPalette = append([]string(nil), o.BadPalette...)
	}
	if o.FontFamily != "" {
		merged.fontFamily = o.FontFamily
	}
	return merged
}

func mergeColors(base, o Colors) Colors {
	pick := func(b, v string) string {
		if v != "" {
			return v
		}
		return b
	}
	return Colors{
		Accent:        pick(base.Accent, o.Accent),
		AccentLight:   pick(base.AccentLight, o.AccentLight),
		Success:       pick(base.Success, o.Success),
		Warning:       pick(base.Warning, o.Warning),
		Danger:        pick(base.Danger, o.Danger),
		Text:          pick(base.Text, o.Text),
		TextSecondary: pick(base.TextSecondary, o.TextSecondary),
		Muted:         pick(base.Muted, o.Muted),
		GridLine:      pick(base.GridLine, o.GridLine),
		GridLineBad:   pick(base.GridLineBad, o.GridLineBad),
		Surface:       pick(base.Surface, o.Surface),
		Border:        pick(base.Border, o.Border),
		Dim:           pick(base.Dim, o.Dim),
	}
}

// Parse reads YAML overrides and layers them over the default theme.
func Parse(data []byte) (*Theme, error) {
	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("failed to parse theme: %w", err)
	}
	t := Default().With(o)
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid theme: %w", err)
	}
	return t, nil
}

// Load reads a theme override file. An empty path yields the default
// theme.
func Load(path string) (*Theme, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read theme file %s: %w", path, err)
	}
	return Parse(data)
}
