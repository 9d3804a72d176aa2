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
package lessons

import (
	"math"
	"strconv"

	"github.com/teradata-labs/vizlessons/pkg/page"
	"github.com/teradata-labs/vizlessons/pkg/theme"
	"github.com/teradata-labs/vizlessons/pkg/visualization"
)

// ControlState is the current value of every control of one demo, keyed
// by the controls' data-attribute keys. It is read fresh on every event.
type ControlState map[string]any

// ReadState reads the controls of a group. Checkboxes contribute a bool,
// sliders a float64 and everything else a string.
func ReadState(doc page.Document, group string, kinds map[string]page.ControlType) ControlState {
	state := ControlState{}
	for _, c := range doc.Controls(group) {
		switch kinds[c.Key()] {
		case page.Checkbox:
			state[c.Key()] = c.Checked()
		case page.Slider:
			state[c.Key()] = c.Number()
		default:
			state[c.Key()] = c.Value()
		}
	}
	return state
}

// Bool returns the boolean value of key, false when absent.
func (s ControlState) Bool(key string) bool {
	b, _ := s[key].(bool)
	return b
}

// Number returns the numeric value of key, 0 when absent.
func (s ControlState) Number(key string) float64 {
	f, _ := s[key].(float64)
	return f
}

// String returns the string value of key.
func (s ControlState) String(key string) string {
	v, _ := s[key].(string)
	return v
}

// Active counts the true booleans.
func (s ControlState) Active() int {
	n := 0
	for _, v := range s {
		if b, ok := v.(bool); ok && b {
			n++
		}
	}
	return n
}

// Junk controls, in panel order.
const (
	JunkColors     = "colors"
	JunkBorders    = "borders"
	JunkGridlines  = "gridlines"
	JunkLegend     = "legend"
	JunkBackground = "background"
	JunkThreeD     = "threed"
	JunkGradients  = "gradients"
)

// JunkKeys lists the junk controls in panel order.
var JunkKeys = []string{JunkColors, JunkBorders, JunkGridlines, JunkLegend, JunkBackground, JunkThreeD, JunkGradients}

// Decoration colors of the junk demos.
const (
	junkBorderColor = "rgba(0,0,0,0.8)"
	junkGridColor   = "rgba(150,150,170,0.5)"
	junkBackground  = "linear-gradient(135deg, #2a1a3e, #1a2a3e)"
)

// JunkEncoding is everything the junk toggles change on the chart.
type JunkEncoding struct {
	Colors []string

	BorderVisible bool
	BorderColor   string
	BorderWidth   int

	GridlineVisible bool
	GridColor       string
	GridWidth       int

	LegendVisible bool

	// BackgroundDecoration is the inline background of the chart area; ""
	// clears it.
	BackgroundDecoration string

	ShadowEnabled bool
}

// DeriveJunk computes the encoding from the whole panel state. Gradients
// only change the colors in combination with the colors control.
func DeriveJunk(th *theme.Theme, state ControlState) JunkEncoding {
	c := th.Colors()
	enc := JunkEncoding{
		Colors:          junkColors(th, state.Bool(JunkColors), state.Bool(JunkGradients)),
		BorderVisible:   state.Bool(JunkBorders),
		BorderColor:     "transparent",
		GridlineVisible: state.Bool(JunkGridlines),
		GridColor:       c.GridLine,
		GridWidth:       1,
		LegendVisible:   state.Bool(JunkLegend),
		ShadowEnabled:   state.Bool(JunkThreeD),
	}
	if enc.BorderVisible {
		enc.BorderColor = junkBorderColor
		enc.BorderWidth = 3
	}
	if enc.GridlineVisible {
		enc.GridColor = junkGridColor
		enc.GridWidth = 2
	}
	if state.Bool(JunkBackground) {
		enc.BackgroundDecoration = junkBackground
	}
	return enc
}

func junkColors(th *theme.Theme, colors, gradients bool) []string {
	c := th.Colors()
	switch {
	case colors:
		return th.BadPaletteN(5)
	case gradients:
		return []string{c.Accent, c.AccentLight, c.Accent, c.AccentLight, c.Accent}
	}
	return []string{c.Accent, c.Accent, c.Accent, c.Accent, c.Accent}
}

// Apply writes the encoding into a junk chart configuration.
func (e JunkEncoding) Apply(cfg *visualization.Config) {
	ds := cfg.Dataset(0)
	if ds != nil {
		ds["backgroundColor"] = strList(e.Colors)
		ds["borderColor"] = e.BorderColor
		ds["borderWidth"] = e.BorderWidth
	}
	cfg.SetOption("scales.x.grid.display", e.GridlineVisible)
	for _, axis := range []string{"x", "y"} {
		cfg.SetOption("scales."+axis+".grid.color", e.GridColor)
		cfg.SetOption("scales."+axis+".grid.lineWidth", e.GridWidth)
	}
	cfg.SetOption("plugins.legend.display", e.LegendVisible)
	if e.ShadowEnabled {
		cfg.AddPlugin(visualization.ShadowPlugin)
	} else {
		cfg.RemovePlugin(visualization.ShadowPluginID)
	}
}

// Tier is the three-level verdict color of a readout.
type Tier string

const (
	TierGood Tier = "success"
	TierWarn Tier = "warning"
	TierBad  Tier = "danger"
)

// CSSColor is the stylesheet variable of the tier.
func (t Tier) CSSColor() string { return "var(--" + string(t) + ")" }

// InkRatio is the displayed data-ink score for active of total junk
// controls: round(30 + (1 - active/total) * 60).
func InkRatio(active, total int) int {
	if total <= 0 {
		return 90
	}
	return int(math.Round(30 + (1-float64(active)/float64(total))*60))
}

// InkTier grades an ink ratio: 75 and up is good, 50 and up a warning.
func InkTier(ratio int) Tier {
	switch {
	case ratio >= 75:
		return TierGood
	case ratio >= 50:
		return TierWarn
	}
	return TierBad
}

// Income figures of the axis truncation demo.
const (
	TruncHigh = 72000.0 // Honolulu
	TruncLow  = 55000.0 // Hawaii
)

// TruncationReadout is the explanation shown for an axis minimum.
type TruncationReadout struct {
	Min float64

	// Apparent is the ratio of the visible bar lengths; +Inf once the
	// smaller bar has vanished.
	Apparent float64
	Actual   float64

	Accurate  bool
	Badge     string
	BadgeTier Tier
	MinLabel  string
	Sentence  string
}

// Truncation explains how an axis starting at minimum distorts the gap
// between the highest and lowest income.
func Truncation(minimum float64) TruncationReadout {
	r := TruncationReadout{
		Min:      minimum,
		Actual:   TruncHigh / TruncLow,
		Accurate: minimum == 0,
		MinLabel: visualization.FormatDollars.Format(minimum),
	}
	low := TruncLow - minimum
	if low > 0 {
		r.Apparent = (TruncHigh - minimum) / low
	} else {
		r.Apparent = math.Inf(1)
	}

	if r.Accurate {
		r.Badge, r.BadgeTier = "✓ ACCURATE", TierGood
	} else {
		r.Badge, r.BadgeTier = "⚠ MISLEADING", TierBad
	}

	actual := fixed1(r.Actual)
	if low > 0 {
		r.Sentence = "At this scale, Honolulu appears to have " + fixed1(r.Apparent) +
			"× the income of Hawaii, but it's actually only " + actual + "× more."
	} else {
		r.Sentence = "At this scale, Hawaii's bar has disappeared entirely — yet the actual difference is only " +
			actual + "×."
	}
	return r
}

// ApparentLabel is the apparent ratio as displayed.
func (r TruncationReadout) ApparentLabel() string {
	if math.IsInf(r.Apparent, 1) {
		return "∞"
	}
	return fixed1(r.Apparent)
}

// PieVerdict grades a pie dataset against the sum-to-100 rule.
type PieVerdict struct {
	Sum   float64
	Valid bool
	Badge string
	Tier  Tier
}

// CheckPie reports whether data sums to 100 within half a point.
func CheckPie(data []float64) PieVerdict {
	sum := 0.0
	for _, v := range data {
		sum += v
	}
	v := PieVerdict{Sum: sum, Valid: math.Abs(sum-100) < 0.5}
	if v.Valid {
		v.Badge, v.Tier = "✓ VALID — Slices sum to 100%", TierGood
	} else {
		v.Badge, v.Tier = "⚠ CRIME — Slices sum to "+strconv.Itoa(int(math.Round(sum)))+"%!", TierBad
	}
	return v
}

// badgeClass maps a tier onto the badge class vocabulary.
func badgeClass(t Tier) string {
	switch t {
	case TierGood:
		return page.ClassSafe
	case TierWarn:
		return page.ClassWarning
	}
	return page.ClassDanger
}

func fixed1(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

func strList(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
