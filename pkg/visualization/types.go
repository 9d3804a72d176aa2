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

// Package visualization builds declarative chart configurations for the
// lesson pages and defines the contract of the engine that draws them.
package visualization

import (
	"encoding/json"
	"errors"
	"math"

	"github.com/teradata-labs/vizlessons/pkg/merge"
)

// ChartKind is the closed set of chart kinds the factories build.
type ChartKind string

const (
	KindBar      ChartKind = "bar"
	KindLine     ChartKind = "line"
	KindPie      ChartKind = "pie"
	KindDoughnut ChartKind = "doughnut"
	KindScatter  ChartKind = "scatter"
)

// Categorical reports whether the kind plots values against category
// labels.
func (k ChartKind) Categorical() bool {
	return k != KindScatter
}

var (
	// ErrSeriesLength is returned when a categorical series does not have
	// one value per label.
	ErrSeriesLength = errors.New("series length does not match label count")

	// ErrOptionKind is returned when a kind-specific option is supplied
	// for another kind.
	ErrOptionKind = errors.New("option not supported for chart kind")
)

// Point is one scatter element. R is an optional radius; zero omits it.
type Point struct {
	X float64
	Y float64
	R float64
}

// Series is one named sequence of values plotted together.
type Series struct {
	Label string

	// Values is used by categorical kinds. NaN marks a gap.
	Values []float64

	// Points is used by scatter charts.
	Points []Point

	Color string
	Fill  bool

	// PointRadius overrides the factory default radius. PointRadii sets a
	// radius per element and wins over PointRadius.
	PointRadius *float64
	PointRadii  []float64

	// Extra is merged over the generated dataset last.
	Extra merge.Map
}

// Options is the option bag shared by every factory. Horizontal,
// Doughnut, XLabel and YLabel are kind-specific.
type Options struct {
	Title       string
	Colors      []string
	ShowLegend  *bool
	BeginAtZero *bool
	YMin        *float64
	YMax        *float64

	Horizontal bool   // bar only
	Doughnut   bool   // pie only
	XLabel     string // scatter only
	YLabel     string // scatter only

	// TickFormat formats the value axis ticks.
	TickFormat *TickFormat

	// Extra is deep-merged over the factory defaults.
	Extra merge.Map
}

// Bool returns a pointer to b, for optional option fields.
func Bool(b bool) *bool { return &b }

// Float returns a pointer to f, for optional option fields.
func Float(f float64) *float64 { return &f }

func (o Options) validateFor(kind ChartKind) error {
	switch {
	case o.Horizontal && kind != KindBar:
		return &OptionError{Option: "horizontal", Kind: kind}
	case o.Doughnut && kind != KindPie && kind != KindDoughnut:
		return &OptionError{Option: "doughnut", Kind: kind}
	case (o.XLabel != "" || o.YLabel != "") && kind != KindScatter:
		return &OptionError{Option: "xLabel/yLabel", Kind: kind}
	case kind == KindPie || kind == KindDoughnut:
		if o.YMin != nil || o.YMax != nil || o.BeginAtZero != nil || o.TickFormat != nil {
			return &OptionError{Option: "axis bounds", Kind: kind}
		}
	}
	return nil
}

// OptionError names the offending option. It matches ErrOptionKind.
type OptionError struct {
	Option string
	Kind   ChartKind
}

func (e *OptionError) Error() string {
	return "option " + e.Option + " not supported for " + string(e.Kind) + " charts"
}

func (e *OptionError) Is(target error) bool { return target == ErrOptionKind }

// Config is one renderable chart: kind, data, options and draw hooks.
// It is owned by the controller that built it.
type Config struct {
	Kind     ChartKind
	Labels   []string
	Datasets []merge.Map
	Options  merge.Map
	Plugins  []*Plugin
}

// Dataset returns dataset i, or nil when out of range.
func (c *Config) Dataset(i int) merge.Map {
	if i < 0 || i >= len(c.Datasets) {
		return nil
	}
	return c.Datasets[i]
}

// Option reads a dotted option path.
func (c *Config) Option(path string) (any, bool) {
	return merge.Get(c.Options, path)
}

// SetOption writes a dotted option path.
func (c *Config) SetOption(path string, v any) {
	if c.Options == nil {
		c.Options = merge.Map{}
	}
	merge.Set(c.Options, path, v)
}

// HasPlugin reports whether a draw hook with id is attached.
func (c *Config) HasPlugin(id string) bool {
	for _, p := range c.Plugins {
		if p.ID == id {
			return true
		}
	}
	return false
}

// AddPlugin attaches p unless a hook with the same id is present.
func (c *Config) AddPlugin(p *Plugin) {
	if !c.HasPlugin(p.ID) {
		c.Plugins = append(c.Plugins, p)
	}
}

// RemovePlugin detaches every hook with id.
func (c *Config) RemovePlugin(id string) {
	kept := c.Plugins[:0]
	for _, p := range c.Plugins {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	c.Plugins = kept
}

// Clone returns a deep copy. Plugins are shared; they are stateless.
func (c *Config) Clone() *Config {
	out := &Config{
		Kind:    c.Kind,
		Labels:  append([]string(nil), c.Labels...),
		Options: merge.Clone(c.Options),
		Plugins: append([]*Plugin(nil), c.Plugins...),
	}
	for _, ds := range c.Datasets {
		out.Datasets = append(out.Datasets, merge.Clone(ds))
	}
	return out
}

// Map renders the configuration in the engine's declarative shape.
// Plugins appear by id.
func (c *Config) Map() merge.Map {
	ids := make([]any, 0, len(c.Plugins))
	for _, p := range c.Plugins {
		ids = append(ids, p.ID)
	}
	datasets := make([]any, 0, len(c.Datasets))
	for _, ds := range c.Datasets {
		datasets = append(datasets, merge.Clone(ds))
	}
	data := merge.Map{"datasets": datasets}
	if c.Kind.Categorical() || len(c.Labels) > 0 {
		labels := make([]any, len(c.Labels))
		for i, l := range c.Labels {
			labels[i] = l
		}
		data["labels"] = labels
	}
	return merge.Map{
		"type":    string(c.Kind),
		"data":    data,
		"options": merge.Clone(c.Options),
		"plugins": ids,
	}
}

// MarshalJSON encodes Map.
func (c *Config) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Map())
}

// values converts a float series to JSON-safe values, NaN becoming null.
func values(vs []float64) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			out[i] = nil
			continue
		}
		out[i] = v
	}
	return out
}

func points(ps []Point) []any {
	out := make([]any, len(ps))
	for i, p := range ps {
		m := merge.Map{"x": p.X, "y": p.Y}
		if p.R > 0 {
			m["r"] = p.R
		}
		out[i] = m
	}
	return out
}

func strs(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

// Values reads dataset i's numeric data back, nulls becoming NaN.
func (c *Config) Values(i int) []float64 {
	ds := c.Dataset(i)
	if ds == nil {
		return nil
	}
	raw, _ := ds["data"].([]any)
	out := make([]float64, len(raw))
	for j, v := range raw {
		f, ok := v.(float64)
		if !ok {
			f = math.NaN()
		}
		out[j] = f
	}
	return out
}

// Strings reads a string list stored as []any or []string.
func Strings(v any) []string {
	switch t := v.(type) {
	case []string:
		return append([]string(nil), t...)
	case []any:
		out := make([]string, 0, len(t))
		for _, e := range t {
			if s, ok := e.(string); ok {
				out = append(out, s)
			}
		}
		return out
	case string:
		return []string{t}
	}
	return nil
}
