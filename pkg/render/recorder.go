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

// Package render provides engines that draw chart configurations without a
// browser: an in-memory recorder for tests and the CLI, and a text
// renderer for terminals.
package render

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/teradata-labs/vizlessons/pkg/visualization"
	"go.uber.org/zap"
)

var (
	// ErrSurfaceBusy is recorded when a chart is created on a surface whose
	// previous chart was never destroyed.
	ErrSurfaceBusy = errors.New("surface already has a live chart")

	// ErrDestroyed is returned by Update on a destroyed chart.
	ErrDestroyed = errors.New("chart has been destroyed")
)

// Nominal drawing area used to place elements for draw hooks.
const (
	SurfaceWidth  = 600.0
	SurfaceHeight = 300.0
)

// Op is a lifecycle operation seen by the recorder.
type Op string

const (
	OpCreate  Op = "create"
	OpUpdate  Op = "update"
	OpDestroy Op = "destroy"
)

// Event is one recorded lifecycle operation.
type Event struct {
	Op      Op
	Surface string
	ChartID string
}

// Recorder is an in-memory Engine. It keeps every live chart by surface,
// records lifecycle events and flags leaked charts.
type Recorder struct {
	mu     sync.Mutex
	live   map[string]*RecordedChart
	events []Event
	leaks  []error
	logger *zap.Logger
}

// Option configures a Recorder.
type Option func(*Recorder)

// WithLogger sets the recorder's logger.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Recorder) {
		r.logger = logger
	}
}

// NewRecorder returns an empty recorder.
func NewRecorder(opts ...Option) *Recorder {
	r := &Recorder{
		live:   make(map[string]*RecordedChart),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Create implements visualization.Engine. Creating over a live chart is a
// leak: it is recorded and logged, and the new chart replaces the old one.
func (r *Recorder) Create(surface string, cfg *visualization.Config) (visualization.Chart, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil configuration for surface %s", surface)
	}
	c := &RecordedChart{
		id:       uuid.NewString(),
		surface:  surface,
		config:   cfg,
		recorder: r,
	}

	r.mu.Lock()
	if prev, ok := r.live[surface]; ok {
		err := fmt.Errorf("%s (chart %s): %w", surface, prev.id, ErrSurfaceBusy)
		r.leaks = append(r.leaks, err)
		r.logger.Warn("chart leaked", zap.String("surface", surface), zap.String("chart_id", prev.id))
	}
	r.live[surface] = c
	r.events = append(r.events, Event{Op: OpCreate, Surface: surface, ChartID: c.id})
	r.mu.Unlock()

	c.draw()
	return c, nil
}

// Live returns the live chart on surface.
func (r *Recorder) Live(surface string) (*RecordedChart, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.live[surface]
	return c, ok
}

// LiveCount returns the number of live charts.
func (r *Recorder) LiveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.live)
}

// Surfaces returns the surfaces holding live charts, sorted.
func (r *Recorder) Surfaces() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.live))
	for s := range r.live {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// Events returns a copy of the lifecycle log.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Event(nil), r.events...)
}

// Leaks returns every recorded leak. Each matches ErrSurfaceBusy.
func (r *Recorder) Leaks() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]error(nil), r.leaks...)
}

// Reset drops all state.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.live = make(map[string]*RecordedChart)
	r.events = nil
	r.leaks = nil
}

func (r *Recorder) record(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *Recorder) release(c *RecordedChart) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.live[c.surface] == c {
		delete(r.live, c.surface)
	}
	r.events = append(r.events, Event{Op: OpDestroy, Surface: c.surface, ChartID: c.id})
}

// RecordedChart is a chart held by a Recorder.
type RecordedChart struct {
	mu        sync.Mutex
	id        string
	surface   string
	config    *visualization.Config
	recorder  *Recorder
	destroyed bool
	draws     int
	canvas    *Canvas
}

var _ visualization.Chart = (*RecordedChart)(nil)

func (c *RecordedChart) ID() string                     { return c.id }
func (c *RecordedChart) Surface() string                { return c.surface }
func (c *RecordedChart) Config() *visualization.Config { return c.config }

// Update redraws the chart.
func (c *RecordedChart) Update() error {
	c.mu.Lock()
	destroyed := c.destroyed
	c.mu.Unlock()
	if destroyed {
		return fmt.Errorf("update %s: %w", c.id, ErrDestroyed)
	}
	c.recorder.record(Event{Op: OpUpdate, Surface: c.surface, ChartID: c.id})
	c.draw()
	return nil
}

// Destroy releases the chart. Later calls are no-ops.
func (c *RecordedChart) Destroy() error {
	c.mu.Lock()
	if c.destroyed {
		c.mu.Unlock()
		return nil
	}
	c.destroyed = true
	c.mu.Unlock()
	c.recorder.release(c)
	return nil
}

// Destroyed reports whether Destroy was called.
func (c *RecordedChart) Destroyed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.destroyed
}

// Draws returns how many times the chart was drawn.
func (c *RecordedChart) Draws() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.draws
}

// Canvas returns the canvas of the last draw.
func (c *RecordedChart) Canvas() *Canvas {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.canvas
}

// draw runs the draw hooks around a no-op dataset pass.
func (c *RecordedChart) draw() {
	canvas := &Canvas{}
	dc := &drawContext{canvas: canvas, config: c.config}
	for _, p := range c.config.Plugins {
		if p.BeforeDatasetsDraw != nil {
			p.BeforeDatasetsDraw(dc)
		}
	}
	canvas.ops = append(canvas.ops, "datasets")
	for _, p := range c.config.Plugins {
		if p.AfterDatasetsDraw != nil {
			p.AfterDatasetsDraw(dc)
		}
	}

	c.mu.Lock()
	c.draws++
	c.canvas = canvas
	c.mu.Unlock()
}

type drawContext struct {
	canvas *Canvas
	config *visualization.Config
}

func (d *drawContext) Canvas() visualization.Canvas  { return d.canvas }
func (d *drawContext) Config() *visualization.Config { return d.config }

// Elements lays values out evenly across the surface, scaled to the
// largest value of the chart.
func (d *drawContext) Elements(dataset int) []visualization.Position {
	vals := d.config.Values(dataset)
	top := 0.0
	for i := range d.config.Datasets {
		for _, v := range d.config.Values(i) {
			if v > top {
				top = v
			}
		}
	}
	if top == 0 {
		top = 1
	}
	out := make([]visualization.Position, len(vals))
	step := SurfaceWidth / float64(max(len(vals), 1))
	for i, v := range vals {
		if math.IsNaN(v) {
			v = 0
		}
		out[i] = visualization.Position{
			X: step*float64(i) + step/2,
			Y: SurfaceHeight - v/top*SurfaceHeight,
		}
	}
	return out
}

// Canvas records drawing operations.
type Canvas struct {
	ops   []string
	texts []string
	depth int
}

var _ visualization.Canvas = (*Canvas)(nil)

func (c *Canvas) Save() {
	c.depth++
	c.ops = append(c.ops, "save")
}

func (c *Canvas) Restore() {
	c.depth--
	c.ops = append(c.ops, "restore")
}

func (c *Canvas) SetShadow(color string, blur, offsetX, offsetY float64) {
	c.ops = append(c.ops, fmt.Sprintf("shadow %s %g %g %g", color, blur, offsetX, offsetY))
}

func (c *Canvas) FillText(text string, x, y float64, font, color string) {
	c.ops = append(c.ops, "text "+text)
	c.texts = append(c.texts, text)
}

// Ops returns the recorded operations in order.
func (c *Canvas) Ops() []string { return append([]string(nil), c.ops...) }

// Texts returns every string drawn with FillText.
func (c *Canvas) Texts() []string { return append([]string(nil), c.texts...) }

// Balanced reports whether every Save was matched by a Restore.
func (c *Canvas) Balanced() bool { return c.depth == 0 }
