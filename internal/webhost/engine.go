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

//go:build js && wasm

package webhost

import (
	"errors"
	"fmt"
	"syscall/js"

	"github.com/google/uuid"
	"github.com/teradata-labs/vizlessons/pkg/merge"
	"github.com/teradata-labs/vizlessons/pkg/visualization"
)

// ErrNoChartJS is returned when the Chart global is missing.
var ErrNoChartJS = errors.New("chart.js is not loaded")

// Engine draws configurations with Chart.js.
type Engine struct {
	doc     js.Value
	chartJS js.Value
}

// NewEngine binds the engine to a DOM document and the global Chart
// constructor.
func NewEngine(doc js.Value) (*Engine, error) {
	ctor := js.Global().Get("Chart")
	if ctor.IsUndefined() || ctor.IsNull() {
		return nil, ErrNoChartJS
	}
	return &Engine{doc: doc, chartJS: ctor}, nil
}

// Create draws cfg on the canvas with id surface. A chart already drawn on
// the canvas is destroyed first.
func (e *Engine) Create(surface string, cfg *visualization.Config) (visualization.Chart, error) {
	canvas := e.doc.Call("getElementById", surface)
	if canvas.IsNull() || canvas.IsUndefined() {
		return nil, fmt.Errorf("surface %s not found", surface)
	}
	if old := e.chartJS.Call("getChart", canvas); !old.IsUndefined() && !old.IsNull() {
		old.Call("destroy")
	}

	c := &chart{
		id:      uuid.NewString(),
		surface: surface,
		canvas:  canvas,
		engine:  e,
		cfg:     cfg,
	}
	if err := c.draw(); err != nil {
		return nil, err
	}
	return c, nil
}

type chart struct {
	id      string
	surface string
	canvas  js.Value
	engine  *Engine
	cfg     *visualization.Config

	kind      visualization.ChartKind
	instance  js.Value
	hooks     []js.Func
	callbacks []js.Func
	destroyed bool
}

func (c *chart) ID() string                    { return c.id }
func (c *chart) Surface() string               { return c.surface }
func (c *chart) Config() *visualization.Config { return c.cfg }

// draw constructs the Chart.js instance. One inline plugin dispatches to
// cfg.Plugins at draw time, so plugins added or removed later apply on
// the next Update.
func (c *chart) draw() (err error) {
	defer recoverJS(&err)
	data, options, funcs := c.hydrate()
	plugin, hooks := c.dispatcher()
	cfg := map[string]any{
		"type":    string(c.cfg.Kind),
		"data":    data,
		"options": options,
		"plugins": []any{plugin},
	}
	c.instance = c.engine.chartJS.New(c.canvas, cfg)
	c.kind = c.cfg.Kind
	c.callbacks = funcs
	c.hooks = hooks
	return nil
}

// Update redraws after in-place mutation. A changed chart kind rebuilds
// the instance.
func (c *chart) Update() (err error) {
	if c.destroyed {
		return fmt.Errorf("chart %s is destroyed", c.id)
	}
	if c.cfg.Kind != c.kind {
		c.release()
		return c.draw()
	}
	defer recoverJS(&err)
	data, options, funcs := c.hydrate()
	c.instance.Set("data", data)
	c.instance.Set("options", options)
	c.instance.Call("update")
	old := c.callbacks
	c.callbacks = funcs
	for _, f := range old {
		f.Release()
	}
	return nil
}

func (c *chart) Destroy() error {
	if c.destroyed {
		return nil
	}
	c.destroyed = true
	c.release()
	return nil
}

func (c *chart) release() {
	if !c.instance.IsUndefined() && !c.instance.IsNull() {
		c.instance.Call("destroy")
	}
	for _, f := range append(c.callbacks, c.hooks...) {
		f.Release()
	}
	c.callbacks, c.hooks = nil, nil
	c.instance = js.Undefined()
}

// hydrate converts the configuration into JS values, turning declarative
// tick and tooltip formats into callbacks.
func (c *chart) hydrate() (data, options js.Value, funcs []js.Func) {
	m := c.cfg.Map()
	opts, _ := m["options"].(merge.Map)
	if opts == nil {
		opts = merge.Map{}
	}

	if scales, ok := opts["scales"].(merge.Map); ok {
		for _, axis := range scales {
			ticks, ok := merge.Get(asMap(axis), "ticks")
			if !ok {
				continue
			}
			t := asMap(ticks)
			f, ok := visualization.FormatFromMap(t["format"])
			if !ok {
				continue
			}
			fn := js.FuncOf(func(_ js.Value, args []js.Value) any {
				if len(args) == 0 || args[0].Type() != js.TypeNumber {
					return ""
				}
				return f.Format(args[0].Float())
			})
			funcs = append(funcs, fn)
			delete(t, "format")
			t["callback"] = fn
		}
	}

	if raw, ok := merge.Get(opts, "plugins.tooltip"); ok {
		tip := asMap(raw)
		horizontal := opts["indexAxis"] == "y"
		if f, ok := visualization.FormatFromMap(tip["format"]); ok {
			fn := js.FuncOf(func(_ js.Value, args []js.Value) any {
				parsed := args[0].Get("parsed")
				v := parsed.Get("y")
				if horizontal {
					v = parsed.Get("x")
				}
				if v.Type() != js.TypeNumber {
					return ""
				}
				return f.Format(v.Float())
			})
			funcs = append(funcs, fn)
			delete(tip, "format")
			tip["callbacks"] = merge.Map{"label": fn}
		}
		if labels := visualization.Strings(tip["labels"]); len(labels) > 0 {
			fn := js.FuncOf(func(_ js.Value, args []js.Value) any {
				i := args[0].Get("dataIndex").Int()
				if i < 0 || i >= len(labels) {
					return ""
				}
				return labels[i]
			})
			funcs = append(funcs, fn)
			delete(tip, "labels")
			tip["callbacks"] = merge.Map{"label": fn}
		}
	}
	return toJS(m["data"]), toJS(opts), funcs
}

// dispatcher is the inline plugin running the Go draw hooks.
func (c *chart) dispatcher() (js.Value, []js.Func) {
	hook := func(pick func(*visualization.Plugin) func(visualization.DrawContext)) js.Func {
		return js.FuncOf(func(_ js.Value, args []js.Value) any {
			if len(args) == 0 {
				return nil
			}
			dc := &drawContext{chart: args[0], cfg: c.cfg}
			for _, p := range c.cfg.Plugins {
				if fn := pick(p); fn != nil {
					fn(dc)
				}
			}
			return nil
		})
	}
	before := hook(func(p *visualization.Plugin) func(visualization.DrawContext) { return p.BeforeDatasetsDraw })
	after := hook(func(p *visualization.Plugin) func(visualization.DrawContext) { return p.AfterDatasetsDraw })
	plugin := js.ValueOf(map[string]any{
		"id":                 "vizlessons",
		"beforeDatasetsDraw": before,
		"afterDatasetsDraw":  after,
	})
	return plugin, []js.Func{before, after}
}

func asMap(v any) merge.Map {
	m, _ := v.(merge.Map)
	return m
}

// toJS converts a configuration value. js.ValueOf only accepts the exact
// types []any and map[string]any, so typed slices are widened here.
func toJS(v any) js.Value {
	switch t := v.(type) {
	case nil:
		return js.Null()
	case js.Value:
		return t
	case js.Func:
		return t.Value
	case merge.Map:
		obj := js.Global().Get("Object").New()
		for k, x := range t {
			obj.Set(k, toJS(x))
		}
		return obj
	case []any:
		arr := js.Global().Get("Array").New(len(t))
		for i, x := range t {
			arr.SetIndex(i, toJS(x))
		}
		return arr
	case []string:
		arr := js.Global().Get("Array").New(len(t))
		for i, x := range t {
			arr.SetIndex(i, x)
		}
		return arr
	case []float64:
		arr := js.Global().Get("Array").New(len(t))
		for i, x := range t {
			arr.SetIndex(i, x)
		}
		return arr
	case float32:
		return js.ValueOf(float64(t))
	}
	return js.ValueOf(v)
}

func recoverJS(err *error) {
	if r := recover(); r != nil {
		if jsErr, ok := r.(js.Error); ok {
			*err = fmt.Errorf("chart.js: %w", jsErr)
			return
		}
		*err = fmt.Errorf("chart.js: %v", r)
	}
}
