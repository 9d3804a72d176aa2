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
	"syscall/js"

	"github.com/teradata-labs/vizlessons/pkg/visualization"
)

// drawContext exposes a Chart.js instance to the Go draw hooks.
type drawContext struct {
	chart js.Value
	cfg   *visualization.Config
}

func (d *drawContext) Canvas() visualization.Canvas  { return canvas{ctx: d.chart.Get("ctx")} }
func (d *drawContext) Config() *visualization.Config { return d.cfg }

func (d *drawContext) Elements(dataset int) []visualization.Position {
	meta := d.chart.Call("getDatasetMeta", dataset)
	if meta.IsUndefined() || meta.IsNull() {
		return nil
	}
	els := meta.Get("data")
	out := make([]visualization.Position, els.Length())
	for i := range out {
		el := els.Index(i)
		out[i] = visualization.Position{X: el.Get("x").Float(), Y: el.Get("y").Float()}
	}
	return out
}

// canvas is a CanvasRenderingContext2D.
type canvas struct {
	ctx js.Value
}

func (c canvas) Save()    { c.ctx.Call("save") }
func (c canvas) Restore() { c.ctx.Call("restore") }

func (c canvas) SetShadow(color string, blur, offsetX, offsetY float64) {
	c.ctx.Set("shadowColor", color)
	c.ctx.Set("shadowBlur", blur)
	c.ctx.Set("shadowOffsetX", offsetX)
	c.ctx.Set("shadowOffsetY", offsetY)
}

func (c canvas) FillText(text string, x, y float64, font, color string) {
	c.ctx.Set("font", font)
	c.ctx.Set("fillStyle", color)
	c.ctx.Set("textAlign", "center")
	c.ctx.Call("fillText", text, x, y)
}
