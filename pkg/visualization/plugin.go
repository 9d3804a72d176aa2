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
package visualization

// Canvas is the part of a 2D drawing context a draw hook may touch.
type Canvas interface {
	Save()
	Restore()
	SetShadow(color string, blur, offsetX, offsetY float64)
	FillText(text string, x, y float64, font, color string)
}

// Position is the drawn location of one data element.
type Position struct {
	X float64
	Y float64
}

// DrawContext is handed to draw hooks by the engine.
type DrawContext interface {
	Canvas() Canvas
	Config() *Config
	// Elements returns the drawn positions of dataset i's elements.
	Elements(dataset int) []Position
}

// Plugin hooks into the engine's draw cycle around dataset drawing.
type Plugin struct {
	ID                 string
	BeforeDatasetsDraw func(DrawContext)
	AfterDatasetsDraw  func(DrawContext)
}

// ShadowPluginID identifies the fake 3-D bar shadow.
const ShadowPluginID = "barShadow"

// ShadowPlugin draws a drop shadow behind every dataset element. It is
// decoration, shown as an example of chart junk.
var ShadowPlugin = &Plugin{
	ID: ShadowPluginID,
	BeforeDatasetsDraw: func(dc DrawContext) {
		c := dc.Canvas()
		c.Save()
		c.SetShadow("rgba(0,0,0,0.5)", 10, 6, 6)
	},
	AfterDatasetsDraw: func(dc DrawContext) {
		dc.Canvas().Restore()
	},
}

// ValueLabelsPluginID identifies the per-element value labels.
const ValueLabelsPluginID = "customLabels"

// ValueLabelsPlugin prints every value above its element. Dataset i is
// formatted with formats[i], falling back to the last format.
func ValueLabelsPlugin(color, font string, formats ...TickFormat) *Plugin {
	return &Plugin{
		ID: ValueLabelsPluginID,
		AfterDatasetsDraw: func(dc DrawContext) {
			cfg := dc.Config()
			c := dc.Canvas()
			for di := range cfg.Datasets {
				f := TickFormat{}
				if len(formats) > 0 {
					f = formats[min(di, len(formats)-1)]
				}
				vals := cfg.Values(di)
				for i, pos := range dc.Elements(di) {
					if i >= len(vals) {
						break
					}
					offset := 8.0
					if di > 0 {
						offset = 10
					}
					c.Save()
					c.FillText(f.Format(vals[i]), pos.X, pos.Y-offset, font, color)
					c.Restore()
				}
			}
		},
	}
}
