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
	"strconv"
	"strings"
	"syscall/js"

	"github.com/teradata-labs/vizlessons/pkg/page"
)

// Document is the browser page.
type Document struct {
	doc js.Value
}

// NewDocument wraps a DOM document.
func NewDocument(doc js.Value) *Document {
	return &Document{doc: doc}
}

func (d *Document) byID(id string) (js.Value, bool) {
	v := d.doc.Call("getElementById", id)
	if v.IsNull() || v.IsUndefined() {
		return js.Value{}, false
	}
	return v, true
}

// HasSurface reports whether id names a canvas.
func (d *Document) HasSurface(id string) bool {
	v, ok := d.byID(id)
	return ok && strings.EqualFold(v.Get("tagName").String(), "canvas")
}

func (d *Document) Element(id string) (page.Element, bool) {
	v, ok := d.byID(id)
	if !ok {
		return nil, false
	}
	return &element{v: v}, true
}

func (d *Document) Control(id string) (page.Control, bool) {
	v, ok := d.byID(id)
	if !ok {
		return nil, false
	}
	return &control{element: element{v: v}}, true
}

func (d *Document) Controls(group string) []page.Control {
	nodes := d.doc.Call("querySelectorAll", `[data-group="`+cssEscape(group)+`"]`)
	n := nodes.Length()
	out := make([]page.Control, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &control{element: element{v: nodes.Index(i)}})
	}
	return out
}

func cssEscape(s string) string {
	if esc := js.Global().Get("CSS"); !esc.IsUndefined() {
		return esc.Call("escape", s).String()
	}
	return strings.ReplaceAll(s, `"`, `\"`)
}

type element struct {
	v js.Value
}

func (e *element) ID() string           { return e.v.Get("id").String() }
func (e *element) SetText(text string)  { e.v.Set("textContent", text) }
func (e *element) SetClass(class string) { e.v.Set("className", class) }

func (e *element) SetStyle(property, value string) {
	style := e.v.Get("style")
	if value == "" {
		style.Call("removeProperty", property)
		return
	}
	style.Call("setProperty", property, value)
}

func (e *element) SetDisabled(disabled bool) { e.v.Set("disabled", disabled) }

func (e *element) SetVisible(visible bool) {
	if visible {
		e.SetStyle("display", "")
		return
	}
	e.SetStyle("display", "none")
}

func (e *element) SetActive(active bool) {
	e.v.Get("classList").Call("toggle", "active", active)
}

type control struct {
	element
}

func (c *control) Key() string {
	if k := c.v.Get("dataset").Get("key"); k.Type() == js.TypeString {
		return k.String()
	}
	return ""
}

func (c *control) Checked() bool {
	v := c.v.Get("checked")
	return v.Type() == js.TypeBoolean && v.Bool()
}

func (c *control) Value() string {
	v := c.v.Get("value")
	if v.Type() != js.TypeString {
		return ""
	}
	return v.String()
}

func (c *control) Number() float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(c.Value()), 64)
	if err != nil {
		return 0
	}
	return f
}

func (c *control) SetValue(value string) { c.v.Set("value", value) }

// OnChange listens for the one event the control's kind fires on a user
// edit, so a single edit runs fn once.
func (c *control) OnChange(fn func()) {
	cb := js.FuncOf(func(js.Value, []js.Value) any {
		fn()
		return nil
	})
	c.v.Call("addEventListener", c.event(), cb)
}

func (c *control) event() string {
	switch strings.ToLower(c.v.Get("tagName").String()) {
	case "select":
		return "change"
	case "input":
		switch strings.ToLower(c.v.Get("type").String()) {
		case "checkbox", "radio":
			return "change"
		case "button", "submit":
			return "click"
		}
		return "input"
	case "textarea":
		return "input"
	}
	return "click"
}
