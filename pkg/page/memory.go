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
package page

import (
	"sort"
	"strconv"
	"strings"
	"sync"
)

// ControlType is the widget a control stands for.
type ControlType string

const (
	Checkbox ControlType = "checkbox"
	Slider   ControlType = "range"
	Select   ControlType = "select"
	TextBox  ControlType = "text"
	Button   ControlType = "button"
)

// ControlSpec declares one control of a page.
type ControlSpec struct {
	Group   string
	ID      string
	Key     string
	Type    ControlType
	Label   string
	Value   string
	Checked bool

	// Min, Max and Step bound sliders.
	Min, Max, Step float64

	// Options lists select values.
	Options []string
}

// Manifest declares the anchors a lesson expects its page to provide.
type Manifest struct {
	Surfaces []string
	Elements []string
	Controls []ControlSpec
}

// Merge returns the union of m and others.
func (m Manifest) Merge(others ...Manifest) Manifest {
	out := Manifest{
		Surfaces: append([]string(nil), m.Surfaces...),
		Elements: append([]string(nil), m.Elements...),
		Controls: append([]ControlSpec(nil), m.Controls...),
	}
	for _, o := range others {
		out.Surfaces = append(out.Surfaces, o.Surfaces...)
		out.Elements = append(out.Elements, o.Elements...)
		out.Controls = append(out.Controls, o.Controls...)
	}
	return out
}

// Memory is an in-memory Document. It is safe for concurrent use;
// change handlers run without the lock held.
type Memory struct {
	mu       sync.Mutex
	surfaces map[string]bool
	elements map[string]*MemElement
	controls map[string]*MemControl
	groups   map[string][]*MemControl
}

var _ Document = (*Memory)(nil)

// NewMemory returns a document holding every anchor of the manifests.
func NewMemory(manifests ...Manifest) *Memory {
	m := &Memory{
		surfaces: make(map[string]bool),
		elements: make(map[string]*MemElement),
		controls: make(map[string]*MemControl),
		groups:   make(map[string][]*MemControl),
	}
	for _, mf := range manifests {
		m.AddSurface(mf.Surfaces...)
		m.AddElement(mf.Elements...)
		for _, cs := range mf.Controls {
			m.AddControl(cs)
		}
	}
	return m
}

// AddSurface registers drawable surfaces.
func (m *Memory) AddSurface(ids ...string) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range ids {
		m.surfaces[id] = true
	}
	return m
}

// RemoveSurface drops a surface, as when a page section is absent.
func (m *Memory) RemoveSurface(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.surfaces, id)
}

// AddElement registers output elements.
func (m *Memory) AddElement(ids ...string) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range ids {
		if _, ok := m.elements[id]; !ok {
			m.elements[id] = &MemElement{id: id, styles: map[string]string{}, visible: true}
		}
	}
	return m
}

// AddControl registers a control and returns it.
func (m *Memory) AddControl(spec ControlSpec) *MemControl {
	m.mu.Lock()
	defer m.mu.Unlock()
	c := &MemControl{spec: spec, value: spec.Value, checked: spec.Checked}
	if spec.ID != "" {
		m.controls[spec.ID] = c
	}
	if spec.Group != "" {
		m.groups[spec.Group] = append(m.groups[spec.Group], c)
	}
	return c
}

func (m *Memory) HasSurface(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.surfaces[id]
}

func (m *Memory) Element(id string) (Element, bool) {
	e, ok := m.El(id)
	if !ok {
		return nil, false
	}
	return e, true
}

func (m *Memory) Control(id string) (Control, bool) {
	c, ok := m.Ctl(id)
	if !ok {
		return nil, false
	}
	return c, true
}

func (m *Memory) Controls(group string) []Control {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Control, 0, len(m.groups[group]))
	for _, c := range m.groups[group] {
		out = append(out, c)
	}
	return out
}

// El returns the concrete element with id.
func (m *Memory) El(id string) (*MemElement, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.elements[id]
	return e, ok
}

// Ctl returns the concrete control with id.
func (m *Memory) Ctl(id string) (*MemControl, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.controls[id]
	return c, ok
}

// Group returns the concrete controls of a group.
func (m *Memory) Group(group string) []*MemControl {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]*MemControl(nil), m.groups[group]...)
}

// GroupKey returns the control of group whose key is key.
func (m *Memory) GroupKey(group, key string) (*MemControl, bool) {
	for _, c := range m.Group(group) {
		if c.Key() == key {
			return c, true
		}
	}
	return nil, false
}

// Surfaces returns the registered surfaces, sorted.
func (m *Memory) Surfaces() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, 0, len(m.surfaces))
	for id := range m.surfaces {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}

// MemElement is an element of a Memory document.
type MemElement struct {
	mu       sync.Mutex
	id       string
	text     string
	class    string
	styles   map[string]string
	disabled bool
	visible  bool
	active   bool
}

var _ Element = (*MemElement)(nil)

func (e *MemElement) ID() string { return e.id }

func (e *MemElement) SetText(text string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.text = text
}

func (e *MemElement) SetClass(class string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.class = class
}

func (e *MemElement) SetStyle(property, value string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if value == "" {
		delete(e.styles, property)
		return
	}
	e.styles[property] = value
}

func (e *MemElement) SetDisabled(disabled bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.disabled = disabled
}

func (e *MemElement) SetVisible(visible bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.visible = visible
}

func (e *MemElement) SetActive(active bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.active = active
}

// Text returns the element's text.
func (e *MemElement) Text() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.text
}

// Class returns the element's class list.
func (e *MemElement) Class() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.class
}

// HasClass reports whether class is in the class list.
func (e *MemElement) HasClass(class string) bool {
	for _, c := range strings.Fields(e.Class()) {
		if c == class {
			return true
		}
	}
	return false
}

// Style returns one inline style property.
func (e *MemElement) Style(property string) string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.styles[property]
}

func (e *MemElement) Disabled() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.disabled
}

func (e *MemElement) Visible() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.visible
}

func (e *MemElement) Active() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.active
}

// MemControl is a control of a Memory document. Set, SetChecked and
// Click simulate user input and fire change handlers; SetValue is a
// programmatic write and does not.
type MemControl struct {
	mu       sync.Mutex
	spec     ControlSpec
	value    string
	checked  bool
	disabled bool
	active   bool
	handlers []func()
}

var _ Control = (*MemControl)(nil)

func (c *MemControl) ID() string  { return c.spec.ID }
func (c *MemControl) Key() string { return c.spec.Key }

// Spec returns the declaration the control was built from.
func (c *MemControl) Spec() ControlSpec { return c.spec }

func (c *MemControl) Checked() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.checked
}

func (c *MemControl) Value() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.value
}

func (c *MemControl) Number() float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(c.Value()), 64)
	if err != nil {
		return 0
	}
	return f
}

func (c *MemControl) SetValue(value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.value = value
}

func (c *MemControl) SetDisabled(disabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.disabled = disabled
}

func (c *MemControl) SetActive(active bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.active = active
}

func (c *MemControl) Disabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disabled
}

func (c *MemControl) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

func (c *MemControl) OnChange(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handlers = append(c.handlers, fn)
}

// Set writes value as user input.
func (c *MemControl) Set(value string) {
	c.SetValue(value)
	c.fire()
}

// SetChecked sets the checked state as user input.
func (c *MemControl) SetChecked(checked bool) {
	c.mu.Lock()
	c.checked = checked
	c.mu.Unlock()
	c.fire()
}

// Toggle flips the checked state as user input.
func (c *MemControl) Toggle() {
	c.SetChecked(!c.Checked())
}

// Click fires the control's handlers. Disabled controls ignore clicks.
func (c *MemControl) Click() {
	if c.Disabled() {
		return
	}
	c.fire()
}

func (c *MemControl) fire() {
	c.mu.Lock()
	handlers := append([]func(){}, c.handlers...)
	c.mu.Unlock()
	for _, fn := range handlers {
		fn()
	}
}
