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

// Package page defines the part of a lesson page the controllers touch:
// drawable surfaces, output elements and input controls. Hosts (the
// browser, the terminal explorer, tests) provide the implementation.
package page

// Badge classes used for semantic color on output elements.
const (
	ClassSafe    = "safe"
	ClassWarning = "warning"
	ClassDanger  = "danger"
)

// Document locates surfaces, elements and controls by identifier.
type Document interface {
	HasSurface(id string) bool

	// Element returns the output element with id.
	Element(id string) (Element, bool)

	// Control returns the control with id.
	Control(id string) (Control, bool)

	// Controls returns the controls of a group in page order. Each
	// control's Key is its data-attribute value within the group.
	Controls(group string) []Control
}

// Element is a writable output node.
type Element interface {
	ID() string
	SetText(text string)

	// SetClass replaces the element's class list.
	SetClass(class string)

	// SetStyle sets one inline style property. An empty value clears it.
	SetStyle(property, value string)

	SetDisabled(disabled bool)
	SetVisible(visible bool)

	// SetActive toggles the "active" class.
	SetActive(active bool)
}

// Control is an input widget: checkbox, slider, select, text box or
// button.
type Control interface {
	ID() string

	// Key is the control's data-attribute key.
	Key() string

	Checked() bool
	Value() string

	// Number parses Value as a float, returning 0 when it is not one.
	Number() float64

	SetValue(value string)
	SetDisabled(disabled bool)
	SetActive(active bool)

	// OnChange registers fn for input, change and click events.
	OnChange(fn func())
}
