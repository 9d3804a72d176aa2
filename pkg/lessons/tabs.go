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
	"github.com/teradata-labs/vizlessons/pkg/page"
)

// Tabs switches between content panes: a button per key in control group
// id, and one pane element "<id>-<key>" per key. Exactly one button and
// one pane are active. It covers the before/after toggles and the story
// templates.
type Tabs struct {
	base
	keys []string
}

// NewTabs returns a tab set for container id. The first key starts
// active.
func NewTabs(id string, topic int, keys ...string) *Tabs {
	return &Tabs{
		base: base{id: id, topic: topic, title: "Tabs: " + id, policy: Static},
		keys: keys,
	}
}

// Keys returns the tab keys in order.
func (t *Tabs) Keys() []string { return append([]string(nil), t.keys...) }

func (t *Tabs) pane(key string) string { return t.id + "-" + key }

func (t *Tabs) Manifest() page.Manifest {
	m := page.Manifest{Elements: []string{t.id}}
	for _, k := range t.keys {
		m.Elements = append(m.Elements, t.pane(k))
		m.Controls = append(m.Controls, page.ControlSpec{
			Group: t.id,
			ID:    t.id + "-btn-" + k,
			Key:   k,
			Type:  page.Button,
			Label: k,
		})
	}
	return m
}

func (t *Tabs) Init(env Env) error {
	if _, ok := env.Doc.Element(t.id); !ok {
		return missing(t.id)
	}
	buttons := env.Doc.Controls(t.id)
	for _, b := range buttons {
		key := b.Key()
		b.OnChange(func() { t.show(env, buttons, key) })
	}
	if len(t.keys) > 0 {
		t.show(env, buttons, t.keys[0])
	}
	return nil
}

func (t *Tabs) show(env Env, buttons []page.Control, key string) {
	setActive(buttons, key)
	for _, k := range t.keys {
		if el := element(env, t.pane(k)); el != nil {
			el.SetActive(k == key)
		}
	}
}
