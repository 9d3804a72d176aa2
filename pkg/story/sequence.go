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

// Package story drives linear multi-step narratives: a clamped step index
// kept in sync with its navigation controls, charts rebuilt per step, and
// deferred construction while layout settles.
package story

import (
	"fmt"
	"sync"

	"github.com/teradata-labs/vizlessons/pkg/page"
)

// Sequence is an ordered set of steps with one current step. The index is
// always within [0, n-1].
type Sequence struct {
	mu      sync.Mutex
	n       int
	current int

	prev, next page.Control
	steps      []page.Element
	dots       []page.Element
	listeners  []func(int)
}

// NewSequence returns a sequence of n steps at step 0. It draws nothing
// until Show is called.
func NewSequence(n int) *Sequence {
	return &Sequence{n: max(n, 1)}
}

// Bind attaches a sequence to the anchors of container id: controls
// "<id>-prev" and "<id>-next", and elements "<id>-step-<i>" and
// "<id>-dot-<i>". Missing navigation or step anchors are tolerated. It
// returns nil when the container element itself is absent.
func Bind(doc page.Document, id string, n int) *Sequence {
	if _, ok := doc.Element(id); !ok {
		return nil
	}
	s := NewSequence(n)
	for i := range n {
		if el, ok := doc.Element(fmt.Sprintf("%s-step-%d", id, i)); ok {
			s.steps = append(s.steps, el)
		}
		if el, ok := doc.Element(fmt.Sprintf("%s-dot-%d", id, i)); ok {
			s.dots = append(s.dots, el)
		}
	}
	if c, ok := doc.Control(id + "-prev"); ok {
		s.prev = c
		c.OnChange(func() { s.Prev() })
	}
	if c, ok := doc.Control(id + "-next"); ok {
		s.next = c
		c.OnChange(func() { s.Next() })
	}
	return s
}

// Manifest lists the anchors Bind looks for.
func Manifest(id string, n int) page.Manifest {
	m := page.Manifest{
		Elements: []string{id},
		Controls: []page.ControlSpec{
			{ID: id + "-prev", Key: "prev", Type: page.Button, Label: "← Previous"},
			{ID: id + "-next", Key: "next", Type: page.Button, Label: "Next →"},
		},
	}
	for i := range n {
		m.Elements = append(m.Elements, fmt.Sprintf("%s-step-%d", id, i), fmt.Sprintf("%s-dot-%d", id, i))
	}
	return m
}

// Len returns the number of steps.
func (s *Sequence) Len() int { return s.n }

// Current returns the current step index.
func (s *Sequence) Current() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

// OnShow registers fn to run after every Show with the new index.
func (s *Sequence) OnShow(fn func(int)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Show moves to step i, clamped to the valid range, and updates the
// navigation state.
func (s *Sequence) Show(i int) {
	s.mu.Lock()
	i = min(max(i, 0), s.n-1)
	s.current = i
	for j, el := range s.steps {
		el.SetActive(j == i)
	}
	for j, el := range s.dots {
		el.SetActive(j == i)
	}
	if s.prev != nil {
		s.prev.SetDisabled(i == 0)
	}
	if s.next != nil {
		s.next.SetDisabled(i == s.n-1)
	}
	listeners := append([]func(int){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(i)
	}
}

// Next advances one step. It reports false at the last step.
func (s *Sequence) Next() bool {
	cur := s.Current()
	if cur >= s.n-1 {
		return false
	}
	s.Show(cur + 1)
	return true
}

// Prev goes back one step. It reports false at the first step.
func (s *Sequence) Prev() bool {
	cur := s.Current()
	if cur <= 0 {
		return false
	}
	s.Show(cur - 1)
	return true
}

// AtStart reports whether the previous control is disabled.
func (s *Sequence) AtStart() bool { return s.Current() == 0 }

// AtEnd reports whether the next control is disabled.
func (s *Sequence) AtEnd() bool { return s.Current() == s.n-1 }
