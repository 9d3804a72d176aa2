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
package story

import (
	"sync"
	"time"
)

// DefaultDelay lets layout settle before a step's chart measures its
// surface.
const DefaultDelay = 50 * time.Millisecond

// Scheduler runs work later.
type Scheduler interface {
	Schedule(fn func())
}

// Immediate runs scheduled work synchronously.
type Immediate struct{}

func (Immediate) Schedule(fn func()) { fn() }

// Deferred runs the most recently scheduled function after a fixed delay.
// Scheduling again before the delay elapses supersedes the pending call.
type Deferred struct {
	mu    sync.Mutex
	delay time.Duration
	timer *time.Timer
	gen   uint64
}

// NewDeferred returns a Deferred. A non-positive delay means DefaultDelay.
func NewDeferred(delay time.Duration) *Deferred {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Deferred{delay: delay}
}

// Schedule replaces any pending call with fn.
func (d *Deferred) Schedule(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.gen++
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		current := gen == d.gen
		if current {
			d.timer = nil
		}
		d.mu.Unlock()
		if current {
			fn()
		}
	})
}

// Cancel drops the pending call, if any.
func (d *Deferred) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.gen++
}

// Pending reports whether a call is waiting to run.
func (d *Deferred) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}
