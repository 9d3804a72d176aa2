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
	"fmt"
	"syscall/js"
	"time"

	"github.com/teradata-labs/vizlessons/pkg/lessons"
	"github.com/teradata-labs/vizlessons/pkg/sampledata"
	"github.com/teradata-labs/vizlessons/pkg/story"
	"github.com/teradata-labs/vizlessons/pkg/theme"
	"github.com/teradata-labs/vizlessons/pkg/visualization"
	"go.uber.org/zap"
)

// Options configures Start.
type Options struct {
	Theme *theme.Theme

	// Seed seeds the sample data; 0 picks a fresh seed per page load.
	Seed uint64

	// StepDelay is the pause before a walkthrough step's chart is built.
	StepDelay time.Duration

	Logger *zap.Logger
}

// Start wires every controller to the current page. Controllers whose
// anchors are missing from the page are skipped.
func Start(opts Options) (lessons.Report, error) {
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Seed == 0 {
		opts.Seed = uint64(time.Now().UnixNano())
	}
	dom := js.Global().Get("document")
	engine, err := NewEngine(dom)
	if err != nil {
		return lessons.Report{}, err
	}
	doc := NewDocument(dom)
	env := lessons.Env{
		Doc:    doc,
		Charts: visualization.NewFactory(opts.Theme, engine, doc, visualization.WithLogger(opts.Logger)),
		Data:   sampledata.Seeded(opts.Seed),
		Defer:  story.NewDeferred(opts.StepDelay),
		Logger: opts.Logger,
	}
	return lessons.Bootstrap(env, lessons.All()), nil
}

// Publish exposes a summary of the report as window.vizlessons.
func Publish(r lessons.Report) {
	failed := make(map[string]any, len(r.Failed))
	for id, err := range r.Failed {
		failed[id] = err.Error()
	}
	js.Global().Set("vizlessons", map[string]any{
		"started": strs(r.Started),
		"skipped": strs(r.Skipped),
		"failed":  failed,
		"summary": fmt.Sprintf("%d started, %d skipped, %d failed", len(r.Started), len(r.Skipped), len(r.Failed)),
	})
}

func strs(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
