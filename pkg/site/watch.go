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
package site

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long changes must settle before a rebuild.
const DefaultDebounce = 300 * time.Millisecond

// WatchConfig configures a Watcher.
type WatchConfig struct {
	// Files are the inputs of a build, typically the theme and the config
	// file. Their directories are watched.
	Files    []string
	Debounce time.Duration
	Logger   *zap.Logger

	// OnChange runs after changes settle, with the file that changed last.
	OnChange func(path string)
}

// Watcher triggers rebuilds when build inputs change.
type Watcher struct {
	watcher *fsnotify.Watcher
	config  WatchConfig
	logger  *zap.Logger
	files   map[string]bool

	mu    sync.Mutex
	timer *time.Timer
}

// NewWatcher creates a watcher over cfg.Files.
func NewWatcher(cfg WatchConfig) (*Watcher, error) {
	if len(cfg.Files) == 0 {
		return nil, fmt.Errorf("nothing to watch")
	}
	if cfg.OnChange == nil {
		return nil, fmt.Errorf("watch callback is nil")
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.Debounce == 0 {
		cfg.Debounce = DefaultDebounce
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	w := &Watcher{watcher: fw, config: cfg, logger: cfg.Logger, files: map[string]bool{}}

	dirs := map[string]bool{}
	for _, f := range cfg.Files {
		abs, err := filepath.Abs(f)
		if err != nil {
			_ = fw.Close()
			return nil, err
		}
		w.files[abs] = true
		dirs[filepath.Dir(abs)] = true
	}
	// Editors replace files on save, so the directories are watched rather
	// than the files.
	for dir := range dirs {
		if err := fw.Add(dir); err != nil {
			_ = fw.Close()
			return nil, fmt.Errorf("failed to watch %s: %w", dir, err)
		}
	}
	return w, nil
}

// Run processes events until ctx is done, then closes the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer func() { _ = w.watcher.Close() }()
	w.logger.Info("watching for changes", zap.Int("files", len(w.files)), zap.Duration("debounce", w.config.Debounce))

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Error("file watcher error", zap.Error(err))

		case <-ctx.Done():
			w.mu.Lock()
			if w.timer != nil {
				w.timer.Stop()
			}
			w.mu.Unlock()
			return ctx.Err()
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	abs, err := filepath.Abs(event.Name)
	if err != nil || !w.files[abs] {
		return
	}
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}
	w.logger.Debug("input changed", zap.String("file", abs), zap.String("operation", event.Op.String()))
	w.debounce(abs)
}

// debounce delays the callback until changes settle.
func (w *Watcher) debounce(path string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.config.Debounce, func() {
		w.config.OnChange(path)
	})
}
