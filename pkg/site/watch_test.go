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
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWatcherRequiresInput(t *testing.T) {
	_, err := NewWatcher(WatchConfig{OnChange: func(string) {}})
	assert.Error(t, err)

	_, err = NewWatcher(WatchConfig{Files: []string{"theme.yaml"}})
	assert.Error(t, err)
}

func TestWatcherDebounces(t *testing.T) {
	dir := t.TempDir()
	themeFile := filepath.Join(dir, "theme.yaml")
	other := filepath.Join(dir, "notes.txt")
	require.NoError(t, os.WriteFile(themeFile, []byte("name: a\n"), 0o644))

	var calls atomic.Int32
	var last atomic.Value
	w, err := NewWatcher(WatchConfig{
		Files:    []string{themeFile},
		Debounce: 100 * time.Millisecond,
		OnChange: func(path string) {
			calls.Add(1)
			last.Store(path)
		},
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.NoError(t, os.WriteFile(other, []byte("ignored"), 0o644))
	for i := 0; i < 3; i++ {
		require.NoError(t, os.WriteFile(themeFile, []byte("name: b\n"), 0o644))
	}

	require.Eventually(t, func() bool { return calls.Load() >= 1 }, 3*time.Second, 20*time.Millisecond)
	time.Sleep(250 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load(), "rapid writes collapse into one rebuild")
	abs, _ := filepath.Abs(themeFile)
	assert.Equal(t, abs, last.Load())

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}
