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
package log

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		level   zapcore.Level
		wantErr bool
	}{
		{name: "defaults", cfg: Config{}, level: zap.InfoLevel},
		{name: "debug text", cfg: Config{Level: "debug", Format: "text"}, level: zap.DebugLevel},
		{name: "warn json", cfg: Config{Level: "warn", Format: "json"}, level: zap.WarnLevel},
		{name: "console alias", cfg: Config{Level: "error", Format: "console"}, level: zap.ErrorLevel},
		{name: "bad level", cfg: Config{Level: "loud"}, wantErr: true},
		{name: "bad format", cfg: Config{Format: "xml"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, l.Core().Enabled(tt.level))
			if tt.level > zap.DebugLevel {
				assert.False(t, l.Core().Enabled(tt.level-1))
			}
		})
	}
}

func TestNewFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vizlessons.log")
	l, err := New(Config{Level: "info", Format: "json", File: path})
	require.NoError(t, err)
	l.Info("hello")
	_ = l.Sync()
	assert.FileExists(t, path)
}

func TestGlobalHelpers(t *testing.T) {
	orig := Logger()
	defer SetLogger(orig)

	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))

	Debug("d")
	Info("i", zap.String("k", "v"))
	Warn("w")
	Error("e")
	With(zap.Int("n", 1)).Info("with")

	entries := logs.AllUntimed()
	require.Len(t, entries, 5)
	assert.Equal(t, "i", entries[1].Message)
	assert.Equal(t, "v", entries[1].ContextMap()["k"])
	assert.Equal(t, int64(1), entries[4].ContextMap()["n"])

	SetLogger(nil)
	assert.NotNil(t, Logger())
	Info("dropped")
}
