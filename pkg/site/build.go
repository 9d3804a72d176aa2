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
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
	"github.com/teradata-labs/vizlessons/pkg/visualization"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// Default output names.
const (
	IndexFile    = "index.html"
	ManifestFile = "charts.json"
)

// Builder exports a snapshot to a directory.
type Builder struct {
	pages    PageOptions
	gzip     bool
	workbook string
	logger   *zap.Logger
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithPageOptions sets the page title and engine script.
func WithPageOptions(o PageOptions) BuilderOption {
	return func(b *Builder) { b.pages = o }
}

// WithGzip also writes a precompressed .gz next to every file.
func WithGzip(enabled bool) BuilderOption {
	return func(b *Builder) { b.gzip = enabled }
}

// WithWorkbook also writes the chart data workbook under name.
func WithWorkbook(name string) BuilderOption {
	return func(b *Builder) { b.workbook = name }
}

// WithLogger sets the builder's logger.
func WithLogger(logger *zap.Logger) BuilderOption {
	return func(b *Builder) { b.logger = logger }
}

// NewBuilder creates a builder.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(b)
	}
	b.pages = b.pages.withDefaults()
	return b
}

// Result lists what a build wrote.
type Result struct {
	Dir    string
	Files  []string
	Charts int
	Bytes  int64
}

// Build validates every chart of snap and writes the site into dir. No
// file is written when a chart is invalid.
func (b *Builder) Build(ctx context.Context, snap *Snapshot, dir string) (*Result, error) {
	if snap == nil {
		return nil, fmt.Errorf("snapshot is nil")
	}
	var errs error
	for _, c := range snap.Charts() {
		if err := Validate(c.Config); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", c.Surface, err))
		}
	}
	if errs != nil {
		return nil, errs
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	res := &Result{Dir: dir, Charts: len(snap.Charts())}

	if err := b.write(res, IndexFile, []byte(ExportIndex(snap.Theme, snap, b.pages))); err != nil {
		return nil, err
	}
	for _, t := range snap.Topics {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		page, err := ExportTopic(snap.Theme, t, b.pages)
		if err != nil {
			return nil, err
		}
		if err := b.write(res, TopicFile(t.Number), []byte(page)); err != nil {
			return nil, err
		}
	}

	manifest, err := Manifest(snap)
	if err != nil {
		return nil, err
	}
	if err := b.write(res, ManifestFile, manifest); err != nil {
		return nil, err
	}

	if b.workbook != "" {
		path := filepath.Join(dir, b.workbook)
		if err := WriteWorkbook(snap, path); err != nil {
			return nil, err
		}
		res.Files = append(res.Files, b.workbook)
	}

	b.logger.Info("site built",
		zap.String("dir", dir),
		zap.Int("files", len(res.Files)),
		zap.Int("charts", res.Charts),
		zap.Int64("bytes", res.Bytes))
	return res, nil
}

// Manifest encodes every chart configuration keyed by surface.
func Manifest(snap *Snapshot) ([]byte, error) {
	charts := map[string]*visualization.Config{}
	for _, c := range snap.Charts() {
		charts[c.Surface] = c.Config
	}
	data, err := json.MarshalIndent(charts, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode chart manifest: %w", err)
	}
	return data, nil
}

func (b *Builder) write(res *Result, name string, data []byte) error {
	path := filepath.Join(res.Dir, name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	res.Files = append(res.Files, name)
	res.Bytes += int64(len(data))
	b.logger.Debug("wrote file", zap.String("path", path), zap.Int("bytes", len(data)))

	if !b.gzip {
		return nil
	}
	compressed, err := Compress(data)
	if err != nil {
		return fmt.Errorf("failed to compress %s: %w", name, err)
	}
	if err := os.WriteFile(path+".gz", compressed, 0o644); err != nil {
		return fmt.Errorf("failed to write %s.gz: %w", name, err)
	}
	res.Files = append(res.Files, name+".gz")
	res.Bytes += int64(len(compressed))
	return nil
}

// Compress gzips data at the best compression level.
func Compress(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	gz, err := gzip.NewWriterLevel(&buf, gzip.BestCompression)
	if err != nil {
		return nil, err
	}
	if _, err := gz.Write(data); err != nil {
		return nil, err
	}
	if err := gz.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
