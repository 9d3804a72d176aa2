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
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/MakeNowJust/heredoc"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/teradata-labs/vizlessons/internal/log"
	"github.com/teradata-labs/vizlessons/pkg/site"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

var buildWatch bool

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the static lesson pages",
	Long: heredoc.Doc(`
		Build the static site: one page per topic with every chart in its
		initial state, an index page and charts.json with all chart
		configurations. Every configuration is validated before anything is
		written.

		With --watch the site is rebuilt whenever the config file or the
		theme file changes.

		Examples:
		  vizlessons build
		  vizlessons build --out public --gzip
		  vizlessons build --theme brand.yaml --watch`),
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func init() {
	rootCmd.AddCommand(buildCmd)

	buildCmd.Flags().String("out", "dist", "output directory")
	buildCmd.Flags().Bool("gzip", false, "also write precompressed .gz files")
	buildCmd.Flags().String("workbook", "", "also write the chart data workbook with this file name")
	buildCmd.Flags().BoolVar(&buildWatch, "watch", false, "rebuild when the config or theme file changes")

	_ = viper.BindPFlag("site.out_dir", buildCmd.Flags().Lookup("out"))
	_ = viper.BindPFlag("site.gzip", buildCmd.Flags().Lookup("gzip"))
	_ = viper.BindPFlag("site.workbook", buildCmd.Flags().Lookup("workbook"))
}

func runBuild(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if _, err := buildSite(cmd.Context(), out, config); err != nil {
		return err
	}
	if !buildWatch {
		return nil
	}

	files := config.InputFiles()
	if len(files) == 0 {
		return fmt.Errorf("nothing to watch: pass --config or --theme")
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	w, err := site.NewWatcher(site.WatchConfig{
		Files:  files,
		Logger: log.Logger(),
		OnChange: func(path string) {
			fmt.Fprintf(out, "🔄 %s changed, rebuilding\n", path)
			cfg, err := LoadConfig(cfgFile)
			if err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "❌ %v\n", err)
				return
			}
			if _, err := buildSite(ctx, out, cfg); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "❌ %v\n", err)
			}
		},
	})
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "👀 Watching %d file(s), press Ctrl+C to stop\n", len(files))
	if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

// buildSite captures the lessons and writes the site described by cfg.
func buildSite(ctx context.Context, out io.Writer, cfg *Config) (*site.Result, error) {
	th, err := cfg.LoadTheme()
	if err != nil {
		return nil, err
	}
	snap, err := site.Capture(site.CaptureOptions{Theme: th, Seed: cfg.Site.Seed, Logger: log.Logger()})
	if err != nil {
		return nil, err
	}
	if len(snap.Report.Failed) > 0 {
		ids := make([]string, 0, len(snap.Report.Failed))
		for id := range snap.Report.Failed {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		var errs error
		for _, id := range ids {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", id, snap.Report.Failed[id]))
		}
		return nil, fmt.Errorf("demos failed to initialize: %w", errs)
	}

	b := site.NewBuilder(
		site.WithPageOptions(site.PageOptions{Title: cfg.Site.Title, ChartJS: cfg.Site.ChartJS}),
		site.WithGzip(cfg.Site.Gzip),
		site.WithWorkbook(cfg.Site.Workbook),
		site.WithLogger(log.Logger()),
	)
	res, err := b.Build(ctx, snap, cfg.Site.OutDir)
	if err != nil {
		return nil, err
	}
	log.Info("build finished", zap.String("dir", res.Dir), zap.Int("charts", res.Charts))
	fmt.Fprintf(out, "✅ Built %d files with %d charts into %s (%d bytes)\n", len(res.Files), res.Charts, res.Dir, res.Bytes)
	return res, nil
}
