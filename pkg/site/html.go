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
	"encoding/json"
	"fmt"
	"html"
	"strings"

	"github.com/teradata-labs/vizlessons/pkg/theme"
)

// DefaultChartJS is the engine script embedded in every page.
const DefaultChartJS = "https://cdn.jsdelivr.net/npm/chart.js@4/dist/chart.umd.min.js"

// PageOptions configures the HTML export.
type PageOptions struct {
	Title   string
	ChartJS string
}

func (o PageOptions) withDefaults() PageOptions {
	if o.Title == "" {
		o.Title = "Data Visualization Lessons"
	}
	if o.ChartJS == "" {
		o.ChartJS = DefaultChartJS
	}
	return o
}

// TopicFile is the page name of a topic.
func TopicFile(n int) string {
	return fmt.Sprintf("topic-%d.html", n)
}

// ExportTopic generates a self-contained HTML page with every chart of t.
func ExportTopic(th *theme.Theme, t Topic, opts PageOptions) (string, error) {
	opts = opts.withDefaults()
	var sb strings.Builder
	writeHead(&sb, th, fmt.Sprintf("%d. %s | %s", t.Number, t.Title, opts.Title), opts.ChartJS)

	sb.WriteString(fmt.Sprintf(`    <div class="container">
        <nav><a href="index.html">%s</a></nav>
        <h1>%d. %s</h1>
`, html.EscapeString(opts.Title), t.Number, html.EscapeString(t.Title)))

	for _, sec := range t.Sections {
		sb.WriteString(fmt.Sprintf(`
        <section class="lesson" id="%s">
            <h2 class="lesson-title">%s</h2>
            <p class="lesson-policy">%s</p>
            <div class="chart-grid">
`, html.EscapeString(sec.ID), html.EscapeString(sec.Title), html.EscapeString(string(sec.Policy))))
		for _, c := range sec.Charts {
			sb.WriteString(fmt.Sprintf(`                <div class="chart-container"><canvas id="%s"></canvas></div>
`, html.EscapeString(c.Surface)))
		}
		sb.WriteString("            </div>\n        </section>\n")
	}

	sb.WriteString("\n        <script>\n")
	sb.WriteString(runtimeJS)
	for _, sec := range t.Sections {
		for _, c := range sec.Charts {
			raw, err := json.Marshal(c.Config)
			if err != nil {
				return "", fmt.Errorf("failed to encode chart %s: %w", c.Surface, err)
			}
			sb.WriteString(fmt.Sprintf("            vizlessons.draw(%q, %s);\n", c.Surface, raw))
		}
	}
	sb.WriteString("        </script>\n")

	sb.WriteString(`    </div>
</body>
</html>`)
	return sb.String(), nil
}

// ExportIndex generates the table of contents.
func ExportIndex(th *theme.Theme, snap *Snapshot, opts PageOptions) string {
	opts = opts.withDefaults()
	var sb strings.Builder
	writeHead(&sb, th, opts.Title, "")
	sb.WriteString(fmt.Sprintf(`    <div class="container">
        <h1>%s</h1>
        <div class="summary">%d lessons, %d interactive charts.</div>
        <ol class="topics">
`, html.EscapeString(opts.Title), len(snap.Topics), len(snap.Charts())))
	for _, t := range snap.Topics {
		n := 0
		for _, sec := range t.Sections {
			n += len(sec.Charts)
		}
		sb.WriteString(fmt.Sprintf(`            <li><a href="%s">%s</a> <span class="count">%d charts</span></li>
`, TopicFile(t.Number), html.EscapeString(t.Title), n))
	}
	sb.WriteString(`        </ol>
    </div>
</body>
</html>`)
	return sb.String()
}

func writeHead(sb *strings.Builder, th *theme.Theme, title, script string) {
	c := th.Colors()
	scriptTag := ""
	if script != "" {
		scriptTag = fmt.Sprintf("\n    <script src=\"%s\"></script>", html.EscapeString(script))
	}
	sb.WriteString(fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>%s</title>%s
    <style>
        :root {
            --accent: %s;
            --success: %s;
            --warning: %s;
            --danger: %s;
            --text: %s;
            --text-secondary: %s;
        }
        * {
            margin: 0;
            padding: 0;
            box-sizing: border-box;
        }
        body {
            font-family: %s;
            background: #0f1117;
            color: var(--text);
            padding: 40px 20px;
            line-height: 1.6;
        }
        .container {
            max-width: 1200px;
            margin: 0 auto;
        }
        nav a, ol.topics a {
            color: var(--accent);
            text-decoration: none;
        }
        h1 {
            font-size: 32px;
            margin-bottom: 20px;
            font-weight: 600;
        }
        .summary, .lesson-policy, .count {
            color: var(--text-secondary);
            font-size: 13px;
        }
        .lesson {
            margin-bottom: 60px;
        }
        .lesson-title {
            font-size: 20px;
            font-weight: 500;
        }
        .chart-grid {
            display: grid;
            grid-template-columns: repeat(auto-fit, minmax(420px, 1fr));
            gap: 20px;
            margin-top: 15px;
        }
        .chart-container {
            background: %s;
            border: 1px solid %s;
            border-radius: 8px;
            padding: 20px;
        }
        @media print {
            body {
                background: white;
                color: black;
            }
            .chart-container {
                page-break-inside: avoid;
            }
        }
    </style>
</head>
<body>
`, html.EscapeString(title), scriptTag,
		c.Accent, c.Success, c.Warning, c.Danger, c.Text, c.TextSecondary,
		th.FontFamily(), c.Surface, c.Border))
}

// runtimeJS turns the declarative parts of a configuration (tick and
// tooltip formats, plugin ids) into engine callbacks.
const runtimeJS = `            var vizlessons = (function () {
                function formatter(f) {
                    return function (v) {
                        if (f.names) {
                            var i = Math.round(v) - (f.nameOffset || 0);
                            return i >= 0 && i < f.names.length ? f.names[i] : '';
                        }
                        var x = f.scale ? v * f.scale : v;
                        var d = f.decimals >= 0 ? f.decimals : undefined;
                        var s = f.grouping
                            ? x.toLocaleString('en-US', {minimumFractionDigits: d || 0, maximumFractionDigits: d === undefined ? 20 : d})
                            : (d === undefined ? String(x) : x.toFixed(d));
                        return (f.signed && x > 0 ? '+' : '') + (f.prefix || '') + s + (f.suffix || '');
                    };
                }
                var plugins = {
                    barShadow: {
                        id: 'barShadow',
                        beforeDatasetsDraw: function (chart) {
                            var ctx = chart.ctx;
                            ctx.save();
                            ctx.shadowColor = 'rgba(0,0,0,0.5)';
                            ctx.shadowBlur = 10;
                            ctx.shadowOffsetX = 6;
                            ctx.shadowOffsetY = 6;
                        },
                        afterDatasetsDraw: function (chart) { chart.ctx.restore(); }
                    },
                    customLabels: {
                        id: 'customLabels',
                        afterDatasetsDraw: function (chart) {
                            var ctx = chart.ctx;
                            chart.data.datasets.forEach(function (ds, di) {
                                chart.getDatasetMeta(di).data.forEach(function (el, i) {
                                    ctx.save();
                                    ctx.font = 'bold 11px Inter, sans-serif';
                                    ctx.fillStyle = getComputedStyle(document.documentElement).getPropertyValue('--text');
                                    ctx.textAlign = 'center';
                                    ctx.fillText(ds.data[i], el.x, el.y - (di > 0 ? 10 : 8));
                                    ctx.restore();
                                });
                            });
                        }
                    }
                };
                function bind(options) {
                    Object.keys(options.scales || {}).forEach(function (k) {
                        var t = options.scales[k].ticks;
                        if (t && t.format) { t.callback = formatter(t.format); delete t.format; }
                    });
                    var tip = (options.plugins || {}).tooltip;
                    if (tip && tip.format) {
                        var f = formatter(tip.format);
                        tip.callbacks = {label: function (c) { return f(c.parsed.x !== undefined && options.indexAxis === 'y' ? c.parsed.x : c.parsed.y); }};
                        delete tip.format;
                    }
                    if (tip && tip.labels) {
                        var labels = tip.labels;
                        tip.callbacks = {label: function (c) { return labels[c.dataIndex] || ''; }};
                        delete tip.labels;
                    }
                    return options;
                }
                return {
                    draw: function (surface, cfg) {
                        cfg.options = bind(cfg.options || {});
                        cfg.plugins = (cfg.plugins || []).map(function (id) { return plugins[id]; }).filter(Boolean);
                        return new Chart(document.getElementById(surface), cfg);
                    }
                };
            })();
`
