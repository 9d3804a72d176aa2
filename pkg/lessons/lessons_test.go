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
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teradata-labs/vizlessons/pkg/page"
	"github.com/teradata-labs/vizlessons/pkg/render"
	"github.com/teradata-labs/vizlessons/pkg/sampledata"
	"github.com/teradata-labs/vizlessons/pkg/story"
	"github.com/teradata-labs/vizlessons/pkg/theme"
	"github.com/teradata-labs/vizlessons/pkg/visualization"
)

type fixture struct {
	doc *page.Memory
	rec *render.Recorder
	env Env
}

func newFixture(controllers ...Controller) *fixture {
	doc := page.NewMemory(Manifest(controllers))
	rec := render.NewRecorder()
	return &fixture{
		doc: doc,
		rec: rec,
		env: Env{Doc: doc, Charts: visualization.NewFactory(nil, rec, doc), Data: sampledata.Seeded(42)},
	}
}

func (f *fixture) el(t *testing.T, id string) *page.MemElement {
	t.Helper()
	el, ok := f.doc.El(id)
	require.True(t, ok, id)
	return el
}

func (f *fixture) ctl(t *testing.T, id string) *page.MemControl {
	t.Helper()
	c, ok := f.doc.Ctl(id)
	require.True(t, ok, id)
	return c
}

func (f *fixture) count(op render.Op, surface string) int {
	n := 0
	for _, e := range f.rec.Events() {
		if e.Op == op && e.Surface == surface {
			n++
		}
	}
	return n
}

func TestAll_UniqueIDsAndTopicOrder(t *testing.T) {
	all := All()
	seen := map[string]bool{}
	prev := 0
	for _, c := range all {
		assert.False(t, seen[c.ID()], "duplicate %s", c.ID())
		seen[c.ID()] = true
		assert.GreaterOrEqual(t, c.Topic(), prev)
		prev = c.Topic()
		assert.NotEmpty(t, c.Title())
		assert.Contains(t, []Policy{Mutate, Rebuild, Static}, c.Policy())
	}
	c, ok := Find(all, "junk-remover")
	require.True(t, ok)
	assert.Equal(t, Mutate, c.Policy())
	_, ok = Find(all, "nope")
	assert.False(t, ok)
}

func TestBootstrap_FullPage(t *testing.T) {
	all := All()
	f := newFixture(all...)
	report := Bootstrap(f.env, all)

	assert.Len(t, report.Started, len(all))
	assert.Empty(t, report.Skipped)
	assert.Empty(t, report.Failed)
	assert.Empty(t, f.rec.Leaks())
	assert.NotZero(t, f.rec.LiveCount())
}

func TestBootstrap_EmptyPageSkipsEverything(t *testing.T) {
	all := All()
	doc := page.NewMemory()
	rec := render.NewRecorder()
	env := Env{Doc: doc, Charts: visualization.NewFactory(nil, rec, doc)}

	report := Bootstrap(env, all)
	assert.Len(t, report.Skipped, len(all))
	assert.Empty(t, report.Started)
	assert.Empty(t, report.Failed)
	assert.Zero(t, rec.LiveCount())
}

type panicky struct{ base }

func (p panicky) Manifest() page.Manifest { return page.Manifest{} }
func (p panicky) Init(Env) error          { panic("boom") }

type failing struct{ base }

func (f failing) Manifest() page.Manifest { return page.Manifest{} }
func (f failing) Init(Env) error          { return errors.New("broken") }

func TestBootstrap_IsolatesFailures(t *testing.T) {
	junk := NewJunkRemover()
	controllers := []Controller{
		panicky{base{id: "panicky"}},
		failing{base{id: "failing"}},
		junk,
		NewPieValidity(),
	}
	f := newFixture(junk)
	report := Bootstrap(f.env, controllers)

	assert.Equal(t, []string{"junk-remover"}, report.Started)
	assert.Equal(t, []string{"pie-validity"}, report.Skipped)
	require.Len(t, report.Failed, 2)
	assert.ErrorContains(t, report.Failed["panicky"], "boom")
	assert.ErrorContains(t, report.Failed["failing"], "broken")
	assert.NotNil(t, junk.Chart())
}

func TestJunkRemover_MutatesInPlace(t *testing.T) {
	junk := NewJunkRemover()
	f := newFixture(junk)
	require.NoError(t, junk.Init(f.env))

	ink := f.el(t, junkInk)
	assert.Equal(t, "30%", ink.Text())
	assert.Equal(t, "var(--danger)", ink.Style("color"))
	assert.NotEmpty(t, f.el(t, junkArea).Style("background"))
	chart := junk.Chart()
	assert.True(t, chart.Config().HasPlugin(visualization.ShadowPluginID))

	for _, k := range JunkKeys {
		f.ctl(t, "junk-"+k).SetChecked(false)
	}

	assert.Equal(t, "90%", ink.Text())
	assert.Equal(t, "var(--success)", ink.Style("color"))
	assert.Empty(t, f.el(t, junkArea).Style("background"))
	assert.False(t, chart.Config().HasPlugin(visualization.ShadowPluginID))
	assert.Equal(t, 1, f.count(render.OpCreate, junkSurface), "mutate policy never rebuilds")
	assert.Equal(t, len(JunkKeys), f.count(render.OpUpdate, junkSurface))

	f.ctl(t, "junk-"+JunkGridlines).Toggle()
	f.ctl(t, "junk-"+JunkBorders).Toggle()
	f.ctl(t, "junk-"+JunkLegend).Toggle()
	assert.Equal(t, "64%", ink.Text())
	assert.Equal(t, "var(--warning)", ink.Style("color"))
}

func TestAxisTruncation_Slider(t *testing.T) {
	demo := NewAxisTruncation()
	f := newFixture(demo)
	require.NoError(t, demo.Init(f.env))

	f.ctl(t, truncSlider).Set("55000")
	v, _ := demo.Chart().Config().Option("scales.y.min")
	assert.Equal(t, 55000.0, v)
	assert.Equal(t, "$55,000", f.el(t, truncValue).Text())
	badge := f.el(t, truncBadge)
	assert.Equal(t, "⚠ MISLEADING", badge.Text())
	assert.True(t, badge.HasClass(page.ClassDanger))
	assert.Contains(t, f.el(t, truncExplanation).Text(), "disappeared")

	f.ctl(t, truncSlider).Set("0")
	assert.Equal(t, "✓ ACCURATE", badge.Text())
	assert.True(t, badge.HasClass(page.ClassSafe))
	assert.Equal(t, 1, f.count(render.OpCreate, truncSurface))
}

func TestPieValidity_Presets(t *testing.T) {
	demo := NewPieValidity()
	f := newFixture(demo)
	require.NoError(t, demo.Init(f.env))

	badge := f.el(t, pieBadge)
	assert.True(t, badge.HasClass(page.ClassSafe))

	overlap := f.ctl(t, "pieAddOverlap")
	overlap.Click()
	cfg := demo.Chart().Config()
	assert.Len(t, cfg.Labels, 5)
	assert.Equal(t, []float64{42, 28, 18, 12, 25}, cfg.Values(0))
	assert.Equal(t, "⚠ CRIME — Slices sum to 125%!", badge.Text())
	assert.True(t, overlap.Active())

	reset := f.ctl(t, "pieReset")
	reset.Click()
	assert.Len(t, cfg.Labels, 4)
	assert.True(t, badge.HasClass(page.ClassSafe))
	assert.True(t, reset.Active())
	assert.False(t, overlap.Active())
}

func TestWalkthrough_NoLeaks(t *testing.T) {
	walk := NewWalkthrough()
	f := newFixture(walk)
	require.NoError(t, walk.Init(f.env))

	first := walk.Chart().Config()
	assert.Len(t, first.Datasets, 4, "grouped quarters")

	for i := len(WalkthroughSteps) - 1; i >= 0; i-- {
		f.ctl(t, "swd-step-"+string(rune('0'+i))).Click()
	}
	f.ctl(t, "swd-step-6").Click()

	assert.Empty(t, f.rec.Leaks())
	assert.Equal(t, 1, f.rec.LiveCount())
	assert.Equal(t, WalkthroughSteps[6].Title, f.el(t, walkTitle).Text())

	cfg := walk.Chart().Config()
	axis, _ := cfg.Option("indexAxis")
	assert.Equal(t, "y", axis)
	assert.Equal(t, focusProduct, cfg.Labels[0], "sorted by mean")
	assert.Equal(t, f.count(render.OpCreate, walkSurface)-1, f.count(render.OpDestroy, walkSurface))
}

func TestBuildWalkthrough_OutOfRange(t *testing.T) {
	_, err := BuildWalkthrough(theme.Default(), 7)
	assert.Error(t, err)
}

func TestAudienceSwitch_DestroysAll(t *testing.T) {
	aud := NewAudienceSwitch()
	f := newFixture(aud)
	require.NoError(t, aud.Init(f.env))

	sel := f.ctl(t, audienceSelect)
	assert.Contains(t, aud.Live(), AudienceCEO)
	assert.True(t, f.el(t, "audience-ceo").Visible())

	sel.Set(AudienceDataScientist)
	live := aud.Live()
	require.Len(t, live, 1)
	assert.Equal(t, visualization.KindScatter, live[AudienceDataScientist].Config().Kind)
	assert.False(t, f.el(t, "audience-ceo").Visible())
	_, ok := f.rec.Live(audienceSurfaces[AudienceCEO])
	assert.False(t, ok)

	sel.Set(AudienceMarketing)
	sel.Set(AudienceMarketing)
	require.Len(t, aud.Live(), 1)
	assert.Len(t, aud.Live()[AudienceMarketing].Config().Datasets, 2)
	assert.Empty(t, f.rec.Leaks())
	assert.Equal(t, 1, f.rec.LiveCount())

	sel.Set("unknown")
	assert.Empty(t, aud.Live())
}

func TestStoryArc_StepCharts(t *testing.T) {
	arc := NewStoryArc()
	f := newFixture(arc)
	require.NoError(t, arc.Init(f.env))
	next := f.ctl(t, storyContainer+"-next")

	assert.Empty(t, arc.Live())
	next.Click()
	assert.Contains(t, arc.Live(), qbioSurface)
	next.Click()
	assert.Empty(t, arc.Live())
	next.Click()
	live := arc.Live()
	require.Contains(t, live, resolutionChart)
	assert.Len(t, live[resolutionChart].Config().Datasets, 2)

	f.ctl(t, storyContainer+"-prev").Click()
	assert.Empty(t, arc.Live())
	assert.Empty(t, f.rec.Leaks())
}

func TestStoryArc_DeferredBuildsOnlyLastStep(t *testing.T) {
	arc := NewStoryArc()
	f := newFixture(arc)
	f.env.Defer = story.NewDeferred(20 * time.Millisecond)
	require.NoError(t, arc.Init(f.env))

	next := f.ctl(t, storyContainer+"-next")
	next.Click() // challenge
	next.Click()
	next.Click() // resolution

	assert.Eventually(t, func() bool {
		_, ok := arc.Live()[resolutionChart]
		return ok
	}, time.Second, 5*time.Millisecond)
	assert.Zero(t, f.count(render.OpCreate, qbioSurface), "superseded step never drew")
	assert.Empty(t, f.rec.Leaks())
}

func TestComplexitySlider_AddsDimensions(t *testing.T) {
	cs := NewComplexitySlider()
	f := newFixture(cs)
	require.NoError(t, cs.Init(f.env))

	assert.Equal(t, "★★★★★", f.el(t, complexityScore).Text())
	assert.Len(t, cs.Chart().Config().Datasets, 1)

	slider := f.ctl(t, complexitySlider)
	slider.Set("3")
	assert.Len(t, cs.Chart().Config().Datasets, 2)
	assert.False(t, cs.Chart().Config().HasPlugin(visualization.ValueLabelsPluginID))

	slider.Set("5")
	cfg := cs.Chart().Config()
	assert.Len(t, cfg.Datasets, 3)
	assert.True(t, cfg.HasPlugin(visualization.ValueLabelsPluginID))
	assert.Equal(t, "★☆☆☆☆", f.el(t, complexityScore).Text())

	slider.Set("99")
	assert.Equal(t, ComplexitySteps[4].Label, f.el(t, complexityLabel).Text())
	assert.Empty(t, f.rec.Leaks())
}

func TestTabs_SwitchPanes(t *testing.T) {
	tabs := NewTabs("compare-ba", 3, "before", "after")
	f := newFixture(tabs)
	require.NoError(t, tabs.Init(f.env))

	before, after := f.el(t, "compare-ba-before"), f.el(t, "compare-ba-after")
	assert.True(t, before.Active())
	assert.False(t, after.Active())

	f.ctl(t, "compare-ba-btn-after").Click()
	assert.False(t, before.Active())
	assert.True(t, after.Active())
	assert.True(t, f.ctl(t, "compare-ba-btn-after").Active())
	assert.False(t, f.ctl(t, "compare-ba-btn-before").Active())
}

func TestTitleTypesAndLiveTitle(t *testing.T) {
	types, live := NewTitleTypes(), NewLiveTitle()
	f := newFixture(types, live)
	require.NoError(t, types.Init(f.env))
	require.NoError(t, live.Init(f.env))

	f.ctl(t, "title-type-story").Click()
	text, _ := types.Chart().Config().Option("plugins.title.text")
	assert.Equal(t, TitleTypes[2].Title, text)
	assert.Equal(t, "warning-badge safe", f.el(t, titleTypeLabel).Class())

	input := f.ctl(t, liveTitleInput)
	input.Set("")
	text, _ = live.Chart().Config().Option("plugins.title.text")
	assert.Equal(t, " ", text)

	f.ctl(t, liveTitleGroup+"-b").Click()
	assert.Equal(t, TitleSuggestions[1], input.Value())
	text, _ = live.Chart().Config().Option("plugins.title.text")
	assert.Equal(t, TitleSuggestions[1], text)
}

func TestStaticClustersDrawAvailableSurfaces(t *testing.T) {
	spot := NewSpotTheJunk()
	doc := page.NewMemory().AddSurface(spotGoodBar)
	rec := render.NewRecorder()
	env := Env{Doc: doc, Charts: visualization.NewFactory(nil, rec, doc)}

	require.NoError(t, spot.Init(env))
	assert.Equal(t, []string{spotGoodBar}, rec.Surfaces())
	assert.ErrorIs(t, NewColorCharts().Init(env), ErrAnchorMissing)
}
