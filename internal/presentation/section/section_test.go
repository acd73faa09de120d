package section

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mwynn/careerdeck/internal/core/model"
)

func testViewModel() *model.CareerViewModel {
	vm := &model.CareerViewModel{
		Summary: model.Summary{
			CurrentRole: "Staff Platform Engineer",
			Company:     "Acme Cloud",
			Duration:    "2019 - Present",
			Location:    "Berlin, Germany",
			PitchText:   "I turn fragile manual platforms into self-healing GitOps systems.",
		},
		Before: model.TransformationState{
			ClusterCount: 2, AccountCount: 3,
			DeploymentMethod: "manual scripts", EnvironmentCreationTime: "2 weeks",
		},
		After: model.TransformationState{
			ClusterCount: 40, AccountCount: 55,
			DeploymentMethod: "GitOps pipelines", EnvironmentCreationTime: "a few hours",
			PeakClusters: 60, PeakAccounts: 80,
		},
		Achievements: model.TechnicalAchievements{
			B2BCLI: model.CLIAchievement{
				Description: "Customer environment provisioning CLI",
				LinesOfCode: 100000,
				Language:    "Go",
				Framework:   "Cobra",
				KeyFeatures: []string{"cluster bootstrap", "drift detection"},
			},
			SelfHealing: model.SelfHealingSystem{
				Name: "medic", TotalFixers: 12, Configuration: "declarative YAML rules",
			},
		},
	}
	vm.Metrics = []model.MetricCategory{
		{Name: "Scale", Entries: []model.MetricEntry{{Label: "Peak Clusters", Value: "60"}}},
		{Name: "Efficiency", Entries: []model.MetricEntry{{Label: "Environment Creation", Value: "2 weeks to a few hours"}}},
		{Name: "Innovation", Entries: []model.MetricEntry{{Label: "CLI Lines of Code", Value: "100k"}}},
	}
	return vm
}

func testEvents() []model.TimelineEvent {
	return []model.TimelineEvent{
		{Period: "2021 Q1", Event: "Platform rebuild", Achievements: []string{"40 clusters migrated"}},
		{Period: "2023 Q2", Achievements: []string{"GitOps V2 begins"}},
	}
}

func renderAll(lines []string) string {
	return strings.Join(lines, "\n")
}

func TestBuildOrder(t *testing.T) {
	sections := Build(testViewModel(), nil, testEvents(), nil, nil)
	require.Len(t, sections, 5)
	for i, s := range sections {
		assert.Equal(t, model.SectionOrder[i], s.ID())
	}
}

func TestHeroRendersCounterValues(t *testing.T) {
	hero := &Hero{vm: testViewModel()}
	ctx := Context{Width: 80, HeroValues: []int{60, 80, 100000}}

	out := renderAll(hero.Render(ctx))
	assert.Contains(t, out, "Staff Platform Engineer")
	// The finished lines-of-code counter renders in kilo notation.
	assert.Contains(t, out, "100k")
	assert.Contains(t, out, "Lines of Code")
}

func TestHeroDefaultsToZeroBeforeAnimation(t *testing.T) {
	hero := &Hero{vm: testViewModel()}
	out := renderAll(hero.Render(Context{Width: 80}))
	assert.Contains(t, out, "Peak Clusters")
	assert.NotContains(t, out, "100k")
}

func TestMetricsExpandCollapse(t *testing.T) {
	metrics := &Metrics{vm: testViewModel()}
	ctx := Context{Width: 80}

	// Collapsed: category summary lines only.
	out := renderAll(metrics.Render(ctx))
	assert.Contains(t, out, "Scale")
	assert.NotContains(t, out, "Peak Clusters")

	ctx.State.SelectedMetric = model.Select(0)
	out = renderAll(metrics.Render(ctx))
	assert.Contains(t, out, "Peak Clusters")
	// Other categories stay collapsed.
	assert.NotContains(t, out, "Environment Creation")
}

func TestArchitectureToggleTransfersSelection(t *testing.T) {
	arch := &Architecture{vm: testViewModel()}
	state := model.InteractionState{}

	// Expand the CLI card.
	arch.Toggle(&state, cardB2BCLI)
	assert.True(t, state.SelectedCard.Is(cardB2BCLI))

	// Selecting the other card transfers expansion; never both expanded.
	arch.Toggle(&state, cardSelfHealing)
	assert.True(t, state.SelectedCard.Is(cardSelfHealing))
	assert.False(t, state.SelectedCard.Is(cardB2BCLI))

	// Clicking the already-expanded card collapses it.
	arch.Toggle(&state, cardSelfHealing)
	_, ok := state.SelectedCard.Index()
	assert.False(t, ok)
}

func TestArchitectureExpandedDetail(t *testing.T) {
	arch := &Architecture{vm: testViewModel(), caseStudy: []string{"Case study body"}}
	ctx := Context{Width: 80}

	out := renderAll(arch.Render(ctx))
	assert.NotContains(t, out, "drift detection")

	ctx.State.SelectedCard = model.Select(cardB2BCLI)
	out = renderAll(arch.Render(ctx))
	assert.Contains(t, out, "drift detection")
	assert.Contains(t, out, "Case study body")

	ctx.State.SelectedCard = model.Select(cardSelfHealing)
	out = renderAll(arch.Render(ctx))
	assert.Contains(t, out, "declarative YAML rules")
	assert.NotContains(t, out, "Case study body")
}

func TestTimelineExpandedEvent(t *testing.T) {
	timeline := &Timeline{events: testEvents()}
	ctx := Context{Width: 80}

	out := renderAll(timeline.Render(ctx))
	assert.Contains(t, out, "2021 Q1")
	assert.NotContains(t, out, "40 clusters migrated")

	ctx.State.ExpandedEvent = model.Select(0)
	out = renderAll(timeline.Render(ctx))
	assert.Contains(t, out, "40 clusters migrated")
}

func TestSectionsRenderErrorState(t *testing.T) {
	loadErr := errors.New("data shape: field \"summary\" is required")
	sections := Build(nil, loadErr, nil, loadErr, nil)

	for _, s := range sections {
		out := renderAll(s.Render(Context{Width: 80}))
		assert.Contains(t, out, "section unavailable", "section %s", s.ID())
	}
}

func TestCursorMarkerOnlyInActiveSection(t *testing.T) {
	metrics := &Metrics{vm: testViewModel()}
	ctx := Context{Width: 80}
	ctx.State.ActiveSection = model.SectionMetrics
	ctx.State.Cursor = 1

	out := metrics.Render(ctx)
	marked := 0
	for _, line := range out {
		if strings.HasPrefix(line, "▸") {
			marked++
		}
	}
	assert.Equal(t, 1, marked)

	ctx.State.ActiveSection = model.SectionHero
	for _, line := range metrics.Render(ctx) {
		assert.False(t, strings.HasPrefix(line, "▸"))
	}
}

func TestWrapText(t *testing.T) {
	lines := wrapText("one two three four five", 9)
	assert.Equal(t, []string{"one two", "three", "four five"}, lines)
	assert.Nil(t, wrapText("", 20))
}
