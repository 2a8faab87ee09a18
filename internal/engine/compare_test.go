package engine

import (
	"testing"

	"github.com/IJOL/greedypacker/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildHeuristicScenarios(t *testing.T) {
	scenarios := BuildHeuristicScenarios(Config{Rotation: true}, BinFirstFit)

	require.Len(t, scenarios, len(Heuristics))
	names := map[string]bool{}
	for i, sc := range scenarios {
		names[sc.Name] = true
		assert.Equal(t, Heuristics[i], sc.Heuristic)
		assert.True(t, sc.Config.Rotation)
	}
	assert.True(t, names["first_fit"])
	assert.True(t, names["best_area_fit"])
	assert.True(t, names["worst_height_fit"])
}

func TestBuildSplitScenarios(t *testing.T) {
	scenarios := BuildSplitScenarios(Config{}, BestAreaFit, BinFirstFit)

	require.Len(t, scenarios, len(SplitPolicies))
	for i, sc := range scenarios {
		assert.Equal(t, "split_"+SplitPolicies[i].String(), sc.Name)
		assert.Equal(t, SplitPolicies[i], sc.Config.SplitPolicy)
		assert.Equal(t, BestAreaFit, sc.Heuristic)
	}
}

func TestCompareScenarios_RunsEveryScenario(t *testing.T) {
	items := []*model.Item{
		model.NewItem("a", 60, 40, 2),
		model.NewItem("b", 30, 30, 3),
		model.NewItem("c", 80, 20, 1),
	}
	scenarios := BuildHeuristicScenarios(Config{}, BinFirstFit)

	results := CompareScenarios(100, 100, scenarios, items)

	require.Len(t, results, len(scenarios))
	for _, r := range results {
		assert.Equal(t, len(r.Result.Bins), r.BinsUsed)
		assert.Equal(t, len(r.Result.Unplaced), r.UnplacedCount)
		assert.GreaterOrEqual(t, r.WastePercent, 0.0)
		assert.LessOrEqual(t, r.WastePercent, 100.0)
	}
}

func TestCompareScenarios_DoesNotMutateInput(t *testing.T) {
	items := []*model.Item{
		model.NewItem("a", 60, 40, 1),
		model.NewItem("b", 30, 30, 1),
	}

	CompareScenarios(100, 100, BuildHeuristicScenarios(Config{Rotation: true}, BinFirstFit), items)

	for _, it := range items {
		assert.False(t, it.Placed, "scenario run mutated input item %q", it.Label)
		assert.False(t, it.Rotated)
		assert.Equal(t, 0, it.X)
		assert.Equal(t, 0, it.Y)
	}
}

func TestCompareScenarios_OversizedItems(t *testing.T) {
	items := []*model.Item{model.NewItem("huge", 500, 500, 1)}

	results := CompareScenarios(100, 100, BuildHeuristicScenarios(Config{}, BinFirstFit), items)

	for _, r := range results {
		assert.Equal(t, 0, r.BinsUsed)
		assert.Equal(t, 1, r.UnplacedCount)
		assert.Equal(t, 100.0, r.WastePercent)
	}
}
