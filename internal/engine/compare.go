package engine

import "github.com/IJOL/greedypacker/internal/model"

// Scenario defines a named combination of packing parameters to compare.
type Scenario struct {
	Name      string
	Config    Config
	Heuristic Heuristic
	Selection BinSelection
}

// ScenarioResult holds the packing outcome and summary statistics for a
// single scenario.
type ScenarioResult struct {
	Scenario      Scenario
	Result        model.PackResult
	BinsUsed      int
	WastePercent  float64
	UnplacedCount int
}

// CompareScenarios packs the same item set under each scenario and
// returns the results in scenario order, enabling side-by-side
// comparison of heuristics and split policies. Each run packs fresh item
// copies so the scenarios cannot interfere through in-place mutation.
func CompareScenarios(binWidth, binHeight int, scenarios []Scenario, items []*model.Item) []ScenarioResult {
	results := make([]ScenarioResult, 0, len(scenarios))

	for _, sc := range scenarios {
		copies := make([]*model.Item, len(items))
		for i, it := range items {
			cp := *it
			copies[i] = &cp
		}

		mgr := NewManager(binWidth, binHeight, sc.Config, sc.Heuristic, sc.Selection)
		result := mgr.Pack(copies)

		results = append(results, ScenarioResult{
			Scenario:      sc,
			Result:        result,
			BinsUsed:      len(result.Bins),
			WastePercent:  (1 - result.TotalEfficiency()) * 100,
			UnplacedCount: len(result.Unplaced),
		})
	}
	return results
}

// BuildHeuristicScenarios generates one scenario per placement heuristic
// with the given engine configuration, for what-if comparison.
func BuildHeuristicScenarios(cfg Config, sel BinSelection) []Scenario {
	scenarios := make([]Scenario, 0, len(Heuristics))
	for _, h := range Heuristics {
		scenarios = append(scenarios, Scenario{
			Name:      h.String(),
			Config:    cfg,
			Heuristic: h,
			Selection: sel,
		})
	}
	return scenarios
}

// BuildSplitScenarios generates one scenario per split policy under a
// fixed heuristic.
func BuildSplitScenarios(cfg Config, h Heuristic, sel BinSelection) []Scenario {
	scenarios := make([]Scenario, 0, len(SplitPolicies))
	for _, p := range SplitPolicies {
		c := cfg
		c.SplitPolicy = p
		scenarios = append(scenarios, Scenario{
			Name:      "split_" + p.String(),
			Config:    c,
			Heuristic: h,
			Selection: sel,
		})
	}
	return scenarios
}
