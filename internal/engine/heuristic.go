package engine

import "fmt"

// Heuristic selects which fitting free rectangle receives an item.
type Heuristic int

const (
	// FirstFit picks the first fitting rectangle in the free list's
	// insertion order. The order is deterministic and part of the
	// engine's contract.
	FirstFit Heuristic = iota
	// BestWidthFit picks the fitting rectangle with the smallest width.
	BestWidthFit
	// BestHeightFit picks the fitting rectangle with the smallest height.
	BestHeightFit
	// BestAreaFit picks the fitting rectangle with the smallest area.
	BestAreaFit
	// WorstWidthFit picks the fitting rectangle with the largest width.
	WorstWidthFit
	// WorstHeightFit picks the fitting rectangle with the largest height.
	WorstHeightFit
	// WorstAreaFit picks the fitting rectangle with the largest area.
	WorstAreaFit
)

// Heuristics lists all placement heuristics, for scenario comparison
// and CLI help text.
var Heuristics = []Heuristic{
	FirstFit,
	BestWidthFit,
	BestHeightFit,
	BestAreaFit,
	WorstWidthFit,
	WorstHeightFit,
	WorstAreaFit,
}

func (h Heuristic) String() string {
	switch h {
	case FirstFit:
		return "first_fit"
	case BestWidthFit:
		return "best_width_fit"
	case BestHeightFit:
		return "best_height_fit"
	case BestAreaFit:
		return "best_area_fit"
	case WorstWidthFit:
		return "worst_width_fit"
	case WorstHeightFit:
		return "worst_height_fit"
	case WorstAreaFit:
		return "worst_area_fit"
	default:
		return fmt.Sprintf("Heuristic(%d)", int(h))
	}
}

// ParseHeuristic converts a heuristic name as used in config files and
// CLI flags into its enum value.
func ParseHeuristic(s string) (Heuristic, error) {
	for _, h := range Heuristics {
		if h.String() == s {
			return h, nil
		}
	}
	return 0, fmt.Errorf("unknown placement heuristic %q", s)
}

// SplitPolicy decides the axis of the guillotine cut that divides the
// leftover L-shaped region after a placement into two rectangles.
type SplitPolicy int

const (
	// SplitDefault always splits horizontally.
	SplitDefault SplitPolicy = iota
	// SplitShorterLeftoverAxis splits horizontally iff leftover width
	// <= leftover height.
	SplitShorterLeftoverAxis
	// SplitLongerLeftoverAxis splits horizontally iff leftover width
	// > leftover height.
	SplitLongerLeftoverAxis
	// SplitMinimizeArea keeps the single bigger leftover rectangle.
	SplitMinimizeArea
	// SplitMaximizeArea keeps the leftover rectangles more even-sized.
	SplitMaximizeArea
	// SplitShorterAxis splits horizontally iff the free rectangle is
	// at most as wide as it is tall.
	SplitShorterAxis
	// SplitLongerAxis splits horizontally iff the free rectangle is
	// wider than it is tall.
	SplitLongerAxis
)

// SplitPolicies lists all split policies.
var SplitPolicies = []SplitPolicy{
	SplitDefault,
	SplitShorterLeftoverAxis,
	SplitLongerLeftoverAxis,
	SplitMinimizeArea,
	SplitMaximizeArea,
	SplitShorterAxis,
	SplitLongerAxis,
}

func (p SplitPolicy) String() string {
	switch p {
	case SplitDefault:
		return "default"
	case SplitShorterLeftoverAxis:
		return "shorter_leftover_axis"
	case SplitLongerLeftoverAxis:
		return "longer_leftover_axis"
	case SplitMinimizeArea:
		return "minimize_area"
	case SplitMaximizeArea:
		return "maximize_area"
	case SplitShorterAxis:
		return "shorter_axis"
	case SplitLongerAxis:
		return "longer_axis"
	default:
		return fmt.Sprintf("SplitPolicy(%d)", int(p))
	}
}

// ParseSplitPolicy converts a split policy name into its enum value.
func ParseSplitPolicy(s string) (SplitPolicy, error) {
	for _, p := range SplitPolicies {
		if p.String() == s {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown split policy %q", s)
}
