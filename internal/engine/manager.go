package engine

import (
	"fmt"
	"sort"

	"github.com/IJOL/greedypacker/internal/model"
)

// BinSelection decides which existing bin a manager offers an item to.
type BinSelection int

const (
	// BinFirstFit offers the item to bins in opening order and keeps
	// the first that accepts it.
	BinFirstFit BinSelection = iota
	// BinBestFit offers the item to the bin whose largest fitting free
	// rectangle is the narrowest, keeping loose space concentrated in
	// as few bins as possible.
	BinBestFit
)

func (s BinSelection) String() string {
	switch s {
	case BinBestFit:
		return "best_fit"
	default:
		return "first_fit"
	}
}

// ParseBinSelection converts a bin selection name into its enum value.
func ParseBinSelection(str string) (BinSelection, error) {
	switch str {
	case "first_fit":
		return BinFirstFit, nil
	case "best_fit":
		return BinBestFit, nil
	default:
		return 0, fmt.Errorf("unknown bin selection %q", str)
	}
}

// Manager orchestrates a sequence of guillotine engines sharing one bin
// footprint. It feeds items to existing bins per its selection policy
// and opens a new bin whenever every existing bin rejects an item.
// The engines own the free-space bookkeeping; the manager never touches
// it beyond the Insert contract.
type Manager struct {
	binWidth  int
	binHeight int
	cfg       Config
	heuristic Heuristic
	selection BinSelection

	bins []*Guillotine
}

// NewManager creates a manager that opens bins of the given footprint.
func NewManager(binWidth, binHeight int, cfg Config, h Heuristic, sel BinSelection) *Manager {
	return &Manager{
		binWidth:  binWidth,
		binHeight: binHeight,
		cfg:       cfg,
		heuristic: h,
		selection: sel,
	}
}

// Bins returns the engines opened so far, in opening order.
func (m *Manager) Bins() []*Guillotine {
	return m.bins
}

// ExpandQuantities flattens items with Quantity > 1 into individual
// placement candidates, each an independent copy.
func ExpandQuantities(items []*model.Item) []*model.Item {
	var expanded []*model.Item
	for _, it := range items {
		qty := it.Quantity
		if qty <= 1 {
			expanded = append(expanded, it)
			continue
		}
		for i := 0; i < qty; i++ {
			expanded = append(expanded, it.Copy())
		}
	}
	return expanded
}

// Pack expands quantities, sorts items by area descending (largest first
// packs better under greedy heuristics), and inserts each one. Items
// with non-positive dimensions, or too large for even an empty bin, end
// up in the result's Unplaced list.
func (m *Manager) Pack(items []*model.Item) model.PackResult {
	expanded := ExpandQuantities(items)
	sort.SliceStable(expanded, func(i, j int) bool {
		return expanded[i].Area() > expanded[j].Area()
	})

	var unplaced []*model.Item
	for _, it := range expanded {
		if !m.insert(it) {
			unplaced = append(unplaced, it)
		}
	}
	return model.PackResult{
		Bins:     m.Layouts(),
		Unplaced: unplaced,
	}
}

// Insert places a single item, opening a new bin if necessary. It
// returns false only when the item cannot fit an empty bin at all.
func (m *Manager) Insert(item *model.Item) bool {
	return m.insert(item)
}

func (m *Manager) insert(item *model.Item) bool {
	switch m.selection {
	case BinBestFit:
		if bin := m.pickBestBin(item); bin != nil {
			if bin.Insert(item, m.heuristic) {
				return true
			}
		}
	default:
		for _, bin := range m.bins {
			if bin.Insert(item, m.heuristic) {
				return true
			}
		}
	}

	bin := New(m.binWidth, m.binHeight, m.cfg)
	if !bin.Insert(item, m.heuristic) {
		return false
	}
	m.bins = append(m.bins, bin)
	return true
}

// pickBestBin returns the bin whose largest fitting free rectangle is
// the narrowest, or nil when no existing bin can fit the item in either
// orientation the engine is allowed to use.
func (m *Manager) pickBestBin(item *model.Item) *Guillotine {
	var best *Guillotine
	var bestRect FreeRectangle

	for _, bin := range m.bins {
		candidate, ok := largestFit(bin, item.Width, item.Height)
		if !ok && m.cfg.Rotation {
			candidate, ok = largestFit(bin, item.Height, item.Width)
		}
		if !ok {
			continue
		}
		if best == nil || candidate.Width < bestRect.Width {
			best = bin
			bestRect = candidate
		}
	}
	return best
}

// largestFit returns the largest-area free rectangle of the bin that can
// hold the given dimensions.
func largestFit(bin *Guillotine, width, height int) (FreeRectangle, bool) {
	var best FreeRectangle
	found := false
	for _, r := range bin.FreeRects() {
		if !r.Fits(width, height) {
			continue
		}
		if !found || r.Area() > best.Area() {
			best = r
			found = true
		}
	}
	return best, found
}

// Layouts converts the opened bins into reporting layouts.
func (m *Manager) Layouts() []model.BinLayout {
	layouts := make([]model.BinLayout, 0, len(m.bins))
	for i, bin := range m.bins {
		layouts = append(layouts, model.BinLayout{
			Index:  i,
			Width:  bin.Width(),
			Height: bin.Height(),
			Items:  bin.Items(),
		})
	}
	return layouts
}

// Stats reports per-bin statistics in opening order.
func (m *Manager) Stats() []BinStats {
	stats := make([]BinStats, 0, len(m.bins))
	for _, bin := range m.bins {
		stats = append(stats, bin.Stats())
	}
	return stats
}
