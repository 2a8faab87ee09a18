package engine

import (
	"sort"

	"github.com/google/uuid"
)

// Offcut represents a usable rectangular remnant of a packed bin, large
// enough to be worth keeping for a later run.
type Offcut struct {
	ID       string `json:"id"`
	BinIndex int    `json:"bin_index"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// Area returns the offcut area.
func (o Offcut) Area() int {
	return o.Width * o.Height
}

// MinOffcutDimension is the minimum width or height for a free rectangle
// to count as a usable offcut rather than waste.
const MinOffcutDimension = 50

// MinOffcutArea is the minimum area for a usable offcut.
const MinOffcutArea = 10000

// DetectOffcuts filters a bin's remaining free rectangles down to the
// usable offcuts, largest first. Unlike a shelf packer, the guillotine
// engine already tracks its remnants exactly, so no geometric recovery
// is needed.
func DetectOffcuts(stats BinStats, binIndex int) []Offcut {
	var offcuts []Offcut
	for _, r := range stats.FreeRects {
		if r.Width < MinOffcutDimension || r.Height < MinOffcutDimension {
			continue
		}
		if r.Area() < MinOffcutArea {
			continue
		}
		offcuts = append(offcuts, Offcut{
			ID:       uuid.New().String()[:8],
			BinIndex: binIndex,
			X:        r.X,
			Y:        r.Y,
			Width:    r.Width,
			Height:   r.Height,
		})
	}
	sort.SliceStable(offcuts, func(i, j int) bool {
		return offcuts[i].Area() > offcuts[j].Area()
	})
	return offcuts
}

// DetectAllOffcuts finds offcuts across every bin of a packing run.
func DetectAllOffcuts(stats []BinStats) []Offcut {
	var all []Offcut
	for i, s := range stats {
		all = append(all, DetectOffcuts(s, i)...)
	}
	return all
}
