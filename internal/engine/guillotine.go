package engine

import (
	"slices"

	"github.com/IJOL/greedypacker/internal/model"
)

// Config holds the construction parameters of a guillotine engine.
// They are fixed for the life of the instance.
type Config struct {
	// Rotation allows items to be placed with width and height swapped
	// when the rotated orientation fits better or is the only fit.
	Rotation bool
	// Merge recombines adjacent free rectangles after every successful
	// insertion, undoing prior splits to reduce fragmentation.
	Merge bool
	// SplitPolicy selects the guillotine cut axis.
	SplitPolicy SplitPolicy
}

// Guillotine packs items into a single fixed-size bin by tracking the
// empty space as a list of disjoint free rectangles. Placing an item
// consumes one free rectangle and splits the leftover into up to two new
// ones, so the union of placed items and free rectangles always equals
// the bin exactly.
//
// The free list keeps insertion order; FirstFit depends on it and the
// order is part of the engine's contract. Among candidates with an equal
// heuristic metric, the latest in iteration order wins, matching a fold
// that only keeps its accumulator on a strict comparison.
//
// A Guillotine is not safe for concurrent use. Insert is the only
// mutating operation.
type Guillotine struct {
	width  int
	height int
	cfg    Config

	freeRects []FreeRectangle
	items     []*model.Item
}

// New creates an engine for a bin of the given footprint. A zero width
// or height yields an engine with an empty free list, so every Insert
// fails; this is deliberate, not an error.
func New(width, height int, cfg Config) *Guillotine {
	g := &Guillotine{
		width:  width,
		height: height,
		cfg:    cfg,
	}
	if width > 0 && height > 0 {
		g.freeRects = []FreeRectangle{{Width: width, Height: height}}
	}
	return g
}

// Width returns the bin width.
func (g *Guillotine) Width() int { return g.width }

// Height returns the bin height.
func (g *Guillotine) Height() int { return g.height }

// Items returns the placed items in insertion order.
func (g *Guillotine) Items() []*model.Item {
	return slices.Clone(g.items)
}

// FreeRects returns a copy of the current free rectangle list.
func (g *Guillotine) FreeRects() []FreeRectangle {
	return slices.Clone(g.freeRects)
}

// fitted returns the indices of every free rectangle that can hold an
// item of the given dimensions, in free list order. No side effects.
func (g *Guillotine) fitted(width, height int) []int {
	var idxs []int
	for i, r := range g.freeRects {
		if r.Fits(width, height) {
			idxs = append(idxs, i)
		}
	}
	return idxs
}

// Insert tries to place the item using the given heuristic. On success
// the item's corner is set to the chosen free rectangle's origin, the
// item is recorded, and the consumed rectangle is split per the engine's
// split policy. On failure the item and the engine are left untouched.
//
// Items with non-positive dimensions, and items already placed, are
// rejected outright: accepting them would corrupt the free set.
func (g *Guillotine) Insert(item *model.Item, h Heuristic) bool {
	if item == nil || !item.Valid() || item.Placed {
		return false
	}
	if h == FirstFit {
		return g.firstFit(item)
	}
	return g.bestWorstFit(item, h)
}

// firstFit places the item in the first fitting free rectangle. If
// nothing fits upright and rotation is enabled, the rotated orientation
// is tried instead and the item is rotated before placement.
func (g *Guillotine) firstFit(item *model.Item) bool {
	idxs := g.fitted(item.Width, item.Height)
	if len(idxs) == 0 && g.cfg.Rotation {
		idxs = g.fitted(item.Height, item.Width)
		if len(idxs) > 0 {
			item.Rotate()
		}
	}
	if len(idxs) == 0 {
		return false
	}
	g.commit(item, idxs[0])
	return true
}

// metricFor maps a heuristic to the free rectangle field it minimizes or
// maximizes.
func metricFor(h Heuristic) (metric func(FreeRectangle) int, worst bool) {
	switch h {
	case BestWidthFit:
		return func(r FreeRectangle) int { return r.Width }, false
	case BestHeightFit:
		return func(r FreeRectangle) int { return r.Height }, false
	case WorstWidthFit:
		return func(r FreeRectangle) int { return r.Width }, true
	case WorstHeightFit:
		return func(r FreeRectangle) int { return r.Height }, true
	case WorstAreaFit:
		return func(r FreeRectangle) int { return r.Area() }, true
	default: // BestAreaFit
		return func(r FreeRectangle) int { return r.Area() }, false
	}
}

// reduce folds the candidate indices down to the one whose metric is
// smallest (or largest for worst-fit). Returns -1 for no candidates.
func (g *Guillotine) reduce(idxs []int, metric func(FreeRectangle) int, worst bool) int {
	if len(idxs) == 0 {
		return -1
	}
	best := idxs[0]
	for _, i := range idxs[1:] {
		m, bm := metric(g.freeRects[i]), metric(g.freeRects[best])
		if worst {
			if m >= bm {
				best = i
			}
		} else if m <= bm {
			best = i
		}
	}
	return best
}

// bestWorstFit places the item in the free rectangle selected by one of
// the best/worst metric heuristics. When rotation is enabled, the best
// candidate is computed independently for each orientation and the
// smaller of the two under the explicit rectangle ordering wins; ties
// favor the unrotated orientation.
func (g *Guillotine) bestWorstFit(item *model.Item, h Heuristic) bool {
	metric, worst := metricFor(h)

	chosen := g.reduce(g.fitted(item.Width, item.Height), metric, worst)
	if g.cfg.Rotation {
		rotated := g.reduce(g.fitted(item.Height, item.Width), metric, worst)
		preferRotated := false
		if chosen < 0 && rotated >= 0 {
			preferRotated = true
		} else if chosen >= 0 && rotated >= 0 &&
			compareRects(g.freeRects[rotated], g.freeRects[chosen]) < 0 {
			preferRotated = true
		}
		if preferRotated {
			item.Rotate()
			chosen = rotated
		}
	}
	if chosen < 0 {
		return false
	}
	g.commit(item, chosen)
	return true
}

// commit performs the placement: assigns the item's corner, removes the
// consumed free rectangle, appends the split leftovers, and runs the
// merge pass when enabled. The item dimensions are already oriented.
func (g *Guillotine) commit(item *model.Item, idx int) {
	rect := g.freeRects[idx]
	item.Place(rect.X, rect.Y)
	g.items = append(g.items, item)

	g.freeRects = slices.Delete(g.freeRects, idx, idx+1)
	g.freeRects = append(g.freeRects, g.split(rect, item.Width, item.Height)...)

	if g.cfg.Merge {
		g.mergeFreeRects()
	}
}

// splitHorizontal decides the guillotine cut axis for placing an item of
// the given dimensions into rect, per the configured split policy.
func (g *Guillotine) splitHorizontal(rect FreeRectangle, width, height int) bool {
	lw := rect.Width - width
	lh := rect.Height - height

	switch g.cfg.SplitPolicy {
	case SplitShorterLeftoverAxis:
		return lw <= lh
	case SplitLongerLeftoverAxis:
		return lw > lh
	case SplitMinimizeArea:
		return width*lh > lw*height
	case SplitMaximizeArea:
		return width*lh <= lw*height
	case SplitShorterAxis:
		return rect.Width <= rect.Height
	case SplitLongerAxis:
		return rect.Width > rect.Height
	default:
		return true
	}
}

// split divides the leftover of rect after placing an item of the given
// dimensions at its origin. A horizontal cut gives the right piece the
// item's height and the top piece the full width; a vertical cut gives
// the right piece the full height and the top piece the item's width.
// Pieces with a non-positive dimension are discarded, which is how exact
// fits avoid zero-area fragments.
func (g *Guillotine) split(rect FreeRectangle, width, height int) []FreeRectangle {
	right := FreeRectangle{
		Width: rect.Width - width,
		X:     rect.X + width,
		Y:     rect.Y,
	}
	top := FreeRectangle{
		Height: rect.Height - height,
		X:      rect.X,
		Y:      rect.Y + height,
	}

	if g.splitHorizontal(rect, width, height) {
		right.Height = height
		top.Width = rect.Width
	} else {
		right.Height = rect.Height
		top.Width = width
	}

	var pieces []FreeRectangle
	if right.Width > 0 && right.Height > 0 {
		pieces = append(pieces, right)
	}
	if top.Width > 0 && top.Height > 0 {
		pieces = append(pieces, top)
	}
	return pieces
}

// mergeFreeRects recombines adjacent free rectangles that share a full
// edge: same x and width with contiguous y, or same y and height with
// contiguous x. Each rectangle merges with at most its first matching
// neighbor, and the list is walked once rather than to a fixed point;
// this is a best-effort fragmentation reducer, not maximal coalescing.
func (g *Guillotine) mergeFreeRects() {
	for i := 0; i < len(g.freeRects); i++ {
		r := g.freeRects[i]
		for j := range g.freeRects {
			if j == i {
				continue
			}
			s := g.freeRects[j]
			switch {
			case s.X == r.X && s.Width == r.Width && s.Y == r.Y+r.Height:
				g.freeRects[i] = FreeRectangle{
					Width:  r.Width,
					Height: r.Height + s.Height,
					X:      r.X,
					Y:      r.Y,
				}
			case s.Y == r.Y && s.Height == r.Height && s.X == r.X+r.Width:
				g.freeRects[i] = FreeRectangle{
					Width:  r.Width + s.Width,
					Height: r.Height,
					X:      r.X,
					Y:      r.Y,
				}
			default:
				continue
			}
			g.freeRects = slices.Delete(g.freeRects, j, j+1)
			if j < i {
				i--
			}
			break
		}
	}
}

// BinStats is a read-only snapshot of a bin's state.
type BinStats struct {
	Width      int
	Height     int
	Area       int
	Efficiency float64
	Items      []*model.Item
	FreeRects  []FreeRectangle
}

// Stats reports the bin footprint, packing efficiency, placed items and
// remaining free rectangles. A zero-area bin reports efficiency 0.
func (g *Guillotine) Stats() BinStats {
	area := g.width * g.height
	var freeArea int
	for _, r := range g.freeRects {
		freeArea += r.Area()
	}
	var efficiency float64
	if area > 0 {
		efficiency = 1 - float64(freeArea)/float64(area)
	}
	return BinStats{
		Width:      g.width,
		Height:     g.height,
		Area:       area,
		Efficiency: efficiency,
		Items:      slices.Clone(g.items),
		FreeRects:  slices.Clone(g.freeRects),
	}
}
