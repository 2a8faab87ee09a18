package model

// BinLayout describes one packed bin: its footprint and the items placed
// in it, in insertion order.
type BinLayout struct {
	Index  int     `json:"index"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	Items  []*Item `json:"items"`
}

// UsedArea returns the total area covered by placed items.
func (b BinLayout) UsedArea() int {
	var total int
	for _, it := range b.Items {
		total += it.Area()
	}
	return total
}

// TotalArea returns the bin area.
func (b BinLayout) TotalArea() int {
	return b.Width * b.Height
}

// Efficiency returns the fraction of the bin covered by items, in [0, 1].
// A zero-area bin has efficiency 0.
func (b BinLayout) Efficiency() float64 {
	ta := b.TotalArea()
	if ta == 0 {
		return 0
	}
	return float64(b.UsedArea()) / float64(ta)
}

// PackResult holds the full solution produced by a packing run.
type PackResult struct {
	Bins     []BinLayout `json:"bins"`
	Unplaced []*Item     `json:"unplaced"`
}

// TotalEfficiency returns overall material usage across all bins, in [0, 1].
func (r PackResult) TotalEfficiency() float64 {
	var used, total int
	for _, b := range r.Bins {
		used += b.UsedArea()
		total += b.TotalArea()
	}
	if total == 0 {
		return 0
	}
	return float64(used) / float64(total)
}

// PlacedCount returns the number of items placed across all bins.
func (r PackResult) PlacedCount() int {
	var n int
	for _, b := range r.Bins {
		n += len(b.Items)
	}
	return n
}
