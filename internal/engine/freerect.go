// Package engine implements guillotine-style 2D bin packing: a free
// rectangle tracking structure with split-axis policies, an optional
// rectangle merge optimization, and a family of best/worst/first-fit
// placement heuristics. A bin manager orchestrates multiple engine
// instances, and a genetic meta-heuristic searches over insertion orders.
package engine

// FreeRectangle describes one axis-aligned empty region of a bin.
// The origin (X, Y) is the bottom-left corner. It is an immutable value;
// equality is structural over all four fields.
type FreeRectangle struct {
	Width  int
	Height int
	X      int
	Y      int
}

// Area returns the rectangle area.
func (r FreeRectangle) Area() int {
	return r.Width * r.Height
}

// Fits reports whether an item of the given dimensions fits inside r.
func (r FreeRectangle) Fits(width, height int) bool {
	return r.Width >= width && r.Height >= height
}

// compareRects imposes a total order over free rectangles, comparing
// (Width, Height, X, Y) lexicographically. The rotation tie-break in
// Insert relies on this explicit ordering rather than any implicit
// structural comparison, so the tie-break behavior stays portable.
func compareRects(a, b FreeRectangle) int {
	switch {
	case a.Width != b.Width:
		return a.Width - b.Width
	case a.Height != b.Height:
		return a.Height - b.Height
	case a.X != b.X:
		return a.X - b.X
	default:
		return a.Y - b.Y
	}
}
