// Package model defines the shared data types for 2D rectangle bin packing:
// items to place, bin layouts, packing results, and application configuration.
package model

import "github.com/google/uuid"

// Item represents a rectangular piece to be packed into a bin.
// Width and Height always reflect the current orientation: rotating an
// item swaps them. X and Y are set exactly once, when an engine places
// the item; they are meaningless while Placed is false.
type Item struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
	Quantity int    `json:"quantity"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Rotated  bool   `json:"rotated"`
	Placed   bool   `json:"placed"`
}

// NewItem creates an item with a fresh short ID and quantity copies.
func NewItem(label string, width, height, qty int) *Item {
	return &Item{
		ID:       uuid.New().String()[:8],
		Label:    label,
		Width:    width,
		Height:   height,
		Quantity: qty,
	}
}

// Area returns the item area in the current orientation.
func (it *Item) Area() int {
	return it.Width * it.Height
}

// Valid reports whether the item has positive dimensions. Engines reject
// invalid items up front rather than risk corrupting their free set.
func (it *Item) Valid() bool {
	return it.Width > 0 && it.Height > 0
}

// Rotate swaps width and height and toggles the rotation flag.
func (it *Item) Rotate() {
	it.Width, it.Height = it.Height, it.Width
	it.Rotated = !it.Rotated
}

// Place assigns the item's bottom-left corner. It is called once by the
// engine that accepts the item and never again.
func (it *Item) Place(x, y int) {
	it.X = x
	it.Y = y
	it.Placed = true
}

// Copy returns an independent copy of the item with the same ID.
// Used when expanding quantities into individual placement candidates.
func (it *Item) Copy() *Item {
	cp := *it
	cp.Quantity = 1
	return &cp
}
