package wander

import "github.com/vovakirdan/wander/internal/core"

// Wand is a wandering automaton. It may only step within its current cell
// or into a cell that no wand has claimed yet.
type Wand struct {
	X, Y  float64
	Speed float64 // Max per-axis displacement per move
	Color core.RGB

	grid *Grid
}

// NewWand places a wand at (x, y) and claims the cell underneath it.
func NewWand(grid *Grid, x, y, speed float64, color core.RGB) *Wand {
	w := &Wand{
		X:     x,
		Y:     y,
		Speed: speed,
		Color: color,
		grid:  grid,
	}
	grid.MarkEngaged(w.Cell(), color)
	return w
}

// Cell returns the cell currently containing the wand.
func (w *Wand) Cell() *Cell {
	return w.grid.CellAt(w.X, w.Y)
}

// CanEnter reports whether a wand sitting in from may step into to.
func CanEnter(from, to *Cell) bool {
	return to == from || !to.Engaged
}

// Move attempts one random displacement and reports whether it was taken.
// The current cell is re-marked with the wand color either way.
func (w *Wand) Move(src Source) bool {
	dx := uniform(src, -w.Speed, w.Speed)
	dy := uniform(src, -w.Speed, w.Speed)

	current := w.grid.CellAt(w.X, w.Y)
	candidate := w.grid.CellAt(w.X+dx, w.Y+dy)

	w.grid.MarkEngaged(current, w.Color)

	if !CanEnter(current, candidate) {
		return false
	}

	w.X = core.ClampF(w.X+dx, 0, w.grid.Width())
	w.Y = core.ClampF(w.Y+dy, 0, w.grid.Height())
	w.grid.MarkEngaged(candidate, w.Color)
	return true
}

// MarkerPosition returns where the wand marker is drawn: the exact position,
// or the center of the current cell when quantized.
func (w *Wand) MarkerPosition(quantized bool) (float64, float64) {
	if quantized {
		c := w.Cell()
		return c.X, c.Y
	}
	return w.X, w.Y
}
