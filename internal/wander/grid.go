// Package wander implements the grid-occupancy simulation behind the piece:
// wands roam a square grid and permanently claim every cell they enter.
package wander

import (
	"strings"

	"github.com/vovakirdan/wander/internal/core"
)

// Cell is one grid square. Engaged never reverts to false for the lifetime
// of its Grid.
type Cell struct {
	CX, CY  int     // Grid coordinates
	X, Y    float64 // Center in canvas units
	HalfW   float64 // Half of the cell width
	HalfH   float64 // Half of the cell height
	Engaged bool
	Color   core.RGB
}

// Grid partitions the canvas into resolution x resolution cells.
// Cells are stored in row-major order: index = cy*resolution + cx.
type Grid struct {
	resolution int
	width      float64
	height     float64
	cells      []Cell
}

// NewGrid creates a grid over a width x height canvas with all cells free.
// A resolution below 1 is clamped to 1, as are non-positive canvas sizes.
func NewGrid(resolution int, width, height float64) *Grid {
	resolution = core.Max(resolution, 1)
	if width <= 0 {
		width = 1
	}
	if height <= 0 {
		height = 1
	}

	g := &Grid{
		resolution: resolution,
		width:      width,
		height:     height,
		cells:      make([]Cell, resolution*resolution),
	}

	cw := width / float64(resolution)
	ch := height / float64(resolution)
	for cy := 0; cy < resolution; cy++ {
		for cx := 0; cx < resolution; cx++ {
			g.cells[cy*resolution+cx] = Cell{
				CX:    cx,
				CY:    cy,
				X:     (float64(cx) + 0.5) * cw,
				Y:     (float64(cy) + 0.5) * ch,
				HalfW: cw / 2,
				HalfH: ch / 2,
			}
		}
	}
	return g
}

// Resolution returns the number of cells along each axis.
func (g *Grid) Resolution() int {
	return g.resolution
}

// Width returns the canvas width covered by the grid.
func (g *Grid) Width() float64 {
	return g.width
}

// Height returns the canvas height covered by the grid.
func (g *Grid) Height() float64 {
	return g.height
}

// Len returns the total number of cells.
func (g *Grid) Len() int {
	return len(g.cells)
}

// CellAt returns the cell containing the point (x, y).
// Points outside the canvas map to the nearest edge cell.
func (g *Grid) CellAt(x, y float64) *Cell {
	cx := core.Clamp(core.FloorInt(x/g.width*float64(g.resolution)), 0, g.resolution-1)
	cy := core.Clamp(core.FloorInt(y/g.height*float64(g.resolution)), 0, g.resolution-1)
	return &g.cells[cy*g.resolution+cx]
}

// Cell returns the cell at grid coordinates (cx, cy), or nil if out of range.
func (g *Grid) Cell(cx, cy int) *Cell {
	if cx < 0 || cx >= g.resolution || cy < 0 || cy >= g.resolution {
		return nil
	}
	return &g.cells[cy*g.resolution+cx]
}

// MarkEngaged claims a cell and sets its color. Marking an engaged cell
// again only recolors it.
func (g *Grid) MarkEngaged(c *Cell, color core.RGB) {
	c.Engaged = true
	c.Color = color
}

// Each calls fn for every cell in row-major order.
func (g *Grid) Each(fn func(c *Cell)) {
	for i := range g.cells {
		fn(&g.cells[i])
	}
}

// EngagedCount returns the number of claimed cells.
func (g *Grid) EngagedCount() int {
	count := 0
	for i := range g.cells {
		if g.cells[i].Engaged {
			count++
		}
	}
	return count
}

// Engaged returns a row-major copy of the engagement flags.
func (g *Grid) Engaged() []bool {
	flags := make([]bool, len(g.cells))
	for i := range g.cells {
		flags[i] = g.cells[i].Engaged
	}
	return flags
}

// String renders the grid as ASCII: '#' for engaged cells, '.' for free ones.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g.cells) + g.resolution)
	for cy := 0; cy < g.resolution; cy++ {
		if cy > 0 {
			sb.WriteByte('\n')
		}
		for cx := 0; cx < g.resolution; cx++ {
			if g.cells[cy*g.resolution+cx].Engaged {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
