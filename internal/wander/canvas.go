package wander

import "github.com/vovakirdan/wander/internal/core"

// Canvas is the render surface the piece draws on. Coordinates are in
// canvas units.
type Canvas interface {
	// Fill clears the whole canvas with a color.
	Fill(bg core.RGB)

	// Ellipse draws a filled ellipse centered at (cx, cy) with radii rx, ry
	// and an outline in the stroke color.
	Ellipse(cx, cy, rx, ry float64, fill, stroke core.RGB)
}

// Marker colors for wands.
var (
	MarkerFill   = core.Yellow
	MarkerStroke = core.Red
)

// strokeFactor darkens engaged cell outlines relative to their fill.
const strokeFactor = 0.8

// DisplayFlags are the viewer toggles.
type DisplayFlags struct {
	Quantized bool // Draw wands at the center of their cell
	ShowWands bool // Draw wand markers at all
}

// RenderGrid clears the canvas and draws every cell as an ellipse.
func RenderGrid(dst Canvas, g *Grid, bg core.RGB) {
	dst.Fill(bg)
	g.Each(func(c *Cell) {
		if c.Engaged {
			dst.Ellipse(c.X, c.Y, c.HalfW, c.HalfH, c.Color, c.Color.Scale(strokeFactor))
			return
		}
		dst.Ellipse(c.X, c.Y, c.HalfW, c.HalfH, bg, bg)
	})
}

// Paint draws the wand marker when markers are enabled.
func (w *Wand) Paint(dst Canvas, flags DisplayFlags, radius float64) {
	if !flags.ShowWands {
		return
	}
	x, y := w.MarkerPosition(flags.Quantized)
	dst.Ellipse(x, y, radius, radius, MarkerFill, MarkerStroke)
}
