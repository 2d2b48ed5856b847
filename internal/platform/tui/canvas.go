package tui

import (
	"math"

	"github.com/vovakirdan/wander/internal/core"
	"github.com/vovakirdan/wander/internal/wander"
)

// cellAspect is the height of a terminal cell in units of its width.
const cellAspect = 2.0

// markerRune draws shapes smaller than one terminal cell.
const markerRune = '●'

// ScreenCanvas rasterizes the piece onto a region of a Screen.
// Canvas units are mapped to terminal cells by testing cell centers.
type ScreenCanvas struct {
	screen *core.Screen
	area   core.Rect // Region of the screen in cells
	width  float64   // Canvas width in canvas units
	height float64   // Canvas height in canvas units
}

var _ wander.Canvas = (*ScreenCanvas)(nil)

// NewScreenCanvas creates a canvas of width x height units drawn into the
// given screen region.
func NewScreenCanvas(screen *core.Screen, area core.Rect, width, height float64) *ScreenCanvas {
	return &ScreenCanvas{
		screen: screen,
		area:   area,
		width:  width,
		height: height,
	}
}

// FitArea returns the largest region of a cols x rows space that shows a
// width x height canvas with its aspect ratio kept, centered horizontally.
func FitArea(cols, rows int, width, height float64) core.Rect {
	if cols <= 0 || rows <= 0 || width <= 0 || height <= 0 {
		return core.Rect{}
	}
	w := cols
	h := int(float64(w) * height / width / cellAspect)
	if h > rows {
		h = rows
		w = int(float64(h) * width / height * cellAspect)
	}
	w = core.Clamp(w, 1, cols)
	h = core.Clamp(h, 1, rows)
	return core.NewRect((cols-w)/2, 0, w, h)
}

// Area returns the screen region of the canvas.
func (c *ScreenCanvas) Area() core.Rect {
	return c.area
}

// scale returns terminal cells per canvas unit on each axis.
func (c *ScreenCanvas) scale() (sx, sy float64) {
	return float64(c.area.W) / c.width, float64(c.area.H) / c.height
}

// ToCanvas maps a screen cell to the canvas position at its center.
// It reports false when the cell lies outside the canvas region.
func (c *ScreenCanvas) ToCanvas(col, row int) (float64, float64, bool) {
	if c.area.Empty() || !c.area.Contains(col, row) {
		return 0, 0, false
	}
	sx, sy := c.scale()
	x := (float64(col-c.area.X) + 0.5) / sx
	y := (float64(row-c.area.Y) + 0.5) / sy
	return x, y, true
}

// Fill clears the canvas region.
func (c *ScreenCanvas) Fill(bg core.RGB) {
	for y := c.area.Y; y < c.area.Bottom(); y++ {
		for x := c.area.X; x < c.area.Right(); x++ {
			c.screen.SetCell(x, y, core.ScreenCell{Rune: ' ', FG: bg, BG: bg})
		}
	}
}

// Ellipse paints the cells whose centers fall inside the ellipse. Cells
// that would drop out without a neighbor inside form the outline. Shapes
// smaller than a cell become a single marker rune over the existing cell.
func (c *ScreenCanvas) Ellipse(cx, cy, rx, ry float64, fill, stroke core.RGB) {
	if c.area.Empty() || rx <= 0 || ry <= 0 {
		return
	}
	sx, sy := c.scale()

	if rx*sx < 1 && ry*sy < 1 {
		col, row := c.toCell(cx, cy, sx, sy)
		c.screen.Set(col, row, markerRune, fill)
		return
	}

	minCol, minRow := c.toCell(cx-rx, cy-ry, sx, sy)
	maxCol, maxRow := c.toCell(cx+rx, cy+ry, sx, sy)

	// One cell of outline in canvas units on each axis.
	ox, oy := 1/sx, 1/sy
	outline := rx > 2*ox && ry > 2*oy

	painted := false
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			ux := (float64(col-c.area.X) + 0.5) / sx
			uy := (float64(row-c.area.Y) + 0.5) / sy
			if !inEllipse(ux, uy, cx, cy, rx, ry) {
				continue
			}
			color := fill
			if outline && !inEllipse(ux, uy, cx, cy, rx-ox, ry-oy) {
				color = stroke
			}
			c.screen.SetCell(col, row, core.ScreenCell{Rune: ' ', FG: color, BG: color})
			painted = true
		}
	}

	if !painted {
		col, row := c.toCell(cx, cy, sx, sy)
		c.screen.SetCell(col, row, core.ScreenCell{Rune: ' ', FG: fill, BG: fill})
	}
}

// toCell maps a canvas position to the screen cell containing it, clamped
// to the canvas region.
func (c *ScreenCanvas) toCell(x, y, sx, sy float64) (int, int) {
	col := c.area.X + core.Clamp(int(math.Floor(x*sx)), 0, c.area.W-1)
	row := c.area.Y + core.Clamp(int(math.Floor(y*sy)), 0, c.area.H-1)
	return col, row
}

func inEllipse(x, y, cx, cy, rx, ry float64) bool {
	dx := (x - cx) / rx
	dy := (y - cy) / ry
	return dx*dx+dy*dy <= 1
}
