// Package core provides fundamental types and utilities shared by the
// simulation and its viewers. It contains no external dependencies
// (especially no Bubble Tea or Ebiten) to keep simulation logic pure and
// testable.
package core

import "math"

// Rect represents an axis-aligned area in screen cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// MapRange linearly maps v from [inMin, inMax] onto [outMin, outMax].
// The input is not clamped. A degenerate input range maps everything to outMin.
func MapRange(v, inMin, inMax, outMin, outMax float64) float64 {
	if inMax == inMin {
		return outMin
	}
	return outMin + (v-inMin)*(outMax-outMin)/(inMax-inMin)
}

// FloorInt returns floor(v) as an int.
func FloorInt(v float64) int {
	return int(math.Floor(v))
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// EllipseSegments picks a polygon resolution for an ellipse that keeps
// edges near two units long.
func EllipseSegments(rx, ry float64) int {
	n := int(math.Ceil(math.Pi * math.Max(rx, ry)))
	return Clamp(n, 12, 256)
}

// EllipsePoints returns the polygon vertices of an ellipse, starting at
// angle zero and turning toward +y.
func EllipsePoints(cx, cy, rx, ry float64) []Point {
	n := EllipseSegments(rx, ry)
	pts := make([]Point, n)
	for i := range pts {
		a := 2 * math.Pi * float64(i) / float64(n)
		pts[i] = Point{X: cx + rx*math.Cos(a), Y: cy + ry*math.Sin(a)}
	}
	return pts
}
