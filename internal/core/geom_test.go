package core

import (
	"math"
	"testing"
)

func TestRectContains(t *testing.T) {
	r := NewRect(2, 1, 4, 3)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left corner", 2, 1, true},
		{"inside", 4, 2, true},
		{"last column", 5, 3, true},
		{"right edge (exclusive)", 6, 2, false},
		{"bottom edge (exclusive)", 3, 4, false},
		{"left of rect", 1, 2, false},
		{"above rect", 3, 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestRectEdges(t *testing.T) {
	r := NewRect(10, 20, 30, 40)

	if r.Right() != 40 {
		t.Errorf("Right() = %d, expected 40", r.Right())
	}
	if r.Bottom() != 60 {
		t.Errorf("Bottom() = %d, expected 60", r.Bottom())
	}
	if r.Empty() {
		t.Error("30x40 rect should not be empty")
	}
	if !NewRect(0, 0, 0, 5).Empty() {
		t.Error("zero-width rect should be empty")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d",
				tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	tests := []struct {
		val, min, max, expected float64
	}{
		{5.5, 0, 10, 5.5},
		{-0.1, 0, 10, 0},
		{400.5, 0, 400, 400},
	}

	for _, tc := range tests {
		result := ClampF(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("ClampF(%v, %v, %v) = %v, expected %v",
				tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestMapRange(t *testing.T) {
	tests := []struct {
		name                            string
		v, inMin, inMax, outMin, outMax float64
		expected                        float64
	}{
		{"lower bound", 0, 0, 400, 0, 35, 0},
		{"upper bound", 400, 0, 400, 0, 35, 35},
		{"midpoint", 200, 0, 400, 0, 50, 25},
		{"inverted output", 100, 0, 400, 35, 0, 26.25},
		{"degenerate input", 7, 3, 3, 1, 9, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := MapRange(tc.v, tc.inMin, tc.inMax, tc.outMin, tc.outMax)
			if got != tc.expected {
				t.Errorf("MapRange = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestFloorInt(t *testing.T) {
	if FloorInt(2.7) != 2 {
		t.Errorf("FloorInt(2.7) = %d, expected 2", FloorInt(2.7))
	}
	if FloorInt(-0.5) != -1 {
		t.Errorf("FloorInt(-0.5) = %d, expected -1", FloorInt(-0.5))
	}
}

func TestMinMax(t *testing.T) {
	if Min(3, 5) != 3 {
		t.Error("Min(3, 5) should be 3")
	}
	if Max(3, 5) != 5 {
		t.Error("Max(3, 5) should be 5")
	}
}

func TestEllipseSegments(t *testing.T) {
	tests := []struct {
		name     string
		rx, ry   float64
		expected int
	}{
		{"marker uses minimum", 4, 4, 13},
		{"tiny clamps up", 0.5, 0.5, 12},
		{"cell", 20, 10, 63},
		{"huge clamps down", 1000, 1000, 256},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := EllipseSegments(tc.rx, tc.ry); got != tc.expected {
				t.Errorf("EllipseSegments(%v, %v) = %d, expected %d", tc.rx, tc.ry, got, tc.expected)
			}
		})
	}
}

func TestEllipsePoints(t *testing.T) {
	cx, cy, rx, ry := 100.0, 50.0, 20.0, 10.0
	pts := EllipsePoints(cx, cy, rx, ry)

	if len(pts) != EllipseSegments(rx, ry) {
		t.Fatalf("got %d points, expected %d", len(pts), EllipseSegments(rx, ry))
	}
	if math.Abs(pts[0].X-(cx+rx)) > 1e-9 || math.Abs(pts[0].Y-cy) > 1e-9 {
		t.Errorf("first point = %+v, expected (%v, %v)", pts[0], cx+rx, cy)
	}
	for i, p := range pts {
		dx := (p.X - cx) / rx
		dy := (p.Y - cy) / ry
		if d := dx*dx + dy*dy; math.Abs(d-1) > 1e-9 {
			t.Errorf("point %d = %+v is off the ellipse (%v)", i, p, d)
		}
	}
}
