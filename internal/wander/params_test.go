package wander

import "testing"

func TestMapInputs(t *testing.T) {
	limits := DefaultLimits()

	tests := []struct {
		name               string
		pointerY, pointerX float64
		agents, resolution int
	}{
		{"bottom-right corner", 400, 400, 35, 50},
		{"top-left corner clamps resolution", 0, 0, 0, 1},
		{"center rounds half up", 200, 200, 18, 25},
		{"quarter", 100, 300, 9, 38},
		{"outside canvas is clamped", 500, -20, 35, 1},
		{"tiny x still yields one cell", 120, 3, 11, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			agents, resolution := MapInputs(tc.pointerY, tc.pointerX, 400, 400, limits)
			if agents != tc.agents || resolution != tc.resolution {
				t.Errorf("MapInputs(y=%v, x=%v) = (%d, %d), expected (%d, %d)",
					tc.pointerY, tc.pointerX, agents, resolution, tc.agents, tc.resolution)
			}
		})
	}
}

func TestMapInputsCustomLimits(t *testing.T) {
	agents, resolution := MapInputs(300, 150, 300, 300, Limits{MaxAgents: 4, MaxResolution: 6})
	if agents != 4 || resolution != 3 {
		t.Errorf("MapInputs = (%d, %d), expected (4, 3)", agents, resolution)
	}

	// Degenerate limits never produce an unusable grid
	agents, resolution = MapInputs(300, 300, 300, 300, Limits{})
	if agents != 0 || resolution != 1 {
		t.Errorf("MapInputs with zero limits = (%d, %d), expected (0, 1)", agents, resolution)
	}
}
