package wander

import (
	"math"

	"github.com/vovakirdan/wander/internal/core"
)

// Limits bound the parameters a click can produce.
type Limits struct {
	MaxAgents     int // Agents at pointerY == canvasHeight
	MaxResolution int // Resolution at pointerX == canvasWidth
}

// DefaultLimits returns the pointer mapping limits: up to 35 wands and resolution 50.
func DefaultLimits() Limits {
	return Limits{
		MaxAgents:     35,
		MaxResolution: 50,
	}
}

// MapInputs turns a pointer position into generation parameters:
// pointerY picks the agent count, pointerX the grid resolution. Positions
// outside the canvas are clamped first. Resolution is at least 1; zero
// agents is valid.
func MapInputs(pointerY, pointerX, canvasHeight, canvasWidth float64, limits Limits) (agents, resolution int) {
	py := core.ClampF(pointerY, 0, canvasHeight)
	px := core.ClampF(pointerX, 0, canvasWidth)

	agents = int(math.Round(core.MapRange(py, 0, canvasHeight, 0, float64(limits.MaxAgents))))
	resolution = int(math.Round(core.MapRange(px, 0, canvasWidth, 0, float64(limits.MaxResolution))))

	agents = core.Clamp(agents, 0, core.Max(limits.MaxAgents, 0))
	resolution = core.Max(resolution, 1)
	return agents, resolution
}
