package wander

import (
	"math/rand"

	"github.com/vovakirdan/wander/internal/core"
)

// Generation identifies one lifetime of a grid and its wands. With the same
// Settings, a Generation always produces the same piece.
type Generation struct {
	Seed       int64
	Agents     int
	Resolution int
}

// Stats summarizes the current generation.
type Stats struct {
	Generations int    // Generations started since Reset
	Frames      uint64 // Frames in the current generation
	Accepted    uint64 // Moves taken
	Rejected    uint64 // Moves refused by the engagement rule
	Engaged     int    // Claimed cells
	Cells       int    // Total cells
}

// State is the whole mutable simulation state. It is replaced, never
// patched, when a new generation starts.
type State struct {
	Grid  *Grid
	Wands []*Wand
}

// Controller owns the simulation state and applies viewer input to it.
// It is not safe for concurrent use; each viewer drives its own Controller
// from a single goroutine.
type Controller struct {
	settings Settings
	factory  SourceFactory
	seeds    *rand.Rand
	src      Source

	state  State
	gen    Generation
	flags  DisplayFlags
	paused bool
	stats  Stats
}

// NewController creates a controller. A nil factory uses NewRandSource.
// Call Reset or Regenerate before the first frame.
func NewController(settings Settings, factory SourceFactory) *Controller {
	if factory == nil {
		factory = NewRandSource
	}
	return &Controller{
		settings: settings,
		factory:  factory,
		seeds:    rand.New(rand.NewSource(0)),
		flags:    settings.Flags,
	}
}

// Reset seeds the generation seed sequence from cfg and starts the initial
// generation from the settings.
func (c *Controller) Reset(cfg core.RuntimeConfig) Generation {
	c.seeds = rand.New(rand.NewSource(cfg.Seed))
	c.stats.Generations = 0
	c.flags = c.settings.Flags
	c.paused = false

	c.Regenerate(Generation{
		Seed:       c.nextSeed(),
		Agents:     c.settings.InitialAgents,
		Resolution: c.settings.InitialResolution,
	})
	return c.gen
}

// Regenerate discards the grid and all wands and builds a new generation.
// The new state is assembled completely before it replaces the old one.
func (c *Controller) Regenerate(gen Generation) {
	gen.Resolution = core.Max(gen.Resolution, 1)
	gen.Agents = core.Max(gen.Agents, 0)

	src := c.factory(gen.Seed)
	grid := NewGrid(gen.Resolution, c.settings.Width, c.settings.Height)
	wands := make([]*Wand, 0, gen.Agents)
	for i := 0; i < gen.Agents; i++ {
		x := uniform(src, 0, grid.Width())
		y := uniform(src, 0, grid.Height())
		wands = append(wands, NewWand(grid, x, y, c.settings.Speed, c.wandColor(src)))
	}

	c.state = State{Grid: grid, Wands: wands}
	c.src = src
	c.gen = gen
	c.stats = Stats{Generations: c.stats.Generations + 1}
}

// wandColor picks a palette entry, or a warm random color when no palette
// is configured: red in [50, 255), green and blue in [50, 100).
func (c *Controller) wandColor(src Source) core.RGB {
	if n := len(c.settings.Palette); n > 0 {
		idx := core.Clamp(core.FloorInt(src.Float64()*float64(n)), 0, n-1)
		return c.settings.Palette[idx]
	}
	r := uniform(src, 50, 255)
	g := uniform(src, 50, 100)
	b := uniform(src, 50, 100)
	return core.NewRGB(int(r), int(g), int(b))
}

func (c *Controller) nextSeed() int64 {
	return c.seeds.Int63()
}

// Click regenerates from a pointer position in canvas units.
func (c *Controller) Click(x, y float64) Generation {
	agents, resolution := MapInputs(y, x, c.settings.Height, c.settings.Width, c.settings.Limits)
	c.Regenerate(Generation{
		Seed:       c.nextSeed(),
		Agents:     agents,
		Resolution: resolution,
	})
	return c.gen
}

// Reseed regenerates with the current parameters and a fresh seed.
func (c *Controller) Reseed() Generation {
	gen := c.gen
	gen.Seed = c.nextSeed()
	c.Regenerate(gen)
	return c.gen
}

// ToggleQuantized flips between exact and cell-centered wand markers.
func (c *Controller) ToggleQuantized() {
	c.flags.Quantized = !c.flags.Quantized
}

// ToggleWands shows or hides wand markers.
func (c *Controller) ToggleWands() {
	c.flags.ShowWands = !c.flags.ShowWands
}

// TogglePaused freezes or resumes movement. Rendering continues while paused.
func (c *Controller) TogglePaused() {
	c.paused = !c.paused
}

// Apply handles one frame of viewer input. It reports the new generation if
// the input started one. A click wins over a reseed in the same frame.
func (c *Controller) Apply(in core.InputFrame) (Generation, bool) {
	if in.Has(core.ActionToggleQuantized) {
		c.ToggleQuantized()
	}
	if in.Has(core.ActionToggleWands) {
		c.ToggleWands()
	}
	if in.Has(core.ActionPause) {
		c.TogglePaused()
	}

	if p, ok := in.LastClick(); ok {
		return c.Click(p.X, p.Y), true
	}
	if in.Has(core.ActionReseed) {
		return c.Reseed(), true
	}
	return c.gen, false
}

// Frame renders the grid, then paints and moves each wand in order.
// A nil dst advances the simulation without drawing.
func (c *Controller) Frame(dst Canvas) {
	if c.state.Grid == nil {
		return
	}
	if dst != nil {
		RenderGrid(dst, c.state.Grid, c.settings.Background)
	}
	for _, w := range c.state.Wands {
		if dst != nil {
			w.Paint(dst, c.flags, c.settings.MarkerRadius)
		}
		if c.paused {
			continue
		}
		if w.Move(c.src) {
			c.stats.Accepted++
		} else {
			c.stats.Rejected++
		}
	}
	if !c.paused {
		c.stats.Frames++
	}
}

// Step advances the simulation by one frame without drawing.
func (c *Controller) Step() {
	c.Frame(nil)
}

// Render draws the current state without moving any wand.
func (c *Controller) Render(dst Canvas) {
	if c.state.Grid == nil {
		return
	}
	RenderGrid(dst, c.state.Grid, c.settings.Background)
	for _, w := range c.state.Wands {
		w.Paint(dst, c.flags, c.settings.MarkerRadius)
	}
}

// State returns the current grid and wands.
func (c *Controller) State() State {
	return c.state
}

// Generation returns the parameters of the current generation.
func (c *Controller) Generation() Generation {
	return c.gen
}

// Flags returns the display toggles.
func (c *Controller) Flags() DisplayFlags {
	return c.flags
}

// Paused reports whether movement is frozen.
func (c *Controller) Paused() bool {
	return c.paused
}

// Settings returns the controller settings.
func (c *Controller) Settings() Settings {
	return c.settings
}

// Stats returns counters for the current generation.
func (c *Controller) Stats() Stats {
	s := c.stats
	if c.state.Grid != nil {
		s.Engaged = c.state.Grid.EngagedCount()
		s.Cells = c.state.Grid.Len()
	}
	return s
}
