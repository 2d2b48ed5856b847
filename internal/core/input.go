package core

// Action represents a semantic viewer action, abstracted from physical key presses.
// This lets the simulation work with intents rather than raw input.
type Action int

const (
	ActionNone            Action = iota
	ActionToggleQuantized        // H - show wands at their cell centers
	ActionToggleWands            // W - show or hide wand markers
	ActionReseed                 // R - same parameters, fresh seed
	ActionPause                  // P - freeze movement
	ActionScreenshot             // Ctrl+S - save the current frame
	ActionHelp                   // ? - toggle full help
	ActionQuit                   // Q, Ctrl+C - exit viewer/session
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionToggleQuantized:
		return "ToggleQuantized"
	case ActionToggleWands:
		return "ToggleWands"
	case ActionReseed:
		return "Reseed"
	case ActionPause:
		return "Pause"
	case ActionScreenshot:
		return "Screenshot"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Point is a position in canvas units.
type Point struct {
	X float64
	Y float64
}

// InputFrame collects the input delivered between two frames.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Clicks holds pointer clicks in canvas units, oldest first.
	Clicks []Point
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Click records a pointer click at canvas position p.
func (f *InputFrame) Click(p Point) {
	f.Clicks = append(f.Clicks, p)
}

// LastClick returns the most recent click of the frame, if any.
// Only the last click matters: every click replaces the whole generation.
func (f InputFrame) LastClick() (Point, bool) {
	if len(f.Clicks) == 0 {
		return Point{}, false
	}
	return f.Clicks[len(f.Clicks)-1], true
}

// Empty reports whether nothing was triggered this frame.
func (f InputFrame) Empty() bool {
	return len(f.Clicks) == 0 && len(f.Actions) == 0
}

// Clear resets all actions and clicks for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Clicks = f.Clicks[:0]
}
