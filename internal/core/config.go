package core

// RuntimeConfig contains configuration passed to a viewer at initialization.
// Viewers use it to size their output and seed the simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (terminal viewers)
	ScreenH  int   // Screen height in characters (terminal viewers)
	TickRate int   // Frames per second (default 60)
	Seed     int64 // Seed for the generation seed sequence
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// Normalized returns a copy with a usable tick rate.
func (c RuntimeConfig) Normalized() RuntimeConfig {
	if c.TickRate <= 0 {
		c.TickRate = 60
	}
	return c
}
