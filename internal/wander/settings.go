package wander

import (
	"fmt"

	"github.com/vovakirdan/wander/internal/config"
	"github.com/vovakirdan/wander/internal/core"
)

// Default canvas dimensions.
const (
	CanvasWidth  = 400
	CanvasHeight = 400
)

// Settings are the fixed parameters of a Controller.
type Settings struct {
	Width        float64
	Height       float64
	Background   core.RGB
	Speed        float64
	MarkerRadius float64

	InitialAgents     int
	InitialResolution int
	Limits            Limits

	// Palette, when non-empty, replaces random wand colors.
	Palette []core.RGB

	Flags DisplayFlags
}

// DefaultSettings returns the parameters of the default 400x400 piece.
func DefaultSettings() Settings {
	return Settings{
		Width:             CanvasWidth,
		Height:            CanvasHeight,
		Background:        core.Black,
		Speed:             20,
		MarkerRadius:      4,
		InitialAgents:     10,
		InitialResolution: 10,
		Limits:            DefaultLimits(),
		Flags: DisplayFlags{
			Quantized: true,
			ShowWands: false,
		},
	}
}

// SettingsFromConfig converts a loaded configuration.
func SettingsFromConfig(cfg config.WanderConfig) (Settings, error) {
	if err := cfg.Validate(); err != nil {
		return Settings{}, err
	}
	bg, err := cfg.BackgroundRGB()
	if err != nil {
		return Settings{}, fmt.Errorf("wander: %w", err)
	}
	palette, err := cfg.PaletteRGB()
	if err != nil {
		return Settings{}, fmt.Errorf("wander: %w", err)
	}

	return Settings{
		Width:             cfg.Canvas.Width,
		Height:            cfg.Canvas.Height,
		Background:        bg,
		Speed:             cfg.Wands.Speed,
		MarkerRadius:      cfg.Wands.MarkerRadius,
		InitialAgents:     cfg.Wands.InitialCount,
		InitialResolution: cfg.Grid.InitialResolution,
		Limits: Limits{
			MaxAgents:     cfg.Wands.MaxCount,
			MaxResolution: cfg.Grid.MaxResolution,
		},
		Palette: palette,
		Flags: DisplayFlags{
			Quantized: cfg.Display.Quantized,
			ShowWands: cfg.Display.ShowWands,
		},
	}, nil
}
