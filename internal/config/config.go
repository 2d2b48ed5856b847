// Package config provides YAML-based configuration loading and validation
// for the wander piece.
package config

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/wander/internal/core"
)

// WanderConfig contains all configuration for the piece.
type WanderConfig struct {
	Canvas  CanvasConfig  `yaml:"canvas"`
	Wands   WandsConfig   `yaml:"wands"`
	Grid    GridConfig    `yaml:"grid"`
	Display DisplayConfig `yaml:"display"`
	Palette []string      `yaml:"palette"` // Hex colors; empty means random wand colors
}

// CanvasConfig defines the logical canvas.
type CanvasConfig struct {
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Background string  `yaml:"background"` // Hex color
}

// WandsConfig defines wand movement and population.
type WandsConfig struct {
	Speed        float64 `yaml:"speed"`         // Max per-axis step in canvas units
	MarkerRadius float64 `yaml:"marker_radius"` // Radius of the wand marker
	InitialCount int     `yaml:"initial_count"` // Wands in the first generation
	MaxCount     int     `yaml:"max_count"`     // Wands at the bottom edge of a click
}

// GridConfig defines grid resolution limits.
type GridConfig struct {
	InitialResolution int `yaml:"initial_resolution"`
	MaxResolution     int `yaml:"max_resolution"` // Resolution at the right edge of a click
}

// DisplayConfig defines the initial display toggles.
type DisplayConfig struct {
	Quantized bool `yaml:"quantized"`  // Draw wands at their cell centers
	ShowWands bool `yaml:"show_wands"` // Draw wand markers at all
}

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Validate checks that the configuration can drive a simulation.
func (c WanderConfig) Validate() error {
	switch {
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("%w: canvas must be positive, got %vx%v", ErrInvalidConfig, c.Canvas.Width, c.Canvas.Height)
	case c.Wands.Speed <= 0:
		return fmt.Errorf("%w: wands.speed must be positive, got %v", ErrInvalidConfig, c.Wands.Speed)
	case c.Wands.MarkerRadius < 0:
		return fmt.Errorf("%w: wands.marker_radius must not be negative", ErrInvalidConfig)
	case c.Wands.InitialCount < 0 || c.Wands.MaxCount < 0:
		return fmt.Errorf("%w: wand counts must not be negative", ErrInvalidConfig)
	case c.Grid.InitialResolution < 0 || c.Grid.MaxResolution < 0:
		return fmt.Errorf("%w: grid resolutions must not be negative", ErrInvalidConfig)
	}

	if _, err := c.BackgroundRGB(); err != nil {
		return err
	}
	if _, err := c.PaletteRGB(); err != nil {
		return err
	}
	return nil
}

// BackgroundRGB parses the canvas background. An empty value means black.
func (c WanderConfig) BackgroundRGB() (core.RGB, error) {
	if c.Canvas.Background == "" {
		return core.Black, nil
	}
	return parseHex(c.Canvas.Background)
}

// PaletteRGB parses the palette entries in order.
func (c WanderConfig) PaletteRGB() ([]core.RGB, error) {
	palette := make([]core.RGB, 0, len(c.Palette))
	for _, hex := range c.Palette {
		rgb, err := parseHex(hex)
		if err != nil {
			return nil, err
		}
		palette = append(palette, rgb)
	}
	return palette, nil
}

func parseHex(s string) (core.RGB, error) {
	col, err := colorful.Hex(s)
	if err != nil {
		return core.RGB{}, fmt.Errorf("%w: color %q: %v", ErrInvalidConfig, s, err)
	}
	r, g, b := col.RGB255()
	return core.RGB{R: r, G: g, B: b}, nil
}
