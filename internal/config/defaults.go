package config

import (
	_ "embed"
)

//go:embed defaults/wander.yaml
var defaultWanderYAML []byte

// DefaultWanderConfig returns the default configuration.
// It matches the embedded defaults/wander.yaml.
func DefaultWanderConfig() WanderConfig {
	return WanderConfig{
		Canvas: CanvasConfig{
			Width:      400,
			Height:     400,
			Background: "#000000",
		},
		Wands: WandsConfig{
			Speed:        20,
			MarkerRadius: 4,
			InitialCount: 10,
			MaxCount:     35,
		},
		Grid: GridConfig{
			InitialResolution: 10,
			MaxResolution:     50,
		},
		Display: DisplayConfig{
			Quantized: true,
			ShowWands: false,
		},
	}
}
