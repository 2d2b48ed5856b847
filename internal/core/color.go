package core

import "fmt"

// RGB is a 24-bit color with one 8-bit channel per component.
// The simulation works with RGB values directly; packed integers only
// appear at render boundaries.
type RGB struct {
	R uint8
	G uint8
	B uint8
}

// Common colors.
var (
	Black  = RGB{0, 0, 0}
	White  = RGB{255, 255, 255}
	Red    = RGB{255, 0, 0}
	Yellow = RGB{255, 255, 0}
)

// NewRGB builds a color from integer channels, clamping each to [0, 255].
func NewRGB(r, g, b int) RGB {
	return RGB{
		R: uint8(Clamp(r, 0, 255)),
		G: uint8(Clamp(g, 0, 255)),
		B: uint8(Clamp(b, 0, 255)),
	}
}

// Pack encodes the color as 0xRRGGBB.
func (c RGB) Pack() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Unpack decodes a 0xRRGGBB integer. Bits above the low 24 are ignored.
func Unpack(v uint32) RGB {
	const mask = 0xFF
	return RGB{
		R: uint8((v >> 16) & mask),
		G: uint8((v >> 8) & mask),
		B: uint8(v & mask),
	}
}

// Scale multiplies every channel by f, clamping the result.
// Cell outlines use Scale(0.8) of the fill color.
func (c RGB) Scale(f float64) RGB {
	return NewRGB(
		int(float64(c.R)*f),
		int(float64(c.G)*f),
		int(float64(c.B)*f),
	)
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%06x", c.Pack())
}

// String returns a human-readable representation of the color.
func (c RGB) String() string {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
}
