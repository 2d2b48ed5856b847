// Package window provides the Ebiten desktop viewer for the wander piece.
package window

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/wander/internal/core"
	"github.com/vovakirdan/wander/internal/wander"
)

// strokeWidth is the outline width in canvas units.
const strokeWidth = 1

var whiteSubImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}()

// ImageCanvas draws the piece onto an Ebiten image. One canvas unit is one pixel.
type ImageCanvas struct {
	dst *ebiten.Image
	vs  []ebiten.Vertex
	is  []uint16
}

var _ wander.Canvas = (*ImageCanvas)(nil)

// NewImageCanvas creates a canvas over dst.
func NewImageCanvas(dst *ebiten.Image) *ImageCanvas {
	return &ImageCanvas{dst: dst}
}

// Image returns the target image.
func (c *ImageCanvas) Image() *ebiten.Image {
	return c.dst
}

// Fill clears the image.
func (c *ImageCanvas) Fill(bg core.RGB) {
	c.dst.Fill(toColor(bg))
}

// Ellipse fills the ellipse, then strokes its outline.
func (c *ImageCanvas) Ellipse(cx, cy, rx, ry float64, fill, stroke core.RGB) {
	if rx <= 0 || ry <= 0 {
		return
	}
	path := ellipsePath(cx, cy, rx, ry)

	c.vs, c.is = path.AppendVerticesAndIndicesForFilling(c.vs[:0], c.is[:0])
	c.draw(fill, ebiten.FillRuleNonZero)

	c.vs, c.is = path.AppendVerticesAndIndicesForStroke(c.vs[:0], c.is[:0], &vector.StrokeOptions{
		Width:    strokeWidth,
		LineJoin: vector.LineJoinRound,
	})
	c.draw(stroke, ebiten.FillRuleFillAll)
}

func (c *ImageCanvas) draw(clr core.RGB, rule ebiten.FillRule) {
	r, g, b := float32(clr.R)/0xff, float32(clr.G)/0xff, float32(clr.B)/0xff
	for i := range c.vs {
		c.vs[i].SrcX = 1
		c.vs[i].SrcY = 1
		c.vs[i].ColorR = r
		c.vs[i].ColorG = g
		c.vs[i].ColorB = b
		c.vs[i].ColorA = 1
	}
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
		FillRule:  rule,
	}
	c.dst.DrawTriangles(c.vs, c.is, whiteSubImage, op)
}

// ellipsePath builds a closed polygon approximating the ellipse.
func ellipsePath(cx, cy, rx, ry float64) *vector.Path {
	var path vector.Path
	pts := core.EllipsePoints(cx, cy, rx, ry)
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()
	return &path
}

func toColor(c core.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}
}
