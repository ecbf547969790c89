package tabletop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenCanvas applies draw-command lists to an offscreen ebiten image.
// One canvas per overlay layer; the app composites the layer images in
// fixed order each frame.
type EbitenCanvas struct {
	img *ebiten.Image
}

// NewEbitenCanvas wraps an offscreen layer image.
func NewEbitenCanvas(img *ebiten.Image) *EbitenCanvas {
	return &EbitenCanvas{img: img}
}

// Image returns the underlying layer image for compositing.
func (c *EbitenCanvas) Image() *ebiten.Image {
	return c.img
}

// Clear wipes the layer to fully transparent.
func (c *EbitenCanvas) Clear() {
	c.img.Clear()
}

// FillRect fills an axis-aligned rectangle.
func (c *EbitenCanvas) FillRect(x, y, w, h float32, col color.RGBA) {
	vector.FillRect(c.img, x, y, w, h, col, false)
}

// StrokeRect outlines an axis-aligned rectangle.
func (c *EbitenCanvas) StrokeRect(x, y, w, h, thickness float32, col color.RGBA) {
	vector.StrokeRect(c.img, x, y, w, h, thickness, col, false)
}

// StrokeLine draws a line segment.
func (c *EbitenCanvas) StrokeLine(x1, y1, x2, y2, thickness float32, col color.RGBA) {
	vector.StrokeLine(c.img, x1, y1, x2, y2, thickness, col, false)
}
