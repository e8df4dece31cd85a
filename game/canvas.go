package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Canvas is an offscreen ebiten image the particle field draws into.
// Like an HTML canvas it keeps its last frame while the field is paused.
type Canvas struct {
	img *ebiten.Image
}

// NewCanvas creates an empty canvas; the field sizes it on construction
func NewCanvas() *Canvas {
	return &Canvas{}
}

// Resize replaces the backing image, discarding its contents
func (c *Canvas) Resize(width, height int) {
	if c.img != nil {
		c.img.Deallocate()
		c.img = nil
	}
	if width <= 0 || height <= 0 {
		return
	}
	c.img = ebiten.NewImage(width, height)
}

// Clear erases the canvas
func (c *Canvas) Clear() {
	if c.img != nil {
		c.img.Clear()
	}
}

// FillCircle draws a filled, antialiased circle
func (c *Canvas) FillCircle(x, y, radius float64, clr color.Color) {
	if c.img == nil {
		return
	}
	vector.DrawFilledCircle(c.img, float32(x), float32(y), float32(radius), clr, true)
}

// StrokeLine draws an antialiased line segment
func (c *Canvas) StrokeLine(x1, y1, x2, y2, width float64, clr color.Color) {
	if c.img == nil {
		return
	}
	vector.StrokeLine(c.img, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), clr, true)
}

// Image returns the backing image, nil when the canvas has no area
func (c *Canvas) Image() *ebiten.Image {
	return c.img
}
