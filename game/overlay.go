package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	overlayWidth   = 180
	overlayMargin  = 12
	overlayLineGap = 16
)

var (
	colorOverlayBackdrop = color.NRGBA{R: 10, G: 12, B: 28, A: 200}
	colorOverlayBorder   = color.NRGBA{R: 99, G: 102, B: 241, A: 160}
	colorOverlayText     = color.NRGBA{R: 220, G: 220, B: 240, A: 255}
)

// overlayFace is the bitmap font used for the statistics panel
var overlayFace = text.NewGoXFace(basicfont.Face7x13)

// drawOverlay draws the statistics panel in the top-right corner, below the header
func drawOverlay(screen *ebiten.Image, lines []string) {
	w := float32(overlayWidth)
	h := float32(len(lines)*overlayLineGap + overlayMargin)
	x := float32(screen.Bounds().Dx()) - w - overlayMargin
	y := float32(headerHeight + overlayMargin)

	vector.DrawFilledRect(screen, x, y, w, h, colorOverlayBackdrop, false)
	vector.StrokeRect(screen, x, y, w, h, 1, colorOverlayBorder, false)

	for i, line := range lines {
		op := &text.DrawOptions{}
		op.GeoM.Translate(float64(x)+8, float64(y)+6+float64(i*overlayLineGap))
		op.ColorScale.ScaleWithColor(colorOverlayText)
		text.Draw(screen, line, overlayFace, op)
	}
}
