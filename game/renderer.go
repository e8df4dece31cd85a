package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"particlefield/cursor"
	"particlefield/page"
)

// Layout constants
const (
	headerHeight     = 64.0
	headerTextX      = 24
	headerTextY      = 26
	orbRadiusRatio   = 0.22
	cursorDotRadius  = 4.0
	cursorRingRadius = 18.0
	cursorHoverScale = 1.6
	sectionTitleX    = 48
	sectionTitleY    = 96
)

// Color constants
var (
	colorBackground     = color.NRGBA{R: 8, G: 8, B: 20, A: 255}
	colorSectionAlt     = color.NRGBA{R: 14, G: 14, B: 32, A: 255}
	colorHeader         = color.NRGBA{R: 12, G: 12, B: 30, A: 120}
	colorHeaderScrolled = color.NRGBA{R: 12, G: 12, B: 30, A: 225}
	colorHeaderBorder   = color.NRGBA{R: 99, G: 102, B: 241, A: 90}
	colorCursorDot      = color.NRGBA{R: 167, G: 139, B: 250, A: 255}
	colorCursorRing     = color.NRGBA{R: 167, G: 139, B: 250, A: 140}
)

// orbColors tint the hero orbs, cycling when there are more orbs than colors
var orbColors = []color.NRGBA{
	{R: 139, G: 92, B: 246, A: 40},
	{R: 99, G: 102, B: 241, A: 36},
	{R: 236, G: 72, B: 153, A: 28},
}

// sectionTitles label the page sections after the hero
var sectionTitles = []string{"hero", "about", "projects", "skills", "contact", "footer"}

// Renderer draws the page around the particle field
type Renderer struct {
	canvas *Canvas
}

// NewRenderer creates a renderer for the given field canvas
func NewRenderer(canvas *Canvas) *Renderer {
	return &Renderer{canvas: canvas}
}

// Render draws the full frame
func (r *Renderer) Render(screen *ebiten.Image, pg *page.Page, cur *cursor.Follower, showCursor bool) {
	screen.Fill(colorBackground)

	r.drawSections(screen, pg)
	r.drawOrbs(screen, pg)
	r.drawField(screen, pg)
	r.drawHeader(screen, pg)
	if showCursor {
		r.drawCursor(screen, cur)
	}
}

// drawSections shades alternate sections and labels them
func (r *Renderer) drawSections(screen *ebiten.Image, pg *page.Page) {
	scrollY := pg.ScrollY()
	for i := 1; i < pg.Sections(); i++ {
		rect := pg.SectionRect(i)
		y := rect.Y - scrollY
		if y > float64(screen.Bounds().Dy()) || y+rect.Height < 0 {
			continue
		}
		if i%2 == 1 {
			vector.DrawFilledRect(screen, 0, float32(y), float32(rect.Width), float32(rect.Height), colorSectionAlt, false)
		}
		title := fmt.Sprintf("section %d", i+1)
		if i < len(sectionTitles) {
			title = sectionTitles[i]
		}
		ebitenutil.DebugPrintAt(screen, title, sectionTitleX, int(y)+sectionTitleY)
	}
}

// drawOrbs draws the blurred hero orbs shifted by their parallax offsets
func (r *Renderer) drawOrbs(screen *ebiten.Image, pg *page.Page) {
	hero := pg.HeroRect()
	radius := float32(min(hero.Width, hero.Height) * orbRadiusRatio)
	for i, offset := range pg.OrbOffsets() {
		cx := hero.Width * (0.2 + 0.3*float64(i))
		cy := hero.Height*(0.3+0.2*float64(i%2)) + offset - pg.ScrollY()
		clr := orbColors[i%len(orbColors)]
		// soft falloff from stacked concentric circles
		for ring := 3; ring >= 1; ring-- {
			vector.DrawFilledCircle(screen, float32(cx), float32(cy), radius*float32(ring)/3, clr, true)
		}
	}
}

// drawField blits the particle canvas at the hero position
func (r *Renderer) drawField(screen *ebiten.Image, pg *page.Page) {
	img := r.canvas.Image()
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, -pg.ScrollY())
	screen.DrawImage(img, op)
}

// drawHeader draws the fixed header, opaque once the page has scrolled
func (r *Renderer) drawHeader(screen *ebiten.Image, pg *page.Page) {
	w := float32(screen.Bounds().Dx())
	if pg.Scrolled() {
		vector.DrawFilledRect(screen, 0, 0, w, headerHeight, colorHeaderScrolled, false)
		vector.StrokeLine(screen, 0, headerHeight, w, headerHeight, 1, colorHeaderBorder, false)
	} else {
		vector.DrawFilledRect(screen, 0, 0, w, headerHeight, colorHeader, false)
	}

	nav := ""
	for i := 0; i < pg.Sections() && i < len(sectionTitles); i++ {
		nav += fmt.Sprintf("  [%d] %s", i+1, sectionTitles[i])
	}
	ebitenutil.DebugPrintAt(screen, "portfolio"+nav, headerTextX, headerTextY)
}

// drawCursor draws the custom cursor dot and its trailing ring
func (r *Renderer) drawCursor(screen *ebiten.Image, cur *cursor.Follower) {
	if !cur.Visible() {
		return
	}
	dotR, ringR := cursorDotRadius, cursorRingRadius
	if cur.Hovering() {
		dotR *= cursorHoverScale
		ringR *= cursorHoverScale
	}
	rx, ry := cur.Ring()
	vector.StrokeCircle(screen, float32(rx), float32(ry), float32(ringR), 1.5, colorCursorRing, true)
	dx, dy := cur.Dot()
	vector.DrawFilledCircle(screen, float32(dx), float32(dy), float32(dotR), colorCursorDot, true)
}
