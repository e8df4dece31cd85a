package game

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// sectionKeys jump to the page sections in order
var sectionKeys = []ebiten.Key{ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5, ebiten.Key6}

// handleInput processes window and page input. It returns ebiten.Termination on quit.
func (g *Game) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	// Alt+Enter toggles fullscreen
	altPressed := ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight)
	if altPressed && inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.panel.Toggle(g.now())
	}

	g.handleScroll()
	g.handlePointer()
	return nil
}

// handleScroll maps the wheel and navigation keys onto the page
func (g *Game) handleScroll() {
	_, wheelY := ebiten.Wheel()
	if wheelY != 0 {
		g.page.ScrollBy(-wheelY * g.config.ScrollStep)
	}

	_, viewportH := g.viewport()
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		g.page.ScrollBy(g.config.ScrollStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		g.page.ScrollBy(-g.config.ScrollStep)
	case inpututil.IsKeyJustPressed(ebiten.KeyPageDown), inpututil.IsKeyJustPressed(ebiten.KeySpace):
		g.page.ScrollBy(float64(viewportH))
	case inpututil.IsKeyJustPressed(ebiten.KeyPageUp):
		g.page.ScrollBy(-float64(viewportH))
	case inpututil.IsKeyJustPressed(ebiten.KeyHome):
		g.page.ScrollToSection(0)
	case inpututil.IsKeyJustPressed(ebiten.KeyEnd):
		g.page.ScrollToSection(g.page.Sections() - 1)
	}

	for i, key := range sectionKeys {
		if i < g.page.Sections() && inpututil.IsKeyJustPressed(key) {
			g.page.ScrollToSection(i)
		}
	}

	g.page.Step()
}

// handlePointer forwards the cursor position to the field and the custom cursor
func (g *Game) handlePointer() {
	x, y := ebiten.CursorPosition()
	w, h := g.viewport()
	inside := ebiten.IsFocused() && x >= 0 && y >= 0 && x < w && y < h

	g.cursor.SetInside(inside)
	g.cursor.SetHovering(inside && float64(y) < headerHeight)

	if x != g.lastCursorX || y != g.lastCursorY {
		g.lastCursorX, g.lastCursorY = x, y
		g.cursor.Move(float64(x), float64(y))
		g.animator.OnPointerMove(float64(x), float64(y))
	}
	g.cursor.Step()
}
