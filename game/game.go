package game

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"particlefield/cursor"
	"particlefield/field"
	"particlefield/hud"
	"particlefield/page"
	"particlefield/perf"
)

// Game hosts the particle field on a scrollable page inside an ebiten window
type Game struct {
	config   Config
	queue    *field.FrameQueue
	canvas   *Canvas
	animator *field.Animator
	page     *page.Page
	cursor   *cursor.Follower
	panel    *hud.Panel
	renderer *Renderer
	profiler *perf.Profiler

	// viewport size reported by Layout, applied on the next Update
	width, height    int
	layoutW, layoutH int

	started       bool
	lastCursorX   int
	lastCursorY   int
	gameStartTime time.Time
	now           func() time.Time
}

// NewGame creates a new game instance
func NewGame(config Config) (*Game, error) {
	queue := field.NewFrameQueue()
	canvas := NewCanvas()
	animator := field.New(config.Field, canvas, queue, config.ScreenWidth, config.ScreenHeight)

	g := &Game{
		config:        config,
		queue:         queue,
		canvas:        canvas,
		animator:      animator,
		page:          page.New(config.Page, config.ScreenWidth, config.ScreenHeight),
		cursor:        cursor.NewFollower(cursor.DefaultLag),
		renderer:      NewRenderer(canvas),
		width:         config.ScreenWidth,
		height:        config.ScreenHeight,
		layoutW:       config.ScreenWidth,
		layoutH:       config.ScreenHeight,
		lastCursorX:   -1,
		lastCursorY:   -1,
		gameStartTime: time.Now(),
		now:           time.Now,
	}
	g.panel = hud.NewPanel(g.now())
	g.panel.Visible = config.ShowHUD

	if config.ProfileDir != "" {
		profiler, err := perf.NewProfiler(config.ProfileDir, 5*time.Second, 10*time.Second)
		if err != nil {
			return nil, fmt.Errorf("failed to create profiler: %w", err)
		}
		g.profiler = profiler
	}

	if config.CustomCursor {
		ebiten.SetCursorMode(ebiten.CursorModeHidden)
	}

	log.Printf("particle field: %d particles on %dx%d", animator.Count(), config.ScreenWidth, config.ScreenHeight)
	return g, nil
}

// Update advances input, page state and the field's frame queue by one tick
func (g *Game) Update() error {
	if !g.started {
		g.started = true
		g.animator.Start()
	}

	g.applyLayout()

	if err := g.handleInput(); err != nil {
		return err
	}

	if visible, changed := g.page.ObserveHero(); changed {
		g.animator.SetVisible(visible)
	}

	g.queue.Tick()
	g.checkFrameRate()
	return nil
}

// applyLayout forwards a viewport size change to the field and the page
func (g *Game) applyLayout() {
	if g.layoutW == g.width && g.layoutH == g.height {
		return
	}
	g.width, g.height = g.layoutW, g.layoutH
	g.animator.OnResize(g.width, g.height)
	g.page.Resize(g.width, g.height)
}

// checkFrameRate captures a profile when the tick rate drops after warm-up
func (g *Game) checkFrameRate() {
	if g.profiler == nil || time.Since(g.gameStartTime) < g.config.ProfileWarmup {
		return
	}
	tps := ebiten.ActualTPS()
	if tps >= g.config.ProfileTPSThreshold || g.profiler.IsProfiling() {
		return
	}
	reason := fmt.Sprintf("tps%.0f-particles%d", tps, g.animator.Count())
	if err := g.profiler.CaptureProfile(reason); err == nil {
		log.Printf("Frame rate drop detected (%.0f TPS), capturing profile", tps)
	}
}

// Draw renders the page, the field canvas and the overlays
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.page, g.cursor, g.config.CustomCursor)

	if g.panel.Visible {
		drawOverlay(screen, g.panel.Lines(g.stats(), g.now()))
	}
}

// stats snapshots the values shown on the panel
func (g *Game) stats() hud.Stats {
	return hud.Stats{
		Particles: g.animator.Count(),
		State:     g.animator.State().String(),
		Frames:    g.animator.Frames(),
		TPS:       ebiten.ActualTPS(),
		ScrollY:   g.page.ScrollY(),
	}
}

// viewport returns the current viewport size
func (g *Game) viewport() (int, int) {
	return g.width, g.height
}

// Layout tracks the window size; the screen always matches it one to one
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.layoutW, g.layoutH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

// Close waits for any running profile capture to finish
func (g *Game) Close() {
	if g.profiler != nil {
		g.profiler.Wait()
	}
}
