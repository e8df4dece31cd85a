package term

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"particlefield/field"
)

// Config configures the terminal host
type Config struct {
	// CellW and CellH are the virtual pixels covered by one terminal cell
	CellW, CellH int

	// TickRate is the interval between frames
	TickRate time.Duration

	// MinIntensity and Gain control which dots light up and how bright
	MinIntensity float64
	Gain         float64

	// Field configures the particle field
	Field field.Config
}

// DefaultConfig returns a configuration sized so the field keeps its pixel tunables
func DefaultConfig() Config {
	return Config{
		CellW:        8,
		CellH:        16,
		TickRate:     time.Second / 60,
		MinIntensity: 0.04,
		Gain:         1.5,
		Field:        field.DefaultConfig(),
	}
}

// statusRows are reserved at the bottom of the screen for the status line
const statusRows = 1

// session holds the terminal host state; it is only touched by the Run goroutine
type session struct {
	cfg      Config
	screen   tcell.Screen
	grid     *Grid
	queue    *field.FrameQueue
	animator *field.Animator
	focused  bool
	paused   bool // paused by the user
}

func newSession(screen tcell.Screen, cfg Config) *session {
	grid := NewGrid(float64(cfg.CellW)/dotsPerCellX, float64(cfg.CellH)/dotsPerCellY, cfg.MinIntensity, cfg.Gain)
	queue := field.NewFrameQueue()
	cols, rows := screen.Size()
	s := &session{
		cfg:     cfg,
		screen:  screen,
		grid:    grid,
		queue:   queue,
		focused: true,
	}
	s.animator = field.New(cfg.Field, grid, queue, cols*cfg.CellW, fieldRows(rows)*cfg.CellH)
	return s
}

// fieldRows is the number of terminal rows left for the field
func fieldRows(rows int) int {
	return max(rows-statusRows, 0)
}

// handle applies one terminal event; it returns false when the user quits
func (s *session) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case 'p':
				s.paused = !s.paused
				s.updateVisibility()
			}
		}

	case *tcell.EventResize:
		cols, rows := ev.Size()
		s.animator.OnResize(cols*s.cfg.CellW, fieldRows(rows)*s.cfg.CellH)
		s.screen.Sync()

	case *tcell.EventMouse:
		x, y := ev.Position()
		s.animator.OnPointerMove(
			float64(x*s.cfg.CellW+s.cfg.CellW/2),
			float64(y*s.cfg.CellH+s.cfg.CellH/2),
		)

	case *tcell.EventFocus:
		s.focused = ev.Focused
		s.updateVisibility()
	}
	return true
}

// updateVisibility runs the field only while the terminal has focus and the user has not paused it
func (s *session) updateVisibility() {
	s.animator.SetVisible(s.focused && !s.paused)
}

// tick advances the frame queue and redraws the screen
func (s *session) tick() {
	s.queue.Tick()

	_, rows := s.screen.Size()
	s.grid.Flush(s.screen, fieldRows(rows))
	s.drawStatus(rows - 1)
	s.screen.Show()
}

// drawStatus writes the status line on row y
func (s *session) drawStatus(y int) {
	if y < 0 {
		return
	}
	cols, _ := s.screen.Size()
	line := fmt.Sprintf(" particles %d  %s  frames %d   p pause  q quit",
		s.animator.Count(), s.animator.State(), s.animator.Frames())
	style := tcell.StyleDefault.Foreground(tcell.NewRGBColor(160, 160, 190))
	x := 0
	for _, r := range line {
		if x >= cols {
			break
		}
		s.screen.SetContent(x, y, r, nil, style)
		x++
	}
	for ; x < cols; x++ {
		s.screen.SetContent(x, y, ' ', nil, style)
	}
}

// Run drives the particle field on an initialized screen until the user quits
// or ctx is cancelled. The caller owns the screen and calls Fini afterwards.
func Run(ctx context.Context, screen tcell.Screen, cfg Config) error {
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.EnableFocus()
	screen.HideCursor()
	screen.Clear()

	s := newSession(screen, cfg)
	if s.animator == nil {
		return errors.New("particle field did not start")
	}
	s.animator.Start()

	ticker := time.NewTicker(cfg.TickRate)
	defer ticker.Stop()

	events := make(chan tcell.Event, 100)
	quit := make(chan struct{})
	defer close(quit)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-quit:
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev := <-events:
			if !s.handle(ev) {
				return nil
			}

		case <-ticker.C:
			s.tick()
		}
	}
}
