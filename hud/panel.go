// Package hud formats the on-screen statistics panel.
package hud

import (
	"fmt"
	"time"
)

// Stats is the snapshot the panel displays
type Stats struct {
	Particles int
	State     string
	Frames    uint64
	TPS       float64
	ScrollY   float64
}

// Panel formats field statistics; the particle count counts up whenever it changes
type Panel struct {
	Visible bool

	particles *Counter
	target    int
}

// NewPanel creates a visible panel
func NewPanel(now time.Time) *Panel {
	return &Panel{
		Visible:   true,
		particles: NewCounter(0, "", now),
	}
}

// Toggle flips visibility; showing it again replays the count-up
func (p *Panel) Toggle(now time.Time) {
	p.Visible = !p.Visible
	if p.Visible {
		p.particles.Restart(float64(p.target), now)
	}
}

// Lines returns the panel text for the given stats
func (p *Panel) Lines(s Stats, now time.Time) []string {
	if s.Particles != p.target {
		p.target = s.Particles
		p.particles.Restart(float64(s.Particles), now)
	}
	return []string{
		"particles " + p.particles.Text(now),
		"state     " + s.State,
		fmt.Sprintf("frames    %d", s.Frames),
		fmt.Sprintf("tps       %.1f", s.TPS),
		fmt.Sprintf("scroll    %.0f", s.ScrollY),
	}
}
