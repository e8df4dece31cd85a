package hud

import (
	"strings"
	"testing"
	"time"
)

func TestPanelCountsUpToParticleCount(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	o := NewPanel(start)
	stats := Stats{Particles: 80, State: "RUNNING", Frames: 12, TPS: 60}

	lines := o.Lines(stats, start)
	if lines[0] != "particles 0" {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "RUNNING") {
		t.Errorf("state line = %q", lines[1])
	}

	lines = o.Lines(stats, start.Add(CounterDuration))
	if lines[0] != "particles 80" {
		t.Errorf("settled line = %q", lines[0])
	}
}

func TestPanelToggleReplays(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	o := NewPanel(start)
	stats := Stats{Particles: 50}
	o.Lines(stats, start)

	later := start.Add(time.Minute)
	o.Toggle(later)
	if o.Visible {
		t.Fatal("panel still visible after toggle")
	}
	o.Toggle(later)
	if !o.Visible {
		t.Fatal("panel hidden after second toggle")
	}
	if got := o.Lines(stats, later)[0]; got != "particles 0" {
		t.Errorf("count-up not replayed: %q", got)
	}
}
