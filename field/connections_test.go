package field

import (
	"math"
	"testing"
)

func TestConnectionOpacity(t *testing.T) {
	tests := []struct {
		name string
		dist float64
		want float64
	}{
		{"Zero distance", 0, 0.15},
		{"Half way", 75, 0.075},
		{"At limit", 150, 0},
		{"Beyond limit", 400, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ConnectionOpacity(tt.dist, 150, 0.15)
			if math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("ConnectionOpacity(%v) = %v, want %v", tt.dist, got, tt.want)
			}
		})
	}
}

func TestConnectionOpacityMonotonic(t *testing.T) {
	prev := ConnectionOpacity(0, 150, 0.15)
	for d := 0.5; d <= 150; d += 0.5 {
		got := ConnectionOpacity(d, 150, 0.15)
		if got >= prev {
			t.Fatalf("opacity not decreasing at %v: %v >= %v", d, got, prev)
		}
		prev = got
	}
	if prev != 0 {
		t.Errorf("expected exactly 0 at 150, got %v", prev)
	}

	near := ConnectionOpacity(1e-9, 150, 0.15)
	if math.Abs(near-0.15) > 1e-9 {
		t.Errorf("expected opacity near 0.15 close to zero distance, got %v", near)
	}
}

func TestConnectionsPairs(t *testing.T) {
	cfg := DefaultConfig()
	particles := []Particle{
		{X: 0, Y: 0},
		{X: 100, Y: 0},
		{X: 300, Y: 0},
		{X: 0, Y: 149.9},
	}

	got := connections(particles, cfg)

	want := map[[2]int]bool{{0, 1}: true, {0, 3}: true}
	if len(got) != len(want) {
		t.Fatalf("expected %d connections, got %d: %+v", len(want), len(got), got)
	}
	for _, c := range got {
		if !want[[2]int{c.i, c.j}] {
			t.Errorf("unexpected connection %d-%d", c.i, c.j)
		}
		if c.i >= c.j {
			t.Errorf("pair %d-%d not ordered", c.i, c.j)
		}
		if c.opacity <= 0 || c.opacity > cfg.ConnectionOpacity {
			t.Errorf("opacity %v out of range for %d-%d", c.opacity, c.i, c.j)
		}
	}
}
