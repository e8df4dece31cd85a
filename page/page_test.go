package page

import (
	"math"
	"testing"
)

func TestScrollClamping(t *testing.T) {
	p := New(DefaultConfig(), 1000, 800)

	p.ScrollBy(-100)
	if p.ScrollY() != 0 {
		t.Errorf("scrolled above the page: %v", p.ScrollY())
	}

	p.ScrollBy(1e6)
	if p.ScrollY() != 2400 {
		t.Errorf("ScrollY = %v, want 2400", p.ScrollY())
	}

	p.Resize(1000, 1000)
	if p.ScrollY() != 3000 && p.ScrollY() != 2400 {
		t.Errorf("unexpected scroll after resize: %v", p.ScrollY())
	}
	if p.ScrollY() > p.MaxScroll() {
		t.Errorf("scroll %v beyond max %v", p.ScrollY(), p.MaxScroll())
	}
}

func TestHeaderScrolled(t *testing.T) {
	p := New(DefaultConfig(), 1000, 800)

	tests := []struct {
		y    float64
		want bool
	}{
		{0, false},
		{50, false},
		{51, true},
		{900, true},
	}
	for _, tt := range tests {
		p.ScrollTo(tt.y)
		if got := p.Scrolled(); got != tt.want {
			t.Errorf("Scrolled() at %v = %v, want %v", tt.y, got, tt.want)
		}
	}
}

func TestOrbParallax(t *testing.T) {
	p := New(DefaultConfig(), 1000, 800)

	p.ScrollTo(100)
	want := []float64{10, 15, 20}
	for i, got := range p.OrbOffsets() {
		if math.Abs(got-want[i]) > 1e-9 {
			t.Errorf("orb %d offset = %v, want %v", i, got, want[i])
		}
	}

	// past the hero the offsets freeze at their last values
	p.ScrollTo(799)
	frozen := p.OrbOffsets()
	p.ScrollTo(1500)
	for i, got := range p.OrbOffsets() {
		if got != frozen[i] {
			t.Errorf("orb %d moved beyond the hero: %v -> %v", i, frozen[i], got)
		}
	}
}

func TestHeroVisibilityFollowsScroll(t *testing.T) {
	p := New(DefaultConfig(), 1000, 800)

	if visible, changed := p.ObserveHero(); !visible || !changed {
		t.Fatalf("initial observation = (%v,%v)", visible, changed)
	}

	p.ScrollTo(750)
	if visible, changed := p.ObserveHero(); visible || !changed {
		t.Errorf("after scrolling away = (%v,%v)", visible, changed)
	}

	p.ScrollTo(0)
	if visible, changed := p.ObserveHero(); !visible || !changed {
		t.Errorf("after scrolling back = (%v,%v)", visible, changed)
	}
}

func TestSmoothScrollToSection(t *testing.T) {
	p := New(DefaultConfig(), 1000, 800)

	p.ScrollToSection(2)
	steps := 0
	for p.Step() {
		steps++
		if steps > 1000 {
			t.Fatal("smooth scroll never settled")
		}
	}
	if p.ScrollY() != 1600-64 {
		t.Errorf("ScrollY = %v, want %v", p.ScrollY(), 1600-64)
	}
	if steps < 2 {
		t.Errorf("expected an animated scroll, settled in %d steps", steps)
	}

	p.ScrollToSection(0)
	p.Step()
	p.ScrollBy(10)
	if p.Step() {
		t.Error("manual scroll should cancel the smooth scroll")
	}

	p.ScrollToSection(99)
	if p.Step() {
		t.Error("out of range section started a scroll")
	}
}
