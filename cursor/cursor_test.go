package cursor

import (
	"math"
	"testing"
)

func TestRingLagsBehindDot(t *testing.T) {
	f := NewFollower(DefaultLag)
	f.Move(100, 200)

	f.Step()
	x, y := f.Ring()
	if math.Abs(x-15) > 1e-9 || math.Abs(y-30) > 1e-9 {
		t.Fatalf("ring after one step = (%v,%v), want (15,30)", x, y)
	}

	for i := 0; i < 200; i++ {
		f.Step()
	}
	x, y = f.Ring()
	if math.Abs(x-100) > 1e-6 || math.Abs(y-200) > 1e-6 {
		t.Errorf("ring did not converge: (%v,%v)", x, y)
	}
	if dx, dy := f.Dot(); dx != 100 || dy != 200 {
		t.Errorf("dot = (%v,%v)", dx, dy)
	}
}

func TestVisibility(t *testing.T) {
	f := NewFollower(DefaultLag)
	if !f.Visible() {
		t.Fatal("new follower should be visible")
	}
	f.SetInside(false)
	if f.Visible() {
		t.Error("follower visible outside the window")
	}
	f.SetHovering(true)
	if !f.Hovering() {
		t.Error("hover state not recorded")
	}
}
