package hud

import (
	"fmt"
	"math"
	"strconv"
	"time"
)

// CounterDuration is how long a counter takes to reach its target
const CounterDuration = 1800 * time.Millisecond

// Counter animates a number from zero up to a target with an ease-out cubic curve
type Counter struct {
	Target   float64
	Suffix   string
	Float    bool // format with two decimals instead of flooring
	Duration time.Duration

	start time.Time
}

// NewCounter starts a counter at now
func NewCounter(target float64, suffix string, now time.Time) *Counter {
	return &Counter{
		Target:   target,
		Suffix:   suffix,
		Float:    target != math.Trunc(target),
		Duration: CounterDuration,
		start:    now,
	}
}

// Restart animates toward a new target from zero
func (c *Counter) Restart(target float64, now time.Time) {
	c.Target = target
	c.Float = target != math.Trunc(target)
	c.start = now
}

// Progress returns the linear progress in [0, 1]
func (c *Counter) Progress(now time.Time) float64 {
	if c.Duration <= 0 {
		return 1
	}
	p := float64(now.Sub(c.start)) / float64(c.Duration)
	return min(max(p, 0), 1)
}

// Value returns the eased value at now
func (c *Counter) Value(now time.Time) float64 {
	return EaseOutCubic(c.Progress(now)) * c.Target
}

// Text returns the formatted value at now
func (c *Counter) Text(now time.Time) string {
	v := c.Value(now)
	if c.Float {
		return fmt.Sprintf("%.2f%s", v, c.Suffix)
	}
	return strconv.Itoa(int(math.Floor(v))) + c.Suffix
}

// Done reports whether the counter reached its target
func (c *Counter) Done(now time.Time) bool {
	return c.Progress(now) >= 1
}

// EaseOutCubic maps linear progress t in [0, 1] to 1 - (1-t)^3
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}
