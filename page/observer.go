package page

// Observer reports when a target region enters or leaves a root viewport.
// A target counts as visible when some of it intersects the root and the
// visible fraction of its area reaches Threshold.
type Observer struct {
	Threshold float64

	observed bool
	visible  bool
	ratio    float64
}

// NewObserver creates an observer with the given intersection threshold
func NewObserver(threshold float64) *Observer {
	return &Observer{Threshold: threshold}
}

// Observe recomputes visibility. changed is true on the first call and
// whenever visibility flips, mirroring an intersection observer callback.
func (o *Observer) Observe(target, root Rect) (visible, changed bool) {
	area := target.Area()
	o.ratio = 0
	if area > 0 {
		o.ratio = target.Intersect(root).Area() / area
	}

	visible = o.ratio > 0 && o.ratio >= o.Threshold
	changed = !o.observed || visible != o.visible
	o.observed = true
	o.visible = visible
	return visible, changed
}

// Ratio returns the intersection ratio from the last observation
func (o *Observer) Ratio() float64 {
	return o.ratio
}

// Visible returns the visibility from the last observation
func (o *Observer) Visible() bool {
	return o.visible
}
