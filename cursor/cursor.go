// Package cursor implements a custom pointer: a dot pinned to the pointer and
// a ring that trails it.
package cursor

// DefaultLag is the fraction of the remaining distance the ring covers per frame
const DefaultLag = 0.15

// Follower tracks the dot and ring positions
type Follower struct {
	Lag float64

	dotX, dotY   float64
	ringX, ringY float64
	inside       bool
	hovering     bool
}

// NewFollower creates a follower with both markers at the origin
func NewFollower(lag float64) *Follower {
	return &Follower{Lag: lag, inside: true}
}

// Move places the dot at the pointer
func (f *Follower) Move(x, y float64) {
	f.dotX, f.dotY = x, y
}

// Step eases the ring toward the dot by one frame
func (f *Follower) Step() {
	f.ringX += (f.dotX - f.ringX) * f.Lag
	f.ringY += (f.dotY - f.ringY) * f.Lag
}

// SetInside records whether the pointer is inside the window
func (f *Follower) SetInside(inside bool) {
	f.inside = inside
}

// SetHovering records whether the pointer is over an interactive element
func (f *Follower) SetHovering(hovering bool) {
	f.hovering = hovering
}

// Visible reports whether the markers should be drawn
func (f *Follower) Visible() bool {
	return f.inside
}

// Hovering reports whether the markers use their enlarged hover style
func (f *Follower) Hovering() bool {
	return f.hovering
}

// Dot returns the dot position
func (f *Follower) Dot() (float64, float64) {
	return f.dotX, f.dotY
}

// Ring returns the ring position
func (f *Follower) Ring() (float64, float64) {
	return f.ringX, f.ringY
}
