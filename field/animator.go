package field

import (
	"math/rand"
	"time"
)

// State is the run state of the animator's frame loop
type State int

const (
	Running State = iota
	Paused
)

func (s State) String() string {
	switch s {
	case Running:
		return "RUNNING"
	case Paused:
		return "PAUSED"
	default:
		return "UNKNOWN"
	}
}

// Animator owns a fixed set of particles and drives their frame loop.
// All methods must be called from the goroutine that ticks the scheduler.
// Methods on a nil *Animator do nothing.
type Animator struct {
	cfg       Config
	surface   Surface
	scheduler Scheduler

	particles []Particle
	pointer   vec2
	width     float64
	height    float64

	started bool
	running bool
	pending bool // a frame callback is queued on the scheduler
	frames  uint64
}

// New sizes the surface to the viewport and creates the particle set.
// It returns nil when surface is nil, leaving the field inactive.
func New(cfg Config, surface Surface, scheduler Scheduler, width, height int) *Animator {
	if surface == nil || scheduler == nil {
		return nil
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	a := &Animator{
		cfg:       cfg,
		surface:   surface,
		scheduler: scheduler,
		running:   true,
	}
	a.resize(width, height)

	count := cfg.ParticleCount(width)
	a.particles = make([]Particle, count)
	for i := range a.particles {
		a.particles[i] = newParticle(rng, cfg, a.width, a.height)
	}
	return a
}

// Start runs the first frame cycle now and keeps the loop scheduling itself.
// Calls after the first are ignored.
func (a *Animator) Start() {
	if a == nil || a.started {
		return
	}
	a.started = true
	a.frame()
}

// frame is one advance+render cycle; it reschedules itself while running
func (a *Animator) frame() {
	a.pending = false
	if !a.running {
		return
	}
	a.AdvanceFrame()
	a.Render()
	a.frames++
	a.requestFrame()
}

func (a *Animator) requestFrame() {
	a.pending = true
	a.scheduler.RequestFrame(a.frame)
}

func (a *Animator) resize(width, height int) {
	a.surface.Resize(width, height)
	a.width = float64(width)
	a.height = float64(height)
}

// OnResize resizes the surface. Particle positions are kept as they are.
func (a *Animator) OnResize(width, height int) {
	if a == nil {
		return
	}
	a.resize(width, height)
}

// OnPointerMove records the pointer position used by the next frame
func (a *Animator) OnPointerMove(x, y float64) {
	if a == nil {
		return
	}
	a.pointer = vec2{x: x, y: y}
}

// AdvanceFrame moves every particle one step
func (a *Animator) AdvanceFrame() {
	if a == nil {
		return
	}
	for i := range a.particles {
		a.particles[i].update(a.cfg, a.pointer, a.width, a.height)
	}
}

// Render clears the surface and draws particles and their connection lines
func (a *Animator) Render() {
	if a == nil {
		return
	}
	a.surface.Clear()
	for _, p := range a.particles {
		a.surface.FillCircle(p.X, p.Y, p.Radius, withOpacity(a.cfg.ParticleColor, p.Opacity))
	}
	for _, c := range connections(a.particles, a.cfg) {
		p, q := a.particles[c.i], a.particles[c.j]
		a.surface.StrokeLine(p.X, p.Y, q.X, q.Y, a.cfg.LineWidth, withOpacity(a.cfg.LineColor, c.opacity))
	}
}

// SetVisible pauses or resumes the frame loop. Resuming requests a frame on the
// next tick unless one is already queued. Particle state is left untouched.
// Before Start it only records the state.
func (a *Animator) SetVisible(visible bool) {
	if a == nil {
		return
	}
	a.running = visible
	if visible && a.started && !a.pending {
		a.requestFrame()
	}
}

// State reports whether the loop is running or paused
func (a *Animator) State() State {
	if a == nil || !a.running {
		return Paused
	}
	return Running
}

// Particles returns a copy of the particle set
func (a *Animator) Particles() []Particle {
	if a == nil {
		return nil
	}
	out := make([]Particle, len(a.particles))
	copy(out, a.particles)
	return out
}

// Count returns the number of particles
func (a *Animator) Count() int {
	if a == nil {
		return 0
	}
	return len(a.particles)
}

// Pointer returns the last recorded pointer position
func (a *Animator) Pointer() (float64, float64) {
	if a == nil {
		return 0, 0
	}
	return a.pointer.x, a.pointer.y
}

// Size returns the current surface dimensions
func (a *Animator) Size() (float64, float64) {
	if a == nil {
		return 0, 0
	}
	return a.width, a.height
}

// Frames returns the number of completed frame cycles
func (a *Animator) Frames() uint64 {
	if a == nil {
		return 0
	}
	return a.frames
}
