package field

import (
	"math"
	"math/rand"
)

// vec2 represents a 2D vector
type vec2 struct {
	x float64
	y float64
}

// Particle represents a single point in the field
type Particle struct {
	X, Y    float64 // position in surface pixels
	VX, VY  float64 // velocity in pixels per frame
	Radius  float64
	Opacity float64
}

// Speed returns the velocity magnitude
func (p Particle) Speed() float64 {
	return math.Hypot(p.VX, p.VY)
}

// newParticle places a particle uniformly on a width x height surface
func newParticle(rng *rand.Rand, cfg Config, width, height float64) Particle {
	return Particle{
		X:       rng.Float64() * width,
		Y:       rng.Float64() * height,
		VX:      (rng.Float64() - 0.5) * 2 * cfg.InitialSpeed,
		VY:      (rng.Float64() - 0.5) * 2 * cfg.InitialSpeed,
		Radius:  cfg.RadiusMin + rng.Float64()*(cfg.RadiusMax-cfg.RadiusMin),
		Opacity: cfg.OpacityMin + rng.Float64()*(cfg.OpacityMax-cfg.OpacityMin),
	}
}

// update advances the particle by one frame: attraction, drag, integration, reflection.
// The order is fixed; reflection tests the position after integration, so a particle
// may sit one step past the edge on the frame its velocity flips.
func (p *Particle) update(cfg Config, pointer vec2, width, height float64) {
	dx := pointer.x - p.X
	dy := pointer.y - p.Y
	dist := math.Sqrt(dx*dx + dy*dy)
	if dist < cfg.AttractionRadius && dist > 0 {
		p.VX += (dx / dist) * cfg.AttractionStrength
		p.VY += (dy / dist) * cfg.AttractionStrength
	}

	p.VX *= cfg.Drag
	p.VY *= cfg.Drag

	p.X += p.VX
	p.Y += p.VY

	if p.X < 0 || p.X > width {
		p.VX = -p.VX
	}
	if p.Y < 0 || p.Y > height {
		p.VY = -p.VY
	}
}
