package field

import "image/color"

// Config holds the tunables of the particle field
type Config struct {
	// MaxParticles caps the particle count regardless of viewport width
	MaxParticles int

	// PixelsPerParticle is the viewport width budgeted per particle
	PixelsPerParticle int

	// InitialSpeed bounds each velocity component at construction: [-InitialSpeed, InitialSpeed)
	InitialSpeed float64

	// RadiusMin and RadiusMax bound the particle radius in pixels
	RadiusMin float64
	RadiusMax float64

	// OpacityMin and OpacityMax bound the particle opacity
	OpacityMin float64
	OpacityMax float64

	// AttractionRadius is the pointer distance below which particles are pulled in
	AttractionRadius float64

	// AttractionStrength is the per-frame velocity added toward the pointer
	AttractionStrength float64

	// Drag multiplies both velocity components every frame
	Drag float64

	// ConnectionDistance is the pair distance below which a line is drawn
	ConnectionDistance float64

	// ConnectionOpacity is the line opacity at distance zero
	ConnectionOpacity float64

	// LineWidth is the stroke width of connection lines
	LineWidth float64

	// ParticleColor and LineColor are opaque base colors; alpha comes from opacity
	ParticleColor color.NRGBA
	LineColor     color.NRGBA

	// Seed drives particle placement; zero seeds from the clock
	Seed int64
}

// DefaultConfig returns the hero canvas configuration
func DefaultConfig() Config {
	return Config{
		MaxParticles:       80,
		PixelsPerParticle:  18,
		InitialSpeed:       0.3,
		RadiusMin:          1.0,
		RadiusMax:          3.0,
		OpacityMin:         0.2,
		OpacityMax:         0.7,
		AttractionRadius:   200,
		AttractionStrength: 0.02,
		Drag:               0.99,
		ConnectionDistance: 150,
		ConnectionOpacity:  0.15,
		LineWidth:          0.8,
		ParticleColor:      color.NRGBA{R: 139, G: 92, B: 246, A: 255},
		LineColor:          color.NRGBA{R: 99, G: 102, B: 241, A: 255},
	}
}

// ParticleCount returns how many particles a viewport of the given width gets
func (c Config) ParticleCount(viewportWidth int) int {
	if viewportWidth <= 0 || c.PixelsPerParticle <= 0 {
		return 0
	}
	return min(c.MaxParticles, viewportWidth/c.PixelsPerParticle)
}
