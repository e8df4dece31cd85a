package game

import (
	"time"

	"particlefield/field"
	"particlefield/page"
)

// Config holds host configuration
type Config struct {
	// ScreenWidth is the initial window width in pixels
	ScreenWidth int

	// ScreenHeight is the initial window height in pixels
	ScreenHeight int

	// ScrollStep is the page scroll distance per wheel notch or arrow key
	ScrollStep float64

	// ShowHUD shows the statistics panel at startup
	ShowHUD bool

	// CustomCursor replaces the system cursor with the dot and ring
	CustomCursor bool

	// ProfileDir enables frame-drop profiling into this directory when set
	ProfileDir string

	// ProfileTPSThreshold is the ticks-per-second rate below which a profile is captured
	ProfileTPSThreshold float64

	// ProfileWarmup ignores slow frames for this long after startup
	ProfileWarmup time.Duration

	// Field configures the particle field
	Field field.Config

	// Page configures the virtual page around the hero
	Page page.Config
}

// DefaultConfig returns a default configuration
func DefaultConfig() Config {
	return Config{
		ScreenWidth:         1440,
		ScreenHeight:        900,
		ScrollStep:          60,
		ShowHUD:             true,
		CustomCursor:        true,
		ProfileTPSThreshold: 45,
		ProfileWarmup:       3 * time.Second,
		Field:               field.DefaultConfig(),
		Page:                page.DefaultConfig(),
	}
}
