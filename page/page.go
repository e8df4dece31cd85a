package page

// Config describes the virtual page layout
type Config struct {
	// Sections is the page height in viewport heights; the hero is the first
	Sections int

	// HeaderScrollThreshold is the scroll offset past which the header is "scrolled"
	HeaderScrollThreshold float64

	// Orbs is the number of parallax orbs in the hero
	Orbs int

	// OrbBaseSpeed and OrbSpeedStep set orb i's parallax speed: base + i*step
	OrbBaseSpeed float64
	OrbSpeedStep float64

	// HeroThreshold is the intersection ratio at which the hero counts as visible
	HeroThreshold float64

	// HeaderHeight is subtracted from section targets so headings clear the header
	HeaderHeight float64

	// SmoothFactor is the fraction of the remaining distance covered per smooth-scroll step
	SmoothFactor float64
}

// DefaultConfig returns the portfolio page layout
func DefaultConfig() Config {
	return Config{
		Sections:              4,
		HeaderScrollThreshold: 50,
		Orbs:                  3,
		OrbBaseSpeed:          0.1,
		OrbSpeedStep:          0.05,
		HeroThreshold:         0.1,
		HeaderHeight:          64,
		SmoothFactor:          0.2,
	}
}

// Page tracks the scroll position of a page whose first section is the hero
type Page struct {
	cfg     Config
	width   float64
	height  float64 // viewport height
	scrollY float64
	orbs    []float64
	hero    *Observer

	smooth bool
	target float64
}

// New creates a page for a viewport of the given size
func New(cfg Config, width, height int) *Page {
	if cfg.Sections < 1 {
		cfg.Sections = 1
	}
	return &Page{
		cfg:    cfg,
		width:  float64(width),
		height: float64(height),
		orbs:   make([]float64, cfg.Orbs),
		hero:   NewObserver(cfg.HeroThreshold),
	}
}

// Resize updates the viewport size and re-clamps the scroll offset
func (p *Page) Resize(width, height int) {
	p.width = float64(width)
	p.height = float64(height)
	p.ScrollTo(p.scrollY)
}

// ScrollBy scrolls by dy pixels; positive scrolls down. It cancels any smooth scroll.
func (p *Page) ScrollBy(dy float64) {
	p.smooth = false
	p.ScrollTo(p.scrollY + dy)
}

// ScrollToSection starts a smooth scroll that puts section i just below the header
func (p *Page) ScrollToSection(i int) {
	if i < 0 || i >= p.cfg.Sections {
		return
	}
	target := p.SectionRect(i).Y
	if i > 0 {
		target -= p.cfg.HeaderHeight
	}
	p.target = min(max(target, 0), p.MaxScroll())
	p.smooth = true
}

// Step advances a smooth scroll by one frame and reports whether one is in progress
func (p *Page) Step() bool {
	if !p.smooth {
		return false
	}
	remaining := p.target - p.scrollY
	if remaining > -0.5 && remaining < 0.5 {
		p.smooth = false
		p.ScrollTo(p.target)
		return false
	}
	p.ScrollTo(p.scrollY + remaining*p.cfg.SmoothFactor)
	return true
}

// ScrollTo sets the scroll offset, clamped to the page
func (p *Page) ScrollTo(y float64) {
	p.scrollY = min(max(y, 0), p.MaxScroll())

	// orbs only track scrolling while the hero is still in view
	if p.scrollY < p.height {
		for i := range p.orbs {
			p.orbs[i] = p.scrollY * (p.cfg.OrbBaseSpeed + float64(i)*p.cfg.OrbSpeedStep)
		}
	}
}

// ScrollY returns the current scroll offset
func (p *Page) ScrollY() float64 {
	return p.scrollY
}

// Height returns the full page height
func (p *Page) Height() float64 {
	return p.height * float64(p.cfg.Sections)
}

// MaxScroll returns the largest valid scroll offset
func (p *Page) MaxScroll() float64 {
	return max(p.Height()-p.height, 0)
}

// Scrolled reports whether the header should switch to its scrolled style
func (p *Page) Scrolled() bool {
	return p.scrollY > p.cfg.HeaderScrollThreshold
}

// OrbOffsets returns the vertical parallax offset of each orb
func (p *Page) OrbOffsets() []float64 {
	out := make([]float64, len(p.orbs))
	copy(out, p.orbs)
	return out
}

// HeroRect returns the hero section in page coordinates
func (p *Page) HeroRect() Rect {
	return Rect{Width: p.width, Height: p.height}
}

// ViewportRect returns the visible part of the page
func (p *Page) ViewportRect() Rect {
	return Rect{Y: p.scrollY, Width: p.width, Height: p.height}
}

// SectionRect returns section i in page coordinates
func (p *Page) SectionRect(i int) Rect {
	return Rect{Y: float64(i) * p.height, Width: p.width, Height: p.height}
}

// Sections returns the number of sections on the page
func (p *Page) Sections() int {
	return p.cfg.Sections
}

// ObserveHero reports hero visibility for the current scroll offset
func (p *Page) ObserveHero() (visible, changed bool) {
	return p.hero.Observe(p.HeroRect(), p.ViewportRect())
}
