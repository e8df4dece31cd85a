package field

import "image/color"

// Surface is a 2D drawing target with settable pixel dimensions
type Surface interface {
	// Resize sets the pixel dimensions; contents are discarded
	Resize(width, height int)
	// Clear erases the whole surface
	Clear()
	// FillCircle draws a filled circle centered at (x, y)
	FillCircle(x, y, radius float64, clr color.Color)
	// StrokeLine draws a line segment of the given width
	StrokeLine(x1, y1, x2, y2, width float64, clr color.Color)
}

// withOpacity returns base with its alpha replaced by opacity in [0, 1]
func withOpacity(base color.NRGBA, opacity float64) color.NRGBA {
	if opacity < 0 {
		opacity = 0
	}
	if opacity > 1 {
		opacity = 1
	}
	base.A = uint8(opacity*255 + 0.5)
	return base
}
