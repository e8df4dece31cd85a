// Package term hosts the particle field in a terminal, drawing with braille cells.
package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"
)

// Braille cells are 2 dots wide and 4 dots tall
const (
	dotsPerCellX = 2
	dotsPerCellY = 4
	brailleBase  = 0x2800
)

// brailleBits maps a dot position inside a cell to its bit in the braille block
var brailleBits = [dotsPerCellY][dotsPerCellX]rune{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

// Grid is a field.Surface that rasterizes into braille dots.
// Each dot covers DotW x DotH virtual pixels.
type Grid struct {
	DotW, DotH   float64
	MinIntensity float64 // dots dimmer than this stay off
	Gain         float64 // brightness multiplier applied to intensity

	dotsW, dotsH int
	intensity    []float64
	colors       []color.NRGBA
}

// NewGrid creates an empty grid
func NewGrid(dotW, dotH, minIntensity, gain float64) *Grid {
	return &Grid{DotW: dotW, DotH: dotH, MinIntensity: minIntensity, Gain: gain}
}

// Resize sets the virtual pixel size and clears all dots
func (g *Grid) Resize(width, height int) {
	g.dotsW = max(int(float64(width)/g.DotW), 0)
	g.dotsH = max(int(float64(height)/g.DotH), 0)
	g.intensity = make([]float64, g.dotsW*g.dotsH)
	g.colors = make([]color.NRGBA, g.dotsW*g.dotsH)
}

// Clear turns every dot off
func (g *Grid) Clear() {
	clear(g.intensity)
}

// FillCircle lights the dots whose centers fall within the circle, at least the center dot
func (g *Grid) FillCircle(x, y, radius float64, clr color.Color) {
	c, opacity := splitAlpha(clr)
	cx, cy := int(math.Floor(x/g.DotW)), int(math.Floor(y/g.DotH))
	rx := int(radius / g.DotW)
	ry := int(radius / g.DotH)
	for dy := -ry; dy <= ry; dy++ {
		for dx := -rx; dx <= rx; dx++ {
			px := (float64(cx+dx) + 0.5) * g.DotW
			py := (float64(cy+dy) + 0.5) * g.DotH
			if (dx == 0 && dy == 0) || math.Hypot(px-x, py-y) <= radius {
				g.plot(cx+dx, cy+dy, opacity, c)
			}
		}
	}
}

// StrokeLine lights the dots along the segment; width is ignored at dot resolution
func (g *Grid) StrokeLine(x1, y1, x2, y2, width float64, clr color.Color) {
	c, opacity := splitAlpha(clr)
	ax, ay := x1/g.DotW, y1/g.DotH
	bx, by := x2/g.DotW, y2/g.DotH
	steps := int(math.Ceil(math.Max(math.Abs(bx-ax), math.Abs(by-ay))))
	if steps == 0 {
		g.plot(int(math.Floor(ax)), int(math.Floor(ay)), opacity, c)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		g.plot(int(math.Floor(ax+(bx-ax)*t)), int(math.Floor(ay+(by-ay)*t)), opacity, c)
	}
}

// plot keeps the brightest contribution per dot
func (g *Grid) plot(dx, dy int, opacity float64, c color.NRGBA) {
	if dx < 0 || dy < 0 || dx >= g.dotsW || dy >= g.dotsH {
		return
	}
	i := dy*g.dotsW + dx
	if opacity > g.intensity[i] {
		g.intensity[i] = opacity
		g.colors[i] = c
	}
}

// Cell returns the braille rune and foreground color of terminal cell (x, y).
// An empty cell returns a space.
func (g *Grid) Cell(x, y int) (rune, color.NRGBA) {
	var mask rune
	best := 0.0
	var c color.NRGBA
	for row := 0; row < dotsPerCellY; row++ {
		for col := 0; col < dotsPerCellX; col++ {
			dx, dy := x*dotsPerCellX+col, y*dotsPerCellY+row
			if dx >= g.dotsW || dy >= g.dotsH {
				continue
			}
			v := g.intensity[dy*g.dotsW+dx]
			if v < g.MinIntensity || v == 0 {
				continue
			}
			mask |= brailleBits[row][col]
			if v > best {
				best = v
				c = g.colors[dy*g.dotsW+dx]
			}
		}
	}
	if mask == 0 {
		return ' ', color.NRGBA{}
	}
	scale := math.Min(best*g.Gain, 1)
	return brailleBase + mask, color.NRGBA{
		R: uint8(float64(c.R) * scale),
		G: uint8(float64(c.G) * scale),
		B: uint8(float64(c.B) * scale),
		A: 255,
	}
}

// Cells returns the grid size in terminal cells
func (g *Grid) Cells() (int, int) {
	return (g.dotsW + dotsPerCellX - 1) / dotsPerCellX, (g.dotsH + dotsPerCellY - 1) / dotsPerCellY
}

// Flush writes the grid to screen, leaving the last rows for the caller
func (g *Grid) Flush(screen tcell.Screen, rows int) {
	cols, cellRows := g.Cells()
	rows = min(rows, cellRows)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			r, c := g.Cell(x, y)
			style := tcell.StyleDefault
			if r != ' ' {
				style = style.Foreground(tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)))
			}
			screen.SetContent(x, y, r, nil, style)
		}
	}
}

// splitAlpha separates a color into its opaque base and opacity in [0, 1]
func splitAlpha(clr color.Color) (color.NRGBA, float64) {
	c := color.NRGBAModel.Convert(clr).(color.NRGBA)
	opacity := float64(c.A) / 255
	c.A = 255
	return c, opacity
}
