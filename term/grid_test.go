package term

import (
	"image/color"
	"testing"

	"github.com/gdamore/tcell/v2"
)

var testColor = color.NRGBA{R: 139, G: 92, B: 246, A: 128}

func newTestGrid() *Grid {
	g := NewGrid(4, 4, 0.04, 1.5)
	g.Resize(16, 32)
	return g
}

func TestGridCells(t *testing.T) {
	g := newTestGrid()
	cols, rows := g.Cells()
	if cols != 2 || rows != 2 {
		t.Errorf("Cells() = %d,%d, want 2,2", cols, rows)
	}

	g.Resize(0, 0)
	cols, rows = g.Cells()
	if cols != 0 || rows != 0 {
		t.Errorf("Cells() after empty resize = %d,%d, want 0,0", cols, rows)
	}
}

func TestGridFillCircleDotMapping(t *testing.T) {
	tests := []struct {
		name     string
		x, y     float64
		cellX    int
		cellY    int
		wantRune rune
	}{
		{"top left dot", 1, 1, 0, 0, brailleBase + 0x01},
		{"top right dot", 5, 1, 0, 0, brailleBase + 0x08},
		{"third row left", 1, 9, 0, 0, brailleBase + 0x04},
		{"bottom row right", 5, 13, 0, 0, brailleBase + 0x80},
		{"second cell", 9, 17, 1, 1, brailleBase + 0x01},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := newTestGrid()
			g.FillCircle(tt.x, tt.y, 0.5, testColor)
			r, _ := g.Cell(tt.cellX, tt.cellY)
			if r != tt.wantRune {
				t.Errorf("Cell(%d,%d) rune = %U, want %U", tt.cellX, tt.cellY, r, tt.wantRune)
			}
		})
	}
}

func TestGridLargeCircleCoversNeighbors(t *testing.T) {
	g := newTestGrid()
	g.FillCircle(4, 8, 4.5, testColor)
	r, _ := g.Cell(0, 0)
	// dots (0,1) (1,1) (0,2) and (1,2) have centers within 4.5 of (4, 8)
	want := rune(brailleBase + 0x02 + 0x10 + 0x04 + 0x20)
	if r != want {
		t.Errorf("rune = %U, want %U", r, want)
	}
}

func TestGridMinIntensity(t *testing.T) {
	g := newTestGrid()
	g.FillCircle(1, 1, 1, color.NRGBA{R: 255, A: 5})
	if r, _ := g.Cell(0, 0); r != ' ' {
		t.Errorf("dim dot rendered as %U, want space", r)
	}
}

func TestGridBrightnessKeepsMax(t *testing.T) {
	g := newTestGrid()
	g.FillCircle(1, 1, 0.5, color.NRGBA{R: 200, A: 255})
	g.FillCircle(1, 1, 0.5, color.NRGBA{G: 200, A: 40})

	_, c := g.Cell(0, 0)
	if c.R != 200 || c.G != 0 {
		t.Errorf("color = %+v, want brightest contribution kept", c)
	}
}

func TestGridColorScaledByOpacity(t *testing.T) {
	g := newTestGrid()
	g.FillCircle(1, 1, 0.5, testColor)
	_, c := g.Cell(0, 0)
	if c.R == 0 || c.R >= testColor.R {
		t.Errorf("R = %d, want dimmed below %d", c.R, testColor.R)
	}
	if c.A != 255 {
		t.Errorf("A = %d, want 255", c.A)
	}
}

func TestGridStrokeLine(t *testing.T) {
	g := newTestGrid()
	g.StrokeLine(2, 2, 14, 2, 0.8, testColor)

	for x := 0; x < 2; x++ {
		r, _ := g.Cell(x, 0)
		if r != brailleBase+0x09 {
			t.Errorf("Cell(%d,0) = %U, want %U", x, r, rune(brailleBase+0x09))
		}
	}
	if r, _ := g.Cell(0, 1); r != ' ' {
		t.Errorf("Cell(0,1) = %U, want space", r)
	}
}

func TestGridClear(t *testing.T) {
	g := newTestGrid()
	g.FillCircle(1, 1, 0.5, testColor)
	g.Clear()
	if r, _ := g.Cell(0, 0); r != ' ' {
		t.Errorf("after Clear rune = %U, want space", r)
	}
}

func TestGridOutOfBoundsIgnored(t *testing.T) {
	g := newTestGrid()
	g.FillCircle(-10, -10, 0.5, testColor)
	g.FillCircle(100, 100, 0.5, testColor)
	g.StrokeLine(-20, 1, -4, 1, 0.8, testColor)

	cols, rows := g.Cells()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if r, _ := g.Cell(x, y); r != ' ' {
				t.Errorf("Cell(%d,%d) = %U, want space", x, y, r)
			}
		}
	}
}

func TestGridFlush(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer screen.Fini()
	screen.SetSize(2, 2)

	g := newTestGrid()
	g.FillCircle(1, 1, 0.5, testColor)
	g.FillCircle(9, 17, 0.5, testColor)
	g.Flush(screen, 1)

	r, _, style, _ := screen.GetContent(0, 0)
	if r != brailleBase+0x01 {
		t.Errorf("screen rune = %U, want %U", r, rune(brailleBase+0x01))
	}
	_, c := g.Cell(0, 0)
	fg, _, _ := style.Decompose()
	if want := tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B)); fg != want {
		t.Errorf("foreground = %v, want %v", fg, want)
	}

	// rows beyond the limit belong to the caller
	if r, _, _, _ := screen.GetContent(1, 1); r == brailleBase+0x01 {
		t.Errorf("Flush wrote past the row limit")
	}
}
