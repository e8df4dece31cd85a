package field

import "image/color"

type circleCall struct {
	x, y, radius float64
	clr          color.NRGBA
}

type lineCall struct {
	x1, y1, x2, y2, width float64
	clr                   color.NRGBA
}

// recordingSurface captures draw calls for inspection
type recordingSurface struct {
	width, height int
	resizes       int
	clears        int
	circles       []circleCall
	lines         []lineCall
}

func (s *recordingSurface) Resize(width, height int) {
	s.width, s.height = width, height
	s.resizes++
}

func (s *recordingSurface) Clear() {
	s.clears++
	s.circles = s.circles[:0]
	s.lines = s.lines[:0]
}

func (s *recordingSurface) FillCircle(x, y, radius float64, clr color.Color) {
	s.circles = append(s.circles, circleCall{x, y, radius, color.NRGBAModel.Convert(clr).(color.NRGBA)})
}

func (s *recordingSurface) StrokeLine(x1, y1, x2, y2, width float64, clr color.Color) {
	s.lines = append(s.lines, lineCall{x1, y1, x2, y2, width, color.NRGBAModel.Convert(clr).(color.NRGBA)})
}
