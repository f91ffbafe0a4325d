//go:build !js

package main

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/simukka/henshin-strike/gfx"
)

// upperHalf draws the top pixel of a cell in the foreground color and the
// bottom pixel in the background color.
const upperHalf = '▀'

type textCell struct {
	r    rune
	fg   color.NRGBA
	bold bool
}

// Surface rasterizes gfx calls into a half-block pixel grid: every terminal
// cell holds two vertically stacked pixels. Text is kept on its own layer
// and drawn over the pixels at cell resolution.
type Surface struct {
	// W and H are the logical canvas size the game draws in.
	W, H float64

	cols, rows int
	pw, ph     int
	sx, sy     float64
	pixels     []color.NRGBA
	text       []textCell
	stack      *gfx.StateStack
}

var _ gfx.Surface = (*Surface)(nil)

// NewSurface creates a surface mapping a w x h canvas onto cols x rows cells.
func NewSurface(w, h float64, cols, rows int) *Surface {
	s := &Surface{W: w, H: h, stack: gfx.NewStateStack()}
	s.Resize(cols, rows)
	return s
}

// Resize adapts the pixel grid to a new terminal size.
func (s *Surface) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	s.cols, s.rows = cols, rows
	s.pw, s.ph = cols, rows*2
	s.sx = float64(s.pw) / s.W
	s.sy = float64(s.ph) / s.H
	s.pixels = make([]color.NRGBA, s.pw*s.ph)
	s.text = make([]textCell, cols*rows)
}

// Begin resets the transform state for a new frame.
func (s *Surface) Begin() {
	s.stack.Reset()
}

// CanvasPoint converts a cell position to canvas coordinates.
func (s *Surface) CanvasPoint(col, row int) (float64, float64) {
	return (float64(col) + 0.5) / s.sx, (float64(row)*2 + 1) / s.sy
}

// Pixel returns the rasterized color at pixel (x, y).
func (s *Surface) Pixel(x, y int) color.NRGBA {
	if x < 0 || y < 0 || x >= s.pw || y >= s.ph {
		return color.NRGBA{}
	}
	return s.pixels[y*s.pw+x]
}

// TextAt returns the rune written at a cell, or 0.
func (s *Surface) TextAt(col, row int) rune {
	if col < 0 || row < 0 || col >= s.cols || row >= s.rows {
		return 0
	}
	return s.text[row*s.cols+col].r
}

// Flush copies the frame to the screen and shows it.
func (s *Surface) Flush(screen tcell.Screen) {
	for row := 0; row < s.rows; row++ {
		for col := 0; col < s.cols; col++ {
			top := s.pixels[row*2*s.pw+col]
			bottom := s.pixels[(row*2+1)*s.pw+col]
			if t := s.text[row*s.cols+col]; t.r != 0 {
				bg := blend(top, bottom, 0.5)
				style := tcell.StyleDefault.Foreground(tcellColor(t.fg)).Background(tcellColor(bg)).Bold(t.bold)
				screen.SetContent(col, row, t.r, nil, style)
				continue
			}
			style := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
			screen.SetContent(col, row, upperHalf, nil, style)
		}
	}
	screen.Show()
}

func (s *Surface) Size() (float64, float64) { return s.W, s.H }

func (s *Surface) Clear(c color.NRGBA) {
	c.A = 0xff
	for i := range s.pixels {
		s.pixels[i] = c
	}
	for i := range s.text {
		s.text[i] = textCell{}
	}
}

func (s *Surface) FillRect(x, y, w, h float64, c color.NRGBA) {
	s.fillPolygon(s.stack.RectPolygon(x, y, w, h), s.stack.Tint(c))
}

func (s *Surface) StrokeRect(x, y, w, h, lineWidth float64, c color.NRGBA) {
	pts := s.stack.RectPolygon(x, y, w, h)
	c = s.stack.Tint(c)
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		s.line(a.X, a.Y, b.X, b.Y, c)
	}
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	x, y := s.stack.Point(cx, cy)
	s.disc(x, y, r, s.stack.Tint(c))
}

func (s *Surface) StrokeCircle(cx, cy, r, lineWidth float64, c color.NRGBA) {
	x, y := s.stack.Point(cx, cy)
	c = s.stack.Tint(c)
	const segments = 32
	px, py := x+r, y
	for i := 1; i <= segments; i++ {
		a := 2 * math.Pi * float64(i) / segments
		nx, ny := x+r*math.Cos(a), y+r*math.Sin(a)
		s.line(px, py, nx, ny, c)
		px, py = nx, ny
	}
}

func (s *Surface) Line(x1, y1, x2, y2, lineWidth float64, c color.NRGBA) {
	ax, ay := s.stack.Point(x1, y1)
	bx, by := s.stack.Point(x2, y2)
	s.line(ax, ay, bx, by, s.stack.Tint(c))
}

func (s *Surface) FillPolygon(pts []gfx.Point, c color.NRGBA) {
	dev := make([]gfx.Point, len(pts))
	for i, p := range pts {
		dev[i].X, dev[i].Y = s.stack.Point(p.X, p.Y)
	}
	s.fillPolygon(dev, s.stack.Tint(c))
}

func (s *Surface) FillGradient(x, y, w, h float64, top, bottom color.NRGBA) {
	rows := int(math.Ceil(h * s.sy))
	if rows < 1 {
		rows = 1
	}
	band := h / float64(rows)
	for i := 0; i < rows; i++ {
		c := gfx.Lerp(top, bottom, (float64(i)+0.5)/float64(rows))
		s.FillRect(x, y+band*float64(i), w, band, c)
	}
}

func (s *Surface) FillRadial(cx, cy, r float64, c color.NRGBA) {
	x, y := s.stack.Point(cx, cy)
	c = s.stack.Tint(c)
	s.eachPixel(x-r, y-r, x+r, y+r, func(px, py float64) (color.NRGBA, bool) {
		d := math.Hypot(px-x, py-y)
		if d > r {
			return c, false
		}
		return gfx.ScaleAlpha(c, 1-d/r), true
	})
}

func (s *Surface) Text(str string, x, y float64, style gfx.TextStyle) {
	dx, dy := s.stack.Point(x, y)
	runes := []rune(str)
	// One rune per cell; text is not scaled.
	col := int(dx * s.sx)
	switch style.Align {
	case gfx.AlignCenter:
		col -= len(runes) / 2
	case gfx.AlignRight:
		col -= len(runes)
	}
	row := int(dy * s.sy / 2)
	if row < 0 || row >= s.rows {
		return
	}
	fg := s.stack.Tint(style.Color)
	if fg.A == 0 {
		return
	}
	fg.A = 0xff
	for i, r := range runes {
		c := col + i
		if c < 0 || c >= s.cols {
			continue
		}
		s.text[row*s.cols+c] = textCell{r: r, fg: fg, bold: style.Bold}
	}
}

func (s *Surface) Push()                                { s.stack.Push() }
func (s *Surface) Pop()                                 { s.stack.Pop() }
func (s *Surface) Translate(dx, dy float64)             { s.stack.Translate(dx, dy) }
func (s *Surface) Rotate(rad float64)                   { s.stack.Rotate(rad) }
func (s *Surface) SetAlpha(a float64)                   { s.stack.SetAlpha(a) }
func (s *Surface) SetGlow(blur float64, c color.NRGBA) { s.stack.SetGlow(blur, c) }

// eachPixel visits the pixel centers inside a device-space box and blends
// whatever fn returns. It reports how many pixels were plotted.
func (s *Surface) eachPixel(x0, y0, x1, y1 float64, fn func(px, py float64) (color.NRGBA, bool)) int {
	n := 0
	minX := maxInt(0, int(math.Floor(x0*s.sx)))
	maxX := minInt(s.pw-1, int(math.Ceil(x1*s.sx)))
	minY := maxInt(0, int(math.Floor(y0*s.sy)))
	maxY := minInt(s.ph-1, int(math.Ceil(y1*s.sy)))
	for py := minY; py <= maxY; py++ {
		cy := (float64(py) + 0.5) / s.sy
		for px := minX; px <= maxX; px++ {
			cx := (float64(px) + 0.5) / s.sx
			if c, ok := fn(cx, cy); ok {
				s.plot(px, py, c)
				n++
			}
		}
	}
	return n
}

func (s *Surface) fillPolygon(pts []gfx.Point, c color.NRGBA) {
	if len(pts) < 3 || c.A == 0 {
		return
	}
	x0, y0, x1, y1 := pts[0].X, pts[0].Y, pts[0].X, pts[0].Y
	for _, p := range pts[1:] {
		x0, x1 = math.Min(x0, p.X), math.Max(x1, p.X)
		y0, y1 = math.Min(y0, p.Y), math.Max(y1, p.Y)
	}
	n := s.eachPixel(x0, y0, x1, y1, func(px, py float64) (color.NRGBA, bool) {
		return c, insidePolygon(pts, px, py)
	})
	// Shapes smaller than a pixel still show up as one.
	if n == 0 {
		s.plot(int((x0+x1)/2*s.sx), int((y0+y1)/2*s.sy), c)
	}
}

func (s *Surface) disc(x, y, r float64, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	n := s.eachPixel(x-r, y-r, x+r, y+r, func(px, py float64) (color.NRGBA, bool) {
		return c, math.Hypot(px-x, py-y) <= r
	})
	if n == 0 {
		s.plot(int(x*s.sx), int(y*s.sy), c)
	}
}

// line plots a one pixel wide line between device-space points.
func (s *Surface) line(x1, y1, x2, y2 float64, c color.NRGBA) {
	if c.A == 0 {
		return
	}
	ax, ay := x1*s.sx, y1*s.sy
	bx, by := x2*s.sx, y2*s.sy
	steps := int(math.Ceil(math.Max(math.Abs(bx-ax), math.Abs(by-ay))))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		s.plot(int(ax+(bx-ax)*t), int(ay+(by-ay)*t), c)
	}
}

func (s *Surface) plot(x, y int, c color.NRGBA) {
	if x < 0 || y < 0 || x >= s.pw || y >= s.ph {
		return
	}
	i := y*s.pw + x
	s.pixels[i] = over(s.pixels[i], c)
}

// insidePolygon is the even-odd point in polygon test.
func insidePolygon(pts []gfx.Point, x, y float64) bool {
	in := false
	j := len(pts) - 1
	for i := range pts {
		pi, pj := pts[i], pts[j]
		if (pi.Y > y) != (pj.Y > y) && x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			in = !in
		}
		j = i
	}
	return in
}

// over composites src onto an opaque dst.
func over(dst, src color.NRGBA) color.NRGBA {
	a := float64(src.A) / 0xff
	return color.NRGBA{
		R: uint8(float64(src.R)*a + float64(dst.R)*(1-a)),
		G: uint8(float64(src.G)*a + float64(dst.G)*(1-a)),
		B: uint8(float64(src.B)*a + float64(dst.B)*(1-a)),
		A: 0xff,
	}
}

func blend(a, b color.NRGBA, t float64) color.NRGBA {
	return gfx.Lerp(a, b, t)
}

func tcellColor(c color.NRGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
