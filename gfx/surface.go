// Package gfx is the drawing vocabulary shared by every frontend. Game code
// only talks to Surface; the canvas, Ebitengine and terminal backends each
// translate it to their own primitives.
package gfx

import "image/color"

// Align is the horizontal anchor of a text run.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// TextStyle describes how a string is drawn. Size is the font height in
// pixels; y passed to Surface.Text is the vertical middle of the line.
type TextStyle struct {
	Size  float64
	Align Align
	Color color.NRGBA
	Bold  bool
}

// Point is a vertex in surface coordinates.
type Point struct {
	X, Y float64
}

// Surface is a 2D immediate-mode drawing target.
//
// Push saves the current transform, alpha and glow; Pop restores them.
// SetAlpha is absolute, like a canvas globalAlpha.
type Surface interface {
	Size() (w, h float64)
	Clear(c color.NRGBA)

	FillRect(x, y, w, h float64, c color.NRGBA)
	StrokeRect(x, y, w, h, lineWidth float64, c color.NRGBA)
	FillCircle(cx, cy, r float64, c color.NRGBA)
	StrokeCircle(cx, cy, r, lineWidth float64, c color.NRGBA)
	Line(x1, y1, x2, y2, lineWidth float64, c color.NRGBA)
	FillPolygon(pts []Point, c color.NRGBA)

	// FillGradient fills a rectangle blending top to bottom.
	FillGradient(x, y, w, h float64, top, bottom color.NRGBA)
	// FillRadial fills a disc that fades from c at the center to transparent.
	FillRadial(cx, cy, r float64, c color.NRGBA)

	Text(s string, x, y float64, style TextStyle)

	Push()
	Pop()
	Translate(dx, dy float64)
	Rotate(rad float64)
	SetAlpha(a float64)
	SetGlow(blur float64, c color.NRGBA)
}

// CenteredText is a shorthand for the most common text call.
func CenteredText(s Surface, str string, x, y, size float64, c color.NRGBA) {
	s.Text(str, x, y, TextStyle{Size: size, Align: AlignCenter, Color: c})
}

// Contains reports whether (px, py) lies inside the rectangle, edges included.
// Used for pointer hit tests on buttons and cards.
func Contains(x, y, w, h, px, py float64) bool {
	return px >= x && px <= x+w && py >= y && py <= y+h
}
