package gfx

import (
	"image/color"
	"math"
)

// Matrix is a 2D affine transform:
//
//	| A C E |
//	| B D F |
type Matrix struct {
	A, B, C, D, E, F float64
}

// Identity is the transform that leaves points unchanged.
var Identity = Matrix{A: 1, D: 1}

// Apply maps (x, y) through m.
func (m Matrix) Apply(x, y float64) (float64, float64) {
	return m.A*x + m.C*y + m.E, m.B*x + m.D*y + m.F
}

// Translated returns m followed locally by a translation.
func (m Matrix) Translated(dx, dy float64) Matrix {
	m.E += m.A*dx + m.C*dy
	m.F += m.B*dx + m.D*dy
	return m
}

// Rotated returns m followed locally by a rotation.
func (m Matrix) Rotated(rad float64) Matrix {
	sin, cos := math.Sincos(rad)
	return Matrix{
		A: m.A*cos + m.C*sin,
		B: m.B*cos + m.D*sin,
		C: m.C*cos - m.A*sin,
		D: m.D*cos - m.B*sin,
		E: m.E,
		F: m.F,
	}
}

// IsTranslation reports whether m has no rotation or scale.
func (m Matrix) IsTranslation() bool {
	return m.A == 1 && m.B == 0 && m.C == 0 && m.D == 1
}

// State is the saved drawing state of a Surface.
type State struct {
	M         Matrix
	Alpha     float64
	GlowBlur  float64
	GlowColor color.NRGBA
}

// StateStack implements the Push/Pop/Translate/Rotate/SetAlpha/SetGlow half
// of Surface for backends without a native context stack.
type StateStack struct {
	cur   State
	saved []State
}

// NewStateStack returns a stack at identity with full alpha.
func NewStateStack() *StateStack {
	return &StateStack{cur: State{M: Identity, Alpha: 1}}
}

// Current returns the active state.
func (s *StateStack) Current() State { return s.cur }

// Depth returns the number of saved states.
func (s *StateStack) Depth() int { return len(s.saved) }

// Reset drops every saved state. Backends call it at the start of a frame so
// an unbalanced Push from a faulted render cannot leak into the next one.
func (s *StateStack) Reset() {
	s.cur = State{M: Identity, Alpha: 1}
	s.saved = s.saved[:0]
}

func (s *StateStack) Push() {
	s.saved = append(s.saved, s.cur)
}

func (s *StateStack) Pop() {
	if len(s.saved) == 0 {
		return
	}
	s.cur = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
}

func (s *StateStack) Translate(dx, dy float64) {
	s.cur.M = s.cur.M.Translated(dx, dy)
}

func (s *StateStack) Rotate(rad float64) {
	s.cur.M = s.cur.M.Rotated(rad)
}

func (s *StateStack) SetAlpha(a float64) {
	s.cur.Alpha = clamp01(a)
}

func (s *StateStack) SetGlow(blur float64, c color.NRGBA) {
	s.cur.GlowBlur = blur
	s.cur.GlowColor = c
}

// Point maps a local point to device space.
func (s *StateStack) Point(x, y float64) (float64, float64) {
	return s.cur.M.Apply(x, y)
}

// Tint applies the current alpha to c.
func (s *StateStack) Tint(c color.NRGBA) color.NRGBA {
	return ScaleAlpha(c, s.cur.Alpha)
}

// RectPolygon returns the four device-space corners of a local rectangle.
func (s *StateStack) RectPolygon(x, y, w, h float64) []Point {
	pts := []Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	for i := range pts {
		pts[i].X, pts[i].Y = s.cur.M.Apply(pts[i].X, pts[i].Y)
	}
	return pts
}
