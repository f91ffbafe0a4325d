package gfx

import (
	"fmt"
	"image/color"
	"strings"
)

// Op is one recorded draw call. Coordinates are in device space.
type Op struct {
	Kind  string
	X, Y  float64
	W, H  float64
	Color color.NRGBA
	Text  string
	Style TextStyle
	Alpha float64
	Glow  float64
}

// Recorder is an in-memory Surface. Tests render into it and inspect Ops.
//
// Setting FailOn to an op kind makes the next such call panic, which is how
// render fault handling is exercised.
type Recorder struct {
	W, H   float64
	Ops    []Op
	FailOn string

	stack *StateStack
}

var _ Surface = (*Recorder)(nil)

// NewRecorder creates a recorder of the given logical size.
func NewRecorder(w, h float64) *Recorder {
	return &Recorder{W: w, H: h, stack: NewStateStack()}
}

// Reset clears recorded ops and the state stack.
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.stack.Reset()
}

// Depth exposes the push depth so tests can check Push/Pop balance.
func (r *Recorder) Depth() int { return r.stack.Depth() }

func (r *Recorder) record(op Op) {
	if r.FailOn != "" && r.FailOn == op.Kind {
		r.FailOn = ""
		panic(fmt.Errorf("recorder: injected failure on %s", op.Kind))
	}
	st := r.stack.Current()
	op.X, op.Y = st.M.Apply(op.X, op.Y)
	op.Alpha = st.Alpha
	op.Glow = st.GlowBlur
	r.Ops = append(r.Ops, op)
}

func (r *Recorder) Size() (float64, float64) { return r.W, r.H }

func (r *Recorder) Clear(c color.NRGBA) {
	r.record(Op{Kind: "clear", W: r.W, H: r.H, Color: c})
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.NRGBA) {
	r.record(Op{Kind: "fillRect", X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) StrokeRect(x, y, w, h, lineWidth float64, c color.NRGBA) {
	r.record(Op{Kind: "strokeRect", X: x, Y: y, W: w, H: h, Color: c})
}

func (r *Recorder) FillCircle(cx, cy, radius float64, c color.NRGBA) {
	r.record(Op{Kind: "fillCircle", X: cx, Y: cy, W: radius, H: radius, Color: c})
}

func (r *Recorder) StrokeCircle(cx, cy, radius, lineWidth float64, c color.NRGBA) {
	r.record(Op{Kind: "strokeCircle", X: cx, Y: cy, W: radius, H: radius, Color: c})
}

func (r *Recorder) Line(x1, y1, x2, y2, lineWidth float64, c color.NRGBA) {
	r.record(Op{Kind: "line", X: x1, Y: y1, W: x2 - x1, H: y2 - y1, Color: c})
}

func (r *Recorder) FillPolygon(pts []Point, c color.NRGBA) {
	if len(pts) == 0 {
		return
	}
	r.record(Op{Kind: "polygon", X: pts[0].X, Y: pts[0].Y, Color: c})
}

func (r *Recorder) FillGradient(x, y, w, h float64, top, bottom color.NRGBA) {
	r.record(Op{Kind: "gradient", X: x, Y: y, W: w, H: h, Color: top})
}

func (r *Recorder) FillRadial(cx, cy, radius float64, c color.NRGBA) {
	r.record(Op{Kind: "radial", X: cx, Y: cy, W: radius, H: radius, Color: c})
}

func (r *Recorder) Text(s string, x, y float64, style TextStyle) {
	r.record(Op{Kind: "text", X: x, Y: y, Text: s, Style: style, Color: style.Color})
}

func (r *Recorder) Push()                               { r.stack.Push() }
func (r *Recorder) Pop()                                { r.stack.Pop() }
func (r *Recorder) Translate(dx, dy float64)            { r.stack.Translate(dx, dy) }
func (r *Recorder) Rotate(rad float64)                  { r.stack.Rotate(rad) }
func (r *Recorder) SetAlpha(a float64)                  { r.stack.SetAlpha(a) }
func (r *Recorder) SetGlow(blur float64, c color.NRGBA) { r.stack.SetGlow(blur, c) }

// Count returns how many ops of kind were recorded.
func (r *Recorder) Count(kind string) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Texts returns every drawn string in order.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == "text" {
			out = append(out, op.Text)
		}
	}
	return out
}

// FindText returns the first text op containing sub.
func (r *Recorder) FindText(sub string) (Op, bool) {
	for _, op := range r.Ops {
		if op.Kind == "text" && strings.Contains(op.Text, sub) {
			return op, true
		}
	}
	return Op{}, false
}

// Last returns the most recent op of kind.
func (r *Recorder) Last(kind string) (Op, bool) {
	for i := len(r.Ops) - 1; i >= 0; i-- {
		if r.Ops[i].Kind == kind {
			return r.Ops[i], true
		}
	}
	return Op{}, false
}
