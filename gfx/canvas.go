//go:build js

package gfx

import (
	"image/color"
	"math"
	"strconv"

	"github.com/gopherjs/gopherjs/js"
)

// Canvas draws onto an HTML canvas 2D context.
type Canvas struct {
	Canvas *js.Object
	Ctx    *js.Object
	Font   string

	depth int
}

var _ Surface = (*Canvas)(nil)

// NewCanvas wraps the canvas element with the given id.
func NewCanvas(id string) *Canvas {
	el := js.Global.Get("document").Call("getElementById", id)
	return &Canvas{
		Canvas: el,
		Ctx:    el.Call("getContext", "2d"),
		Font:   "Arial, sans-serif",
	}
}

// BeginFrame unwinds any save left open by an aborted render.
func (c *Canvas) BeginFrame() {
	for c.depth > 0 {
		c.Ctx.Call("restore")
		c.depth--
	}
	c.Ctx.Call("setTransform", 1, 0, 0, 1, 0, 0)
	c.Ctx.Set("globalAlpha", 1)
	c.Ctx.Set("shadowBlur", 0)
}

func (c *Canvas) Size() (float64, float64) {
	return c.Canvas.Get("width").Float(), c.Canvas.Get("height").Float()
}

func (c *Canvas) Clear(col color.NRGBA) {
	w, h := c.Size()
	c.Ctx.Set("fillStyle", CSS(col))
	c.Ctx.Call("fillRect", 0, 0, w, h)
}

func (c *Canvas) FillRect(x, y, w, h float64, col color.NRGBA) {
	c.Ctx.Set("fillStyle", CSS(col))
	c.Ctx.Call("fillRect", x, y, w, h)
}

func (c *Canvas) StrokeRect(x, y, w, h, lineWidth float64, col color.NRGBA) {
	c.Ctx.Set("strokeStyle", CSS(col))
	c.Ctx.Set("lineWidth", lineWidth)
	c.Ctx.Call("strokeRect", x, y, w, h)
}

func (c *Canvas) FillCircle(cx, cy, r float64, col color.NRGBA) {
	c.Ctx.Call("beginPath")
	c.Ctx.Call("arc", cx, cy, r, 0, math.Pi*2)
	c.Ctx.Set("fillStyle", CSS(col))
	c.Ctx.Call("fill")
}

func (c *Canvas) StrokeCircle(cx, cy, r, lineWidth float64, col color.NRGBA) {
	c.Ctx.Call("beginPath")
	c.Ctx.Call("arc", cx, cy, r, 0, math.Pi*2)
	c.Ctx.Set("strokeStyle", CSS(col))
	c.Ctx.Set("lineWidth", lineWidth)
	c.Ctx.Call("stroke")
}

func (c *Canvas) Line(x1, y1, x2, y2, lineWidth float64, col color.NRGBA) {
	c.Ctx.Call("beginPath")
	c.Ctx.Call("moveTo", x1, y1)
	c.Ctx.Call("lineTo", x2, y2)
	c.Ctx.Set("strokeStyle", CSS(col))
	c.Ctx.Set("lineWidth", lineWidth)
	c.Ctx.Call("stroke")
}

func (c *Canvas) FillPolygon(pts []Point, col color.NRGBA) {
	if len(pts) < 3 {
		return
	}
	c.Ctx.Call("beginPath")
	c.Ctx.Call("moveTo", pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.Ctx.Call("lineTo", p.X, p.Y)
	}
	c.Ctx.Call("closePath")
	c.Ctx.Set("fillStyle", CSS(col))
	c.Ctx.Call("fill")
}

func (c *Canvas) FillGradient(x, y, w, h float64, top, bottom color.NRGBA) {
	g := c.Ctx.Call("createLinearGradient", x, y, x, y+h)
	g.Call("addColorStop", 0, CSS(top))
	g.Call("addColorStop", 1, CSS(bottom))
	c.Ctx.Set("fillStyle", g)
	c.Ctx.Call("fillRect", x, y, w, h)
}

func (c *Canvas) FillRadial(cx, cy, r float64, col color.NRGBA) {
	g := c.Ctx.Call("createRadialGradient", cx, cy, 0, cx, cy, r)
	g.Call("addColorStop", 0, CSS(col))
	g.Call("addColorStop", 1, "transparent")
	c.Ctx.Set("fillStyle", g)
	c.Ctx.Call("fillRect", cx-r, cy-r, r*2, r*2)
}

func (c *Canvas) Text(s string, x, y float64, style TextStyle) {
	font := strconv.Itoa(int(style.Size)) + "px " + c.Font
	if style.Bold {
		font = "bold " + font
	}
	c.Ctx.Set("font", font)
	switch style.Align {
	case AlignCenter:
		c.Ctx.Set("textAlign", "center")
	case AlignRight:
		c.Ctx.Set("textAlign", "right")
	default:
		c.Ctx.Set("textAlign", "left")
	}
	c.Ctx.Set("textBaseline", "middle")
	c.Ctx.Set("fillStyle", CSS(style.Color))
	c.Ctx.Call("fillText", s, x, y)
}

func (c *Canvas) Push() {
	c.Ctx.Call("save")
	c.depth++
}

func (c *Canvas) Pop() {
	if c.depth == 0 {
		return
	}
	c.Ctx.Call("restore")
	c.depth--
}

func (c *Canvas) Translate(dx, dy float64) { c.Ctx.Call("translate", dx, dy) }
func (c *Canvas) Rotate(rad float64)       { c.Ctx.Call("rotate", rad) }
func (c *Canvas) SetAlpha(a float64)       { c.Ctx.Set("globalAlpha", clamp01(a)) }

func (c *Canvas) SetGlow(blur float64, col color.NRGBA) {
	c.Ctx.Set("shadowBlur", blur)
	c.Ctx.Set("shadowColor", CSS(col))
}
