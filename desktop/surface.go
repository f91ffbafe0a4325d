//go:build !js

package main

import (
	"bytes"
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/simukka/henshin-strike/gfx"
)

const (
	gradientBands = 48
	radialRings   = 12
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

// Surface draws gfx calls onto an Ebitengine image. Ebitengine has no
// context stack, so transforms and alpha live in a gfx.StateStack and every
// shape is mapped to device space before drawing.
type Surface struct {
	W, H float64

	dst     *ebiten.Image
	stack   *gfx.StateStack
	regular *text.GoTextFaceSource
	bold    *text.GoTextFaceSource
	faces   map[faceKey]*text.GoTextFace

	vertices []ebiten.Vertex
	indices  []uint16
}

type faceKey struct {
	size int
	bold bool
}

var _ gfx.Surface = (*Surface)(nil)

// NewSurface loads the Go fonts and returns a surface of the given logical
// size.
func NewSurface(w, h float64) (*Surface, error) {
	regular, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, err
	}
	bold, err := text.NewGoTextFaceSource(bytes.NewReader(gobold.TTF))
	if err != nil {
		return nil, err
	}
	return &Surface{
		W:       w,
		H:       h,
		stack:   gfx.NewStateStack(),
		regular: regular,
		bold:    bold,
		faces:   make(map[faceKey]*text.GoTextFace),
	}, nil
}

// Begin targets dst for the next frame and drops any state a faulted frame
// left behind.
func (s *Surface) Begin(dst *ebiten.Image) {
	s.dst = dst
	s.stack.Reset()
}

func (s *Surface) Size() (float64, float64) { return s.W, s.H }

func (s *Surface) Clear(c color.NRGBA) {
	s.dst.Fill(c)
}

func (s *Surface) FillRect(x, y, w, h float64, c color.NRGBA) {
	s.fillPolygon(s.stack.RectPolygon(x, y, w, h), s.stack.Tint(c))
}

func (s *Surface) StrokeRect(x, y, w, h, lineWidth float64, c color.NRGBA) {
	pts := s.stack.RectPolygon(x, y, w, h)
	c = s.stack.Tint(c)
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		vector.StrokeLine(s.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), float32(lineWidth), c, true)
	}
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	x, y := s.stack.Point(cx, cy)
	vector.DrawFilledCircle(s.dst, float32(x), float32(y), float32(r), s.stack.Tint(c), true)
}

func (s *Surface) StrokeCircle(cx, cy, r, lineWidth float64, c color.NRGBA) {
	x, y := s.stack.Point(cx, cy)
	vector.StrokeCircle(s.dst, float32(x), float32(y), float32(r), float32(lineWidth), s.stack.Tint(c), true)
}

func (s *Surface) Line(x1, y1, x2, y2, lineWidth float64, c color.NRGBA) {
	ax, ay := s.stack.Point(x1, y1)
	bx, by := s.stack.Point(x2, y2)
	vector.StrokeLine(s.dst, float32(ax), float32(ay), float32(bx), float32(by), float32(lineWidth), s.stack.Tint(c), true)
}

func (s *Surface) FillPolygon(pts []gfx.Point, c color.NRGBA) {
	dev := make([]gfx.Point, len(pts))
	for i, p := range pts {
		dev[i].X, dev[i].Y = s.stack.Point(p.X, p.Y)
	}
	s.fillPolygon(dev, s.stack.Tint(c))
}

// FillGradient approximates a linear gradient with horizontal bands.
func (s *Surface) FillGradient(x, y, w, h float64, top, bottom color.NRGBA) {
	band := h / gradientBands
	for i := 0; i < gradientBands; i++ {
		c := gfx.Lerp(top, bottom, (float64(i)+0.5)/gradientBands)
		s.FillRect(x, y+band*float64(i), w, band+1, c)
	}
}

// FillRadial approximates a radial fade with concentric discs.
func (s *Surface) FillRadial(cx, cy, r float64, c color.NRGBA) {
	for i := 0; i < radialRings; i++ {
		k := 1 - float64(i)/radialRings
		s.FillCircle(cx, cy, r*k, gfx.ScaleAlpha(c, 1.0/radialRings))
	}
}

func (s *Surface) Text(str string, x, y float64, style gfx.TextStyle) {
	face := s.face(style.Size, style.Bold)
	dx, dy := s.stack.Point(x, y)

	op := &text.DrawOptions{}
	op.GeoM.Translate(dx, dy)
	op.ColorScale.ScaleWithColor(s.stack.Tint(style.Color))
	op.LayoutOptions.SecondaryAlign = text.AlignCenter
	switch style.Align {
	case gfx.AlignCenter:
		op.LayoutOptions.PrimaryAlign = text.AlignCenter
	case gfx.AlignRight:
		op.LayoutOptions.PrimaryAlign = text.AlignEnd
	default:
		op.LayoutOptions.PrimaryAlign = text.AlignStart
	}
	text.Draw(s.dst, str, face, op)
}

func (s *Surface) Push()                                { s.stack.Push() }
func (s *Surface) Pop()                                 { s.stack.Pop() }
func (s *Surface) Translate(dx, dy float64)             { s.stack.Translate(dx, dy) }
func (s *Surface) Rotate(rad float64)                   { s.stack.Rotate(rad) }
func (s *Surface) SetAlpha(a float64)                   { s.stack.SetAlpha(a) }
func (s *Surface) SetGlow(blur float64, c color.NRGBA) { s.stack.SetGlow(blur, c) }

func (s *Surface) face(size float64, bold bool) *text.GoTextFace {
	key := faceKey{size: int(math.Round(size)), bold: bold}
	if f, ok := s.faces[key]; ok {
		return f
	}
	src := s.regular
	if bold {
		src = s.bold
	}
	f := &text.GoTextFace{Source: src, Size: float64(key.size)}
	s.faces[key] = f
	return f
}

// fillPolygon fills device-space points with a solid color.
func (s *Surface) fillPolygon(pts []gfx.Point, c color.NRGBA) {
	if len(pts) < 3 || c.A == 0 {
		return
	}
	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	s.vertices, s.indices = path.AppendVerticesAndIndicesForFilling(s.vertices[:0], s.indices[:0])
	r, g, b, a := float32(c.R)/0xff, float32(c.G)/0xff, float32(c.B)/0xff, float32(c.A)/0xff
	for i := range s.vertices {
		s.vertices[i].SrcX = 1
		s.vertices[i].SrcY = 1
		s.vertices[i].ColorR = r
		s.vertices[i].ColorG = g
		s.vertices[i].ColorB = b
		s.vertices[i].ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	op.FillRule = ebiten.FillRuleNonZero
	s.dst.DrawTriangles(s.vertices, s.indices, whiteSubImage, op)
}
