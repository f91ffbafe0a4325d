package theme

import (
	"math"

	"github.com/simukka/henshin-strike/gfx"
)

const (
	starCount     = 100
	gridSpacing   = 50.0
	nebulaClouds  = 5
	nebulaRadius  = 80.0
	windowSize    = 8.0
	windowFlicker = 500.0 // ms between window light changes
)

// building is one cityscape silhouette anchored to the bottom edge.
type building struct {
	x, width, height float64
}

var skyline = []building{
	{0, 80, 120}, {80, 60, 90}, {140, 100, 150},
	{240, 70, 100}, {310, 90, 130}, {400, 120, 110},
	{520, 80, 140}, {600, 100, 95}, {700, 100, 125},
}

// DrawBackground paints the gradient, the star field and the theme effect.
// animTime is in milliseconds and only drives animation.
func DrawBackground(s gfx.Surface, t *Theme, animTime float64) {
	w, h := s.Size()
	s.FillGradient(0, 0, w, h, t.Background.GradientStart, t.Background.GradientEnd)
	DrawStars(s, t, animTime)

	switch t.Background.Effect {
	case EffectDigitalGrid:
		drawDigitalGrid(s, t, animTime)
	case EffectNebula:
		drawNebula(s, t, animTime)
	case EffectCityscape:
		drawCityscape(s, t, animTime)
	}
}

// DrawStars draws the twinkling, slowly scrolling star field.
func DrawStars(s gfx.Surface, t *Theme, animTime float64) {
	w, h := s.Size()
	s.Push()
	defer s.Pop()
	for i := 0; i < starCount; i++ {
		fi := float64(i)
		x := math.Mod(fi*37, w)
		y := math.Mod(fi*23+animTime*0.02, h)
		twinkle := math.Sin(animTime*0.01+fi)*0.5 + 0.5
		s.SetAlpha(twinkle*0.8 + 0.2)
		s.FillRect(x, y, 1, 1, t.Background.StarColor)
	}
}

func drawDigitalGrid(s gfx.Surface, t *Theme, animTime float64) {
	w, h := s.Size()
	s.Push()
	defer s.Pop()
	s.SetAlpha(0.3)

	offset := math.Mod(animTime*0.01, gridSpacing)
	for x := -offset; x < w+gridSpacing; x += gridSpacing {
		s.Line(x, 0, x, h, 1, t.Colors.Primary)
	}
	for y := -offset; y < h+gridSpacing; y += gridSpacing {
		s.Line(0, y, w, y, 1, t.Colors.Primary)
	}
}

func drawNebula(s gfx.Surface, t *Theme, animTime float64) {
	w, h := s.Size()
	s.Push()
	defer s.Pop()
	s.SetAlpha(0.4)

	for i := 0; i < nebulaClouds; i++ {
		fi := float64(i)
		x := math.Mod(fi*150+math.Sin(animTime*0.001+fi)*50, w+100)
		y := math.Mod(fi*80+math.Cos(animTime*0.0008+fi)*30, h+50)
		s.FillRadial(x, y, nebulaRadius, t.Colors.Secondary)
	}
}

func drawCityscape(s gfx.Surface, t *Theme, animTime float64) {
	_, h := s.Size()
	s.Push()
	defer s.Pop()
	s.SetAlpha(0.6)

	frame := uint32(animTime / windowFlicker)
	for bi, b := range skyline {
		top := h - b.height
		s.FillRect(b.x, top, b.width, b.height, t.Colors.Primary)

		rows := int(b.height / 20)
		for col := 0; col < 3; col++ {
			for row := 0; row < rows; row++ {
				if windowLit(frame, uint32(bi), uint32(col), uint32(row)) {
					s.FillRect(b.x+10+float64(col)*20, top+10+float64(row)*20, windowSize, windowSize, t.Colors.Accent)
				}
			}
		}
	}
}

// windowLit lights roughly 30% of windows, reshuffled every flicker period.
func windowLit(frame, b, col, row uint32) bool {
	v := frame*0x9E3779B1 ^ b*0x85EBCA77 ^ col*0xC2B2AE3D ^ row*0x27D4EB2F
	v ^= v >> 15
	v *= 0x2C1B3C6D
	v ^= v >> 12
	return v%10 >= 7
}
