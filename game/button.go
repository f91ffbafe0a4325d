package game

import (
	"image/color"
	"math"

	"github.com/simukka/henshin-strike/gfx"
)

// Button is a clickable menu button with hover and press feedback.
type Button struct {
	X, Y, W, H float64
	Label      string
	// Hint is drawn under the label while hovered.
	Hint    string
	Hovered bool

	pressedMs float64
}

// NewCenteredButton places a standard size button centered on a canvas
// canvasW wide.
func NewCenteredButton(canvasW float64, label string) *Button {
	return &Button{
		X:     canvasW/2 - ButtonWidth/2,
		Y:     ButtonY,
		W:     ButtonWidth,
		H:     ButtonHeight,
		Label: label,
	}
}

// Contains reports whether the pointer is over the button.
func (b *Button) Contains(x, y float64) bool {
	return gfx.Contains(b.X, b.Y, b.W, b.H, x, y)
}

// Hover updates the hover state and reports whether it changed.
func (b *Button) Hover(x, y float64) bool {
	was := b.Hovered
	b.Hovered = b.Contains(x, y)
	return was != b.Hovered
}

// Press starts the pressed animation.
func (b *Button) Press() {
	b.pressedMs = ButtonPressMs
}

// Pressed reports whether the pressed animation is running.
func (b *Button) Pressed() bool {
	return b.pressedMs > 0
}

// Update runs the press timer down by one tick.
func (b *Button) Update(tickMs float64) {
	if b.pressedMs > 0 {
		b.pressedMs -= tickMs
	}
}

// Render draws the button pulsing in accent. glow enables the shadow.
func (b *Button) Render(s gfx.Surface, accent color.NRGBA, glow bool, animMs float64) {
	intensity := math.Sin(animMs*0.005)*0.3 + 0.7
	bgAlpha := 0.2 * intensity
	if b.Hovered {
		intensity *= 1.5
		bgAlpha *= 1.8
	}
	if b.Pressed() {
		intensity *= 0.5
		bgAlpha *= 2
	}
	offsetY := 0.0
	if b.Pressed() {
		offsetY = 2
	}
	lineWidth := 2.0
	textColor := accent
	textSize := 20.0
	if b.Hovered {
		lineWidth = 3
		textColor = gfx.White
		textSize = 22
	}

	s.Push()
	defer s.Pop()
	if glow {
		s.SetGlow(15*intensity, accent)
	}
	s.FillRect(b.X, b.Y+offsetY, b.W, b.H, gfx.WithAlpha(accent, bgAlpha))
	s.StrokeRect(b.X, b.Y+offsetY, b.W, b.H, lineWidth, accent)
	s.Text(b.Label, b.X+b.W/2, b.Y+b.H/2+offsetY, gfx.TextStyle{Size: textSize, Align: gfx.AlignCenter, Color: textColor, Bold: true})
	if b.Hovered && b.Hint != "" {
		gfx.CenteredText(s, b.Hint, b.X+b.W/2, b.Y+b.H+8+offsetY, 14, gfx.White)
	}
}
