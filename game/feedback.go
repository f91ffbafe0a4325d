package game

import (
	"image/color"
	"strconv"

	"github.com/simukka/henshin-strike/common"
	"github.com/simukka/henshin-strike/config"
)

// Shake offsets the whole match render for a while. A new shake replaces
// the running one.
type Shake struct {
	Intensity  float64
	DurationMs float64
	ElapsedMs  float64
}

// Start replaces the current shake with cfg.
func (s *Shake) Start(cfg config.ShakeConfig) {
	*s = Shake{Intensity: cfg.Intensity, DurationMs: cfg.DurationMs}
}

// Active reports whether the shake still has time left.
func (s *Shake) Active() bool {
	return s.DurationMs > 0 && s.ElapsedMs < s.DurationMs
}

// Advance burns one tick.
func (s *Shake) Advance(tickMs float64) {
	if s.Active() {
		s.ElapsedMs += tickMs
	}
}

// Offset draws this frame's displacement. The amplitude decays linearly to
// zero over the duration.
func (s *Shake) Offset(rng *common.SeededRNG) (dx, dy float64) {
	if !s.Active() {
		return 0, 0
	}
	amp := s.Intensity * (1 - s.ElapsedMs/s.DurationMs) * 2
	return (rng.Random() - 0.5) * amp, (rng.Random() - 0.5) * amp
}

// Flash tints the whole canvas and fades out.
type Flash struct {
	Color      color.NRGBA
	Peak       float64
	DurationMs float64
	ElapsedMs  float64
}

// Start replaces the current flash.
func (f *Flash) Start(c color.NRGBA, peak, durationMs float64) {
	*f = Flash{Color: c, Peak: peak, DurationMs: durationMs}
}

// Active reports whether the flash is still visible.
func (f *Flash) Active() bool {
	return f.DurationMs > 0 && f.ElapsedMs < f.DurationMs
}

// Advance burns one tick.
func (f *Flash) Advance(tickMs float64) {
	if f.Active() {
		f.ElapsedMs += tickMs
	}
}

// Alpha is the current opacity.
func (f *Flash) Alpha() float64 {
	if !f.Active() {
		return 0
	}
	return f.Peak * (1 - f.ElapsedMs/f.DurationMs)
}

// Notification is the banner announcing a collected power-up.
type Notification struct {
	Entry      *CatalogEntry
	DurationMs float64
	ElapsedMs  float64
}

// Progress is the elapsed fraction in [0, 1].
func (n *Notification) Progress() float64 {
	if n.DurationMs <= 0 {
		return 1
	}
	return clampFloat(n.ElapsedMs/n.DurationMs, 0, 1)
}

// Done reports whether the banner has run out.
func (n *Notification) Done() bool {
	return n.ElapsedMs >= n.DurationMs
}

// Alpha stays opaque for most of the banner's life, then fades.
func (n *Notification) Alpha() float64 {
	p := n.Progress()
	if p <= notifyFadeAfter {
		return 1
	}
	return (1 - p) / (1 - notifyFadeAfter)
}

// Description is the entry text cut to fit the banner.
func (n *Notification) Description() string {
	if n.Entry == nil {
		return ""
	}
	return truncate(n.Entry.Description, notifyMaxChars)
}

// truncate shortens s to max runes, ending in "..." when cut.
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-3]) + "..."
}

// Popup is a floating score label.
type Popup struct {
	X, Y    float64
	VY      float64
	Text    string
	Life    int
	MaxLife int
}

func newScorePopup(x, y float64, score int, cfg config.EffectsConfig) *Popup {
	return &Popup{
		X:       x,
		Y:       y,
		VY:      cfg.PopupVelocity,
		Text:    "+" + strconv.Itoa(score),
		Life:    cfg.PopupLife,
		MaxLife: cfg.PopupLife,
	}
}

// Update drifts the popup upward with drag and burns one tick of life.
func (p *Popup) Update(drag float64) {
	p.Life--
	p.Y += p.VY
	p.VY *= drag
}

// Alpha is the remaining life fraction.
func (p *Popup) Alpha() float64 {
	if p.MaxLife <= 0 {
		return 0
	}
	return clampFloat(float64(p.Life)/float64(p.MaxLife), 0, 1)
}

// Scale grows the label as it fades.
func (p *Popup) Scale() float64 {
	return 1 + (1-p.Alpha())*popupScaleGrowth
}
