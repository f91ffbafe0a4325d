package game

import (
	"errors"
	"math"
	"strconv"

	"github.com/simukka/henshin-strike/gfx"
	"github.com/simukka/henshin-strike/theme"
)

// Render draws the match back to front. Each group is guarded on its own:
// a failing group is skipped for this frame and reported as a FaultRender,
// the rest of the frame still draws.
func (m *Match) Render(s gfx.Surface, th *theme.Theme) error {
	s.Push()
	defer s.Pop()
	if dx, dy := m.Shake.Offset(m.shake); dx != 0 || dy != 0 {
		s.Translate(dx, dy)
	}

	errs := []error{
		renderGroup(s, "background", func() { theme.DrawBackground(s, th, m.NowMs) }),
		renderGroup(s, "player", func() { m.Player.Render(s, th) }),
		renderGroup(s, "bullets", func() {
			for _, b := range m.Bullets {
				b.Render(s, th)
			}
		}),
		renderGroup(s, "enemies", func() {
			for _, e := range m.Enemies {
				e.Render(s, th)
			}
		}),
		renderGroup(s, "particles", func() {
			active := m.Particles.Active()
			n := minInt(len(active), m.Tuning.Particles.RenderCap)
			for _, p := range active[:n] {
				p.Render(s, th)
			}
		}),
		renderGroup(s, "power-ups", func() {
			for _, p := range m.PowerUps.PowerUps {
				p.Render(s, th)
			}
		}),
		renderGroup(s, "flash", func() { m.renderFlash(s) }),
		renderGroup(s, "notification", func() { m.renderNotification(s, th) }),
		renderGroup(s, "active power-ups", func() { m.renderActivePanel(s) }),
		renderGroup(s, "popups", func() { m.renderPopups(s) }),
	}
	return errors.Join(errs...)
}

func renderGroup(s gfx.Surface, name string, fn func()) error {
	return guard(FaultRender, name, func() error {
		s.Push()
		defer s.Pop()
		fn()
		return nil
	})
}

func (m *Match) renderFlash(s gfx.Surface) {
	a := m.Flash.Alpha()
	if a <= 0 {
		return
	}
	w, h := s.Size()
	s.SetAlpha(a)
	s.FillRect(0, 0, w, h, m.Flash.Color)
}

// renderNotification draws the banner for the last collected power-up.
func (m *Match) renderNotification(s gfx.Surface, th *theme.Theme) {
	n := m.Notice
	if n == nil || n.Entry == nil {
		return
	}
	w, _ := s.Size()
	x := (w - notifyWidth) / 2
	e := n.Entry

	s.SetAlpha(n.Alpha())
	s.FillRect(x, notifyY, notifyWidth, notifyHeight, gfx.WithAlpha(gfx.Black, 0.8))
	s.SetGlow(20, e.GlowColor)
	s.StrokeRect(x, notifyY, notifyWidth, notifyHeight, 3, e.Color)

	s.SetGlow(10, e.GlowColor)
	s.Text(e.Name, w/2, notifyY+30, gfx.TextStyle{Size: 24, Align: gfx.AlignCenter, Color: e.Color, Bold: true})
	s.SetGlow(0, e.GlowColor)
	gfx.CenteredText(s, n.Description(), w/2, notifyY+60, 14, gfx.White)
	gfx.CenteredText(s, "ACTIVATED!", w/2, notifyY+82, 12, th.UI.AccentColor)
}

// renderActivePanel lists running power-ups with a countdown bar each.
func (m *Match) renderActivePanel(s gfx.Surface) {
	active := m.PowerUps.Active
	if len(active) == 0 {
		return
	}
	w, _ := s.Size()
	x := w - panelItemWidth - 20
	y := 60.0
	for i, a := range active {
		if a.Entry == nil {
			continue
		}
		iy := y + float64(i)*panelItemHeight
		progress := a.Progress()

		s.FillRect(x, iy, panelItemWidth, panelItemHeight-5, gfx.WithAlpha(gfx.Black, 0.7))
		s.StrokeRect(x, iy, panelItemWidth, panelItemHeight-5, 1, a.Entry.Color)
		s.Text(a.Entry.Symbol, x+12, iy+15, gfx.TextStyle{Size: 16, Align: gfx.AlignCenter, Color: a.Entry.Color, Bold: true})
		s.Text(a.Entry.Name, x+28, iy+10, gfx.TextStyle{Size: 11, Color: gfx.White})

		barColor := a.Entry.Color
		if progress < panelWarnBelow {
			barColor = gfx.Red
		}
		s.FillRect(x+28, iy+20, panelBarWidth, panelBarHeight, gfx.WithAlpha(gfx.White, 0.2))
		s.FillRect(x+28, iy+20, panelBarWidth*progress, panelBarHeight, barColor)

		secs := math.Ceil(a.TimeRemainingMs / 1000)
		s.Text(formatSeconds(secs), x+panelItemWidth-8, iy+23, gfx.TextStyle{Size: 10, Align: gfx.AlignRight, Color: gfx.White})
	}
}

func (m *Match) renderPopups(s gfx.Surface) {
	for _, p := range m.Popups {
		a := p.Alpha()
		s.Push()
		s.SetAlpha(a)
		s.SetGlow(10, gfx.Yellow)
		s.Text(p.Text, p.X, p.Y, gfx.TextStyle{Size: 16 * p.Scale(), Align: gfx.AlignCenter, Color: gfx.Yellow, Bold: true})
		s.Pop()
	}
}

func formatSeconds(secs float64) string {
	return strconv.Itoa(int(secs)) + "s"
}
