package game

import (
	"errors"
	"time"

	"github.com/simukka/henshin-strike/audio"
	"github.com/simukka/henshin-strike/common"
	"github.com/simukka/henshin-strike/config"
	"github.com/simukka/henshin-strike/gfx"
	"github.com/simukka/henshin-strike/theme"
)

// Transition is the fade between two modes. The old screen is replaced when
// the fade-out reaches full black.
type Transition struct {
	Active bool
	Alpha  float64
	Out    bool
	Target Mode
}

// Options wires a Director to its collaborators.
type Options struct {
	Tuning     *config.Tuning
	Themes     *theme.Provider
	Sound      audio.Sink
	Scoreboard Scoreboard
	// Seed is the session seed; every match derives its own from it.
	Seed uint32
}

// Director is the mode state machine. It owns exactly one active screen and
// routes input, ticks and rendering to it.
type Director struct {
	Mode       Mode
	Transition Transition

	Tuning  *config.Tuning
	Catalog *Catalog
	Themes  *theme.Provider
	Theme   *theme.Theme

	Intro  *IntroScreen
	Select *ThemeSelectScreen
	// Match survives the switch to GameOver so its score can be shown.
	Match *Match

	Sound      audio.Sink
	Scoreboard Scoreboard
	Keys       Keys

	Loop    *Loop
	Stats   *StatsOverlay
	Perf    *PerfTracker
	DebugUI *DebugUI

	// OnModeChange is called after every completed mode switch.
	OnModeChange func(from, to Mode)

	Seed    uint32
	Matches int
	AnimMs  float64

	lastRenderFault string
}

// NewDirector creates a Director showing the intro screen.
func NewDirector(opts Options) (*Director, error) {
	t := opts.Tuning
	if t == nil {
		t = config.Default()
	}
	cat, err := NewCatalog(t)
	if err != nil {
		return nil, err
	}
	themes := opts.Themes
	if themes == nil {
		themes = theme.FallbackProvider()
	}
	sound := opts.Sound
	if sound == nil {
		sound = audio.Nop{}
	}
	sb := opts.Scoreboard
	if sb == nil {
		sb = NopScoreboard{}
	}

	d := &Director{
		Mode:       ModeIntro,
		Tuning:     t,
		Catalog:    cat,
		Themes:     themes,
		Theme:      themes.Current(),
		Sound:      sound,
		Scoreboard: sb,
		Keys:       make(Keys),
		Loop:       NewLoop(t.Loop.TickMillis, t.Loop.MaxCatchUpTicks),
		Stats:      NewStatsOverlay(t.Canvas.Width),
		Perf:       NewPerfTracker(t.Perf.WindowMs, t.Perf.MinFPS),
		DebugUI:    NewDebugUI(t),
		Seed:       opts.Seed,
	}
	d.enter(ModeIntro)
	Debugf("Director ready: %d themes, theme %s, seed %d", len(themes.Keys()), d.Theme.Key, d.Seed)
	return d, nil
}

// TransitionTo starts a fade to target. It is ignored while another
// transition is running and reports whether it started.
func (d *Director) TransitionTo(target Mode) bool {
	if d.Transition.Active {
		return false
	}
	Debugf("Transitioning from %s to %s", d.Mode, target)
	d.Transition = Transition{Active: true, Out: true, Target: target}
	d.Sound.Play(audio.CueTransition)
	return true
}

// Frame runs one display frame at timestamp now (milliseconds): as many
// fixed ticks as the elapsed time calls for, then a render into s. Faults
// that escape the Director are recovered here so the caller can always
// schedule the next frame.
func (d *Director) Frame(now float64, s gfx.Surface) {
	start := time.Now()
	d.Stats.UpdateFPS(now)

	n := d.Loop.Advance(now)
	for i := 0; i < n; i++ {
		if err := guard(FaultLoop, "tick", d.Tick); err != nil {
			d.RecoverLoop(err)
			break
		}
	}
	if err := guard(FaultLoop, "render", func() error {
		d.Render(s)
		return nil
	}); err != nil {
		d.RecoverLoop(err)
	}

	d.Perf.Record(now, float64(time.Since(start))/float64(time.Millisecond))
}

// Tick advances the transition and the active mode by one fixed step.
func (d *Director) Tick() error {
	d.AnimMs += d.Tuning.Loop.TickMillis
	d.stepTransition()

	err := guard(FaultModeUpdate, d.Mode.String(), d.updateMode)
	if HasFault(err, FaultModeUpdate) {
		d.recoverMode(err)
		return nil
	}
	return err
}

func (d *Director) stepTransition() {
	t := &d.Transition
	if !t.Active {
		return
	}
	if t.Out {
		t.Alpha += d.Tuning.Transition.FadeOutStep
		if t.Alpha >= 1 {
			d.switchMode(t.Target)
			t.Out = false
			t.Alpha = 1
		}
		return
	}
	t.Alpha -= d.Tuning.Transition.FadeInStep
	if t.Alpha <= 0 {
		*t = Transition{}
	}
}

func (d *Director) updateMode() error {
	tick := d.Tuning.Loop.TickMillis
	switch d.Mode {
	case ModeIntro:
		if d.Intro == nil {
			d.Intro = NewIntroScreen(d.Tuning.Canvas.Width, d.Tuning.Canvas.Height, d.Catalog)
		}
		d.Intro.Update(tick)
	case ModeThemeSelect:
		if d.Select == nil {
			d.Select = d.newSelectScreen()
		}
		d.Select.Update(tick)
	case ModePlaying:
		if d.Match == nil {
			return nil
		}
		if err := d.Match.Update(d.Keys.Controls()); err != nil {
			DebugError("Match update:", err)
		}
		if d.Match.Finished {
			d.TransitionTo(ModeGameOver)
		}
	case ModeGameOver:
	default:
		DebugWarn("Unknown mode:", int(d.Mode))
		d.TransitionTo(ModeIntro)
	}
	return nil
}

// recoverMode handles a fault that escaped a screen update.
func (d *Director) recoverMode(err error) {
	DebugError("Mode update error, returning to intro:", err)
	d.Transition = Transition{}
	from := d.Mode
	d.exit(from)
	d.Mode = ModeIntro
	d.enter(ModeIntro)
	if d.OnModeChange != nil && from != ModeIntro {
		d.OnModeChange(from, ModeIntro)
	}
}

// RecoverLoop is the last line of defence. A running match is ended so its
// score is kept; anything else goes back to the intro.
func (d *Director) RecoverLoop(err error) {
	DebugError("Critical game loop error, attempting recovery:", err)
	d.Transition = Transition{}
	if d.Mode == ModePlaying && d.Match != nil {
		d.Match.Finish()
		d.TransitionTo(ModeGameOver)
		return
	}
	d.TransitionTo(ModeIntro)
}

func (d *Director) switchMode(target Mode) {
	from := d.Mode
	d.exit(from)
	d.Mode = target
	d.enter(target)
	Debugf("Mode %s -> %s", from, target)
	if d.OnModeChange != nil {
		d.OnModeChange(from, target)
	}
}

func (d *Director) exit(m Mode) {
	switch m {
	case ModeIntro:
		d.Intro = nil
	case ModeThemeSelect:
		d.Select = nil
	case ModePlaying, ModeGameOver:
	}
}

func (d *Director) enter(m Mode) {
	switch m {
	case ModeIntro:
		d.Match = nil
		d.Intro = NewIntroScreen(d.Tuning.Canvas.Width, d.Tuning.Canvas.Height, d.Catalog)
	case ModeThemeSelect:
		d.Select = d.newSelectScreen()
	case ModePlaying:
		d.startMatch()
	case ModeGameOver:
		if d.Match != nil {
			Debugf("Game over: match %s scored %d", d.Match.ID, d.Match.Score)
		}
	}
}

func (d *Director) newSelectScreen() *ThemeSelectScreen {
	return NewThemeSelectScreen(d.Tuning.Canvas.Width, d.Themes.All(), d.Themes.IndexOf(d.Theme.Key))
}

func (d *Director) startMatch() {
	d.Matches++
	seed := common.MatchSeed(d.Seed, d.Matches)
	d.Match = NewMatch(d.Tuning, d.Catalog, seed, d.Sound, d.Scoreboard)
	d.Keys = make(Keys)
}

// confirmTheme loads the highlighted theme and starts the match fade.
func (d *Director) confirmTheme() {
	if d.Transition.Active {
		return
	}
	if h := d.Select.Highlighted(); h != nil {
		th, err := d.Themes.Load(h.Key)
		if err != nil {
			DebugWarn("Theme load failed:", err)
		}
		d.Theme = th
	}
	d.Sound.Play(audio.CueSelect)
	d.TransitionTo(ModePlaying)
}

// KeyDown handles a raw key press (a KeyboardEvent.code string). It reports
// whether the key was used, so the browser default can be suppressed.
func (d *Director) KeyDown(code string) bool {
	switch code {
	case KeyF9:
		d.DebugUI.Toggle()
		return true
	case KeyF10:
		d.Stats.Toggle()
		return true
	}
	// The panel reads raw keys before WASD is folded onto the arrows.
	if d.DebugUI.Visible && d.DebugUI.HandleKey(code) {
		return true
	}

	d.Keys.Press(code)
	key := TranslateKey(code)
	handled := IsGameKey(key)

	switch d.Mode {
	case ModeIntro:
		if key == KeySpace || key == KeyEnter {
			d.Sound.Play(audio.CueSelect)
			d.TransitionTo(ModeThemeSelect)
		}
	case ModeThemeSelect:
		if d.Select == nil {
			break
		}
		switch key {
		case KeyArrowLeft:
			d.Select.Move(-1)
		case KeyArrowRight:
			d.Select.Move(1)
		case KeySpace, KeyEnter:
			d.confirmTheme()
		}
	case ModePlaying:
		if key == KeySpace && d.Match != nil {
			d.Match.Fire()
		}
	case ModeGameOver:
		switch key {
		case KeyR:
			d.TransitionTo(ModePlaying)
			handled = true
		case KeyEscape:
			d.TransitionTo(ModeIntro)
			handled = true
		}
	}
	return handled
}

// KeyUp handles a raw key release.
func (d *Director) KeyUp(code string) {
	d.Keys.Release(code)
}

// PointerMove updates hover state on the menu screens.
func (d *Director) PointerMove(x, y float64) {
	switch d.Mode {
	case ModeIntro:
		if d.Intro != nil {
			d.Intro.PointerMove(x, y)
		}
	case ModeThemeSelect:
		if d.Select != nil {
			d.Select.PointerMove(x, y)
		}
	}
}

// Click handles a pointer click in canvas coordinates.
func (d *Director) Click(x, y float64) {
	switch d.Mode {
	case ModeIntro:
		if d.Intro != nil && d.Intro.Click(x, y) {
			d.Sound.Play(audio.CueSelect)
			d.TransitionTo(ModeThemeSelect)
		}
	case ModeThemeSelect:
		if d.Select != nil && d.Select.Click(x, y) {
			d.confirmTheme()
		}
	}
}

// Hovering reports whether the pointer is over something clickable.
func (d *Director) Hovering() bool {
	switch d.Mode {
	case ModeIntro:
		return d.Intro != nil && d.Intro.Start.Hovered
	case ModeThemeSelect:
		if d.Select == nil {
			return false
		}
		for _, c := range d.Select.Cards {
			if c.Hovered {
				return true
			}
		}
		return d.Select.Confirm.Hovered
	}
	return false
}

// Render draws the active screen, the transition overlay and the debug
// panels into s.
func (d *Director) Render(s gfx.Surface) {
	s.Clear(gfx.Black)

	err := guard(FaultModeRender, d.Mode.String(), func() error {
		return d.renderMode(s)
	})
	if err != nil {
		d.logRenderFault(err)
		if HasFault(err, FaultModeRender) {
			renderErrorScreen(s)
		}
	}

	d.renderTransition(s)
	d.DebugUI.Render(s)
	d.Stats.Render(s, d)
}

func (d *Director) renderMode(s gfx.Surface) error {
	th := d.Theme
	if th == nil {
		th = theme.Fallback()
	}
	switch d.Mode {
	case ModeIntro:
		if d.Intro == nil {
			d.Intro = NewIntroScreen(d.Tuning.Canvas.Width, d.Tuning.Canvas.Height, d.Catalog)
		}
		d.Intro.Render(s, th)
	case ModeThemeSelect:
		if d.Select == nil {
			d.Select = d.newSelectScreen()
		}
		d.Select.Render(s, th)
	case ModePlaying:
		if d.Match == nil {
			renderLoading(s)
			return nil
		}
		return d.Match.Render(s, th)
	case ModeGameOver:
		renderGameOver(s, th, d.Match, d.AnimMs)
	default:
		renderLoading(s)
	}
	return nil
}

// logRenderFault logs each distinct render failure once instead of every
// frame.
func (d *Director) logRenderFault(err error) {
	msg := err.Error()
	if msg == d.lastRenderFault {
		return
	}
	d.lastRenderFault = msg
	var f *Fault
	if errors.As(err, &f) && f.Kind == FaultModeRender {
		DebugError("Render error:", err)
		return
	}
	DebugWarn("Render group failed:", err)
}

func (d *Director) renderTransition(s gfx.Surface) {
	t := d.Transition
	if !t.Active || t.Alpha <= 0 {
		return
	}
	w, h := s.Size()
	s.Push()
	defer s.Pop()
	s.SetAlpha(1)
	s.FillRect(0, 0, w, h, gfx.WithAlpha(gfx.Black, t.Alpha))
	if t.Out && t.Alpha > 0.5 {
		k := t.Alpha - 0.5
		s.SetGlow(20*k*2, gfx.Cyan)
		s.StrokeRect(10, 10, w-20, h-20, 2, gfx.WithAlpha(gfx.Cyan, k*0.5))
	}
}
