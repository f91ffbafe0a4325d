package game

import (
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/simukka/henshin-strike/gfx"
	"github.com/simukka/henshin-strike/theme"
)

var (
	panelCyan    = gfx.MustHex("#00ffff")
	panelMagenta = gfx.MustHex("#ff00ff")
	panelBlue    = gfx.MustHex("#003264")
	panelPlum    = gfx.MustHex("#640032")
	demoNavy     = gfx.MustHex("#001428")
	demoEnemy    = gfx.MustHex("#ff4444")
	demoPlayer   = gfx.MustHex("#44ff44")
	cardDim      = gfx.MustHex("#666666")
	cardHover    = gfx.MustHex("#aaaaaa")
	errorBack    = gfx.MustHex("#330000")
	errorText    = gfx.MustHex("#ff6666")
	loadingBack  = gfx.MustHex("#000033")
)

var controlLines = []string{
	"MOVEMENT:",
	"  Arrow Keys to move your ship",
	"  Navigate to avoid enemy ships",
	"",
	"SHOOTING:",
	"  Spacebar to fire bullets",
	"  Destroy enemies to score points",
	"",
	"OBJECTIVE:",
	"  Survive as long as possible",
	"  Collect power-ups for advantages",
	"",
	"CONTROLS:",
	"  R to restart, ESC for menu",
}

// IntroScreen is the title screen with the control guide and a small
// animated demo.
type IntroScreen struct {
	AnimMs   float64
	Start    *Button
	catalog  *Catalog
	canvasW  float64
	canvasH  float64
	demoSpin float64
}

// NewIntroScreen builds the intro screen for a canvasW x canvasH canvas.
func NewIntroScreen(canvasW, canvasH float64, cat *Catalog) *IntroScreen {
	b := NewCenteredButton(canvasW, "START GAME - SELECT THEME")
	b.Hint = "(click here or press SPACE/ENTER)"
	return &IntroScreen{Start: b, catalog: cat, canvasW: canvasW, canvasH: canvasH}
}

// Update advances the animation by one tick.
func (i *IntroScreen) Update(tickMs float64) {
	i.AnimMs += tickMs
	i.demoSpin += pickupSpin
	i.Start.Update(tickMs)
}

// PointerMove updates hover state.
func (i *IntroScreen) PointerMove(x, y float64) {
	i.Start.Hover(x, y)
}

// Click reports whether the start button was clicked.
func (i *IntroScreen) Click(x, y float64) bool {
	if !i.Start.Contains(x, y) {
		return false
	}
	i.Start.Press()
	return true
}

// Render draws the screen.
func (i *IntroScreen) Render(s gfx.Surface, th *theme.Theme) {
	theme.DrawBackground(s, th, i.AnimMs)
	drawTitle(s, th, "HENSHIN STRIKE", "Enhanced Edition", 80, 48)
	i.drawControls(s)
	i.drawPowerUpGuide(s)
	i.drawDemo(s)
	i.Start.Render(s, gfx.Green, true, i.AnimMs)
}

func (i *IntroScreen) drawControls(s gfx.Surface) {
	const x, y, w, h = 10.0, 80.0, 200.0, 350.0
	s.FillRect(x, y, w, h, gfx.WithAlpha(panelBlue, 0.8))
	s.StrokeRect(x, y, w, h, 2, panelCyan)
	s.Text("GAME CONTROLS", x+w/2, y+25, gfx.TextStyle{Size: 18, Align: gfx.AlignCenter, Color: gfx.White, Bold: true})

	ly := y + 50
	for _, line := range controlLines {
		switch {
		case line == "":
			ly += 5
			continue
		case strings.HasSuffix(line, ":"):
			s.Text(line, x+15, ly, gfx.TextStyle{Size: 14, Color: panelCyan, Bold: true})
		default:
			s.Text(line, x+15, ly, gfx.TextStyle{Size: 12, Color: gfx.White})
		}
		ly += 16
	}
}

func (i *IntroScreen) drawPowerUpGuide(s gfx.Surface) {
	const w, h, iconSize, lineHeight = 200.0, 350.0, 20.0, 40.0
	x := i.canvasW - w - 10
	y := 80.0
	s.FillRect(x, y, w, h, gfx.WithAlpha(panelPlum, 0.8))
	s.StrokeRect(x, y, w, h, 2, panelMagenta)
	s.Text("POWER-UP GUIDE", x+w/2, y+25, gfx.TextStyle{Size: 18, Align: gfx.AlignCenter, Color: gfx.White, Bold: true})

	if i.catalog != nil {
		for n, e := range i.catalog.Entries() {
			cy := y + 50 + float64(n)*lineHeight
			ix := x + 15
			s.FillRect(ix, cy-iconSize/2, iconSize, iconSize, e.Color)
			s.Text(e.Symbol, ix+iconSize/2, cy, gfx.TextStyle{Size: 12, Align: gfx.AlignCenter, Color: gfx.White, Bold: true})
			tx := ix + iconSize + 10
			s.Text(e.Name, tx, cy-8, gfx.TextStyle{Size: 12, Color: e.Color, Bold: true})
			for l, line := range wrapWords(e.Description, 26) {
				s.Text(line, tx, cy+5+float64(l)*12, gfx.TextStyle{Size: 10, Color: gfx.White})
			}
		}
	}
	s.Text("TIP: Fly into glowing power-ups!", x+w/2, y+h-15, gfx.TextStyle{Size: 12, Align: gfx.AlignCenter, Color: gfx.Yellow, Bold: true})
}

// drawDemo animates a tiny ship strafing under an enemy and a spinning
// pickup. The movement direction changes every second.
func (i *IntroScreen) drawDemo(s gfx.Surface) {
	const pw, ph = 360.0, 280.0
	px := (i.canvasW - pw) / 2
	py := 160.0
	s.FillRect(px, py, pw, ph, gfx.WithAlpha(demoNavy, 0.9))
	s.StrokeRect(px, py, pw, ph, 3, panelCyan)
	s.Text("GAME PREVIEW", i.canvasW/2, py+30, gfx.TextStyle{Size: 24, Align: gfx.AlignCenter, Color: panelCyan, Bold: true})

	const dw, dh = 120.0, 180.0
	dx, dy := px+20, py+60
	s.FillRect(dx, dy, dw, dh, gfx.WithAlpha(gfx.Black, 0.5))
	s.StrokeRect(dx, dy, dw, dh, 1, debugSeparator)
	gfx.CenteredText(s, "LIVE DEMO", dx+dw/2, dy-8, 12, gfx.Yellow)

	ex, ey := dx+50, dy+30
	s.FillRect(ex, ey, 30, 20, demoEnemy)
	s.FillRect(ex+5, ey+15, 20, 3, gfx.White)

	shipX := dx + 50 + math.Sin(i.AnimMs*0.003)*15
	shipY := dy + 130
	s.FillRect(shipX, shipY, 30, 20, demoPlayer)
	s.FillRect(shipX+5, shipY+5, 20, 3, gfx.White)
	s.FillRect(shipX+10, shipY-3, 10, 8, gfx.White)
	i.drawMoveArrow(s, shipX+15, shipY+10)

	if int(i.AnimMs/500)%4 == 0 {
		by := shipY - math.Mod(i.AnimMs*0.1, 100)
		s.FillRect(shipX+15, by, 3, 8, gfx.Yellow)
	}

	s.Push()
	s.Translate(dx+90, dy+90)
	s.Rotate(i.demoSpin)
	s.SetGlow(10, panelMagenta)
	s.FillRect(-10, -10, 20, 20, panelMagenta)
	s.SetGlow(0, panelMagenta)
	s.FillRect(-6, -6, 12, 12, gfx.White)
	s.Pop()
	if int(i.AnimMs/2000)%3 == 2 {
		s.Line(dx+90, dy+90, shipX+15, shipY+10, 2, panelMagenta)
	}

	ix, iy := dx+dw+20, dy+10
	s.Text("FEATURES:", ix, iy, gfx.TextStyle{Size: 14, Color: gfx.White, Bold: true})
	features := []string{"3 Themed experiences", strconv.Itoa(PowerUpKindCount) + " Unique power-ups", "Dynamic enemies", "Particle effects"}
	for n, f := range features {
		s.Text(f, ix, iy+20+float64(n)*15, gfx.TextStyle{Size: 12, Color: debugLabel})
	}
	s.Text("CONTROLS:", ix, iy+90, gfx.TextStyle{Size: 12, Color: panelCyan, Bold: true})
	s.Text("ARROWS Move", ix, iy+105, gfx.TextStyle{Size: 11, Color: gfx.White})
	s.Text("SPACE Shoot", ix, iy+118, gfx.TextStyle{Size: 11, Color: gfx.White})
	s.Text("R Restart", ix, iy+131, gfx.TextStyle{Size: 11, Color: gfx.White})
	s.Text("Check side panels", ix, iy+150, gfx.TextStyle{Size: 11, Color: gfx.Yellow, Bold: true})
	s.Text("for detailed guides!", ix, iy+163, gfx.TextStyle{Size: 11, Color: gfx.Yellow, Bold: true})
}

func (i *IntroScreen) drawMoveArrow(s gfx.Surface, cx, cy float64) {
	// right, left, up, down
	dirs := [4][2]float64{{1, 0}, {-1, 0}, {0, -1}, {0, 1}}
	d := dirs[int(i.AnimMs/1000)%4]
	x1, y1 := cx+d[0]*20, cy+d[1]*20
	x2, y2 := cx+d[0]*35, cy+d[1]*35
	s.Line(x1, y1, x2, y2, 2, panelCyan)
	// arrow head
	px, py := -d[1]*5, d[0]*5
	s.Line(x2, y2, x2-d[0]*5+px, y2-d[1]*5+py, 2, panelCyan)
	s.Line(x2, y2, x2-d[0]*5-px, y2-d[1]*5-py, 2, panelCyan)
}

// ThemeCard is one selectable theme on the select screen.
type ThemeCard struct {
	X, Y, W, H float64
	Theme      *theme.Theme
	Hovered    bool
}

// ThemeSelectScreen lets the player pick a theme before the match.
type ThemeSelectScreen struct {
	AnimMs   float64
	Selected int
	Cards    []*ThemeCard
	Confirm  *Button
	canvasW  float64
}

// NewThemeSelectScreen lays the themes out as a centered row of cards.
// selected is the index highlighted first.
func NewThemeSelectScreen(canvasW float64, themes []*theme.Theme, selected int) *ThemeSelectScreen {
	total := CardWidth*float64(len(themes)) + CardSpacing*float64(maxInt(0, len(themes)-1))
	startX := (canvasW - total) / 2
	cards := make([]*ThemeCard, 0, len(themes))
	for n, t := range themes {
		cards = append(cards, &ThemeCard{
			X:     startX + (CardWidth+CardSpacing)*float64(n),
			Y:     CardY,
			W:     CardWidth,
			H:     CardHeight,
			Theme: t,
		})
	}
	if selected < 0 || selected >= len(cards) {
		selected = 0
	}
	return &ThemeSelectScreen{
		Selected: selected,
		Cards:    cards,
		Confirm:  NewCenteredButton(canvasW, "START GAME"),
		canvasW:  canvasW,
	}
}

// Update advances the animation by one tick.
func (t *ThemeSelectScreen) Update(tickMs float64) {
	t.AnimMs += tickMs
	t.Confirm.Update(tickMs)
}

// Move shifts the selection by delta, clamped to the card row.
func (t *ThemeSelectScreen) Move(delta int) {
	if len(t.Cards) == 0 {
		return
	}
	t.Selected = minInt(len(t.Cards)-1, maxInt(0, t.Selected+delta))
}

// Highlighted returns the selected theme, or nil without cards.
func (t *ThemeSelectScreen) Highlighted() *theme.Theme {
	if t.Selected < 0 || t.Selected >= len(t.Cards) {
		return nil
	}
	return t.Cards[t.Selected].Theme
}

// PointerMove updates hover state of the cards and the button.
func (t *ThemeSelectScreen) PointerMove(x, y float64) {
	for _, c := range t.Cards {
		c.Hovered = gfx.Contains(c.X, c.Y, c.W, c.H, x, y)
	}
	t.Confirm.Hover(x, y)
}

// Click selects a card or confirms. It reports true only for a confirm.
func (t *ThemeSelectScreen) Click(x, y float64) bool {
	for n, c := range t.Cards {
		if gfx.Contains(c.X, c.Y, c.W, c.H, x, y) {
			t.Selected = n
			return false
		}
	}
	if t.Confirm.Contains(x, y) {
		t.Confirm.Press()
		return true
	}
	return false
}

// Render draws the screen using the highlighted theme as a live preview.
func (t *ThemeSelectScreen) Render(s gfx.Surface, th *theme.Theme) {
	if h := t.Highlighted(); h != nil {
		th = h
	}
	theme.DrawBackground(s, th, t.AnimMs)
	drawTitle(s, th, "SELECT THEME", "Choose your visual style", 100, 42)

	for n, c := range t.Cards {
		t.drawCard(s, c, n == t.Selected)
	}

	const pw, ph = 200.0, 80.0
	px, py := t.canvasW/2-pw/2, 350.0
	s.FillRect(px, py, pw, ph, gfx.WithAlpha(gfx.Black, 0.7))
	s.StrokeRect(px, py, pw, ph, 1, cardDim)
	gfx.CenteredText(s, "SPACESHIP PREVIEW", t.canvasW/2, py-12, 14, gfx.White)
	drawPlayerShip(s, th.PlayerShip, t.canvasW/2-20, py+25, 40, 30)

	t.Confirm.Render(s, th.UI.AccentColor, th.UI.Glow, t.AnimMs)
	gfx.CenteredText(s, "Use arrow keys to select theme, SPACE/ENTER to confirm", t.canvasW/2, t.Confirm.Y+t.Confirm.H+12, 14, cardHover)
}

func (t *ThemeSelectScreen) drawCard(s gfx.Surface, c *ThemeCard, selected bool) {
	fill, stroke, lw := gfx.WithAlpha(gfx.Black, 0.6), cardDim, 1.0
	switch {
	case selected:
		fill, stroke, lw = gfx.WithAlpha(gfx.White, 0.2), gfx.White, 3
	case c.Hovered:
		fill, stroke, lw = gfx.WithAlpha(gfx.White, 0.1), cardHover, 2
	}
	s.FillRect(c.X, c.Y, c.W, c.H, fill)
	s.StrokeRect(c.X, c.Y, c.W, c.H, lw, stroke)

	nameColor := debugLabel
	if selected {
		nameColor = gfx.White
	}
	cx := c.X + c.W/2
	s.Text(c.Theme.Name, cx, c.Y+20, gfx.TextStyle{Size: 18, Align: gfx.AlignCenter, Color: nameColor, Bold: true})

	const sw, sh, gap = 40.0, 20.0, 5.0
	sx := c.X + (c.W-(sw*3+gap*2))/2
	for n, col := range []color.NRGBA{c.Theme.Colors.Primary, c.Theme.Colors.Secondary, c.Theme.Colors.Accent} {
		s.FillRect(sx+float64(n)*(sw+gap), c.Y+40, sw, sh, col)
	}
	gfx.CenteredText(s, c.Theme.Tagline, cx, c.Y+85, 12, cardHover)
	if selected {
		s.Text("SELECTED", cx, c.Y+105, gfx.TextStyle{Size: 14, Align: gfx.AlignCenter, Color: gfx.Green, Bold: true})
	}
}

// renderGameOver draws the final score over the themed background.
func renderGameOver(s gfx.Surface, th *theme.Theme, m *Match, animMs float64) {
	w, h := s.Size()
	theme.DrawBackground(s, th, animMs)
	s.FillRect(0, 0, w, h, gfx.WithAlpha(gfx.Black, 0.8))

	s.Push()
	defer s.Pop()
	ui := th.UI
	if ui.Glow {
		s.SetGlow(25, ui.AccentColor)
	}
	s.Text("GAME OVER", w/2, h/2-80, gfx.TextStyle{Size: 56, Align: gfx.AlignCenter, Color: ui.TextColor, Bold: true})
	if m != nil {
		if ui.Glow {
			s.SetGlow(15, ui.AccentColor)
		}
		s.Text("Final Score: "+groupThousands(m.Score), w/2, h/2-20, gfx.TextStyle{Size: 28, Align: gfx.AlignCenter, Color: ui.AccentColor, Bold: true})
		gfx.CenteredText(s, "Level Reached: "+strconv.Itoa(m.Level()), w/2, h/2+10, 18, ui.TextColor)
	}
	if ui.Glow {
		s.SetGlow(8, ui.AccentColor)
	}
	s.Text("Press R to Play Again", w/2, h/2+60, gfx.TextStyle{Size: 20, Align: gfx.AlignCenter, Color: ui.TextColor, Bold: true})
	s.Text("Press ESC to Return to Menu", w/2, h/2+90, gfx.TextStyle{Size: 20, Align: gfx.AlignCenter, Color: ui.TextColor, Bold: true})
}

// renderErrorScreen replaces a frame whose screen failed to draw.
func renderErrorScreen(s gfx.Surface) {
	w, h := s.Size()
	s.Push()
	defer s.Pop()
	s.SetAlpha(1)
	s.SetGlow(0, gfx.Black)
	s.FillRect(0, 0, w, h, errorBack)
	gfx.CenteredText(s, "Rendering Error", w/2, h/2-20, 24, errorText)
	gfx.CenteredText(s, "Press F5 to reload", w/2, h/2+20, 16, gfx.White)
}

func renderLoading(s gfx.Surface) {
	w, h := s.Size()
	s.FillRect(0, 0, w, h, loadingBack)
	gfx.CenteredText(s, "Loading...", w/2, h/2, 24, gfx.White)
}

func drawTitle(s gfx.Surface, th *theme.Theme, title, subtitle string, y, size float64) {
	w, _ := s.Size()
	ui := th.UI
	s.Push()
	defer s.Pop()
	if ui.Glow {
		s.SetGlow(20, ui.AccentColor)
	}
	s.Text(title, w/2, y, gfx.TextStyle{Size: size, Align: gfx.AlignCenter, Color: ui.TextColor, Bold: true})
	if ui.Glow {
		s.SetGlow(10, ui.AccentColor)
	}
	s.Text(subtitle, w/2, y+size*0.65, gfx.TextStyle{Size: size / 2, Align: gfx.AlignCenter, Color: ui.AccentColor})
}

// wrapWords breaks s into lines of at most width runes, splitting on spaces.
// A single word longer than width gets its own line.
func wrapWords(s string, width int) []string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(s) {
		switch {
		case line == "":
			line = word
		case len([]rune(line))+1+len([]rune(word)) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// groupThousands formats n with comma separators.
func groupThousands(n int) string {
	neg := n < 0
	if neg {
		n = -n
	}
	digits := strconv.Itoa(n)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
