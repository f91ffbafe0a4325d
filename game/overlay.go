package game

import (
	"image/color"
	"strconv"

	"github.com/simukka/henshin-strike/gfx"
)

// StatsOverlay displays real-time game statistics
type StatsOverlay struct {
	Visible bool

	// FPS tracking
	FrameCount    int
	LastFPSUpdate float64
	CurrentFPS    float64

	// Position and styling
	PanelX      float64
	PanelY      float64
	LineHeight  float64
	PanelWidth  float64
	PanelHeight float64
}

// NewStatsOverlay creates a new stats overlay anchored to the top right of
// a canvas canvasW wide.
func NewStatsOverlay(canvasW float64) *StatsOverlay {
	return &StatsOverlay{
		PanelX:      canvasW - 280,
		PanelY:      16,
		LineHeight:  18,
		PanelWidth:  264,
		PanelHeight: 420,
	}
}

// Toggle toggles the stats overlay visibility
func (s *StatsOverlay) Toggle() {
	s.Visible = !s.Visible
}

// UpdateFPS updates the FPS counter
func (s *StatsOverlay) UpdateFPS(currentTime float64) {
	s.FrameCount++

	// Update FPS every second
	elapsed := currentTime - s.LastFPSUpdate
	if elapsed >= 1000 {
		s.CurrentFPS = float64(s.FrameCount) / (elapsed / 1000)
		s.FrameCount = 0
		s.LastFPSUpdate = currentTime
	}
}

var (
	statsBlue    = gfx.MustHex("#00aaff")
	statsSection = gfx.MustHex("#666666")
	statsOrange  = gfx.MustHex("#ff8800")
	statsPink    = gfx.MustHex("#ff0066")
	statsPurple  = gfx.MustHex("#8888ff")
	statsDim     = gfx.MustHex("#aaaaaa")
)

// Render draws hitboxes for the running match and the stats panel.
func (s *StatsOverlay) Render(surf gfx.Surface, d *Director) {
	if !s.Visible {
		return
	}
	surf.Push()
	defer surf.Pop()

	m := d.Match
	if m != nil && d.Mode == ModePlaying {
		s.RenderEnemyDebug(surf, m)
		s.RenderPlayerDebug(surf, m)
	}

	surf.FillRect(s.PanelX, s.PanelY, s.PanelWidth, s.PanelHeight, gfx.WithAlpha(gfx.Black, 0.75))
	surf.StrokeRect(s.PanelX, s.PanelY, s.PanelWidth, s.PanelHeight, 1, statsBlue)
	surf.Text("GAME STATS [F10]", s.PanelX+10, s.PanelY+16, gfx.TextStyle{Size: 14, Color: statsBlue, Bold: true})
	surf.Line(s.PanelX+10, s.PanelY+28, s.PanelX+s.PanelWidth-10, s.PanelY+28, 1, debugSeparator)

	y := s.PanelY + 44
	s.drawStatLine(surf, "FPS", strconv.FormatFloat(s.CurrentFPS, 'f', 1, 64), debugGreen, y)
	y += s.LineHeight
	if d.Loop != nil {
		s.drawStatLine(surf, "Ticks", strconv.Itoa(d.Loop.Ticks), statsDim, y)
		y += s.LineHeight
	}

	y = s.drawSection(surf, "── Game State ──", y)
	s.drawStatLine(surf, "Mode", d.Mode.String(), gfx.White, y)
	y += s.LineHeight
	if d.Theme != nil {
		s.drawStatLine(surf, "Theme", d.Theme.Name, gfx.White, y)
		y += s.LineHeight
	}
	if m == nil {
		return
	}
	s.drawStatLine(surf, "Match", shortID(m.ID), statsDim, y)
	y += s.LineHeight
	s.drawStatLine(surf, "Level", strconv.Itoa(m.Level()), gfx.White, y)
	y += s.LineHeight
	s.drawStatLine(surf, "Score", strconv.Itoa(m.Score), gfx.Yellow, y)
	y += s.LineHeight
	s.drawStatLine(surf, "Lives", strconv.Itoa(m.Lives), s.healthColor(m.Lives*100/maxInt(1, m.Tuning.Lives)), y)
	y += s.LineHeight

	y = s.drawSection(surf, "── Objects ──", y)
	s.drawStatLine(surf, "Bullets", strconv.Itoa(len(m.Bullets)), statsOrange, y)
	y += s.LineHeight
	s.drawStatLine(surf, "Enemies", strconv.Itoa(len(m.Enemies)), statsPink, y)
	y += s.LineHeight
	particleCount := strconv.Itoa(m.Particles.ActiveCount) + "/" + strconv.Itoa(m.Particles.MaxSize)
	s.drawStatLine(surf, "Particles", particleCount, statsOrange, y)
	y += s.LineHeight
	s.drawStatLine(surf, "Pickups", strconv.Itoa(len(m.PowerUps.PowerUps)), debugGreen, y)
	y += s.LineHeight
	s.drawStatLine(surf, "Spawn every", strconv.FormatFloat(m.SpawnIntervalMs, 'f', 0, 64)+"ms", statsDim, y)
	y += s.LineHeight

	y = s.drawSection(surf, "── Player ──", y)
	p := m.Player
	s.drawStatLine(surf, "Cooldown", strconv.FormatFloat(p.ShootCooldownMs, 'f', 0, 64)+"ms", statsPurple, y)
	y += s.LineHeight
	s.drawStatLine(surf, "Damage", strconv.Itoa(p.BulletDamage), statsPurple, y)
	y += s.LineHeight
	s.drawStatLine(surf, "Active", strconv.Itoa(len(m.PowerUps.Active)), gfx.Cyan, y)
	y += s.LineHeight
	s.drawStatLine(surf, "Position", strconv.FormatFloat(p.X, 'f', 0, 64)+", "+strconv.FormatFloat(p.Y, 'f', 0, 64), statsDim, y)
}

// RenderEnemyDebug draws hitboxes and health for all enemies
func (s *StatsOverlay) RenderEnemyDebug(surf gfx.Surface, m *Match) {
	for _, e := range m.Enemies {
		r := e.Bounds()
		surf.StrokeRect(r.X, r.Y, r.W, r.H, 2, statsPink)
		cx, _ := r.Center()
		surf.Text("HP:"+strconv.Itoa(e.Health), cx, r.Y-14, gfx.TextStyle{Size: 10, Align: gfx.AlignCenter, Color: gfx.White})
		surf.Text(e.Kind.String(), cx, r.Y+r.H+10, gfx.TextStyle{Size: 9, Align: gfx.AlignCenter, Color: statsPink})
	}
}

// RenderPlayerDebug draws the player hitbox
func (s *StatsOverlay) RenderPlayerDebug(surf gfx.Surface, m *Match) {
	r := m.Player.Bounds()
	surf.StrokeRect(r.X, r.Y, r.W, r.H, 2, debugGreen)
}

func (s *StatsOverlay) drawSection(surf gfx.Surface, title string, y float64) float64 {
	y += 5
	surf.Text(title, s.PanelX+10, y, gfx.TextStyle{Size: 12, Color: statsSection})
	return y + s.LineHeight
}

// drawStatLine draws a single stat line with label and value
func (s *StatsOverlay) drawStatLine(surf gfx.Surface, label, value string, valueColor color.NRGBA, y float64) {
	surf.Text(label+":", s.PanelX+15, y, gfx.TextStyle{Size: 12, Color: debugLabel})
	surf.Text(value, s.PanelX+s.PanelWidth-15, y, gfx.TextStyle{Size: 12, Align: gfx.AlignRight, Color: valueColor})
}

// healthColor returns a color based on a percentage
func (s *StatsOverlay) healthColor(health int) color.NRGBA {
	if health > 75 {
		return debugGreen
	} else if health > 50 {
		return gfx.MustHex("#88ff00")
	} else if health > 25 {
		return gfx.Yellow
	} else {
		return gfx.Red
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// PerfTracker averages the time spent inside each frame over a long window
// and warns when the implied frame rate drops below a floor.
type PerfTracker struct {
	WindowMs float64
	MinFPS   float64

	windowStart float64
	frames      int
	totalMs     float64
	maxFrameMs  float64
	started     bool

	// LastFPS is the frame rate implied by the last complete window.
	LastFPS float64
}

// NewPerfTracker creates a tracker for the given window and floor.
func NewPerfTracker(windowMs, minFPS float64) *PerfTracker {
	return &PerfTracker{WindowMs: windowMs, MinFPS: minFPS}
}

// Record adds one frame that finished at now after frameMs of work. It
// returns true when a window just closed below the floor.
func (p *PerfTracker) Record(now, frameMs float64) bool {
	if !p.started {
		p.started = true
		p.windowStart = now
	}
	p.frames++
	p.totalMs += frameMs
	if frameMs > p.maxFrameMs {
		p.maxFrameMs = frameMs
	}
	if now-p.windowStart <= p.WindowMs {
		return false
	}

	slow := false
	if p.totalMs > 0 {
		p.LastFPS = 1000 / (p.totalMs / float64(p.frames))
		slow = p.LastFPS < p.MinFPS
	}
	if slow {
		DebugWarn("Performance warning: average FPS " + strconv.FormatFloat(p.LastFPS, 'f', 1, 64) +
			", max frame time " + strconv.FormatFloat(p.maxFrameMs, 'f', 2, 64) + "ms")
	}
	p.windowStart = now
	p.frames = 0
	p.totalMs = 0
	p.maxFrameMs = 0
	return slow
}
