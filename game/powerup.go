package game

import (
	"errors"
	"image/color"
	"math"

	"github.com/simukka/henshin-strike/common"
	"github.com/simukka/henshin-strike/config"
	"github.com/simukka/henshin-strike/gfx"
	"github.com/simukka/henshin-strike/theme"
)

// PowerUp is a pickup drifting down the canvas.
type PowerUp struct {
	X, Y       float64
	Size       float64
	Speed      float64
	Kind       PowerUpKind
	Entry      *CatalogEntry
	AgeMs      float64
	LifetimeMs float64
	Rotation   float64
	PulsePhase float64
}

// Bounds implements Entity.
func (p *PowerUp) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Size, H: p.Size}
}

// Update drifts, spins and ages the pickup by one tick of tickMs.
func (p *PowerUp) Update(tickMs float64) {
	p.Y += p.Speed
	p.Rotation += pickupSpin
	p.PulsePhase += pickupPulseStep
	p.AgeMs += tickMs
}

// Expired reports whether the pickup outlived its lifetime.
func (p *PowerUp) Expired() bool {
	return p.AgeMs >= p.LifetimeMs
}

// ActivePowerUp is one collected instance with its own countdown.
type ActivePowerUp struct {
	Kind            PowerUpKind
	Entry           *CatalogEntry
	TimeRemainingMs float64
	StartMs         float64
	Record          EffectRecord
}

// Progress is the fraction of the duration still remaining.
func (a *ActivePowerUp) Progress() float64 {
	if a.Entry == nil || a.Entry.DurationMs <= 0 {
		return 0
	}
	return clampFloat(a.TimeRemainingMs/a.Entry.DurationMs, 0, 1)
}

// PowerUpSystem spawns pickups and runs the timers of collected power-ups.
// It is the only writer of player modifiers and the match time scale.
type PowerUpSystem struct {
	PowerUps []*PowerUp
	Active   []*ActivePowerUp

	catalog      *Catalog
	cfg          config.PowerUpConfig
	rng          *common.SeededRNG
	tickMs       float64
	canvasW      float64
	canvasH      float64
	lastSpawnMs  float64
	spawnEveryMs float64
}

// NewPowerUpSystem creates an empty system. The first pickup appears after
// one randomized spawn interval.
func NewPowerUpSystem(cat *Catalog, t *config.Tuning, rng *common.SeededRNG) *PowerUpSystem {
	s := &PowerUpSystem{
		catalog: cat,
		cfg:     t.PowerUps,
		rng:     rng,
		tickMs:  t.Loop.TickMillis,
		canvasW: t.Canvas.Width,
		canvasH: t.Canvas.Height,
	}
	s.spawnEveryMs = s.nextSpawnInterval()
	return s
}

func (s *PowerUpSystem) nextSpawnInterval() float64 {
	return s.cfg.SpawnMinMs + s.rng.Random()*s.cfg.SpawnJitterMs
}

// Update runs one tick: the spawn check, pickup drift and expiry, then the
// active timers. It returns the instances that expired this tick and any
// revert failures as FaultEffect errors.
func (s *PowerUpSystem) Update(now float64, tgt EffectTarget) ([]*ActivePowerUp, error) {
	if now-s.lastSpawnMs > s.spawnEveryMs {
		s.Spawn()
		s.lastSpawnMs = now
		s.spawnEveryMs = s.nextSpawnInterval()
	}

	kept := s.PowerUps[:0]
	for _, p := range s.PowerUps {
		p.Update(s.tickMs)
		if p.Y < s.canvasH+s.cfg.DespawnMargin && !p.Expired() {
			kept = append(kept, p)
		}
	}
	s.PowerUps = kept

	var expired []*ActivePowerUp
	for _, a := range s.Active {
		a.TimeRemainingMs -= s.tickMs
		if a.TimeRemainingMs <= 0 {
			expired = append(expired, a)
		}
	}
	if len(expired) == 0 {
		return nil, nil
	}

	var errs []error
	for _, a := range expired {
		s.remove(a)
		if sibling := s.lastOfKind(a.Kind); sibling != nil {
			// Another instance of the same kind is still running: it takes
			// over the record with the original prior values.
			sibling.Record = a.Record
			continue
		}
		if err := Revert(a.Record, tgt); err != nil {
			errs = append(errs, fault(FaultEffect, "revert "+a.Kind.Key(), err))
		}
	}
	return expired, errors.Join(errs...)
}

// Spawn drops a random pickup just above the canvas.
func (s *PowerUpSystem) Spawn() *PowerUp {
	kind := PowerUpKind(s.rng.RandomInt(0, PowerUpKindCount))
	p := &PowerUp{
		X:          s.rng.Random() * (s.canvasW - s.cfg.Size),
		Y:          s.cfg.SpawnY,
		Size:       s.cfg.Size,
		Speed:      s.cfg.SpeedMin + s.rng.Random()*s.cfg.SpeedRange,
		Kind:       kind,
		Entry:      s.catalog.Entry(kind),
		LifetimeMs: s.cfg.LifetimeMs,
		PulsePhase: s.rng.Random() * math.Pi * 2,
	}
	s.PowerUps = append(s.PowerUps, p)
	return p
}

// CheckCollision removes and returns the first pickup overlapping the
// player, or nil. At most one pickup is taken per call.
func (s *PowerUpSystem) CheckCollision(player *Player) *PowerUp {
	for i, p := range s.PowerUps {
		if Collides(p, player) {
			s.PowerUps = append(s.PowerUps[:i], s.PowerUps[i+1:]...)
			return p
		}
	}
	return nil
}

// Collect applies the pickup's effect and starts its timer. The instance is
// tracked even when the effect fails; its empty record makes the later
// revert a no-op.
func (s *PowerUpSystem) Collect(p *PowerUp, tgt EffectTarget, now float64) (*ActivePowerUp, error) {
	entry := s.catalog.Entry(p.Kind)
	if entry == nil {
		return nil, fault(FaultEffect, "apply", ErrUnknownPowerUp)
	}

	rec, err := Apply(p.Kind, tgt)
	if sibling := s.lastOfKind(p.Kind); sibling != nil && err == nil {
		// The running instance already holds the true prior values.
		rec = sibling.Record
	}
	a := &ActivePowerUp{
		Kind:            p.Kind,
		Entry:           entry,
		TimeRemainingMs: entry.DurationMs,
		StartMs:         now,
		Record:          rec,
	}
	s.Active = append(s.Active, a)
	return a, fault(FaultEffect, "apply "+p.Kind.Key(), err)
}

// ActiveCount counts running instances of kind k.
func (s *PowerUpSystem) ActiveCount(k PowerUpKind) int {
	n := 0
	for _, a := range s.Active {
		if a.Kind == k {
			n++
		}
	}
	return n
}

func (s *PowerUpSystem) lastOfKind(k PowerUpKind) *ActivePowerUp {
	for i := len(s.Active) - 1; i >= 0; i-- {
		if s.Active[i].Kind == k {
			return s.Active[i]
		}
	}
	return nil
}

func (s *PowerUpSystem) remove(a *ActivePowerUp) {
	for i, x := range s.Active {
		if x == a {
			s.Active = append(s.Active[:i], s.Active[i+1:]...)
			return
		}
	}
}

// Render implements Entity. The body shape tells the kinds apart.
func (p *PowerUp) Render(s gfx.Surface, th *theme.Theme) {
	entry := p.Entry
	if entry == nil {
		return
	}
	pulse := math.Sin(p.PulsePhase)*0.3 + 0.7
	alpha := math.Max(0, 1-(p.AgeMs/p.LifetimeMs)*0.3)
	half := p.Size / 2

	s.Push()
	defer s.Pop()
	s.Translate(p.X+half, p.Y+half)
	s.Rotate(p.Rotation)
	s.SetAlpha(alpha)

	s.SetGlow(20*pulse, entry.GlowColor)
	s.StrokeCircle(0, 0, half+4, 2, entry.GlowColor)

	s.SetGlow(15*pulse, entry.GlowColor)
	drawPickupShape(s, p.Kind, p.Size, entry.Color)

	s.SetGlow(0, entry.GlowColor)
	core := 8 + 4*pulse
	s.FillRect(-core/2, -core/2, core, core, gfx.White)
	s.Text(entry.Symbol, 0, 0, gfx.TextStyle{Size: 12, Align: gfx.AlignCenter, Color: gfx.Black, Bold: true})

	s.SetAlpha(0.6 * pulse)
	switch p.Kind {
	case RapidFire:
		for i := 0; i < 4; i++ {
			a := float64(i) * math.Pi / 2
			r0 := half + 5
			s.Line(math.Cos(a)*r0, math.Sin(a)*r0, math.Cos(a)*(r0+8), math.Sin(a)*(r0+8), 1, entry.Color)
		}
	case ShieldGenerator:
		s.StrokeCircle(0, 0, half+6, 1, entry.Color)
	case TimeSlow:
		for i := 0; i < 4; i++ {
			a := float64(i) * math.Pi / 2
			r0 := half + 3
			s.Line(math.Cos(a)*r0, math.Sin(a)*r0, math.Cos(a)*(r0+4), math.Sin(a)*(r0+4), 2, entry.Color)
		}
	case WideShot, MegaBlast, AutoAim:
	}
}

// drawPickupShape fills the body of a pickup centered on the origin.
func drawPickupShape(s gfx.Surface, k PowerUpKind, size float64, c color.NRGBA) {
	half := size / 2
	switch k {
	case RapidFire:
		s.FillPolygon([]gfx.Point{{X: 0, Y: -half}, {X: half, Y: 0}, {X: 0, Y: half}, {X: -half, Y: 0}}, c)
	case WideShot:
		pts := make([]gfx.Point, 6)
		for i := range pts {
			a := float64(i) * math.Pi / 3
			pts[i] = gfx.Point{X: math.Cos(a) * half, Y: math.Sin(a) * half}
		}
		s.FillPolygon(pts, c)
	case ShieldGenerator:
		s.FillCircle(0, 0, half, c)
	case TimeSlow:
		pts := make([]gfx.Point, 8)
		for i := range pts {
			a := float64(i) * math.Pi / 4
			r := half
			if i%2 == 1 {
				r = size / 4
			}
			pts[i] = gfx.Point{X: math.Cos(a) * r, Y: math.Sin(a) * r}
		}
		s.FillPolygon(pts, c)
	case MegaBlast:
		s.FillPolygon([]gfx.Point{{X: 0, Y: -half}, {X: half, Y: half}, {X: -half, Y: half}}, c)
	case AutoAim:
		const thickness = 6.0
		s.FillRect(-thickness/2, -half, thickness, size, c)
		s.FillRect(-half, -thickness/2, size, thickness, c)
	default:
		s.FillRect(-half, -half, size, size, c)
	}
}
