package game

import (
	"math"

	"github.com/simukka/henshin-strike/config"
	"github.com/simukka/henshin-strike/gfx"
	"github.com/simukka/henshin-strike/theme"
)

var shieldColor = gfx.MustHex("#4444ff")

// Modifiers are the combat fields power-ups change. Only Apply and Revert
// write them once a match is running.
type Modifiers struct {
	ShootCooldownMs   float64
	BulletSpread      int
	SpreadAngle       float64
	BulletDamage      int
	BulletPenetration bool
	AutoAim           bool
	Invincible        bool
}

// Controls is the held movement state for one tick.
type Controls struct {
	Left, Right, Up, Down bool
}

// Player is the ship under keyboard control.
type Player struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	Modifiers

	// Base values effects are computed from, so applying twice is harmless.
	BaseCooldownMs float64
	BaseDamage     int

	bulletSpeed float64
	bulletW     float64
	bulletH     float64
	lastShotMs  float64
	shieldPhase float64
	canvasW     float64
	canvasH     float64
}

// DefaultModifiers returns the modifiers a fresh player starts with.
func DefaultModifiers(cfg config.PlayerConfig) Modifiers {
	return Modifiers{
		ShootCooldownMs: cfg.ShootCooldownMs,
		BulletSpread:    1,
		BulletDamage:    cfg.BulletDamage,
	}
}

// NewPlayer places a player centered near the bottom of the canvas.
func NewPlayer(t *config.Tuning) *Player {
	cfg := t.Player
	return &Player{
		X:              (t.Canvas.Width - cfg.Width) / 2,
		Y:              t.Canvas.Height - cfg.SpawnOffsetY,
		Width:          cfg.Width,
		Height:         cfg.Height,
		Speed:          cfg.Speed,
		Modifiers:      DefaultModifiers(cfg),
		BaseCooldownMs: cfg.ShootCooldownMs,
		BaseDamage:     cfg.BulletDamage,
		bulletSpeed:    cfg.BulletSpeed,
		bulletW:        t.Bullet.Width,
		bulletH:        t.Bullet.Height,
		lastShotMs:     math.Inf(-1),
		canvasW:        t.Canvas.Width,
		canvasH:        t.Canvas.Height,
	}
}

// Bounds implements Entity.
func (p *Player) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}

// Move applies held controls and keeps the ship fully on the canvas.
func (p *Player) Move(c Controls) {
	if c.Left {
		p.X -= p.Speed
	}
	if c.Right {
		p.X += p.Speed
	}
	if c.Up {
		p.Y -= p.Speed
	}
	if c.Down {
		p.Y += p.Speed
	}
	p.X = clampFloat(p.X, 0, p.canvasW-p.Width)
	p.Y = clampFloat(p.Y, 0, p.canvasH-p.Height)

	if p.Invincible {
		p.shieldPhase += shieldPulseStep
	} else {
		p.shieldPhase = 0
	}
}

// CanFire reports whether the cooldown has elapsed at simulation time now.
func (p *Player) CanFire(now float64) bool {
	return now-p.lastShotMs > p.ShootCooldownMs
}

// Fire returns the bullets of one volley, or nil while cooling down. With a
// spread above one the bullets fan out SpreadAngle apart, centered on
// straight up.
func (p *Player) Fire(now float64) []*Bullet {
	if !p.CanFire(now) {
		return nil
	}
	p.lastShotMs = now

	cx := p.X + p.Width/2
	if p.BulletSpread <= 1 || p.SpreadAngle == 0 {
		return []*Bullet{p.newBullet(cx, 0, -p.bulletSpeed)}
	}

	count := p.BulletSpread
	start := -p.SpreadAngle * float64(count-1) / 2
	out := make([]*Bullet, 0, count)
	for i := 0; i < count; i++ {
		angle := start + p.SpreadAngle*float64(i)
		out = append(out, p.newBullet(cx, math.Sin(angle)*p.bulletSpeed, -math.Cos(angle)*p.bulletSpeed))
	}
	return out
}

func (p *Player) newBullet(x, vx, vy float64) *Bullet {
	return &Bullet{
		X:           x,
		Y:           p.Y,
		VX:          vx,
		VY:          vy,
		Speed:       p.bulletSpeed,
		Width:       p.bulletW,
		Height:      p.bulletH,
		AutoAim:     p.AutoAim,
		Penetration: p.BulletPenetration,
	}
}

// Render implements Entity.
func (p *Player) Render(s gfx.Surface, th *theme.Theme) {
	if p.Invincible {
		cx, cy := p.Bounds().Center()
		alpha := math.Sin(p.shieldPhase)*0.3 + 0.5
		s.Push()
		s.SetAlpha(alpha * 0.3)
		s.FillCircle(cx, cy, shieldRadius, shieldColor)
		s.SetAlpha(alpha)
		s.StrokeCircle(cx, cy, shieldRadius, 3, shieldColor)
		s.Pop()
	}
	drawPlayerShip(s, th.PlayerShip, p.X, p.Y, p.Width, p.Height)
}

// drawPlayerShip draws the ship body and its two accent bars. The intro and
// theme preview screens share it.
func drawPlayerShip(s gfx.Surface, style theme.ShipStyle, x, y, w, h float64) {
	s.Push()
	defer s.Pop()
	if style.Glow {
		s.SetGlow(10, style.Color)
	}
	s.FillRect(x, y, w, h, style.Color)
	s.FillRect(x+5, y+5, w-10, 5, style.AccentColor)
	s.FillRect(x+w/2-5, y-5, 10, 10, style.AccentColor)
}
