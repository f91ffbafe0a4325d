package game

import (
	"image/color"
	"math"

	"github.com/simukka/henshin-strike/config"
	"github.com/simukka/henshin-strike/gfx"
	"github.com/simukka/henshin-strike/theme"
)

type EnemyKind int

const (
	EnemyBasic EnemyKind = iota
	EnemyArmored
	EnemyBoss
	enemyKindCount
)

// Adding a kind without extending the switches below breaks the build.
const _ = uint(enemyKindCount - 3)
const _ = uint(3 - enemyKindCount)

// EnemyKindNames maps EnemyKind to display names for the UI
var EnemyKindNames = map[EnemyKind]string{
	EnemyBasic:   "Basic",
	EnemyArmored: "Armored",
	EnemyBoss:    "Boss",
}

func (k EnemyKind) String() string {
	if name, ok := EnemyKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// Key is the enemies.kinds entry of the tuning file.
func (k EnemyKind) Key() string {
	switch k {
	case EnemyBasic:
		return config.EnemyBasic
	case EnemyArmored:
		return config.EnemyArmored
	case EnemyBoss:
		return config.EnemyBoss
	}
	return config.EnemyBasic
}

// Enemy falls from the top of the canvas toward the player.
type Enemy struct {
	X, Y          float64
	Width, Height float64
	Speed         float64
	Kind          EnemyKind
	MaxHealth     int
	Health        int
	Score         int
	Dead          bool
}

// NewEnemy creates an enemy of kind at (x, y). baseSpeed is scaled by the
// kind's speed multiplier.
func NewEnemy(t *config.Tuning, kind EnemyKind, x, y, baseSpeed float64) *Enemy {
	k := t.EnemyKind(kind.Key())
	return &Enemy{
		X:         x,
		Y:         y,
		Width:     k.Width,
		Height:    k.Height,
		Speed:     baseSpeed * k.SpeedMultiplier,
		Kind:      kind,
		MaxHealth: k.MaxHealth,
		Health:    k.MaxHealth,
		Score:     k.Score,
	}
}

// GetPosition implements Collidable interface.
func (e *Enemy) GetPosition() (x, y float64) {
	return e.X + e.Width/2, e.Y + e.Height/2
}

// Bounds implements Entity.
func (e *Enemy) Bounds() Rect {
	return Rect{X: e.X, Y: e.Y, W: e.Width, H: e.Height}
}

// TakeDamage lowers health, never below zero. It returns true only on the
// hit that takes health to zero.
func (e *Enemy) TakeDamage(amount int) bool {
	if e.Health <= 0 {
		return false
	}
	e.Health -= amount
	if e.Health <= 0 {
		e.Health = 0
		return true
	}
	return false
}

// Destroyed reports whether health reached zero.
func (e *Enemy) Destroyed() bool {
	return e.Health <= 0
}

// HealthFraction is current over max health.
func (e *Enemy) HealthFraction() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return float64(e.Health) / float64(e.MaxHealth)
}

// ShowHealthBar reports whether the bar is drawn: tough kinds always, any
// kind once damaged.
func (e *Enemy) ShowHealthBar() bool {
	return e.MaxHealth > 1 || e.Health < e.MaxHealth
}

// Update moves the enemy down by its speed scaled by timeScale.
func (e *Enemy) Update(timeScale float64) {
	e.Y += e.Speed * timeScale
}

// Render implements Entity.
func (e *Enemy) Render(s gfx.Surface, th *theme.Theme) {
	style := th.EnemyShip
	s.Push()
	if style.Glow {
		s.SetGlow(8, style.Color)
	}
	s.FillRect(e.X, e.Y, e.Width, e.Height, style.Color)
	s.FillRect(e.X+5, e.Y+20, e.Width-10, 5, style.AccentColor)
	s.FillRect(e.X+e.Width/2-5, e.Y+25, 10, 10, style.AccentColor)
	s.Pop()

	if e.ShowHealthBar() {
		NewHealthBar(e.Width).Render(s, e.X, e.Y, e.Width, e.HealthFraction())
	}
}

var (
	healthHigh   = gfx.MustHex("#00ff00")
	healthMedium = gfx.MustHex("#ffff00")
	healthLow    = gfx.MustHex("#ff0000")
	healthBack   = gfx.MustHex("#333333")
)

// HealthBar is the small bar drawn above damaged or armored enemies.
type HealthBar struct {
	Width   float64
	Height  float64
	OffsetY float64
}

// NewHealthBar sizes a bar for an enemy of the given width.
func NewHealthBar(enemyWidth float64) HealthBar {
	return HealthBar{
		Width:   math.Floor(enemyWidth * healthBarRatio),
		Height:  healthBarHeight,
		OffsetY: healthBarOffset,
	}
}

// Color picks green above two thirds, yellow above one third, red below.
func (h HealthBar) Color(fraction float64) color.NRGBA {
	if fraction > 0.66 {
		return healthHigh
	} else if fraction > 0.33 {
		return healthMedium
	}
	return healthLow
}

// Render draws the bar centered over an enemy at (x, y) of width w.
func (h HealthBar) Render(s gfx.Surface, x, y, w, fraction float64) {
	if fraction <= 0 {
		return
	}
	barX := x + (w-h.Width)/2
	barY := y - h.OffsetY
	s.FillRect(barX, barY, h.Width, h.Height, healthBack)
	s.FillRect(barX, barY, h.Width*fraction, h.Height, h.Color(fraction))
	s.StrokeRect(barX, barY, h.Width, h.Height, 1, gfx.White)
}
