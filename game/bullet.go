package game

import (
	"math"

	"github.com/simukka/henshin-strike/gfx"
	"github.com/simukka/henshin-strike/theme"
)

// Bullet is a player projectile. X is the horizontal center, Y the top.
type Bullet struct {
	X, Y          float64
	VX, VY        float64
	Speed         float64
	Width, Height float64
	AutoAim       bool
	Penetration   bool
	Dead          bool
}

// GetPosition implements Collidable interface.
func (b *Bullet) GetPosition() (x, y float64) {
	return b.X, b.Y
}

// Bounds implements Entity.
func (b *Bullet) Bounds() Rect {
	return Rect{X: b.X - b.Width/2, Y: b.Y, W: b.Width, H: b.Height}
}

// Update steers toward the nearest enemy when auto-aim is on, then moves.
// grid holds this tick's live enemies; radius and strength come from the
// bullet tuning.
func (b *Bullet) Update(grid *SpatialGrid, radius, strength float64) {
	if b.AutoAim && grid != nil {
		if target, dist := nearestEnemy(grid, b.X, b.Y); target != nil && dist < radius {
			tx, ty := target.Bounds().Center()
			dx, dy := tx-b.X, ty-b.Y
			if dist > 0 {
				b.VX += dx / dist * strength
				b.VY += dy / dist * strength
			}
			if speed := math.Hypot(b.VX, b.VY); speed > b.Speed {
				b.VX = b.VX / speed * b.Speed
				b.VY = b.VY / speed * b.Speed
			}
		}
	}
	b.X += b.VX
	b.Y += b.VY
}

// OffScreen reports whether the bullet left the w x h canvas by more than
// margin on any side.
func (b *Bullet) OffScreen(w, h, margin float64) bool {
	return b.Y < -margin || b.Y > h+margin || b.X < -margin || b.X > w+margin
}

// Render implements Entity.
func (b *Bullet) Render(s gfx.Surface, th *theme.Theme) {
	style := th.Bullets
	s.Push()
	if style.GlowIntensity > 0 {
		s.SetGlow(style.GlowIntensity, style.GlowColor)
	}
	r := b.Bounds()
	s.FillRect(r.X, r.Y, r.W, r.H, style.Color)
	s.Pop()
}

// nearestEnemy returns the live enemy closest to (x, y) among the grid
// neighbours, measured to the enemy center.
func nearestEnemy(grid *SpatialGrid, x, y float64) (*Enemy, float64) {
	var best *Enemy
	bestDist := math.Inf(1)
	for _, c := range grid.GetNearby(x, y) {
		e, ok := c.(*Enemy)
		if !ok || e.Dead {
			continue
		}
		ex, ey := e.GetPosition()
		if d := math.Hypot(ex-x, ey-y); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best, bestDist
}
