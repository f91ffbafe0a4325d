package game

import (
	"github.com/simukka/henshin-strike/gfx"
	"github.com/simukka/henshin-strike/theme"
)

// Rect is an axis-aligned bounding box with its origin at the top left.
type Rect struct {
	X, Y, W, H float64
}

// Intersects reports whether r and o share area. All four comparisons are
// strict, so boxes that only touch along an edge do not intersect.
func (r Rect) Intersects(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// Center returns the middle of the box.
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Entity is anything the match simulates and draws.
type Entity interface {
	Bounds() Rect
	Render(s gfx.Surface, th *theme.Theme)
}

// Compile-time interface checks
var (
	_ Entity = (*Player)(nil)
	_ Entity = (*Enemy)(nil)
	_ Entity = (*Bullet)(nil)
	_ Entity = (*Particle)(nil)
	_ Entity = (*PowerUp)(nil)
)

// Collides is the single collision test used by combat resolution.
func Collides(a, b Entity) bool {
	return a.Bounds().Intersects(b.Bounds())
}
