package game

import (
	"image/color"

	"github.com/simukka/henshin-strike/common"
	"github.com/simukka/henshin-strike/gfx"
	"github.com/simukka/henshin-strike/theme"
)

// Particle is a cosmetic spark. Life counts down in ticks.
type Particle struct {
	X, Y       float64
	VX, VY     float64
	Life       int
	MaxLife    int
	ColorIndex int
	// Color overrides the theme palette when its alpha is non-zero.
	Color     color.NRGBA
	PoolIndex int
}

// Bounds implements Entity.
func (p *Particle) Bounds() Rect {
	return Rect{X: p.X, Y: p.Y, W: particleSize, H: particleSize}
}

// Update moves the particle and burns one tick of life.
func (p *Particle) Update() {
	p.X += p.VX
	p.Y += p.VY
	p.Life--
}

// Alive reports whether the particle has life left.
func (p *Particle) Alive() bool {
	return p.Life > 0
}

// Render implements Entity.
func (p *Particle) Render(s gfx.Surface, th *theme.Theme) {
	alpha := 0.0
	if p.MaxLife > 0 {
		alpha = float64(p.Life) / float64(p.MaxLife)
	}
	c := p.Color
	if c.A == 0 {
		c = th.ParticleColor(p.ColorIndex)
	}
	s.Push()
	if th.Particles.Glow {
		s.SetGlow(5*alpha, c)
	}
	s.FillRect(p.X, p.Y, particleSize, particleSize, gfx.ScaleAlpha(c, alpha))
	s.Pop()
}

// Burst describes one spray of particles.
type Burst struct {
	Count  int
	Life   int
	Spread float64
	// Color is used for every particle when set; otherwise each particle
	// picks a theme color at render time.
	Color color.NRGBA
}

// Emit spawns b at (x, y). Particles beyond the pool cap are dropped; the
// number actually spawned is returned.
func (p *ParticlePool) Emit(rng *common.SeededRNG, x, y float64, b Burst) int {
	spawned := 0
	for i := 0; i < b.Count; i++ {
		pt := p.Acquire()
		if pt == nil {
			continue
		}
		pt.X, pt.Y = x, y
		pt.VX = rng.Centered(b.Spread)
		pt.VY = rng.Centered(b.Spread)
		pt.Life = b.Life
		pt.MaxLife = b.Life
		pt.ColorIndex = rng.RandomInt(0, 1<<16)
		pt.Color = b.Color
		spawned++
	}
	return spawned
}

// Update ages every particle and releases the dead ones.
func (p *ParticlePool) Update() {
	p.ForEachReverse(func(pt *Particle, i int) {
		pt.Update()
		if !pt.Alive() {
			p.Release(i)
		}
	})
}
