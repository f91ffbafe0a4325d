package game

import (
	"github.com/simukka/henshin-strike/audio"
	"github.com/simukka/henshin-strike/gfx"
)

// resolveCollisions runs the three combat passes in order: bullets against
// enemies, enemies against the player, then pickups against the player.
// Removed entities are flagged during the passes and compacted at the end.
func (m *Match) resolveCollisions() error {
	m.bulletsVsEnemies()
	m.enemiesVsPlayer()
	m.compact()

	p := m.PowerUps.CheckCollision(m.Player)
	if p == nil {
		return nil
	}
	return m.collect(p)
}

func (m *Match) bulletsVsEnemies() {
	for _, b := range m.Bullets {
		for _, e := range m.Enemies {
			if b.Dead {
				break
			}
			if e.Dead || !Collides(b, e) {
				continue
			}
			if e.TakeDamage(m.Player.BulletDamage) {
				m.destroyEnemy(e)
			} else {
				m.Sound.Play(audio.CueEnemyHit)
			}
			if !m.Player.BulletPenetration {
				b.Dead = true
			}
		}
	}
}

func (m *Match) enemiesVsPlayer() {
	if m.Player.Invincible {
		return
	}
	fx := m.Tuning.Effects
	for _, e := range m.Enemies {
		if e.Dead || !Collides(e, m.Player) {
			continue
		}
		e.Dead = true
		m.explode(e)
		m.Shake.Start(fx.HitShake)
		m.Flash.Start(m.hitFlashColor, fx.HitFlash.Alpha, fx.HitFlash.DurationMs)
		m.Lives--
		m.Sound.Play(audio.CuePlayerHit)
		Debugf("Player hit by %s enemy, %d lives left", e.Kind, m.Lives)
	}
}

// destroyEnemy scores a kill.
func (m *Match) destroyEnemy(e *Enemy) {
	e.Dead = true
	m.explode(e)
	m.Shake.Start(m.Tuning.Effects.ExplosionShake)

	cx, cy := e.Bounds().Center()
	m.Popups = append(m.Popups, newScorePopup(cx, cy, e.Score, m.Tuning.Effects))
	m.Score += e.Score
	m.Kills++

	if e.Kind == EnemyBoss {
		m.Shake.Start(m.Tuning.Effects.BossShake)
		m.Sound.Play(audio.CueBossDown)
		Debug("Boss destroyed")
		return
	}
	m.Sound.Play(audio.CueExplosion)
}

func (m *Match) explode(e *Enemy) {
	cx, cy := e.Bounds().Center()
	pc := m.Tuning.Particles
	m.Particles.Emit(m.fx, cx, cy, Burst{Count: pc.ExplosionCount, Life: pc.Life, Spread: pc.Spread})
}

// collect applies a pickup the player touched.
func (m *Match) collect(p *PowerUp) error {
	entry := m.Catalog.Entry(p.Kind)
	if entry == nil {
		return fault(FaultEffect, "collect", ErrUnknownPowerUp)
	}
	pc := m.Tuning.Particles
	fx := m.Tuning.Effects
	cx, cy := p.Bounds().Center()
	m.Particles.Emit(m.fx, cx, cy, Burst{
		Count:  pc.CollectCount,
		Life:   pc.CollectLife,
		Spread: pc.CollectSpread,
		Color:  entry.Color,
	})
	m.Flash.Start(entry.Color, fx.CollectFlashAlpha, fx.CollectFlashMs)
	m.Notice = &Notification{Entry: entry, DurationMs: fx.NotificationMs}
	m.Sound.Play(audio.CuePowerUpCollect)

	err := guard(FaultEffect, "collect "+p.Kind.Key(), func() error {
		_, err := m.PowerUps.Collect(p, m.effectTarget(p.Kind), m.NowMs)
		return err
	})
	Debugf("Collected %s (%d active)", entry.Name, len(m.PowerUps.Active))
	return err
}

// compact drops the bullets and enemies flagged this tick.
func (m *Match) compact() {
	bullets := m.Bullets[:0]
	for _, b := range m.Bullets {
		if !b.Dead {
			bullets = append(bullets, b)
		}
	}
	for i := len(bullets); i < len(m.Bullets); i++ {
		m.Bullets[i] = nil
	}
	m.Bullets = bullets

	enemies := m.Enemies[:0]
	for _, e := range m.Enemies {
		if !e.Dead {
			enemies = append(enemies, e)
		}
	}
	for i := len(enemies); i < len(m.Enemies); i++ {
		m.Enemies[i] = nil
	}
	m.Enemies = enemies
}

var defaultHitFlash = gfx.Red
