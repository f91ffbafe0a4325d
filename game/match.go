package game

import (
	"errors"
	"image/color"

	"github.com/google/uuid"
	"github.com/simukka/henshin-strike/audio"
	"github.com/simukka/henshin-strike/common"
	"github.com/simukka/henshin-strike/config"
	"github.com/simukka/henshin-strike/gfx"
)

// Stats are the values mirrored to the page outside the canvas.
type Stats struct {
	Score int
	Lives int
	Level int
}

// Scoreboard receives Stats whenever one of them changes.
type Scoreboard interface {
	Publish(s Stats)
}

// NopScoreboard discards updates.
type NopScoreboard struct{}

func (NopScoreboard) Publish(Stats) {}

// Match is one playthrough. It owns every entity collection and mutates
// them only inside Update.
type Match struct {
	ID      string
	Tuning  *config.Tuning
	Catalog *Catalog

	Player    *Player
	Bullets   []*Bullet
	Enemies   []*Enemy
	Particles *ParticlePool
	PowerUps  *PowerUpSystem

	// TimeScale slows enemy movement. Only the power-up system writes it.
	TimeScale float64
	Score     int
	Lives     int
	Kills     int
	Finished  bool

	// Simulation clock. Starts at zero and advances one tick per Update.
	NowMs float64
	Ticks int

	SpawnIntervalMs float64
	lastSpawnMs     float64

	Shake  Shake
	Flash  Flash
	Notice *Notification
	Popups []*Popup

	Sound      audio.Sink
	Scoreboard Scoreboard

	rng           *common.SeededRNG
	fx            *common.SeededRNG
	shake         *common.SeededRNG
	grid          *SpatialGrid
	hitFlashColor color.NRGBA
	firePending   bool
	published     Stats
}

// NewMatch sets up a fresh playthrough. Gameplay randomness comes from seed;
// cosmetic randomness uses separate generators so particles never change the
// enemy sequence and the render rate never changes the particles.
func NewMatch(t *config.Tuning, cat *Catalog, seed uint32, sink audio.Sink, sb Scoreboard) *Match {
	if sink == nil {
		sink = audio.Nop{}
	}
	if sb == nil {
		sb = NopScoreboard{}
	}
	hitFlash, err := gfx.ParseHex(t.Effects.HitFlash.Color)
	if err != nil {
		hitFlash = defaultHitFlash
	}
	rng := common.NewSeededRNG(seed)
	m := &Match{
		ID:              uuid.NewString(),
		Tuning:          t,
		Catalog:         cat,
		Player:          NewPlayer(t),
		Bullets:         make([]*Bullet, 0, 64),
		Enemies:         make([]*Enemy, 0, 32),
		Particles:       NewParticlePool(t.Particles.Cap),
		PowerUps:        NewPowerUpSystem(cat, t, rng),
		TimeScale:       1,
		Lives:           t.Lives,
		SpawnIntervalMs: t.Enemies.Spawn.InitialIntervalMs,
		Sound:           sink,
		Scoreboard:      sb,
		rng:             rng,
		fx:              common.NewSeededRNG(seed ^ 0x9e3779b9),
		shake:           common.NewSeededRNG(seed ^ 0x85ebca6b),
		grid:            NewSpatialGrid(t.Canvas.Width, t.Canvas.Height, t.Bullet.TrackRadius),
		hitFlashColor:   hitFlash,
	}
	m.publish(true)
	Debugf("Match %s started (seed %d)", m.ID, seed)
	return m
}

// Level is derived from the score.
func (m *Match) Level() int {
	return m.Score/m.Tuning.LevelStep + 1
}

// Stats returns the current mirrored values.
func (m *Match) Stats() Stats {
	return Stats{Score: m.Score, Lives: m.Lives, Level: m.Level()}
}

// Fire requests a volley on the next tick. The cooldown decides whether
// bullets actually leave the ship.
func (m *Match) Fire() {
	if !m.Finished {
		m.firePending = true
	}
}

// Finish ends the match early, keeping the score.
func (m *Match) Finish() {
	if m.Finished {
		return
	}
	m.Finished = true
	Debugf("Match %s finished: score %d, level %d, %d kills", m.ID, m.Score, m.Level(), m.Kills)
}

// Update advances the match by one tick. Effect and subsystem failures are
// returned joined; the tick always runs to completion.
func (m *Match) Update(c Controls) error {
	if m.Finished {
		return nil
	}
	tick := m.Tuning.Loop.TickMillis
	m.NowMs += tick
	m.Ticks++
	var errs []error

	// 1. player
	m.Player.Move(c)
	if m.firePending {
		m.firePending = false
		if shots := m.Player.Fire(m.NowMs); len(shots) > 0 {
			m.Bullets = append(m.Bullets, shots...)
			m.Sound.Play(audio.CueShoot)
		}
	}

	// 2. power-up timers and pickups
	errs = append(errs, guard(FaultEffect, "power-ups", func() error {
		expired, err := m.PowerUps.Update(m.NowMs, m.fullTarget())
		for range expired {
			m.Sound.Play(audio.CuePowerUpExpire)
		}
		return err
	}))

	// 3. bullets
	errs = append(errs, guard(FaultUpdate, "bullets", func() error {
		m.updateBullets()
		return nil
	}))

	// 4. enemies
	errs = append(errs, guard(FaultUpdate, "enemies", func() error {
		m.spawnEnemies()
		m.updateEnemies()
		return nil
	}))

	// 5. collisions
	errs = append(errs, m.resolveCollisions())

	// 6. particles
	errs = append(errs, guard(FaultUpdate, "particles", func() error {
		m.Particles.Update()
		return nil
	}))

	// 7. transient effects
	m.updateFeedback(tick)

	// 8. end of match
	if m.Lives <= 0 {
		m.Lives = 0
		m.Sound.Play(audio.CueGameOver)
		m.Finish()
	}
	m.publish(false)
	return errors.Join(errs...)
}

func (m *Match) updateBullets() {
	m.grid.Clear()
	for _, e := range m.Enemies {
		m.grid.Insert(e)
	}
	bc := m.Tuning.Bullet
	w, h := m.Tuning.Canvas.Width, m.Tuning.Canvas.Height
	kept := m.Bullets[:0]
	for _, b := range m.Bullets {
		b.Update(m.grid, bc.TrackRadius, bc.TrackStrength)
		if !b.OffScreen(w, h, bc.CullMargin) {
			kept = append(kept, b)
		}
	}
	m.Bullets = kept
}

// spawnEnemies adds at most one enemy per tick and tightens the interval.
func (m *Match) spawnEnemies() {
	sc := m.Tuning.Enemies.Spawn
	if m.NowMs-m.lastSpawnMs <= m.SpawnIntervalMs {
		return
	}
	m.lastSpawnMs = m.NowMs
	m.SpawnEnemy(m.rollEnemyKind())
	if m.SpawnIntervalMs > sc.FloorMs {
		m.SpawnIntervalMs -= sc.StepMs
		if m.SpawnIntervalMs < sc.FloorMs {
			m.SpawnIntervalMs = sc.FloorMs
		}
	}
}

// rollEnemyKind uses two independent draws so every kind keeps its chance.
func (m *Match) rollEnemyKind() EnemyKind {
	ec := m.Tuning.Enemies
	if m.rng.Chance(ec.BossChance) {
		return EnemyBoss
	}
	if m.rng.Chance(ec.ArmoredChance) {
		return EnemyArmored
	}
	return EnemyBasic
}

// SpawnEnemy drops an enemy of kind at a random x above the canvas.
func (m *Match) SpawnEnemy(kind EnemyKind) *Enemy {
	ec := m.Tuning.Enemies
	k := m.Tuning.EnemyKind(kind.Key())
	x := m.rng.Random() * (m.Tuning.Canvas.Width - k.Width)
	speed := ec.SpeedMin + m.rng.Random()*ec.SpeedRange
	e := NewEnemy(m.Tuning, kind, x, ec.Spawn.SpawnY, speed)
	m.Enemies = append(m.Enemies, e)
	return e
}

// updateEnemies moves every enemy and charges a life for each one that
// slipped past the bottom edge.
func (m *Match) updateEnemies() {
	h := m.Tuning.Canvas.Height
	kept := m.Enemies[:0]
	for _, e := range m.Enemies {
		e.Update(m.TimeScale)
		if e.Y > h {
			m.Lives--
			Debugf("%s enemy escaped, %d lives left", e.Kind, m.Lives)
			continue
		}
		kept = append(kept, e)
	}
	m.Enemies = kept
}

func (m *Match) updateFeedback(tick float64) {
	m.Flash.Advance(tick)
	m.Shake.Advance(tick)
	if m.Notice != nil {
		m.Notice.ElapsedMs += tick
		if m.Notice.Done() {
			m.Notice = nil
		}
	}
	drag := m.Tuning.Effects.PopupDrag
	kept := m.Popups[:0]
	for _, p := range m.Popups {
		p.Update(drag)
		if p.Life > 0 {
			kept = append(kept, p)
		}
	}
	m.Popups = kept
}

// effectTarget narrows the target to what kind k may write.
func (m *Match) effectTarget(k PowerUpKind) EffectTarget {
	if k == TimeSlow {
		return EffectTarget{TimeScale: &m.TimeScale}
	}
	return EffectTarget{Player: m.Player}
}

func (m *Match) fullTarget() EffectTarget {
	return EffectTarget{Player: m.Player, TimeScale: &m.TimeScale}
}

func (m *Match) publish(force bool) {
	s := m.Stats()
	if !force && s == m.published {
		return
	}
	m.published = s
	m.Scoreboard.Publish(s)
}
