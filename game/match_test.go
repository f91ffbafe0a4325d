package game

import (
	"testing"

	"github.com/simukka/henshin-strike/audio"
	"github.com/simukka/henshin-strike/config"
	"github.com/simukka/henshin-strike/gfx"
	"github.com/simukka/henshin-strike/theme"
)

type recordingScoreboard struct {
	updates []Stats
}

func (r *recordingScoreboard) Publish(s Stats) {
	r.updates = append(r.updates, s)
}

func newTestMatch(t *testing.T) (*Match, *audio.Recorder) {
	t.Helper()
	tuning := config.Default()
	cat, err := NewCatalog(tuning)
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}
	sound := &audio.Recorder{}
	return NewMatch(tuning, cat, 42, sound, nil), sound
}

// addEnemy places a stationary enemy so tests control every overlap.
func addEnemy(m *Match, kind EnemyKind, x, y float64) *Enemy {
	e := NewEnemy(m.Tuning, kind, x, y, 0)
	m.Enemies = append(m.Enemies, e)
	return e
}

// addBullet places a stationary bullet centered at x.
func addBullet(m *Match, x, y float64) *Bullet {
	b := &Bullet{X: x, Y: y, Width: 4, Height: 10}
	m.Bullets = append(m.Bullets, b)
	return b
}

// TestMatch_BasicKillWithOneBullet tests scoring and cleanup for a basic kill
func TestMatch_BasicKillWithOneBullet(t *testing.T) {
	m, sound := newTestMatch(t)
	addEnemy(m, EnemyBasic, 380, 200)
	addBullet(m, 400, 210)

	if err := m.Update(Controls{}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if m.Score != 10 || m.Kills != 1 {
		t.Errorf("Expected score 10 and 1 kill, got %d and %d", m.Score, m.Kills)
	}
	if len(m.Enemies) != 0 || len(m.Bullets) != 0 {
		t.Errorf("Expected enemy and bullet removed, got %d and %d", len(m.Enemies), len(m.Bullets))
	}
	if sound.Count(audio.CueExplosion) != 1 {
		t.Errorf("Expected one explosion cue, got %d", sound.Count(audio.CueExplosion))
	}
	if m.Particles.ActiveCount == 0 {
		t.Errorf("Expected explosion particles")
	}
	if len(m.Popups) != 1 {
		t.Errorf("Expected a score popup, got %d", len(m.Popups))
	}
}

// TestMatch_BossNeedsTenHits tests that a boss survives nine hits
func TestMatch_BossNeedsTenHits(t *testing.T) {
	m, sound := newTestMatch(t)
	boss := addEnemy(m, EnemyBoss, 370, 100)

	for i := 1; i <= 9; i++ {
		addBullet(m, 400, 120)
		m.Update(Controls{})
		if boss.Health != 10-i {
			t.Fatalf("Expected boss health %d after hit %d, got %d", 10-i, i, boss.Health)
		}
	}
	if sound.Count(audio.CueEnemyHit) != 9 || m.Score != 0 {
		t.Errorf("Expected 9 hit cues and no score, got %d and %d", sound.Count(audio.CueEnemyHit), m.Score)
	}

	addBullet(m, 400, 120)
	m.Update(Controls{})
	if m.Score != 100 || len(m.Enemies) != 0 {
		t.Errorf("Expected boss destroyed for 100, got score %d with %d enemies", m.Score, len(m.Enemies))
	}
	if sound.Count(audio.CueBossDown) != 1 {
		t.Errorf("Expected boss cue, got %d", sound.Count(audio.CueBossDown))
	}
	if m.Shake.Intensity != 8 {
		t.Errorf("Expected boss shake intensity 8, got %v", m.Shake.Intensity)
	}
}

// TestMatch_BulletStopsAtFirstEnemy tests that a normal bullet hits once
func TestMatch_BulletStopsAtFirstEnemy(t *testing.T) {
	m, _ := newTestMatch(t)
	addEnemy(m, EnemyBasic, 380, 200)
	addEnemy(m, EnemyBasic, 385, 205)
	addBullet(m, 400, 210)

	m.Update(Controls{})
	if m.Kills != 1 || len(m.Enemies) != 1 {
		t.Errorf("Expected one kill, got %d kills and %d enemies left", m.Kills, len(m.Enemies))
	}
}

// TestMatch_MegaBlastPenetrates tests that penetrating bullets pass through
func TestMatch_MegaBlastPenetrates(t *testing.T) {
	m, _ := newTestMatch(t)
	if _, err := Apply(MegaBlast, m.effectTarget(MegaBlast)); err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	addEnemy(m, EnemyArmored, 380, 200)
	addEnemy(m, EnemyBasic, 385, 205)
	b := addBullet(m, 400, 210)

	m.Update(Controls{})
	if m.Kills != 1 {
		t.Errorf("Expected the basic enemy killed, got %d kills", m.Kills)
	}
	if m.Enemies[0].Health != 1 {
		t.Errorf("Expected armored enemy at 1 health after a double hit, got %d", m.Enemies[0].Health)
	}
	if b.Dead || len(m.Bullets) != 1 {
		t.Errorf("Expected penetrating bullet to survive")
	}
}

// TestMatch_EnemyHitsPlayer tests life loss and feedback on contact
func TestMatch_EnemyHitsPlayer(t *testing.T) {
	m, sound := newTestMatch(t)
	addEnemy(m, EnemyBasic, m.Player.X, m.Player.Y)

	m.Update(Controls{})
	if m.Lives != 2 {
		t.Errorf("Expected 2 lives, got %d", m.Lives)
	}
	if len(m.Enemies) != 0 {
		t.Errorf("Expected the enemy destroyed on contact")
	}
	if m.Score != 0 {
		t.Errorf("Expected no score for a collision, got %d", m.Score)
	}
	if sound.Count(audio.CuePlayerHit) != 1 || !m.Flash.Active() || !m.Shake.Active() {
		t.Errorf("Expected hit cue, flash and shake")
	}
}

// TestMatch_ShieldBlocksContact tests that an invincible player is untouched
func TestMatch_ShieldBlocksContact(t *testing.T) {
	m, _ := newTestMatch(t)
	m.Player.Invincible = true
	addEnemy(m, EnemyBasic, m.Player.X, m.Player.Y)

	m.Update(Controls{})
	if m.Lives != 3 || len(m.Enemies) != 1 {
		t.Errorf("Expected shield to block the hit, got %d lives and %d enemies", m.Lives, len(m.Enemies))
	}
}

// TestMatch_EscapedEnemyCostsLife tests the bottom edge rule
func TestMatch_EscapedEnemyCostsLife(t *testing.T) {
	m, _ := newTestMatch(t)
	e := NewEnemy(m.Tuning, EnemyBasic, 0, 599, 2)
	m.Enemies = append(m.Enemies, e)

	m.Update(Controls{})
	if m.Lives != 2 || len(m.Enemies) != 0 {
		t.Errorf("Expected 2 lives and the enemy gone, got %d and %d", m.Lives, len(m.Enemies))
	}
}

// TestMatch_LastLifeFinishes tests that the match ends with its score kept
func TestMatch_LastLifeFinishes(t *testing.T) {
	m, sound := newTestMatch(t)
	m.Lives = 1
	m.Score = 120
	m.Enemies = append(m.Enemies, NewEnemy(m.Tuning, EnemyBasic, 0, 599, 2))

	m.Update(Controls{})
	if !m.Finished || m.Lives != 0 {
		t.Fatalf("Expected finished match at 0 lives, got finished=%v lives=%d", m.Finished, m.Lives)
	}
	if m.Score != 120 {
		t.Errorf("Expected score kept at 120, got %d", m.Score)
	}
	if sound.Count(audio.CueGameOver) != 1 {
		t.Errorf("Expected one game over cue, got %d", sound.Count(audio.CueGameOver))
	}

	ticks := m.Ticks
	m.Update(Controls{})
	if m.Ticks != ticks {
		t.Errorf("Expected a finished match to stop ticking")
	}
}

// TestMatch_FirstSpawnAfterInterval tests that spawn timers start at zero
func TestMatch_FirstSpawnAfterInterval(t *testing.T) {
	m, _ := newTestMatch(t)
	for i := 0; i < 62; i++ {
		m.Update(Controls{})
	}
	if len(m.Enemies) != 0 {
		t.Fatalf("Expected no enemy before 1000ms, got %d", len(m.Enemies))
	}
	m.Update(Controls{})
	if len(m.Enemies) != 1 {
		t.Fatalf("Expected the first enemy at tick 63, got %d", len(m.Enemies))
	}
	if m.SpawnIntervalMs != 995 {
		t.Errorf("Expected interval 995 after the first spawn, got %v", m.SpawnIntervalMs)
	}
}

// TestMatch_SpawnRampReachesFloor tests the interval only shrinks and stops
// at the floor
func TestMatch_SpawnRampReachesFloor(t *testing.T) {
	m, _ := newTestMatch(t)
	prev := m.SpawnIntervalMs
	for i := 0; i < 200; i++ {
		m.NowMs += m.SpawnIntervalMs + 1
		m.spawnEnemies()
		if m.SpawnIntervalMs > prev {
			t.Fatalf("Expected interval never to grow, went %v -> %v", prev, m.SpawnIntervalMs)
		}
		prev = m.SpawnIntervalMs
	}
	if m.SpawnIntervalMs != 300 {
		t.Errorf("Expected floor 300, got %v", m.SpawnIntervalMs)
	}
	if len(m.Enemies) != 200 {
		t.Errorf("Expected one enemy per elapsed interval, got %d", len(m.Enemies))
	}
}

// TestMatch_SameSeedSameEnemies tests that gameplay is reproducible
func TestMatch_SameSeedSameEnemies(t *testing.T) {
	a, _ := newTestMatch(t)
	b, _ := newTestMatch(t)
	for i := 0; i < 400; i++ {
		a.Update(Controls{})
		b.Update(Controls{})
	}
	if len(a.Enemies) != len(b.Enemies) {
		t.Fatalf("Expected equal enemy counts, got %d and %d", len(a.Enemies), len(b.Enemies))
	}
	for i := range a.Enemies {
		if a.Enemies[i].X != b.Enemies[i].X || a.Enemies[i].Kind != b.Enemies[i].Kind {
			t.Errorf("Enemy %d differs between runs", i)
		}
	}
}

// TestMatch_FireRespectsCooldown tests that fire requests become volleys
func TestMatch_FireRespectsCooldown(t *testing.T) {
	m, sound := newTestMatch(t)
	for i := 0; i < 11; i++ {
		m.Fire()
		m.Update(Controls{})
	}
	// The first volley leaves at 16ms, the second once 150ms have passed.
	if sound.Count(audio.CueShoot) != 2 {
		t.Errorf("Expected 2 volleys, got %d", sound.Count(audio.CueShoot))
	}
}

// TestMatch_CollectPickup tests collecting a pickup the player flies into
func TestMatch_CollectPickup(t *testing.T) {
	m, sound := newTestMatch(t)
	m.PowerUps.PowerUps = append(m.PowerUps.PowerUps, &PowerUp{
		X: m.Player.X, Y: m.Player.Y, Size: 24,
		Kind: TimeSlow, Entry: m.Catalog.Entry(TimeSlow), LifetimeMs: 10000,
	})

	if err := m.Update(Controls{}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if m.TimeScale != 0.3 {
		t.Errorf("Expected time scale 0.3, got %v", m.TimeScale)
	}
	if m.Notice == nil || m.Notice.Entry.Kind != TimeSlow {
		t.Errorf("Expected a time slow notification")
	}
	if sound.Count(audio.CuePowerUpCollect) != 1 {
		t.Errorf("Expected collect cue")
	}
	if len(m.PowerUps.PowerUps) != 0 || len(m.PowerUps.Active) != 1 {
		t.Errorf("Expected the pickup moved to active")
	}
}

// TestMatch_PublishesOnChange tests that the scoreboard sees changes only
func TestMatch_PublishesOnChange(t *testing.T) {
	tuning := config.Default()
	cat, _ := NewCatalog(tuning)
	sb := &recordingScoreboard{}
	m := NewMatch(tuning, cat, 1, nil, sb)
	if len(sb.updates) != 1 || sb.updates[0] != (Stats{Score: 0, Lives: 3, Level: 1}) {
		t.Fatalf("Expected initial publish, got %+v", sb.updates)
	}

	m.Update(Controls{})
	if len(sb.updates) != 1 {
		t.Errorf("Expected no publish without change, got %d", len(sb.updates))
	}

	addEnemy(m, EnemyBoss, 370, 100)
	m.Enemies[0].Health = 1
	addBullet(m, 400, 120)
	m.Score = 450
	m.Update(Controls{})
	last := sb.updates[len(sb.updates)-1]
	if last.Score != 550 || last.Level != 2 {
		t.Errorf("Expected score 550 at level 2, got %+v", last)
	}
}

// TestMatch_RenderBalanced tests that a full frame leaves the state stack
// balanced and draws every entity group
func TestMatch_RenderBalanced(t *testing.T) {
	m, _ := newTestMatch(t)
	addEnemy(m, EnemyArmored, 100, 100)
	addBullet(m, 400, 300)
	m.Notice = &Notification{Entry: m.Catalog.Entry(WideShot), DurationMs: 3000}

	r := gfx.NewRecorder(800, 600)
	if err := m.Render(r, theme.Fallback()); err != nil {
		t.Fatalf("Render failed: %v", err)
	}
	if r.Depth() != 0 {
		t.Errorf("Expected balanced Push/Pop, got depth %d", r.Depth())
	}
	if _, ok := r.FindText("Wide Shot"); !ok {
		t.Errorf("Expected the notification title, got %v", r.Texts())
	}
}

// TestMatch_RenderGroupFault tests that one failing group does not stop the
// frame
func TestMatch_RenderGroupFault(t *testing.T) {
	m, _ := newTestMatch(t)
	m.Notice = &Notification{Entry: m.Catalog.Entry(AutoAim), DurationMs: 3000}
	m.Player = nil

	r := gfx.NewRecorder(800, 600)
	err := m.Render(r, theme.Fallback())
	if !HasFault(err, FaultRender) {
		t.Fatalf("Expected a render fault, got %v", err)
	}
	if _, ok := r.FindText("Auto-Aim"); !ok {
		t.Errorf("Expected later groups to draw, got %v", r.Texts())
	}
	if r.Depth() != 0 {
		t.Errorf("Expected balanced Push/Pop after a fault, got depth %d", r.Depth())
	}
}

// TestMatch_SubsystemFaultKeepsTicking tests that a failing particle pass is
// reported as an update fault while the rest of the tick still runs
func TestMatch_SubsystemFaultKeepsTicking(t *testing.T) {
	m, _ := newTestMatch(t)
	e := addEnemy(m, EnemyBasic, 100, 100)
	e.Speed = 2
	m.Particles.Pool[0] = nil
	m.Particles.ActiveCount = 1

	err := m.Update(Controls{})
	if !HasFault(err, FaultUpdate) {
		t.Fatalf("Expected an update fault, got %v", err)
	}
	if f, _ := FaultOf(err); f == nil || !f.Recoverable() {
		t.Errorf("Expected the fault to be recoverable")
	}
	if e.Y != 102 || m.Ticks != 1 || m.Finished {
		t.Errorf("Expected the tick to complete, got enemy y %v ticks %d", e.Y, m.Ticks)
	}
}

// TestMatch_RenderDoesNotConsumeParticleRNG tests that drawing a shaking
// match leaves the particle sequence untouched
func TestMatch_RenderDoesNotConsumeParticleRNG(t *testing.T) {
	rendered, _ := newTestMatch(t)
	idle, _ := newTestMatch(t)
	rendered.Shake.Start(rendered.Tuning.Effects.BossShake)

	r := gfx.NewRecorder(800, 600)
	for i := 0; i < 20; i++ {
		if err := rendered.Render(r, theme.Fallback()); err != nil {
			t.Fatalf("Render failed: %v", err)
		}
	}
	if a, b := rendered.fx.Random(), idle.fx.Random(); a != b {
		t.Errorf("Expected the same particle draw after rendering, got %v and %v", a, b)
	}
}
