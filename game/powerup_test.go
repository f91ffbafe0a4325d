package game

import (
	"testing"

	"github.com/simukka/henshin-strike/common"
	"github.com/simukka/henshin-strike/config"
)

func newTestPowerUps(t *testing.T) (*PowerUpSystem, *Player, *float64, EffectTarget) {
	t.Helper()
	tuning := config.Default()
	cat, err := NewCatalog(tuning)
	if err != nil {
		t.Fatalf("NewCatalog failed: %v", err)
	}
	s := NewPowerUpSystem(cat, tuning, common.NewSeededRNG(1))
	p := NewPlayer(tuning)
	scale := 1.0
	return s, p, &scale, EffectTarget{Player: p, TimeScale: &scale}
}

// TestPowerUpSystem_ShieldDuration tests that a 5000ms shield stays up for
// 312 ticks and drops on the 313th
func TestPowerUpSystem_ShieldDuration(t *testing.T) {
	s, p, _, tgt := newTestPowerUps(t)
	if _, err := s.Collect(&PowerUp{Kind: ShieldGenerator}, tgt, 0); err != nil {
		t.Fatalf("Collect failed: %v", err)
	}

	for i := 1; i <= 312; i++ {
		if expired, err := s.Update(float64(i*16), tgt); len(expired) != 0 || err != nil {
			t.Fatalf("Expected shield active at tick %d, got expired=%d err=%v", i, len(expired), err)
		}
	}
	if !p.Invincible {
		t.Fatalf("Expected invincible before expiry")
	}

	expired, err := s.Update(313*16, tgt)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if len(expired) != 1 || expired[0].Kind != ShieldGenerator {
		t.Errorf("Expected the shield to expire on tick 313, got %d", len(expired))
	}
	if p.Invincible {
		t.Errorf("Expected shield reverted after expiry")
	}
	if len(s.Active) != 0 {
		t.Errorf("Expected no active power-ups, got %d", len(s.Active))
	}
}

// TestPowerUpSystem_StackingSameKind tests that two pickups of one kind keep
// the effect until the last one expires, then restore the original value
func TestPowerUpSystem_StackingSameKind(t *testing.T) {
	s, p, _, tgt := newTestPowerUps(t)
	s.Collect(&PowerUp{Kind: RapidFire}, tgt, 0)

	// Second pickup half way through the first.
	for i := 1; i <= 250; i++ {
		s.Update(float64(i*16), tgt)
	}
	s.Collect(&PowerUp{Kind: RapidFire}, tgt, 250*16)
	if s.ActiveCount(RapidFire) != 2 {
		t.Fatalf("Expected 2 stacked entries, got %d", s.ActiveCount(RapidFire))
	}

	// The first entry runs out after 500 ticks.
	for i := 251; i <= 500; i++ {
		s.Update(float64(i*16), tgt)
	}
	if s.ActiveCount(RapidFire) != 1 {
		t.Fatalf("Expected 1 entry left, got %d", s.ActiveCount(RapidFire))
	}
	if p.ShootCooldownMs != 37 {
		t.Errorf("Expected rapid fire still active, got cooldown %v", p.ShootCooldownMs)
	}

	for i := 501; i <= 750; i++ {
		s.Update(float64(i*16), tgt)
	}
	if s.ActiveCount(RapidFire) != 0 {
		t.Fatalf("Expected all entries expired, got %d", s.ActiveCount(RapidFire))
	}
	if p.ShootCooldownMs != 150 {
		t.Errorf("Expected cooldown restored to 150, got %v", p.ShootCooldownMs)
	}
}

// TestPowerUpSystem_DifferentKindsIndependent tests that expiring one kind
// leaves another intact
func TestPowerUpSystem_DifferentKindsIndependent(t *testing.T) {
	s, p, scale, tgt := newTestPowerUps(t)
	s.Collect(&PowerUp{Kind: MegaBlast}, tgt, 0)
	s.Collect(&PowerUp{Kind: TimeSlow}, tgt, 0)

	// Mega blast lasts 6000ms, time slow 12000ms.
	for i := 1; i <= 400; i++ {
		s.Update(float64(i*16), tgt)
	}
	if p.BulletPenetration || p.BulletDamage != 1 {
		t.Errorf("Expected mega blast reverted, got %+v", p.Modifiers)
	}
	if *scale != 0.3 {
		t.Errorf("Expected time slow still active, got %v", *scale)
	}
}

// TestPowerUpSystem_SpawnTiming tests the first pickup appears only after the
// spawn interval
func TestPowerUpSystem_SpawnTiming(t *testing.T) {
	s, _, _, tgt := newTestPowerUps(t)
	every := s.spawnEveryMs
	if every < 15000 || every > 25000 {
		t.Fatalf("Expected interval in [15000, 25000], got %v", every)
	}

	s.Update(every, tgt)
	if len(s.PowerUps) != 0 {
		t.Errorf("Expected no pickup at exactly the interval, got %d", len(s.PowerUps))
	}
	s.Update(every+16, tgt)
	if len(s.PowerUps) != 1 {
		t.Fatalf("Expected one pickup after the interval, got %d", len(s.PowerUps))
	}
	p := s.PowerUps[0]
	if p.Y < -30 || p.X < 0 || p.X > 800-24 || p.Entry == nil {
		t.Errorf("Expected pickup above the canvas with an entry, got %+v", p)
	}
}

// TestPowerUp_Despawn tests that pickups leave after their lifetime or below
// the canvas
func TestPowerUp_Despawn(t *testing.T) {
	s, _, _, tgt := newTestPowerUps(t)
	s.PowerUps = []*PowerUp{
		{Y: 100, Size: 24, LifetimeMs: 32},
		{Y: 649, Size: 24, Speed: 2, LifetimeMs: 10000},
		{Y: 100, Size: 24, Speed: 1, LifetimeMs: 10000},
	}
	s.Update(16, tgt)
	s.Update(32, tgt)
	if len(s.PowerUps) != 1 {
		t.Errorf("Expected only the live pickup to remain, got %d", len(s.PowerUps))
	}
}

// TestPowerUpSystem_CheckCollision tests that a touched pickup is removed
func TestPowerUpSystem_CheckCollision(t *testing.T) {
	s, p, _, _ := newTestPowerUps(t)
	hit := &PowerUp{X: p.X, Y: p.Y, Size: 24, Kind: AutoAim}
	miss := &PowerUp{X: 0, Y: 0, Size: 24, Kind: WideShot}
	s.PowerUps = []*PowerUp{miss, hit}

	if got := s.CheckCollision(p); got != hit {
		t.Fatalf("Expected the overlapping pickup, got %+v", got)
	}
	if len(s.PowerUps) != 1 || s.PowerUps[0] != miss {
		t.Errorf("Expected only the missed pickup left")
	}
	if s.CheckCollision(p) != nil {
		t.Errorf("Expected no second collision")
	}
}

// TestActivePowerUp_Progress tests the remaining-time fraction
func TestActivePowerUp_Progress(t *testing.T) {
	a := &ActivePowerUp{Entry: &CatalogEntry{DurationMs: 8000}, TimeRemainingMs: 2000}
	if got := a.Progress(); got != 0.25 {
		t.Errorf("Expected 0.25, got %v", got)
	}
	a.TimeRemainingMs = -16
	if got := a.Progress(); got != 0 {
		t.Errorf("Expected 0 once expired, got %v", got)
	}
}
