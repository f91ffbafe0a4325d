package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Enemy kind keys used in the enemies.kinds table.
const (
	EnemyBasic   = "basic"
	EnemyArmored = "armored"
	EnemyBoss    = "boss"
)

// Tuning holds every gameplay constant of a match and of the screen flow.
//
// The embedded defaults.yaml is the source of truth; a file passed to Load
// only needs the keys it overrides.
type Tuning struct {
	Canvas     CanvasConfig     `yaml:"canvas"`
	Loop       LoopConfig       `yaml:"loop"`
	Lives      int              `yaml:"lives"`
	LevelStep  int              `yaml:"levelStep"`
	Player     PlayerConfig     `yaml:"player"`
	Bullet     BulletConfig     `yaml:"bullet"`
	Enemies    EnemiesConfig    `yaml:"enemies"`
	Particles  ParticleConfig   `yaml:"particles"`
	PowerUps   PowerUpConfig    `yaml:"powerUps"`
	Effects    EffectsConfig    `yaml:"effects"`
	Transition TransitionConfig `yaml:"transition"`
	Perf       PerfConfig       `yaml:"perf"`
}

// CanvasConfig is the logical drawing area in pixels.
type CanvasConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// LoopConfig controls the fixed simulation step.
type LoopConfig struct {
	TickMillis      float64 `yaml:"tickMillis"`
	MaxCatchUpTicks int     `yaml:"maxCatchUpTicks"`
}

// PlayerConfig describes the player ship.
type PlayerConfig struct {
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Speed           float64 `yaml:"speed"`
	ShootCooldownMs float64 `yaml:"shootCooldownMs"`
	BulletSpeed     float64 `yaml:"bulletSpeed"`
	BulletDamage    int     `yaml:"bulletDamage"`
	SpawnOffsetY    float64 `yaml:"spawnOffsetY"`
}

// BulletConfig describes player projectiles.
type BulletConfig struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`
	CullMargin    float64 `yaml:"cullMargin"`
	TrackRadius   float64 `yaml:"trackRadius"`
	TrackStrength float64 `yaml:"trackStrength"`
}

// EnemiesConfig holds the spawn ramp and per-kind stats.
type EnemiesConfig struct {
	Spawn         SpawnConfig                `yaml:"spawn"`
	SpeedMin      float64                    `yaml:"speedMin"`
	SpeedRange    float64                    `yaml:"speedRange"`
	BossChance    float64                    `yaml:"bossChance"`
	ArmoredChance float64                    `yaml:"armoredChance"`
	Kinds         map[string]EnemyKindConfig `yaml:"kinds"`
}

// SpawnConfig is the linear spawn-interval ramp.
type SpawnConfig struct {
	InitialIntervalMs float64 `yaml:"initialIntervalMs"`
	FloorMs           float64 `yaml:"floorMs"`
	StepMs            float64 `yaml:"stepMs"`
	SpawnY            float64 `yaml:"spawnY"`
}

// EnemyKindConfig fixes the stats of one enemy kind.
type EnemyKindConfig struct {
	MaxHealth       int     `yaml:"maxHealth"`
	SpeedMultiplier float64 `yaml:"speedMultiplier"`
	Width           float64 `yaml:"width"`
	Height          float64 `yaml:"height"`
	Score           int     `yaml:"score"`
}

// ParticleConfig bounds the cosmetic particle system.
type ParticleConfig struct {
	Cap            int     `yaml:"cap"`
	RenderCap      int     `yaml:"renderCap"`
	Life           int     `yaml:"life"`
	Spread         float64 `yaml:"spread"`
	ExplosionCount int     `yaml:"explosionCount"`
	CollectCount   int     `yaml:"collectCount"`
	CollectLife    int     `yaml:"collectLife"`
	CollectSpread  float64 `yaml:"collectSpread"`
}

// PowerUpConfig covers pickup spawning and the catalog metadata.
type PowerUpConfig struct {
	SpawnMinMs    float64         `yaml:"spawnMinMs"`
	SpawnJitterMs float64         `yaml:"spawnJitterMs"`
	LifetimeMs    float64         `yaml:"lifetimeMs"`
	Size          float64         `yaml:"size"`
	SpeedMin      float64         `yaml:"speedMin"`
	SpeedRange    float64         `yaml:"speedRange"`
	SpawnY        float64         `yaml:"spawnY"`
	DespawnMargin float64         `yaml:"despawnMargin"`
	Catalog       []CatalogConfig `yaml:"catalog"`
}

// CatalogConfig is the display data of one power-up kind.
type CatalogConfig struct {
	Key         string  `yaml:"key"`
	Name        string  `yaml:"name"`
	Description string  `yaml:"description"`
	DurationMs  float64 `yaml:"durationMs"`
	Color       string  `yaml:"color"`
	GlowColor   string  `yaml:"glowColor"`
	Symbol      string  `yaml:"symbol"`
}

// ShakeConfig is a screen shake trigger.
type ShakeConfig struct {
	Intensity  float64 `yaml:"intensity"`
	DurationMs float64 `yaml:"durationMs"`
}

// FlashConfig is a full-screen color flash trigger.
type FlashConfig struct {
	Color      string  `yaml:"color"`
	Alpha      float64 `yaml:"alpha"`
	DurationMs float64 `yaml:"durationMs"`
}

// EffectsConfig holds the transient visual feedback triggers.
type EffectsConfig struct {
	ExplosionShake    ShakeConfig `yaml:"explosionShake"`
	BossShake         ShakeConfig `yaml:"bossShake"`
	HitShake          ShakeConfig `yaml:"hitShake"`
	HitFlash          FlashConfig `yaml:"hitFlash"`
	CollectFlashAlpha float64     `yaml:"collectFlashAlpha"`
	CollectFlashMs    float64     `yaml:"collectFlashMs"`
	NotificationMs    float64     `yaml:"notificationMs"`
	PopupLife         int         `yaml:"popupLife"`
	PopupVelocity     float64     `yaml:"popupVelocity"`
	PopupDrag         float64     `yaml:"popupDrag"`
}

// TransitionConfig is the fade speed between screens.
type TransitionConfig struct {
	FadeOutStep float64 `yaml:"fadeOutStep"`
	FadeInStep  float64 `yaml:"fadeInStep"`
}

// PerfConfig drives the low frame rate warning.
type PerfConfig struct {
	WindowMs float64 `yaml:"windowMs"`
	MinFPS   float64 `yaml:"minFps"`
}

// Default returns a fresh copy of the embedded defaults.
func Default() *Tuning {
	t, err := Parse(defaultsYAML)
	if err != nil {
		panic(fmt.Errorf("embedded defaults.yaml is broken: %w", err))
	}
	return t
}

// Parse decodes a complete tuning document and validates it.
func Parse(data []byte) (*Tuning, error) {
	var t Tuning
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}
	return &t, nil
}

// Load reads the file at path and layers it over the embedded defaults.
func Load(path string) (*Tuning, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read tuning file: %w", err)
	}
	return Overlay(data)
}

// Overlay decodes data on top of the embedded defaults.
func Overlay(data []byte) (*Tuning, error) {
	t := Default()
	if err := yaml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("failed to parse tuning overrides: %w", err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}
	return t, nil
}

// Validate checks ranges and required entries.
func (t *Tuning) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...interface{}) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(t.Canvas.Width > 0 && t.Canvas.Height > 0,
		"canvas must be positive, got %.0fx%.0f", t.Canvas.Width, t.Canvas.Height)
	check(t.Loop.TickMillis > 0, "loop.tickMillis must be positive, got %.2f", t.Loop.TickMillis)
	check(t.Loop.MaxCatchUpTicks >= 1, "loop.maxCatchUpTicks must be >= 1, got %d", t.Loop.MaxCatchUpTicks)
	check(t.Lives > 0, "lives must be positive, got %d", t.Lives)
	check(t.LevelStep > 0, "levelStep must be positive, got %d", t.LevelStep)

	check(t.Player.Speed > 0, "player.speed must be positive")
	check(t.Player.ShootCooldownMs > 0, "player.shootCooldownMs must be positive")
	check(t.Player.BulletDamage >= 1, "player.bulletDamage must be >= 1, got %d", t.Player.BulletDamage)
	check(t.Bullet.CullMargin >= 0, "bullet.cullMargin must not be negative")

	s := t.Enemies.Spawn
	check(s.FloorMs > 0 && s.FloorMs <= s.InitialIntervalMs,
		"enemies.spawn floor %.0f must be in (0, %.0f]", s.FloorMs, s.InitialIntervalMs)
	check(s.StepMs > 0, "enemies.spawn.stepMs must be positive")
	check(inUnit(t.Enemies.BossChance) && inUnit(t.Enemies.ArmoredChance),
		"enemy chances must be in [0, 1]")
	for _, key := range []string{EnemyBasic, EnemyArmored, EnemyBoss} {
		k, ok := t.Enemies.Kinds[key]
		if !ok {
			errs = append(errs, fmt.Errorf("enemies.kinds.%s is missing", key))
			continue
		}
		check(k.MaxHealth >= 1, "enemies.kinds.%s.maxHealth must be >= 1", key)
		check(k.Width > 0 && k.Height > 0, "enemies.kinds.%s size must be positive", key)
		check(k.SpeedMultiplier > 0, "enemies.kinds.%s.speedMultiplier must be positive", key)
	}

	check(t.Particles.Cap > 0 && t.Particles.RenderCap > 0, "particle caps must be positive")
	check(t.Particles.Life > 0 && t.Particles.CollectLife > 0, "particle lives must be positive")

	check(t.PowerUps.LifetimeMs > 0, "powerUps.lifetimeMs must be positive")
	check(t.PowerUps.SpawnMinMs > 0, "powerUps.spawnMinMs must be positive")
	seen := make(map[string]bool, len(t.PowerUps.Catalog))
	for i, c := range t.PowerUps.Catalog {
		check(c.Key != "", "powerUps.catalog[%d] has no key", i)
		check(!seen[c.Key], "powerUps.catalog key %q is duplicated", c.Key)
		seen[c.Key] = true
		check(c.Name != "" && c.Symbol != "", "powerUps.catalog %q needs name and symbol", c.Key)
		check(c.DurationMs > 0, "powerUps.catalog %q duration must be positive", c.Key)
		check(IsHexColor(c.Color), "powerUps.catalog %q color %q is not #rrggbb", c.Key, c.Color)
		check(IsHexColor(c.GlowColor), "powerUps.catalog %q glowColor %q is not #rrggbb", c.Key, c.GlowColor)
	}

	check(IsHexColor(t.Effects.HitFlash.Color), "effects.hitFlash.color %q is not #rrggbb", t.Effects.HitFlash.Color)
	check(t.Effects.NotificationMs > 0, "effects.notificationMs must be positive")
	check(t.Effects.PopupLife > 0, "effects.popupLife must be positive")

	check(t.Transition.FadeOutStep > 0 && t.Transition.FadeInStep > 0, "transition steps must be positive")
	check(t.Perf.WindowMs > 0, "perf.windowMs must be positive")

	return errors.Join(errs...)
}

// EnemyKind returns the stats for key, falling back to the basic kind.
func (t *Tuning) EnemyKind(key string) EnemyKindConfig {
	if k, ok := t.Enemies.Kinds[key]; ok {
		return k
	}
	return t.Enemies.Kinds[EnemyBasic]
}

// CatalogEntry looks up power-up display data by key.
func (t *Tuning) CatalogEntry(key string) (CatalogConfig, bool) {
	for _, c := range t.PowerUps.Catalog {
		if c.Key == key {
			return c, true
		}
	}
	return CatalogConfig{}, false
}

// IsHexColor reports whether s has the #rrggbb form.
func IsHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	return strings.Trim(strings.ToLower(s[1:]), "0123456789abcdef") == ""
}

func inUnit(v float64) bool {
	return v >= 0 && v <= 1
}
