// Package theme holds the read-only visual skins of the game. A Theme is
// resolved once from YAML and then passed by pointer into every render call.
package theme

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/simukka/henshin-strike/gfx"
)

// Effect is the animated layer drawn over the background gradient.
type Effect string

const (
	EffectNone        Effect = "none"
	EffectDigitalGrid Effect = "digital_grid"
	EffectNebula      Effect = "nebula"
	EffectCityscape   Effect = "cityscape"
)

// Palette is the four base colors of a theme.
type Palette struct {
	Primary    color.NRGBA
	Secondary  color.NRGBA
	Accent     color.NRGBA
	Background color.NRGBA
}

// ShipStyle colors a ship body and its details.
type ShipStyle struct {
	Color       color.NRGBA
	AccentColor color.NRGBA
	Glow        bool
}

// BackgroundStyle drives the themed backdrop.
type BackgroundStyle struct {
	StarColor     color.NRGBA
	GradientStart color.NRGBA
	GradientEnd   color.NRGBA
	Effect        Effect
}

// BulletStyle colors player projectiles. GlowIntensity 0 disables glow.
type BulletStyle struct {
	Color         color.NRGBA
	GlowColor     color.NRGBA
	GlowIntensity float64
}

// ParticleStyle lists the colors explosion particles pick from.
type ParticleStyle struct {
	Colors []color.NRGBA
	Glow   bool
}

// UIStyle colors HUD and menu text.
type UIStyle struct {
	TextColor   color.NRGBA
	AccentColor color.NRGBA
	Glow        bool
}

// Theme is a complete visual skin.
type Theme struct {
	Key        string
	Name       string
	Tagline    string
	Colors     Palette
	PlayerShip ShipStyle
	EnemyShip  ShipStyle
	Background BackgroundStyle
	Bullets    BulletStyle
	Particles  ParticleStyle
	UI         UIStyle
}

// ParticleColor picks a particle color by index, wrapping around.
func (t *Theme) ParticleColor(i int) color.NRGBA {
	if len(t.Particles.Colors) == 0 {
		return gfx.White
	}
	if i < 0 {
		i = -i
	}
	return t.Particles.Colors[i%len(t.Particles.Colors)]
}

// Fallback is the minimal theme used when theme data cannot be loaded.
func Fallback() *Theme {
	return &Theme{
		Key:     "FALLBACK",
		Name:    "Fallback",
		Tagline: "Minimal safe theme",
		Colors: Palette{
			Primary:    gfx.MustHex("#ffffff"),
			Secondary:  gfx.MustHex("#cccccc"),
			Accent:     gfx.MustHex("#ffff00"),
			Background: gfx.MustHex("#000000"),
		},
		PlayerShip: ShipStyle{Color: gfx.MustHex("#00ff00"), AccentColor: gfx.MustHex("#ffffff")},
		EnemyShip:  ShipStyle{Color: gfx.MustHex("#ff0000"), AccentColor: gfx.MustHex("#ffffff")},
		Background: BackgroundStyle{
			StarColor:     gfx.MustHex("#ffffff"),
			GradientStart: gfx.MustHex("#000033"),
			GradientEnd:   gfx.MustHex("#000000"),
			Effect:        EffectNone,
		},
		Bullets: BulletStyle{Color: gfx.MustHex("#ffff00"), GlowColor: gfx.MustHex("#ffffff")},
		Particles: ParticleStyle{Colors: []color.NRGBA{
			gfx.MustHex("#ffffff"), gfx.MustHex("#ffff00"), gfx.MustHex("#ff0000"),
		}},
		UI: UIStyle{TextColor: gfx.MustHex("#ffffff"), AccentColor: gfx.MustHex("#ffff00")},
	}
}

// themeDoc is the YAML shape of one theme; colors are still hex strings.
type themeDoc struct {
	Key     string `yaml:"key"`
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
	Colors  struct {
		Primary    string `yaml:"primary"`
		Secondary  string `yaml:"secondary"`
		Accent     string `yaml:"accent"`
		Background string `yaml:"background"`
	} `yaml:"colors"`
	PlayerShip shipDoc `yaml:"playerShip"`
	EnemyShip  shipDoc `yaml:"enemyShip"`
	Background struct {
		StarColor     string `yaml:"starColor"`
		GradientStart string `yaml:"gradientStart"`
		GradientEnd   string `yaml:"gradientEnd"`
		Effect        string `yaml:"effect"`
	} `yaml:"background"`
	Bullets struct {
		Color         string  `yaml:"color"`
		GlowColor     string  `yaml:"glowColor"`
		GlowIntensity float64 `yaml:"glowIntensity"`
	} `yaml:"bullets"`
	Particles struct {
		Colors []string `yaml:"colors"`
		Glow   bool     `yaml:"glow"`
	} `yaml:"particles"`
	UI struct {
		TextColor   string `yaml:"textColor"`
		AccentColor string `yaml:"accentColor"`
		Glow        bool   `yaml:"glow"`
	} `yaml:"ui"`
}

type shipDoc struct {
	Color       string `yaml:"color"`
	AccentColor string `yaml:"accentColor"`
	Glow        bool   `yaml:"glow"`
}

// resolve turns a document into a Theme, reporting every bad field at once.
func (d *themeDoc) resolve() (*Theme, error) {
	var errs []error
	hex := func(field, s string) color.NRGBA {
		c, err := gfx.ParseHex(s)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", field, err))
		}
		return c
	}

	if d.Key == "" {
		errs = append(errs, errors.New("key is required"))
	}
	if d.Name == "" {
		errs = append(errs, errors.New("name is required"))
	}

	t := &Theme{
		Key:     d.Key,
		Name:    d.Name,
		Tagline: d.Tagline,
		Colors: Palette{
			Primary:    hex("colors.primary", d.Colors.Primary),
			Secondary:  hex("colors.secondary", d.Colors.Secondary),
			Accent:     hex("colors.accent", d.Colors.Accent),
			Background: hex("colors.background", d.Colors.Background),
		},
		PlayerShip: ShipStyle{
			Color:       hex("playerShip.color", d.PlayerShip.Color),
			AccentColor: hex("playerShip.accentColor", d.PlayerShip.AccentColor),
			Glow:        d.PlayerShip.Glow,
		},
		EnemyShip: ShipStyle{
			Color:       hex("enemyShip.color", d.EnemyShip.Color),
			AccentColor: hex("enemyShip.accentColor", d.EnemyShip.AccentColor),
			Glow:        d.EnemyShip.Glow,
		},
		Background: BackgroundStyle{
			StarColor:     hex("background.starColor", d.Background.StarColor),
			GradientStart: hex("background.gradientStart", d.Background.GradientStart),
			GradientEnd:   hex("background.gradientEnd", d.Background.GradientEnd),
			Effect:        Effect(d.Background.Effect),
		},
		Bullets: BulletStyle{
			Color:         hex("bullets.color", d.Bullets.Color),
			GlowColor:     hex("bullets.glowColor", d.Bullets.GlowColor),
			GlowIntensity: d.Bullets.GlowIntensity,
		},
		Particles: ParticleStyle{Glow: d.Particles.Glow},
		UI: UIStyle{
			TextColor:   hex("ui.textColor", d.UI.TextColor),
			AccentColor: hex("ui.accentColor", d.UI.AccentColor),
			Glow:        d.UI.Glow,
		},
	}

	switch t.Background.Effect {
	case EffectNone, EffectDigitalGrid, EffectNebula, EffectCityscape:
	case "":
		t.Background.Effect = EffectNone
	default:
		errs = append(errs, fmt.Errorf("background.effect %q is unknown", d.Background.Effect))
	}

	if len(d.Particles.Colors) == 0 {
		errs = append(errs, errors.New("particles.colors must not be empty"))
	}
	for i, s := range d.Particles.Colors {
		t.Particles.Colors = append(t.Particles.Colors, hex(fmt.Sprintf("particles.colors[%d]", i), s))
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("theme %q: %w", d.Key, err)
	}
	return t, nil
}
