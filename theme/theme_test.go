package theme

import (
	"errors"
	"strings"
	"testing"

	"github.com/simukka/henshin-strike/gfx"
)

func TestNewProvider_LoadsEmbeddedThemes(t *testing.T) {
	p, err := NewProvider()
	if err != nil {
		t.Fatalf("Expected embedded themes to load, got %v", err)
	}

	want := []string{"MASKED_RIDER", "ULTRAMAN", "GODZILLA"}
	got := p.Keys()
	if len(got) != len(want) {
		t.Fatalf("Expected %d themes, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Expected theme %d to be %s, got %s", i, want[i], got[i])
		}
	}
	if p.Current().Key != "MASKED_RIDER" {
		t.Errorf("Expected MASKED_RIDER selected by default, got %s", p.Current().Key)
	}
}

func TestProvider_LoadKnownTheme(t *testing.T) {
	p, _ := NewProvider()

	th, err := p.Load("GODZILLA")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if th.Background.Effect != EffectCityscape {
		t.Errorf("Expected cityscape effect, got %s", th.Background.Effect)
	}
	if th.Bullets.GlowIntensity != 8 {
		t.Errorf("Expected glow intensity 8, got %f", th.Bullets.GlowIntensity)
	}
	if p.Current() != th {
		t.Error("Expected Load to change the current theme")
	}
}

func TestProvider_LoadUnknownFallsBackToDefault(t *testing.T) {
	p, _ := NewProvider()
	p.Load("ULTRAMAN")

	th, err := p.Load("KAMEN")
	if !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("Expected ErrUnknownTheme, got %v", err)
	}
	if th == nil || th.Key != "MASKED_RIDER" {
		t.Errorf("Expected default theme, got %+v", th)
	}
}

func TestParse_ReportsBadColors(t *testing.T) {
	doc := `
themes:
  - key: BROKEN
    name: Broken
    colors: {primary: "cyan", secondary: "#ff00ff", accent: "#ffffff", background: "#000000"}
    playerShip: {color: "#00ffff", accentColor: "#ff00ff"}
    enemyShip: {color: "#ff4444", accentColor: "#ff0000"}
    background: {starColor: "#00ffff", gradientStart: "#000033", gradientEnd: "#000000", effect: lava}
    bullets: {color: "#00ffff", glowColor: "#ffffff"}
    particles: {colors: ["#00ffff"]}
    ui: {textColor: "#00ffff", accentColor: "#ff00ff"}
`
	_, err := Parse([]byte(doc))
	if err == nil {
		t.Fatal("Expected error for broken theme")
	}
	for _, want := range []string{"colors.primary", "background.effect"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("Expected error to mention %s, got %v", want, err)
		}
	}
}

func TestParse_UnknownDefault(t *testing.T) {
	doc := `
default: NOPE
themes:
  - key: A
    name: A
    colors: {primary: "#ffffff", secondary: "#ffffff", accent: "#ffffff", background: "#000000"}
    playerShip: {color: "#ffffff", accentColor: "#ffffff"}
    enemyShip: {color: "#ffffff", accentColor: "#ffffff"}
    background: {starColor: "#ffffff", gradientStart: "#000000", gradientEnd: "#000000"}
    bullets: {color: "#ffffff", glowColor: "#ffffff"}
    particles: {colors: ["#ffffff"]}
    ui: {textColor: "#ffffff", accentColor: "#ffffff"}
`
	_, err := Parse([]byte(doc))
	if !errors.Is(err, ErrUnknownTheme) {
		t.Errorf("Expected ErrUnknownTheme, got %v", err)
	}
}

func TestFallback_IsPlain(t *testing.T) {
	fb := Fallback()
	if fb.Background.Effect != EffectNone {
		t.Errorf("Expected no effect, got %s", fb.Background.Effect)
	}
	if fb.Bullets.GlowIntensity != 0 {
		t.Errorf("Expected no bullet glow, got %f", fb.Bullets.GlowIntensity)
	}
	if fb.PlayerShip.Color != gfx.MustHex("#00ff00") {
		t.Errorf("Expected green player ship, got %v", fb.PlayerShip.Color)
	}
}

func TestFallbackProvider_LoadAlwaysReturnsTheme(t *testing.T) {
	p := FallbackProvider()
	th, err := p.Load("MASKED_RIDER")
	if err == nil {
		t.Error("Expected an error for a theme missing from the fallback set")
	}
	if th.Name != "Fallback" {
		t.Errorf("Expected Fallback, got %s", th.Name)
	}
}

func TestParticleColor_Wraps(t *testing.T) {
	th := Fallback()
	if th.ParticleColor(3) != th.ParticleColor(0) {
		t.Error("Expected index 3 to wrap to 0")
	}
}

func TestDrawBackground_Effects(t *testing.T) {
	p, _ := NewProvider()

	testCases := []struct {
		key      string
		kind     string
		minCount int
	}{
		{"MASKED_RIDER", "line", 20},
		{"ULTRAMAN", "radial", nebulaClouds},
		{"GODZILLA", "fillRect", starCount + len(skyline)},
	}

	for _, tc := range testCases {
		t.Run(tc.key, func(t *testing.T) {
			th, _ := p.Get(tc.key)
			r := gfx.NewRecorder(800, 600)
			DrawBackground(r, th, 1234)

			if r.Count("gradient") != 1 {
				t.Errorf("Expected one gradient, got %d", r.Count("gradient"))
			}
			if got := r.Count(tc.kind); got < tc.minCount {
				t.Errorf("Expected at least %d %s ops, got %d", tc.minCount, tc.kind, got)
			}
			if r.Depth() != 0 {
				t.Errorf("Expected balanced push/pop, got depth %d", r.Depth())
			}
		})
	}
}

func TestDrawStars_AlphaRange(t *testing.T) {
	r := gfx.NewRecorder(800, 600)
	DrawStars(r, Fallback(), 500)

	if r.Count("fillRect") != starCount {
		t.Fatalf("Expected %d stars, got %d", starCount, r.Count("fillRect"))
	}
	for _, op := range r.Ops {
		if op.Alpha < 0.2-1e-9 || op.Alpha > 1 {
			t.Errorf("Expected star alpha in [0.2, 1], got %f", op.Alpha)
		}
		if op.Y < 0 || op.Y >= 600 {
			t.Errorf("Expected star inside canvas, got y=%f", op.Y)
		}
	}
}
