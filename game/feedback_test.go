package game

import (
	"math"
	"reflect"
	"testing"

	"github.com/simukka/henshin-strike/common"
	"github.com/simukka/henshin-strike/config"
	"github.com/simukka/henshin-strike/gfx"
)

func TestWrapWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		width    int
		expected []string
	}{
		{"Empty", "", 10, nil},
		{"Fits", "fire fast", 10, []string{"fire fast"}},
		{"Breaks on spaces", "shoot every enemy down", 11, []string{"shoot every", "enemy down"}},
		{"Long word alone", "a transformation b", 5, []string{"a", "transformation", "b"}},
		{"Collapses spaces", "  wide   shot ", 20, []string{"wide shot"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := wrapWords(tt.input, tt.width); !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestGroupThousands(t *testing.T) {
	tests := []struct {
		input    int
		expected string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{123456, "123,456"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}

	for _, tt := range tests {
		if got := groupThousands(tt.input); got != tt.expected {
			t.Errorf("groupThousands(%d): expected %q, got %q", tt.input, tt.expected, got)
		}
	}
}

// TestNotification_Description tests that long descriptions are cut with an
// ellipsis
func TestNotification_Description(t *testing.T) {
	long := "Bullets bend toward the nearest enemy inside the tracking radius for a while"
	n := &Notification{Entry: &CatalogEntry{Description: long}, DurationMs: 3000}
	got := []rune(n.Description())
	if len(got) != notifyMaxChars || string(got[len(got)-3:]) != "..." {
		t.Errorf("Expected %d runes ending in ..., got %q", notifyMaxChars, string(got))
	}
	if truncate("short", 50) != "short" {
		t.Errorf("Expected short text unchanged")
	}
	if (&Notification{}).Description() != "" {
		t.Errorf("Expected empty description without an entry")
	}
}

// TestNotification_Alpha tests the banner stays opaque until 80% of its life
func TestNotification_Alpha(t *testing.T) {
	n := &Notification{DurationMs: 1000}
	n.ElapsedMs = 800
	if n.Alpha() != 1 {
		t.Errorf("Expected opaque at 80%%, got %v", n.Alpha())
	}
	n.ElapsedMs = 900
	if math.Abs(n.Alpha()-0.5) > 1e-9 {
		t.Errorf("Expected half faded at 90%%, got %v", n.Alpha())
	}
	n.ElapsedMs = 1000
	if !n.Done() || n.Alpha() != 0 {
		t.Errorf("Expected done and invisible at the end, got alpha %v", n.Alpha())
	}
}

// TestFlash_FadesOut tests the flash decays linearly from its peak
func TestFlash_FadesOut(t *testing.T) {
	var f Flash
	f.Start(gfx.Red, 0.4, 400)
	if f.Alpha() != 0.4 {
		t.Errorf("Expected peak alpha 0.4, got %v", f.Alpha())
	}
	for i := 0; i < 12; i++ {
		f.Advance(16)
	}
	if math.Abs(f.Alpha()-0.4*(1-192.0/400)) > 1e-9 {
		t.Errorf("Expected linear decay, got %v", f.Alpha())
	}
	for i := 0; i < 13; i++ {
		f.Advance(16)
	}
	if f.Active() || f.Alpha() != 0 {
		t.Errorf("Expected flash over after 400ms")
	}
}

// TestShake_Offset tests the offset stays within the decaying amplitude
func TestShake_Offset(t *testing.T) {
	var s Shake
	rng := common.NewSeededRNG(3)
	if dx, dy := s.Offset(rng); dx != 0 || dy != 0 {
		t.Errorf("Expected no offset while idle, got %v,%v", dx, dy)
	}

	s.Start(config.ShakeConfig{Intensity: 8, DurationMs: 400})
	for i := 0; i < 10; i++ {
		dx, dy := s.Offset(rng)
		if math.Abs(dx) > 8 || math.Abs(dy) > 8 {
			t.Fatalf("Expected offset within intensity, got %v,%v", dx, dy)
		}
		s.Advance(16)
	}

	s.Start(config.ShakeConfig{Intensity: 3, DurationMs: 200})
	if s.Intensity != 3 || s.ElapsedMs != 0 {
		t.Errorf("Expected a new shake to replace the running one, got %+v", s)
	}
}

// TestPopup_Update tests that popups rise, slow down and fade
func TestPopup_Update(t *testing.T) {
	cfg := config.Default().Effects
	p := newScorePopup(100, 200, 30, cfg)
	if p.Text != "+30" || p.Alpha() != 1 || p.Scale() != 1 {
		t.Fatalf("Unexpected new popup %+v", p)
	}
	vy := p.VY
	p.Update(cfg.PopupDrag)
	if p.Y != 200+vy || p.Life != cfg.PopupLife-1 {
		t.Errorf("Expected one step of drift, got %+v", p)
	}
	if p.Scale() <= 1 {
		t.Errorf("Expected the label to grow as it fades")
	}
}

// TestButton_HoverAndPress tests hover change reporting and the press timer
func TestButton_HoverAndPress(t *testing.T) {
	b := NewCenteredButton(800, "START")
	cx, cy := b.X+b.W/2, b.Y+b.H/2

	if !b.Hover(cx, cy) || !b.Hovered {
		t.Errorf("Expected hover to start over the button")
	}
	if b.Hover(cx+1, cy) {
		t.Errorf("Expected no change while still hovered")
	}
	if !b.Hover(0, 0) || b.Hovered {
		t.Errorf("Expected hover to end off the button")
	}

	b.Press()
	for i := 0; i < 9; i++ {
		b.Update(16)
	}
	if !b.Pressed() {
		t.Errorf("Expected press animation to run for 150ms")
	}
	b.Update(16)
	if b.Pressed() {
		t.Errorf("Expected press animation over after 160ms")
	}
}
