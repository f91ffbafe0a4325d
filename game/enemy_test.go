package game

import (
	"image/color"
	"testing"

	"github.com/simukka/henshin-strike/config"
)

// TestNewEnemy_KindStats tests that each kind takes its stats from tuning
func TestNewEnemy_KindStats(t *testing.T) {
	tests := []struct {
		name   string
		kind   EnemyKind
		health int
		score  int
		speed  float64
		width  float64
	}{
		{"Basic", EnemyBasic, 1, 10, 2, 40},
		{"Armored", EnemyArmored, 3, 30, 1.4, 40},
		{"Boss", EnemyBoss, 10, 100, 1, 60},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEnemy(config.Default(), tt.kind, 0, 0, 2)
			if e.Health != tt.health || e.MaxHealth != tt.health {
				t.Errorf("Expected health %d, got %d/%d", tt.health, e.Health, e.MaxHealth)
			}
			if e.Score != tt.score {
				t.Errorf("Expected score %d, got %d", tt.score, e.Score)
			}
			if e.Speed < tt.speed-1e-9 || e.Speed > tt.speed+1e-9 {
				t.Errorf("Expected speed %v, got %v", tt.speed, e.Speed)
			}
			if e.Width != tt.width {
				t.Errorf("Expected width %v, got %v", tt.width, e.Width)
			}
		})
	}
}

// TestTakeDamage_KillingHitOnly tests that only the hit reaching zero reports
// the kill
func TestTakeDamage_KillingHitOnly(t *testing.T) {
	e := NewEnemy(config.Default(), EnemyArmored, 0, 0, 2)

	if e.TakeDamage(1) || e.TakeDamage(1) {
		t.Fatalf("Expected armored enemy to survive two hits")
	}
	if !e.TakeDamage(1) {
		t.Errorf("Expected third hit to kill")
	}
	if e.TakeDamage(1) {
		t.Errorf("Expected hits after death not to report a kill again")
	}
	if e.Health != 0 {
		t.Errorf("Expected health to stay at 0, got %d", e.Health)
	}
}

// TestTakeDamage_Overkill tests that health never goes negative
func TestTakeDamage_Overkill(t *testing.T) {
	e := NewEnemy(config.Default(), EnemyBasic, 0, 0, 2)
	if !e.TakeDamage(5) {
		t.Errorf("Expected overkill to kill")
	}
	if e.Health != 0 || !e.Destroyed() {
		t.Errorf("Expected health 0, got %d", e.Health)
	}
}

// TestEnemyUpdate_TimeScale tests that time slow scales movement
func TestEnemyUpdate_TimeScale(t *testing.T) {
	e := NewEnemy(config.Default(), EnemyBasic, 0, 0, 2)
	e.Update(1)
	e.Update(0.3)
	if e.Y < 2.6-1e-9 || e.Y > 2.6+1e-9 {
		t.Errorf("Expected y 2.6, got %v", e.Y)
	}
}

// TestShowHealthBar tests when the bar is drawn
func TestShowHealthBar(t *testing.T) {
	basic := NewEnemy(config.Default(), EnemyBasic, 0, 0, 2)
	if basic.ShowHealthBar() {
		t.Errorf("Expected no bar on an undamaged basic enemy")
	}
	armored := NewEnemy(config.Default(), EnemyArmored, 0, 0, 2)
	if !armored.ShowHealthBar() {
		t.Errorf("Expected bar on an armored enemy")
	}
}

// TestHealthBar_Color tests the color thresholds
func TestHealthBar_Color(t *testing.T) {
	bar := NewHealthBar(40)
	if bar.Width != 32 {
		t.Errorf("Expected bar width 32, got %v", bar.Width)
	}
	tests := []struct {
		fraction float64
		expected string
	}{
		{1, "high"},
		{0.67, "high"},
		{0.66, "medium"},
		{0.34, "medium"},
		{0.33, "low"},
		{0.1, "low"},
	}
	colors := map[string]color.NRGBA{"high": healthHigh, "medium": healthMedium, "low": healthLow}
	for _, tt := range tests {
		if got := bar.Color(tt.fraction); got != colors[tt.expected] {
			t.Errorf("Expected %s color at %v, got %v", tt.expected, tt.fraction, got)
		}
	}
}
