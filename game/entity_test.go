package game

import "testing"

// TestRect_Intersects tests overlap, separation and edge contact
func TestRect_Intersects(t *testing.T) {
	base := Rect{X: 100, Y: 100, W: 40, H: 30}
	tests := []struct {
		name     string
		other    Rect
		expected bool
	}{
		{"Overlapping", Rect{X: 120, Y: 110, W: 40, H: 30}, true},
		{"Contained", Rect{X: 110, Y: 105, W: 4, H: 10}, true},
		{"Identical", base, true},
		{"Touching right edge", Rect{X: 140, Y: 100, W: 40, H: 30}, false},
		{"Touching bottom edge", Rect{X: 100, Y: 130, W: 40, H: 30}, false},
		{"Touching left edge", Rect{X: 60, Y: 100, W: 40, H: 30}, false},
		{"Touching top edge", Rect{X: 100, Y: 70, W: 40, H: 30}, false},
		{"Touching corner", Rect{X: 140, Y: 130, W: 10, H: 10}, false},
		{"Far away", Rect{X: 500, Y: 500, W: 10, H: 10}, false},
		{"Overlap by a fraction", Rect{X: 139.9, Y: 100, W: 10, H: 10}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := base.Intersects(tt.other); got != tt.expected {
				t.Errorf("Expected Intersects=%v, got %v", tt.expected, got)
			}
			if got := tt.other.Intersects(base); got != tt.expected {
				t.Errorf("Expected symmetric Intersects=%v, got %v", tt.expected, got)
			}
		})
	}
}

// TestRect_Center tests the midpoint of a box
func TestRect_Center(t *testing.T) {
	x, y := Rect{X: 10, Y: 20, W: 40, H: 30}.Center()
	if x != 30 || y != 35 {
		t.Errorf("Expected center (30, 35), got (%v, %v)", x, y)
	}
}

// TestCollides_BulletUsesCenteredX tests that a bullet's X is its center
func TestCollides_BulletUsesCenteredX(t *testing.T) {
	e := &Enemy{X: 100, Y: 100, Width: 40, Height: 30}

	// Bullet box spans 138..142, overlapping the enemy's right edge at 140.
	hit := &Bullet{X: 140, Y: 110, Width: 4, Height: 10}
	if !Collides(hit, e) {
		t.Errorf("Expected bullet straddling the edge to collide")
	}

	// Bullet box spans 140..144 and only touches the edge.
	touch := &Bullet{X: 142, Y: 110, Width: 4, Height: 10}
	if Collides(touch, e) {
		t.Errorf("Expected bullet touching the edge not to collide")
	}
}
