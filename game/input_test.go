package game

import "testing"

func TestTranslateKey(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"A translates to Left", "KeyA", KeyArrowLeft},
		{"D translates to Right", "KeyD", KeyArrowRight},
		{"W translates to Up", "KeyW", KeyArrowUp},
		{"S translates to Down", "KeyS", KeyArrowDown},
		{"Numpad 5 translates to Down", "Numpad5", KeyArrowDown},
		{"Numpad 0 translates to Space", "Numpad0", KeySpace},
		{"Z translates to Space", "KeyZ", KeySpace},
		{"Numpad Enter translates to Enter", "NumpadEnter", KeyEnter},
		{"Arrow Left stays Arrow Left", KeyArrowLeft, KeyArrowLeft},
		{"R stays R", KeyR, KeyR},
		{"Unknown key stays same", "F1", "F1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TranslateKey(tt.input); got != tt.expected {
				t.Errorf("TranslateKey(%q) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

// TestKeys_AlternatesShareState tests that releasing an alternate releases
// the canonical key
func TestKeys_AlternatesShareState(t *testing.T) {
	k := make(Keys)
	k.Press("KeyA")
	if c := k.Controls(); !c.Left || c.Right {
		t.Errorf("Expected only Left held, got %+v", c)
	}
	k.Release(KeyArrowLeft)
	if c := k.Controls(); c.Left {
		t.Errorf("Expected Left released, got %+v", c)
	}
}

func TestIsGameKey(t *testing.T) {
	for _, code := range []string{KeyArrowLeft, KeyArrowDown, KeySpace, KeyEnter} {
		if !IsGameKey(code) {
			t.Errorf("Expected %s to be a game key", code)
		}
	}
	for _, code := range []string{KeyR, KeyEscape, "F5"} {
		if IsGameKey(code) {
			t.Errorf("Expected %s not to be a game key", code)
		}
	}
}
