package game

// KeyMap maps alternative key codes to canonical control codes.
var KeyMap = map[string]string{
	"KeyA":        KeyArrowLeft,
	"KeyD":        KeyArrowRight,
	"KeyW":        KeyArrowUp,
	"KeyS":        KeyArrowDown,
	"Numpad4":     KeyArrowLeft,
	"Numpad6":     KeyArrowRight,
	"Numpad8":     KeyArrowUp,
	"Numpad2":     KeyArrowDown,
	"Numpad5":     KeyArrowDown,
	"Numpad0":     KeySpace,
	"NumpadEnter": KeyEnter,
	"KeyZ":        KeySpace,
	"KeyX":        KeySpace,
}

// TranslateKey converts alternative key codes to canonical control codes.
func TranslateKey(code string) string {
	if mapped, ok := KeyMap[code]; ok {
		return mapped
	}
	return code
}

// Keys is the set of canonical keys currently held down.
type Keys map[string]bool

// Press marks a raw key as held.
func (k Keys) Press(code string) {
	k[TranslateKey(code)] = true
}

// Release marks a raw key as released.
func (k Keys) Release(code string) {
	delete(k, TranslateKey(code))
}

// Controls reads the held movement keys.
func (k Keys) Controls() Controls {
	return Controls{
		Left:  k[KeyArrowLeft],
		Right: k[KeyArrowRight],
		Up:    k[KeyArrowUp],
		Down:  k[KeyArrowDown],
	}
}

// IsGameKey reports whether the browser default action for a canonical key
// should be suppressed.
func IsGameKey(code string) bool {
	switch code {
	case KeyArrowLeft, KeyArrowRight, KeyArrowUp, KeyArrowDown, KeySpace, KeyEnter:
		return true
	}
	return false
}
