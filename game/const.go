package game

// Mode is one of the four top-level screens.
type Mode int

const (
	ModeIntro Mode = iota
	ModeThemeSelect
	ModePlaying
	ModeGameOver
	modeCount
)

// Adding a mode without updating the tables below breaks the build.
const _ = uint(modeCount - 4)
const _ = uint(4 - modeCount)

// ModeNames maps Mode to the names used in logs and the stats overlay.
var ModeNames = map[Mode]string{
	ModeIntro:       "INTRO",
	ModeThemeSelect: "THEME_SELECT",
	ModePlaying:     "PLAYING",
	ModeGameOver:    "GAME_OVER",
}

func (m Mode) String() string {
	if name, ok := ModeNames[m]; ok {
		return name
	}
	return "UNKNOWN"
}

// Canonical key names. Every frontend reports keys as DOM KeyboardEvent.code
// strings; TranslateKey folds alternates onto these.
const (
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyArrowUp    = "ArrowUp"
	KeyArrowDown  = "ArrowDown"
	KeySpace      = "Space"
	KeyEnter      = "Enter"
	KeyEscape     = "Escape"
	KeyR          = "KeyR"
	KeyQ          = "KeyQ"
	KeyE          = "KeyE"
	KeyW          = "KeyW"
	KeyS          = "KeyS"
	KeyA          = "KeyA"
	KeyD          = "KeyD"
	KeyF9         = "F9"
	KeyF10        = "F10"
)

// Layout of the menu screens, in canvas pixels.
const (
	ButtonWidth   = 300.0
	ButtonHeight  = 50.0
	ButtonY       = 480.0
	CardWidth     = 180.0
	CardHeight    = 120.0
	CardSpacing   = 20.0
	CardY         = 200.0
	ButtonPressMs = 150.0
)

// HUD layout.
const (
	healthBarRatio   = 0.8
	healthBarHeight  = 4.0
	healthBarOffset  = 8.0
	shieldRadius     = 30.0
	particleSize     = 3.0
	notifyWidth      = 400.0
	notifyHeight     = 100.0
	notifyY          = 40.0
	notifyMaxChars   = 50
	panelItemHeight  = 35.0
	panelItemWidth   = 200.0
	panelBarWidth    = 140.0
	panelBarHeight   = 6.0
	panelWarnBelow   = 0.3
	notifyFadeAfter  = 0.8
	popupScaleGrowth = 0.5
)

// Power-up effect magnitudes.
const (
	rapidFireFactor   = 0.25
	wideShotCount     = 5
	wideShotAngle     = 0.3
	timeSlowScale     = 0.3
	megaBlastMultiple = 2
)

// Cosmetic animation steps applied once per tick.
const (
	pickupSpin      = 0.05
	pickupPulseStep = 0.1
	shieldPulseStep = 0.1
)

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
