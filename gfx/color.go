package gfx

import (
	"fmt"
	"image/color"
	"strconv"
)

// Common colors.
var (
	Black       = color.NRGBA{0, 0, 0, 255}
	White       = color.NRGBA{255, 255, 255, 255}
	Cyan        = color.NRGBA{0, 255, 255, 255}
	Red         = color.NRGBA{255, 0, 0, 255}
	Yellow      = color.NRGBA{255, 255, 0, 255}
	Green       = color.NRGBA{0, 255, 0, 255}
	Gray        = color.NRGBA{136, 136, 136, 255}
	Transparent = color.NRGBA{}
)

// ParseHex decodes "#rrggbb" or "#rgb".
func ParseHex(s string) (color.NRGBA, error) {
	if len(s) == 0 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("color %q must start with #", s)
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("color %q must have 3 or 6 hex digits", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// MustHex is ParseHex for literals and validated data. It panics on bad input.
func MustHex(s string) color.NRGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}

// HexString renders c as "#rrggbb", dropping alpha.
func HexString(c color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// WithAlpha returns c with its alpha replaced by a in [0, 1].
func WithAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(clamp01(a)*255 + 0.5)
	return c
}

// ScaleAlpha multiplies the alpha of c by a in [0, 1].
func ScaleAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(float64(c.A)*clamp01(a) + 0.5)
	return c
}

// Lerp blends a towards b by t in [0, 1].
func Lerp(a, b color.NRGBA, t float64) color.NRGBA {
	t = clamp01(t)
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t + 0.5)
	}
	return color.NRGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), mix(a.A, b.A)}
}

// CSS renders c as a canvas fillStyle string.
func CSS(c color.NRGBA) string {
	if c.A == 255 {
		return HexString(c)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%.3f)", c.R, c.G, c.B, float64(c.A)/255)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
