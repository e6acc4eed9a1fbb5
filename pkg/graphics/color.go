// Package graphics provides the value types used by widget configuration:
// colors, offsets, and image references handed to native views.
package graphics

import (
	"fmt"
	"math"
	"strings"
)

// maxByte is the maximum value of a byte, used for color normalization.
const maxByte = 255.0

// Color is stored as ARGB (0xAARRGGBB). The zero value means "no color
// preference": native views keep their platform default appearance.
type Color uint32

// ColorNone is the absence of a color preference.
const ColorNone Color = 0

// RGBA constructs a Color from red, green, blue bytes and alpha (0-1).
func RGBA(r, g, b uint8, a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGBA8 constructs a Color from red, green, blue, alpha bytes (all 0-255).
func RGBA8(r, g, b, a uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// RGB constructs an opaque Color from red, green, blue bytes.
func RGB(r, g, b uint8) Color {
	return RGBA8(r, g, b, 0xFF)
}

// IsSet reports whether the color carries a preference.
func (c Color) IsSet() bool {
	return c != ColorNone
}

// RGBAF returns normalized color components (0.0 to 1.0).
func (c Color) RGBAF() (r, g, b, a float64) {
	return float64(uint8(c>>16)) / maxByte,
		float64(uint8(c>>8)) / maxByte,
		float64(uint8(c)) / maxByte,
		float64(uint8(c>>24)) / maxByte
}

// Alpha returns the alpha component as a value from 0.0 (transparent) to 1.0 (opaque).
func (c Color) Alpha() float64 {
	return float64(uint8(c>>24)) / maxByte
}

// WithAlpha returns a copy of the color with the given alpha (0-1).
func (c Color) WithAlpha(a float64) Color {
	return Color(uint32(alpha01ToByte(a))<<24 | uint32(c)&0x00FFFFFF)
}

// ParseColor parses "#RRGGBB" or "#AARRGGBB" hex notation.
// "#RRGGBB" yields an opaque color.
func ParseColor(s string) (Color, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok {
		return ColorNone, fmt.Errorf("graphics: color %q missing # prefix", s)
	}

	var v uint32
	for _, r := range hex {
		d, ok := hexDigit(r)
		if !ok {
			return ColorNone, fmt.Errorf("graphics: invalid hex digit %q in color %q", r, s)
		}
		v = v<<4 | uint32(d)
	}

	switch len(hex) {
	case 6:
		return Color(0xFF000000 | v), nil
	case 8:
		return Color(v), nil
	default:
		return ColorNone, fmt.Errorf("graphics: color %q must have 6 or 8 hex digits", s)
	}
}

func hexDigit(r rune) (uint8, bool) {
	switch {
	case r >= '0' && r <= '9':
		return uint8(r - '0'), true
	case r >= 'a' && r <= 'f':
		return uint8(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return uint8(r-'A') + 10, true
	}
	return 0, false
}

// alpha01ToByte converts a 0-1 alpha to 0-255 with proper rounding.
func alpha01ToByte(a float64) uint8 {
	return uint8(math.Round(clamp01(a) * 255))
}

// clamp01 clamps a value to the range [0, 1].
func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
