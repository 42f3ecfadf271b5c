package math

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/chewxy/math32"
)

// ErrInvalidHexColor is returned by ParseHex for malformed input.
var ErrInvalidHexColor = errors.New("invalid hex color: expected #RGB or #RRGGBB")

// Color represents an RGBA color with float components (nominally 0.0 to 1.0).
type Color struct {
	R, G, B, A float32
}

// Named colors.
var (
	White  = Color{1, 1, 1, 1}
	Black  = Color{0, 0, 0, 1}
	Red    = Color{1, 0, 0, 1}
	Green  = Color{0, 1, 0, 1}
	Blue   = Color{0, 0, 1, 1}
	Yellow = Color{1, 1, 0, 1}

	// DefaultColor is the color of a newly created mobject.
	DefaultColor = White
)

// RGBA returns the color (r, g, b, a).
func RGBA(r, g, b, a float32) Color {
	return Color{r, g, b, a}
}

// WithAlpha returns a copy of the color with a different alpha value.
func (c Color) WithAlpha(a float32) Color {
	return Color{c.R, c.G, c.B, a}
}

// WithRGB returns a copy of c carrying the red, green and blue
// channels of other. Alpha is kept.
func (c Color) WithRGB(other Color) Color {
	return Color{other.R, other.G, other.B, c.A}
}

// ParseHex parses "#RRGGBB" or the short form "#RGB" into an opaque color.
func ParseHex(s string) (Color, error) {
	if len(s) == 0 || s[0] != '#' {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHexColor, s)
	}
	digits := s[1:]
	switch len(digits) {
	case 3:
		digits = string([]byte{
			digits[0], digits[0],
			digits[1], digits[1],
			digits[2], digits[2],
		})
	case 6:
	default:
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHexColor, s)
	}

	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHexColor, s)
	}
	return Color{
		R: float32((v>>16)&0xFF) / 255.0,
		G: float32((v>>8)&0xFF) / 255.0,
		B: float32(v&0xFF) / 255.0,
		A: 1.0,
	}, nil
}

// Hex formats the red, green and blue channels as "#RRGGBB".
// Channels are clamped to [0, 1] and rounded to the nearest 8-bit value.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", channelByte(c.R), channelByte(c.G), channelByte(c.B))
}

func channelByte(v float32) uint8 {
	return uint8(math32.Floor(Clamp01(v)*255 + 0.5))
}

// Clamp01 clamps v to [0, 1]. NaN clamps to 0.
func Clamp01(v float32) float32 {
	if !(v >= 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
