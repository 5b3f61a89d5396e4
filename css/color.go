package css

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is a color with channels normalized to [0…1].
type Color struct {
	R, G, B, A float32
}

// RGBA creates a color from 8-bit channels.
func RGBA(r, g, b, a uint8) Color {
	return Color{
		R: float32(r) / 255,
		G: float32(g) / 255,
		B: float32(b) / 255,
		A: float32(a) / 255,
	}
}

// Some colors used by defaults.
var (
	Transparent = Color{}
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
)

func (c Color) isValue() {}

// String returns the color in hex notation if every channel is an exact
// 8-bit value, in rgba() notation otherwise. Opaque colors omit the alpha
// channel.
func (c Color) String() string {
	_, rok := byteChannel(c.R)
	_, gok := byteChannel(c.G)
	_, bok := byteChannel(c.B)
	a, aok := byteChannel(c.A)
	if rok && gok && bok && aok {
		hex := c.colorful().Hex()
		if a == 0xff {
			return hex
		}
		return fmt.Sprintf("%s%02x", hex, a)
	}
	return fmt.Sprintf("rgba(%s, %s, %s, %s)",
		formatChannel(c.R), formatChannel(c.G), formatChannel(c.B), strconv.FormatFloat(float64(c.A), 'f', -1, 32))
}

func byteChannel(x float32) (uint8, bool) {
	if x < 0 || x > 1 {
		return 0, false
	}
	n := uint8(math.Round(float64(x) * 255))
	return n, float32(n)/255 == x
}

// formatChannel formats a color channel in the range of [0…255]. The product
// x·255 is exact in float64, and ChannelFromByteRange divides it back to x
// without loss.
func formatChannel(x float32) string {
	if n, ok := byteChannel(x); ok {
		return strconv.Itoa(int(n))
	}
	return strconv.FormatFloat(float64(x)*255, 'f', -1, 64)
}

// ChannelFromByteRange normalizes a channel value given in [0…255].
// It is the inverse of the channel notation of Color.String.
func ChannelFromByteRange(n float64) float32 {
	return float32(n / 255)
}

func (c Color) colorful() colorful.Color {
	return colorful.Color{R: float64(c.R), G: float64(c.G), B: float64(c.B)}
}

// Mix blends two colors linearly, channel by channel (including alpha).
// t = 0 yields c, t = 1 yields other.
func (c Color) Mix(other Color, t float32) Color {
	rgb := c.colorful().BlendRgb(other.colorful(), float64(t))
	return Color{
		R: float32(rgb.R),
		G: float32(rgb.G),
		B: float32(rgb.B),
		A: c.A + (other.A-c.A)*t,
	}
}

// ErrHexColor is returned for malformed hex color notation.
var ErrHexColor = errors.New("invalid hex color")

// ParseHexColor parses a color in notation #rgb, #rgba, #rrggbb or
// #rrggbbaa. The leading '#' is optional.
func ParseHexColor(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	var digits [8]uint8
	switch len(s) {
	case 3, 4:
		for i := 0; i < len(s); i++ {
			d, ok := hexDigit(s[i])
			if !ok {
				return Color{}, fmt.Errorf("%w: non-hex digit %q", ErrHexColor, s[i])
			}
			digits[2*i], digits[2*i+1] = d, d
		}
	case 6, 8:
		for i := 0; i < len(s); i++ {
			d, ok := hexDigit(s[i])
			if !ok {
				return Color{}, fmt.Errorf("%w: non-hex digit %q", ErrHexColor, s[i])
			}
			digits[i] = d
		}
	default:
		return Color{}, fmt.Errorf("%w: expected 3, 4, 6 or 8 hex digits, have %d", ErrHexColor, len(s))
	}
	channel := func(i int) uint8 {
		return digits[2*i]<<4 | digits[2*i+1]
	}
	alpha := uint8(0xff)
	if len(s) == 4 || len(s) == 8 {
		alpha = channel(3)
	}
	return RGBA(channel(0), channel(1), channel(2), alpha), nil
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
