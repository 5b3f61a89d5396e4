package style

import (
	"image/color"
	"math"

	"github.com/npillmayer/uistyle/css"
)

// ColorOf converts a resolved attribute value to a Go color for rendering
// code. Values which are not colors yield fallback.
func ColorOf(v css.Value, fallback color.Color) color.Color {
	c, ok := v.(css.Color)
	if !ok {
		return fallback
	}
	ch := func(x float32) uint8 {
		return uint8(math.Round(float64(clamp01(x)) * 255))
	}
	return color.NRGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: ch(c.A)}
}

// PixelsOf converts a resolved attribute value to pixels. Values which are
// not lengths yield fallback.
func PixelsOf(v css.Value, min, max float32, vp css.Viewport, fallback float32) float32 {
	l, ok := v.(css.Length)
	if !ok {
		return fallback
	}
	return l.Pixels(min, max, vp)
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
