package css

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnitMismatch is the error class for interpolation between lengths of
// different units.
var ErrUnitMismatch = errors.New("unit mismatch on transition")

// ErrNotInterpolable is returned for interpolation of enums, strings, the
// inherit marker, or between values of different variants.
var ErrNotInterpolable = errors.New("value is not interpolable")

// UnitMismatchError reports an interpolation between lengths with different
// units. It wraps ErrUnitMismatch.
type UnitMismatchError struct {
	From, To Unit
}

func (e UnitMismatchError) Error() string {
	return fmt.Sprintf("%s: cannot interpolate from unit %q to %q", ErrUnitMismatch, e.From, e.To)
}

func (e UnitMismatchError) Unwrap() error {
	return ErrUnitMismatch
}

// Lerp interpolates linearly between two values at fraction t, 0 ≤ t ≤ 1.
// t is clamped to this range.
//
// Lengths interpolate their number if both units are equal; colors
// interpolate every channel. For all other combinations Lerp returns `to`
// together with an error (UnitMismatchError or ErrNotInterpolable), which
// callers should treat as recoverable: the value snaps to its target.
func Lerp(from, to Value, t float32) (Value, error) {
	if t < 0 {
		t = 0
	} else if t >= 1 {
		return to, nil
	}
	switch a := from.(type) {
	case Length:
		b, ok := to.(Length)
		if !ok {
			return to, ErrNotInterpolable
		}
		if a.Unit != b.Unit {
			return to, UnitMismatchError{From: a.Unit, To: b.Unit}
		}
		return Length{Number: a.Number + (b.Number-a.Number)*float64(t), Unit: b.Unit}, nil
	case Color:
		b, ok := to.(Color)
		if !ok {
			return to, ErrNotInterpolable
		}
		return a.Mix(b, t), nil
	}
	return to, ErrNotInterpolable
}

// --- Easing ----------------------------------------------------------------

// Easing is a transition easing curve.
type Easing uint8

// Easing curves.
const (
	Linear Easing = iota // t
	Ease                 // smoothstep: t²·(3−2t)
)

// Evaluate evaluates the easing curve at t, 0 ≤ t ≤ 1.
func (e Easing) Evaluate(t float32) float32 {
	switch e {
	case Ease:
		return t * t * (3.0 - 2.0*t)
	}
	return t
}

func (e Easing) String() string {
	switch e {
	case Ease:
		return "ease"
	}
	return "linear"
}

// EasingFromString returns the easing curve for a keyword ("linear" or "ease").
func EasingFromString(s string) (Easing, bool) {
	switch strings.ToLower(s) {
	case "linear":
		return Linear, true
	case "ease":
		return Ease, true
	}
	return Linear, false
}
