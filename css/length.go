package css

import (
	"fmt"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
)

// Unit is the unit of a length. UnitNone denotes a plain number.
type Unit uint8

// Units for lengths.
const (
	UnitNone Unit = iota // plain number, treated as pixels
	Px                   // pixels
	Pt                   // points, 1pt = 1/72 inch
	Pc                   // percent, relative to a context dependent range
	Vw                   // percent of the viewport width
	Vh                   // percent of the viewport height
	Em                   // multiples of the root font size
)

var unitNames = [...]string{"", "px", "pt", "%", "vw", "vh", "em"}

func (u Unit) String() string {
	if int(u) < len(unitNames) {
		return unitNames[u]
	}
	return fmt.Sprintf("unit(%d)", uint8(u))
}

// UnitFromString returns the unit for a unit suffix, e.g. "px".
// Suffixes are case-insensitive. The empty suffix maps to UnitNone.
func UnitFromString(s string) (Unit, bool) {
	s = strings.ToLower(s)
	for i, name := range unitNames {
		if name == s {
			return Unit(i), true
		}
	}
	return UnitNone, false
}

// Length is a number with an optional unit, e.g. `10px` or `50%`.
type Length struct {
	Number float64
	Unit   Unit
}

// PxLength creates a length in pixels.
func PxLength(n float64) Length {
	return Length{Number: n, Unit: Px}
}

func (l Length) isValue() {}

func (l Length) String() string {
	return formatNumber(l.Number) + l.Unit.String()
}

// HasUnit is false for plain numbers.
func (l Length) HasUnit() bool {
	return l.Unit != UnitNone
}

// Viewport carries the context needed to convert relative lengths to pixels.
// A zero RootFontSize is treated as 16 pixels, a zero Scale as 1.
type Viewport struct {
	Width        float32
	Height       float32
	Scale        float32
	RootFontSize float32
}

// DefaultRootFontSize is the size of 1em in unscaled pixels.
const DefaultRootFontSize = 16.0

func (vp Viewport) scale() float32 {
	if vp.Scale == 0 {
		return 1
	}
	return vp.Scale
}

func (vp Viewport) rootFont() float32 {
	if vp.RootFontSize == 0 {
		return DefaultRootFontSize
	}
	return vp.RootFontSize
}

// Pixels converts a length to pixels. Percentages are relative to the range
// [min…max], which is context specific (often the parent's extent).
// Plain numbers are pixels.
func (l Length) Pixels(min, max float32, vp Viewport) float32 {
	n := float32(l.Number)
	switch l.Unit {
	case UnitNone, Px:
		return n
	case Pt:
		return n * 96.0 / 72.0 * vp.scale()
	case Pc:
		return min + (max-min)*n/100.0
	case Vw:
		return n * vp.Width / 100.0
	case Vh:
		return n * vp.Height / 100.0
	case Em:
		return n * vp.rootFont() * vp.scale()
	}
	tracer().Infof("cannot convert length %v to pixels", l)
	return n
}

// Dimen converts a length to typesetting units. A pixel is 3/4 of a point,
// following the CSS reference pixel of 1/96 inch.
func (l Length) Dimen(min, max float32, vp Viewport) dimen.DU {
	if l.Unit == Pt {
		return dimen.DU(l.Number * float64(dimen.PT))
	}
	px := float64(l.Pixels(min, max, vp))
	return dimen.DU(px * 0.75 * float64(dimen.PT))
}
