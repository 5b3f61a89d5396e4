package css

import (
	"strconv"
)

// Value is a resolved or declared attribute value.
//
// Implementations are Length, Color, Enum, String and the Inherit marker.
// The interface is sealed; no other package may add variants.
type Value interface {
	String() string
	isValue()
}

// Enum is a keyword value, e.g. `center` or `bold`.
type Enum string

func (e Enum) isValue() {}

func (e Enum) String() string {
	return string(e)
}

// String is a quoted text value. No escape processing is performed, so a
// String may not contain double quotes.
type String string

func (s String) isValue() {}

// String returns the value in its double-quoted source form.
func (s String) String() string {
	return `"` + string(s) + `"`
}

type inheritMarker struct{}

func (inheritMarker) isValue() {}

func (inheritMarker) String() string {
	return "inherit"
}

// Inherit is the marker value requesting the parent's value for an attribute.
var Inherit Value = inheritMarker{}

// IsInherit is a predicate for the Inherit marker.
func IsInherit(v Value) bool {
	_, ok := v.(inheritMarker)
	return ok
}

// Equal reports wether two values are of the same variant and carry the same
// payload. Lengths with different units are never equal, even if they would
// convert to the same number of pixels. nil equals only nil.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	switch x := a.(type) {
	case Length:
		y, ok := b.(Length)
		return ok && x.Unit == y.Unit && x.Number == y.Number
	case Color:
		y, ok := b.(Color)
		return ok && x == y
	case Enum:
		y, ok := b.(Enum)
		return ok && x == y
	case String:
		y, ok := b.(String)
		return ok && x == y
	case inheritMarker:
		_, ok := b.(inheritMarker)
		return ok
	}
	return false
}

// formatNumber writes a number in its shortest form which parses back to
// the same float64.
func formatNumber(n float64) string {
	return strconv.FormatFloat(n, 'g', -1, 64)
}

// --- Matching --------------------------------------------------------------

// Matcher matches a value against its variants. See Match.
type Matcher interface {
	Length(*Length) Matcher
	Color(*Color) Matcher
	Enum(*Enum) Matcher
	String(*String) Matcher
	Inherit() Matcher
}

type matcher struct {
	v Value
}

// Match returns a matcher for v, to be used in a switch statement:
//
//	switch m := css.Match(v); m {
//	case m.Length(&l):
//	case m.Color(&c):
//	}
//
// Each case returns the matcher itself if v is of the requested variant
// (storing the payload), nil otherwise.
func Match(v Value) Matcher {
	return matcher{v: v}
}

func (m matcher) Length(l *Length) Matcher {
	if x, ok := m.v.(Length); ok {
		if l != nil {
			*l = x
		}
		return m
	}
	return nil
}

func (m matcher) Color(c *Color) Matcher {
	if x, ok := m.v.(Color); ok {
		if c != nil {
			*c = x
		}
		return m
	}
	return nil
}

func (m matcher) Enum(e *Enum) Matcher {
	if x, ok := m.v.(Enum); ok {
		if e != nil {
			*e = x
		}
		return m
	}
	return nil
}

func (m matcher) String(s *String) Matcher {
	if x, ok := m.v.(String); ok {
		if s != nil {
			*s = x
		}
		return m
	}
	return nil
}

func (m matcher) Inherit() Matcher {
	if IsInherit(m.v) {
		return m
	}
	return nil
}
