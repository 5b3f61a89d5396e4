package style

import (
	"strings"

	"github.com/npillmayer/uistyle/css"
)

// Symbolic names for attribute groups. Groups are organizational only; they
// are used for diagnostics and debug output.
const (
	PGMargins   = "Margins"
	PGPadding   = "Padding"
	PGBorder    = "Border"
	PGDimension = "Dimension"
	PGLayout    = "Layout"
	PGColor     = "Color"
	PGText      = "Text"
	PGX         = "X"
)

// GroupNameFromAttribute returns the attribute group name for an attribute.
// Example:
//
//	GroupNameFromAttribute("margin-top") => "Margins"
//
// Unknown attributes will return a group name of "X".
func GroupNameFromAttribute(name string) string {
	switch {
	case strings.HasPrefix(name, "margin"):
		return PGMargins
	case strings.HasPrefix(name, "padding"):
		return PGPadding
	case strings.HasPrefix(name, "border"):
		return PGBorder
	case strings.HasSuffix(name, "width"), strings.HasSuffix(name, "height"):
		return PGDimension
	case strings.HasSuffix(name, "color"), name == "opacity":
		return PGColor
	case strings.HasPrefix(name, "font"), strings.HasPrefix(name, "text"):
		return PGText
	}
	switch name {
	case "direction", "gap", "align-items", "justify-content", "overflow", "cursor":
		return PGLayout
	}
	return PGX
}

var zero = css.Length{Number: 0, Unit: css.Px}

func px(n float64) css.Value {
	return css.Length{Number: n, Unit: css.Px}
}

// UserAgentSchema returns the schema for the attributes of the built-in
// widgets (div, text, button, checkbox, scroll, text-input, …).
//
// Values "auto" and "none" are enum defaults which should not be
// instantiated by rendering code, but rather be treated as "let the layout
// decide".
func UserAgentSchema() *Schema {
	s := NewSchema(
		// dimension
		Entry{Name: "width", Default: css.Enum("auto")},
		Entry{Name: "height", Default: css.Enum("auto")},
		Entry{Name: "min-width", Default: css.Enum("none")},
		Entry{Name: "min-height", Default: css.Enum("none")},
		Entry{Name: "max-width", Default: css.Enum("none")},
		Entry{Name: "max-height", Default: css.Enum("none")},
		// margins & padding
		Entry{Name: "margin-top", Default: zero},
		Entry{Name: "margin-right", Default: zero},
		Entry{Name: "margin-bottom", Default: zero},
		Entry{Name: "margin-left", Default: zero},
		Entry{Name: "padding-top", Default: zero},
		Entry{Name: "padding-right", Default: zero},
		Entry{Name: "padding-bottom", Default: zero},
		Entry{Name: "padding-left", Default: zero},
		// border
		Entry{Name: "border-width", Default: zero},
		Entry{Name: "border-color", Default: css.Black},
		Entry{Name: "border-top-left-radius", Default: zero},
		Entry{Name: "border-top-right-radius", Default: zero},
		Entry{Name: "border-bottom-right-radius", Default: zero},
		Entry{Name: "border-bottom-left-radius", Default: zero},
		// layout
		Entry{Name: "direction", Default: css.Enum("column")},
		Entry{Name: "gap", Default: zero},
		Entry{Name: "align-items", Default: css.Enum("start")},
		Entry{Name: "justify-content", Default: css.Enum("start")},
		Entry{Name: "overflow", Default: css.Enum("visible")},
		Entry{Name: "cursor", Default: css.Enum("default"), Inherited: true},
		// color
		Entry{Name: "color", Default: css.Black, Inherited: true},
		Entry{Name: "background-color", Default: css.Transparent},
		Entry{Name: "opacity", Default: css.Length{Number: 1}},
		// text
		Entry{Name: "font-size", Default: px(16), Inherited: true},
		Entry{Name: "font-family", Default: css.String("sans-serif"), Inherited: true},
		Entry{Name: "font-weight", Default: css.Enum("normal"), Inherited: true},
		Entry{Name: "text-align", Default: css.Enum("start"), Inherited: true},
		Entry{Name: "text-wrap", Default: css.Enum("word"), Inherited: true},
	)
	s = s.WithShorthand("margin", "margin-top", "margin-right", "margin-bottom", "margin-left")
	s = s.WithShorthand("padding", "padding-top", "padding-right", "padding-bottom", "padding-left")
	s = s.WithShorthand("border-radius", "border-top-left-radius", "border-top-right-radius",
		"border-bottom-right-radius", "border-bottom-left-radius")
	return s
}
