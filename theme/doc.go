/*
Package theme provides built-in style sheets for the standard widgets.

A theme is described by a TOML manifest, naming the theme, the style files
it is built from, and optionally a base theme it extends:

	name = "night"
	extends = "../day/theme.toml"
	sources = [ "default.css", "button.css" ]

The style sheet of a theme is the concatenation of the rules of its base
theme (if any) and of its source files, in the order given. Later rules
take precedence over earlier rules of equal specificity, which lets a theme
override selected attributes of its base.

Two themes are built in: "day" and "night".

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package theme

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'uistyle.theme'
func tracer() tracing.Trace {
	return tracing.Select("uistyle.theme")
}
