/*
Package css implements the value model of the style engine.

Style attributes resolve to one of a small, closed set of semantic value
types: lengths (with an optional unit), colors, enum keywords, strings and
the "inherit" marker. This package defines these types together with
equality, interpolation (for transitions) and unit conversion.

Value is a closed sum type: the only implementations are the types of this
package. Clients switch over them exhaustively, either with a type switch or
with the matcher returned by Match:

	var l css.Length
	switch m := css.Match(v); m {
	case m.Length(&l):
	    ...
	case m.Inherit():
	    ...
	}

# Status

This is a first draft. The API may change without notice.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package css

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'uistyle.css'.
func tracer() tracing.Trace {
	return tracing.Select("uistyle.css")
}
