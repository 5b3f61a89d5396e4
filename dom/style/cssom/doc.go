/*
Package cssom provides the object model for style sheets: rules, selectors
and attribute declarations, together with a parser, a serializer and a store
for the current style sheet of a process.

# Overview

Style sheets use a small subset of CSS syntax, suitable for styling UI
widgets rather than documents:

	button, .primary > text:hover {
	    background-color: #4c8bf5 0.2s ease;
	    padding: 4px;
	    color: inherit;
	}

A selector is a chain of element selectors joined by combinators. An element
selector consists of an optional element name (or the wildcard '*'), a set of
classes and an optional pseudo-tag, e.g. ":hover". A bare space between two
element selectors denotes a descendant relation, a '>' a parent/child
relation.

Attribute values are lengths, colors, keywords or double-quoted strings (see
package css). Lengths and colors may be followed by a transition duration in
seconds or milliseconds and an optional easing curve.

Style sheets are immutable. Parsing is pure: the same text always results in
a structurally identical style sheet. Reloading is done by swapping a new
sheet into a Store, which readers will pick up on their next snapshot.

Further to consider:

	https://www.w3.org/TR/css-syntax-3/
	https://hacks.mozilla.org/2017/08/inside-a-super-fast-css-engine-quantum-css-aka-stylo/

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'uistyle.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("uistyle.cssom")
}
