/*
Package dom provides UI nodes for the style engine and utilities to build
styled trees from them.

# Overview

The style engine sees UI nodes through interface w3cdom.Node. Hosts with
their own widget types implement this interface. Element is a plain,
general purpose implementation, useful for hosts without a widget tree of
their own, for tools and for tests.

FromHTML builds a styled tree of Elements from HTML markup, which is a
convenient way to write down a UI tree:

	<body>
	  <div class="panel">
	    <button class="primary" data-tags="hover">OK</button>
	  </div>
	</body>

Element names are taken from the HTML tags, classes from the "class"
attribute and pseudo-tags from the "data-tags" attribute. Text is kept in
nodes named "#text", which selectors cannot address; they inherit their
styles from their parents.

# Tree Implementation

Styling involves operations on different trees. We implement the various
trees on top of a general purpose tree type (package tree). In Go we resort
to composition, thus including a generic tree node in every node (sub-)type.
The downside of this approach is that we will have to provide an adapter
for every node sub-type to return the sub-type from the generic type
(see styledtree.Node).

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'uistyle.dom'
func tracer() tracing.Trace {
	return tracing.Select("uistyle.dom")
}
