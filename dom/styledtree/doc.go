/*
Package styledtree is a straightforward default implementation of a styled
UI tree.

# Overview

A styled tree is a tree (see package tree) of StyNodes, each of them
wrapping a UI node of the host (see interface w3cdom.Node). Once per frame
the host calls Styler.Restyle, which walks the tree top-down and, for every
node,

  - resolves the node's attributes from the current style sheet (package cascade),
  - advances running transitions by the frame's time delta (package transition),
  - stores the resulting values in the node, for the host to read.

A Restyle pass uses one snapshot of the style sheet from start to end,
even if a new style sheet is loaded concurrently.

___________________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package styledtree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'uistyle.dom'.
func tracer() tracing.Trace {
	return tracing.Select("uistyle.dom")
}
