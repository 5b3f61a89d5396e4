/*
Package cascade matches style rules against nodes and resolves the winning
attribute values for a node.

Matching operates on an ancestor chain (see w3cdom.Chain), which is a
root-to-node ordered slice of nodes. Selectors are matched right to left:
the rightmost element selector against the node itself, segments further to
the left against ancestors. Descendant combinators backtrack over all
ancestor positions, nearest first.

Resolving a node considers every rule with at least one matching selector,
ordered by specificity and then by position in the style sheet, later rules
first. The first declaration found for an attribute wins. Values of
"inherit" and attributes not declared by any rule are taken from the
parent's resolved style, if the attribute inherits, or from the attribute's
schema default otherwise.

Resolving is pure: it neither changes the style sheet nor the nodes, and it
may be called concurrently for different nodes, given a shared snapshot of
a style sheet.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package cascade

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'uistyle.cascade'.
func tracer() tracing.Trace {
	return tracing.Select("uistyle.cascade")
}
