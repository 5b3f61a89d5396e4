/*
Package tree implements a generic tree of mutable nodes.

Nodes carry a payload of type parameter T and maintain a concurrency-safe
slice of children. Trees are walked top-down with TopDown, which hands
every node to an action together with the chain of its ancestors. Clients
needing information about ancestors use this chain rather than navigating
parent links.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package tree

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'uistyle.tree'.
func tracer() tracing.Trace {
	return tracing.Select("uistyle.tree")
}
