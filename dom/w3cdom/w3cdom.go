/*
Package w3cdom defines the view of a UI node the style engine relies on.

The style engine neither creates nor destroys nodes. Hosts hand it nodes
which expose a stable identity, a tag name (the element type), a set of
classes and a set of pseudo-tags. Pseudo-tags model abstract node states
like "hover" or "disabled", which selectors address as `:hover`.

Ancestry is never navigated through nodes. Wherever the engine needs the
ancestors of a node, clients pass a chain: a slice of nodes in root-to-node
order, with the node itself as the last element.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package w3cdom

import "fmt"

// NodeID is a stable per-node identity, used to key per-node state (e.g.,
// running transitions) across frames.
type NodeID uint64

func (id NodeID) String() string {
	return fmt.Sprintf("#%d", uint64(id))
}

// Node represents a UI node as seen by selectors.
type Node interface {
	ID() NodeID           // stable identity of the node
	NodeName() string     // tag name / element type, e.g. "button"
	HasClass(string) bool // is a class set for this node?
	HasTag(string) bool   // is a pseudo-tag set for this node?
	Classes() []string    // all classes, for diagnostics
	Tags() []string       // all pseudo-tags, for diagnostics
}

// Chain is a sequence of nodes in root-to-node order.
type Chain []Node

// Node returns the last node of the chain, i.e. the node the chain leads to,
// or nil for an empty chain.
func (c Chain) Node() Node {
	if len(c) == 0 {
		return nil
	}
	return c[len(c)-1]
}

// Parent returns the chain without its last node.
func (c Chain) Parent() Chain {
	if len(c) == 0 {
		return c
	}
	return c[:len(c)-1]
}
