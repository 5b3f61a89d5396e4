package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"sort"

	"github.com/npillmayer/uistyle/css"
	"github.com/npillmayer/uistyle/dom/style/cascade"
	"github.com/npillmayer/uistyle/dom/w3cdom"
	"github.com/npillmayer/uistyle/tree"
)

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	tree.Node[*StyNode] // we build on top of general purpose tree
	uiNode              w3cdom.Node
	computed            cascade.Resolved     // targets of the last pass
	displayed           map[string]css.Value // values of the last pass, after transitions
}

// NewNodeForUINode creates a new styled node linked to a UI node.
func NewNodeForUINode(n w3cdom.Node) *tree.Node[*StyNode] {
	sn := &StyNode{}
	sn.Payload = sn // Payload will always reference the node itself
	sn.uiNode = n
	return &sn.Node
}

// Node gets the styled node from a generic tree node.
func Node(n *tree.Node[*StyNode]) *StyNode {
	if n == nil {
		return nil
	}
	return n.Payload
}

// UINode gets the UI node corresponding to this styled node.
func (sn *StyNode) UINode() w3cdom.Node {
	return sn.uiNode
}

// Computed returns the resolved target values of the last styling pass,
// before transitions are applied. It is nil before the first pass.
func (sn *StyNode) Computed() cascade.Resolved {
	return sn.computed
}

// Value returns the displayed value for an attribute, i.e. the resolved
// value with transitions applied. It returns nil for unknown attributes and
// before the first styling pass.
func (sn *StyNode) Value(attr string) css.Value {
	return sn.displayed[attr]
}

// Attributes returns the names of all displayed attributes in sorted order.
func (sn *StyNode) Attributes() []string {
	names := make([]string, 0, len(sn.displayed))
	for name := range sn.displayed {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsStyled is false for nodes not yet visited by a styling pass.
func (sn *StyNode) IsStyled() bool {
	return sn.displayed != nil
}
