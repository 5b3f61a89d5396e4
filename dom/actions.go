package dom

import (
	"github.com/npillmayer/uistyle/dom/styledtree"
	"github.com/npillmayer/uistyle/tree"
)

// Predicate is a function type to match nodes of a styled tree.
type Predicate func(*tree.Node[*styledtree.StyNode]) bool

// NodeIsText is a predicate to match text-nodes.
var NodeIsText Predicate = func(n *tree.Node[*styledtree.StyNode]) bool {
	sn := styledtree.Node(n)
	return sn != nil && sn.UINode() != nil && sn.UINode().NodeName() == TextNodeName
}

// NodeHasClass returns a predicate to match nodes with a class.
func NodeHasClass(class string) Predicate {
	return func(n *tree.Node[*styledtree.StyNode]) bool {
		sn := styledtree.Node(n)
		return sn != nil && sn.UINode() != nil && sn.UINode().HasClass(class)
	}
}

// NodeIsElement returns a predicate to match nodes by element name.
func NodeIsElement(name string) Predicate {
	return func(n *tree.Node[*styledtree.StyNode]) bool {
		sn := styledtree.Node(n)
		return sn != nil && sn.UINode() != nil && sn.UINode().NodeName() == name
	}
}

// FindAll collects the nodes matching a predicate, in document order.
func FindAll(root *tree.Node[*styledtree.StyNode], pred Predicate) []*tree.Node[*styledtree.StyNode] {
	var found []*tree.Node[*styledtree.StyNode]
	_ = tree.TopDown(root, func(n *tree.Node[*styledtree.StyNode], _ []*tree.Node[*styledtree.StyNode]) error {
		if pred(n) {
			found = append(found, n)
		}
		return nil
	})
	return found
}

// ElementOf returns the Element of a styled tree node, if the node was built
// from one.
func ElementOf(n *tree.Node[*styledtree.StyNode]) (*Element, bool) {
	sn := styledtree.Node(n)
	if sn == nil {
		return nil, false
	}
	e, ok := sn.UINode().(*Element)
	return e, ok
}
