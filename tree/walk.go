package tree

import (
	"errors"

	"go.uber.org/multierr"
)

// SkipChildren may be returned by an Action to prevent descending below a
// node. It is not reported as an error.
var SkipChildren = errors.New("skip children")

// Action is a function type to operate on tree nodes during a top-down
// walk. chain holds the path from the root of the walk down to (and
// including) node. The chain is re-used during the walk; actions must not
// retain it.
type Action[T any] func(node *Node[T], chain []*Node[T]) error

// TopDown traverses a tree starting at (and including) the root node,
// depth first. The traversal guarantees that parents are always processed
// before their children, and children in order.
//
// If the action function returns an error for a node, descending the branch
// below this node is aborted. Errors other than SkipChildren are collected
// and returned as a combined error (see package multierr).
func TopDown[T any](root *Node[T], action Action[T]) error {
	if root == nil {
		return nil
	}
	var errs error
	chain := make([]*Node[T], 0, 16)
	var walk func(*Node[T])
	walk = func(node *Node[T]) {
		chain = append(chain, node)
		defer func() { chain = chain[:len(chain)-1] }()
		if err := action(node, chain); err != nil {
			if err != SkipChildren {
				tracer().Debugf("tree walk: %v", err)
				errs = multierr.Append(errs, err)
			}
			return
		}
		for _, ch := range node.Children() {
			walk(ch)
		}
	}
	walk(root)
	return errs
}

// Size returns the number of nodes of the tree below and including root.
func Size[T any](root *Node[T]) int {
	n := 0
	_ = TopDown(root, func(*Node[T], []*Node[T]) error {
		n++
		return nil
	})
	return n
}
