package cascade

import (
	"github.com/npillmayer/uistyle/dom/style/cssom"
	"github.com/npillmayer/uistyle/dom/w3cdom"
	"github.com/npillmayer/uistyle/maybe"
)

// Match matches a selector against the last node of an ancestor chain.
// It returns the selector's specificity if the selector matches, Nothing
// otherwise. Note that a match with zero specificity (e.g. for '*') is
// different from no match.
func Match(sel cssom.Selector, chain w3cdom.Chain) maybe.Maybe[Specificity] {
	n := len(chain)
	if n == 0 || !matchElement(sel.Target, chain[n-1]) {
		return maybe.Nothing[Specificity]()
	}
	if !matchSegments(sel.Segments, len(sel.Segments)-1, chain, n-1) {
		return maybe.Nothing[Specificity]()
	}
	return maybe.Just(SpecificityOf(sel))
}

// MatchAny matches a list of alternative selectors. If any of them matches,
// the maximum specificity of all matching selectors is returned.
func MatchAny(sels cssom.Selectors, chain w3cdom.Chain) maybe.Maybe[Specificity] {
	var best Specificity
	found := false
	for _, sel := range sels {
		if s, ok := Match(sel, chain).Get(); ok {
			if !found || best.Less(s) {
				best = s
			}
			found = true
		}
	}
	return maybe.From(best, found)
}

// matchSegments matches segs[0…k] against the ancestors of chain[pos],
// right to left. Segment k's combinator relates it to the element matched
// at pos.
func matchSegments(segs []cssom.Segment, k int, chain w3cdom.Chain, pos int) bool {
	if k < 0 {
		return true
	}
	seg := segs[k]
	if seg.Combinator == cssom.Child {
		return pos > 0 && matchElement(seg.Element, chain[pos-1]) &&
			matchSegments(segs, k-1, chain, pos-1)
	}
	// descendant: try the nearest ancestor first, then widen
	for i := pos - 1; i >= 0; i-- {
		if matchElement(seg.Element, chain[i]) && matchSegments(segs, k-1, chain, i) {
			return true
		}
	}
	return false
}

func matchElement(e cssom.ElementSelector, node w3cdom.Node) bool {
	if node == nil {
		return false
	}
	if e.Element != "" && e.Element != cssom.Wildcard && e.Element != node.NodeName() {
		return false
	}
	for _, c := range e.Classes {
		if !node.HasClass(c) {
			return false
		}
	}
	return e.Tag == "" || node.HasTag(e.Tag)
}
