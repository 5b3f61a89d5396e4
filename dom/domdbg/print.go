package domdbg

import (
	"fmt"

	"github.com/npillmayer/uistyle/dom/style/cssom"
	"github.com/npillmayer/uistyle/dom/styledtree"
	"github.com/npillmayer/uistyle/tree"
	tp "github.com/xlab/treeprint"
)

// PrintSheet returns a tree-shaped dump of a style sheet, listing rules
// with their selectors and attribute declarations.
func PrintSheet(sheet *cssom.StyleSheet) string {
	p := tp.New()
	p.SetValue(fmt.Sprintf("StyleSheet(#rules=%d)", sheet.Len()))
	for i := 0; i < sheet.Len(); i++ {
		r := sheet.Rule(i)
		branch := p.AddBranch(fmt.Sprintf("#%d %s", i, r.Selectors))
		for _, a := range r.Attributes {
			branch.AddNode(a.String())
		}
	}
	return p.String()
}

// PrintTree returns a tree-shaped dump of a styled tree. For every node
// the displayed values of attrs are listed; nodes not yet styled are
// flagged.
func PrintTree(root *tree.Node[*styledtree.StyNode], attrs ...string) string {
	p := tp.New()
	ppt(p, root, attrs, true)
	return p.String()
}

func ppt(p tp.Tree, n *tree.Node[*styledtree.StyNode], attrs []string, isRoot bool) {
	sn := styledtree.Node(n)
	if sn == nil || sn.UINode() == nil {
		p.AddNode("<nil>")
		return
	}
	text := fmt.Sprintf("%s %s", label(sn.UINode()), sn.UINode().ID())
	if !sn.IsStyled() {
		text += " (unstyled)"
	}
	branch := p
	if isRoot {
		p.SetValue(text)
	} else {
		branch = p.AddBranch(text)
	}
	for _, a := range attrs {
		if v := sn.Value(a); v != nil {
			branch.AddMetaNode(a, v.String())
		}
	}
	for _, ch := range n.Children() {
		ppt(branch, ch, attrs, false)
	}
}
