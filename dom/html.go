package dom

import (
	"errors"
	"io"
	"strings"

	"github.com/npillmayer/uistyle/dom/styledtree"
	"github.com/npillmayer/uistyle/tree"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ErrNoBody is returned by FromHTML for documents without content.
var ErrNoBody = errors.New("HTML document has no body")

// TagsAttribute is the HTML attribute holding pseudo-tags, separated by
// whitespace.
const TagsAttribute = "data-tags"

// FromHTML builds a styled tree from HTML markup. The root of the tree is
// the <body> element. Comments and whitespace-only text are dropped.
func FromHTML(r io.Reader) (*tree.Node[*styledtree.StyNode], error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}
	body := findBody(doc)
	if body == nil {
		return nil, ErrNoBody
	}
	root := build(body)
	tracer().Debugf("built styled tree of %d nodes from HTML", tree.Size(root))
	return root, nil
}

// FromHTMLString is a shortcut for FromHTML(strings.NewReader(s)).
func FromHTMLString(s string) (*tree.Node[*styledtree.StyNode], error) {
	return FromHTML(strings.NewReader(s))
}

func findBody(h *html.Node) *html.Node {
	if h.Type == html.ElementNode && h.DataAtom == atom.Body {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if b := findBody(ch); b != nil {
			return b
		}
	}
	return nil
}

func build(h *html.Node) *tree.Node[*styledtree.StyNode] {
	e := NewElement(h.Data)
	for _, a := range h.Attr {
		switch a.Key {
		case "class":
			for _, c := range strings.Fields(a.Val) {
				e.SetClass(c, true)
			}
		case TagsAttribute:
			for _, t := range strings.Fields(a.Val) {
				e.SetTag(t, true)
			}
		}
	}
	n := styledtree.NewNodeForUINode(e)
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		switch ch.Type {
		case html.ElementNode:
			if ch.DataAtom == atom.Style || ch.DataAtom == atom.Script {
				continue
			}
			n.AddChild(build(ch))
		case html.TextNode:
			if text := strings.TrimSpace(ch.Data); text != "" {
				n.AddChild(styledtree.NewNodeForUINode(NewText(text)))
			}
		}
	}
	return n
}
