package tree

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"go.uber.org/multierr"
)

func build() *Node[string] {
	//      a
	//    /   \
	//   b     e
	//  / \
	// c   d
	a, b := NewNode("a"), NewNode("b")
	a.AddChild(b).AddChild(NewNode("e"))
	b.AddChild(NewNode("c")).AddChild(NewNode("d"))
	return a
}

func path(chain []*Node[string]) string {
	var s []string
	for _, n := range chain {
		s = append(s, n.Payload)
	}
	return strings.Join(s, "/")
}

func TestNodeChildren(t *testing.T) {
	root := build()
	assert.Equal(t, 2, root.ChildCount())
	b, ok := root.Child(0)
	assert.True(t, ok)
	assert.Same(t, root, b.Parent())
	_, ok = root.Child(5)
	assert.False(t, ok)
	x := NewNode("x")
	root.InsertChildAt(1, x)
	assert.Equal(t, 1, root.IndexOfChild(x))
	assert.Equal(t, 3, root.ChildCount())
	x.Isolate()
	assert.Nil(t, x.Parent())
	assert.Equal(t, -1, root.IndexOfChild(x))
	assert.Equal(t, 2, root.ChildCount())
	// re-attaching moves a node
	c, _ := b.Child(0)
	root.AddChild(c)
	assert.Equal(t, 1, b.ChildCount())
	assert.Same(t, root, c.Parent())
}

func TestTopDown(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.tree")
	defer teardown()
	//
	var visited []string
	err := TopDown(build(), func(n *Node[string], chain []*Node[string]) error {
		assert.Same(t, n, chain[len(chain)-1])
		visited = append(visited, path(chain))
		return nil
	})
	assert.NoError(t, err)
	assert.Equal(t, []string{"a", "a/b", "a/b/c", "a/b/d", "a/e"}, visited)
	assert.Equal(t, 5, Size(build()))
}

func TestTopDownPruning(t *testing.T) {
	var visited []string
	boom := errors.New("boom")
	err := TopDown(build(), func(n *Node[string], chain []*Node[string]) error {
		visited = append(visited, n.Payload)
		switch n.Payload {
		case "b":
			return SkipChildren
		case "e":
			return boom
		}
		return nil
	})
	assert.Equal(t, []string{"a", "b", "e"}, visited)
	assert.ErrorIs(t, err, boom)
	assert.Len(t, multierr.Errors(err), 1)
	assert.NoError(t, TopDown[string](nil, nil))
}
