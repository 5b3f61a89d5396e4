package styledtree

import (
	"errors"
	"fmt"

	"github.com/npillmayer/uistyle/css"
	"github.com/npillmayer/uistyle/dom/style"
	"github.com/npillmayer/uistyle/dom/style/cascade"
	"github.com/npillmayer/uistyle/dom/style/cssom"
	"github.com/npillmayer/uistyle/dom/style/transition"
	"github.com/npillmayer/uistyle/dom/w3cdom"
	"github.com/npillmayer/uistyle/tree"
)

// ErrNotStyleable flags tree nodes without a UI node.
var ErrNotStyleable = errors.New("tree node without UI node cannot be styled")

// Styler runs styling passes over a styled tree. Each Styler owns the
// transition state of the tree it styles; it must not be used
// concurrently. Hosts styling independent trees concurrently (e.g., one per
// window) create one Styler per tree, sharing a Store.
type Styler struct {
	store  *cssom.Store
	table  *transition.Table
	props  props
	passes uint64
}

type props struct {
	viewport css.Viewport
	schema   *style.Schema
	topts    []transition.Option
}

// Option is a type to help initializing stylers at creation time.
type Option struct {
	config func(props) props
}

// WithViewport sets the viewport for converting relative lengths.
func WithViewport(vp css.Viewport) Option {
	return Option{config: func(p props) props {
		p.viewport = vp
		return p
	}}
}

// WithSchema sets the attribute schema. The default is
// style.UserAgentSchema().
func WithSchema(schema *style.Schema) Option {
	return Option{config: func(p props) props {
		p.schema = schema
		return p
	}}
}

// WithTransitionOptions configures the transition table of the styler.
func WithTransitionOptions(opts ...transition.Option) Option {
	return Option{config: func(p props) props {
		p.topts = append(p.topts, opts...)
		return p
	}}
}

// NewStyler creates a styler reading style sheets from store.
func NewStyler(store *cssom.Store, opts ...Option) *Styler {
	s := &Styler{store: store}
	for _, option := range opts {
		s.props = option.config(s.props)
	}
	if s.props.schema == nil {
		s.props.schema = style.UserAgentSchema()
	}
	s.table = transition.NewTable(s.props.topts...)
	return s
}

// Schema returns the attribute schema of s.
func (s *Styler) Schema() *style.Schema {
	return s.props.schema
}

// SetViewport changes the viewport, e.g. after a window resize.
func (s *Styler) SetViewport(vp css.Viewport) {
	s.props.viewport = vp
}

// Pixels returns the displayed value of a length attribute of a node in
// pixels. Percentages are relative to [min…max]. Non-lengths yield
// fallback.
func (s *Styler) Pixels(sn *StyNode, attr string, min, max, fallback float32) float32 {
	return style.PixelsOf(sn.Value(attr), min, max, s.props.viewport, fallback)
}

// Running returns the number of running transitions. As long as it is
// positive, the host should schedule another frame.
func (s *Styler) Running() int {
	return s.table.Running()
}

// Restyle runs a styling pass over the tree below and including root,
// advancing transitions by dt seconds. Every node visited gets its computed
// and displayed values replaced; state for nodes not visited is dropped.
//
// Errors are returned for tree nodes which cannot be styled; styling
// continues for the rest of the tree.
func (s *Styler) Restyle(root *tree.Node[*StyNode], dt float32) error {
	sheet := s.store.Snapshot()
	schema := s.props.schema
	s.passes++
	s.table.BeginFrame()
	var uichain w3cdom.Chain
	err := tree.TopDown(root, func(n *tree.Node[*StyNode], chain []*tree.Node[*StyNode]) error {
		sn := Node(n)
		if sn == nil || sn.uiNode == nil {
			return fmt.Errorf("%w: %v", ErrNotStyleable, n)
		}
		uichain = uichain[:0]
		for _, a := range chain {
			uichain = append(uichain, Node(a).uiNode)
		}
		var parent cascade.Resolved
		if len(chain) > 1 {
			parent = Node(chain[len(chain)-2]).computed
		}
		sn.computed = cascade.ResolveChild(uichain, parent, sheet, schema)
		displayed := make(map[string]css.Value, len(sn.computed))
		id := sn.uiNode.ID()
		for name, c := range sn.computed {
			displayed[name] = s.table.Advance(id, name, c.Value, c.Transition, dt)
		}
		sn.displayed = displayed
		return nil
	})
	swept := s.table.Sweep()
	tracer().Debugf("styling pass #%d: %d running transitions, %d swept",
		s.passes, s.table.Running(), swept)
	return err
}
