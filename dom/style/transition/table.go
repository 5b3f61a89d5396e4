package transition

import (
	"github.com/npillmayer/uistyle/css"
	"github.com/npillmayer/uistyle/dom/style/cssom"
	"github.com/npillmayer/uistyle/dom/w3cdom"
	"github.com/npillmayer/uistyle/maybe"
)

// InconsistencyHandler is called for transitions which could not be
// animated and snapped to their target instead.
type InconsistencyHandler func(node w3cdom.NodeID, attr string, err error)

// State is the state of a running transition.
type State struct {
	From     css.Value
	To       css.Value
	Elapsed  float32 // seconds
	Duration float32 // seconds
	Easing   css.Easing
}

type key struct {
	node w3cdom.NodeID
	attr string
}

type entry struct {
	State
	displayed  css.Value
	active     bool
	generation uint64
}

func (e *entry) snap(v css.Value) css.Value {
	e.State = State{To: v}
	e.displayed = v
	e.active = false
	return v
}

// Table holds transition states per (node, attribute). Create with NewTable.
type Table struct {
	entries    map[key]*entry
	generation uint64
	props      props
}

type props struct {
	onInconsistency InconsistencyHandler
	easing          maybe.Maybe[css.Easing]
}

// NewTable creates an empty transition table.
func NewTable(opts ...Option) *Table {
	t := &Table{
		entries: make(map[key]*entry),
		props:   props{easing: maybe.Nothing[css.Easing]()},
	}
	for _, option := range opts {
		t.props = option.config(t.props)
	}
	return t
}

// Option is a type to help initializing tables at creation time.
type Option struct {
	config func(props) props
}

// WithInconsistencyHandler sets a handler to be called whenever a
// transition cannot be animated.
func WithInconsistencyHandler(h InconsistencyHandler) Option {
	return Option{config: func(p props) props {
		p.onInconsistency = h
		return p
	}}
}

// WithEasing overrides the easing curves declared for transitions. It may
// be used to make animations predictable, e.g. in tests.
func WithEasing(e css.Easing) Option {
	return Option{config: func(p props) props {
		p.easing = maybe.Just(e)
		return p
	}}
}

// Advance advances the transition for an attribute of a node by dt seconds
// and returns the value to display. target is the attribute's currently
// resolved value, tr its declared transition.
//
// The first value ever seen for a key is displayed immediately.
func (t *Table) Advance(node w3cdom.NodeID, attr string, target css.Value,
	tr maybe.Maybe[cssom.Transition], dt float32) css.Value {
	//
	k := key{node: node, attr: attr}
	e, ok := t.entries[k]
	if !ok {
		e = &entry{}
		e.snap(target)
		e.generation = t.generation
		t.entries[k] = e
		return target
	}
	e.generation = t.generation
	decl, animated := t.declared(tr)
	if !css.Equal(target, e.To) {
		if !animated {
			return e.snap(target)
		}
		if _, err := css.Lerp(e.displayed, target, 0); err != nil {
			t.report(k, err)
			return e.snap(target)
		}
		tracer().Debugf("transition %s.%s: %v → %v in %gs", node, attr, e.displayed, target, decl.Duration)
		e.State = State{
			From:     e.displayed,
			To:       target,
			Duration: decl.Duration,
			Easing:   decl.Easing,
		}
		e.active = true
	} else if e.active && !animated {
		// attribute stopped having a transition
		return e.snap(target)
	}
	if !e.active {
		return e.displayed
	}
	if dt > 0 {
		e.Elapsed += dt
	}
	if e.Elapsed >= e.Duration {
		return e.snap(e.To)
	}
	v, err := css.Lerp(e.From, e.To, e.Easing.Evaluate(e.Elapsed/e.Duration))
	if err != nil {
		t.report(k, err)
		return e.snap(e.To)
	}
	e.displayed = v
	return v
}

func (t *Table) declared(tr maybe.Maybe[cssom.Transition]) (cssom.Transition, bool) {
	if tr == nil {
		return cssom.Transition{}, false
	}
	decl, ok := tr.Get()
	if !ok || decl.Duration <= 0 {
		return decl, false
	}
	if e, ok := t.props.easing.Get(); ok {
		decl.Easing = e
	}
	return decl, true
}

func (t *Table) report(k key, err error) {
	tracer().Infof("transition %s.%s snaps: %v", k.node, k.attr, err)
	if t.props.onInconsistency != nil {
		t.props.onInconsistency(k.node, k.attr, err)
	}
}

// BeginFrame starts a new frame. Keys not advanced between BeginFrame and
// the following Sweep are considered to belong to nodes which no longer
// exist.
func (t *Table) BeginFrame() {
	t.generation++
}

// Sweep removes the state of every key not advanced since the last call to
// BeginFrame and returns the number of keys removed.
func (t *Table) Sweep() int {
	n := 0
	for k, e := range t.entries {
		if e.generation != t.generation {
			delete(t.entries, k)
			n++
		}
	}
	if n > 0 {
		tracer().Debugf("transition table: swept %d stale entries", n)
	}
	return n
}

// Forget removes all state for a node.
func (t *Table) Forget(node w3cdom.NodeID) {
	for k := range t.entries {
		if k.node == node {
			delete(t.entries, k)
		}
	}
}

// Active returns the state of the running transition for an attribute of a
// node, if any.
func (t *Table) Active(node w3cdom.NodeID, attr string) maybe.Maybe[State] {
	if e, ok := t.entries[key{node: node, attr: attr}]; ok && e.active {
		return maybe.Just(e.State)
	}
	return maybe.Nothing[State]()
}

// Len returns the number of keys the table holds state for, whether idle or
// active.
func (t *Table) Len() int {
	return len(t.entries)
}

// Running returns the number of active transitions. Hosts may use it to
// decide whether another frame has to be scheduled.
func (t *Table) Running() int {
	n := 0
	for _, e := range t.entries {
		if e.active {
			n++
		}
	}
	return n
}
