package dom

import (
	"strings"
	"sync"
	"sync/atomic"

	"github.com/npillmayer/uistyle/dom/w3cdom"
)

// TextNodeName is the node name of text nodes.
const TextNodeName = "#text"

var lastID atomic.Uint64

// NextID returns a new, process-wide unique node identity.
func NextID() w3cdom.NodeID {
	return w3cdom.NodeID(lastID.Add(1))
}

// Element is a general purpose UI node. Classes and pseudo-tags may be
// changed between styling passes, e.g. from event handlers; Element is
// safe for concurrent use.
type Element struct {
	id   w3cdom.NodeID
	name string
	text string
	mx   sync.RWMutex
	cls  set
	tags set
}

// NewElement creates an element with a new identity.
func NewElement(name string, classes ...string) *Element {
	e := &Element{id: NextID(), name: name}
	for _, c := range classes {
		e.cls.add(c)
	}
	return e
}

// NewText creates a text node.
func NewText(text string) *Element {
	e := NewElement(TextNodeName)
	e.text = text
	return e
}

// ID is part of interface w3cdom.Node.
func (e *Element) ID() w3cdom.NodeID {
	return e.id
}

// NodeName is part of interface w3cdom.Node.
func (e *Element) NodeName() string {
	return e.name
}

// Text returns the text of a text node, and "" for other elements.
func (e *Element) Text() string {
	return e.text
}

// HasClass is part of interface w3cdom.Node.
func (e *Element) HasClass(c string) bool {
	e.mx.RLock()
	defer e.mx.RUnlock()
	return e.cls.has(c)
}

// HasTag is part of interface w3cdom.Node.
func (e *Element) HasTag(t string) bool {
	e.mx.RLock()
	defer e.mx.RUnlock()
	return e.tags.has(t)
}

// Classes is part of interface w3cdom.Node.
func (e *Element) Classes() []string {
	e.mx.RLock()
	defer e.mx.RUnlock()
	return e.cls.list()
}

// Tags is part of interface w3cdom.Node.
func (e *Element) Tags() []string {
	e.mx.RLock()
	defer e.mx.RUnlock()
	return e.tags.list()
}

// SetClass sets or clears a class.
func (e *Element) SetClass(c string, on bool) *Element {
	e.mx.Lock()
	defer e.mx.Unlock()
	e.cls.set(c, on)
	return e
}

// SetTag sets or clears a pseudo-tag, e.g. "hover".
func (e *Element) SetTag(t string, on bool) *Element {
	e.mx.Lock()
	defer e.mx.Unlock()
	e.tags.set(t, on)
	return e
}

func (e *Element) String() string {
	var b strings.Builder
	b.WriteString(e.name)
	for _, c := range e.Classes() {
		b.WriteByte('.')
		b.WriteString(c)
	}
	for _, t := range e.Tags() {
		b.WriteByte(':')
		b.WriteString(t)
	}
	return b.String()
}

var _ w3cdom.Node = &Element{}

// set is a small set of strings, keeping insertion order.
type set []string

func (s set) has(x string) bool {
	for _, y := range s {
		if x == y {
			return true
		}
	}
	return false
}

func (s *set) add(x string) {
	if x != "" && !s.has(x) {
		*s = append(*s, x)
	}
}

func (s *set) set(x string, on bool) {
	if on {
		s.add(x)
		return
	}
	for i, y := range *s {
		if x == y {
			*s = append((*s)[:i], (*s)[i+1:]...)
			return
		}
	}
}

func (s set) list() []string {
	l := make([]string, len(s))
	copy(l, s)
	return l
}
