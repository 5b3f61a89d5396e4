package cssom

import (
	"strconv"

	"github.com/npillmayer/uistyle/css"
	"github.com/npillmayer/uistyle/maybe"
)

// StyleSheet is an ordered sequence of style rules. A StyleSheet is
// immutable once constructed and safe for concurrent reads. The order of
// the rules is significant for breaking ties in the cascade.
//
// The zero value and nil are valid, empty style sheets.
type StyleSheet struct {
	rules []StyleRule
}

// NewStyleSheet creates a style sheet from a list of rules.
func NewStyleSheet(rules ...StyleRule) *StyleSheet {
	s := &StyleSheet{rules: make([]StyleRule, len(rules))}
	copy(s.rules, rules)
	return s
}

// Len returns the number of rules.
func (s *StyleSheet) Len() int {
	if s == nil {
		return 0
	}
	return len(s.rules)
}

// Empty checks if this stylesheet contains any rules.
func (s *StyleSheet) Empty() bool {
	return s.Len() == 0
}

// Rule returns rule number i, 0 ≤ i < Len().
// Slices of the rule are shared with the style sheet and must not be modified.
func (s *StyleSheet) Rule(i int) StyleRule {
	return s.rules[i]
}

// Rules returns a copy of the list of rules.
func (s *StyleSheet) Rules() []StyleRule {
	if s == nil {
		return nil
	}
	r := make([]StyleRule, len(s.rules))
	copy(r, s.rules)
	return r
}

// Append creates a new style sheet with the rules of other following the
// rules of s. Neither s nor other are changed.
func (s *StyleSheet) Append(other *StyleSheet) *StyleSheet {
	n := &StyleSheet{rules: make([]StyleRule, 0, s.Len()+other.Len())}
	if s != nil {
		n.rules = append(n.rules, s.rules...)
	}
	if other != nil {
		n.rules = append(n.rules, other.rules...)
	}
	return n
}

// StyleRule is a list of selectors together with an ordered list of
// attribute declarations. A rule applies to a node if any of its selectors
// matches.
type StyleRule struct {
	Selectors  Selectors
	Attributes []Attribute
}

// Selectors is a comma-separated alternation of selectors.
type Selectors []Selector

// Combinator joins two element selectors.
type Combinator uint8

// Combinators. Descendant is written as whitespace, Child as '>'.
const (
	Descendant Combinator = iota // match anywhere among the ancestors
	Child                        // match the immediate parent only
)

// Segment is an element selector followed by a combinator, i.e. one step
// of a selector chain left of its target.
type Segment struct {
	Element    ElementSelector
	Combinator Combinator
}

// Selector is a chain of element selectors, read left to right from the
// outermost ancestor to the target node:
//
//	div.panel > button text
//
// has segments (div.panel, Child) and (button, Descendant), and target text.
type Selector struct {
	Segments []Segment
	Target   ElementSelector
}

// Wildcard is the element name of the universal selector '*'.
const Wildcard = "*"

// ElementSelector selects nodes by element name, class and pseudo-tag.
// An empty Element means "any element", as does the Wildcard; they differ
// only in their textual form. Classes do not contain duplicates.
type ElementSelector struct {
	Element string   // element name, Wildcard, or empty
	Classes []string // all of these classes must be present
	Tag     string   // pseudo-tag without ':', or empty
}

// IsEmpty is true for an element selector which would select anything
// without even a wildcard. The grammar does not allow it.
func (e ElementSelector) IsEmpty() bool {
	return e.Element == "" && len(e.Classes) == 0 && e.Tag == ""
}

// HasClass is a predicate for classes of an element selector.
func (e ElementSelector) HasClass(class string) bool {
	for _, c := range e.Classes {
		if c == class {
			return true
		}
	}
	return false
}

// Transition is the timing of an animated change of an attribute value.
type Transition struct {
	Duration float32 // seconds
	Easing   css.Easing
}

func (t Transition) String() string {
	s := strconv.FormatFloat(float64(t.Duration), 'g', -1, 32) + "s"
	if t.Easing != css.Linear {
		s += " " + t.Easing.String()
	}
	return s
}

// Attribute is a single attribute declaration of a rule, e.g.
//
//	width: 10px 0.3s;
//
// Transition is Nothing if the declaration carries no transition.
type Attribute struct {
	Name       string
	Value      css.Value
	Transition maybe.Maybe[Transition]
}

// NewAttribute creates an attribute declaration without a transition.
func NewAttribute(name string, value css.Value) Attribute {
	return Attribute{Name: name, Value: value, Transition: maybe.Nothing[Transition]()}
}

// WithTransition returns a copy of a with a transition set.
func (a Attribute) WithTransition(t Transition) Attribute {
	a.Transition = maybe.Just(t)
	return a
}

// Timing returns the transition of a. It is never nil, even for attributes
// created as a struct literal without setting Transition.
func (a Attribute) Timing() maybe.Maybe[Transition] {
	if a.Transition == nil {
		return maybe.Nothing[Transition]()
	}
	return a.Transition
}
