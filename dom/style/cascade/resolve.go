package cascade

import (
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/uistyle/css"
	"github.com/npillmayer/uistyle/dom/style"
	"github.com/npillmayer/uistyle/dom/style/cssom"
	"github.com/npillmayer/uistyle/dom/w3cdom"
	"github.com/npillmayer/uistyle/maybe"
)

// Computed is the resolved value of an attribute, together with the
// transition declared for it (if any). Value is never Inherit.
//
// Defaulted is set if Value is the schema default because no rule of the
// node provided one, neither directly nor by inheritance.
type Computed struct {
	Value      css.Value
	Transition maybe.Maybe[cssom.Transition]
	Defaulted  bool
	declared   *Computed // for defaulted values: nearest value declared above
}

// Resolved maps attribute names to their resolved values for a node. It
// holds an entry for every attribute of the schema it was resolved with.
type Resolved map[string]Computed

// Value returns the resolved value of an attribute, or nil if the attribute
// is unknown.
func (r Resolved) Value(name string) css.Value {
	if c, ok := r[name]; ok {
		return c.Value
	}
	return nil
}

// Names returns the attribute names in sorted order.
func (r Resolved) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Equal compares two resolved styles, including transitions.
func (r Resolved) Equal(other Resolved) bool {
	if len(r) != len(other) {
		return false
	}
	for name, c := range r {
		o, ok := other[name]
		if !ok || !css.Equal(c.Value, o.Value) {
			return false
		}
		t1, ok1 := timing(c).Get()
		t2, ok2 := timing(o).Get()
		if ok1 != ok2 || t1 != t2 {
			return false
		}
	}
	return true
}

func (r Resolved) String() string {
	var b strings.Builder
	b.WriteString("{\n")
	for _, name := range r.Names() {
		c := r[name]
		fmt.Fprintf(&b, "  %s: %v", name, c.Value)
		if t, ok := timing(c).Get(); ok {
			fmt.Fprintf(&b, " %v", t)
		}
		b.WriteString("\n")
	}
	b.WriteString("}")
	return b.String()
}

func timing(c Computed) maybe.Maybe[cssom.Transition] {
	return maybe.Or(c.Transition, maybe.Nothing[cssom.Transition]())
}

// Resolve resolves the style of the last node of an ancestor chain. It
// resolves every ancestor on the way, from the root downwards. Clients
// walking a tree top-down should call ResolveChild instead, passing the
// parent's result.
func Resolve(chain w3cdom.Chain, sheet *cssom.StyleSheet, schema *style.Schema) Resolved {
	var resolved Resolved
	for i := 1; i <= len(chain); i++ {
		resolved = ResolveChild(chain[:i], resolved, sheet, schema)
	}
	if resolved == nil {
		resolved = Resolved{}
	}
	return resolved
}

type ruleMatch struct {
	spec  Specificity
	index int // index of the rule in the style sheet
}

// ResolveChild resolves the style of the last node of an ancestor chain,
// given the resolved style of its parent. For the root node, parent is nil.
//
// Unknown attributes are ignored. Nothing in here may fail: inconsistencies
// degrade to schema defaults.
func ResolveChild(chain w3cdom.Chain, parent Resolved, sheet *cssom.StyleSheet,
	schema *style.Schema) Resolved {
	//
	var matches []ruleMatch
	for i := 0; i < sheet.Len(); i++ {
		if s, ok := MatchAny(sheet.Rule(i).Selectors, chain).Get(); ok {
			matches = append(matches, ruleMatch{spec: s, index: i})
		}
	}
	sort.Slice(matches, func(i, j int) bool {
		if c := matches[i].spec.Compare(matches[j].spec); c != 0 {
			return c > 0
		}
		return matches[i].index > matches[j].index
	})
	resolved := make(Resolved, schema.Len())
	for _, m := range matches {
		attrs := sheet.Rule(m.index).Attributes
		for j := len(attrs) - 1; j >= 0; j-- { // later declarations win
			a := attrs[j]
			for _, name := range schema.Expand(a.Name) {
				if _, done := resolved[name]; done {
					continue
				}
				if _, ok := schema.Lookup(name); !ok {
					tracer().Debugf("%v", style.UnknownAttributeError{Name: name, Rule: m.index})
					continue
				}
				if css.IsInherit(a.Value) {
					resolved[name] = inherit(name, parent, schema)
					continue
				}
				resolved[name] = Computed{Value: a.Value, Transition: a.Timing()}
			}
		}
	}
	for _, name := range schema.Names() {
		if _, done := resolved[name]; done {
			continue
		}
		if schema.IsInherited(name) {
			resolved[name] = inherit(name, parent, schema)
		} else {
			resolved[name] = fallback(name, parent, schema)
		}
	}
	if node := chain.Node(); node != nil {
		tracer().Debugf("cascade: %d matching rules for node %s %s", len(matches), node.ID(), node.NodeName())
	}
	return resolved
}

// inherit takes a value from the parent. A child inherits the parent's
// transition as well, keeping both in step. If the parent holds just the
// schema default, the search continues with the nearest ancestor which
// declared a value. Without any, the schema default is used.
func inherit(name string, parent Resolved, schema *style.Schema) Computed {
	if c, ok := parent[name]; ok {
		if !c.Defaulted && c.Value != nil {
			return Computed{Value: c.Value, Transition: timing(c)}
		}
		if c.declared != nil {
			return Computed{Value: c.declared.Value, Transition: timing(*c.declared)}
		}
	}
	return Computed{Value: schema.Default(name), Transition: maybe.Nothing[cssom.Transition](), Defaulted: true}
}

// fallback sets a non-inherited attribute to its schema default, remembering
// the nearest value declared above for descendants saying "inherit".
func fallback(name string, parent Resolved, schema *style.Schema) Computed {
	c := Computed{Value: schema.Default(name), Transition: maybe.Nothing[cssom.Transition](), Defaulted: true}
	if p, ok := parent[name]; ok {
		if p.Defaulted {
			c.declared = p.declared
		} else {
			d := Computed{Value: p.Value, Transition: p.Transition}
			c.declared = &d
		}
	}
	return c
}
