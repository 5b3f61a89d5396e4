package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uistyle/css"
)

// tracer will return a tracer. We are tracing to 'uistyle.dom'
func tracer() tracing.Trace {
	return tracing.Select("uistyle.dom")
}

// ErrUnknownAttribute is the error class for attribute names without a
// schema entry.
var ErrUnknownAttribute = errors.New("unknown attribute")

// UnknownAttributeError flags an attribute of a style rule which has no
// schema entry. The declaration is ignored; this is never fatal.
type UnknownAttributeError struct {
	Name string // attribute name
	Rule int    // index of the rule in its style sheet
}

func (e UnknownAttributeError) Error() string {
	return fmt.Sprintf("rule #%d: %s %q", e.Rule, ErrUnknownAttribute, e.Name)
}

func (e UnknownAttributeError) Unwrap() error {
	return ErrUnknownAttribute
}

// --- Schema ----------------------------------------------------------------

// Entry describes a recognized attribute.
type Entry struct {
	Name      string    // attribute name, e.g. "background-color"
	Group     string    // organizational group, e.g. PGColor
	Default   css.Value // value if no rule sets the attribute; never Inherit
	Inherited bool      // does the attribute inherit from the parent by default?
}

// Schema is the set of attributes the host recognizes, together with their
// default values and inheritance behaviour. A schema is immutable once
// created and may be shared between goroutines.
type Schema struct {
	entries    map[string]Entry
	shorthands map[string][]string
	names      []string
}

// NewSchema creates a schema from a list of entries. For duplicate names,
// the last entry wins. Entries with a default value of nil or Inherit get a
// default of Enum("none") and are flagged in the trace.
func NewSchema(entries ...Entry) *Schema {
	s := &Schema{
		entries:    make(map[string]Entry, len(entries)),
		shorthands: make(map[string][]string),
	}
	s.add(entries)
	return s
}

func (s *Schema) add(entries []Entry) {
	for _, e := range entries {
		if e.Default == nil || css.IsInherit(e.Default) {
			tracer().Infof("schema: attribute %q has no concrete default, using none", e.Name)
			e.Default = css.Enum("none")
		}
		if e.Group == "" {
			e.Group = GroupNameFromAttribute(e.Name)
		}
		s.entries[e.Name] = e
	}
	s.names = make([]string, 0, len(s.entries))
	for name := range s.entries {
		s.names = append(s.names, name)
	}
	sort.Strings(s.names)
}

// With returns a new schema extending s by entries. s is left unchanged.
func (s *Schema) With(entries ...Entry) *Schema {
	n := s.clone()
	n.add(entries)
	return n
}

func (s *Schema) clone() *Schema {
	n := &Schema{
		entries:    make(map[string]Entry, s.Len()),
		shorthands: make(map[string][]string),
	}
	if s != nil {
		for k, v := range s.entries {
			n.entries[k] = v
		}
		for k, v := range s.shorthands {
			n.shorthands[k] = v
		}
		n.names = s.names
	}
	return n
}

// WithShorthand returns a new schema extending s by a shorthand attribute.
// A declaration of a shorthand sets every one of its longhand attributes to
// the declared value, e.g.
//
//	padding: 4px
//
// sets padding-top, padding-right, padding-bottom and padding-left.
// Longhands must be entries of the schema.
func (s *Schema) WithShorthand(name string, longhands ...string) *Schema {
	n := s.clone()
	for _, l := range longhands {
		if _, ok := n.entries[l]; !ok {
			tracer().Errorf("schema: shorthand %q refers to unknown attribute %q", name, l)
			return s
		}
	}
	n.shorthands[name] = longhands
	return n
}

// Expand returns the longhand attributes for a shorthand, or a slice
// containing just name for any other attribute.
func (s *Schema) Expand(name string) []string {
	if s != nil {
		if l, ok := s.shorthands[name]; ok {
			return l
		}
	}
	return []string{name}
}

// Len returns the number of attributes in the schema.
func (s *Schema) Len() int {
	if s == nil {
		return 0
	}
	return len(s.entries)
}

// Lookup returns the schema entry for an attribute name.
func (s *Schema) Lookup(name string) (Entry, bool) {
	if s == nil {
		return Entry{}, false
	}
	e, ok := s.entries[name]
	return e, ok
}

// Knows is a predicate wether an attribute has a schema entry or is a
// shorthand.
func (s *Schema) Knows(name string) bool {
	if s == nil {
		return false
	}
	if _, ok := s.Lookup(name); ok {
		return true
	}
	_, ok := s.shorthands[name]
	return ok
}

// Default returns the default value for an attribute, or nil for unknown
// attributes.
func (s *Schema) Default(name string) css.Value {
	if e, ok := s.Lookup(name); ok {
		return e.Default
	}
	return nil
}

// IsInherited returns wether the standard behaviour for an attribute is to
// be inherited from the parent node if no rule sets it.
func (s *Schema) IsInherited(name string) bool {
	e, ok := s.Lookup(name)
	return ok && e.Inherited
}

// Names returns all attribute names of the schema in sorted order.
func (s *Schema) Names() []string {
	if s == nil {
		return nil
	}
	return s.names
}

func (s *Schema) String() string {
	var b strings.Builder
	b.WriteString("Schema = {\n")
	for _, name := range s.Names() {
		e := s.entries[name]
		inh := ""
		if e.Inherited {
			inh = " (inherited)"
		}
		fmt.Fprintf(&b, "  [%s] %s = %s%s\n", e.Group, name, e.Default, inh)
	}
	b.WriteString("}")
	return b.String()
}
