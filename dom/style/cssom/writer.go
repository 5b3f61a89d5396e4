package cssom

import (
	"io"
	"strings"
)

// WriteTo writes the canonical text form of a style sheet to w. Parsing
// the output results in a structurally identical style sheet.
func (s *StyleSheet) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, s.String())
	return int64(n), err
}

func (s *StyleSheet) String() string {
	var b strings.Builder
	for i := 0; i < s.Len(); i++ {
		if i > 0 {
			b.WriteByte('\n')
		}
		s.rules[i].write(&b)
	}
	return b.String()
}

func (r StyleRule) String() string {
	var b strings.Builder
	r.write(&b)
	return b.String()
}

func (r StyleRule) write(b *strings.Builder) {
	b.WriteString(r.Selectors.String())
	b.WriteString(" {\n")
	for _, a := range r.Attributes {
		b.WriteString("    ")
		b.WriteString(a.String())
		b.WriteByte('\n')
	}
	b.WriteString("}\n")
}

func (sels Selectors) String() string {
	s := make([]string, len(sels))
	for i, sel := range sels {
		s[i] = sel.String()
	}
	return strings.Join(s, ", ")
}

func (sel Selector) String() string {
	var b strings.Builder
	for _, seg := range sel.Segments {
		b.WriteString(seg.Element.String())
		b.WriteString(seg.Combinator.String())
	}
	b.WriteString(sel.Target.String())
	return b.String()
}

func (c Combinator) String() string {
	if c == Child {
		return " > "
	}
	return " "
}

func (e ElementSelector) String() string {
	var b strings.Builder
	b.WriteString(e.Element)
	for _, c := range e.Classes {
		b.WriteByte('.')
		b.WriteString(c)
	}
	if e.Tag != "" {
		b.WriteByte(':')
		b.WriteString(e.Tag)
	}
	return b.String()
}

// String returns the declaration form of an attribute, e.g.
// "width: 10px 0.3s;".
func (a Attribute) String() string {
	var b strings.Builder
	b.WriteString(a.Name)
	b.WriteString(": ")
	if a.Value != nil {
		b.WriteString(a.Value.String())
	}
	var t Transition
	switch m := a.Timing().Match(); m {
	case m.Just(&t):
		b.WriteByte(' ')
		b.WriteString(t.String())
	}
	b.WriteByte(';')
	return b.String()
}
