package cssom

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/npillmayer/uistyle/css"
	"github.com/npillmayer/uistyle/maybe"
	"github.com/tdewolff/parse/v2"
	csslex "github.com/tdewolff/parse/v2/css"
)

// ErrSyntax is the error class of all parse errors.
var ErrSyntax = errors.New("syntax error")

// ParseError describes malformed style sheet text. Offset is a byte offset
// into the text, Line and Column are 1-based, Column counting bytes.
type ParseError struct {
	Offset   int
	Line     int
	Column   int
	Expected string // human readable description of what the parser expected
	Found    string // what the parser found instead
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s at %d:%d: expected %s, found %s",
		ErrSyntax, e.Line, e.Column, e.Expected, e.Found)
}

func (e *ParseError) Unwrap() error {
	return ErrSyntax
}

// Parse parses style sheet text. It either returns a complete style sheet
// or a *ParseError; there is no partial result.
func Parse(text string) (*StyleSheet, error) {
	p, err := newParser(text)
	if err != nil {
		return nil, err
	}
	var rules []StyleRule
	p.skipWS()
	for !p.atEOF() {
		r, err := p.rule()
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
		p.skipWS()
	}
	tracer().Debugf("cssom: parsed %d rules", len(rules))
	return &StyleSheet{rules: rules}, nil
}

// ParseSelectors parses a comma-separated list of selectors, e.g.
// "div > .a, text:hover".
func ParseSelectors(text string) (Selectors, error) {
	p, err := newParser(text)
	if err != nil {
		return nil, err
	}
	p.skipWS()
	sels, err := p.selectors()
	if err != nil {
		return nil, err
	}
	p.skipWS()
	if !p.atEOF() {
		return nil, p.fail(p.peek(), "',' or end of input")
	}
	return sels, nil
}

// ParseValue parses a single attribute value, e.g. "#fff" or "10px".
func ParseValue(text string) (css.Value, error) {
	p, err := newParser(text)
	if err != nil {
		return nil, err
	}
	p.skipWS()
	v, err := p.value()
	if err != nil {
		return nil, err
	}
	p.skipWS()
	if !p.atEOF() {
		return nil, p.fail(p.peek(), "end of input")
	}
	return v, nil
}

// ParseAttribute parses the text of a declaration for attribute name, i.e.
// a value with an optional transition, e.g. "10px 0.3s ease".
func ParseAttribute(name, text string) (Attribute, error) {
	if !isIdentifier(name) {
		return Attribute{}, &ParseError{Line: 1, Column: 1, Expected: "attribute name", Found: strconv.Quote(name)}
	}
	p, err := newParser(text)
	if err != nil {
		return Attribute{}, err
	}
	p.skipWS()
	a, err := p.declaration(name)
	if err != nil {
		return a, err
	}
	if !p.atEOF() {
		return a, p.fail(p.peek(), "end of input")
	}
	return a, nil
}

// --- Tokens ----------------------------------------------------------------

type token struct {
	tt   csslex.TokenType
	data string
	pos  int // byte offset
}

func (t token) is(tt csslex.TokenType) bool {
	return t.tt == tt
}

func (t token) isDelim(d string) bool {
	return t.tt == csslex.DelimToken && t.data == d
}

type parser struct {
	text   string
	tokens []token
	i      int
}

// newParser tokenizes text. Comments are converted to whitespace and runs of
// whitespace are merged, as both are insignificant except for detecting
// descendant combinators.
func newParser(text string) (*parser, error) {
	p := &parser{text: text}
	for pos := 0; pos < len(text); {
		next, err := p.lex(pos)
		if err != nil {
			return nil, err
		}
		pos = next
	}
	return p, nil
}

// lex tokenizes text from offset pos up to the end of input or up to and
// including the next string, and returns the offset to continue at.
// Strings are not left to the CSS lexer: a string extends to the next
// double quote, spanning line breaks and without escape sequences. After a
// string the lexer is restarted.
func (p *parser) lex(pos int) (int, error) {
	l := csslex.NewLexer(parse.NewInputString(p.text[pos:]))
	for {
		tt, data := l.Next()
		if tt == csslex.ErrorToken {
			if err := l.Err(); err != nil && err != io.EOF {
				return 0, p.errorAt(pos, "valid input", err.Error())
			}
			return len(p.text), nil
		}
		s := string(data)
		switch tt {
		case csslex.CommentToken:
			if len(s) < 4 || !strings.HasSuffix(s, "*/") {
				return 0, p.errorAt(pos, "end of comment '*/'", "end of input")
			}
			tt = csslex.WhitespaceToken
		case csslex.StringToken, csslex.BadStringToken:
			if s[0] != '"' {
				return 0, p.errorAt(pos, "double-quoted string", "single-quoted string")
			}
			n := strings.IndexByte(p.text[pos+1:], '"')
			if n < 0 {
				return 0, p.errorAt(len(p.text), "closing '\"'", "end of input")
			}
			end := pos + n + 2
			p.push(token{tt: csslex.StringToken, data: p.text[pos:end], pos: pos})
			return end, nil
		}
		p.push(token{tt: tt, data: s, pos: pos})
		pos += len(data)
	}
}

// push appends a token, merging consecutive whitespace.
func (p *parser) push(t token) {
	if t.is(csslex.WhitespaceToken) && len(p.tokens) > 0 && p.tokens[len(p.tokens)-1].is(t.tt) {
		return
	}
	p.tokens = append(p.tokens, t)
}

func (p *parser) atEOF() bool {
	return p.i >= len(p.tokens)
}

func (p *parser) peek() token {
	if p.atEOF() {
		return token{tt: csslex.ErrorToken, pos: len(p.text)}
	}
	return p.tokens[p.i]
}

func (p *parser) next() token {
	t := p.peek()
	if !p.atEOF() {
		p.i++
	}
	return t
}

// skipWS skips whitespace and reports if there was any.
func (p *parser) skipWS() bool {
	if p.peek().is(csslex.WhitespaceToken) {
		p.i++
		return true
	}
	return false
}

func (p *parser) expect(tt csslex.TokenType, expected string) (token, error) {
	t := p.next()
	if !t.is(tt) {
		return t, p.fail(t, expected)
	}
	return t, nil
}

func (p *parser) fail(t token, expected string) error {
	found := "end of input"
	if t.tt != csslex.ErrorToken {
		found = strconv.Quote(t.data)
	}
	return p.errorAt(t.pos, expected, found)
}

func (p *parser) errorAt(offset int, expected, found string) error {
	if offset > len(p.text) {
		offset = len(p.text)
	}
	line := strings.Count(p.text[:offset], "\n") + 1
	col := offset - strings.LastIndexByte(p.text[:offset], '\n')
	err := &ParseError{
		Offset:   offset,
		Line:     line,
		Column:   col,
		Expected: expected,
		Found:    found,
	}
	tracer().Debugf("cssom: %v", err)
	return err
}

// --- Rules and selectors ---------------------------------------------------

func (p *parser) rule() (StyleRule, error) {
	var r StyleRule
	sels, err := p.selectors()
	if err != nil {
		return r, err
	}
	r.Selectors = sels
	p.skipWS()
	if _, err = p.expect(csslex.LeftBraceToken, "'{'"); err != nil {
		return r, err
	}
	for {
		p.skipWS()
		t := p.peek()
		if t.is(csslex.RightBraceToken) {
			p.next()
			return r, nil
		}
		if t.is(csslex.ErrorToken) {
			return r, p.fail(t, "'}'")
		}
		a, err := p.attribute()
		if err != nil {
			return r, err
		}
		r.Attributes = append(r.Attributes, a)
	}
}

func (p *parser) selectors() (Selectors, error) {
	var sels Selectors
	for {
		sel, err := p.selector()
		if err != nil {
			return nil, err
		}
		sels = append(sels, sel)
		p.skipWS()
		if !p.peek().is(csslex.CommaToken) {
			return sels, nil
		}
		p.next()
		p.skipWS()
	}
}

func (p *parser) selector() (Selector, error) {
	var sel Selector
	cur, err := p.element()
	if err != nil {
		return sel, err
	}
	for {
		mark := p.i
		ws := p.skipWS()
		t := p.peek()
		var comb Combinator
		switch {
		case t.isDelim(">"):
			p.next()
			p.skipWS()
			comb = Child
		case ws && startsElement(t):
			comb = Descendant
		default:
			p.i = mark
			sel.Target = cur
			return sel, nil
		}
		next, err := p.element()
		if err != nil {
			return sel, err
		}
		sel.Segments = append(sel.Segments, Segment{Element: cur, Combinator: comb})
		cur = next
	}
}

func startsElement(t token) bool {
	return t.is(csslex.IdentToken) || t.is(csslex.ColonToken) ||
		t.isDelim(Wildcard) || t.isDelim(".")
}

func (p *parser) element() (ElementSelector, error) {
	var e ElementSelector
	start := p.peek()
	switch {
	case start.is(csslex.IdentToken):
		if !isIdentifier(start.data) {
			return e, p.fail(start, "element name")
		}
		e.Element = start.data
		p.next()
	case start.isDelim(Wildcard):
		e.Element = Wildcard
		p.next()
	}
	for {
		t := p.peek()
		switch {
		case t.isDelim("."):
			p.next()
			class, err := p.identifier("class name")
			if err != nil {
				return e, err
			}
			if !e.HasClass(class) {
				e.Classes = append(e.Classes, class)
			}
		case t.is(csslex.ColonToken):
			if e.Tag != "" {
				return e, p.fail(t, "'{', ',' or combinator")
			}
			p.next()
			tag, err := p.identifier("tag name")
			if err != nil {
				return e, err
			}
			e.Tag = tag
		default:
			if e.IsEmpty() {
				return e, p.fail(t, "element, class or tag selector")
			}
			return e, nil
		}
	}
}

func (p *parser) identifier(expected string) (string, error) {
	t := p.next()
	if (t.is(csslex.IdentToken) || t.is(csslex.CustomPropertyNameToken)) && isIdentifier(t.data) {
		return t.data, nil
	}
	return "", p.fail(t, expected)
}

// isIdentifier checks for [A-Za-z_-][A-Za-z0-9_-]*.
func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', c == '_', c == '-':
		case '0' <= c && c <= '9' && i > 0:
		default:
			return false
		}
	}
	return true
}

// --- Attributes and values -------------------------------------------------

func (p *parser) attribute() (Attribute, error) {
	var a Attribute
	name, err := p.identifier("attribute name")
	if err != nil {
		return a, err
	}
	p.skipWS()
	if _, err = p.expect(csslex.ColonToken, "':'"); err != nil {
		return a, err
	}
	p.skipWS()
	if a, err = p.declaration(name); err != nil {
		return a, err
	}
	_, err = p.expect(csslex.SemicolonToken, "';'")
	return a, err
}

// declaration parses a value with an optional transition.
func (p *parser) declaration(name string) (Attribute, error) {
	v, err := p.value()
	if err != nil {
		return Attribute{}, err
	}
	a := NewAttribute(name, v)
	p.skipWS()
	if transitionable(v) && p.peek().is(csslex.DimensionToken) {
		tr, err := p.transition()
		if err != nil {
			return a, err
		}
		a.Transition = maybe.Just(tr)
		p.skipWS()
	}
	return a, nil
}

// Only lengths and colors may carry a transition.
func transitionable(v css.Value) bool {
	switch v.(type) {
	case css.Length, css.Color:
		return true
	}
	return false
}

func (p *parser) transition() (Transition, error) {
	var tr Transition
	t := p.next()
	num, unit := splitDimension(t.data)
	d, err := strconv.ParseFloat(num, 32)
	if err != nil || d < 0 {
		return tr, p.fail(t, "non-negative transition duration")
	}
	switch strings.ToLower(unit) {
	case "s":
	case "ms":
		d /= 1000
	default:
		return tr, p.fail(t, "transition duration in s or ms")
	}
	tr.Duration = float32(d)
	p.skipWS()
	if e := p.peek(); e.is(csslex.IdentToken) {
		easing, ok := css.EasingFromString(e.data)
		if !ok {
			return tr, p.fail(e, "easing 'linear' or 'ease'")
		}
		p.next()
		tr.Easing = easing
	}
	return tr, nil
}

func (p *parser) value() (css.Value, error) {
	t := p.peek()
	switch t.tt {
	case csslex.IdentToken:
		if !isIdentifier(t.data) {
			return nil, p.fail(t, "keyword")
		}
		p.next()
		if strings.EqualFold(t.data, "inherit") {
			return css.Inherit, nil
		}
		return css.Enum(t.data), nil
	case csslex.StringToken:
		p.next()
		return css.String(t.data[1 : len(t.data)-1]), nil
	case csslex.HashToken:
		p.next()
		c, err := css.ParseHexColor(t.data)
		if err != nil {
			return nil, p.fail(t, "hex color with 3, 4, 6 or 8 digits")
		}
		return c, nil
	case csslex.NumberToken, csslex.PercentageToken, csslex.DimensionToken:
		p.next()
		return p.length(t)
	case csslex.FunctionToken:
		return p.colorFunction()
	}
	return nil, p.fail(t, "attribute value")
}

func (p *parser) length(t token) (css.Value, error) {
	var num string
	unit := css.UnitNone
	switch t.tt {
	case csslex.NumberToken:
		num = t.data
	case csslex.PercentageToken:
		num, unit = t.data[:len(t.data)-1], css.Pc
	default:
		var suffix string
		num, suffix = splitDimension(t.data)
		u, ok := css.UnitFromString(suffix)
		if !ok || u == css.UnitNone || u == css.Pc {
			return nil, p.fail(t, "length with unit px, pt, vw, vh or em")
		}
		unit = u
	}
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return nil, p.fail(t, "number")
	}
	return css.Length{Number: n, Unit: unit}, nil
}

// splitDimension splits a dimension token into number and unit. Numbers
// have a single optional sign, also in the exponent.
func splitDimension(s string) (string, string) {
	isDigit := func(i int) bool {
		return i < len(s) && '0' <= s[i] && s[i] <= '9'
	}
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for isDigit(i) || (i < len(s) && s[i] == '.') {
		i++
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if isDigit(j) {
			for isDigit(j) {
				j++
			}
			i = j
		}
	}
	return s[:i], s[i:]
}

// colorFunction parses rgb(r, g, b) and rgba(r, g, b, a), with channels
// r, g, b in [0…255] and alpha in [0…1] or as a percentage.
func (p *parser) colorFunction() (css.Value, error) {
	f := p.next()
	name := strings.ToLower(strings.TrimSuffix(f.data, "("))
	var arity int
	switch name {
	case "rgb":
		arity = 3
	case "rgba":
		arity = 4
	default:
		return nil, p.fail(f, "rgb() or rgba()")
	}
	var args []float64
	for {
		p.skipWS()
		a := p.next()
		alpha := len(args) == 3
		if !a.is(csslex.NumberToken) && !(alpha && a.is(csslex.PercentageToken)) {
			return nil, p.fail(a, "number")
		}
		bits := 64
		if alpha && a.is(csslex.NumberToken) {
			bits = 32
		}
		n, err := strconv.ParseFloat(strings.TrimSuffix(a.data, "%"), bits)
		if err != nil {
			return nil, p.fail(a, "number")
		}
		switch {
		case alpha && a.is(csslex.PercentageToken):
			n /= 100
			fallthrough
		case alpha:
			if n < 0 || n > 1 {
				return nil, p.fail(a, "alpha value in [0…1]")
			}
		case n < 0 || n > 255:
			return nil, p.fail(a, "channel value in [0…255]")
		}
		args = append(args, n)
		p.skipWS()
		sep := p.next()
		if sep.is(csslex.RightParenthesisToken) {
			break
		}
		if !sep.is(csslex.CommaToken) {
			return nil, p.fail(sep, "',' or ')'")
		}
		if len(args) == arity {
			return nil, p.fail(sep, fmt.Sprintf("')' after %d arguments to %s()", arity, name))
		}
	}
	if len(args) != arity {
		return nil, p.errorAt(f.pos, fmt.Sprintf("%d arguments to %s()", arity, name),
			strconv.Itoa(len(args)))
	}
	c := css.Color{
		R: css.ChannelFromByteRange(args[0]),
		G: css.ChannelFromByteRange(args[1]),
		B: css.ChannelFromByteRange(args[2]),
		A: 1,
	}
	if arity == 4 {
		c.A = float32(args[3])
	}
	return c, nil
}
