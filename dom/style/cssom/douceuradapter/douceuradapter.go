/*
Package douceuradapter loads style sheets written in plain CSS.

Package cssom parses a strict subset of CSS and rejects a style sheet as a
whole on the first syntax error. Style sheets taken from elsewhere (e.g.,
embedded in HTML documents) often contain constructs outside of this subset:
at-rules, attribute selectors, shorthand values. This adapter tokenizes such
a style sheet with douceur, converts every selector and declaration it can,
and skips the rest. Skipped parts are reported as a combined error.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package douceuradapter

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uistyle/dom/style/cssom"
	"go.uber.org/multierr"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'uistyle.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("uistyle.cssom")
}

// Load parses CSS text leniently. It returns a style sheet containing
// every convertible rule, and an error combining the reasons for skipped
// parts (see multierr.Errors). The style sheet is nil only if douceur
// itself fails to tokenize the text.
func Load(text string) (*cssom.StyleSheet, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		tracer().Errorf("douceur: %v", err)
		return nil, err
	}
	return Convert(sheet)
}

// Convert converts a douceur style sheet. See Load.
func Convert(sheet *css.Stylesheet) (*cssom.StyleSheet, error) {
	var errs error
	rules := make([]cssom.StyleRule, 0, len(sheet.Rules))
	for i, r := range sheet.Rules {
		rule, err := convertRule(r)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("rule #%d: %w", i, err))
		}
		if len(rule.Selectors) > 0 && len(rule.Attributes) > 0 {
			rules = append(rules, rule)
		}
	}
	tracer().Debugf("douceur: converted %d of %d rules", len(rules), len(sheet.Rules))
	return cssom.NewStyleSheet(rules...), errs
}

func convertRule(r *css.Rule) (cssom.StyleRule, error) {
	var rule cssom.StyleRule
	if r.Kind != css.QualifiedRule {
		return rule, fmt.Errorf("skipping at-rule %s", r.Name)
	}
	var errs error
	for _, s := range r.Selectors {
		sel, err := cssom.ParseSelectors(s)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("skipping selector %q: %w", s, err))
			continue
		}
		rule.Selectors = append(rule.Selectors, sel...)
	}
	if len(rule.Selectors) == 0 {
		return rule, multierr.Append(errs, fmt.Errorf("no usable selector in %q", r.Prelude))
	}
	for _, d := range r.Declarations {
		a, err := cssom.ParseAttribute(d.Property, d.Value)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("skipping %s: %w", d.Property, err))
			continue
		}
		if d.Important {
			tracer().Debugf("douceur: ignoring !important for %s", d.Property)
		}
		rule.Attributes = append(rule.Attributes, a)
	}
	return rule, errs
}

// LoadHTML visits <head> and <body> elements in an HTML parse tree and
// searches for embedded <style>s. It returns the content of all
// style-elements as a single style sheet, in document order.
func LoadHTML(htmldoc *html.Node) (*cssom.StyleSheet, error) {
	var b strings.Builder
	for _, a := range []atom.Atom{atom.Head, atom.Body} {
		for _, text := range extractStyles(findElement(a, htmldoc)) {
			b.WriteString(text)
			b.WriteByte('\n')
		}
	}
	return Load(b.String())
}

func extractStyles(h *html.Node) []string {
	if h == nil {
		return nil
	}
	var styles []string
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom == atom.Style && ch.FirstChild != nil {
			styles = append(styles, ch.FirstChild.Data)
		}
	}
	return styles
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
