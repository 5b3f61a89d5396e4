package cssom

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uistyle/css"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSimpleRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.cssom")
	defer teardown()
	//
	sheet, err := Parse(`button.primary:hover { width: 10px; color: #fff; }`)
	require.NoError(t, err)
	require.Equal(t, 1, sheet.Len())
	r := sheet.Rule(0)
	require.Len(t, r.Selectors, 1)
	target := r.Selectors[0].Target
	assert.Equal(t, "button", target.Element)
	assert.Equal(t, []string{"primary"}, target.Classes)
	assert.Equal(t, "hover", target.Tag)
	require.Len(t, r.Attributes, 2)
	assert.Equal(t, "width", r.Attributes[0].Name)
	assert.True(t, css.Equal(css.PxLength(10), r.Attributes[0].Value))
	assert.True(t, css.Equal(css.White, r.Attributes[1].Value))
	assert.False(t, r.Attributes[0].Timing().IsJust())
}

func TestParseCombinators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.cssom")
	defer teardown()
	//
	sels, err := ParseSelectors("a > b, a b,div.panel>button   text")
	require.NoError(t, err)
	require.Len(t, sels, 3)
	assert.Equal(t, []Segment{{Element: ElementSelector{Element: "a"}, Combinator: Child}}, sels[0].Segments)
	assert.Equal(t, []Segment{{Element: ElementSelector{Element: "a"}, Combinator: Descendant}}, sels[1].Segments)
	require.Len(t, sels[2].Segments, 2)
	assert.Equal(t, Child, sels[2].Segments[0].Combinator)
	assert.Equal(t, Descendant, sels[2].Segments[1].Combinator)
	assert.Equal(t, "text", sels[2].Target.Element)
	assert.Equal(t, "a > b, a b, div.panel > button text", sels.String())
}

func TestParseElementSelectors(t *testing.T) {
	sels, err := ParseSelectors("*, .a.b.a, :focus, *.x:hover")
	require.NoError(t, err)
	require.Len(t, sels, 4)
	assert.Equal(t, ElementSelector{Element: Wildcard}, sels[0].Target)
	assert.Equal(t, ElementSelector{Classes: []string{"a", "b"}}, sels[1].Target)
	assert.Equal(t, ElementSelector{Tag: "focus"}, sels[2].Target)
	assert.Equal(t, ElementSelector{Element: Wildcard, Classes: []string{"x"}, Tag: "hover"}, sels[3].Target)
}

func TestParseValues(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.cssom")
	defer teardown()
	//
	tests := []struct {
		text  string
		value css.Value
	}{
		{"10px", css.PxLength(10)},
		{"-2.5pt", css.Length{Number: -2.5, Unit: css.Pt}},
		{"50%", css.Length{Number: 50, Unit: css.Pc}},
		{"1.5em", css.Length{Number: 1.5, Unit: css.Em}},
		{"100vw", css.Length{Number: 100, Unit: css.Vw}},
		{"3", css.Length{Number: 3}},
		{"1e-3", css.Length{Number: 0.001}},
		{"2e2px", css.PxLength(200)},
		{"#f00", css.RGBA(255, 0, 0, 255)},
		{"#ff000080", css.RGBA(255, 0, 0, 128)},
		{"rgb(0, 128, 255)", css.RGBA(0, 128, 255, 255)},
		{"rgba(0,0,0,0)", css.Transparent},
		{"center", css.Enum("center")},
		{"inherit", css.Inherit},
		{`"Noto Sans"`, css.String("Noto Sans")},
	}
	for _, test := range tests {
		v, err := ParseValue(test.text)
		if err != nil {
			t.Errorf("value %q: unexpected error %v", test.text, err)
			continue
		}
		if !css.Equal(v, test.value) {
			t.Errorf("value %q: expected %v, have %v", test.text, test.value, v)
		}
	}
}

func TestParseColorEquivalence(t *testing.T) {
	a, err := ParseValue("#ff0000")
	require.NoError(t, err)
	b, err := ParseValue("rgba(255,0,0,1)")
	require.NoError(t, err)
	assert.True(t, css.Equal(a, b), "expected %v = %v", a, b)
	assert.Equal(t, a, b)
}

func TestParseTransitions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.cssom")
	defer teardown()
	//
	sheet, err := Parse(`
    text {
        width: 10px 0.5s;
        color: #fff 150ms ease;
        text-align: center;
    }`)
	require.NoError(t, err)
	attrs := sheet.Rule(0).Attributes
	require.Len(t, attrs, 3)
	tr, ok := attrs[0].Timing().Get()
	require.True(t, ok)
	assert.Equal(t, Transition{Duration: 0.5, Easing: css.Linear}, tr)
	tr, ok = attrs[1].Timing().Get()
	require.True(t, ok)
	assert.Equal(t, Transition{Duration: 0.15, Easing: css.Ease}, tr)
	assert.False(t, attrs[2].Timing().IsJust())
	// transitions are only allowed for lengths and colors
	_, err = Parse(`text { text-align: center 1s; }`)
	assert.ErrorIs(t, err, ErrSyntax)
}

func TestParseComments(t *testing.T) {
	sheet, err := Parse(`/* header */ a /* x */ { /* y */ width: /* z */ 1px; } /**/`)
	require.NoError(t, err)
	require.Equal(t, 1, sheet.Len())
	assert.Equal(t, "a", sheet.Rule(0).Selectors[0].Target.Element)
	assert.Len(t, sheet.Rule(0).Attributes, 1)
}

func TestParseEmpty(t *testing.T) {
	sheet, err := Parse("  \n /* nothing */ ")
	require.NoError(t, err)
	assert.True(t, sheet.Empty())
}

func TestParseErrors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.cssom")
	defer teardown()
	//
	inputs := []string{
		`a { font-family: "abc; }`,
		`a { width: 1px; } /* open`,
		`a { color: #12345; }`,
		`a { color: rgb(1, 2); }`,
		`a { color: rgba(1, 2, 3, 1, 5); }`,
		`a { color: rgb(1, 2, 300); }`,
		`a { color: hsl(1, 2, 3); }`,
		`a { width: 10px }`,
		`a { width: 10px;`,
		`{ width: 1px; }`,
		`a { width: 10qq; }`,
		`a { font-family: 'x'; }`,
		`a > { width: 1px; }`,
		`a:b:c { width: 1px; }`,
		`a. { width: 1px; }`,
		`a { width: 1px 2q; }`,
	}
	for _, input := range inputs {
		_, err := Parse(input)
		if err == nil {
			t.Errorf("expected %q to fail", input)
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) || !errors.Is(err, ErrSyntax) {
			t.Errorf("expected a ParseError for %q, have %T", input, err)
			continue
		}
		t.Logf("%-36q => %v", input, err)
	}
}

func TestParseStrings(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.cssom")
	defer teardown()
	//
	tests := []struct {
		text string
		want css.String
	}{
		{"a { font-family: \"abc\n\"; }", "abc\n"},
		{"a { s: \"l1\nl2\"; }", "l1\nl2"},
		{`a { s: "C:\"; }`, `C:\`},
		{`a { s: "\41 /* x */"; b: 1px; }`, `\41 /* x */`},
		{`a { s: ""; }`, ""},
	}
	for _, test := range tests {
		sheet, err := Parse(test.text)
		require.NoError(t, err, test.text)
		require.Equal(t, 1, sheet.Len())
		a := sheet.Rule(0).Attributes[0]
		assert.Equal(t, test.want, a.Value, test.text)
		again, err := Parse(sheet.String())
		require.NoError(t, err, sheet.String())
		assert.Equal(t, sheet.String(), again.String())
		assert.True(t, css.Equal(a.Value, again.Rule(0).Attributes[0].Value))
	}
	// lexing continues after a string ending in a backslash
	sheet, err := Parse(`a { s: "C:\"; } b > c { width: 2px; }`)
	require.NoError(t, err)
	require.Equal(t, 2, sheet.Len())
	assert.Equal(t, "b > c", sheet.Rule(1).Selectors.String())
	// offsets of tokens after a string are absolute
	_, err = Parse("a { s: \"x\ny\"; w 1px; }")
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.Line)
	assert.Equal(t, 7, perr.Column)
}

func TestColorRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	random := func() css.Color {
		return css.Color{R: rnd.Float32(), G: rnd.Float32(), B: rnd.Float32(), A: rnd.Float32()}
	}
	colors := []css.Color{
		{R: 127.3 / 255, G: 0.1 / 255, B: 3.3 / 255, A: 1},
		{R: 1e-9, G: 1, B: 0.5, A: 0.3},
	}
	for i := 0; i < 500; i++ {
		colors = append(colors, random())
		mixed, err := css.Lerp(random(), random(), rnd.Float32())
		require.NoError(t, err)
		colors = append(colors, mixed.(css.Color))
	}
	for _, c := range colors {
		v, err := ParseValue(c.String())
		require.NoError(t, err, c.String())
		if !css.Equal(c, v) {
			t.Fatalf("%s: expected %#v, have %#v", c, c, v)
		}
	}
}

func TestParseErrorPosition(t *testing.T) {
	_, err := Parse("a {\n  width 10px;\n}")
	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 12, perr.Offset)
	assert.Equal(t, 2, perr.Line)
	assert.Equal(t, 9, perr.Column)
	assert.Equal(t, "':'", perr.Expected)
	assert.Equal(t, `"10px"`, perr.Found)
	//
	_, err = Parse("a { width: 1px;")
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "end of input", perr.Found)
	assert.Equal(t, "'}'", perr.Expected)
}

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.cssom")
	defer teardown()
	//
	text := `
    * { color: #000; font-size: 16px; }
    body { background-color: #fafafa; }
    .panel > button:hover, div text.label {
        background-color: rgba(10, 20, 30, 0.5) 0.2s;
        width: 50% 150ms ease;
        font-family: "Noto Sans";
        color: inherit;
        width: 1e3px;
    }
    `
	first, err := Parse(text)
	require.NoError(t, err)
	out := first.String()
	t.Logf("canonical form:\n%s", out)
	second, err := Parse(out)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, out, second.String())
}

func TestStyleSheetAppend(t *testing.T) {
	a, err := Parse(`a { width: 1px; }`)
	require.NoError(t, err)
	b, err := Parse(`b { width: 2px; } c { width: 3px; }`)
	require.NoError(t, err)
	ab := a.Append(b)
	assert.Equal(t, 3, ab.Len())
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, "c", ab.Rule(2).Selectors[0].Target.Element)
	var empty *StyleSheet
	assert.Equal(t, 1, empty.Append(a).Len())
}
