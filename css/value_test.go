package css_test

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/npillmayer/uistyle/css"
)

func TestValueMatch(t *testing.T) {
	var l css.Length
	v := css.Value(css.PxLength(10))
	switch m := css.Match(v); m {
	case m.Length(&l):
		t.Logf("length = %v", l)
	default:
		t.Errorf("expected 10px to match a length, didn't: %#v", v)
	}
	if l.Number != 10 || l.Unit != css.Px {
		t.Errorf("expected matched length to be 10px, is %v", l)
	}
	switch m := css.Match(css.Inherit); m {
	case m.Length(nil), m.Color(nil):
		t.Errorf("expected inherit not to match a length or color")
	case m.Inherit():
	default:
		t.Errorf("expected inherit to match Inherit()")
	}
}

func TestValueEquality(t *testing.T) {
	if !css.Equal(css.Length{Number: 1, Unit: css.Px}, css.PxLength(1)) {
		t.Error("expected 1px == 1px")
	}
	if css.Equal(css.Length{Number: 1, Unit: css.Px}, css.Length{Number: 1, Unit: css.Pt}) {
		t.Error("expected 1px != 1pt")
	}
	if css.Equal(css.Enum("a"), css.String("a")) {
		t.Error("expected enum a != string \"a\"")
	}
	if !css.Equal(css.Inherit, css.Inherit) {
		t.Error("expected inherit == inherit")
	}
	if css.Equal(nil, css.Inherit) || !css.Equal(nil, nil) {
		t.Error("expected nil to equal only nil")
	}
}

func TestHexColors(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.css")
	defer teardown()
	//
	for _, tc := range []struct {
		hex  string
		want css.Color
	}{
		{"#fff", css.White},
		{"#0000", css.Transparent},
		{"#ff0000", css.RGBA(0xff, 0, 0, 0xff)},
		{"#00ff0080", css.RGBA(0, 0xff, 0, 0x80)},
		{"#1e3", css.RGBA(0x11, 0xee, 0x33, 0xff)},
	} {
		c, err := css.ParseHexColor(tc.hex)
		if err != nil {
			t.Errorf("%s: unexpected error %v", tc.hex, err)
			continue
		}
		if c != tc.want {
			t.Errorf("%s: expected %v, have %v", tc.hex, tc.want, c)
		}
	}
	for _, bad := range []string{"#ff", "#fffff", "#abcdefabc", "#ggg"} {
		if _, err := css.ParseHexColor(bad); !errors.Is(err, css.ErrHexColor) {
			t.Errorf("%s: expected ErrHexColor, have %v", bad, err)
		}
	}
}

func TestColorString(t *testing.T) {
	if s := css.RGBA(0xff, 0, 0, 0xff).String(); s != "#ff0000" {
		t.Errorf("expected #ff0000, have %s", s)
	}
	if s := css.RGBA(0, 0, 0xff, 0x80).String(); s != "#0000ff80" {
		t.Errorf("expected #0000ff80, have %s", s)
	}
	if s := (css.Color{R: 0.5, G: 0, B: 0, A: 1}).String(); s != "rgba(127.5, 0, 0, 1)" {
		t.Errorf("expected rgba(127.5, 0, 0, 1), have %s", s)
	}
}

func TestLerpLength(t *testing.T) {
	v, err := css.Lerp(css.PxLength(0), css.PxLength(10), 0.5)
	if err != nil || !css.Equal(v, css.PxLength(5)) {
		t.Errorf("expected lerp(0px, 10px, 0.5) = 5px, have %v (%v)", v, err)
	}
	to := css.Length{Number: 3, Unit: css.Em}
	v, err = css.Lerp(css.PxLength(0), to, 0.5)
	var mismatch css.UnitMismatchError
	if !errors.As(err, &mismatch) || !errors.Is(err, css.ErrUnitMismatch) {
		t.Errorf("expected unit mismatch error, have %v", err)
	}
	if !css.Equal(v, to) {
		t.Errorf("expected mismatched lerp to snap to %v, have %v", to, v)
	}
}

func TestLerpColor(t *testing.T) {
	from := css.Color{R: 0, G: 0, B: 0, A: 0}
	to := css.Color{R: 1, G: 0.5, B: 0, A: 1}
	v, err := css.Lerp(from, to, 0.5)
	if err != nil {
		t.Fatal(err)
	}
	c := v.(css.Color)
	if c.R != 0.5 || c.G != 0.25 || c.B != 0 || c.A != 0.5 {
		t.Errorf("expected color halfway, have %#v", c)
	}
}

func TestLerpSnaps(t *testing.T) {
	for _, pair := range [][2]css.Value{
		{css.Enum("a"), css.Enum("b")},
		{css.String("a"), css.String("b")},
		{css.Inherit, css.PxLength(1)},
		{css.PxLength(1), css.Black},
	} {
		v, err := css.Lerp(pair[0], pair[1], 0.3)
		if !errors.Is(err, css.ErrNotInterpolable) {
			t.Errorf("expected %v → %v not to be interpolable, err = %v", pair[0], pair[1], err)
		}
		if !css.Equal(v, pair[1]) {
			t.Errorf("expected %v → %v to snap to target, have %v", pair[0], pair[1], v)
		}
	}
}

func TestEasing(t *testing.T) {
	if css.Linear.Evaluate(0.25) != 0.25 {
		t.Error("expected linear easing to be identity")
	}
	if e := css.Ease.Evaluate(0.5); e != 0.5 {
		t.Errorf("expected ease(0.5) = 0.5, have %v", e)
	}
	if e := css.Ease.Evaluate(0.25); e >= 0.25 {
		t.Errorf("expected ease(0.25) to be slower than linear, have %v", e)
	}
}

func TestPixels(t *testing.T) {
	vp := css.Viewport{Width: 800, Height: 600}
	for _, tc := range []struct {
		l    css.Length
		want float32
	}{
		{css.Length{Number: 10}, 10},
		{css.PxLength(10), 10},
		{css.Length{Number: 72, Unit: css.Pt}, 96},
		{css.Length{Number: 50, Unit: css.Pc}, 150},
		{css.Length{Number: 10, Unit: css.Vw}, 80},
		{css.Length{Number: 10, Unit: css.Vh}, 60},
		{css.Length{Number: 2, Unit: css.Em}, 32},
	} {
		if px := tc.l.Pixels(100, 200, vp); px != tc.want {
			t.Errorf("%v: expected %v pixels, have %v", tc.l, tc.want, px)
		}
	}
	if du := (css.Length{Number: 10, Unit: css.Pt}).Dimen(0, 0, vp); du != 10*dimen.PT {
		t.Errorf("expected 10pt, have %v", du)
	}
}
