package style_test

import (
	"errors"
	"image/color"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uistyle/css"
	"github.com/npillmayer/uistyle/dom/style"
)

func TestUserAgentSchema(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.dom")
	defer teardown()
	//
	s := style.UserAgentSchema()
	if !s.IsInherited("color") {
		t.Error("expected color to be inherited")
	}
	if s.IsInherited("background-color") {
		t.Error("expected background-color not to be inherited")
	}
	if d := s.Default("font-size"); !css.Equal(d, css.PxLength(16)) {
		t.Errorf("expected default font-size of 16px, have %v", d)
	}
	if s.Default("no-such-thing") != nil {
		t.Error("expected unknown attribute to have no default")
	}
	e, ok := s.Lookup("margin-top")
	if !ok || e.Group != style.PGMargins {
		t.Errorf("expected margin-top in group Margins, have %+v", e)
	}
	t.Logf("%s", s)
}

func TestSchemaShorthands(t *testing.T) {
	s := style.UserAgentSchema()
	if l := s.Expand("padding"); len(l) != 4 || l[0] != "padding-top" {
		t.Errorf("expected padding to expand to 4 longhands, have %v", l)
	}
	if l := s.Expand("color"); len(l) != 1 || l[0] != "color" {
		t.Errorf("expected color to expand to itself, have %v", l)
	}
	if !s.Knows("margin") || s.Knows("nothing") {
		t.Error("expected schema to know shorthand margin, but not 'nothing'")
	}
	broken := s.WithShorthand("spacing", "nothing-top")
	if broken.Knows("spacing") {
		t.Error("expected shorthand with unknown longhand to be rejected")
	}
}

func TestSchemaWith(t *testing.T) {
	base := style.NewSchema(style.Entry{Name: "x", Default: css.PxLength(0)})
	ext := base.With(style.Entry{Name: "y", Default: css.Inherit})
	if base.Knows("y") {
		t.Error("expected base schema to stay unchanged")
	}
	if d := ext.Default("y"); !css.Equal(d, css.Enum("none")) {
		t.Errorf("expected inherit default to be replaced by none, have %v", d)
	}
	if names := ext.Names(); len(names) != 2 || names[0] != "x" {
		t.Errorf("expected sorted names [x y], have %v", names)
	}
}

func TestUnknownAttributeError(t *testing.T) {
	var err error = style.UnknownAttributeError{Name: "foo", Rule: 3}
	if !errors.Is(err, style.ErrUnknownAttribute) {
		t.Errorf("expected error to wrap ErrUnknownAttribute")
	}
	t.Logf("error = %v", err)
}

func TestConversions(t *testing.T) {
	c := style.ColorOf(css.RGBA(255, 0, 0, 255), color.Black)
	if c != (color.NRGBA{R: 255, A: 255}) {
		t.Errorf("expected opaque red, have %v", c)
	}
	if style.ColorOf(css.Enum("red"), color.White) != color.White {
		t.Error("expected fallback for non-color")
	}
	if px := style.PixelsOf(css.PxLength(12), 0, 0, css.Viewport{}, -1); px != 12 {
		t.Errorf("expected 12 pixels, have %v", px)
	}
}
