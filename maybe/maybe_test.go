package maybe_test

import (
	"testing"

	. "github.com/npillmayer/uistyle/maybe"
)

func TestMaybeSimple(t *testing.T) {
	x := Just(7) // infers type
	y := Nothing[int]()

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
		t.Logf("Just(%d)", v)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if v != 7 {
		t.Errorf("expected v to be 7, is %#v", v)
	}

	var w int
	switch m := y.Match(); m {
	case m.Just(&w):
		t.Logf("Just(%d)", w)
	case m.Nothing():
		t.Logf("Nothing")
	}
	if w != 0 {
		t.Errorf("expected w to be 0, is %#v", w)
	}
}

func TestMaybeWithDefault(t *testing.T) {
	if xx := Just(7).WithDefault(100); xx != 7 {
		t.Errorf("expected Just(7) to have value 7, has %d", xx)
	}
	if yy := Nothing[int]().WithDefault(100); yy != 100 {
		t.Errorf("expected Nothing to default to 100, is %d", yy)
	}
}

func TestMaybeMapAndGet(t *testing.T) {
	double := func(n int) int { return n * 2 }
	if v, ok := Just(7).Map(double).Get(); !ok || v != 14 {
		t.Errorf("expected Just(7).Map(double) to be Just(14), is %d/%v", v, ok)
	}
	if Nothing[int]().Map(double).IsJust() {
		t.Error("expected Nothing.Map(…) to stay Nothing")
	}
}

func TestMaybeAndThenOr(t *testing.T) {
	gt0 := func(n int) Maybe[bool] {
		return From(true, n > 0)
	}
	if !AndThen(gt0, Just(7)).IsJust() {
		t.Error("expected Just(7) |> andThen(gt0) to be Just(true)")
	}
	if AndThen(gt0, Just(-1)).IsJust() {
		t.Error("expected Just(-1) |> andThen(gt0) to be Nothing")
	}
	if v := Or(Nothing[int](), Just(3)).WithDefault(0); v != 3 {
		t.Errorf("expected Or(Nothing, Just 3) to be 3, is %d", v)
	}
	if v := Or(nil, Just(4)).WithDefault(0); v != 4 {
		t.Errorf("expected Or(nil, Just 4) to be 4, is %d", v)
	}
}
