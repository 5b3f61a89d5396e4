package transition

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uistyle/css"
	"github.com/npillmayer/uistyle/dom/style/cssom"
	"github.com/npillmayer/uistyle/dom/w3cdom"
	"github.com/npillmayer/uistyle/maybe"
	"github.com/stretchr/testify/assert"
)

func seconds(d float32) maybe.Maybe[cssom.Transition] {
	return maybe.Just(cssom.Transition{Duration: d})
}

var none = maybe.Nothing[cssom.Transition]()

func px(n float64) css.Value {
	return css.PxLength(n)
}

func assertValue(t *testing.T, expected, v css.Value) {
	t.Helper()
	if !css.Equal(expected, v) {
		t.Errorf("expected %v, have %v", expected, v)
	}
}

func TestTransitionTiming(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.transition")
	defer teardown()
	//
	table := NewTable()
	assertValue(t, px(0), table.Advance(1, "width", px(0), seconds(1), 0))
	assert.False(t, table.Active(1, "width").IsJust(), "first value must not animate")
	assertValue(t, px(5), table.Advance(1, "width", px(10), seconds(1), 0.5))
	s, ok := table.Active(1, "width").Get()
	assert.True(t, ok)
	assert.Equal(t, float32(0.5), s.Elapsed)
	assertValue(t, px(10), table.Advance(1, "width", px(10), seconds(1), 0.6))
	assert.False(t, table.Active(1, "width").IsJust(), "expected transition to be retired")
	assert.Equal(t, 0, table.Running())
	assertValue(t, px(10), table.Advance(1, "width", px(10), seconds(1), 0.1))
}

func TestTransitionRetarget(t *testing.T) {
	table := NewTable()
	table.Advance(1, "x", px(0), seconds(1), 0)
	assertValue(t, px(5), table.Advance(1, "x", px(10), seconds(1), 0.5))
	// new target mid-flight starts from the displayed value
	assertValue(t, px(5), table.Advance(1, "x", px(20), seconds(2), 0))
	s, ok := table.Active(1, "x").Get()
	assert.True(t, ok)
	assertValue(t, px(5), s.From)
	assert.Equal(t, float32(2), s.Duration)
	assertValue(t, px(12.5), table.Advance(1, "x", px(20), seconds(2), 1))
	assertValue(t, px(20), table.Advance(1, "x", px(20), seconds(2), 1))
}

func TestTransitionSnaps(t *testing.T) {
	table := NewTable()
	table.Advance(1, "x", px(0), none, 0)
	assertValue(t, px(10), table.Advance(1, "x", px(10), none, 0.1))
	assertValue(t, px(20), table.Advance(1, "x", px(20), maybe.Just(cssom.Transition{}), 0.1))
	assert.Equal(t, 0, table.Running())
	// transition removed while running
	assertValue(t, px(25), table.Advance(1, "x", px(30), seconds(1), 0.5))
	assertValue(t, px(30), table.Advance(1, "x", px(30), none, 0.1))
	assert.Equal(t, 0, table.Running())
}

func TestTransitionUnitMismatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.transition")
	defer teardown()
	//
	var reported []error
	table := NewTable(WithInconsistencyHandler(func(node w3cdom.NodeID, attr string, err error) {
		assert.Equal(t, w3cdom.NodeID(7), node)
		assert.Equal(t, "x", attr)
		reported = append(reported, err)
	}))
	table.Advance(7, "x", px(0), seconds(1), 0)
	target := css.Length{Number: 10, Unit: css.Pt}
	assertValue(t, target, table.Advance(7, "x", target, seconds(1), 0.5))
	assert.False(t, table.Active(7, "x").IsJust())
	if assert.Len(t, reported, 1) {
		assert.True(t, errors.Is(reported[0], css.ErrUnitMismatch))
	}
	// keywords never interpolate
	table.Advance(7, "x", css.Enum("left"), none, 0)
	assertValue(t, css.Enum("right"), table.Advance(7, "x", css.Enum("right"), seconds(1), 0.5))
	if assert.Len(t, reported, 2) {
		assert.True(t, errors.Is(reported[1], css.ErrNotInterpolable))
	}
}

func TestTransitionColor(t *testing.T) {
	table := NewTable()
	table.Advance(1, "color", css.Black, seconds(1), 0)
	v := table.Advance(1, "color", css.White, seconds(1), 0.5)
	assertValue(t, css.Color{R: 0.5, G: 0.5, B: 0.5, A: 1}, v)
}

func TestTransitionEasing(t *testing.T) {
	ease := maybe.Just(cssom.Transition{Duration: 1, Easing: css.Ease})
	table := NewTable()
	table.Advance(1, "x", px(0), ease, 0)
	assertValue(t, px(1.5625), table.Advance(1, "x", px(10), ease, 0.25))
	//
	linear := NewTable(WithEasing(css.Linear))
	linear.Advance(1, "x", px(0), ease, 0)
	assertValue(t, px(2.5), linear.Advance(1, "x", px(10), ease, 0.25))
}

func TestTransitionSweep(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "uistyle.transition")
	defer teardown()
	//
	table := NewTable()
	table.BeginFrame()
	table.Advance(1, "x", px(0), seconds(1), 0)
	table.Advance(2, "x", px(0), seconds(1), 0)
	table.Advance(2, "y", px(0), seconds(1), 0)
	assert.Equal(t, 0, table.Sweep())
	assert.Equal(t, 3, table.Len())
	//
	table.BeginFrame()
	table.Advance(1, "x", px(10), seconds(1), 0.5)
	assert.Equal(t, 2, table.Sweep())
	assert.Equal(t, 1, table.Len())
	assert.True(t, table.Active(1, "x").IsJust())
	//
	table.Forget(1)
	assert.Equal(t, 0, table.Len())
	// a forgotten node starts over without animation
	assertValue(t, px(20), table.Advance(1, "x", px(20), seconds(1), 0.5))
}
