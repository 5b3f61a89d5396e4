/*
Package maybe implements an option type.

A Maybe either holds a value (Just) or it doesn't (Nothing). The style engine
uses it wherever a result is optional in a way that differs from a zero
value: a selector that does not match has no specificity at all, which is
different from a specificity of zero; an attribute without a transition
differs from one with a transition of zero seconds.

Values are inspected by pattern matching:

	var v int
	switch m := x.Match(); m {
	case m.Just(&v):
	    …
	case m.Nothing():
	    …
	}

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package maybe

// Maybe is an optional value of type T.
//
// Clients should never use a nil Maybe; use Nothing[T]() instead.
type Maybe[T any] interface {
	Match() Matcher[T]
	WithDefault(T) T
	Map(func(T) T) Maybe[T]
	IsJust() bool
	Get() (T, bool)
}

type maybe[T any] struct {
	value T
	tag   bool
}

// Just wraps x into a Maybe.
func Just[T any](x T) Maybe[T] {
	return maybe[T]{value: x, tag: true}
}

// Nothing returns an empty Maybe.
func Nothing[T any]() Maybe[T] {
	return maybe[T]{tag: false}
}

// From creates Just(x) if ok, Nothing otherwise.
func From[T any](x T, ok bool) Maybe[T] {
	if ok {
		return Just(x)
	}
	return Nothing[T]()
}

func (m maybe[T]) Match() Matcher[T] {
	return matcher[T]{m: m}
}

func (m maybe[T]) WithDefault(def T) T {
	if m.tag {
		return m.value
	}
	return def
}

func (m maybe[T]) Map(f func(T) T) Maybe[T] {
	if m.tag {
		return Just(f(m.value))
	}
	return m
}

func (m maybe[T]) IsJust() bool {
	return m.tag
}

func (m maybe[T]) Get() (T, bool) {
	return m.value, m.tag
}

// AndThen chains a computation which may fail onto x.
func AndThen[T, S any](f func(T) Maybe[S], x Maybe[T]) Maybe[S] {
	var v T
	switch m := x.Match(); m {
	case m.Just(&v):
		return f(v)
	case m.Nothing():
	}
	return Nothing[S]()
}

// Or returns x if it holds a value, y otherwise. A nil x is treated as Nothing.
func Or[T any](x, y Maybe[T]) Maybe[T] {
	if x != nil && x.IsJust() {
		return x
	}
	return y
}

// --- Matching --------------------------------------------------------------

// Matcher is returned by Maybe.Match() for pattern matching.
type Matcher[T any] interface {
	Just(*T) Matcher[T]
	Nothing() Matcher[T]
}

type matcher[T any] struct {
	m maybe[T]
}

func (mm matcher[T]) Just(v *T) Matcher[T] {
	if mm.m.tag {
		if v != nil {
			*v = mm.m.value
		}
		return mm
	}
	return nil
}

func (mm matcher[T]) Nothing() Matcher[T] {
	if !mm.m.tag {
		return mm
	}
	return nil
}
