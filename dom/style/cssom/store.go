package cssom

import (
	"sync"
	"sync/atomic"
)

// Store holds the current style sheet of a process. Readers take a
// snapshot at the start of a styling pass and keep using it until the pass
// is complete, even if a new style sheet is stored in the meantime.
//
// Every change of the style sheet increments a generation counter, which
// clients may use to detect reloads.
type Store struct {
	current atomic.Pointer[snapshot]
	mu      sync.Mutex // serializes writers
}

type snapshot struct {
	sheet      *StyleSheet
	generation uint64
}

// NewStore creates a store holding an initial style sheet, which may be nil.
func NewStore(initial *StyleSheet) *Store {
	st := &Store{}
	if initial == nil {
		initial = &StyleSheet{}
	}
	st.current.Store(&snapshot{sheet: initial})
	return st
}

// Snapshot returns the current style sheet. It never returns nil.
func (st *Store) Snapshot() *StyleSheet {
	return st.current.Load().sheet
}

// Generation returns the number of changes since the store was created.
func (st *Store) Generation() uint64 {
	return st.current.Load().generation
}

// Swap replaces the current style sheet and returns the previous one.
func (st *Store) Swap(sheet *StyleSheet) *StyleSheet {
	if sheet == nil {
		sheet = &StyleSheet{}
	}
	st.mu.Lock()
	defer st.mu.Unlock()
	old := st.current.Load()
	st.current.Store(&snapshot{sheet: sheet, generation: old.generation + 1})
	return old.sheet
}

// Load parses style sheet text and, if successful, makes it the current
// style sheet. On a parse error the previous style sheet stays in effect
// and the error is returned.
func (st *Store) Load(text string) error {
	sheet, err := Parse(text)
	if err != nil {
		tracer().Errorf("cssom: keeping previous style sheet: %v", err)
		return err
	}
	st.Swap(sheet)
	tracer().Infof("cssom: loaded style sheet with %d rules, generation %d",
		sheet.Len(), st.Generation())
	return nil
}
