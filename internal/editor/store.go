package editor

import (
	"sync"

	"github.com/jonathan/resume-builder/internal/types"
)

// Mutation transforms a snapshot into the next one.
type Mutation func(types.FormState) types.FormState

// Store owns the current snapshot of one editing session.
// It is safe for concurrent use; mutations are applied one at a time.
type Store struct {
	mu        sync.Mutex
	state     types.FormState
	listeners []func(types.FormState)
}

// NewStore creates a store holding a fresh session state.
func NewStore() *Store {
	return &Store{state: New()}
}

// Snapshot returns a copy of the current state.
func (s *Store) Snapshot() types.FormState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clone(s.state)
}

// Apply replaces the state with m(state) and notifies listeners.
func (s *Store) Apply(m Mutation) types.FormState {
	s.mu.Lock()
	s.state = m(s.state)
	next := clone(s.state)
	listeners := append([]func(types.FormState){}, s.listeners...)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
	return next
}

// Dispatch applies a single action. The state is left untouched when the
// action type is unknown.
func (s *Store) Dispatch(a types.Action) (types.FormState, error) {
	var dispatchErr error
	next := s.Apply(func(cur types.FormState) types.FormState {
		out, err := Dispatch(cur, a)
		dispatchErr = err
		return out
	})
	return next, dispatchErr
}

// OnChange registers fn to be called synchronously after every applied mutation.
func (s *Store) OnChange(fn func(types.FormState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}
