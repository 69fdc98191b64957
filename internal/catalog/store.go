package catalog

import "sync"

// Store owns the current State and applies actions one at a time
type Store struct {
	mu    sync.Mutex
	state State
}

// NewStore creates a store holding initial
func NewStore(initial State) *Store {
	return &Store{state: initial}
}

// State returns the current state
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies a and returns the states before and after the transition
func (s *Store) Dispatch(a Action) (prev, next State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev = s.state
	s.state = Reduce(prev, a)
	return prev, s.state
}
