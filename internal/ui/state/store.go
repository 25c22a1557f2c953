package state

import (
	"sync"
)

// Listener is notified with the new state after every dispatch
type Listener func(AppState)

// Store holds the AppState and is mutated only through Dispatch
type Store struct {
	mu        sync.RWMutex
	state     AppState
	listeners map[int]Listener
	nextID    int
}

// NewStore creates a store with an empty result list
func NewStore() *Store {
	return &Store{
		state:     NewAppState(),
		listeners: make(map[int]Listener),
	}
}

// State returns the current state. Results must be treated as read-only.
func (s *Store) State() AppState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Dispatch applies action and notifies listeners
func (s *Store) Dispatch(action Action) AppState {
	s.mu.Lock()
	s.state = Reduce(s.state, action)
	next := s.state
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	for _, l := range listeners {
		l(next)
	}
	return next
}

// Subscribe registers a listener and returns a function removing it
func (s *Store) Subscribe(l Listener) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.nextID
	s.nextID++
	s.listeners[id] = l

	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}
