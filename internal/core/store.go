package core

import (
	"sync"
	"time"
)

// Store owns the authoritative State and applies actions through the reducer.
// Snapshots handed out by State() stay stable after later dispatches because
// the reducer never mutates a collection in place.
type Store struct {
	mu       sync.RWMutex
	state    State
	revision uint64
	nowFn    func() time.Time
}

// NewStore constructs a store seeded with the given state.
func NewStore(initial State) *Store {
	return &Store{
		state: initial,
		nowFn: func() time.Time { return time.Now().UTC() },
	}
}

// SetClock overrides the store clock. Intended for tests.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if now != nil {
		s.nowFn = now
	}
}

// Now returns the store's current time.
func (s *Store) Now() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.nowFn()
}

// State returns the current snapshot. Callers must not mutate it.
func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Revision returns the number of effective dispatches applied so far.
func (s *Store) Revision() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// Dispatch applies an action and swaps in the resulting snapshot atomically.
// It returns the changes performed; an empty slice means the action was a
// no-op and the snapshot is unchanged. Dispatch never fails: unknown actions
// and absent ids reduce to no-ops.
func (s *Store) Dispatch(action Action) []Change {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, changes := reduce(s.state, action)
	if len(changes) == 0 {
		return nil
	}
	s.state = next
	s.revision++
	return changes
}
