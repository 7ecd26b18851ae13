package template

import "sync/atomic"

// Store holds the process-wide registry snapshot. Reload swaps the whole
// registry atomically: readers in flight keep working against the snapshot
// they obtained from Current, and no reader ever observes a partially
// updated registry.
type Store struct {
	current atomic.Pointer[Registry]
}

// NewStore creates a Store seeded with the given registry.
func NewStore(reg *Registry) *Store {
	s := &Store{}
	s.current.Store(reg)
	return s
}

// Current returns the active registry snapshot.
func (s *Store) Current() *Registry {
	return s.current.Load()
}

// Reload replaces the active registry with a new snapshot.
func (s *Store) Reload(reg *Registry) {
	s.current.Store(reg)
}
