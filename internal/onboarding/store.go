package onboarding

import "sync"

// StateStore holds the editable ("current") and last-persisted ("original")
// value for every section. Both start nil; a load sets them together, so a
// section is either fully loaded or not loaded at all.
//
// current is mutated only by user edits (SetCurrent), original only by a
// successful load or save.
type StateStore struct {
	mu       sync.RWMutex
	current  map[Section]Value
	original map[Section]Value
	touched  map[Section]bool
}

// NewStateStore creates an empty store covering every known section.
func NewStateStore() *StateStore {
	current := make(map[Section]Value, len(Sections))
	original := make(map[Section]Value, len(Sections))
	for _, s := range Sections {
		current[s] = nil
		original[s] = nil
	}
	return &StateStore{
		current:  current,
		original: original,
		touched:  make(map[Section]bool),
	}
}

// GetCurrent returns the editable value for a section, or nil before load.
func (s *StateStore) GetCurrent(section Section) Value {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current[section]
}

// GetOriginal returns the last-persisted baseline, or nil before load.
func (s *StateStore) GetOriginal(section Section) Value {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.original[section]
}

// SetCurrent replaces a section's full editable value and marks it touched.
// Callers always pass a complete merged value, never a partial patch.
func (s *StateStore) SetCurrent(section Section, value Value) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current[section] = value
	s.touched[section] = true
}

// Touched reports whether the section has been edited since load.
func (s *StateStore) Touched(section Section) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.touched[section]
}

// IsDirty reports whether the editable value differs structurally from the
// baseline. A section that has not finished loading is never dirty.
func (s *StateStore) IsDirty(section Section) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cur, orig := s.current[section], s.original[section]
	if cur == nil || orig == nil {
		return false
	}
	return !valuesEqual(cur, orig)
}

// setLoaded installs independent deep copies of a fetched value as both the
// editable value and the baseline, atomically.
func (s *StateStore) setLoaded(section Section, value Value) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current[section] = value.Clone()
	s.original[section] = value.Clone()
}

// rebaseline promotes a deep copy of the current value to the baseline
// after a successful save.
func (s *StateStore) rebaseline(section Section) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cur := s.current[section]; cur != nil {
		s.original[section] = cur.Clone()
	}
}

// loaded reports whether the section has a value.
func (s *StateStore) loaded(section Section) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current[section] != nil
}
