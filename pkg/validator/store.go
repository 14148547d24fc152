package validator

import (
	"maps"
	"slices"
)

// ErrorEntry is the active error of one field.
type ErrorEntry[E any] struct {
	Element E
	Field   string
	Rule    string
	Message string
}

// Store maps field ids to their active error. An id is present exactly when
// the last evaluation of that field failed.
type Store[E any] struct {
	entries map[string]ErrorEntry[E]
}

func newStore[E any]() *Store[E] {
	return &Store[E]{entries: make(map[string]ErrorEntry[E])}
}

func (s *Store[E]) set(id string, e ErrorEntry[E]) {
	s.entries[id] = e
}

func (s *Store[E]) remove(id string) {
	delete(s.entries, id)
}

// Get returns the entry stored for id.
func (s *Store[E]) Get(id string) (ErrorEntry[E], bool) {
	e, ok := s.entries[id]
	return e, ok
}

// Has reports whether the field with id is currently invalid.
func (s *Store[E]) Has(id string) bool {
	_, ok := s.entries[id]
	return ok
}

func (s *Store[E]) Len() int {
	return len(s.entries)
}

// IDs returns the ids of invalid fields in sorted order.
func (s *Store[E]) IDs() []string {
	return slices.Sorted(maps.Keys(s.entries))
}

// Snapshot returns a copy of the entries.
func (s *Store[E]) Snapshot() map[string]ErrorEntry[E] {
	return maps.Clone(s.entries)
}

// ValidationErrors renders the store as an error value, ordered by id.
func (s *Store[E]) ValidationErrors() ValidationErrors {
	if len(s.entries) == 0 {
		return nil
	}
	out := make(ValidationErrors, 0, len(s.entries))
	for _, id := range s.IDs() {
		e := s.entries[id]
		out = append(out, ValidationError{
			ID:      id,
			Field:   e.Field,
			Rule:    e.Rule,
			Message: e.Message,
		})
	}
	return out
}
