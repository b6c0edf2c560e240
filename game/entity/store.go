package entity

import "sort"

type remover interface {
	remove(id ID)
}

// Store is a typed component map keyed by entity ID.
type Store[T any] struct {
	data map[ID]*T
}

func newStore[T any]() *Store[T] {
	return &Store[T]{data: make(map[ID]*T, 16)}
}

func (s *Store[T]) set(id ID, c *T) {
	s.data[id] = c
}

func (s *Store[T]) remove(id ID) {
	delete(s.data, id)
}

// Get returns the component for id, if present.
func (s *Store[T]) Get(id ID) (*T, bool) {
	c, ok := s.data[id]
	return c, ok
}

// IDs returns the entity IDs holding this component sorted by ID, so callers
// that iterate see a stable sequence frame to frame.
func (s *Store[T]) IDs() []ID {
	ids := make([]ID, 0, len(s.data))
	for id := range s.data {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
