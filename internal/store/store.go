package store

import (
	"sync"

	"github.com/google/uuid"
)

// Entity is a value type that knows its own identifier and can return a copy
// of itself under a different one.
type Entity[T any] interface {
	EntityID() uuid.UUID
	WithID(uuid.UUID) T
}

// Store is a concurrency-safe id → entity map. Entities are stored by value, so
// every Save replaces a key as a whole and FindAll hands out a detached snapshot.
type Store[T Entity[T]] struct {
	m     sync.Map
	newID func() uuid.UUID
}

func New[T Entity[T]]() *Store[T] {
	return &Store[T]{newID: uuid.New}
}

// Seed builds a store pre-filled with items, keeping their identifiers.
func Seed[T Entity[T]](items []T) *Store[T] {
	s := New[T]()
	for _, it := range items {
		s.Save(it)
	}
	return s
}

func (s *Store[T]) FindAll() []T {
	out := make([]T, 0)
	s.m.Range(func(_, v any) bool {
		out = append(out, v.(T))
		return true
	})
	return out
}

func (s *Store[T]) FindByID(id uuid.UUID) (T, bool) {
	v, ok := s.m.Load(id)
	if !ok {
		var z T
		return z, false
	}
	return v.(T), true
}

// Save assigns a fresh identifier when the entity has none, then inserts or
// replaces it under that identifier.
func (s *Store[T]) Save(e T) T {
	if e.EntityID() == uuid.Nil {
		e = e.WithID(s.newID())
	}
	s.m.Store(e.EntityID(), e)
	return e
}

func (s *Store[T]) DeleteByID(id uuid.UUID) { s.m.Delete(id) }

func (s *Store[T]) ExistsByID(id uuid.UUID) bool {
	_, ok := s.m.Load(id)
	return ok
}

func (s *Store[T]) Len() int {
	n := 0
	s.m.Range(func(_, _ any) bool { n++; return true })
	return n
}
