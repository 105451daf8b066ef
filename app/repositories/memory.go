package repositories

import (
	"slices"

	"github.com/shashiranjanraj/grubdash/pkg/collection"
)

// memory is an insertion-ordered list of records keyed by id. It does no
// locking: callers serialize access (see middleware.Serialize).
type memory[T any] struct {
	items []*T
	id    func(*T) string
}

func newMemory[T any](id func(*T) string, seed []T) *memory[T] {
	m := &memory[T]{id: id, items: make([]*T, 0, len(seed))}
	for _, v := range seed {
		m.add(v)
	}
	return m
}

func (m *memory[T]) find(id string) (*T, bool) {
	return collection.First(m.items, func(v *T) bool { return m.id(v) == id })
}

func (m *memory[T]) has(id string) bool {
	return collection.Contains(m.items, func(v *T) bool { return m.id(v) == id })
}

func (m *memory[T]) add(v T) *T {
	p := &v
	m.items = append(m.items, p)
	return p
}

// remove deletes only the record holding id.
func (m *memory[T]) remove(id string) bool {
	i := collection.IndexOf(m.items, func(v *T) bool { return m.id(v) == id })
	if i < 0 {
		return false
	}
	m.items = slices.Delete(m.items, i, i+1)
	return true
}

// snapshot copies every record in insertion order. The result is never nil.
func (m *memory[T]) snapshot(clone func(T) T) []T {
	return collection.Map(m.items, func(v *T) T { return clone(*v) })
}
