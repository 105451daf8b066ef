package repositories

import (
	"github.com/shashiranjanraj/grubdash/app/models"
)

// OrderStore owns the order collection.
type OrderStore interface {
	// All returns copies of every order in insertion order.
	All() []models.Order
	// Find returns the stored order. Changes made through the pointer are
	// changes to the collection.
	Find(id string) (*models.Order, bool)
	Has(id string) bool
	// Add appends o and returns the stored record.
	Add(o models.Order) *models.Order
	// Remove deletes the order with id and reports whether it existed.
	Remove(id string) bool
	Len() int
}

// MemoryOrderStore keeps orders in process memory. It is not safe for
// concurrent use.
type MemoryOrderStore struct {
	list *memory[models.Order]
}

var _ OrderStore = (*MemoryOrderStore)(nil)

func NewMemoryOrderStore(seed ...models.Order) *MemoryOrderStore {
	return &MemoryOrderStore{
		list: newMemory(func(o *models.Order) string { return o.ID }, seed),
	}
}

func (s *MemoryOrderStore) All() []models.Order { return s.list.snapshot(models.Order.Clone) }

func (s *MemoryOrderStore) Find(id string) (*models.Order, bool) { return s.list.find(id) }

func (s *MemoryOrderStore) Has(id string) bool { return s.list.has(id) }

func (s *MemoryOrderStore) Add(o models.Order) *models.Order { return s.list.add(o.Clone()) }

func (s *MemoryOrderStore) Remove(id string) bool { return s.list.remove(id) }

func (s *MemoryOrderStore) Len() int { return len(s.list.items) }
