package repositories

import (
	"github.com/shashiranjanraj/grubdash/app/models"
)

// DishStore owns the dish collection.
type DishStore interface {
	// All returns copies of every dish in insertion order.
	All() []models.Dish
	// Find returns the stored dish. Changes made through the pointer are
	// changes to the collection.
	Find(id string) (*models.Dish, bool)
	Has(id string) bool
	// Add appends d and returns the stored record.
	Add(d models.Dish) *models.Dish
	Len() int
}

// MemoryDishStore keeps dishes in process memory. It is not safe for
// concurrent use.
type MemoryDishStore struct {
	list *memory[models.Dish]
}

var _ DishStore = (*MemoryDishStore)(nil)

func NewMemoryDishStore(seed ...models.Dish) *MemoryDishStore {
	return &MemoryDishStore{
		list: newMemory(func(d *models.Dish) string { return d.ID }, seed),
	}
}

func (s *MemoryDishStore) All() []models.Dish {
	return s.list.snapshot(func(d models.Dish) models.Dish { return d })
}

func (s *MemoryDishStore) Find(id string) (*models.Dish, bool) { return s.list.find(id) }

func (s *MemoryDishStore) Has(id string) bool { return s.list.has(id) }

func (s *MemoryDishStore) Add(d models.Dish) *models.Dish { return s.list.add(d) }

func (s *MemoryDishStore) Len() int { return len(s.list.items) }
