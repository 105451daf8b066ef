package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/grubdash/app/models"
)

func TestDishStoreAddFindAll(t *testing.T) {
	s := NewMemoryDishStore(models.Dish{ID: "a", Name: "Pho"})
	s.Add(models.Dish{ID: "b", Name: "Ramen"})

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "b", all[1].ID)
	assert.Equal(t, 2, s.Len())

	d, ok := s.Find("b")
	require.True(t, ok)
	assert.Equal(t, "Ramen", d.Name)
	assert.True(t, s.Has("a"))
	assert.False(t, s.Has("zzz"))

	_, ok = s.Find("zzz")
	assert.False(t, ok)
}

func TestDishStoreFindMutatesInPlace(t *testing.T) {
	s := NewMemoryDishStore(models.Dish{ID: "a", Name: "Pho"})

	d, _ := s.Find("a")
	d.Name = "Bun Bo Hue"

	assert.Equal(t, "Bun Bo Hue", s.All()[0].Name)
}

func TestDishStoreAllIsACopy(t *testing.T) {
	s := NewMemoryDishStore(models.Dish{ID: "a", Name: "Pho"})

	all := s.All()
	all[0].Name = "changed"

	d, _ := s.Find("a")
	assert.Equal(t, "Pho", d.Name)
}

func TestEmptyStoresListNonNil(t *testing.T) {
	assert.NotNil(t, NewMemoryDishStore().All())
	assert.NotNil(t, NewMemoryOrderStore().All())
}

func TestOrderStoreRemoveOnlyTarget(t *testing.T) {
	s := NewMemoryOrderStore(
		models.Order{ID: "1", Status: models.StatusPending},
		models.Order{ID: "2", Status: models.StatusPending},
		models.Order{ID: "3", Status: models.StatusDelivered},
	)

	assert.True(t, s.Remove("2"))
	assert.False(t, s.Remove("2"))

	all := s.All()
	require.Len(t, all, 2)
	assert.Equal(t, "1", all[0].ID)
	assert.Equal(t, "3", all[1].ID)
}

func TestOrderStoreClonesLineItems(t *testing.T) {
	items := []models.LineItem{{"id": "d1", "quantity": 2}}
	s := NewMemoryOrderStore()
	s.Add(models.Order{ID: "1", Dishes: items})

	items[0]["quantity"] = 99
	all := s.All()
	assert.Equal(t, 2, all[0].Dishes[0].Quantity())

	all[0].Dishes[0]["quantity"] = 7
	o, _ := s.Find("1")
	assert.Equal(t, 2, o.Dishes[0].Quantity())
}
