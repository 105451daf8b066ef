package services

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/shashiranjanraj/grubdash/app/events"
	"github.com/shashiranjanraj/grubdash/app/models"
	"github.com/shashiranjanraj/grubdash/app/repositories"
	"github.com/shashiranjanraj/grubdash/pkg/cache"
	"github.com/shashiranjanraj/grubdash/pkg/event"
	"github.com/shashiranjanraj/grubdash/pkg/logger"
	"github.com/shashiranjanraj/grubdash/pkg/nextid"
)

// MenuKey is the cache key holding the dish list.
const MenuKey = "dishes"

// invalidateTimeout bounds the cache delete after a dish change.
const invalidateTimeout = 2 * time.Second

type DishService struct {
	dishes  repositories.DishStore
	ids     *nextid.Generator
	bus     *event.Bus
	menu    *cache.Store
	menuTTL time.Duration

	// menuFresh is set once this process wrote the cached menu and no dish
	// changed since. Until then cached entries are not trusted.
	menuFresh atomic.Bool
}

// NewDishService wires the dish store to id generation, events and the
// optional menu cache. menu may be nil.
func NewDishService(dishes repositories.DishStore, ids *nextid.Generator, bus *event.Bus, menu *cache.Store, menuTTL time.Duration) *DishService {
	return &DishService{dishes: dishes, ids: ids, bus: bus, menu: menu, menuTTL: menuTTL}
}

// List returns every dish in insertion order, from the menu cache when it
// holds a copy this process wrote.
func (s *DishService) List(ctx context.Context) []models.Dish {
	var list []models.Dish
	if s.menuFresh.Load() && s.menu.Get(ctx, MenuKey, &list) && list != nil {
		return list
	}

	list = s.dishes.All()
	if err := s.menu.Set(ctx, MenuKey, list, s.menuTTL); err != nil {
		logger.WithCtx(ctx).Warn().Err(err).Msg("menu cache write failed")
		return list
	}
	s.menuFresh.Store(s.menu.Enabled())
	return list
}

// invalidateMenu stops List from trusting the cached menu and deletes it.
// A failed delete only leaves garbage behind: the next List overwrites it.
func (s *DishService) invalidateMenu() {
	s.menuFresh.Store(false)

	ctx, cancel := context.WithTimeout(context.Background(), invalidateTimeout)
	defer cancel()
	if err := s.menu.Forget(ctx, MenuKey); err != nil {
		logger.Warn().Err(err).Msg("menu cache invalidation failed")
	}
}

func (s *DishService) Find(id string) (*models.Dish, bool) {
	return s.dishes.Find(id)
}

// Create assigns d a fresh id and appends it.
func (s *DishService) Create(d models.Dish) *models.Dish {
	d.ID = s.ids.Next()
	stored := s.dishes.Add(d)
	s.invalidateMenu()
	s.bus.Fire(events.DishCreated, *stored)
	return stored
}

// Update overwrites the mutable fields of the dish with id. The id itself
// never changes.
func (s *DishService) Update(id string, changes models.Dish) (*models.Dish, bool) {
	d, ok := s.dishes.Find(id)
	if !ok {
		return nil, false
	}
	d.Name = changes.Name
	d.Description = changes.Description
	d.Price = changes.Price
	d.ImageURL = changes.ImageURL

	s.invalidateMenu()
	s.bus.Fire(events.DishUpdated, *d)
	return d, true
}
