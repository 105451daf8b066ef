// Package providers is the composition root. It registers every service
// GrubDash needs in a container and hands the controllers to the routes.
package providers

import (
	"context"
	"fmt"

	"github.com/shashiranjanraj/grubdash/app/controllers"
	"github.com/shashiranjanraj/grubdash/app/events"
	"github.com/shashiranjanraj/grubdash/app/repositories"
	"github.com/shashiranjanraj/grubdash/app/services"
	"github.com/shashiranjanraj/grubdash/config"
	"github.com/shashiranjanraj/grubdash/database/seeders"
	"github.com/shashiranjanraj/grubdash/pkg/cache"
	"github.com/shashiranjanraj/grubdash/pkg/container"
	"github.com/shashiranjanraj/grubdash/pkg/event"
	"github.com/shashiranjanraj/grubdash/pkg/logger"
	"github.com/shashiranjanraj/grubdash/pkg/nextid"
)

// Container keys.
const (
	KeyConfig          = "config"
	KeyDishStore       = "dishes.store"
	KeyOrderStore      = "orders.store"
	KeyIDs             = "ids"
	KeyBus             = "events"
	KeyMenu            = "menu"
	KeyDishService     = "dishes.service"
	KeyOrderService    = "orders.service"
	KeyDishController  = "dishes.controller"
	KeyOrderController = "orders.controller"
	KeyHealth          = "health.controller"
)

// CachePrefix namespaces every Redis key GrubDash writes.
const CachePrefix = "grubdash:"

// App holds the resolved services the HTTP layer needs.
type App struct {
	Container *container.Container
	Dishes    *controllers.DishController
	Orders    *controllers.OrderController
	Health    *controllers.HealthController
	Bus       *event.Bus
	Menu      *cache.Store
}

// Boot loads the seed data, connects the optional menu cache and wires the
// controllers. A cache that cannot be reached is logged and skipped.
func Boot(ctx context.Context, cfg *config.Config) (*App, error) {
	data, err := seeders.Load(cfg.Seed.File)
	if err != nil {
		return nil, fmt.Errorf("providers: seed: %w", err)
	}

	menu, err := cache.Connect(ctx, cfg.Redis.Addr, cfg.Redis.Password, CachePrefix)
	if err != nil {
		logger.Warn().Err(err).Str("addr", cfg.Redis.Addr).Msg("menu cache unavailable, serving without it")
		menu = nil
	}
	// The stores start from the seeds, so a menu cached by an earlier run
	// is stale.
	if err := menu.Forget(ctx, services.MenuKey); err != nil {
		logger.Warn().Err(err).Msg("menu cache reset failed")
	}

	c := Register(cfg, data, menu)
	return Resolve(c), nil
}

// Register binds every GrubDash service into a new container.
func Register(cfg *config.Config, data *seeders.Data, menu *cache.Store) *container.Container {
	c := container.New()
	c.Instance(KeyConfig, cfg)
	c.Instance(KeyMenu, menu)

	c.Singleton(KeyDishStore, func(*container.Container) any {
		return repositories.NewMemoryDishStore(data.Dishes...)
	})
	c.Singleton(KeyOrderStore, func(*container.Container) any {
		return repositories.NewMemoryOrderStore(data.Orders...)
	})

	// Ids are unique across both collections.
	c.Singleton(KeyIDs, func(c *container.Container) any {
		dishes := container.MustMake[*repositories.MemoryDishStore](c, KeyDishStore)
		orders := container.MustMake[*repositories.MemoryOrderStore](c, KeyOrderStore)
		return nextid.New(dishes.Has, orders.Has)
	})

	c.Singleton(KeyBus, func(c *container.Container) any {
		bus := event.New()
		events.Register(bus)
		return bus
	})

	c.Singleton(KeyDishService, func(c *container.Container) any {
		return services.NewDishService(
			container.MustMake[*repositories.MemoryDishStore](c, KeyDishStore),
			container.MustMake[*nextid.Generator](c, KeyIDs),
			container.MustMake[*event.Bus](c, KeyBus),
			container.MustMake[*cache.Store](c, KeyMenu),
			cfg.Redis.MenuTTL,
		)
	})
	c.Singleton(KeyOrderService, func(c *container.Container) any {
		return services.NewOrderService(
			container.MustMake[*repositories.MemoryOrderStore](c, KeyOrderStore),
			container.MustMake[*nextid.Generator](c, KeyIDs),
			container.MustMake[*event.Bus](c, KeyBus),
		)
	})

	c.Singleton(KeyDishController, func(c *container.Container) any {
		return controllers.NewDishController(container.MustMake[*services.DishService](c, KeyDishService))
	})
	c.Singleton(KeyOrderController, func(c *container.Container) any {
		return controllers.NewOrderController(container.MustMake[*services.OrderService](c, KeyOrderService))
	})
	c.Singleton(KeyHealth, func(c *container.Container) any {
		return controllers.NewHealthController(cfg.App.Env, container.MustMake[*cache.Store](c, KeyMenu))
	})
	return c
}

// Resolve builds the App from a registered container.
func Resolve(c *container.Container) *App {
	return &App{
		Container: c,
		Dishes:    container.MustMake[*controllers.DishController](c, KeyDishController),
		Orders:    container.MustMake[*controllers.OrderController](c, KeyOrderController),
		Health:    container.MustMake[*controllers.HealthController](c, KeyHealth),
		Bus:       container.MustMake[*event.Bus](c, KeyBus),
		Menu:      container.MustMake[*cache.Store](c, KeyMenu),
	}
}

// Close detaches the event listeners and releases the cache connection.
func (a *App) Close() error {
	a.Bus.Flush()
	return a.Menu.Close()
}
