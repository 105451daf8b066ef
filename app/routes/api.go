package routes

import (
	"github.com/shashiranjanraj/grubdash/app/providers"
	"github.com/shashiranjanraj/grubdash/pkg/ctx"
	"github.com/shashiranjanraj/grubdash/pkg/middleware"
	"github.com/shashiranjanraj/grubdash/pkg/router"
)

// RegisterAPI binds the dish and order routes under basePath. Every route
// that reads or writes a store runs behind one Serialize instance.
func RegisterAPI(r *router.Router, a *providers.App, basePath string) {
	api := r.Group(basePath, middleware.Serialize())

	dishes := api.Group("/dishes")
	dishes.Get("/", "dishes.index", ctx.Wrap(a.Dishes.Index()))
	dishes.Post("/", "dishes.store", ctx.Wrap(a.Dishes.Store()))
	dishes.Get("/{dishId}", "dishes.show", ctx.Wrap(a.Dishes.Show()))
	dishes.Put("/{dishId}", "dishes.update", ctx.Wrap(a.Dishes.Update()))

	orders := api.Group("/orders")
	orders.Get("/", "orders.index", ctx.Wrap(a.Orders.Index()))
	orders.Post("/", "orders.store", ctx.Wrap(a.Orders.Store()))
	orders.Get("/{orderId}", "orders.show", ctx.Wrap(a.Orders.Show()))
	orders.Put("/{orderId}", "orders.update", ctx.Wrap(a.Orders.Update()))
	orders.Delete("/{orderId}", "orders.destroy", ctx.Wrap(a.Orders.Destroy()))
}

// RegisterSystem binds the operational endpoints.
func RegisterSystem(r *router.Router, a *providers.App) {
	r.Get("/status", "system.status", ctx.Wrap(a.Health.Status()))
}
