// Package events names the domain events services fire and registers the
// listeners that react to them.
package events

import (
	"github.com/shashiranjanraj/grubdash/app/models"
	"github.com/shashiranjanraj/grubdash/pkg/event"
	"github.com/shashiranjanraj/grubdash/pkg/logger"
	"github.com/shashiranjanraj/grubdash/pkg/metrics"
)

const (
	DishCreated  = "dish.created"
	DishUpdated  = "dish.updated"
	OrderCreated = "order.created"
	OrderUpdated = "order.updated"
	OrderDeleted = "order.deleted"
)

// Register wires the default listeners onto bus: every change is counted
// and logged at debug level.
func Register(bus *event.Bus) {
	bus.Listen(DishCreated, func(payload any) {
		metrics.RecordsCreated.WithLabelValues("dish").Inc()
		if d, ok := payload.(models.Dish); ok {
			logger.Debug().Str("dish_id", d.ID).Msg(DishCreated)
		}
	})
	bus.Listen(DishUpdated, func(any) { metrics.RecordsUpdated.WithLabelValues("dish").Inc() })

	bus.Listen(OrderCreated, func(payload any) {
		metrics.RecordsCreated.WithLabelValues("order").Inc()
		if o, ok := payload.(models.Order); ok {
			logger.Debug().Str("order_id", o.ID).Int("items", len(o.Dishes)).Msg(OrderCreated)
		}
	})
	bus.Listen(OrderUpdated, func(any) { metrics.RecordsUpdated.WithLabelValues("order").Inc() })
	bus.Listen(OrderDeleted, func(any) { metrics.OrdersDeleted.Inc() })
}
