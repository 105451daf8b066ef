package services

import (
	"github.com/shashiranjanraj/grubdash/app/events"
	"github.com/shashiranjanraj/grubdash/app/models"
	"github.com/shashiranjanraj/grubdash/app/repositories"
	"github.com/shashiranjanraj/grubdash/pkg/event"
	"github.com/shashiranjanraj/grubdash/pkg/httperr"
	"github.com/shashiranjanraj/grubdash/pkg/nextid"
)

type OrderService struct {
	orders repositories.OrderStore
	ids    *nextid.Generator
	bus    *event.Bus
}

func NewOrderService(orders repositories.OrderStore, ids *nextid.Generator, bus *event.Bus) *OrderService {
	return &OrderService{orders: orders, ids: ids, bus: bus}
}

func (s *OrderService) List() []models.Order {
	return s.orders.All()
}

func (s *OrderService) Find(id string) (*models.Order, bool) {
	return s.orders.Find(id)
}

// Create assigns o a fresh id and appends it. New orders always start out
// for delivery, whatever status the client sent.
func (s *OrderService) Create(o models.Order) *models.Order {
	o.ID = s.ids.Next()
	o.Status = models.StatusOutForDelivery
	stored := s.orders.Add(o)
	s.bus.Fire(events.OrderCreated, stored.Clone())
	return stored
}

// Update overwrites deliverTo, mobileNumber, status and dishes of the order
// with id.
func (s *OrderService) Update(id string, changes models.Order) (*models.Order, bool) {
	o, ok := s.orders.Find(id)
	if !ok {
		return nil, false
	}
	o.DeliverTo = changes.DeliverTo
	o.MobileNumber = changes.MobileNumber
	o.Status = changes.Status
	o.Dishes = changes.Clone().Dishes

	s.bus.Fire(events.OrderUpdated, o.Clone())
	return o, true
}

// ErrNotPending is returned when deleting an order that has left pending.
var ErrNotPending = httperr.Constraint(`order cannot be deleted unless order status = "pending"`)

// Delete removes the order with id if it is still pending. Any other status
// leaves the collection untouched.
func (s *OrderService) Delete(id string) error {
	o, ok := s.orders.Find(id)
	if !ok {
		return httperr.NotFound("Order id not found: %s", id)
	}
	if o.Status != models.StatusPending {
		return ErrNotPending
	}

	removed := o.Clone()
	s.orders.Remove(id)
	s.bus.Fire(events.OrderDeleted, removed)
	return nil
}
