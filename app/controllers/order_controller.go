package controllers

import (
	"strings"

	"github.com/shashiranjanraj/grubdash/app/models"
	"github.com/shashiranjanraj/grubdash/app/services"
	"github.com/shashiranjanraj/grubdash/pkg/bind"
	"github.com/shashiranjanraj/grubdash/pkg/ctx"
	"github.com/shashiranjanraj/grubdash/pkg/httperr"
	"github.com/shashiranjanraj/grubdash/pkg/pipeline"
	"github.com/shashiranjanraj/grubdash/pkg/validate"
)

// orderState accumulates what the order chain has validated so far.
type orderState struct {
	id   string
	body validate.Fields

	found *models.Order

	deliverTo    string
	mobileNumber string
	status       string
	dishes       []any
	items        []models.LineItem
}

func (s *orderState) order() models.Order {
	return models.Order{
		DeliverTo:    s.deliverTo,
		MobileNumber: s.mobileNumber,
		Status:       s.status,
		Dishes:       s.items,
	}
}

var statusRule = "in=" + strings.Join(models.Statuses, ",")

type OrderController struct {
	service *services.OrderService

	index   *pipeline.Chain[orderState]
	show    *pipeline.Chain[orderState]
	store   *pipeline.Chain[orderState]
	update  *pipeline.Chain[orderState]
	destroy *pipeline.Chain[orderState]
}

func NewOrderController(service *services.OrderService) *OrderController {
	c := &OrderController{service: service}

	c.index = pipeline.New(orderParams)
	c.show = pipeline.New(orderParams, c.orderExists)
	c.store = pipeline.New(orderPayload,
		orderHasDeliverTo,
		orderHasMobileNumber,
		orderHasDishes,
		orderDishesNotEmpty,
		orderDishesHaveQuantity,
	)
	c.update = pipeline.New(orderPayload,
		c.orderExists,
		orderIDMatchesPath,
		orderHasDeliverTo,
		orderHasMobileNumber,
		orderHasDishes,
		orderHasStatus,
		orderStatusValid,
		orderDishesNotEmpty,
		orderDishesHaveQuantity,
	)
	c.destroy = pipeline.New(orderParams, c.orderExists)
	return c
}

// Index handles GET /orders.
func (oc *OrderController) Index() ctx.HandlerFunc {
	return oc.index.Then(func(c *ctx.Context, _ *orderState) {
		c.OK(oc.service.List())
	})
}

// Show handles GET /orders/{orderId}.
func (oc *OrderController) Show() ctx.HandlerFunc {
	return oc.show.Then(func(c *ctx.Context, s *orderState) {
		c.OK(s.found)
	})
}

// Store handles POST /orders.
func (oc *OrderController) Store() ctx.HandlerFunc {
	return oc.store.Then(func(c *ctx.Context, s *orderState) {
		c.Created(oc.service.Create(s.order()))
	})
}

// Update handles PUT /orders/{orderId}.
func (oc *OrderController) Update() ctx.HandlerFunc {
	return oc.update.Then(func(c *ctx.Context, s *orderState) {
		o, _ := oc.service.Update(s.id, s.order())
		c.OK(o)
	})
}

// Destroy handles DELETE /orders/{orderId}. Only pending orders go.
func (oc *OrderController) Destroy() ctx.HandlerFunc {
	return oc.destroy.Then(func(c *ctx.Context, s *orderState) {
		if err := oc.service.Delete(s.id); err != nil {
			c.Fail(err)
			return
		}
		c.NoContent()
	})
}

// ─── Chain state ──────────────────────────────────────────────────────────────

func orderParams(c *ctx.Context) (*orderState, error) {
	return &orderState{id: c.Param("orderId"), body: validate.Fields{}}, nil
}

func orderPayload(c *ctx.Context) (*orderState, error) {
	body, err := bind.Envelope(c.R)
	if err != nil {
		return nil, err
	}
	return &orderState{id: c.Param("orderId"), body: body}, nil
}

// ─── Steps ────────────────────────────────────────────────────────────────────

func (oc *OrderController) orderExists(_ *ctx.Context, s *orderState) error {
	o, ok := oc.service.Find(s.id)
	if !ok {
		return httperr.NotFound("Order id not found: %s", s.id)
	}
	s.found = o
	return nil
}

func orderIDMatchesPath(_ *ctx.Context, s *orderState) error {
	return idMatchesPath(s.body, s.id, "orderId")
}

func orderHasDeliverTo(_ *ctx.Context, s *orderState) error {
	v, err := requireString(s.body, "deliverTo", "A")
	s.deliverTo = v
	return err
}

func orderHasMobileNumber(_ *ctx.Context, s *orderState) error {
	v, err := requireString(s.body, "mobileNumber", "A")
	s.mobileNumber = v
	return err
}

func orderHasStatus(_ *ctx.Context, s *orderState) error {
	v, err := requireString(s.body, "status", "A")
	s.status = v
	return err
}

// orderStatusValid matches the status exactly against the known statuses.
func orderStatusValid(_ *ctx.Context, s *orderState) error {
	if !s.body.Valid("status", statusRule) {
		return httperr.Validation("status property must be valid string: 'pending', 'preparing', 'out-for-delivery', or 'delivered'")
	}
	return nil
}

func orderHasDishes(_ *ctx.Context, s *orderState) error {
	if !s.body.Valid("dishes", "required") {
		return requiredErr("A", "dishes")
	}
	return nil
}

func orderDishesNotEmpty(_ *ctx.Context, s *orderState) error {
	if !s.body.Valid("dishes", "array|min_items=1") {
		return httperr.Validation("invalid dishes property: dishes property must be non-empty array")
	}
	s.dishes = s.body.Slice("dishes")
	return nil
}

// orderDishesHaveQuantity stops at the first line item without a positive
// integer quantity and names its index. Valid items are kept verbatim.
func orderDishesHaveQuantity(_ *ctx.Context, s *orderState) error {
	items := make([]models.LineItem, 0, len(s.dishes))
	for i, entry := range s.dishes {
		item, _ := entry.(map[string]any)
		if !validate.Fields(item).Valid("quantity", "required|integer|gt=0") {
			return httperr.Validation("dish %d must have a quantity that is an integer greater than 0", i)
		}
		items = append(items, models.LineItem(item).Clone())
	}
	s.items = items
	return nil
}
