package controllers

import (
	"fmt"

	"github.com/shashiranjanraj/grubdash/app/models"
	"github.com/shashiranjanraj/grubdash/app/services"
	"github.com/shashiranjanraj/grubdash/pkg/bind"
	"github.com/shashiranjanraj/grubdash/pkg/ctx"
	"github.com/shashiranjanraj/grubdash/pkg/httperr"
	"github.com/shashiranjanraj/grubdash/pkg/pipeline"
	"github.com/shashiranjanraj/grubdash/pkg/validate"
)

// dishState accumulates what the dish chain has validated so far.
type dishState struct {
	id   string
	body validate.Fields

	found *models.Dish

	name        string
	description string
	imageURL    string
	price       float64
}

func (s *dishState) dish() models.Dish {
	return models.Dish{
		Name:        s.name,
		Description: s.description,
		Price:       s.price,
		ImageURL:    s.imageURL,
	}
}

type DishController struct {
	service *services.DishService

	index  *pipeline.Chain[dishState]
	show   *pipeline.Chain[dishState]
	store  *pipeline.Chain[dishState]
	update *pipeline.Chain[dishState]
}

func NewDishController(service *services.DishService) *DishController {
	c := &DishController{service: service}

	c.index = pipeline.New(dishParams)
	c.show = pipeline.New(dishParams, c.dishExists)
	c.store = pipeline.New(dishPayload,
		dishHasName,
		dishHasDescription,
		dishHasPrice,
		dishPriceNotNegative,
		dishHasImage,
	)
	c.update = pipeline.New(dishPayload,
		c.dishExists,
		dishIDMatchesPath,
		dishHasName,
		dishHasDescription,
		dishHasImage,
		dishHasPrice,
		dishPriceNotNegative,
		dishPricePositive,
	)
	return c
}

// Index handles GET /dishes.
func (dc *DishController) Index() ctx.HandlerFunc {
	return dc.index.Then(func(c *ctx.Context, _ *dishState) {
		c.OK(dc.service.List(c.Context()))
	})
}

// Show handles GET /dishes/{dishId}.
func (dc *DishController) Show() ctx.HandlerFunc {
	return dc.show.Then(func(c *ctx.Context, s *dishState) {
		c.OK(s.found)
	})
}

// Store handles POST /dishes.
func (dc *DishController) Store() ctx.HandlerFunc {
	return dc.store.Then(func(c *ctx.Context, s *dishState) {
		c.Created(dc.service.Create(s.dish()))
	})
}

// Update handles PUT /dishes/{dishId}.
func (dc *DishController) Update() ctx.HandlerFunc {
	return dc.update.Then(func(c *ctx.Context, s *dishState) {
		d, _ := dc.service.Update(s.id, s.dish())
		c.OK(d)
	})
}

// ─── Chain state ──────────────────────────────────────────────────────────────

func dishParams(c *ctx.Context) (*dishState, error) {
	return &dishState{id: c.Param("dishId"), body: validate.Fields{}}, nil
}

func dishPayload(c *ctx.Context) (*dishState, error) {
	body, err := bind.Envelope(c.R)
	if err != nil {
		return nil, err
	}
	return &dishState{id: c.Param("dishId"), body: body}, nil
}

// ─── Steps ────────────────────────────────────────────────────────────────────

func (dc *DishController) dishExists(_ *ctx.Context, s *dishState) error {
	d, ok := dc.service.Find(s.id)
	if !ok {
		return httperr.NotFound("Dish id not found: %s", s.id)
	}
	s.found = d
	return nil
}

func dishIDMatchesPath(_ *ctx.Context, s *dishState) error {
	return idMatchesPath(s.body, s.id, "dataId")
}

func dishHasName(_ *ctx.Context, s *dishState) error {
	v, err := requireString(s.body, "name", "A")
	s.name = v
	return err
}

func dishHasDescription(_ *ctx.Context, s *dishState) error {
	v, err := requireString(s.body, "description", "A")
	s.description = v
	return err
}

func dishHasImage(_ *ctx.Context, s *dishState) error {
	v, err := requireString(s.body, "image_url", "An")
	s.imageURL = v
	return err
}

// dishHasPrice accepts 0 as a price; only a missing or null price fails.
func dishHasPrice(_ *ctx.Context, s *dishState) error {
	if !s.body.Valid("price", "present") {
		return requiredErr("A", "price")
	}
	if !s.body.Valid("price", "numeric") {
		return httperr.Validation("price must be a number.")
	}
	s.price, _ = s.body.Num("price")
	return nil
}

// dishPriceNotNegative rejects prices of -1 and below. Fractions between
// -1 and 0 pass.
func dishPriceNotNegative(_ *ctx.Context, s *dishState) error {
	if !s.body.Valid("price", "numeric|gt=-1") {
		return httperr.Validation("price cannot be less than 0.")
	}
	return nil
}

// dishPricePositive checks the price already accepted by dishHasPrice.
func dishPricePositive(_ *ctx.Context, s *dishState) error {
	if !(s.price > 0) {
		return httperr.Validation("price must be an integer greater than 0.")
	}
	return nil
}

// ─── Shared rules ─────────────────────────────────────────────────────────────

func requiredErr(article, field string) error {
	return httperr.Validation("%s '%s' property is required.", article, field)
}

// requireString returns the non-empty string at field.
func requireString(body validate.Fields, field, article string) (string, error) {
	if !body.Valid(field, "required|string") {
		return "", requiredErr(article, field)
	}
	return body.Str(field), nil
}

// idMatchesPath allows a body id only when it is absent, null, "" or equal
// to the path id. label names the path parameter in the message.
func idMatchesPath(body validate.Fields, pathID, label string) error {
	id := body.Get("id")
	if id == nil || id == "" || id == pathID {
		return nil
	}
	return httperr.Constraint("id %s must match %s provided in parameters", formatID(id), label)
}

func formatID(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}
