// Package pipeline runs an ordered list of validation steps before a
// terminal handler.
//
// Every request gets a fresh state value of type S. Steps read the request
// and the state, may add to the state, and either return nil to continue
// or an error to stop the chain. The first error is rendered by
// ctx.Context.Fail and nothing after it runs.
//
//	create := pipeline.New(newDishState, hasName, hasPrice, priceNotNegative).
//	    Then(func(c *ctx.Context, s *dishState) { c.Created(store.Add(s.dish())) })
//
//	router.Post("/dishes", "dishes.store", ctx.Wrap(create))
package pipeline

import (
	"github.com/shashiranjanraj/grubdash/pkg/ctx"
)

// Step checks one aspect of the request.
type Step[S any] func(c *ctx.Context, s *S) error

// Init builds the state for a request, e.g. by decoding the body.
type Init[S any] func(c *ctx.Context) (*S, error)

// Handler runs after every step passed. It owns the response.
type Handler[S any] func(c *ctx.Context, s *S)

type Chain[S any] struct {
	init  Init[S]
	steps []Step[S]
}

// New returns a chain that builds its state with init and runs steps in
// the order given.
func New[S any](init Init[S], steps ...Step[S]) *Chain[S] {
	return &Chain[S]{init: init, steps: append([]Step[S](nil), steps...)}
}

// Run builds the state and applies every step, stopping at the first error.
func (ch *Chain[S]) Run(c *ctx.Context) (*S, error) {
	s, err := ch.init(c)
	if err != nil {
		return nil, err
	}
	for _, step := range ch.steps {
		if err := step(c, s); err != nil {
			return s, err
		}
	}
	return s, nil
}

// Then binds the terminal handler and returns the chain as a handler.
func (ch *Chain[S]) Then(h Handler[S]) ctx.HandlerFunc {
	return func(c *ctx.Context) {
		s, err := ch.Run(c)
		if err != nil {
			c.Fail(err)
			return
		}
		h(c, s)
	}
}
