// Package ctx provides the request context GrubDash handlers receive.
//
// Instead of accepting (http.ResponseWriter, *http.Request), a handler
// receives a single *Context with helpers for path params and the JSON
// envelopes:
//
//	func ShowDish(c *ctx.Context) {
//	    dish, ok := store.Find(c.Param("dishId"))
//	    if !ok {
//	        c.Fail(httperr.NotFound("Dish id not found: %s", c.Param("dishId")))
//	        return
//	    }
//	    c.OK(dish)
//	}
//
//	router.Get("/dishes/{dishId}", "dishes.show", ctx.Wrap(ShowDish))
package ctx

import (
	"context"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/shashiranjanraj/grubdash/pkg/httperr"
	"github.com/shashiranjanraj/grubdash/pkg/logger"
	"github.com/shashiranjanraj/grubdash/pkg/metrics"
	"github.com/shashiranjanraj/grubdash/pkg/response"
)

// HandlerFunc is the context-aware handler signature.
type HandlerFunc func(c *Context)

// Wrap converts a HandlerFunc to a standard http.HandlerFunc.
func Wrap(h HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := acquire(w, r)
		defer release(c)
		h(c)
	}
}

// ─── Context ──────────────────────────────────────────────────────────────────

type Context struct {
	W http.ResponseWriter
	R *http.Request
}

var pool = sync.Pool{
	New: func() any { return &Context{} },
}

func acquire(w http.ResponseWriter, r *http.Request) *Context {
	c := pool.Get().(*Context)
	c.W = w
	c.R = r
	return c
}

func release(c *Context) {
	c.W = nil
	c.R = nil
	pool.Put(c)
}

// ─── Request helpers ──────────────────────────────────────────────────────────

// Param returns a URL path parameter ("/dishes/{dishId}" → c.Param("dishId")).
func (c *Context) Param(key string) string {
	return chi.URLParam(c.R, key)
}

func (c *Context) Method() string { return c.R.Method }

func (c *Context) Path() string { return c.R.URL.Path }

func (c *Context) Context() context.Context { return c.R.Context() }

// Log returns the per-request logger.
func (c *Context) Log() *zerolog.Logger { return logger.WithCtx(c.R.Context()) }

// ─── Response helpers ─────────────────────────────────────────────────────────

// Data sends {"data": v} with the given status.
func (c *Context) Data(code int, v any) {
	response.Data(c.W, code, v)
}

// OK sends a 200 with data.
func (c *Context) OK(v any) { c.Data(http.StatusOK, v) }

// Created sends a 201 with data.
func (c *Context) Created(v any) { c.Data(http.StatusCreated, v) }

// NoContent sends a bare 204.
func (c *Context) NoContent() {
	response.NoContent(c.W)
}

// Error sends {"error": message} with the given status.
func (c *Context) Error(code int, message string) {
	response.Error(c.W, code, message)
}

// Fail is the central error responder. It renders err as {"error": ...},
// logs it and counts it. Errors that are not *httperr.Error become a 500
// with a generic message.
func (c *Context) Fail(err error) {
	he := httperr.From(err)

	log := c.Log()
	evt := log.Warn()
	if he.Status >= http.StatusInternalServerError {
		evt = log.Error().Err(he.Err)
	}
	evt.Str("kind", string(he.Kind)).
		Int("status", he.Status).
		Str("method", c.R.Method).
		Str("path", c.R.URL.Path).
		Msg(he.Message)

	metrics.RecordChainFailure(string(he.Kind), he.Status)
	c.Error(he.Status, he.Message)
}
