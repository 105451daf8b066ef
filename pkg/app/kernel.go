package app

import (
	"net/http"
	"time"

	"github.com/shashiranjanraj/grubdash/pkg/bind"
	"github.com/shashiranjanraj/grubdash/pkg/ctx"
	"github.com/shashiranjanraj/grubdash/pkg/httperr"
	"github.com/shashiranjanraj/grubdash/pkg/metrics"
	"github.com/shashiranjanraj/grubdash/pkg/middleware"
	"github.com/shashiranjanraj/grubdash/pkg/reqid"
	"github.com/shashiranjanraj/grubdash/pkg/router"
)

// buildHandler sets up the global middleware and the fallback handlers,
// then calls the route-registration callbacks.
func buildHandler(a *Application) *router.Router {
	cfg := a.cfg
	bind.MaxBodyBytes = cfg.HTTP.MaxBodyBytes

	r := router.New()

	// Global middleware stack (outermost → innermost):
	//  1. Prometheus metrics, outermost for accurate total latency
	//  2. Recovery, catches panics before they kill the goroutine
	//  3. Request ID, injected before anything logs
	//  4. Logger, logs request_id from context
	//  5. CORS
	//  6. Rate limiter, when configured
	r.Use(metrics.Middleware())
	r.Use(middleware.Recovery)
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.CORS(corsOptions(cfg.HTTP.CORSOrigins)))
	if cfg.HTTP.RateLimit > 0 {
		r.Use(middleware.RateLimit(cfg.HTTP.RateLimit, time.Minute))
	}

	r.NotFound(ctx.Wrap(func(c *ctx.Context) {
		c.Fail(httperr.NotFound("Path not found: %s", c.Path()))
	}))
	r.MethodNotAllowed(ctx.Wrap(func(c *ctx.Context) {
		c.Fail(httperr.MethodNotAllowed(c.Method(), c.Path()))
	}))

	// Prometheus endpoint, outside the API base path.
	r.Handle(http.MethodGet, "/metrics", "system.metrics", metrics.Handler())

	for _, fn := range a.routesFns {
		fn(r)
	}
	return r
}

func corsOptions(origins []string) middleware.CORSOptions {
	opts := middleware.DefaultCORSOptions()
	if len(origins) > 0 {
		opts.AllowedOrigins = origins
	}
	return opts
}
