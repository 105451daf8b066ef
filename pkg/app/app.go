// Package app assembles the GrubDash HTTP application.
//
// It holds no project code of its own: routes are attached through
// callbacks, so the same kernel serves the binary, the CLI and tests.
//
//	a := app.New(cfg).
//	    Routes(func(r *router.Router) {
//	        routes.RegisterAPI(r, services, cfg.HTTP.BasePath)
//	    }).
//	    OnShutdown(services.Close)
//
//	err := a.Serve(ctx)
package app

import (
	"context"
	"errors"
	"net/http"

	"github.com/shashiranjanraj/grubdash/config"
	"github.com/shashiranjanraj/grubdash/pkg/router"
)

// Application is the central configuration object of the service.
// Build one with New, attach routes, then call Serve or Handler.
type Application struct {
	cfg        *config.Config
	routesFns  []func(*router.Router)
	onShutdown []func() error
}

// New creates an Application for cfg. A nil cfg uses config.Get().
func New(cfg *config.Config) *Application {
	if cfg == nil {
		cfg = config.Get()
	}
	return &Application{cfg: cfg}
}

// Routes registers a route-registration callback that runs when the
// handler is built. Callbacks run in the order they were added.
func (a *Application) Routes(fn func(*router.Router)) *Application {
	a.routesFns = append(a.routesFns, fn)
	return a
}

// OnShutdown registers a hook that runs after the server has drained.
func (a *Application) OnShutdown(fn func() error) *Application {
	a.onShutdown = append(a.onShutdown, fn)
	return a
}

func (a *Application) Config() *config.Config { return a.cfg }

// Handler builds the full middleware and route stack.
func (a *Application) Handler() http.Handler {
	return buildHandler(a).Handler()
}

// Serve listens on the configured port until ctx is cancelled, then shuts
// down gracefully and runs the shutdown hooks.
func (a *Application) Serve(ctx context.Context) error {
	err := startServer(ctx, a)

	var errs []error
	if err != nil {
		errs = append(errs, err)
	}
	for _, fn := range a.onShutdown {
		if herr := fn(); herr != nil {
			errs = append(errs, herr)
		}
	}
	return errors.Join(errs...)
}
