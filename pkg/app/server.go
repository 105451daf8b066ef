package app

import (
	"context"

	"github.com/shashiranjanraj/grubdash/internal/server"
)

// startServer builds the handler and hands it to internal/server for the
// listen, serve and drain lifecycle.
func startServer(ctx context.Context, a *Application) error {
	srv := server.New(a.cfg, a.Handler())
	return srv.Run(ctx)
}
