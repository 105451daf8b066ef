package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shashiranjanraj/grubdash/app/providers"
	"github.com/shashiranjanraj/grubdash/app/routes"
	"github.com/shashiranjanraj/grubdash/config"
	"github.com/shashiranjanraj/grubdash/pkg/app"
	"github.com/shashiranjanraj/grubdash/pkg/logger"
	"github.com/shashiranjanraj/grubdash/pkg/router"
)

var (
	portFlag     string
	basePathFlag string
)

// grubdash serve: start the HTTP server.
var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"run", "start"},
	Short:   "Start the HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		a, err := boot(ctx)
		if err != nil {
			return err
		}
		return a.Serve(ctx)
	},
}

// grubdash route:list: print all bound routes.
var routeListCmd = &cobra.Command{
	Use:     "route:list",
	Aliases: []string{"routes"},
	Short:   "List all bound routes",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := boot(cmd.Context())
		if err != nil {
			return err
		}
		return a.RouteList(cmd.OutOrStdout())
	},
}

func init() {
	for _, c := range []*cobra.Command{serveCmd, routeListCmd} {
		c.Flags().StringVarP(&portFlag, "port", "p", "", "listen port (overrides GRUBDASH_APP_PORT)")
		c.Flags().StringVar(&basePathFlag, "base-path", "", "mount the API below this path (overrides GRUBDASH_HTTP_BASE_PATH)")
	}
}

// loadConfig reads the environment and applies command-line overrides.
func loadConfig() (*config.Config, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}
	cfg := *config.Get()
	if portFlag != "" {
		cfg.App.Port = portFlag
	}
	if basePathFlag != "" {
		cfg.HTTP.BasePath = basePathFlag
	}
	config.Set(&cfg)
	logger.Setup(&cfg)
	return &cfg, nil
}

// boot builds the application with every route attached.
func boot(ctx context.Context) (*app.Application, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	services, err := providers.Boot(ctx, cfg)
	if err != nil {
		return nil, err
	}

	return app.New(cfg).
		Routes(func(r *router.Router) {
			routes.RegisterAPI(r, services, cfg.HTTP.BasePath)
			routes.RegisterSystem(r, services)
		}).
		OnShutdown(services.Close), nil
}
