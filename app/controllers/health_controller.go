package controllers

import (
	"context"
	"net/http"
	"time"

	"github.com/shashiranjanraj/grubdash/pkg/cache"
	"github.com/shashiranjanraj/grubdash/pkg/ctx"
)

const pingTimeout = time.Second

// HealthController serves GET /status for load balancers and uptime checks.
type HealthController struct {
	env     string
	menu    *cache.Store
	started time.Time
	now     func() time.Time
}

func NewHealthController(env string, menu *cache.Store) *HealthController {
	return &HealthController{env: env, menu: menu, started: time.Now(), now: time.Now}
}

// Status reports "healthy", or "degraded" when the menu cache is configured
// but unreachable. The dish and order routes keep working without the
// cache, so both answer 200.
func (hc *HealthController) Status() ctx.HandlerFunc {
	return func(c *ctx.Context) {
		status := "healthy"
		checks := map[string]string{"cache": "disabled"}

		if hc.menu.Enabled() {
			pctx, cancel := context.WithTimeout(c.Context(), pingTimeout)
			defer cancel()

			if err := hc.menu.Ping(pctx); err != nil {
				c.Log().Warn().Err(err).Msg("menu cache ping failed")
				status = "degraded"
				checks["cache"] = err.Error()
			} else {
				checks["cache"] = "ok"
			}
		}

		now := hc.now()
		c.Data(http.StatusOK, map[string]any{
			"status":      status,
			"environment": hc.env,
			"timestamp":   now.UTC(),
			"uptime":      now.Sub(hc.started).Round(time.Second).String(),
			"checks":      checks,
		})
	}
}
