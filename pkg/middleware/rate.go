// Package middleware provides the HTTP middleware GrubDash mounts on its
// router.
package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/httprate"

	"github.com/shashiranjanraj/grubdash/pkg/response"
)

// RateLimit returns a middleware that limits each client IP to max requests
// per window. Rejected requests get a JSON 429.
// Example: middleware.RateLimit(100, time.Minute)
func RateLimit(max int, window time.Duration) func(http.Handler) http.Handler {
	return httprate.Limit(max, window,
		httprate.WithKeyFuncs(func(r *http.Request) (string, error) {
			return clientIP(r), nil
		}),
		httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
			response.Error(w, http.StatusTooManyRequests, "Too Many Requests")
		}),
	)
}

// clientIP returns the first X-Forwarded-For hop, else the remote address
// without its port.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		return strings.TrimSpace(strings.SplitN(fwd, ",", 2)[0])
	}
	ip := r.RemoteAddr
	if idx := strings.LastIndex(ip, ":"); idx != -1 {
		ip = ip[:idx]
	}
	return ip
}
