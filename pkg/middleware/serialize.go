package middleware

import (
	"net/http"
	"sync"
)

// Serialize runs wrapped requests one at a time. The in-memory stores do
// no locking of their own; every route that touches them sits behind the
// same Serialize instance.
func Serialize() func(http.Handler) http.Handler {
	var mu sync.Mutex

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			mu.Lock()
			defer mu.Unlock()
			next.ServeHTTP(w, r)
		})
	}
}
