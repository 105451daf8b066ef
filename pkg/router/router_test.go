package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) }

func newTestRouter() *Router {
	r := New()
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		http.Error(w, "missing "+req.URL.Path, http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusMethodNotAllowed)
	})

	api := r.Group("/api")
	api.Get("/orders", "orders.index", ok)
	api.Post("/orders", "orders.store", ok)
	api.Get("/orders/{orderId}", "orders.show", ok)
	api.Put("/orders/{orderId}", "orders.update", ok)
	api.Delete("/orders/{orderId}", "orders.destroy", ok)
	return r
}

func TestMethodNotAllowedSetsAllow(t *testing.T) {
	r := newTestRouter()

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/orders", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, POST", rec.Header().Get("Allow"))

	rec = httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPatch, "/api/orders/abc", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, "GET, PUT, DELETE", rec.Header().Get("Allow"))
}

func TestNotFound(t *testing.T) {
	r := newTestRouter()

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/nope", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "missing /api/nope")
}

func TestGroupMiddlewareOrder(t *testing.T) {
	r := New()
	var trail []string
	mw := func(tag string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
				trail = append(trail, tag)
				next.ServeHTTP(w, req)
			})
		}
	}
	g := r.Group("/v1", mw("group")).Group("/inner", mw("nested"))
	g.Get("/x", "x", ok, mw("route"))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/inner/x", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"group", "nested", "route"}, trail)
}

func TestRoutesAndURL(t *testing.T) {
	r := newTestRouter()

	routes := r.Routes()
	require.Len(t, routes, 5)
	assert.Equal(t, Route{Method: http.MethodGet, Path: "/api/orders", Name: "orders.index"}, routes[0])
	assert.Equal(t, http.MethodPost, routes[1].Method)
	assert.Equal(t, http.MethodDelete, routes[4].Method)

	url, err := r.URL("orders.show", map[string]string{"orderId": "42"})
	require.NoError(t, err)
	assert.Equal(t, "/api/orders/42", url)

	_, err = r.URL("orders.show", nil)
	assert.Error(t, err)
	_, err = r.URL("nope", nil)
	assert.Error(t, err)
}

func TestJoinPath(t *testing.T) {
	assert.Equal(t, "/", joinPath())
	assert.Equal(t, "/", normalizePath(""))
	assert.Equal(t, "/api/dishes", joinPath("/api/", "/dishes/"))
	assert.Equal(t, "/dishes", joinPath("/", "dishes"))
}
