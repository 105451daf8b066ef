package controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/grubdash/app/events"
	"github.com/shashiranjanraj/grubdash/app/models"
	"github.com/shashiranjanraj/grubdash/app/providers"
	"github.com/shashiranjanraj/grubdash/app/repositories"
	"github.com/shashiranjanraj/grubdash/app/routes"
	"github.com/shashiranjanraj/grubdash/config"
	"github.com/shashiranjanraj/grubdash/database/seeders"
	"github.com/shashiranjanraj/grubdash/pkg/app"
	"github.com/shashiranjanraj/grubdash/pkg/container"
	"github.com/shashiranjanraj/grubdash/pkg/router"
	"github.com/shashiranjanraj/grubdash/pkg/testkit"
)

const (
	bagelID      = "90c3d873684bf381dfab29034b5bba73"
	eggsID       = "3c637d011d844ebab1205fef8a7e36ea"
	deliveringID = "f6069a542257054114138301947672ba"
	pendingID    = "5a887d326e83d3c5bdcbee398ea32aff"
)

func fixtures() *seeders.Data {
	return &seeders.Data{
		Dishes: []models.Dish{
			{ID: bagelID, Name: "Falafel and tahini bagel", Description: "A warm bagel filled with falafel and tahini", Price: 6, ImageURL: "https://example.com/bagel.jpg"},
			{ID: eggsID, Name: "Century Eggs", Description: "Whole eggs preserved in clay and ash", Price: 17, ImageURL: "https://example.com/eggs.jpg"},
		},
		Orders: []models.Order{
			{
				ID: deliveringID, DeliverTo: "1600 Pennsylvania Avenue NW", MobileNumber: "(202) 456-1111", Status: models.StatusOutForDelivery,
				Dishes: []models.LineItem{{"id": bagelID, "name": "Falafel and tahini bagel", "price": float64(6), "quantity": float64(1)}},
			},
			{
				ID: pendingID, DeliverTo: "308 Negra Arroyo Lane", MobileNumber: "(505) 143-3369", Status: models.StatusPending,
				Dishes: []models.LineItem{{"id": eggsID, "name": "Century Eggs", "price": float64(17), "quantity": float64(2)}},
			},
		},
	}
}

// api is a fully wired GrubDash handler over fresh stores.
type api struct {
	handler http.Handler
	dishes  *repositories.MemoryDishStore
	orders  *repositories.MemoryOrderStore
	events  *testkit.EventRecorder
}

func newAPI(t *testing.T, basePath string) *api {
	t.Helper()

	cfg := config.Defaults()
	cfg.HTTP.BasePath = basePath

	c := providers.Register(cfg, fixtures(), nil)
	services := providers.Resolve(c)

	handler := app.New(cfg).
		Routes(func(r *router.Router) {
			routes.RegisterAPI(r, services, cfg.HTTP.BasePath)
			routes.RegisterSystem(r, services)
		}).
		Handler()

	return &api{
		handler: handler,
		dishes:  container.MustMake[*repositories.MemoryDishStore](c, providers.KeyDishStore),
		orders:  container.MustMake[*repositories.MemoryOrderStore](c, providers.KeyOrderStore),
		events: testkit.RecordEvents(services.Bus,
			events.DishCreated, events.DishUpdated,
			events.OrderCreated, events.OrderUpdated, events.OrderDeleted),
	}
}

// do sends body wrapped in the {data: ...} envelope. A nil body sends none.
func (a *api) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(map[string]any{"data": body})
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func (a *api) raw(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	a.handler.ServeHTTP(rec, req)
	return rec
}

func dataOf[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var env struct {
		Data  T      `json:"data"`
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	require.Empty(t, env.Error)
	return env.Data
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var env struct {
		Data  any    `json:"data"`
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	require.Nil(t, env.Data)
	return env.Error
}

func mustJSON(t *testing.T, v any) []byte {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return raw
}

func dishIDs(list []models.Dish) []string {
	ids := make([]string, len(list))
	for i, d := range list {
		ids[i] = d.ID
	}
	return ids
}

func orderIDs(list []models.Order) []string {
	ids := make([]string, len(list))
	for i, o := range list {
		ids[i] = o.ID
	}
	return ids
}
