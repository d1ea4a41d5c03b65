package main

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestMountRegistersResourceRoutes(t *testing.T) {
	app := newTestApp(t)

	mux, ok := app.mount().(chi.Routes)
	require.True(t, ok)

	id := primitive.NewObjectID().Hex()

	routes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/health"},
		{http.MethodGet, "/api/v1/orders"},
		{http.MethodGet, "/api/v1/orders/pending"},
		{http.MethodGet, "/api/v1/orders/" + id},
		{http.MethodGet, "/api/v1/tables/with-orders"},
		{http.MethodGet, "/api/v1/tables/" + id},
		{http.MethodGet, "/api/v1/products/" + id},
		{http.MethodGet, "/api/v1/staff"},
		{http.MethodGet, "/api/v1/staff/" + id},
		{http.MethodPut, "/api/v1/staff/" + id},
		{http.MethodGet, "/api/v1/reports/export"},
		{http.MethodPost, "/api/v1/menus/import"},
	}

	for _, route := range routes {
		rctx := chi.NewRouteContext()
		assert.True(t, mux.Match(rctx, route.method, route.path), "%s %s", route.method, route.path)
	}
}
