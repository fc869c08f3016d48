package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cart "github.com/karyatoko/storefront/internal/cart/domain"
)

func newCatalogServer(t *testing.T, products map[string]wireProduct) *httptest.Server {
	t.Helper()

	r := mux.NewRouter()
	r.HandleFunc("/products/{id}", func(w http.ResponseWriter, req *http.Request) {
		p, ok := products[mux.Vars(req)["id"]]
		if !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(p)
	}).Methods(http.MethodGet)

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

func TestGetProduct(t *testing.T) {
	ctx := context.Background()

	price, err := cart.NewMoney("500", "USD")
	require.NoError(t, err)
	original, err := cart.NewMoney("650", "USD")
	require.NoError(t, err)

	stock := 5
	ts := newCatalogServer(t, map[string]wireProduct{
		"p1": {ID: "p1", Name: "Desk Lamp", Price: price, OriginalPrice: &original, Stock: &stock, ImageURL: "https://img.example/p1.jpg"},
		"p2": {ID: "p2", Name: "No Stock Info", Price: price},
	})
	lookup := NewLookup(ts.URL, 2*time.Second)

	t.Run("full product", func(t *testing.T) {
		p, err := lookup.GetProduct(ctx, "p1")
		require.NoError(t, err)

		assert.Equal(t, "Desk Lamp", p.Name)
		assert.True(t, price.Equal(p.Price))
		require.NotNil(t, p.OriginalPrice)
		assert.True(t, original.Equal(*p.OriginalPrice))
		assert.Equal(t, 5, p.Stock)
		assert.Equal(t, "https://img.example/p1.jpg", p.ImageURL)
	})

	t.Run("absent stock reads as unknown", func(t *testing.T) {
		p, err := lookup.GetProduct(ctx, "p2")
		require.NoError(t, err)
		assert.Equal(t, cart.StockUnknown, p.Stock)
		assert.Nil(t, p.OriginalPrice)
	})

	t.Run("missing product", func(t *testing.T) {
		_, err := lookup.GetProduct(ctx, "ghost")
		require.ErrorIs(t, err, cart.ErrNotFound)
	})

	t.Run("server down", func(t *testing.T) {
		dead := NewLookup("http://127.0.0.1:1", 200*time.Millisecond)
		_, err := dead.GetProduct(ctx, "p1")
		require.ErrorIs(t, err, cart.ErrNetwork)
	})
}
