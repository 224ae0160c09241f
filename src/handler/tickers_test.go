package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richardzimring/heatmap/src/cache"
	"github.com/richardzimring/heatmap/src/models"
	"github.com/richardzimring/heatmap/src/services"
)

func TestGetTickers(t *testing.T) {
	t.Run("serves the stored directory with a cache header", func(t *testing.T) {
		store := cache.NewMemoryStore()
		require.NoError(t, store.PutTickers(context.Background(), []models.Ticker{
			{Symbol: "AAPL", Name: "Apple Inc"},
			{Symbol: "MSFT", Name: "Microsoft Corp"},
		}))

		h := NewTickersHandler(services.NewTickerService(store))

		req := httptest.NewRequest(http.MethodGet, "/tickers", nil)
		rec := httptest.NewRecorder()
		h.GetTickers(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "public, max-age=3600", rec.Header().Get("Cache-Control"))

		var tickers []models.Ticker
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tickers))
		require.Len(t, tickers, 2)
		assert.Equal(t, "AAPL", tickers[0].Symbol)
		assert.Equal(t, "Apple Inc", tickers[0].Name)
	})

	t.Run("empty store is a 500", func(t *testing.T) {
		h := NewTickersHandler(services.NewTickerService(cache.NewMemoryStore()))

		req := httptest.NewRequest(http.MethodGet, "/tickers", nil)
		rec := httptest.NewRecorder()
		h.GetTickers(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.JSONEq(t, `{"error":"failed to load tickers"}`, rec.Body.String())
	})
}
