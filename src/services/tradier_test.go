package services

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richardzimring/heatmap/src/models"
)

func newTradierTestServer(t *testing.T, handler http.HandlerFunc) *TradierClient {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	return NewTradierClient(server.URL, "test-token")
}

func TestFetchQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("derives the midpoint price and signed changes", func(t *testing.T) {
		client := newTradierTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/quotes", r.URL.Path)
			assert.Equal(t, "AAPL", r.URL.Query().Get("symbols"))
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

			fmt.Fprint(w, `{"quotes":{"quote":{
				"symbol":"AAPL","description":"Apple Inc",
				"bid":150.0,"ask":150.46,
				"change":2.5,"change_percentage":1.69}}}`)
		})

		quote, err := client.FetchQuote(ctx, "AAPL")

		require.NoError(t, err)
		assert.Equal(t, "AAPL", quote.Ticker)
		assert.Equal(t, "Apple Inc", quote.Description)
		assert.Equal(t, "150.23", quote.Price)
		assert.Equal(t, "+2.50", quote.Change)
		assert.Equal(t, "+1.69", quote.ChangePercentage)
	})

	t.Run("negative change keeps its sign", func(t *testing.T) {
		client := newTradierTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"quotes":{"quote":{
				"symbol":"AAPL","bid":10,"ask":10,
				"change":-0.333,"change_percentage":-3.25}}}`)
		})

		quote, err := client.FetchQuote(ctx, "AAPL")

		require.NoError(t, err)
		assert.Equal(t, "-0.33", quote.Change)
		assert.Equal(t, "-3.25", quote.ChangePercentage)
	})

	t.Run("null change degrades to 0.00", func(t *testing.T) {
		client := newTradierTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"quotes":{"quote":{"symbol":"AAPL","bid":10,"ask":10,"change":null,"change_percentage":null}}}`)
		})

		quote, err := client.FetchQuote(ctx, "AAPL")

		require.NoError(t, err)
		assert.Equal(t, "0.00", quote.Change)
		assert.Equal(t, "0.00", quote.ChangePercentage)
	})

	t.Run("unmatched symbol is an invalid ticker", func(t *testing.T) {
		client := newTradierTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"quotes":{"unmatched_symbols":{"symbol":"ZZZZZ"}}}`)
		})

		_, err := client.FetchQuote(ctx, "ZZZZZ")

		assert.ErrorIs(t, err, models.ErrInvalidTicker)
	})

	t.Run("non-200 status is an error", func(t *testing.T) {
		client := newTradierTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		})

		_, err := client.FetchQuote(ctx, "AAPL")

		assert.Error(t, err)
	})
}

func TestFetchExpirationDates(t *testing.T) {
	ctx := context.Background()

	t.Run("returns upstream dates in order", func(t *testing.T) {
		client := newTradierTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/options/expirations", r.URL.Path)
			assert.Equal(t, "AAPL", r.URL.Query().Get("symbol"))

			fmt.Fprint(w, `{"expirations":{"date":["2024-01-19","2024-01-26","2024-02-02"]}}`)
		})

		dates, err := client.FetchExpirationDates(ctx, "AAPL")

		require.NoError(t, err)
		assert.Equal(t, []string{"2024-01-19", "2024-01-26", "2024-02-02"}, dates)
	})

	t.Run("null expirations is an invalid ticker", func(t *testing.T) {
		client := newTradierTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"expirations":null}`)
		})

		_, err := client.FetchExpirationDates(ctx, "ZZZZZ")

		assert.ErrorIs(t, err, models.ErrInvalidTicker)
	})
}

func TestFetchOptionChains(t *testing.T) {
	ctx := context.Background()

	t.Run("fetches one chain per date and keeps date order", func(t *testing.T) {
		client := newTradierTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/options/chains", r.URL.Path)
			assert.Equal(t, "true", r.URL.Query().Get("greeks"))

			strike := 150
			if r.URL.Query().Get("expiration") == "2024-01-26" {
				strike = 155
			}

			fmt.Fprintf(w, `{"options":{"option":[{
				"symbol":"AAPL","option_type":"call","strike":%d,
				"bid":1.0,"ask":1.2,
				"greeks":{"delta":0.5,"updated_at":"2024-01-16 14:30:00"}}]}}`, strike)
		})

		chains, updatedAt, err := client.FetchOptionChains(ctx, "AAPL",
			[]string{"2024-01-19", "2024-01-26"},
			[]string{"Jan 19", "Jan 26"})

		require.NoError(t, err)
		require.Len(t, chains, 2)
		require.Len(t, chains[0], 1)
		assert.Equal(t, "150", chains[0][0].Strike)
		assert.Equal(t, "2024-01-19", chains[0][0].Date)
		assert.Equal(t, "Jan 19", chains[0][0].DateStr)
		assert.Equal(t, "155", chains[1][0].Strike)
		assert.Equal(t, "2024-01-16 14:30:00", updatedAt)
	})

	t.Run("a single failed chain fails the batch", func(t *testing.T) {
		client := newTradierTestServer(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Query().Get("expiration") == "2024-01-26" {
				w.WriteHeader(http.StatusBadGateway)
				return
			}

			fmt.Fprint(w, `{"options":{"option":[]}}`)
		})

		_, _, err := client.FetchOptionChains(ctx, "AAPL",
			[]string{"2024-01-19", "2024-01-26"},
			[]string{"Jan 19", "Jan 26"})

		assert.Error(t, err)
	})

	t.Run("mismatched date and label lengths are rejected", func(t *testing.T) {
		client := NewTradierClient(DefaultTradierBaseURL, "unused")

		_, _, err := client.FetchOptionChains(ctx, "AAPL", []string{"2024-01-19"}, nil)

		assert.Error(t, err)
	})
}
