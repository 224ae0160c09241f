package cache

import (
	"context"
	"fmt"

	"github.com/richardzimring/heatmap/src/models"
)

// ErrNotFound signals a clean cache miss, as opposed to an unreachable
// store.
var ErrNotFound = fmt.Errorf("cache: entry not found")

// Store is the key-value cache for computed options data, keyed by ticker
// symbol. Put overwrites (idempotent under retries); the store is expected
// to expire entries on its own around CacheEntry.ExpiresAt, but readers
// still re-check the entry's own timestamp.
type Store interface {
	Get(ctx context.Context, ticker string) (*models.CacheEntry, error)
	Put(ctx context.Context, entry *models.CacheEntry) error
}

// TickerStore persists the tradable-ticker directory, written by the
// refresh job and read by the /tickers endpoint.
type TickerStore interface {
	GetTickers(ctx context.Context) ([]models.Ticker, error)
	PutTickers(ctx context.Context, tickers []models.Ticker) error
}
