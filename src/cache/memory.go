package cache

import (
	"context"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/richardzimring/heatmap/src/models"
)

// MemoryStore is an in-process Store with the same TTL semantics as the
// Redis adapter. It backs unit tests and single-node deployments without
// a Redis instance.
type MemoryStore struct {
	c *gocache.Cache
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		c: gocache.New(gocache.NoExpiration, 10*time.Minute),
	}
}

func (s *MemoryStore) Get(ctx context.Context, ticker string) (*models.CacheEntry, error) {
	v, found := s.c.Get(optionsKey(ticker))
	if !found {
		return nil, ErrNotFound
	}

	return v.(*models.CacheEntry), nil
}

func (s *MemoryStore) Put(ctx context.Context, entry *models.CacheEntry) error {
	ttl := time.Until(entry.ExpiresAt)
	if ttl < minEntryTTL {
		ttl = minEntryTTL
	}

	s.c.Set(optionsKey(entry.Ticker), entry, ttl)
	return nil
}

func (s *MemoryStore) GetTickers(ctx context.Context) ([]models.Ticker, error) {
	v, found := s.c.Get(tickersKey)
	if !found {
		return nil, ErrNotFound
	}

	return v.([]models.Ticker), nil
}

func (s *MemoryStore) PutTickers(ctx context.Context, tickers []models.Ticker) error {
	s.c.Set(tickersKey, tickers, gocache.NoExpiration)
	return nil
}
