package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/richardzimring/heatmap/src/models"
)

const tickersKey = "tickers"

// minEntryTTL keeps a put from being rejected when the computed
// expiration is already in the past (e.g. clock skew around market open).
const minEntryTTL = time.Minute

// RedisStore is the durable cache adapter. Entries are stored as JSON
// with a TTL derived from the entry's expiration, so Redis expires them
// on its own in addition to the explicit expires_at check on read.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore connects to Redis and pings it to ensure it is reachable.
func NewRedisStore(ctx context.Context, addr, password string, db int) (*RedisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("NewRedisStore: redis ping: %w", err)
	}

	return &RedisStore{rdb: rdb}, nil
}

func (s *RedisStore) Close() error {
	return s.rdb.Close()
}

func optionsKey(ticker string) string {
	return fmt.Sprintf("options:%s", ticker)
}

func (s *RedisStore) Get(ctx context.Context, ticker string) (*models.CacheEntry, error) {
	b, err := s.rdb.Get(ctx, optionsKey(ticker)).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("RedisStore.Get: %w", err)
	}

	var entry models.CacheEntry
	if err := json.Unmarshal(b, &entry); err != nil {
		return nil, fmt.Errorf("RedisStore.Get: failed to decode entry for %s: %w", ticker, err)
	}

	return &entry, nil
}

func (s *RedisStore) Put(ctx context.Context, entry *models.CacheEntry) error {
	b, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("RedisStore.Put: failed to encode entry for %s: %w", entry.Ticker, err)
	}

	ttl := time.Until(entry.ExpiresAt)
	if ttl < minEntryTTL {
		ttl = minEntryTTL
	}

	if err := s.rdb.Set(ctx, optionsKey(entry.Ticker), b, ttl).Err(); err != nil {
		return fmt.Errorf("RedisStore.Put: %w", err)
	}

	return nil
}

func (s *RedisStore) GetTickers(ctx context.Context) ([]models.Ticker, error) {
	b, err := s.rdb.Get(ctx, tickersKey).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("RedisStore.GetTickers: %w", err)
	}

	var tickers []models.Ticker
	if err := json.Unmarshal(b, &tickers); err != nil {
		return nil, fmt.Errorf("RedisStore.GetTickers: failed to decode tickers: %w", err)
	}

	return tickers, nil
}

func (s *RedisStore) PutTickers(ctx context.Context, tickers []models.Ticker) error {
	b, err := json.Marshal(tickers)
	if err != nil {
		return fmt.Errorf("RedisStore.PutTickers: failed to encode tickers: %w", err)
	}

	// The directory has no natural expiry; the refresh job overwrites it.
	if err := s.rdb.Set(ctx, tickersKey, b, 0).Err(); err != nil {
		return fmt.Errorf("RedisStore.PutTickers: %w", err)
	}

	return nil
}
