package services

import (
	"context"
	"fmt"
	"strconv"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/richardzimring/heatmap/src/cache"
	"github.com/richardzimring/heatmap/src/models"
)

// MaxExpirationDates bounds the chain-fetch fan-out per request.
const MaxExpirationDates = 8

// MarketDataFetcher is the upstream provider capability consumed by the
// orchestrator. *TradierClient implements it.
type MarketDataFetcher interface {
	FetchQuote(ctx context.Context, symbol models.StockSymbol) (*models.Quote, error)
	FetchExpirationDates(ctx context.Context, symbol models.StockSymbol) ([]string, error)
	FetchOptionChains(ctx context.Context, symbol models.StockSymbol, expirationDates []string, expirationDatesStringified []string) ([][]*models.Option, string, error)
}

// OptionsService orchestrates one options-data request: cache lookup,
// fresh fetch on miss, and the write-through of whichever result came out.
type OptionsService struct {
	fetcher     MarketDataFetcher
	store       cache.Store
	strikeRange int
	now         func() time.Time
}

func NewOptionsService(fetcher MarketDataFetcher, store cache.Store) *OptionsService {
	return &OptionsService{
		fetcher:     fetcher,
		store:       store,
		strikeRange: DefaultStrikeRange,
		now:         time.Now,
	}
}

// GetOptionsData returns the aggregate for a ticker, from cache when the
// stored entry is still fresh. Exactly one of the two results is non-nil.
// Failures are returned as data, never as a panic or a missing body, and
// are cached under the same policy as successes so a bad ticker is not
// re-fetched inside the cache window.
func (s *OptionsService) GetOptionsData(ctx context.Context, symbol models.StockSymbol) (*models.OptionsData, *models.ErrorResponse) {
	now := s.now()
	ticker := string(symbol)

	entry, err := s.store.Get(ctx, ticker)
	if err != nil && err != cache.ErrNotFound {
		// An unreachable store is a miss, not a failure: fetch fresh
		// rather than fabricate anything.
		log.Warnf("GetOptionsData: cache read failed for %s: %v", ticker, err)
	}

	if entry.IsValid(now) {
		log.Debugf("GetOptionsData: serving %s from cache", ticker)
		return entry.Data, entry.Error
	}

	log.Infof("GetOptionsData: fetching fresh data for %s", ticker)

	data, err := s.fetchFreshData(ctx, symbol)
	if err != nil {
		errResponse := &models.ErrorResponse{
			Ticker:    ticker,
			UpdatedAt: now.UTC().Format(time.RFC3339),
			Message:   err.Error(),
		}

		s.writeThrough(ctx, &models.CacheEntry{
			Ticker:    ticker,
			ExpiresAt: ComputeExpiration(now),
			Error:     errResponse,
		})

		return nil, errResponse
	}

	s.writeThrough(ctx, &models.CacheEntry{
		Ticker:    ticker,
		ExpiresAt: ComputeExpiration(now),
		Data:      data,
	})

	return data, nil
}

func (s *OptionsService) fetchFreshData(ctx context.Context, symbol models.StockSymbol) (*models.OptionsData, error) {
	var quote *models.Quote
	var allExpirationDates []string

	// Quote and expirations settle together: if either fails the fresh
	// fetch fails, never a quote-only partial.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		q, err := s.fetcher.FetchQuote(gctx, symbol)
		if err != nil {
			return err
		}

		quote = q
		return nil
	})
	g.Go(func() error {
		dates, err := s.fetcher.FetchExpirationDates(gctx, symbol)
		if err != nil {
			return err
		}

		allExpirationDates = dates
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	expirationDates := allExpirationDates
	if len(expirationDates) > MaxExpirationDates {
		expirationDates = expirationDates[:MaxExpirationDates]
	}

	expirationDatesStringified := models.StringifyDates(expirationDates)

	chains, updatedAt, err := s.fetcher.FetchOptionChains(ctx, symbol, expirationDates, expirationDatesStringified)
	if err != nil {
		return nil, err
	}

	stockPrice, err := strconv.ParseFloat(quote.Price, 64)
	if err != nil {
		return nil, fmt.Errorf("fetchFreshData: failed to parse quote price %q: %w", quote.Price, err)
	}

	strikes, grids := BuildGrid(chains, stockPrice, s.strikeRange)

	formattedStrikes := make([]string, 0, len(strikes))
	for _, strike := range strikes {
		formattedStrikes = append(formattedStrikes, "$"+strike)
	}

	return &models.OptionsData{
		Ticker:                     quote.Ticker,
		Description:                quote.Description,
		Price:                      quote.Price,
		Change:                     quote.Change,
		ChangePercentage:           quote.ChangePercentage,
		ExpirationDates:            expirationDates,
		ExpirationDatesStringified: expirationDatesStringified,
		Strikes:                    formattedStrikes,
		UpdatedAt:                  updatedAt,
		Options:                    grids,
	}, nil
}

// writeThrough attempts the cache write exactly once and surfaces
// failures in the log only; the computed result is returned regardless.
func (s *OptionsService) writeThrough(ctx context.Context, entry *models.CacheEntry) {
	if err := s.store.Put(ctx, entry); err != nil {
		log.Errorf("GetOptionsData: cache write failed for %s: %v", entry.Ticker, err)
	}
}
