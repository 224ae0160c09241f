package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/richardzimring/heatmap/src/models"
)

// FetchOptionChains retrieves one options chain per expiration date, all
// concurrently, and projects each contract onto the display format. Any
// single failed request fails the whole batch; a partial grid is never
// returned. The second return value is the upstream quote timestamp taken
// from the first contract's greeks, or the current time if unavailable.
func (c *TradierClient) FetchOptionChains(ctx context.Context, symbol models.StockSymbol, expirationDates []string, expirationDatesStringified []string) ([][]*models.Option, string, error) {
	if len(expirationDates) != len(expirationDatesStringified) {
		return nil, "", fmt.Errorf("FetchOptionChains: %d dates but %d labels", len(expirationDates), len(expirationDatesStringified))
	}

	chains := make([]models.TradierOptionList, len(expirationDates))

	g, gctx := errgroup.WithContext(ctx)
	for i, date := range expirationDates {
		i, date := i, date
		g.Go(func() error {
			chain, err := c.fetchOptionChain(gctx, symbol, date)
			if err != nil {
				return err
			}

			chains[i] = chain
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, "", err
	}

	// Normalization runs after the join, over index-ordered results, so
	// the output does not depend on request completion order.
	processed := make([][]*models.Option, len(chains))
	for i, chain := range chains {
		options := make([]*models.Option, 0, len(chain))
		for _, dto := range chain {
			options = append(options, models.NewOptionFromDTO(dto, expirationDates[i], expirationDatesStringified[i]))
		}

		processed[i] = options
	}

	updatedAt := time.Now().UTC().Format(time.RFC3339)
	if len(chains) > 0 && len(chains[0]) > 0 {
		if greeks := chains[0][0].Greeks; greeks != nil && greeks.UpdatedAt != "" {
			updatedAt = greeks.UpdatedAt
		}
	}

	return processed, updatedAt, nil
}

func (c *TradierClient) fetchOptionChain(ctx context.Context, symbol models.StockSymbol, expiration string) (models.TradierOptionList, error) {
	queryParams := url.Values{}
	queryParams.Add("symbol", string(symbol))
	queryParams.Add("expiration", expiration)
	queryParams.Add("greeks", "true")

	res, err := c.get(ctx, "/options/chains", queryParams)
	if err != nil {
		return nil, fmt.Errorf("fetchOptionChain: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetchOptionChain: invalid status code for %s %s: %s", symbol, expiration, res.Status)
	}

	var dto models.TradierOptionsChainResponse
	if err := json.NewDecoder(res.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("fetchOptionChain: failed to decode json: %w", err)
	}

	return dto.Options.Option, nil
}
