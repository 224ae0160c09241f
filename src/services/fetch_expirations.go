package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/richardzimring/heatmap/src/models"
)

// FetchExpirationDates retrieves the available expiration dates for a
// symbol, in upstream (ascending) order. A null expirations field is the
// provider's signal for an unrecognized symbol. Truncation to the maximum
// date count is the caller's responsibility.
func (c *TradierClient) FetchExpirationDates(ctx context.Context, symbol models.StockSymbol) ([]string, error) {
	queryParams := url.Values{}
	queryParams.Add("symbol", string(symbol))

	res, err := c.get(ctx, "/options/expirations", queryParams)
	if err != nil {
		return nil, fmt.Errorf("FetchExpirationDates: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("FetchExpirationDates: invalid status code: %s", res.Status)
	}

	var dto models.TradierExpirationsResponse
	if err := json.NewDecoder(res.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("FetchExpirationDates: failed to decode json: %w", err)
	}

	if dto.Expirations == nil {
		return nil, models.ErrInvalidTicker
	}

	return dto.Expirations.Date, nil
}
