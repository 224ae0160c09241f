package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/richardzimring/heatmap/src/models"
)

// FetchQuote retrieves the current quote for a single symbol and derives
// the midpoint price and signed change strings.
func (c *TradierClient) FetchQuote(ctx context.Context, symbol models.StockSymbol) (*models.Quote, error) {
	queryParams := url.Values{}
	queryParams.Add("symbols", string(symbol))

	res, err := c.get(ctx, "/quotes", queryParams)
	if err != nil {
		return nil, fmt.Errorf("FetchQuote: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		log.Errorf("FetchQuote: failed to fetch quote for %s: %s", symbol, res.Status)
		return nil, fmt.Errorf("FetchQuote: invalid status code: %s", res.Status)
	}

	var dto models.TradierQuotesResponse
	if err := json.NewDecoder(res.Body).Decode(&dto); err != nil {
		return nil, fmt.Errorf("FetchQuote: failed to decode json: %w", err)
	}

	if dto.Quotes.UnmatchedSymbols != nil || dto.Quotes.Quote == nil {
		return nil, models.ErrInvalidTicker
	}

	quote := dto.Quotes.Quote
	midPrice := (quote.Ask + quote.Bid) / 2

	return &models.Quote{
		Ticker:           quote.Symbol,
		Description:      quote.Description,
		Price:            strconv.FormatFloat(midPrice, 'f', 2, 64),
		Change:           signedFixed(quote.Change),
		ChangePercentage: signedNumber(quote.ChangePercentage),
	}, nil
}

// signedFixed renders a nullable change as a 2-decimal string with an
// explicit '+' for non-negative values; null degrades to "0.00".
func signedFixed(value *float64) string {
	if value == nil {
		return "0.00"
	}

	s := strconv.FormatFloat(*value, 'f', 2, 64)
	if *value >= 0 {
		return "+" + s
	}

	return s
}

// signedNumber is signedFixed without the fixed precision; the upstream
// change_percentage is passed through as-is.
func signedNumber(value *float64) string {
	if value == nil {
		return "0.00"
	}

	s := strconv.FormatFloat(*value, 'f', -1, 64)
	if *value >= 0 {
		return "+" + s
	}

	return s
}
