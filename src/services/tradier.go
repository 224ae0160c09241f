package services

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const DefaultTradierBaseURL = "https://sandbox.tradier.com/v1/markets"

const tradierRequestTimeout = 10 * time.Second

// TradierClient fetches quotes, expirations and option chains from the
// Tradier market-data API.
type TradierClient struct {
	baseURL     string
	bearerToken string
}

func NewTradierClient(baseURL, bearerToken string) *TradierClient {
	return &TradierClient{
		baseURL:     baseURL,
		bearerToken: bearerToken,
	}
}

func (c *TradierClient) get(ctx context.Context, path string, queryParams url.Values) (*http.Response, error) {
	client := http.Client{
		Timeout: tradierRequestTimeout,
	}

	fullUrl := fmt.Sprintf("%s%s?%s", c.baseURL, path, queryParams.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullUrl, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Add("Accept", "application/json")
	req.Header.Add("Authorization", fmt.Sprintf("Bearer %s", c.bearerToken))

	res, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}

	return res, nil
}
