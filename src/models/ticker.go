package models

import (
	"fmt"
	"strings"
)

// StockSymbol is a validated, uppercased ticker symbol.
type StockSymbol string

// NewStockSymbol uppercases and validates a raw ticker path parameter:
// 1-5 characters, letters plus '.' for share classes (e.g. BRK.B).
func NewStockSymbol(raw string) (StockSymbol, error) {
	symbol := strings.ToUpper(strings.TrimSpace(raw))
	if len(symbol) < 1 || len(symbol) > 5 {
		return "", ErrInvalidTicker
	}

	for _, c := range symbol {
		if (c < 'A' || c > 'Z') && c != '.' {
			return "", fmt.Errorf("invalid character in ticker: %c (%s)", c, symbol)
		}
	}

	return StockSymbol(symbol), nil
}

// Ticker is one entry of the tradable-ticker directory. The short json
// keys keep the full directory payload small.
type Ticker struct {
	Symbol string `json:"t"`
	Name   string `json:"n"`
}
