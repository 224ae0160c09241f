package models

import "time"

// Quote is the underlying's current quote, derived once per fresh fetch.
// Price is the bid/ask midpoint; change fields carry an explicit sign.
type Quote struct {
	Ticker           string `json:"ticker"`
	Description      string `json:"description"`
	Price            string `json:"price"`
	Change           string `json:"change"`
	ChangePercentage string `json:"change_percentage"`
}

// OptionsData is the full aggregate served for one ticker: the quote, the
// truncated expiration dates, the shared strike axis, and one aligned
// chain per date (same order as ExpirationDates).
type OptionsData struct {
	Ticker                     string         `json:"ticker"`
	Description                string         `json:"description"`
	Price                      string         `json:"price"`
	Change                     string         `json:"change"`
	ChangePercentage           string         `json:"change_percentage"`
	ExpirationDates            []string       `json:"expirationDates"`
	ExpirationDatesStringified []string       `json:"expirationDatesStringified"`
	Strikes                    []string       `json:"strikes"`
	UpdatedAt                  string         `json:"updated_at"`
	Options                    []*OptionChain `json:"options"`
}

// ErrorResponse is the failure body. It is cached under the same key and
// lifecycle as OptionsData so a known-bad ticker is not re-fetched inside
// the cache window.
type ErrorResponse struct {
	Ticker    string `json:"ticker"`
	UpdatedAt string `json:"updated_at"`
	Message   string `json:"message"`
}

// CacheEntry is the envelope stored per ticker. Exactly one of Data or
// Error is set. ExpiresAt is checked on every read in addition to the
// store's own TTL, since the store's expiry may lag.
type CacheEntry struct {
	Ticker    string         `json:"ticker"`
	ExpiresAt time.Time      `json:"expires_at"`
	Data      *OptionsData   `json:"data,omitempty"`
	Error     *ErrorResponse `json:"error,omitempty"`
}

func (e *CacheEntry) IsValid(now time.Time) bool {
	return e != nil && now.Before(e.ExpiresAt)
}
