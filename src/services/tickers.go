package services

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"
	log "github.com/sirupsen/logrus"

	"github.com/richardzimring/heatmap/src/cache"
	"github.com/richardzimring/heatmap/src/models"
)

// DefaultOCCDirectoryURL is the OCC's tab-delimited directory of listed
// option underlyings with their exchanges.
const DefaultOCCDirectoryURL = "https://marketdata.theocc.com/delo-download?prodType=EU&downloadFields=US;SN;EXCH&format=txt"

const (
	tickerCacheKey = "tickers"
	tickerCacheTTL = time.Hour
)

// Keep tickers listed on at least one major exchange.
var majorExchanges = map[rune]bool{
	'A': true, // AMEX
	'B': true, // BOX
	'C': true, // CBOE
	'P': true, // NYSE Arca
	'Q': true, // NASDAQ
	'W': true, // C2
	'X': true, // PHLX
	'Z': true, // BATS
}

// TickerService serves the tradable-ticker directory. Reads go through a
// process-scoped cache in front of the durable store; RefreshTickers
// rebuilds the directory from the OCC feed.
type TickerService struct {
	store  cache.TickerStore
	occURL string
	mem    *gocache.Cache
}

func NewTickerService(store cache.TickerStore) *TickerService {
	return &TickerService{
		store:  store,
		occURL: DefaultOCCDirectoryURL,
		mem:    gocache.New(tickerCacheTTL, 2*tickerCacheTTL),
	}
}

// GetTickers returns the directory, re-reading the durable store only
// when the in-process copy has expired.
func (s *TickerService) GetTickers(ctx context.Context) ([]models.Ticker, error) {
	if v, found := s.mem.Get(tickerCacheKey); found {
		return v.([]models.Ticker), nil
	}

	tickers, err := s.store.GetTickers(ctx)
	if err != nil {
		return nil, fmt.Errorf("GetTickers: %w", err)
	}

	s.mem.Set(tickerCacheKey, tickers, gocache.DefaultExpiration)
	return tickers, nil
}

// RefreshTickers downloads the OCC directory, parses it, and overwrites
// the stored list. Returns the number of tickers written.
func (s *TickerService) RefreshTickers(ctx context.Context) (int, error) {
	client := http.Client{
		Timeout: 60 * time.Second,
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.occURL, nil)
	if err != nil {
		return 0, fmt.Errorf("RefreshTickers: failed to create request: %w", err)
	}

	res, err := client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("RefreshTickers: failed to fetch OCC directory: %w", err)
	}

	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("RefreshTickers: invalid status code: %s", res.Status)
	}

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return 0, fmt.Errorf("RefreshTickers: failed to read response body: %w", err)
	}

	log.Infof("RefreshTickers: received %d bytes from OCC", len(raw))

	tickers := ParseOCCDirectory(string(raw))
	if err := s.store.PutTickers(ctx, tickers); err != nil {
		return 0, fmt.Errorf("RefreshTickers: %w", err)
	}

	s.mem.Delete(tickerCacheKey)

	return len(tickers), nil
}

// ParseOCCDirectory parses the OCC tab-delimited feed into a deduplicated
// directory sorted by symbol. Lines are TICKER\tNAME\tEXCHANGES; the feed
// leads with header lines which do not look like ticker rows.
func ParseOCCDirectory(raw string) []models.Ticker {
	seen := make(map[string]bool)
	var tickers []models.Ticker

	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		parts := strings.Split(trimmed, "\t")
		if len(parts) < 2 {
			continue
		}

		symbol := strings.TrimSpace(parts[0])
		name := strings.TrimSpace(parts[1])
		if symbol == "" || name == "" || symbol == "Symbol" || symbol == "US" {
			continue
		}

		if len(parts) >= 3 {
			if exchanges := strings.TrimSpace(parts[2]); exchanges != "" && !hasMajorExchange(exchanges) {
				continue
			}
		}

		// First occurrence wins.
		if seen[symbol] {
			continue
		}

		seen[symbol] = true
		tickers = append(tickers, models.Ticker{Symbol: symbol, Name: name})
	}

	sort.Slice(tickers, func(i, j int) bool {
		return tickers[i].Symbol < tickers[j].Symbol
	})

	return tickers
}

func hasMajorExchange(exchanges string) bool {
	for _, c := range exchanges {
		if majorExchanges[c] {
			return true
		}
	}

	return false
}
