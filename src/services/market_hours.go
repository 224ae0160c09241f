package services

import (
	"time"

	log "github.com/sirupsen/logrus"
)

// CacheTTL is the freshness window for data fetched during market hours.
const CacheTTL = time.Hour

const (
	marketOpenHour    = 9
	marketOpenMinute  = 30
	marketCloseHour   = 16
	marketCloseMinute = 0
)

var newYork = mustLoadNewYork()

func mustLoadNewYork() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		log.Fatalf("failed to load location America/New_York: %v", err)
	}

	return loc
}

// IsMarketOpen reports whether the exchange is in its regular session
// (09:30-16:00 America/New_York, Monday-Friday). Exchange holidays are
// not modeled; a holiday behaves like a regular weekday.
func IsMarketOpen(now time.Time) bool {
	et := now.In(newYork)
	if wd := et.Weekday(); wd == time.Saturday || wd == time.Sunday {
		return false
	}

	open := time.Date(et.Year(), et.Month(), et.Day(), marketOpenHour, marketOpenMinute, 0, 0, newYork)
	close := time.Date(et.Year(), et.Month(), et.Day(), marketCloseHour, marketCloseMinute, 0, 0, newYork)

	return !et.Before(open) && et.Before(close)
}

// NextMarketOpen returns the first 09:30 ET on a weekday strictly after
// now: same day before the open, next weekday after the close, Monday
// across a weekend.
func NextMarketOpen(now time.Time) time.Time {
	day := now.In(newYork)
	for {
		open := time.Date(day.Year(), day.Month(), day.Day(), marketOpenHour, marketOpenMinute, 0, 0, newYork)
		if wd := open.Weekday(); wd != time.Saturday && wd != time.Sunday && now.Before(open) {
			return open
		}

		day = day.AddDate(0, 0, 1)
	}
}

// ComputeExpiration returns the instant a result computed now stops being
// fresh: one hour out during the trading session, otherwise the next
// market open, since data cannot go stale while the market is closed.
func ComputeExpiration(now time.Time) time.Time {
	if IsMarketOpen(now) {
		return now.Add(CacheTTL)
	}

	return NextMarketOpen(now)
}
