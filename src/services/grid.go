package services

import (
	"fmt"
	"math"
	"sort"

	"github.com/richardzimring/heatmap/src/models"
)

// DefaultStrikeRange is the number of strikes kept above and below the
// at-the-money pivot.
const DefaultStrikeRange = 5

// BuildGrid aligns per-date option lists onto a single strike axis:
// the union of whole-number strikes across all dates, sorted ascending,
// windowed to strikeRange positions either side of the first strike
// strictly above the stock price. Every date gets call and put rows of
// identical length; a slot with no matching contract stays nil.
//
// The returned strikes are unformatted (no currency prefix) and shared by
// every OptionChain, which is what keeps the grid rectangular.
func BuildGrid(chains [][]*models.Option, stockPrice float64, strikeRange int) ([]string, []*models.OptionChain) {
	strikes := selectStrikes(chains, stockPrice, strikeRange)

	grids := make([]*models.OptionChain, 0, len(chains))
	for _, chain := range chains {
		lookup := make(map[string]*models.Option, len(chain))
		for _, option := range chain {
			lookup[optionKey(option.Strike, option.Direction)] = option
		}

		grid := &models.OptionChain{
			Calls: make([]*models.Option, len(strikes)),
			Puts:  make([]*models.Option, len(strikes)),
		}

		for i, strike := range strikes {
			grid.Calls[i] = lookup[optionKey(strike, string(models.OptionTypeCall))]
			grid.Puts[i] = lookup[optionKey(strike, string(models.OptionTypePut))]
		}

		grids = append(grids, grid)
	}

	return strikes, grids
}

// selectStrikes derives the canonical strike window. Fractional strikes
// from weekly or adjusted contracts are dropped before windowing.
func selectStrikes(chains [][]*models.Option, stockPrice float64, strikeRange int) []string {
	seen := make(map[float64]bool)
	var unique []float64

	for _, chain := range chains {
		for _, option := range chain {
			strike, err := parseStrike(option.Strike)
			if err != nil {
				continue
			}

			if strike != math.Trunc(strike) {
				continue
			}

			if !seen[strike] {
				seen[strike] = true
				unique = append(unique, strike)
			}
		}
	}

	sort.Float64s(unique)

	// Pivot at the first strike strictly above the stock price; one past
	// the end when every strike is at or below it.
	pivot := len(unique)
	for i, strike := range unique {
		if strike > stockPrice {
			pivot = i
			break
		}
	}

	selected := make([]string, 0, 2*strikeRange+1)
	for i, strike := range unique {
		distance := i - pivot
		if distance < 0 {
			distance = -distance
		}

		if distance <= strikeRange {
			selected = append(selected, models.FormatStrike(strike))
		}
	}

	return selected
}

func parseStrike(s string) (float64, error) {
	var strike float64
	if _, err := fmt.Sscanf(s, "%f", &strike); err != nil {
		return 0, fmt.Errorf("parseStrike: failed to parse %q: %w", s, err)
	}

	return strike, nil
}

func optionKey(strike string, direction string) string {
	return fmt.Sprintf("%s-%s", strike, direction)
}
