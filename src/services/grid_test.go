package services

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/richardzimring/heatmap/src/models"
)

func chainOption(strike string, direction models.OptionType) *models.Option {
	return &models.Option{
		Symbol:    "AAPL",
		Direction: string(direction),
		Strike:    strike,
	}
}

func fullChain(strikes ...string) []*models.Option {
	var chain []*models.Option
	for _, strike := range strikes {
		chain = append(chain, chainOption(strike, models.OptionTypeCall))
		chain = append(chain, chainOption(strike, models.OptionTypePut))
	}

	return chain
}

func TestBuildGrid(t *testing.T) {
	t.Run("windows strikes around the at-the-money pivot", func(t *testing.T) {
		chains := [][]*models.Option{
			fullChain("140", "145", "148", "150", "152", "155", "160"),
		}

		strikes, grids := BuildGrid(chains, 150.23, 2)

		// pivot is 152, the first strike above 150.23
		assert.Equal(t, []string{"148", "150", "152", "155", "160"}, strikes)
		require.Len(t, grids, 1)
		assert.Len(t, grids[0].Calls, 5)
		assert.Len(t, grids[0].Puts, 5)
	})

	t.Run("drops fractional strikes and sorts numerically", func(t *testing.T) {
		chains := [][]*models.Option{
			fullChain("100", "9.5", "10", "20", "15"),
		}

		strikes, _ := BuildGrid(chains, 12, 5)

		assert.Equal(t, []string{"10", "15", "20", "100"}, strikes)
	})

	t.Run("missing contracts leave nil slots, grid stays rectangular", func(t *testing.T) {
		chains := [][]*models.Option{
			fullChain("148", "150", "152"),
			{chainOption("150", models.OptionTypeCall)},
		}

		strikes, grids := BuildGrid(chains, 149.5, 5)

		assert.Equal(t, []string{"148", "150", "152"}, strikes)
		require.Len(t, grids, 2)

		for _, grid := range grids {
			assert.Len(t, grid.Calls, len(strikes))
			assert.Len(t, grid.Puts, len(strikes))
		}

		assert.NotNil(t, grids[0].Calls[0])
		assert.Nil(t, grids[1].Calls[0])
		assert.NotNil(t, grids[1].Calls[1])
		assert.Nil(t, grids[1].Puts[1])
	})

	t.Run("pivot past the end when no strike exceeds the price", func(t *testing.T) {
		chains := [][]*models.Option{
			fullChain("100", "105", "110", "115", "120"),
		}

		strikes, _ := BuildGrid(chains, 500, 2)

		// only the two strikes within range of the virtual pivot survive
		assert.Equal(t, []string{"115", "120"}, strikes)
	})

	t.Run("no integer strikes yields empty rows", func(t *testing.T) {
		chains := [][]*models.Option{
			fullChain("9.5", "10.5"),
		}

		strikes, grids := BuildGrid(chains, 10, 5)

		assert.Empty(t, strikes)
		require.Len(t, grids, 1)
		assert.Empty(t, grids[0].Calls)
		assert.Empty(t, grids[0].Puts)
	})

	t.Run("deterministic for identical inputs", func(t *testing.T) {
		chains := [][]*models.Option{
			fullChain("145", "150", "155"),
			fullChain("150", "155", "160"),
		}

		strikes1, grids1 := BuildGrid(chains, 151.0, 3)
		strikes2, grids2 := BuildGrid(chains, 151.0, 3)

		assert.Equal(t, strikes1, strikes2)

		b1, err := json.Marshal(grids1)
		require.NoError(t, err)
		b2, err := json.Marshal(grids2)
		require.NoError(t, err)

		assert.Equal(t, b1, b2)
	})
}
