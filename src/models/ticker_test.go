package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStockSymbol(t *testing.T) {
	t.Run("normalizes case and whitespace", func(t *testing.T) {
		symbol, err := NewStockSymbol(" aapl ")
		require.NoError(t, err)
		assert.Equal(t, StockSymbol("AAPL"), symbol)
	})

	t.Run("accepts class shares", func(t *testing.T) {
		symbol, err := NewStockSymbol("BRK.B")
		require.NoError(t, err)
		assert.Equal(t, StockSymbol("BRK.B"), symbol)
	})

	t.Run("rejects malformed input", func(t *testing.T) {
		for _, input := range []string{"", "      ", "TOOLONGG", "AAPL1", "A-B", "A B"} {
			_, err := NewStockSymbol(input)
			assert.Error(t, err, "%q", input)
		}
	})
}
