package usdt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverageBidPrice(t *testing.T) {
	bids := [][]string{
		{"41.70", "1000"},
		{"41.72", "500"},
		{"41.74", "250"},
	}

	avg, err := averageBidPrice(bids, 3)
	require.NoError(t, err)
	assert.Equal(t, "41.72", avg.StringFixed(2))
}

func TestAverageBidPriceSkipsMalformed(t *testing.T) {
	bids := [][]string{
		{"41.70", "1000"},
		{"not-a-price", "500"},
		{"41.80", "250"},
	}

	avg, err := averageBidPrice(bids, 3)
	require.NoError(t, err)
	assert.Equal(t, "41.75", avg.StringFixed(2))
}

func TestAverageBidPriceEmpty(t *testing.T) {
	_, err := averageBidPrice(nil, 5)
	assert.Error(t, err)
}
