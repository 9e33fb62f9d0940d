package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantgate/marketdata/src/marketmodels"
)

func TestCloseStats(t *testing.T) {
	t.Run("summarizes close prices", func(t *testing.T) {
		bars := []marketmodels.AggregateBarDTO{
			{Close: 10},
			{Close: 20},
			{Close: 30},
		}

		mean, std, err := closeStats(bars)
		require.Nil(t, err)
		assert.InDelta(t, 20.0, mean, 1e-9)
		assert.InDelta(t, 8.16496580927726, std, 1e-9)
	})

	t.Run("yields zero stats for an empty bar set", func(t *testing.T) {
		mean, std, err := closeStats(nil)
		require.Nil(t, err)
		assert.Zero(t, mean)
		assert.Zero(t, std)
	})
}
