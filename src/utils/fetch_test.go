package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantgate/marketdata/src/marketmodels"
)

func TestFetchPaginated(t *testing.T) {
	t.Run("walks next_url cursors and concatenates pages", func(t *testing.T) {
		secondPage := "https://api.test/page2"
		pages := map[string]*marketmodels.AggregateResult[int]{
			"https://api.test/page1": {
				QueryCount:   1,
				ResultsCount: 2,
				Results:      []int{1, 2},
				GetNextURL:   func() *string { return &secondPage },
			},
			secondPage: {
				QueryCount:   1,
				ResultsCount: 1,
				Results:      []int{3},
				GetNextURL:   func() *string { return nil },
			},
		}

		fetchFn := func(url, apiKey string) (*marketmodels.AggregateResult[int], error) {
			page, found := pages[url]
			require.True(t, found, "unexpected page url %v", url)
			return page, nil
		}

		result, err := FetchPaginated("https://api.test/page1", "key", fetchFn)
		require.Nil(t, err)
		assert.Equal(t, []int{1, 2, 3}, result.Results)
		assert.Equal(t, 3, result.ResultsCount)
	})

	t.Run("returns an empty aggregate when the endpoint has no results", func(t *testing.T) {
		fetchFn := func(url, apiKey string) (*marketmodels.AggregateResult[int], error) {
			return &marketmodels.AggregateResult[int]{
				GetNextURL: func() *string { return nil },
			}, nil
		}

		result, err := FetchPaginated("https://api.test/empty", "key", fetchFn)
		require.Nil(t, err)
		assert.Empty(t, result.Results)
		assert.Equal(t, 0, result.ResultsCount)
	})
}
