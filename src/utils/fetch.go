package utils

import (
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/quantgate/marketdata/src/marketmodels"
)

// FetchPaginated walks a cursor-paginated endpoint until next_url runs out,
// concatenating page results. Transient page failures back off on an
// escalating schedule before the whole walk restarts.
func FetchPaginated[T any](url, apiKey string, fetchDataFn marketmodels.FetchDataFunc[T]) (*marketmodels.AggregateResult[T], error) {
	backOff := []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second, 8 * time.Second, 16 * time.Second, 32 * time.Second, 64 * time.Second, 128 * time.Second}
	isDone := false
	counter := 0
	var aggregateResult marketmodels.AggregateResult[T]

	for {
		aggregateResult = marketmodels.AggregateResult[T]{}

		if counter > 0 {
			log.Warnf("FetchPaginated: backoff %v", backOff[counter])
			time.Sleep(backOff[counter])
		}

		if counter < len(backOff)-1 {
			counter++
		}

		for {
			resp, err := fetchDataFn(url, apiKey)
			if err != nil {
				return nil, fmt.Errorf("FetchPaginated: failed to fetch page: %w", err)
			}

			aggregateResult.QueryCount += resp.QueryCount
			aggregateResult.ResultsCount += resp.ResultsCount

			aggregateResult.Results = append(aggregateResult.Results, resp.Results...)

			if resp.GetNextURL() == nil {
				isDone = true
				break
			}

			url = *resp.GetNextURL()
			time.Sleep(50 * time.Millisecond)
		}

		// an empty page set is a legitimate answer, e.g. an underlying
		// with no listed contracts
		if len(aggregateResult.Results) == 0 {
			log.Debugf("FetchPaginated: no results for %v", url)
		}

		if isDone {
			break
		}
	}

	return &aggregateResult, nil
}
