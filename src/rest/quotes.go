package rest

import (
	"context"
	"fmt"

	"github.com/quantgate/marketdata/src/marketmodels"
	"github.com/quantgate/marketdata/src/utils"
)

type ListQuotesRequest struct {
	Ticker       marketmodels.OptionSymbol `query:"-"`
	TimestampGTE marketmodels.Date         `query:"timestamp.gte,omitempty"`
	TimestampLTE marketmodels.Date         `query:"timestamp.lte,omitempty"`
	Order        string                    `query:"order,omitempty"`
	Sort         string                    `query:"sort,omitempty"`
	Limit        int                       `query:"limit,omitempty"`
}

func (req ListQuotesRequest) Validate() error {
	if _, err := marketmodels.NewOptionTicker(req.Ticker); err != nil {
		return fmt.Errorf("ListQuotesRequest.Validate: %w", err)
	}

	if req.Limit < 0 || req.Limit > 50000 {
		return fmt.Errorf("ListQuotesRequest.Validate: limit must be between 0 and 50000, got %d", req.Limit)
	}

	return nil
}

// ListQuotes walks all NBBO quote pages for one contract.
func (c *Client) ListQuotes(ctx context.Context, req ListQuotesRequest) (*marketmodels.AggregateResult[marketmodels.QuoteDTO], error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("ListQuotes: %w", err)
	}

	params, err := encodeQuery(req)
	if err != nil {
		return nil, fmt.Errorf("ListQuotes: %w", err)
	}

	startURL := fmt.Sprintf("%s/v3/quotes/%s?%s", c.BaseURL, req.Ticker, params.Encode())

	result, err := utils.FetchPaginated(startURL, c.apiKey, fetchListPage[marketmodels.QuoteDTO](ctx, c))
	if err != nil {
		return nil, fmt.Errorf("ListQuotes: %w", err)
	}

	return result, nil
}
