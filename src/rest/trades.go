package rest

import (
	"context"
	"fmt"

	"github.com/quantgate/marketdata/src/marketmodels"
	"github.com/quantgate/marketdata/src/utils"
)

type ListTradesRequest struct {
	Ticker       marketmodels.OptionSymbol `query:"-"`
	TimestampGTE marketmodels.Date         `query:"timestamp.gte,omitempty"`
	TimestampLTE marketmodels.Date         `query:"timestamp.lte,omitempty"`
	Order        string                    `query:"order,omitempty"`
	Sort         string                    `query:"sort,omitempty"`
	Limit        int                       `query:"limit,omitempty"`
}

func (req ListTradesRequest) Validate() error {
	if _, err := marketmodels.NewOptionTicker(req.Ticker); err != nil {
		return fmt.Errorf("ListTradesRequest.Validate: %w", err)
	}

	if req.Limit < 0 || req.Limit > 50000 {
		return fmt.Errorf("ListTradesRequest.Validate: limit must be between 0 and 50000, got %d", req.Limit)
	}

	return nil
}

// ListTrades walks all trade pages for one contract.
func (c *Client) ListTrades(ctx context.Context, req ListTradesRequest) (*marketmodels.AggregateResult[marketmodels.TradeDTO], error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("ListTrades: %w", err)
	}

	params, err := encodeQuery(req)
	if err != nil {
		return nil, fmt.Errorf("ListTrades: %w", err)
	}

	startURL := fmt.Sprintf("%s/v3/trades/%s?%s", c.BaseURL, req.Ticker, params.Encode())

	result, err := utils.FetchPaginated(startURL, c.apiKey, fetchListPage[marketmodels.TradeDTO](ctx, c))
	if err != nil {
		return nil, fmt.Errorf("ListTrades: %w", err)
	}

	return result, nil
}

// GetLastTrade fetches the most recent trade for one contract.
func (c *Client) GetLastTrade(ctx context.Context, ticker marketmodels.OptionSymbol) (*marketmodels.LastTradeDTO, error) {
	if _, err := marketmodels.NewOptionTicker(ticker); err != nil {
		return nil, fmt.Errorf("GetLastTrade: %w", err)
	}

	reqPath := fmt.Sprintf("/v2/last/trade/%s", ticker)

	var dto marketmodels.SingleResponse[marketmodels.LastTradeDTO]
	if err := c.getJSON(ctx, c.BaseURL+reqPath, nil, &dto); err != nil {
		return nil, fmt.Errorf("GetLastTrade: %w", err)
	}

	return &dto.Results, nil
}
