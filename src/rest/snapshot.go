package rest

import (
	"context"
	"fmt"

	"github.com/quantgate/marketdata/src/marketmodels"
)

// GetOptionContractSnapshot fetches the market snapshot (day aggregate,
// greeks, last quote/trade, open interest) for one contract of an underlying.
func (c *Client) GetOptionContractSnapshot(ctx context.Context, underlying marketmodels.StockSymbol, contract marketmodels.OptionSymbol) (*marketmodels.OptionContractSnapshotDTO, error) {
	if err := underlying.Validate(); err != nil {
		return nil, fmt.Errorf("GetOptionContractSnapshot: %w", err)
	}

	if _, err := marketmodels.NewOptionTicker(contract); err != nil {
		return nil, fmt.Errorf("GetOptionContractSnapshot: %w", err)
	}

	reqPath := fmt.Sprintf("/v3/snapshot/options/%s/%s", underlying, contract)

	var dto marketmodels.SingleResponse[marketmodels.OptionContractSnapshotDTO]
	if err := c.getJSON(ctx, c.BaseURL+reqPath, nil, &dto); err != nil {
		return nil, fmt.Errorf("GetOptionContractSnapshot: %w", err)
	}

	return &dto.Results, nil
}

// GetOptionContractSnapshotBySymbol derives the underlying path segment from
// the contract symbol itself, for callers that only hold the full symbol.
func (c *Client) GetOptionContractSnapshotBySymbol(ctx context.Context, symbol marketmodels.OptionSymbol) (*marketmodels.OptionContractSnapshotDTO, error) {
	underlying, _, err := symbol.Split()
	if err != nil {
		return nil, fmt.Errorf("GetOptionContractSnapshotBySymbol: %w", err)
	}

	return c.GetOptionContractSnapshot(ctx, underlying, symbol)
}
