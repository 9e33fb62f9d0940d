package rest

import (
	"context"
	"fmt"

	"github.com/quantgate/marketdata/src/marketmodels"
	"github.com/quantgate/marketdata/src/utils"
)

type ListOptionContractsRequest struct {
	UnderlyingTicker  marketmodels.StockSymbol `query:"underlying_ticker"`
	ContractType      marketmodels.OptionType  `query:"contract_type,omitempty"`
	ExpirationDateGTE marketmodels.Date        `query:"expiration_date.gte,omitempty"`
	ExpirationDateLTE marketmodels.Date        `query:"expiration_date.lte,omitempty"`
	StrikePriceGTE    float64                  `query:"strike_price.gte,omitempty"`
	StrikePriceLTE    float64                  `query:"strike_price.lte,omitempty"`
	Expired           bool                     `query:"expired"`
	Order             string                   `query:"order,omitempty"`
	Sort              string                   `query:"sort,omitempty"`
	Limit             int                      `query:"limit,omitempty"`
}

func (req ListOptionContractsRequest) Validate() error {
	if err := req.UnderlyingTicker.Validate(); err != nil {
		return fmt.Errorf("ListOptionContractsRequest.Validate: %w", err)
	}

	if req.ContractType != "" {
		if err := req.ContractType.Validate(); err != nil {
			return fmt.Errorf("ListOptionContractsRequest.Validate: %w", err)
		}
	}

	if !req.ExpirationDateGTE.IsZero() && !req.ExpirationDateLTE.IsZero() {
		gte, err := req.ExpirationDateGTE.ToTime()
		if err != nil {
			return fmt.Errorf("ListOptionContractsRequest.Validate: %w", err)
		}

		lte, err := req.ExpirationDateLTE.ToTime()
		if err != nil {
			return fmt.Errorf("ListOptionContractsRequest.Validate: %w", err)
		}

		if gte.After(lte) {
			return fmt.Errorf("ListOptionContractsRequest.Validate: expiration_date.gte %v is after expiration_date.lte %v",
				req.ExpirationDateGTE.ToString(), req.ExpirationDateLTE.ToString())
		}
	}

	if req.Limit < 0 || req.Limit > 1000 {
		return fmt.Errorf("ListOptionContractsRequest.Validate: limit must be between 0 and 1000, got %d", req.Limit)
	}

	return nil
}

// ListOptionContracts walks all reference pages for an underlying's option
// chain.
func (c *Client) ListOptionContracts(ctx context.Context, req ListOptionContractsRequest) (*marketmodels.AggregateResult[marketmodels.OptionContractDTO], error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("ListOptionContracts: %w", err)
	}

	params, err := encodeQuery(req)
	if err != nil {
		return nil, fmt.Errorf("ListOptionContracts: %w", err)
	}

	startURL := fmt.Sprintf("%s/v3/reference/options/contracts?%s", c.BaseURL, params.Encode())

	result, err := utils.FetchPaginated(startURL, c.apiKey, fetchListPage[marketmodels.OptionContractDTO](ctx, c))
	if err != nil {
		return nil, fmt.Errorf("ListOptionContracts: %w", err)
	}

	return result, nil
}

// GetOptionContract fetches reference details for one contract.
func (c *Client) GetOptionContract(ctx context.Context, ticker marketmodels.OptionSymbol) (*marketmodels.OptionContractDTO, error) {
	if _, err := marketmodels.NewOptionTicker(ticker); err != nil {
		return nil, fmt.Errorf("GetOptionContract: %w", err)
	}

	reqPath := fmt.Sprintf("/v3/reference/options/contracts/%s", ticker)

	var dto marketmodels.SingleResponse[marketmodels.OptionContractDTO]
	if err := c.getJSON(ctx, c.BaseURL+reqPath, nil, &dto); err != nil {
		return nil, fmt.Errorf("GetOptionContract: %w", err)
	}

	return &dto.Results, nil
}
