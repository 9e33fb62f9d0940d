package rest

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/quantgate/marketdata/src/marketmodels"
)

type GetAggregateBarsRequest struct {
	Ticker   marketmodels.OptionSymbol `query:"-"`
	Timespan marketmodels.Timespan     `query:"-"`
	From     marketmodels.Date         `query:"-"`
	To       marketmodels.Date         `query:"-"`
	Adjusted bool                      `query:"adjusted"`
	Sort     string                    `query:"sort,omitempty"`
	Limit    int                       `query:"limit,omitempty"`
}

func (req GetAggregateBarsRequest) Validate() error {
	if _, err := marketmodels.NewOptionTicker(req.Ticker); err != nil {
		return fmt.Errorf("GetAggregateBarsRequest.Validate: %w", err)
	}

	if err := req.Timespan.Validate(); err != nil {
		return fmt.Errorf("GetAggregateBarsRequest.Validate: %w", err)
	}

	from, err := req.From.ToTime()
	if err != nil {
		return fmt.Errorf("GetAggregateBarsRequest.Validate: %w", err)
	}

	to, err := req.To.ToTime()
	if err != nil {
		return fmt.Errorf("GetAggregateBarsRequest.Validate: %w", err)
	}

	if from.After(to) {
		return fmt.Errorf("GetAggregateBarsRequest.Validate: from %v is after to %v", req.From.ToString(), req.To.ToString())
	}

	if req.Limit < 0 || req.Limit > 50000 {
		return fmt.Errorf("GetAggregateBarsRequest.Validate: limit must be between 0 and 50000, got %d", req.Limit)
	}

	return nil
}

// GetAggregateBars fetches OHLC aggregates for one option contract over a
// date range.
func (c *Client) GetAggregateBars(ctx context.Context, req GetAggregateBarsRequest) (*marketmodels.AggregateBarsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("GetAggregateBars: %w", err)
	}

	params, err := encodeQuery(req)
	if err != nil {
		return nil, fmt.Errorf("GetAggregateBars: %w", err)
	}

	reqPath := fmt.Sprintf("/v2/aggs/ticker/%s/range/%d/%s/%s/%s",
		req.Ticker, req.Timespan.Multiplier, req.Timespan.Unit, req.From.ToString(), req.To.ToString())

	var dto marketmodels.AggregateBarsResponse
	if err := c.getJSON(ctx, c.BaseURL+reqPath, params, &dto); err != nil {
		return nil, fmt.Errorf("GetAggregateBars: %w", err)
	}

	if dto.NextURL != nil {
		log.Warnf("GetAggregateBars: next url: %v", *dto.NextURL)
	}

	return &dto, nil
}

type GetDailyOpenCloseRequest struct {
	Ticker   marketmodels.OptionSymbol `query:"-"`
	Date     marketmodels.Date         `query:"-"`
	Adjusted bool                      `query:"adjusted"`
}

func (req GetDailyOpenCloseRequest) Validate() error {
	if _, err := marketmodels.NewOptionTicker(req.Ticker); err != nil {
		return fmt.Errorf("GetDailyOpenCloseRequest.Validate: %w", err)
	}

	if err := req.Date.Validate(); err != nil {
		return fmt.Errorf("GetDailyOpenCloseRequest.Validate: %w", err)
	}

	return nil
}

// GetDailyOpenClose fetches the open/close summary for one contract on one
// trading day.
func (c *Client) GetDailyOpenClose(ctx context.Context, req GetDailyOpenCloseRequest) (*marketmodels.DailyOpenCloseDTO, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("GetDailyOpenClose: %w", err)
	}

	params, err := encodeQuery(req)
	if err != nil {
		return nil, fmt.Errorf("GetDailyOpenClose: %w", err)
	}

	reqPath := fmt.Sprintf("/v1/open-close/%s/%s", req.Ticker, req.Date.ToString())

	var dto marketmodels.DailyOpenCloseDTO
	if err := c.getJSON(ctx, c.BaseURL+reqPath, params, &dto); err != nil {
		return nil, fmt.Errorf("GetDailyOpenClose: %w", err)
	}

	return &dto, nil
}
