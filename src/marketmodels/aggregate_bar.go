package marketmodels

import "time"

type AggregateBarDTO struct {
	Volume    float64 `json:"v"`
	Open      float64 `json:"o"`
	Close     float64 `json:"c"`
	High      float64 `json:"h"`
	Low       float64 `json:"l"`
	Timestamp int64   `json:"t"`
	Count     int     `json:"n"`
	Vwap      float64 `json:"vw"`
}

// Time converts the Unix msec timestamp for the start of the aggregate window.
func (d *AggregateBarDTO) Time() time.Time {
	return time.Unix(0, d.Timestamp*int64(time.Millisecond)).UTC()
}

type AggregateBarsResponse struct {
	Ticker       OptionSymbol      `json:"ticker"`
	QueryCount   int               `json:"queryCount"`
	ResultsCount int               `json:"resultsCount"`
	Adjusted     bool              `json:"adjusted"`
	Results      []AggregateBarDTO `json:"results"`
	Status       string            `json:"status"`
	RequestID    string            `json:"request_id"`
	NextURL      *string           `json:"next_url"`
}
