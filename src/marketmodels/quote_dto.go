package marketmodels

import "time"

type QuoteDTO struct {
	AskExchange  int     `json:"ask_exchange"`
	AskPrice     float64 `json:"ask_price"`
	AskSize      float64 `json:"ask_size"`
	BidExchange  int     `json:"bid_exchange"`
	BidPrice     float64 `json:"bid_price"`
	BidSize      float64 `json:"bid_size"`
	SipTimestamp int64   `json:"sip_timestamp"`
	Sequence     int64   `json:"sequence_number"`
}

func (d *QuoteDTO) Time() time.Time {
	return time.Unix(0, d.SipTimestamp).UTC()
}

func (d *QuoteDTO) Midpoint() float64 {
	return (d.BidPrice + d.AskPrice) / 2
}
