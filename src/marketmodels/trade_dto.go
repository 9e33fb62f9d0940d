package marketmodels

import "time"

type TradeDTO struct {
	Conditions           []int32 `json:"conditions"`
	Exchange             int     `json:"exchange"`
	Price                float64 `json:"price"`
	Size                 float64 `json:"size"`
	SipTimestamp         int64   `json:"sip_timestamp"`
	ParticipantTimestamp int64   `json:"participant_timestamp"`
}

func (d *TradeDTO) Time() time.Time {
	return time.Unix(0, d.SipTimestamp).UTC()
}

// LastTradeDTO is the v2 last-trade payload; the short field names mirror the
// wire format.
type LastTradeDTO struct {
	Ticker       OptionSymbol `json:"T"`
	Conditions   []int32      `json:"c"`
	Exchange     int          `json:"x"`
	Price        float64      `json:"p"`
	Size         float64      `json:"s"`
	SipTimestamp int64        `json:"t"`
	Sequence     int64        `json:"q"`
}

func (d *LastTradeDTO) Time() time.Time {
	return time.Unix(0, d.SipTimestamp).UTC()
}
