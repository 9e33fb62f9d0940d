package stream

import (
	"time"

	"github.com/quantgate/marketdata/src/marketmodels"
)

// EventDTO is one websocket event. The feed multiplexes trades (ev=T),
// quotes (ev=Q) and status frames (ev=status) over one connection, so the
// struct is the union of their fields.
type EventDTO struct {
	EventType string                    `json:"ev"`
	Status    string                    `json:"status"`
	Message   string                    `json:"message"`
	Symbol    marketmodels.OptionSymbol `json:"sym"`
	Price     float64                   `json:"p"`
	Size      float64                   `json:"s"`
	BidPrice  float64                   `json:"bp"`
	AskPrice  float64                   `json:"ap"`
	Timestamp int64                     `json:"t"`
}

func (e *EventDTO) Time() time.Time {
	return time.Unix(0, e.Timestamp*int64(time.Millisecond)).UTC()
}

type controlMessageDTO struct {
	Action string `json:"action"`
	Params string `json:"params"`
}
