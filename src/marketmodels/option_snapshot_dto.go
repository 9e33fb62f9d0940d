package marketmodels

type DayAggregateDTO struct {
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"change_percent"`
	Open          float64 `json:"open"`
	High          float64 `json:"high"`
	Low           float64 `json:"low"`
	Close         float64 `json:"close"`
	Volume        float64 `json:"volume"`
	Vwap          float64 `json:"vwap"`
	LastUpdated   int64   `json:"last_updated"`
}

type GreeksDTO struct {
	Delta float64 `json:"delta"`
	Gamma float64 `json:"gamma"`
	Theta float64 `json:"theta"`
	Vega  float64 `json:"vega"`
}

type SnapshotQuoteDTO struct {
	Ask         float64 `json:"ask"`
	AskSize     float64 `json:"ask_size"`
	Bid         float64 `json:"bid"`
	BidSize     float64 `json:"bid_size"`
	Midpoint    float64 `json:"midpoint"`
	LastUpdated int64   `json:"last_updated"`
}

type SnapshotTradeDTO struct {
	Price        float64 `json:"price"`
	Size         float64 `json:"size"`
	Exchange     int     `json:"exchange"`
	Conditions   []int32 `json:"conditions"`
	SipTimestamp int64   `json:"sip_timestamp"`
}

type UnderlyingAssetDTO struct {
	Price             float64     `json:"price"`
	Ticker            StockSymbol `json:"ticker"`
	ChangeToBreakEven float64     `json:"change_to_break_even"`
	LastUpdated       int64       `json:"last_updated"`
}

type OptionContractSnapshotDTO struct {
	BreakEvenPrice    float64            `json:"break_even_price"`
	Day               DayAggregateDTO    `json:"day"`
	Details           OptionContractDTO  `json:"details"`
	Greeks            GreeksDTO          `json:"greeks"`
	ImpliedVolatility float64            `json:"implied_volatility"`
	LastQuote         SnapshotQuoteDTO   `json:"last_quote"`
	LastTrade         SnapshotTradeDTO   `json:"last_trade"`
	OpenInterest      float64            `json:"open_interest"`
	UnderlyingAsset   UnderlyingAssetDTO `json:"underlying_asset"`
}
