package marketmodels

import "fmt"

type OptionContractDTO struct {
	ContractType      OptionType   `json:"contract_type"`
	ExerciseStyle     string       `json:"exercise_style"`
	ExpirationDate    string       `json:"expiration_date"`
	PrimaryExchange   string       `json:"primary_exchange"`
	SharesPerContract int          `json:"shares_per_contract"`
	StrikePrice       float64      `json:"strike_price"`
	Ticker            OptionSymbol `json:"ticker"`
	UnderlyingTicker  StockSymbol  `json:"underlying_ticker"`
}

// ToTicker rebuilds the structured ticker from the contract's reference
// fields, which is cheaper than decoding d.Ticker and catches contracts whose
// reference data disagrees with their symbol.
func (d OptionContractDTO) ToTicker() (*OptionTicker, error) {
	expiration, err := NewDate(d.ExpirationDate)
	if err != nil {
		return nil, fmt.Errorf("OptionContractDTO.ToTicker: %w", err)
	}

	ticker := OptionTicker{
		Underlying: d.UnderlyingTicker,
		Expiration: *expiration,
		OptionType: d.ContractType,
		Strike:     d.StrikePrice,
	}

	if err := ticker.Validate(); err != nil {
		return nil, fmt.Errorf("OptionContractDTO.ToTicker: %w", err)
	}

	return &ticker, nil
}
