package marketmodels

import (
	"fmt"
	"strings"
)

// OptionTickerBuilder accumulates the four ticker components across chained
// calls and validates completeness at build time. It is owned by a single
// construction flow; it is not safe for concurrent mutation.
//
// Setter failures are recorded and surfaced by the terminal call, so chains
// never need intermediate error checks. Setters may run in any order and
// last-write-wins on repeats. Build and BuildTicker do not mutate the
// builder; only Reset returns it to the empty state.
type OptionTickerBuilder struct {
	underlying *StockSymbol
	expiration *Date
	optionType *OptionType
	strike     *float64
	err        error
}

func NewOptionTickerBuilder() *OptionTickerBuilder {
	return &OptionTickerBuilder{}
}

// NewOptionTickerBuilderFromSymbol pre-seeds a builder from an existing
// symbol. A fully canonical symbol seeds all four slots; a partial one seeds
// whatever components can be recovered, starting with the underlying.
func NewOptionTickerBuilderFromSymbol(symbol OptionSymbol) *OptionTickerBuilder {
	b := NewOptionTickerBuilder()

	if ticker, ok := TryNewOptionTicker(symbol); ok {
		return b.WithUnderlying(string(ticker.Underlying)).
			WithExpiration(ticker.Expiration).
			WithOptionType(ticker.OptionType).
			WithStrike(ticker.Strike)
	}

	if underlying, _, err := symbol.Split(); err == nil {
		return b.WithUnderlying(string(underlying))
	}

	return b
}

func (b *OptionTickerBuilder) WithUnderlying(symbol string) *OptionTickerBuilder {
	trimmed := strings.ToUpper(strings.TrimSpace(symbol))
	if trimmed == "" {
		if b.err == nil {
			b.err = fmt.Errorf("OptionTickerBuilder.WithUnderlying: %w: symbol is blank", ErrInvalidUnderlying)
		}
		return b
	}

	underlying := StockSymbol(trimmed)
	b.underlying = &underlying
	return b
}

func (b *OptionTickerBuilder) WithExpiration(date Date) *OptionTickerBuilder {
	b.expiration = &date
	return b
}

func (b *OptionTickerBuilder) WithExpirationDate(year, month, day int) *OptionTickerBuilder {
	date := Date{Year: year, Month: month, Day: day}
	if err := date.Validate(); err != nil {
		if b.err == nil {
			b.err = fmt.Errorf("OptionTickerBuilder.WithExpirationDate: %w", err)
		}
		return b
	}

	b.expiration = &date
	return b
}

func (b *OptionTickerBuilder) WithOptionType(optionType OptionType) *OptionTickerBuilder {
	b.optionType = &optionType
	return b
}

func (b *OptionTickerBuilder) AsCall() *OptionTickerBuilder {
	return b.WithOptionType(OptionTypeCall)
}

func (b *OptionTickerBuilder) AsPut() *OptionTickerBuilder {
	return b.WithOptionType(OptionTypePut)
}

func (b *OptionTickerBuilder) WithStrike(strike float64) *OptionTickerBuilder {
	if strike < 0 {
		if b.err == nil {
			b.err = fmt.Errorf("OptionTickerBuilder.WithStrike: %w: got %v", ErrStrikeOutOfRange, strike)
		}
		return b
	}

	b.strike = &strike
	return b
}

func (b *OptionTickerBuilder) checkComplete() error {
	if b.err != nil {
		return b.err
	}

	if b.underlying == nil {
		return &IncompleteBuilderError{Field: "underlying"}
	}

	if b.expiration == nil {
		return &IncompleteBuilderError{Field: "expiration"}
	}

	if b.optionType == nil {
		return &IncompleteBuilderError{Field: "option type"}
	}

	if b.strike == nil {
		return &IncompleteBuilderError{Field: "strike"}
	}

	return nil
}

// Build validates completeness and encodes the canonical symbol.
func (b *OptionTickerBuilder) Build() (OptionSymbol, error) {
	ticker, err := b.BuildTicker()
	if err != nil {
		return "", fmt.Errorf("OptionTickerBuilder.Build: %w", err)
	}

	symbol, err := NewOptionSymbol(*ticker)
	if err != nil {
		return "", fmt.Errorf("OptionTickerBuilder.Build: %w", err)
	}

	return symbol, nil
}

// BuildTicker validates completeness and returns the structured ticker.
func (b *OptionTickerBuilder) BuildTicker() (*OptionTicker, error) {
	if err := b.checkComplete(); err != nil {
		return nil, err
	}

	ticker := OptionTicker{
		Underlying: *b.underlying,
		Expiration: *b.expiration,
		OptionType: *b.optionType,
		Strike:     *b.strike,
	}

	if err := ticker.Validate(); err != nil {
		return nil, fmt.Errorf("OptionTickerBuilder.BuildTicker: %w", err)
	}

	return &ticker, nil
}

// Reset clears all four slots and any recorded setter error so the builder
// can be reused for a new ticker.
func (b *OptionTickerBuilder) Reset() *OptionTickerBuilder {
	b.underlying = nil
	b.expiration = nil
	b.optionType = nil
	b.strike = nil
	b.err = nil
	return b
}
