package marketmodels

import (
	"fmt"
	"math"
	"strings"
)

// OptionSymbol is the canonical OCC text identifier of an options contract:
//
//	O:<UNDERLYING><YYMMDD><C|P><strike*1000, 8 digits zero-padded>
//
// It is used verbatim as a path segment by the REST endpoints.
type OptionSymbol string

const optionSymbolPrefix = "O:"

func (s OptionSymbol) NoPrefix() string {
	if len(s) >= 2 && strings.EqualFold(string(s)[:2], optionSymbolPrefix) {
		return string(s)[2:]
	}

	return string(s)
}

// Split separates the underlying symbol from the contract suffix. The
// underlying is the maximal leading run of non-digit characters, which must be
// 1-6 letters; the suffix is whatever follows. No silent fallback: a symbol
// without a digit boundary in that window is an error.
func (s OptionSymbol) Split() (StockSymbol, string, error) {
	raw := s.NoPrefix()

	boundary := len(raw)
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			boundary = i
			break
		}
	}

	if boundary < 1 || boundary > 6 {
		return "", "", fmt.Errorf("OptionSymbol.Split: %w: %q", ErrUnderlyingNotFound, string(s))
	}

	underlying, err := NewStockSymbol(raw[:boundary])
	if err != nil {
		return "", "", fmt.Errorf("OptionSymbol.Split: %w", err)
	}

	return underlying, raw[boundary:], nil
}

// Root returns the underlying symbol when the option symbol splits cleanly,
// and otherwise falls back to the whole un-prefixed string as an opaque
// contract identifier. Callers that need a hard failure use Split.
func (s OptionSymbol) Root() string {
	underlying, _, err := s.Split()
	if err != nil {
		return s.NoPrefix()
	}

	return string(underlying)
}

func (s OptionSymbol) Description() (string, error) {
	ticker, err := NewOptionTicker(s)
	if err != nil {
		return "", fmt.Errorf("OptionSymbol.Description: failed to parse option symbol: %w", err)
	}

	expiration, err := ticker.Expiration.ToTime()
	if err != nil {
		return "", fmt.Errorf("OptionSymbol.Description: failed to convert expiration: %w", err)
	}

	optionType := "Call"
	if ticker.OptionType == OptionTypePut {
		optionType = "Put"
	}

	return fmt.Sprintf("%s %s $%.2f %s", ticker.Underlying, expiration.Format("Jan 2 2006"), ticker.Strike, optionType), nil
}

// NewOptionSymbol encodes the ticker into its canonical string. The strike is
// scaled by 1000 with half-away-from-zero rounding and zero-padded to 8
// digits; the two-digit year is the year minus 2000, so only years 2000-2099
// can be represented.
func NewOptionSymbol(ticker OptionTicker) (OptionSymbol, error) {
	underlying := StockSymbol(strings.ToUpper(strings.TrimSpace(string(ticker.Underlying))))
	if err := underlying.Validate(); err != nil {
		return "", fmt.Errorf("NewOptionSymbol: %w", err)
	}

	if err := ticker.Expiration.Validate(); err != nil {
		return "", fmt.Errorf("NewOptionSymbol: %w", err)
	}

	// the two-digit year field only spans 2000-2099; anything else would
	// alias to a different contract on decode
	if ticker.Expiration.Year < 2000 || ticker.Expiration.Year > 2099 {
		return "", fmt.Errorf("NewOptionSymbol: %w: year %v is outside 2000-2099", ErrInvalidDate, ticker.Expiration.Year)
	}

	typeChar, err := ticker.OptionType.CompactChar()
	if err != nil {
		return "", fmt.Errorf("NewOptionSymbol: %w", err)
	}

	// checked on the float side: the int64 conversion overflows for huge
	// strikes, and this form also rejects NaN
	if !(ticker.Strike >= 0 && ticker.Strike <= 99999.999) {
		return "", fmt.Errorf("NewOptionSymbol: %w: got %v", ErrStrikeOutOfRange, ticker.Strike)
	}

	scaledStrike := int64(math.Round(ticker.Strike * 1000))

	year := ticker.Expiration.Year - 2000

	symbol := fmt.Sprintf("%s%s%02d%02d%02d%s%08d",
		optionSymbolPrefix, underlying, year, ticker.Expiration.Month, ticker.Expiration.Day, typeChar, scaledStrike)

	return OptionSymbol(symbol), nil
}
