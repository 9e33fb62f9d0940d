package marketmodels

import (
	"fmt"
	"strconv"
	"time"
)

// OptionTicker holds the parsed components of an OCC option symbol. Values
// are never mutated after construction; a new one is built fresh via
// NewOptionTicker or the builder.
type OptionTicker struct {
	Underlying StockSymbol
	Expiration Date
	OptionType OptionType
	Strike     float64
}

func (t OptionTicker) Validate() error {
	if err := t.Underlying.Validate(); err != nil {
		return fmt.Errorf("OptionTicker.Validate: %w", err)
	}

	if err := t.Expiration.Validate(); err != nil {
		return fmt.Errorf("OptionTicker.Validate: %w", err)
	}

	if t.Expiration.Year < 2000 || t.Expiration.Year > 2099 {
		return fmt.Errorf("OptionTicker.Validate: %w: year %v is outside 2000-2099", ErrInvalidDate, t.Expiration.Year)
	}

	if err := t.OptionType.Validate(); err != nil {
		return fmt.Errorf("OptionTicker.Validate: %w", err)
	}

	// written so that NaN fails too
	if !(t.Strike >= 0 && t.Strike <= 99999.999) {
		return fmt.Errorf("OptionTicker.Validate: %w: got %v", ErrStrikeOutOfRange, t.Strike)
	}

	return nil
}

func (t OptionTicker) TimeUntilExpiration(now time.Time) (time.Duration, error) {
	expiration, err := t.Expiration.ToTime()
	if err != nil {
		return 0, fmt.Errorf("OptionTicker.TimeUntilExpiration: %w", err)
	}

	return expiration.Sub(now), nil
}

// minimum un-prefixed length: 1-char underlying + 6 date digits + type char +
// 8 strike digits
const minSymbolBodyLength = 16

const contractSuffixLength = 15

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}

// NewOptionTicker decodes a canonical option symbol back into its
// components. The O: prefix and the C/P type character are matched
// case-insensitively; the two-digit year expands as 2000+YY.
func NewOptionTicker(symbol OptionSymbol) (*OptionTicker, error) {
	raw := string(symbol)
	if len(raw) < 2 || (raw[0] != 'O' && raw[0] != 'o') || raw[1] != ':' {
		return nil, fmt.Errorf("NewOptionTicker: %w: got %q", ErrMissingPrefix, raw)
	}

	body := raw[2:]
	if len(body) < minSymbolBodyLength {
		return nil, fmt.Errorf("NewOptionTicker: %w: got %q", ErrTooShort, raw)
	}

	underlying, suffix, err := symbol.Split()
	if err != nil {
		return nil, fmt.Errorf("NewOptionTicker: %w", err)
	}

	if len(suffix) != contractSuffixLength {
		return nil, fmt.Errorf("NewOptionTicker: %w: got %q", ErrBadSuffixLength, suffix)
	}

	dateDigits := suffix[:6]
	typeChar := suffix[6]
	strikeDigits := suffix[7:]

	if !isDigits(dateDigits) {
		return nil, fmt.Errorf("NewOptionTicker: %w: got %q", ErrInvalidDate, dateDigits)
	}

	if !isDigits(strikeDigits) {
		return nil, fmt.Errorf("NewOptionTicker: %w: got %q", ErrBadSuffixLength, suffix)
	}

	yy, _ := strconv.Atoi(dateDigits[:2])
	mm, _ := strconv.Atoi(dateDigits[2:4])
	dd, _ := strconv.Atoi(dateDigits[4:6])

	expiration := Date{Year: 2000 + yy, Month: mm, Day: dd}
	if err := expiration.Validate(); err != nil {
		return nil, fmt.Errorf("NewOptionTicker: %w", err)
	}

	optionType, err := newOptionTypeFromChar(typeChar)
	if err != nil {
		return nil, fmt.Errorf("NewOptionTicker: %w", err)
	}

	scaledStrike, err := strconv.ParseUint(strikeDigits, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("NewOptionTicker: %w: got %q", ErrBadSuffixLength, strikeDigits)
	}

	return &OptionTicker{
		Underlying: underlying,
		Expiration: expiration,
		OptionType: optionType,
		Strike:     float64(scaledStrike) / 1000,
	}, nil
}

// TryNewOptionTicker is the boolean-outcome variant of NewOptionTicker for
// callers that do not care why a symbol failed to parse.
func TryNewOptionTicker(symbol OptionSymbol) (*OptionTicker, bool) {
	ticker, err := NewOptionTicker(symbol)
	if err != nil {
		return nil, false
	}

	return ticker, true
}
