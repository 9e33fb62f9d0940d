package marketmodels

import (
	"fmt"
	"strings"
)

type StockSymbol string

// Validate checks the symbol is 1-6 uppercase ASCII letters, the only shape
// that can appear as the underlying of an OCC option symbol.
func (s StockSymbol) Validate() error {
	if len(s) < 1 || len(s) > 6 {
		return fmt.Errorf("StockSymbol.Validate: %w: got %q", ErrInvalidUnderlying, string(s))
	}

	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return fmt.Errorf("StockSymbol.Validate: %w: got %q", ErrInvalidUnderlying, string(s))
		}
	}

	return nil
}

func NewStockSymbol(symbol string) (StockSymbol, error) {
	s := StockSymbol(strings.ToUpper(strings.TrimSpace(symbol)))
	if err := s.Validate(); err != nil {
		return "", fmt.Errorf("NewStockSymbol: %w", err)
	}

	return s, nil
}
