package marketmodels

import (
	"errors"
	"fmt"
)

var (
	ErrMissingPrefix      = errors.New("option symbol is missing the O: prefix")
	ErrTooShort           = errors.New("option symbol is too short")
	ErrBadSuffixLength    = errors.New("option symbol contract suffix is malformed")
	ErrUnderlyingNotFound = errors.New("no underlying symbol found before the first digit")
	ErrInvalidDate        = errors.New("invalid expiration date")
	ErrInvalidType        = errors.New("invalid option type")
	ErrInvalidUnderlying  = errors.New("underlying must be 1-6 ASCII letters")
	ErrStrikeOutOfRange   = errors.New("strike must be between 0 and 99999.999")
)

// IncompleteBuilderError reports which field was never set before a terminal
// builder call.
type IncompleteBuilderError struct {
	Field string
}

func (e *IncompleteBuilderError) Error() string {
	return fmt.Sprintf("option ticker builder: missing %s", e.Field)
}
