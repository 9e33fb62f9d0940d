package marketmodels

import "fmt"

type OptionType string

const (
	OptionTypeCall OptionType = "call"
	OptionTypePut  OptionType = "put"
)

func (o OptionType) Validate() error {
	if o != OptionTypeCall && o != OptionTypePut {
		return fmt.Errorf("OptionType.Validate: %w: got %q", ErrInvalidType, string(o))
	}

	return nil
}

// CompactChar returns the single-letter OCC representation: C or P.
func (o OptionType) CompactChar() (string, error) {
	switch o {
	case OptionTypeCall:
		return "C", nil
	case OptionTypePut:
		return "P", nil
	default:
		return "", fmt.Errorf("OptionType.CompactChar: %w: got %q", ErrInvalidType, string(o))
	}
}

func newOptionTypeFromChar(c byte) (OptionType, error) {
	switch c {
	case 'C', 'c':
		return OptionTypeCall, nil
	case 'P', 'p':
		return OptionTypePut, nil
	default:
		return "", fmt.Errorf("newOptionTypeFromChar: %w: got %q", ErrInvalidType, string(c))
	}
}
