package validator

import (
	"errors"
	"fmt"
)

// Configuration errors reported by the Validate methods of option types.
var (
	// ErrUnknownLocale is returned when a locale has no entry in the lookup tables.
	ErrUnknownLocale = errors.New("unknown locale")

	// ErrUnsupportedAlgorithm is returned when a hash algorithm is not recognised.
	ErrUnsupportedAlgorithm = errors.New("unsupported hash algorithm")

	// ErrUnsupportedVersion is returned for IP or UUID versions that do not exist.
	ErrUnsupportedVersion = errors.New("unsupported version")

	// ErrInvalidOption is returned when an option value is structurally invalid.
	ErrInvalidOption = errors.New("invalid option")
)

func invalidOption(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidOption}, args...)...)
}
