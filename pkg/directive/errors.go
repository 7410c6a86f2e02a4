package directive

import (
	"errors"
	"fmt"
)

var (
	// ErrConstraintViolation is matched by every *ConstraintViolation.
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrConfiguration is matched by every *ConfigurationError.
	ErrConfiguration = errors.New("invalid directive configuration")
)

// ConstraintViolation is returned when a value fails a directive. The write
// or call it guarded did not happen.
type ConstraintViolation struct {
	Target Target
	// Name is the display name of the target, e.g. "shop.Vehicle.Name".
	Name      string
	Directive string
	// Key identifies the directive for callers that map errors to their own messages.
	Key     string
	Value   any
	Message string
}

func (e *ConstraintViolation) Error() string {
	return e.Message
}

func (e *ConstraintViolation) Is(target error) bool {
	return target == ErrConstraintViolation
}

// ConfigurationError is returned at declaration time when a directive cannot
// be registered. Err holds the cause, e.g. validator.ErrUnknownLocale.
type ConfigurationError struct {
	Target    Target
	Directive string
	Err       error
}

func (e *ConfigurationError) Error() string {
	if e.Directive == "" {
		return fmt.Sprintf("directive on %s: %v", e.Target, e.Err)
	}
	return fmt.Sprintf("directive %s on %s: %v", e.Directive, e.Target, e.Err)
}

func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// IsConstraintViolation reports whether err is or wraps a constraint violation.
func IsConstraintViolation(err error) bool {
	return errors.Is(err, ErrConstraintViolation)
}

// AsConstraintViolation extracts the first constraint violation from err.
func AsConstraintViolation(err error) (*ConstraintViolation, bool) {
	var cv *ConstraintViolation
	if errors.As(err, &cv) {
		return cv, true
	}
	return nil, false
}
