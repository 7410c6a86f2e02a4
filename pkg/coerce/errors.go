package coerce

import (
	"errors"
	"fmt"
)

// ErrTypeMismatch is matched by every error returned from this package.
var ErrTypeMismatch = errors.New("type mismatch")

// TypeMismatchError reports a value that cannot be converted to Kind.
type TypeMismatchError struct {
	// Kind is the requested target: "int", "float", "date" or "boolean".
	Kind  string
	Value any
	// Err is the underlying parse error, if any.
	Err error
}

func (e *TypeMismatchError) Error() string {
	msg := fmt.Sprintf("cannot convert %T(%v) to %s", e.Value, e.Value, e.Kind)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Is makes errors.Is(err, ErrTypeMismatch) hold.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

func (e *TypeMismatchError) Unwrap() error {
	return e.Err
}

func mismatch(kind string, value any, err error) error {
	return &TypeMismatchError{Kind: kind, Value: value, Err: err}
}
