package directive

import (
	"fmt"
	"regexp"

	"github.com/dmitrymomot/guardrail/pkg/validator"
)

// option returns the first options struct, or the zero value.
func option[T any](opts []T) T {
	var zero T
	if len(opts) > 0 {
		return opts[0]
	}
	return zero
}

func invalidArgs(format string, args ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{validator.ErrInvalidOption}, args...)...)
}

func Contains(seed string, opts ...validator.ContainsOptions) *Directive {
	o := option(opts)
	return Strings("Contains", func(s string) bool {
		return validator.Contains(s, seed, o)
	}, "Value :value: does not contain "+seed, seed)
}

func Equals(comparison string) *Directive {
	return Strings("Equals", func(s string) bool {
		return validator.Equals(s, comparison)
	}, "Value :value: does not equal "+comparison, comparison)
}

// Matches compiles pattern at declaration time; a bad pattern is a
// configuration error.
func Matches(pattern string) *Directive {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Invalid("Matches", fmt.Errorf("%w: %w", validator.ErrInvalidOption, err))
	}
	return MatchesRegexp(re)
}

func MatchesRegexp(re *regexp.Regexp) *Directive {
	if re == nil {
		return Invalid("Matches", invalidArgs("nil pattern"))
	}
	return Strings("Matches", func(s string) bool {
		return validator.Matches(s, re)
	}, "Value :value: does not match "+re.String(), re.String())
}

func IsIn(values ...string) *Directive {
	return Strings("IsIn", func(s string) bool {
		return validator.IsIn(s, values)
	}, fmt.Sprintf("Value :value: is not one of %v", values), values)
}

func IsEmpty(opts ...validator.EmptyOptions) *Directive {
	o := option(opts)
	return Strings("IsEmpty", func(s string) bool {
		return validator.IsEmpty(s, o)
	}, "Value :value: is not empty")
}

func IsNotEmpty(opts ...validator.EmptyOptions) *Directive {
	o := option(opts)
	return Strings("IsNotEmpty", func(s string) bool {
		return validator.IsNotEmpty(s, o)
	}, "Value must not be empty")
}

func IsJSON(opts ...validator.JSONOptions) *Directive {
	o := option(opts)
	return Strings("IsJSON", func(s string) bool {
		return validator.IsJSON(s, o)
	}, "Value :value: is not valid JSON")
}

// IsByteLength bounds the UTF-8 length in bytes. Use validator.NoLimit for max
// to leave it open.
func IsByteLength(min, max int) *Directive {
	if err := validator.LengthBounds(min, max); err != nil {
		return Invalid("IsByteLength", err)
	}
	return Strings("IsByteLength", func(s string) bool {
		return validator.IsByteLength(s, min, max)
	}, lengthMessage("bytes", min, max), min, max)
}

// IsLength bounds the length in characters. Use validator.NoLimit for max to
// leave it open.
func IsLength(min, max int) *Directive {
	if err := validator.LengthBounds(min, max); err != nil {
		return Invalid("IsLength", err)
	}
	return Strings("IsLength", func(s string) bool {
		return validator.IsLength(s, min, max)
	}, lengthMessage("characters", min, max), min, max)
}

func lengthMessage(unit string, min, max int) string {
	if max < 0 {
		return fmt.Sprintf("Value :value: must be at least %d %s long", min, unit)
	}
	return fmt.Sprintf("Value :value: must be between %d and %d %s long", min, max, unit)
}
