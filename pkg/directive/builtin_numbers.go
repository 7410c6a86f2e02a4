package directive

import (
	"fmt"

	"github.com/dmitrymomot/guardrail/pkg/validator"
)

func IsInt(opts ...validator.IntOptions) *Directive {
	o := option(opts)
	return Strings("IsInt", func(s string) bool {
		return validator.IsInt(s, o)
	}, "Value :value: is not an integer")
}

// IsIntRange accepts integers in [min, max]. min > max is a configuration error.
func IsIntRange(min, max int64, opts ...validator.IntOptions) *Directive {
	if min > max {
		return Invalid("IsIntRange", invalidArgs("range min %d is greater than max %d", min, max))
	}
	o := option(opts)
	return Strings("IsIntRange", func(s string) bool {
		return validator.IsIntRange(s, min, max, o)
	}, fmt.Sprintf("Value :value: is not an integer in range [%d, %d]", min, max), min, max)
}

// IsFloat accepts floats written with the locale's decimal separator.
func IsFloat(opts ...validator.FloatOptions) *Directive {
	o := option(opts)
	if err := o.Validate(); err != nil {
		return Invalid("IsFloat", err)
	}
	return Strings("IsFloat", func(s string) bool {
		return validator.IsFloat(s, o)
	}, "Value :value: is not a float", o.Locale)
}

// IsFloatRange accepts floats in [min, max].
func IsFloatRange(min, max float64, opts ...validator.FloatOptions) *Directive {
	if min > max {
		return Invalid("IsFloatRange", invalidArgs("range min %g is greater than max %g", min, max))
	}
	o := option(opts)
	if err := o.Validate(); err != nil {
		return Invalid("IsFloatRange", err)
	}
	return Strings("IsFloatRange", func(s string) bool {
		return validator.IsFloatRange(s, min, max, o)
	}, fmt.Sprintf("Value :value: is not a float in range [%g, %g]", min, max), min, max)
}

// IsDecimal accepts decimal numbers in the locale. An unknown locale or a
// malformed DecimalDigits is a configuration error.
func IsDecimal(opts ...validator.DecimalOptions) *Directive {
	o := option(opts)
	if err := o.Validate(); err != nil {
		return Invalid("IsDecimal", err)
	}
	return Strings("IsDecimal", func(s string) bool {
		return validator.IsDecimal(s, o)
	}, "Value :value: is not a decimal number", o.Locale)
}

func IsNumeric(opts ...validator.NumericOptions) *Directive {
	o := option(opts)
	return Strings("IsNumeric", func(s string) bool {
		return validator.IsNumeric(s, o)
	}, "Value :value: is not numeric")
}

// IsDivisibleBy accepts integers that are multiples of divisor. A zero divisor
// is a configuration error.
func IsDivisibleBy(divisor int64) *Directive {
	if divisor == 0 {
		return Invalid("IsDivisibleBy", invalidArgs("divisor is zero"))
	}
	return Strings("IsDivisibleBy", func(s string) bool {
		return validator.IsDivisibleBy(s, divisor)
	}, fmt.Sprintf("Value :value: is not divisible by %d", divisor), divisor)
}
