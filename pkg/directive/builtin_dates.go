package directive

import (
	"time"

	"github.com/dmitrymomot/guardrail/pkg/validator"
)

// IsDate accepts time.Time values and date strings in the configured format.
func IsDate(opts ...validator.DateOptions) *Directive {
	o := option(opts)
	if err := o.Validate(); err != nil {
		return Invalid("IsDate", err)
	}
	return Make("IsDate", func(v any) bool {
		return validator.IsDate(v, o)
	}, "Value :value: is not a valid date", o.Format)
}

func IsISO8601() *Directive {
	return Strings("IsISO8601", validator.IsISO8601, "Value :value: is not an ISO 8601 date")
}

func IsRFC3339() *Directive {
	return Strings("IsRFC3339", validator.IsRFC3339, "Value :value: is not an RFC 3339 timestamp")
}

func IsAfter(ref time.Time) *Directive {
	return Make("IsAfter", func(v any) bool {
		return validator.IsAfter(v, ref)
	}, "Value :value: is not after "+ref.Format(time.RFC3339), ref)
}

func IsBefore(ref time.Time) *Directive {
	return Make("IsBefore", func(v any) bool {
		return validator.IsBefore(v, ref)
	}, "Value :value: is not before "+ref.Format(time.RFC3339), ref)
}
