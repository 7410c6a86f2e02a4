package directive

import (
	"github.com/dmitrymomot/guardrail/pkg/validator"
)

// IsIdentityCard checks national identity numbers of one locale, or of every
// supported locale when none is given.
func IsIdentityCard(opts ...validator.IdentityCardOptions) *Directive {
	o := option(opts)
	if err := o.Validate(); err != nil {
		return Invalid("IsIdentityCard", err)
	}
	return Strings("IsIdentityCard", func(s string) bool {
		return validator.IsIdentityCard(s, o)
	}, "Value :value: is not a valid identity card number", o.Locale)
}

func IsIMEI(opts ...validator.IMEIOptions) *Directive {
	o := option(opts)
	return Strings("IsIMEI", func(s string) bool {
		return validator.IsIMEI(s, o)
	}, "Value :value: is not a valid IMEI number")
}

func IsISIN() *Directive {
	return Strings("IsISIN", validator.IsISIN, "Value :value: is not a valid ISIN")
}

func IsLatLong() *Directive {
	return Strings("IsLatLong", validator.IsLatLong, "Value :value: is not a valid latitude,longitude pair")
}

func IsUUID(opts ...validator.UUIDOptions) *Directive {
	o := option(opts)
	if err := o.Validate(); err != nil {
		return Invalid("IsUUID", err)
	}
	return Strings("IsUUID", func(s string) bool {
		return validator.IsUUID(s, o)
	}, "Value :value: is not a valid UUID", o.Version)
}

func IsSemVer() *Directive {
	return Strings("IsSemVer", validator.IsSemVer, "Value :value: is not a semantic version")
}

func IsCreditCard() *Directive {
	return Strings("IsCreditCard", validator.IsCreditCard, "Value :value: is not a valid credit card number")
}

func IsISO4217() *Directive {
	return Strings("IsISO4217", validator.IsISO4217, "Value :value: is not an ISO 4217 currency code")
}

func IsE164() *Directive {
	return Strings("IsE164", validator.IsE164, "Value :value: is not an E.164 phone number")
}
