package directive

import (
	"github.com/dmitrymomot/guardrail/pkg/validator"
)

// IsAlpha accepts letters of the locale's alphabet only. An unknown locale
// is a configuration error.
func IsAlpha(opts ...validator.LocaleOptions) *Directive {
	o := option(opts)
	if err := o.Validate(); err != nil {
		return Invalid("IsAlpha", err)
	}
	return Strings("IsAlpha", func(s string) bool {
		return validator.IsAlpha(s, o)
	}, "Value :value: must contain only letters", o.Locale)
}

// IsAlphanumeric accepts letters of the locale's alphabet and digits.
func IsAlphanumeric(opts ...validator.LocaleOptions) *Directive {
	o := option(opts)
	if err := o.Validate(); err != nil {
		return Invalid("IsAlphanumeric", err)
	}
	return Strings("IsAlphanumeric", func(s string) bool {
		return validator.IsAlphanumeric(s, o)
	}, "Value :value: must contain only letters and numbers", o.Locale)
}

func IsASCII() *Directive {
	return Strings("IsASCII", validator.IsASCII, "Value :value: must contain only ASCII characters")
}

func IsFullWidth() *Directive {
	return Strings("IsFullWidth", validator.IsFullWidth, "Value :value: must contain full-width characters")
}

func IsHalfWidth() *Directive {
	return Strings("IsHalfWidth", validator.IsHalfWidth, "Value :value: must contain half-width characters")
}

func IsVariableWidth() *Directive {
	return Strings("IsVariableWidth", validator.IsVariableWidth, "Value :value: must mix full-width and half-width characters")
}

func IsMultibyte() *Directive {
	return Strings("IsMultibyte", validator.IsMultibyte, "Value :value: must contain multibyte characters")
}

func IsLowercase() *Directive {
	return Strings("IsLowercase", validator.IsLowercase, "Value :value: must be lowercase")
}

func IsUppercase() *Directive {
	return Strings("IsUppercase", validator.IsUppercase, "Value :value: must be uppercase")
}

func IsHexadecimal() *Directive {
	return Strings("IsHexadecimal", validator.IsHexadecimal, "Value :value: is not a hexadecimal number")
}

func IsOctal() *Directive {
	return Strings("IsOctal", validator.IsOctal, "Value :value: is not an octal number")
}

func IsHexColor() *Directive {
	return Strings("IsHexColor", validator.IsHexColor, "Value :value: is not a hexadecimal color")
}

func IsMongoID() *Directive {
	return Strings("IsMongoID", validator.IsMongoID, "Value :value: is not a valid MongoDB ObjectId")
}
