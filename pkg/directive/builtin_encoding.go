package directive

import (
	"github.com/dmitrymomot/guardrail/pkg/validator"
)

func IsBase32() *Directive {
	return Strings("IsBase32", validator.IsBase32, "Value :value: is not base32 encoded")
}

func IsBase58() *Directive {
	return Strings("IsBase58", validator.IsBase58, "Value :value: is not base58 encoded")
}

func IsBase64(opts ...validator.Base64Options) *Directive {
	o := option(opts)
	return Strings("IsBase64", func(s string) bool {
		return validator.IsBase64(s, o)
	}, "Value :value: is not base64 encoded")
}

func IsDataURI() *Directive {
	return Strings("IsDataURI", validator.IsDataURI, "Value :value: is not a data URI")
}

func IsMimeType() *Directive {
	return Strings("IsMimeType", validator.IsMimeType, "Value :value: is not a MIME type")
}

func IsJWT() *Directive {
	return Strings("IsJWT", validator.IsJWT, "Value :value: is not a JSON Web Token")
}
