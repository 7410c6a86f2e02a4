package directive

import (
	"github.com/dmitrymomot/guardrail/pkg/validator"
)

func IsEmail(opts ...validator.EmailOptions) *Directive {
	o := option(opts)
	return Strings("IsEmail", func(s string) bool {
		return validator.IsEmail(s, o)
	}, "Value :value: is not a valid email address")
}

func IsFQDN(opts ...validator.FQDNOptions) *Directive {
	o := option(opts)
	return Strings("IsFQDN", func(s string) bool {
		return validator.IsFQDN(s, o)
	}, "Value :value: is not a fully qualified domain name")
}

// IsHash accepts the hex digest of algorithm. An unknown algorithm is a
// configuration error.
func IsHash(algorithm validator.HashAlgorithm) *Directive {
	if err := algorithm.Validate(); err != nil {
		return Invalid("IsHash", err)
	}
	return Strings("IsHash", func(s string) bool {
		return validator.IsHash(s, algorithm)
	}, "Value :value: is not a valid "+string(algorithm)+" hash", algorithm)
}

// IsIP accepts addresses of version: validator.AnyIP, IPv4 or IPv6.
func IsIP(version validator.IPVersion) *Directive {
	if err := version.Validate(); err != nil {
		return Invalid("IsIP", err)
	}
	return Strings("IsIP", func(s string) bool {
		return validator.IsIP(s, version)
	}, "Value :value: is not a valid IP address", version)
}

// IsIPRange accepts CIDR ranges of version.
func IsIPRange(version validator.IPVersion) *Directive {
	if err := version.Validate(); err != nil {
		return Invalid("IsIPRange", err)
	}
	return Strings("IsIPRange", func(s string) bool {
		return validator.IsIPRange(s, version)
	}, "Value :value: is not a valid IP range", version)
}

func IsISO31661Alpha2() *Directive {
	return Strings("IsISO31661Alpha2", validator.IsISO31661Alpha2, "Value :value: is not an ISO 3166-1 alpha-2 country code")
}

func IsISO31661Alpha3() *Directive {
	return Strings("IsISO31661Alpha3", validator.IsISO31661Alpha3, "Value :value: is not an ISO 3166-1 alpha-3 country code")
}

func IsURL(opts ...validator.URLOptions) *Directive {
	o := option(opts)
	return Strings("IsURL", func(s string) bool {
		return validator.IsURL(s, o)
	}, "Value :value: is not a valid URL")
}

func IsMACAddress(opts ...validator.MACOptions) *Directive {
	o := option(opts)
	return Strings("IsMACAddress", func(s string) bool {
		return validator.IsMACAddress(s, o)
	}, "Value :value: is not a valid MAC address")
}

func IsPort() *Directive {
	return Strings("IsPort", validator.IsPort, "Value :value: is not a valid port number")
}
