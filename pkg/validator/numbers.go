package validator

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

var (
	intRegex            = regexp.MustCompile(`^[-+]?(?:0|[1-9][0-9]*)$`)
	intLeadingZeroRegex = regexp.MustCompile(`^[-+]?[0-9]+$`)
	numericRegex        = regexp.MustCompile(`^[+-]?([0-9]*[.])?[0-9]+$`)
	numericNoSymbols    = regexp.MustCompile(`^[0-9]+$`)
	decimalDigitsRegex  = regexp.MustCompile(`^\d+,?\d*$`)
)

// IntOptions configures IsInt and IsIntRange.
type IntOptions struct {
	// AllowLeadingZeroes accepts forms such as "007".
	AllowLeadingZeroes bool
}

// IsInt reports whether str is a base-10 integer with an optional sign.
func IsInt(str string, opts IntOptions) bool {
	if opts.AllowLeadingZeroes {
		return intLeadingZeroRegex.MatchString(str)
	}
	return intRegex.MatchString(str)
}

// IsIntRange reports whether str is an integer within [min, max].
func IsIntRange(str string, min, max int64, opts IntOptions) bool {
	if !IsInt(str, opts) {
		return false
	}
	n, err := strconv.ParseInt(str, 10, 64)
	return err == nil && n >= min && n <= max
}

// FloatOptions configures IsFloat and IsFloatRange.
type FloatOptions struct {
	// Locale selects the decimal separator and defaults to DefaultLocale.
	Locale string
}

// Validate reports a locale without a decimal separator entry.
func (o FloatOptions) Validate() error {
	_, err := DecimalSeparator(o.Locale)
	return err
}

// compiled caches patterns built from locale separators and digit bounds.
var compiled sync.Map

func compile(expr string) (*regexp.Regexp, error) {
	if re, ok := compiled.Load(expr); ok {
		return re.(*regexp.Regexp), nil
	}
	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, err
	}
	compiled.Store(expr, re)
	return re, nil
}

func floatPattern(sep string) (*regexp.Regexp, error) {
	return compile(`^(?:[-+])?(?:[0-9]+)?(?:` + regexp.QuoteMeta(sep) + `[0-9]*)?(?:[eE][\+\-]?(?:[0-9]+))?$`)
}

// ParseFloat parses str as a float in the given locale. Unknown locales,
// empty strings and bare separators or signs are rejected.
func ParseFloat(str, locale string) (float64, bool) {
	sep, err := DecimalSeparator(locale)
	if err != nil {
		return 0, false
	}
	switch str {
	case "", ".", "-", "+", sep:
		return 0, false
	}
	re, err := floatPattern(sep)
	if err != nil || !re.MatchString(str) {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.Replace(str, sep, ".", 1), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// IsFloat reports whether str is a floating point number in the locale.
func IsFloat(str string, opts FloatOptions) bool {
	_, ok := ParseFloat(str, opts.Locale)
	return ok
}

// IsFloatRange reports whether str is a float within [min, max].
func IsFloatRange(str string, min, max float64, opts FloatOptions) bool {
	f, ok := ParseFloat(str, opts.Locale)
	return ok && f >= min && f <= max
}

// DecimalOptions configures IsDecimal.
type DecimalOptions struct {
	// ForceDecimal requires a fractional part.
	ForceDecimal bool
	// DecimalDigits bounds the fractional digits as "min," or "min,max".
	// Defaults to "1,".
	DecimalDigits string
	// Locale selects the decimal separator and defaults to DefaultLocale.
	Locale string
}

// Validate reports an unknown locale or a malformed DecimalDigits.
func (o DecimalOptions) Validate() error {
	if _, err := DecimalSeparator(o.Locale); err != nil {
		return err
	}
	if o.DecimalDigits != "" && !decimalDigitsRegex.MatchString(o.DecimalDigits) {
		return invalidOption("decimal digits %q", o.DecimalDigits)
	}
	return nil
}

func decimalPattern(opts DecimalOptions, sep string) (*regexp.Regexp, error) {
	digits := opts.DecimalDigits
	if digits == "" {
		digits = "1,"
	}
	if !decimalDigitsRegex.MatchString(digits) {
		return nil, invalidOption("decimal digits %q", digits)
	}
	quant := ""
	if !opts.ForceDecimal {
		quant = "?"
	}
	return compile(fmt.Sprintf(`^[-+]?([0-9]+)?(%s[0-9]{%s})%s$`, regexp.QuoteMeta(sep), digits, quant))
}

// IsDecimal reports whether str is a decimal number in the locale. Misconfigured
// options never match; use DecimalOptions.Validate to surface them.
func IsDecimal(str string, opts DecimalOptions) bool {
	sep, err := DecimalSeparator(opts.Locale)
	if err != nil {
		return false
	}
	re, err := decimalPattern(opts, sep)
	if err != nil {
		return false
	}
	switch strings.ReplaceAll(str, " ", "") {
	case "", "-", "+":
		return false
	}
	return re.MatchString(str)
}

// NumericOptions configures IsNumeric.
type NumericOptions struct {
	// NoSymbols restricts the input to digits only.
	NoSymbols bool
}

// IsNumeric reports whether str contains only digits, with an optional sign
// and decimal point unless NoSymbols is set.
func IsNumeric(str string, opts NumericOptions) bool {
	if opts.NoSymbols {
		return numericNoSymbols.MatchString(str)
	}
	return numericRegex.MatchString(str)
}

// IsDivisibleBy reports whether str is a number that divides evenly by divisor.
func IsDivisibleBy(str string, divisor int64) bool {
	if divisor == 0 {
		return false
	}
	f, ok := ParseFloat(str, "")
	if !ok || f != math.Trunc(f) {
		return false
	}
	return math.Mod(f, float64(divisor)) == 0
}
