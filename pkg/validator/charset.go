package validator

import (
	"fmt"
	"regexp"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	hexadecimalRegex = regexp.MustCompile(`(?i)^(0x|0h)?[0-9a-f]+$`)
	octalRegex       = regexp.MustCompile(`(?i)^(0o)?[0-7]+$`)
	hexColorRegex    = regexp.MustCompile(`(?i)^#?([0-9a-f]{3}|[0-9a-f]{4}|[0-9a-f]{6}|[0-9a-f]{8})$`)
	mongoIDRegex     = regexp.MustCompile(`(?i)^[0-9a-f]{24}$`)
)

// LocaleOptions selects the alphabet used by IsAlpha and IsAlphanumeric.
type LocaleOptions struct {
	// Locale defaults to DefaultLocale.
	Locale string
}

// Validate reports an unknown locale.
func (o LocaleOptions) Validate() error {
	if !HasAlphabet(o.Locale) {
		return fmt.Errorf("%w: %q has no alphabet", ErrUnknownLocale, o.Locale)
	}
	return nil
}

// IsAlpha reports whether str is non-empty and made only of letters of the
// locale's alphabet. Unknown locales never match.
func IsAlpha(str string, opts LocaleOptions) bool {
	re, ok := lookupLocale(alphaPatterns, opts.Locale)
	return ok && re.MatchString(str)
}

// IsAlphanumeric reports whether str is non-empty and made only of letters of
// the locale's alphabet and digits. Unknown locales never match.
func IsAlphanumeric(str string, opts LocaleOptions) bool {
	re, ok := lookupLocale(alphanumericPatterns, opts.Locale)
	return ok && re.MatchString(str)
}

// IsASCII reports whether str is non-empty and contains only 7-bit characters.
func IsASCII(str string) bool {
	if str == "" {
		return false
	}
	for i := 0; i < len(str); i++ {
		if str[i] > 0x7f {
			return false
		}
	}
	return true
}

// IsMultibyte reports whether str contains at least one non-ASCII character.
func IsMultibyte(str string) bool {
	for i := 0; i < len(str); i++ {
		if str[i] > 0x7f {
			return true
		}
	}
	return false
}

// halfWidth holds printable ASCII plus the halfwidth katakana, hangul and
// symbol blocks. Every other rune, including ambiguous ones like Ü, counts as
// full-width.
var halfWidth = &unicode.RangeTable{
	R16: []unicode.Range16{
		{Lo: 0x0020, Hi: 0x007e, Stride: 1},
		{Lo: 0xff61, Hi: 0xffdc, Stride: 1},
		{Lo: 0xffe8, Hi: 0xffee, Stride: 1},
	},
	LatinOffset: 1,
}

// IsFullWidth reports whether str contains at least one full-width character.
func IsFullWidth(str string) bool {
	for _, r := range str {
		if !unicode.Is(halfWidth, r) {
			return true
		}
	}
	return false
}

// IsHalfWidth reports whether str contains at least one half-width character.
func IsHalfWidth(str string) bool {
	for _, r := range str {
		if unicode.Is(halfWidth, r) {
			return true
		}
	}
	return false
}

// IsVariableWidth reports whether str mixes full-width and half-width characters.
func IsVariableWidth(str string) bool {
	return IsFullWidth(str) && IsHalfWidth(str)
}

// IsLowercase reports whether str is unchanged by lower-casing.
// A Caser is stateful, so one is built per call.
func IsLowercase(str string) bool {
	return utf8.ValidString(str) && cases.Lower(language.Und).String(str) == str
}

// IsUppercase reports whether str is unchanged by upper-casing.
func IsUppercase(str string) bool {
	return utf8.ValidString(str) && cases.Upper(language.Und).String(str) == str
}

// IsHexadecimal reports whether str is a hexadecimal number with an optional 0x or 0h prefix.
func IsHexadecimal(str string) bool {
	return hexadecimalRegex.MatchString(str)
}

// IsOctal reports whether str is an octal number with an optional 0o prefix.
func IsOctal(str string) bool {
	return octalRegex.MatchString(str)
}

// IsHexColor reports whether str is a 3, 4, 6 or 8 digit hex color with an optional '#'.
func IsHexColor(str string) bool {
	return hexColorRegex.MatchString(str)
}

// IsMongoID reports whether str is a 24 character hex object id.
func IsMongoID(str string) bool {
	return mongoIDRegex.MatchString(str)
}
