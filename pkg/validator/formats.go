package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

var (
	esDNIRegex      = regexp.MustCompile(`^[0-9X-Z][0-9]{7}[TRWAGMYFPDXBNJZSQVHLCKE]$`)
	fiHETURegex     = regexp.MustCompile(`^\d{6}[-A\+]\d{3}[0-9ABCDEFHJKLMNPRSTUVWXY]$`)
	irMelliRegex    = regexp.MustCompile(`^\d{10}$`)
	itCIERegex      = regexp.MustCompile(`(?i)C[A-Z][0-9]{5}[A-Z]{2}`)
	noFodselRegex   = regexp.MustCompile(`^\d{11}$`)
	thIDRegex       = regexp.MustCompile(`^[1-8]\d{12}$`)
	heILRegex       = regexp.MustCompile(`^\d{9}$`)
	imeiRegex       = regexp.MustCompile(`^[0-9]{15}$`)
	imeiHyphenRegex = regexp.MustCompile(`^\d{2}-\d{6}-\d{6}-\d$`)
	isinRegex       = regexp.MustCompile(`^[A-Z]{2}[0-9A-Z]{9}[0-9]$`)
	latitudeRegex   = regexp.MustCompile(`^\(?[+-]?(90(\.0+)?|[1-8]?\d(\.\d+)?)$`)
	longitudeRegex  = regexp.MustCompile(`^\s?[+-]?(180(\.0+)?|1[0-7]\d(\.\d+)?|\d{1,2}(\.\d+)?)\)?$`)
	semverRegex     = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
		`(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*))*))?` +
		`(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)
	e164Regex     = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)
	currencyRegex = regexp.MustCompile(`^[A-Z]{3}$`)
)

// AnyLocale makes IsIdentityCard accept a number valid in any supported locale.
const AnyLocale = "any"

var identityCards = map[string]func(string) bool{
	"ES":    spanishDNI,
	"FI":    finnishHETU,
	"IR":    iranianMelliCode,
	"IT":    italianCIE,
	"NO":    norwegianFodselsnummer,
	"TH":    thaiID,
	"he-IL": israeliID,
}

// IdentityCardOptions configures IsIdentityCard.
type IdentityCardOptions struct {
	// Locale is one of ES, FI, IR, IT, NO, TH, he-IL or AnyLocale.
	// Empty means AnyLocale.
	Locale string
}

// Validate reports a locale without an identity card algorithm.
func (o IdentityCardOptions) Validate() error {
	if o.Locale == "" || o.Locale == AnyLocale {
		return nil
	}
	if _, ok := identityCards[o.Locale]; !ok {
		return fmt.Errorf("%w: no identity card format for %q", ErrUnknownLocale, o.Locale)
	}
	return nil
}

// IsIdentityCard reports whether str is a national identity number for the locale.
func IsIdentityCard(str string, opts IdentityCardOptions) bool {
	if opts.Locale == "" || opts.Locale == AnyLocale {
		for _, check := range identityCards {
			if check(str) {
				return true
			}
		}
		return false
	}
	check, ok := identityCards[opts.Locale]
	return ok && check(str)
}

func digitsOf(str string) []int {
	out := make([]int, len(str))
	for i := range len(str) {
		out[i] = int(str[i] - '0')
	}
	return out
}

func spanishDNI(str string) bool {
	s := strings.ToUpper(strings.TrimSpace(str))
	if !esDNIRegex.MatchString(s) {
		return false
	}
	number := strings.NewReplacer("X", "0", "Y", "1", "Z", "2").Replace(s[:len(s)-1])
	n, err := strconv.Atoi(number)
	if err != nil {
		return false
	}
	const letters = "TRWAGMYFPDXBNJZSQVHLCKE"
	return s[len(s)-1] == letters[n%23]
}

func finnishHETU(str string) bool {
	s := strings.ToUpper(strings.TrimSpace(str))
	if !fiHETURegex.MatchString(s) {
		return false
	}
	birth, _ := strconv.Atoi(s[:6])
	serial, _ := strconv.Atoi(s[7:10])
	const checks = "0123456789ABCDEFHJKLMNPRSTUVWXY"
	return s[10] == checks[(birth*1000+serial)%31]
}

func iranianMelliCode(str string) bool {
	if !irMelliRegex.MatchString(str) {
		return false
	}
	d := digitsOf(str)
	sum := 0
	for i := range 9 {
		sum += d[i] * (10 - i)
	}
	sum %= 11
	check := d[9]
	return (sum < 2 && check == sum) || (sum >= 2 && check+sum == 11)
}

func italianCIE(str string) bool {
	if len(str) != 9 || str == "CA00000AA" {
		return false
	}
	return itCIERegex.MatchString(str)
}

func norwegianFodselsnummer(str string) bool {
	s := strings.TrimSpace(str)
	if !noFodselRegex.MatchString(s) || s == "00000000000" {
		return false
	}
	f := digitsOf(s)
	k1 := (11 - (3*f[0]+7*f[1]+6*f[2]+1*f[3]+8*f[4]+9*f[5]+4*f[6]+5*f[7]+2*f[8])%11) % 11
	k2 := (11 - (5*f[0]+4*f[1]+3*f[2]+2*f[3]+7*f[4]+6*f[5]+5*f[6]+4*f[7]+3*f[8]+2*k1)%11) % 11
	return k1 == f[9] && k2 == f[10]
}

func thaiID(str string) bool {
	if !thIDRegex.MatchString(str) {
		return false
	}
	d := digitsOf(str)
	sum := 0
	for i := range 12 {
		sum += d[i] * (13 - i)
	}
	return d[12] == (11-sum%11)%10
}

func israeliID(str string) bool {
	s := strings.TrimSpace(str)
	if !heILRegex.MatchString(s) {
		return false
	}
	sum := 0
	for i, d := range digitsOf(s) {
		n := d * (i%2 + 1)
		if n > 9 {
			n -= 9
		}
		sum += n
	}
	return sum%10 == 0
}

// luhn reports whether a string of ASCII digits carries a valid Luhn check digit.
func luhn(digits string) bool {
	sum := 0
	double := false
	for i := len(digits) - 1; i >= 0; i-- {
		d := int(digits[i] - '0')
		if double {
			d *= 2
			if d > 9 {
				d = d/10 + d%10
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// IMEIOptions configures IsIMEI.
type IMEIOptions struct {
	// AllowHyphens switches to the grouped 2-6-6-1 form.
	AllowHyphens bool
}

// IsIMEI reports whether str is a 15 digit IMEI with a valid check digit.
func IsIMEI(str string, opts IMEIOptions) bool {
	re := imeiRegex
	if opts.AllowHyphens {
		re = imeiHyphenRegex
	}
	if !re.MatchString(str) {
		return false
	}
	return luhn(strings.ReplaceAll(str, "-", ""))
}

// IsISIN reports whether str is an International Securities Identification
// Number with a valid check digit.
func IsISIN(str string) bool {
	if !isinRegex.MatchString(str) {
		return false
	}
	sum := 0
	double := true
	add := func(d int) {
		if double {
			if d >= 5 {
				sum += 1 + (d-5)*2
			} else {
				sum += d * 2
			}
		} else {
			sum += d
		}
		double = !double
	}
	for i := len(str) - 2; i >= 0; i-- {
		c := str[i]
		if c >= 'A' && c <= 'Z' {
			v := int(c) - 55
			add(v % 10)
			add(v / 10)
			continue
		}
		add(int(c - '0'))
	}
	check := (sum+9)/10*10 - sum
	return int(str[len(str)-1]-'0') == check
}

// IsLatLong reports whether str is a "lat,long" pair, optionally wrapped in
// parentheses and with a space after the comma.
func IsLatLong(str string) bool {
	lat, long, ok := strings.Cut(str, ",")
	if !ok {
		return false
	}
	opened := strings.HasPrefix(lat, "(")
	closed := strings.HasSuffix(long, ")")
	if opened != closed {
		return false
	}
	return latitudeRegex.MatchString(lat) && longitudeRegex.MatchString(long)
}

// UUIDOptions configures IsUUID.
type UUIDOptions struct {
	// Version restricts the accepted version. Zero accepts any.
	Version int
}

// Validate reports a version outside 0..8.
func (o UUIDOptions) Validate() error {
	if o.Version < 0 || o.Version > 8 {
		return fmt.Errorf("%w: UUID version %d", ErrUnsupportedVersion, o.Version)
	}
	return nil
}

// IsUUID reports whether str is a UUID in canonical hyphenated form.
func IsUUID(str string, opts UUIDOptions) bool {
	if len(str) != 36 {
		return false
	}
	id, err := uuid.Parse(str)
	if err != nil {
		return false
	}
	if opts.Version == 0 {
		return true
	}
	return int(id.Version()) == opts.Version && id.Variant() == uuid.RFC4122
}

// IsSemVer reports whether str is a Semantic Versioning 2.0.0 version.
func IsSemVer(str string) bool {
	return semverRegex.MatchString(str)
}

// IsCreditCard reports whether str is a 13 to 19 digit card number with a
// valid Luhn checksum. Spaces and dashes are ignored.
func IsCreditCard(str string) bool {
	cleaned := strings.NewReplacer(" ", "", "-", "").Replace(str)
	if len(cleaned) < 13 || len(cleaned) > 19 || !allDigitsRegex.MatchString(cleaned) {
		return false
	}
	return luhn(cleaned)
}

// IsISO4217 reports whether str is an active ISO 4217 currency code.
func IsISO4217(str string) bool {
	return currencyRegex.MatchString(str) && currencyCodes[str]
}

// IsE164 reports whether str is a phone number in E.164 format.
func IsE164(str string) bool {
	return e164Regex.MatchString(str)
}
