package validator

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/goccy/go-json"
)

// NoLimit disables the upper bound of a length check.
const NoLimit = -1

// ContainsOptions configures Contains.
type ContainsOptions struct {
	IgnoreCase bool
	// MinOccurrences defaults to 1.
	MinOccurrences int
}

// Contains reports whether str contains seed at least MinOccurrences times.
func Contains(str, seed string, opts ContainsOptions) bool {
	if opts.IgnoreCase {
		str = strings.ToLower(str)
		seed = strings.ToLower(seed)
	}
	minOccurrences := max(opts.MinOccurrences, 1)
	if seed == "" {
		return true
	}
	return strings.Count(str, seed) >= minOccurrences
}

// Equals reports whether str is byte-for-byte equal to comparison.
func Equals(str, comparison string) bool {
	return str == comparison
}

// Matches reports whether str matches pattern. A nil pattern never matches.
func Matches(str string, pattern *regexp.Regexp) bool {
	if pattern == nil {
		return false
	}
	return pattern.MatchString(str)
}

// IsIn reports whether str is one of values.
func IsIn(str string, values []string) bool {
	return slices.Contains(values, str)
}

// EmptyOptions configures IsEmpty.
type EmptyOptions struct {
	IgnoreWhitespace bool
}

// IsEmpty reports whether str has zero length. With IgnoreWhitespace a
// string made only of whitespace counts as empty too.
func IsEmpty(str string, opts EmptyOptions) bool {
	if opts.IgnoreWhitespace {
		str = strings.TrimSpace(str)
	}
	return len(str) == 0
}

// IsNotEmpty is the negation of IsEmpty.
func IsNotEmpty(str string, opts EmptyOptions) bool {
	return !IsEmpty(str, opts)
}

// JSONOptions configures IsJSON.
type JSONOptions struct {
	// AllowPrimitives accepts the bare literals true, false and null.
	AllowPrimitives bool
}

// IsJSON reports whether str is a JSON object or array.
func IsJSON(str string, opts JSONOptions) bool {
	if !json.Valid([]byte(str)) {
		return false
	}
	var decoded any
	if err := json.Unmarshal([]byte(str), &decoded); err != nil {
		return false
	}
	switch decoded.(type) {
	case map[string]any, []any:
		return true
	case nil, bool:
		return opts.AllowPrimitives
	default:
		return false
	}
}

// IsByteLength reports whether the UTF-8 encoding of str is between min and
// max bytes inclusive. Pass NoLimit as max for an open upper bound.
func IsByteLength(str string, min, max int) bool {
	n := len(str)
	return n >= min && (max < 0 || n <= max)
}

// IsLength reports whether str has between min and max characters inclusive.
// Pass NoLimit as max for an open upper bound.
func IsLength(str string, min, max int) bool {
	n := utf8.RuneCountInString(str)
	return n >= min && (max < 0 || n <= max)
}

// LengthBounds checks that a min/max pair can be satisfied at all.
func LengthBounds(min, max int) error {
	if min < 0 {
		return invalidOption("min length %d is negative", min)
	}
	if max >= 0 && max < min {
		return invalidOption("max length %d is less than min length %d", max, min)
	}
	return nil
}
