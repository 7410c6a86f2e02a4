package validator

import "strings"

// BooleanOptions configures IsBoolean.
type BooleanOptions struct {
	// Loose also accepts "yes" and "no" and ignores case.
	Loose bool
}

var (
	strictBooleans = []string{"true", "false", "1", "0"}
	looseBooleans  = []string{"true", "false", "1", "0", "yes", "no"}
)

// IsBoolean reports whether str is a boolean literal. Surrounding whitespace
// is never trimmed, so "true " is rejected in both modes.
func IsBoolean(str string, opts BooleanOptions) bool {
	if opts.Loose {
		return IsIn(strings.ToLower(str), looseBooleans)
	}
	return IsIn(str, strictBooleans)
}
