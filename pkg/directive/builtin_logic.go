package directive

import (
	"github.com/dmitrymomot/guardrail/pkg/validator"
)

// IsBoolean accepts true, false, 1 and 0, plus yes and no in any case when
// opts.Loose is set. Go bool values always pass.
func IsBoolean(opts ...validator.BooleanOptions) *Directive {
	o := option(opts)
	return Strings("IsBoolean", func(s string) bool {
		return validator.IsBoolean(s, o)
	}, "Value :value: is not a boolean")
}
