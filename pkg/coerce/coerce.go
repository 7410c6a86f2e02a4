package coerce

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cast"

	"github.com/dmitrymomot/guardrail/pkg/validator"
)

// Option tunes a single conversion.
type Option func(*options)

type options struct {
	locale string
	strict bool
}

// WithLocale selects the decimal separator used when parsing float strings.
func WithLocale(tag string) Option {
	return func(o *options) {
		o.locale = tag
	}
}

// Strict limits ToBoolean to the literals true, false, 1 and 0.
func Strict() Option {
	return func(o *options) {
		o.strict = true
	}
}

func apply(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// ToInt converts v to int64. Strings must be base-10 integers, floats must
// have no fractional part. Booleans and nil are rejected.
func ToInt(v any) (int64, error) {
	switch x := v.(type) {
	case nil, bool:
		return 0, mismatch("int", v, nil)
	case string:
		n, err := strconv.ParseInt(x, 10, 64)
		if err != nil {
			return 0, mismatch("int", v, err)
		}
		return n, nil
	case *string:
		if x == nil {
			return 0, mismatch("int", v, nil)
		}
		return ToInt(*x)
	case []byte:
		return ToInt(string(x))
	case float32:
		return floatToInt(float64(x), v)
	case float64:
		return floatToInt(x, v)
	case uint:
		return uintToInt(uint64(x), v)
	case uint64:
		return uintToInt(x, v)
	case uintptr:
		return uintToInt(uint64(x), v)
	}
	n, err := cast.ToInt64E(v)
	if err != nil {
		return 0, mismatch("int", v, err)
	}
	return n, nil
}

func uintToInt(u uint64, orig any) (int64, error) {
	if u > math.MaxInt64 {
		return 0, mismatch("int", orig, nil)
	}
	return int64(u), nil
}

func floatToInt(f float64, orig any) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
		return 0, mismatch("int", orig, nil)
	}
	return int64(f), nil
}

// ToFloat converts v to float64. Strings are parsed in the locale given by
// WithLocale, defaulting to validator.DefaultLocale.
func ToFloat(v any, opts ...Option) (float64, error) {
	o := apply(opts)
	switch x := v.(type) {
	case nil, bool:
		return 0, mismatch("float", v, nil)
	case string:
		if _, err := validator.DecimalSeparator(o.locale); err != nil {
			return 0, mismatch("float", v, err)
		}
		f, ok := validator.ParseFloat(x, o.locale)
		if !ok {
			return 0, mismatch("float", v, nil)
		}
		return f, nil
	case *string:
		if x == nil {
			return 0, mismatch("float", v, nil)
		}
		return ToFloat(*x, opts...)
	case []byte:
		return ToFloat(string(x), opts...)
	}
	f, err := cast.ToFloat64E(v)
	if err != nil {
		return 0, mismatch("float", v, err)
	}
	return f, nil
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	time.DateTime,
	time.DateOnly,
	"2006/01/02",
	"2006/01/02 15:04:05",
}

// ToDate converts v to time.Time. Strings are tried against RFC 3339 and the
// common date layouts before falling back to cast's wider set.
// Numbers are rejected.
func ToDate(v any) (time.Time, error) {
	switch x := v.(type) {
	case time.Time:
		return x, nil
	case *time.Time:
		if x == nil {
			return time.Time{}, mismatch("date", v, nil)
		}
		return *x, nil
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return time.Time{}, mismatch("date", v, nil)
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		t, err := cast.ToTimeE(s)
		if err != nil {
			return time.Time{}, mismatch("date", v, err)
		}
		return t, nil
	case *string:
		if x == nil {
			return time.Time{}, mismatch("date", v, nil)
		}
		return ToDate(*x)
	}
	return time.Time{}, mismatch("date", v, nil)
}

// ToBoolean converts v to bool. Integers must be 0 or 1. Strings must be a
// boolean literal as accepted by validator.IsBoolean; surrounding whitespace
// is not trimmed.
func ToBoolean(v any, opts ...Option) (bool, error) {
	o := apply(opts)
	switch x := v.(type) {
	case nil:
		return false, mismatch("boolean", v, nil)
	case bool:
		return x, nil
	case string:
		if !validator.IsBoolean(x, validator.BooleanOptions{Loose: !o.strict}) {
			return false, mismatch("boolean", v, nil)
		}
		switch strings.ToLower(x) {
		case "true", "1", "yes":
			return true, nil
		}
		return false, nil
	case *string:
		if x == nil {
			return false, mismatch("boolean", v, nil)
		}
		return ToBoolean(*x, opts...)
	}
	n, err := ToInt(v)
	if err != nil || (n != 0 && n != 1) {
		return false, mismatch("boolean", v, err)
	}
	return n == 1, nil
}
