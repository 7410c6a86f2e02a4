package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardrail/pkg/validator"
)

func TestIsInt(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"13", "123", "0", "-0", "+1", "1", "-5000"} {
		assert.True(t, validator.IsInt(v, validator.IntOptions{}), v)
	}
	for _, v := range []string{"01", "-01", "000", "100e10", "123.123", "   ", "", "33.33", "Most definitely not a number"} {
		assert.False(t, validator.IsInt(v, validator.IntOptions{}), v)
	}
	assert.True(t, validator.IsInt("007", validator.IntOptions{AllowLeadingZeroes: true}))

	t.Run("range", func(t *testing.T) {
		for _, v := range []string{"10", "33", "66", "100"} {
			assert.True(t, validator.IsIntRange(v, 10, 100, validator.IntOptions{}), v)
		}
		for _, v := range []string{"5", "-5", "105", "33.5"} {
			assert.False(t, validator.IsIntRange(v, 10, 100, validator.IntOptions{}), v)
		}
	})
}

func TestIsFloat(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"123", "123.", "123.123", "-123.123", "-0.123", "+0.123", "0.123", ".0", "-.123", "01.123", "-0.22250738585072011e-307"} {
		assert.True(t, validator.IsFloat(v, validator.FloatOptions{}), v)
	}
	for _, v := range []string{"abc", "", "  ", ".", "-", "+", "1,5", "1.2.3", "Most definitely not a number"} {
		assert.False(t, validator.IsFloat(v, validator.FloatOptions{}), v)
	}

	t.Run("locale separator", func(t *testing.T) {
		de := validator.FloatOptions{Locale: "de-DE"}
		assert.True(t, validator.IsFloat("123,123", de))
		assert.False(t, validator.IsFloat("123.123", de))
		assert.True(t, validator.IsFloat("1٫5", validator.FloatOptions{Locale: "ar-JO"}))
		assert.ErrorIs(t, validator.FloatOptions{Locale: "is-NOT"}.Validate(), validator.ErrUnknownLocale)
	})

	t.Run("range", func(t *testing.T) {
		assert.True(t, validator.IsFloatRange("10", 10, 100, validator.FloatOptions{}))
		assert.True(t, validator.IsFloatRange("99.99", 10, 100, validator.FloatOptions{}))
		assert.False(t, validator.IsFloatRange("100.01", 10, 100, validator.FloatOptions{}))
		assert.False(t, validator.IsFloatRange("-5", 10, 100, validator.FloatOptions{}))
	})

	t.Run("parse", func(t *testing.T) {
		f, ok := validator.ParseFloat("2,5", "bg-BG")
		require.True(t, ok)
		assert.InDelta(t, 2.5, f, 1e-9)
	})
}

func TestIsDecimal(t *testing.T) {
	t.Parallel()

	t.Run("default locale", func(t *testing.T) {
		valid := []string{"123", "00123", "-00123", "0", "-0", "+123", "0.01", ".1", "1.0", "-.25", "0.0000000000001"}
		for _, v := range valid {
			assert.True(t, validator.IsDecimal(v, validator.DecimalOptions{}), v)
		}
		invalid := []string{"0,01", ",1", "1,0", "-,25", "0٫01", "٫1", "....", " ", "", "-", "+", ".", "0.1a", "a", "\n"}
		for _, v := range invalid {
			assert.False(t, validator.IsDecimal(v, validator.DecimalOptions{}), v)
		}
	})

	t.Run("force decimal", func(t *testing.T) {
		opts := validator.DecimalOptions{ForceDecimal: true}
		assert.True(t, validator.IsDecimal("0.01", opts))
		assert.True(t, validator.IsDecimal("-.25", opts))
		assert.False(t, validator.IsDecimal("123", opts))
		assert.False(t, validator.IsDecimal("-0", opts))
	})

	t.Run("comma locales", func(t *testing.T) {
		for _, locale := range []string{"bg-BG", "cs-CZ", "en-ZM"} {
			opts := validator.DecimalOptions{Locale: locale}
			assert.True(t, validator.IsDecimal("0,01", opts), locale)
			assert.True(t, validator.IsDecimal("-,25", opts), locale)
			assert.False(t, validator.IsDecimal("0.01", opts), locale)
		}
		assert.True(t, validator.IsDecimal("0.01", validator.DecimalOptions{Locale: "en-AU"}))
	})

	t.Run("arabic locales", func(t *testing.T) {
		assert.True(t, validator.IsDecimal("0٫01", validator.DecimalOptions{Locale: "ar-JO"}))
		assert.False(t, validator.IsDecimal("0.01", validator.DecimalOptions{Locale: "ar-JO"}))
		assert.True(t, validator.IsDecimal("0.01", validator.DecimalOptions{Locale: "ar-EG"}))
		assert.False(t, validator.IsDecimal("0٫01", validator.DecimalOptions{Locale: "ar-EG"}))
	})

	t.Run("decimal digits", func(t *testing.T) {
		opts := validator.DecimalOptions{DecimalDigits: "2,3"}
		assert.True(t, validator.IsDecimal("1.23", opts))
		assert.True(t, validator.IsDecimal("1.234", opts))
		assert.False(t, validator.IsDecimal("1.2", opts))
		assert.False(t, validator.IsDecimal("1.2345", opts))
	})

	t.Run("misconfiguration", func(t *testing.T) {
		bad := validator.DecimalOptions{Locale: "is-NOT"}
		assert.ErrorIs(t, bad.Validate(), validator.ErrUnknownLocale)
		assert.False(t, validator.IsDecimal("1.0", bad))
		assert.ErrorIs(t, validator.DecimalOptions{DecimalDigits: "x"}.Validate(), validator.ErrInvalidOption)
		assert.NoError(t, validator.DecimalOptions{Locale: "bg-BG", DecimalDigits: "1,2"}.Validate())
	})
}

func TestIsNumeric(t *testing.T) {
	t.Parallel()
	for _, v := range []string{"123", "00123", "-00123", "0", "-0", "+123", "123.123", "+000000", ".5"} {
		assert.True(t, validator.IsNumeric(v, validator.NumericOptions{}), v)
	}
	for _, v := range []string{" ", "", ".", "1.", "12a", "1,0"} {
		assert.False(t, validator.IsNumeric(v, validator.NumericOptions{}), v)
	}
	assert.True(t, validator.IsNumeric("00123", validator.NumericOptions{NoSymbols: true}))
	assert.False(t, validator.IsNumeric("-123", validator.NumericOptions{NoSymbols: true}))
}

func TestIsDivisibleBy(t *testing.T) {
	t.Parallel()
	assert.True(t, validator.IsDivisibleBy("10", 5))
	assert.True(t, validator.IsDivisibleBy("-12", 3))
	assert.True(t, validator.IsDivisibleBy("0", 7))
	assert.False(t, validator.IsDivisibleBy("11", 5))
	assert.False(t, validator.IsDivisibleBy("10.5", 5))
	assert.False(t, validator.IsDivisibleBy("abc", 5))
	assert.False(t, validator.IsDivisibleBy("10", 0))
}
