package validator_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardrail/pkg/validator"
)

func TestDecimalSeparator(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":      ".",
		"en-US": ".",
		"en-AU": ".",
		"en-ZM": ",",
		"bg-BG": ",",
		"cs-CZ": ",",
		"pt-BR": ",",
		"ar-JO": "٫",
		"ar-EG": ".",
		"fa-IR": "٫",
		"bn-BD": ".",
	}
	for locale, want := range tests {
		got, err := validator.DecimalSeparator(locale)
		require.NoError(t, err, locale)
		assert.Equal(t, want, got, locale)
	}

	t.Run("canonical form", func(t *testing.T) {
		got, err := validator.DecimalSeparator("de-de")
		require.NoError(t, err)
		assert.Equal(t, ",", got)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := validator.DecimalSeparator("is-NOT")
		assert.ErrorIs(t, err, validator.ErrUnknownLocale)
	})
}

func TestHasAlphabet(t *testing.T) {
	t.Parallel()
	assert.True(t, validator.HasAlphabet(""))
	assert.True(t, validator.HasAlphabet("fr-CA"))
	assert.True(t, validator.HasAlphabet("ar-SA"))
	assert.False(t, validator.HasAlphabet("xx"))
}
