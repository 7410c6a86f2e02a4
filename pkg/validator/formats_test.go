package validator_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/guardrail/pkg/validator"
)

func TestIsIdentityCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		locale  string
		valid   []string
		invalid []string
	}{
		{"ES", []string{"99999999R", "12345678Z", "x1234567l"}, []string{"99999999A", "1234567Z", "12345678"}},
		{"FI", []string{"131052-308T", "131052A308T"}, []string{"131052-308U", "131052308T"}},
		{"IR", []string{"0499370899", "0790419904"}, []string{"0499370898", "12345"}},
		{"IT", []string{"CR43675TM", "CA79382RA"}, []string{"CA00000AA", "CB2342TG", "CR43675TM1"}},
		{"NO", []string{"09053426694", "26028338723"}, []string{"09053426699", "00000000000", "0905342669"}},
		{"TH", []string{"1101230000001", "1101230000060"}, []string{"1101230000002", "9101230000001"}},
		{"he-IL", []string{"219472156", "000000018"}, []string{"219472157", "21947215"}},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			opts := validator.IdentityCardOptions{Locale: tt.locale}
			assert.NoError(t, opts.Validate())
			for _, v := range tt.valid {
				assert.True(t, validator.IsIdentityCard(v, opts), v)
				assert.True(t, validator.IsIdentityCard(v, validator.IdentityCardOptions{Locale: validator.AnyLocale}), v)
			}
			for _, v := range tt.invalid {
				assert.False(t, validator.IsIdentityCard(v, opts), v)
			}
		})
	}

	t.Run("unknown locale", func(t *testing.T) {
		opts := validator.IdentityCardOptions{Locale: "xx-XX"}
		assert.ErrorIs(t, opts.Validate(), validator.ErrUnknownLocale)
		assert.False(t, validator.IsIdentityCard("99999999R", opts))
	})
}

func TestIsIMEI(t *testing.T) {
	t.Parallel()
	for _, v := range []string{"352099001761481", "868932036356090", "490154203237518"} {
		assert.True(t, validator.IsIMEI(v, validator.IMEIOptions{}), v)
	}
	for _, v := range []string{"352099001761482", "35209900176148", "35-209900-176148-1"} {
		assert.False(t, validator.IsIMEI(v, validator.IMEIOptions{}), v)
	}
	hyphens := validator.IMEIOptions{AllowHyphens: true}
	assert.True(t, validator.IsIMEI("35-209900-176148-1", hyphens))
	assert.False(t, validator.IsIMEI("35-209900-176148-2", hyphens))
}

func TestIsISIN(t *testing.T) {
	t.Parallel()
	for _, v := range []string{"US0378331005", "AU0000XVGZA3", "GB0002634946", "US5949181045"} {
		assert.True(t, validator.IsISIN(v), v)
	}
	for _, v := range []string{"US0378331004", "AU0000XVGZA2", "DE000BAY0018", "us0378331005", ""} {
		assert.False(t, validator.IsISIN(v), v)
	}
}

func TestIsLatLong(t *testing.T) {
	t.Parallel()
	for _, v := range []string{"(-17.738223, 85.605469)", "-77.738223,-85.605469", "90,180", "+90.0,+180.0", "(40.689247,-74.044502)"} {
		assert.True(t, validator.IsLatLong(v), v)
	}
	for _, v := range []string{"(020.000000, 010.000000000)", "89.9999999989, 360.0000000", "90.1000000, 180.000000", "(-17.738223, 85.605469", "-17.738223, 85.605469)", "1.2"} {
		assert.False(t, validator.IsLatLong(v), v)
	}
}

func TestIsUUID(t *testing.T) {
	t.Parallel()

	v4 := uuid.NewString()
	assert.True(t, validator.IsUUID(v4, validator.UUIDOptions{}))
	assert.True(t, validator.IsUUID(v4, validator.UUIDOptions{Version: 4}))
	assert.False(t, validator.IsUUID(v4, validator.UUIDOptions{Version: 3}))
	assert.True(t, validator.IsUUID("a987fbc9-4bed-3078-8f07-9141ba07c9f3", validator.UUIDOptions{Version: 3}))
	assert.True(t, validator.IsUUID("A987FBC9-4BED-3078-CF07-9141BA07C9F3", validator.UUIDOptions{}))

	for _, v := range []string{"", "xxxa987fbc9-4bed-3078-cf07-9141ba07c9f3", "a987fbc94bed3078cf079141ba07c9f3", "{a987fbc9-4bed-3078-8f07-9141ba07c9f3}", "a987fbc9-4bed-3078-cf07-9141ba07c9fz"} {
		assert.False(t, validator.IsUUID(v, validator.UUIDOptions{}), v)
	}

	assert.ErrorIs(t, validator.UUIDOptions{Version: 9}.Validate(), validator.ErrUnsupportedVersion)
	assert.NoError(t, validator.UUIDOptions{Version: 7}.Validate())
}

func TestIsSemVer(t *testing.T) {
	t.Parallel()
	for _, v := range []string{"0.0.4", "1.2.3", "10.20.30", "1.1.2-prerelease+meta", "1.0.0-alpha.beta.1", "1.0.0+0.build.1-rc.10000aaa-kk-0.1"} {
		assert.True(t, validator.IsSemVer(v), v)
	}
	for _, v := range []string{"1", "1.2", "1.2.3-0123", "01.1.1", "1.2.3.DEV", "1.2.3-+meta", "+invalid"} {
		assert.False(t, validator.IsSemVer(v), v)
	}
}

func TestIsCreditCard(t *testing.T) {
	t.Parallel()
	for _, v := range []string{"4111111111111111", "4111 1111 1111 1111", "5500-0000-0000-0004", "378282246310005", "6011111111111117"} {
		assert.True(t, validator.IsCreditCard(v), v)
	}
	for _, v := range []string{"4111111111111112", "1234", "foo", "4111a11111111111"} {
		assert.False(t, validator.IsCreditCard(v), v)
	}
}

func TestIsISO4217(t *testing.T) {
	t.Parallel()
	for _, v := range []string{"USD", "EUR", "JPY", "KWD", "XAU"} {
		assert.True(t, validator.IsISO4217(v), v)
	}
	for _, v := range []string{"", "usd", "US", "USDD", "123", "ABC"} {
		assert.False(t, validator.IsISO4217(v), v)
	}
}

func TestIsE164(t *testing.T) {
	t.Parallel()
	for _, v := range []string{"+14155552671", "+442071838750", "+551155256325"} {
		assert.True(t, validator.IsE164(v), v)
	}
	for _, v := range []string{"", "14155552671", "+0123456789", "+1415555267123456", "+1 415 555 2671"} {
		assert.False(t, validator.IsE164(v), v)
	}
}
