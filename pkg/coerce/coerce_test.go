package coerce_test

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardrail/pkg/coerce"
	"github.com/dmitrymomot/guardrail/pkg/validator"
)

func TestToInt(t *testing.T) {
	t.Parallel()

	t.Run("converts", func(t *testing.T) {
		tests := []struct {
			in   any
			want int64
		}{
			{"3", 3},
			{"-42", -42},
			{"+7", 7},
			{"010", 10},
			{33, 33},
			{int8(-5), -5},
			{uint16(65535), 65535},
			{float64(12), 12},
			{float32(-3), -3},
			{[]byte("99"), 99},
		}
		for _, tt := range tests {
			got, err := coerce.ToInt(tt.in)
			require.NoError(t, err, "%v", tt.in)
			assert.Equal(t, tt.want, got)
		}
	})

	t.Run("rejects", func(t *testing.T) {
		for _, in := range []any{nil, true, "", "3.5", "0x10", "Most definitely not a number", 33.33, math.NaN(), math.Inf(1), struct{}{}, (*string)(nil)} {
			_, err := coerce.ToInt(in)
			require.Error(t, err, "%v", in)
			assert.ErrorIs(t, err, coerce.ErrTypeMismatch)
		}
	})

	t.Run("unsigned overflow", func(t *testing.T) {
		for _, in := range []any{uint64(math.MaxUint64), uint(1 << 63), uint64(math.MaxInt64 + 1)} {
			got, err := coerce.ToInt(in)
			assert.ErrorIs(t, err, coerce.ErrTypeMismatch, "%v", in)
			assert.Zero(t, got)
		}

		got, err := coerce.ToInt(uint64(math.MaxInt64))
		require.NoError(t, err)
		assert.Equal(t, int64(math.MaxInt64), got)
	})

	t.Run("error details", func(t *testing.T) {
		_, err := coerce.ToInt("five")
		var tm *coerce.TypeMismatchError
		require.True(t, errors.As(err, &tm))
		assert.Equal(t, "int", tm.Kind)
		assert.Equal(t, "five", tm.Value)
		assert.Contains(t, err.Error(), "cannot convert string(five) to int")
	})
}

func TestToFloat(t *testing.T) {
	t.Parallel()

	t.Run("default locale", func(t *testing.T) {
		for in, want := range map[any]float64{"2.5": 2.5, "-.25": -0.25, "3": 3, 7: 7, float32(0.5): 0.5, "1e3": 1000} {
			got, err := coerce.ToFloat(in)
			require.NoError(t, err, "%v", in)
			assert.InDelta(t, want, got, 1e-9)
		}
	})

	t.Run("locale separator", func(t *testing.T) {
		got, err := coerce.ToFloat("2,5", coerce.WithLocale("bg-BG"))
		require.NoError(t, err)
		assert.InDelta(t, 2.5, got, 1e-9)

		_, err = coerce.ToFloat("2,5")
		assert.ErrorIs(t, err, coerce.ErrTypeMismatch)
	})

	t.Run("unknown locale", func(t *testing.T) {
		_, err := coerce.ToFloat("2.5", coerce.WithLocale("is-NOT"))
		assert.ErrorIs(t, err, coerce.ErrTypeMismatch)
		assert.ErrorIs(t, err, validator.ErrUnknownLocale)
	})

	t.Run("rejects", func(t *testing.T) {
		for _, in := range []any{nil, false, "", "two", ".", "1.2.3", []int{1}} {
			_, err := coerce.ToFloat(in)
			assert.ErrorIs(t, err, coerce.ErrTypeMismatch, "%v", in)
		}
	})
}

func TestToDate(t *testing.T) {
	t.Parallel()

	now := time.Now()
	got, err := coerce.ToDate(now)
	require.NoError(t, err)
	assert.True(t, now.Equal(got))

	tests := map[string]time.Time{
		"2020/02/29":           time.Date(2020, 2, 29, 0, 0, 0, 0, time.UTC),
		"2014-03-15":           time.Date(2014, 3, 15, 0, 0, 0, 0, time.UTC),
		"2014-03-15T10:20:30Z": time.Date(2014, 3, 15, 10, 20, 30, 0, time.UTC),
	}
	for in, want := range tests {
		got, err := coerce.ToDate(in)
		require.NoError(t, err, in)
		assert.True(t, want.Equal(got), in)
	}

	for _, in := range []any{nil, "", "15072002x", 42, (*time.Time)(nil), map[string]int{"year": 2002}} {
		_, err := coerce.ToDate(in)
		assert.ErrorIs(t, err, coerce.ErrTypeMismatch, "%v", in)
	}
}

func TestToBoolean(t *testing.T) {
	t.Parallel()

	t.Run("loose by default", func(t *testing.T) {
		tests := map[string]bool{
			"true": true, "True": true, "TRUE": true,
			"false": false, "False": false, "FALSE": false,
			"1": true, "0": false,
			"yes": true, "Yes": true, "YES": true,
			"no": false, "No": false, "NO": false,
		}
		for in, want := range tests {
			got, err := coerce.ToBoolean(in)
			require.NoError(t, err, in)
			assert.Equal(t, want, got, in)
		}
	})

	t.Run("strict", func(t *testing.T) {
		for in, want := range map[string]bool{"true": true, "false": false, "1": true, "0": false} {
			got, err := coerce.ToBoolean(in, coerce.Strict())
			require.NoError(t, err, in)
			assert.Equal(t, want, got, in)
		}
		for _, in := range []string{"True", "yes", "NO"} {
			_, err := coerce.ToBoolean(in, coerce.Strict())
			assert.ErrorIs(t, err, coerce.ErrTypeMismatch, in)
		}
	})

	t.Run("non strings", func(t *testing.T) {
		got, err := coerce.ToBoolean(true)
		require.NoError(t, err)
		assert.True(t, got)

		got, err = coerce.ToBoolean(1)
		require.NoError(t, err)
		assert.True(t, got)

		got, err = coerce.ToBoolean(0)
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("rejects", func(t *testing.T) {
		for _, in := range []any{nil, "true ", " false", "1.0", "0.0", 2, 0.5, struct{}{}} {
			_, err := coerce.ToBoolean(in)
			assert.ErrorIs(t, err, coerce.ErrTypeMismatch, "%v", in)
		}
	})
}
