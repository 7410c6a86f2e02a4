package directive_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardrail/pkg/coerce"
	"github.com/dmitrymomot/guardrail/pkg/directive"
	"github.com/dmitrymomot/guardrail/pkg/validator"
)

type Engine struct {
	revs int64
}

func TestMethod_PassThrough(t *testing.T) {
	t.Parallel()

	reg := directive.NewRegistry()
	g := directive.Method[*Engine]("Scale").In(reg).Validated()

	scale := directive.Wrap1(g, func(n any) (any, error) { return n, nil })
	for _, in := range []any{nil, 5, "Boat Wake", 33.33} {
		got, err := scale(in)
		require.NoError(t, err)
		assert.Equal(t, in, got)
	}
}

func TestMethod_Scale(t *testing.T) {
	t.Parallel()

	reg := directive.NewRegistry()
	e := &Engine{}
	g := directive.Method[*Engine]("Scale").
		In(reg).
		Param(0, directive.IsInt(), directive.IsIntRange(10, 100)).
		Names("factor").
		Validated()

	calls := 0
	scale := directive.Wrap1(g, func(factor any) (int64, error) {
		calls++
		n, err := coerce.ToInt(factor)
		if err != nil {
			return 0, err
		}
		e.revs = n * 2
		return e.revs, nil
	})

	got, err := scale("33")
	require.NoError(t, err)
	assert.Equal(t, int64(66), got)

	_, err = scale(5)
	require.Error(t, err)
	cv, ok := directive.AsConstraintViolation(err)
	require.True(t, ok)
	assert.Equal(t, "directive_test.Engine.Scale(factor)", cv.Name)
	assert.Equal(t, directive.ParamTarget("directive_test.Engine", "Scale", 0), cv.Target)
	assert.Equal(t, 1, calls, "body must not run on violation")
	assert.Equal(t, int64(66), e.revs)
}

func TestMethod_LeftToRight(t *testing.T) {
	t.Parallel()

	reg := directive.NewRegistry()
	g := directive.Func("fleet", "register").
		In(reg).
		Param(1, directive.IsAlphanumeric()).
		Param(0, directive.IsAlphanumeric()).
		Names("name", "make").
		Validated()

	register := directive.Wrap2(g, func(name, make string) (string, error) {
		return name + "/" + make, nil
	})

	got, err := register("BoatWake", "UBUYGAS1")
	require.NoError(t, err)
	assert.Equal(t, "BoatWake/UBUYGAS1", got)

	_, err = register("Boat Wake", "UBUYGAS1")
	cv, ok := directive.AsConstraintViolation(err)
	require.True(t, ok)
	assert.Equal(t, 0, cv.Target.Param)
	assert.Equal(t, "fleet.register(name)", cv.Name)

	_, err = register("Boat Wake", "UBUY GAS1")
	cv, ok = directive.AsConstraintViolation(err)
	require.True(t, ok)
	assert.Equal(t, 0, cv.Target.Param, "lower index is reported first")

	_, err = register("BoatWake", "UBUY GAS1")
	cv, ok = directive.AsConstraintViolation(err)
	require.True(t, ok)
	assert.Equal(t, 1, cv.Target.Param)
	assert.Equal(t, "fleet.register(make)", cv.Name)
}

func TestMethod_MissingArgumentsAreNil(t *testing.T) {
	t.Parallel()

	reg := directive.NewRegistry()
	g := directive.Func("", "configure").In(reg).Param(2, directive.IsNotEmpty()).Validated()

	err := g.Check("a", "b")
	cv, ok := directive.AsConstraintViolation(err)
	require.True(t, ok)
	assert.Nil(t, cv.Value)
	assert.Equal(t, "configure[#2]", cv.Name)
	assert.Equal(t, "Value must not be empty", cv.Message)

	assert.NoError(t, g.Check("a", "b", "c"))
}

func TestMethod_Wrap3AndCall(t *testing.T) {
	t.Parallel()

	reg := directive.NewRegistry()
	g := directive.Func("geo", "locate").
		In(reg).
		Param(0, directive.IsLatLong()).
		Param(2, directive.IsISO31661Alpha2()).
		Validated()

	locate := directive.Wrap3(g, func(pos string, zoom int, country string) (string, error) {
		return strings.Join([]string{pos, country}, "@"), nil
	})
	got, err := locate("48.8566,2.3522", 4, "FR")
	require.NoError(t, err)
	assert.Equal(t, "48.8566,2.3522@FR", got)

	_, err = locate("48.8566,2.3522", 4, "XX")
	assert.ErrorIs(t, err, directive.ErrConstraintViolation)

	out, err := g.Call(func(args ...any) (any, error) { return len(args), nil }, "48.8566,2.3522", 1, "DE")
	require.NoError(t, err)
	assert.Equal(t, 3, out)

	out, err = g.Call(func(args ...any) (any, error) {
		t.Fatal("body must not run")
		return nil, nil
	}, "north", 1, "DE")
	assert.Nil(t, out)
	assert.ErrorIs(t, err, directive.ErrConstraintViolation)
}

func TestMethod_ConfigurationError(t *testing.T) {
	t.Parallel()

	reg := directive.NewRegistry()
	_, err := directive.Func("", "digest").
		In(reg).
		Param(0, directive.IsHash("sha3")).
		Build()
	assert.ErrorIs(t, err, directive.ErrConfiguration)
	assert.ErrorIs(t, err, validator.ErrUnsupportedAlgorithm)

	_, err = directive.Func("", "digest").
		In(reg).
		Param(0, directive.IsHash(validator.SHA256)).
		Param(1, directive.IsIP(5)).
		Build()
	assert.ErrorIs(t, err, validator.ErrUnsupportedVersion)
	assert.Zero(t, reg.Len(), "parameters are registered all or nothing")

	_, err = directive.Func("", "digest").In(reg).Param(-1, directive.IsInt()).Build()
	assert.ErrorIs(t, err, directive.ErrConfiguration)

	assert.Panics(t, func() {
		directive.Func("", "digest").In(reg).Param(0, nil).Validated()
	})
}
