package logger_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/guardrail/pkg/logger"
)

func decode(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNew_RegistrationRecord(t *testing.T) {
	t.Parallel()

	t.Run("json by default", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithLevel(slog.LevelDebug))
		log.Debug("directives registered",
			logger.Component("directive"),
			logger.Target("fleet.Vehicle.Name"),
			logger.Directives("IsAlpha", "IsLength"),
		)

		entry := decode(t, buf)
		assert.Equal(t, "DEBUG", entry["level"])
		assert.Equal(t, "directive", entry["component"])
		assert.Equal(t, "fleet.Vehicle.Name", entry["target"])
		assert.Equal(t, []any{"IsAlpha", "IsLength"}, entry["directives"])
	})

	t.Run("text", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithFormat(logger.FormatText))
		log.Error("directive registration rejected",
			logger.Target("fleet.register[#1]"),
			logger.Param(1),
		)

		out := buf.String()
		assert.Contains(t, out, "level=ERROR")
		assert.Contains(t, out, "target=fleet.register[#1]")
		assert.Contains(t, out, "param=1")
	})

	t.Run("last format option wins", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithTextFormatter(), logger.WithJSONFormatter())
		log.Info("ok")
		assert.Equal(t, "ok", decode(t, buf)["msg"])
	})

	t.Run("static attributes", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithAttr(logger.Component("directive")))
		log.Info("ok")
		assert.Equal(t, "directive", decode(t, buf)["component"])
	})

	t.Run("handler options override level", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(
			logger.WithOutput(buf),
			logger.WithLevel(slog.LevelDebug),
			logger.WithHandlerOptions(&slog.HandlerOptions{Level: slog.LevelWarn}),
		)
		log.Info("dropped")
		assert.Empty(t, buf.String())
	})

	t.Run("unknown format panics", func(t *testing.T) {
		assert.Panics(t, func() {
			logger.New(logger.WithFormat(logger.Format("xml")))
		})
	})
}

func TestScope(t *testing.T) {
	t.Parallel()

	ctx := logger.WithScope(context.Background(), "billing")
	scope, ok := logger.ScopeFrom(ctx)
	require.True(t, ok)
	assert.Equal(t, "billing", scope)

	_, ok = logger.ScopeFrom(logger.WithScope(context.Background(), ""))
	assert.False(t, ok)

	buf := &bytes.Buffer{}
	log := logger.New(logger.WithOutput(buf), logger.WithContextExtractors(nil, logger.ScopeExtractor))

	log.InfoContext(ctx, "directives registered")
	assert.Equal(t, "billing", decode(t, buf)["scope"])

	buf.Reset()
	log.InfoContext(context.Background(), "directives registered")
	assert.NotContains(t, decode(t, buf), "scope")
}

func TestWithContextValue(t *testing.T) {
	t.Parallel()

	type pluginKey struct{}

	buf := &bytes.Buffer{}
	log := logger.New(
		logger.WithOutput(buf),
		logger.WithContextValue("plugin", pluginKey{}),
		logger.WithContextValue("", pluginKey{}),
	)
	ctx := context.WithValue(context.Background(), pluginKey{}, "geo")

	log.With(logger.Component("directive")).InfoContext(ctx, "directives registered")
	entry := decode(t, buf)
	assert.Equal(t, "geo", entry["plugin"])
	assert.Equal(t, "directive", entry["component"])
}

func TestWithStage(t *testing.T) {
	t.Parallel()

	t.Run("unknown stage is ignored", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithStage(logger.Environment("qa"), "guardrail"))
		log.Info("ok")
		entry := decode(t, buf)
		assert.NotContains(t, entry, "env")
		assert.NotContains(t, entry, "service")
	})

	t.Run("aliases", func(t *testing.T) {
		buf := &bytes.Buffer{}
		log := logger.New(logger.WithOutput(buf), logger.WithEnvironment("prod", "guardrail"))
		log.Debug("dropped")
		log.Info("kept")
		entry := decode(t, buf)
		assert.Equal(t, "production", entry["env"])
		assert.Equal(t, "guardrail", entry["service"])
	})
}

func TestSetAsDefault(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { logger.SetAsDefault(prev) })

	buf := &bytes.Buffer{}
	logger.SetAsDefault(logger.New(logger.WithOutput(buf)))
	slog.Info("directives registered", logger.Owner("fleet.Vehicle"))
	assert.Equal(t, "fleet.Vehicle", decode(t, buf)["owner"])
}
