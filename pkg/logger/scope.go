package logger

import (
	"context"
	"log/slog"
)

type scopeKey struct{}

// WithScope tags ctx with the name of whoever is declaring directives, such
// as a package or plugin. Loggers built with ScopeExtractor record it.
func WithScope(ctx context.Context, scope string) context.Context {
	if scope == "" {
		return ctx
	}
	return context.WithValue(ctx, scopeKey{}, scope)
}

// ScopeFrom returns the scope stored by WithScope.
func ScopeFrom(ctx context.Context) (string, bool) {
	scope, ok := ctx.Value(scopeKey{}).(string)
	return scope, ok
}

// ScopeExtractor adds the context scope under the key "scope".
func ScopeExtractor(ctx context.Context) (slog.Attr, bool) {
	scope, ok := ScopeFrom(ctx)
	if !ok {
		return slog.Attr{}, false
	}
	return slog.String("scope", scope), true
}
