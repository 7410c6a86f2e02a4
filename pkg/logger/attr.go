package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Target records a directive target such as "shop.Vehicle.Name" under the
// key "target". Any fmt.Stringer is accepted.
func Target(target any) slog.Attr {
	if target == nil {
		return slog.Attr{}
	}
	return slog.Any("target", target)
}

// Owner records the type or namespace that owns a target under the key "owner".
// An empty owner returns an empty Attr.
func Owner(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("owner", name)
}

// Directive records a single directive name under the key "directive".
func Directive(name string) slog.Attr {
	return slog.String("directive", name)
}

// Directives records the directive names attached in one declaration under
// the key "directives", preserving order.
func Directives(names ...string) slog.Attr {
	if len(names) == 0 {
		return slog.Attr{}
	}
	return slog.Any("directives", names)
}

// Param records a zero-based parameter index under the key "param".
func Param(index int) slog.Attr {
	return slog.Int("param", index)
}
