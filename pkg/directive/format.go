package directive

import (
	"fmt"
	"reflect"
	"strings"
	"unicode/utf8"
)

const maxRenderDepth = 64

// Formatter turns a failed directive into a human-readable message.
type Formatter struct {
	cfg Config
}

// NewFormatter returns a formatter using cfg. Empty placeholders and
// sentinels fall back to DefaultConfig.
func NewFormatter(cfg Config) *Formatter {
	return &Formatter{cfg: cfg.withDefaults()}
}

// Format fills the directive template. The value placeholder becomes the
// rendered value, the target placeholder becomes target.
func (f *Formatter) Format(d *Directive, value any, target string) string {
	msg := d.Template()
	if msg == "" {
		msg = "Value " + f.cfg.ValuePlaceholder + " failed " + d.Name()
	}
	var pairs []string
	if strings.Contains(msg, f.cfg.ValuePlaceholder) {
		pairs = append(pairs, f.cfg.ValuePlaceholder, f.Render(value))
	}
	pairs = append(pairs, f.cfg.TargetPlaceholder, target)
	// One pass, so placeholders inside the rendered value stay as written.
	return strings.NewReplacer(pairs...).Replace(msg)
}

// Render returns a bounded, panic-free string form of value.
func (f *Formatter) Render(value any) string {
	return f.truncate(f.render(value))
}

func (f *Formatter) render(value any) (out string) {
	if isNil(value) {
		return f.cfg.NilSentinel
	}
	if s, ok := value.(string); ok {
		return s
	}

	defer func() {
		if recover() != nil {
			out = f.cfg.UnprintableSentinel
		}
	}()
	switch v := value.(type) {
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	}
	if cyclic(reflect.ValueOf(value), map[visit]bool{}, 0) {
		return f.cfg.CyclicSentinel
	}
	return fmt.Sprintf("%v", value)
}

func (f *Formatter) truncate(s string) string {
	limit := f.cfg.MaxValueLength
	if limit <= 0 || utf8.RuneCountInString(s) <= limit {
		return s
	}
	return string([]rune(s)[:limit])
}

// visit identifies a node by address and type, since a struct and its first
// field share an address.
type visit struct {
	ptr uintptr
	typ reflect.Type
}

// cyclic reports whether v refers back to itself through pointers, maps or
// slices. Structures nested deeper than maxRenderDepth count as cyclic.
func cyclic(v reflect.Value, seen map[visit]bool, depth int) bool {
	if depth > maxRenderDepth {
		return true
	}
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice:
		if v.IsNil() {
			return false
		}
		key := visit{v.Pointer(), v.Type()}
		if seen[key] {
			return true
		}
		seen[key] = true
		defer delete(seen, key)

		switch v.Kind() {
		case reflect.Pointer:
			return cyclic(v.Elem(), seen, depth+1)
		case reflect.Map:
			iter := v.MapRange()
			for iter.Next() {
				if cyclic(iter.Key(), seen, depth+1) || cyclic(iter.Value(), seen, depth+1) {
					return true
				}
			}
		default:
			if scalar(v.Type().Elem().Kind()) {
				return false
			}
			for i := range v.Len() {
				if cyclic(v.Index(i), seen, depth+1) {
					return true
				}
			}
		}
	case reflect.Array:
		if scalar(v.Type().Elem().Kind()) {
			return false
		}
		for i := range v.Len() {
			if cyclic(v.Index(i), seen, depth+1) {
				return true
			}
		}
	case reflect.Struct:
		for i := range v.NumField() {
			if cyclic(v.Field(i), seen, depth+1) {
				return true
			}
		}
	case reflect.Interface:
		if !v.IsNil() {
			return cyclic(v.Elem(), seen, depth+1)
		}
	}
	return false
}

func scalar(k reflect.Kind) bool {
	return k == reflect.String || (k >= reflect.Bool && k <= reflect.Complex128)
}
