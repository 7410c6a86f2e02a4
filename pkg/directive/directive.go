package directive

import (
	"fmt"
	"reflect"
	"slices"
	"strconv"
	"strings"
	"unicode"
)

// Predicate decides whether a value satisfies a constraint.
type Predicate func(value any) bool

// Directive is an immutable, named constraint with a message template.
// Directives are built once at declaration time and may be shared by any
// number of targets.
type Directive struct {
	name     string
	key      string
	check    Predicate
	args     []any
	template string
	err      error
}

// Make captures check under name. The predicate is not invoked until a value
// is validated.
func Make(name string, check Predicate, template string, args ...any) *Directive {
	return &Directive{
		name:     name,
		key:      keyFor(name),
		check:    check,
		args:     args,
		template: template,
	}
}

// Invalid returns a directive that can never be registered. Constructors use
// it to report bad arguments at declaration time.
func Invalid(name string, err error) *Directive {
	return &Directive{name: name, key: keyFor(name), err: err}
}

// Strings adapts a string predicate. Strings, byte slices, numbers, booleans
// and fmt.Stringer values are checked in their canonical text form; any other
// value, including nil, fails.
func Strings(name string, check func(string) bool, template string, args ...any) *Directive {
	return Make(name, func(value any) bool {
		s, ok := asString(value)
		return ok && check(s)
	}, template, args...)
}

func (d *Directive) Name() string { return d.name }

// Key is a stable identifier such as "validation.int_range".
func (d *Directive) Key() string { return d.key }

func (d *Directive) Template() string { return d.template }

// Args returns the declaration arguments, for introspection.
func (d *Directive) Args() []any { return slices.Clone(d.args) }

// Err is the configuration problem recorded at construction, if any.
func (d *Directive) Err() error { return d.err }

// Check runs the predicate. A directive without one never passes.
func (d *Directive) Check(value any) bool {
	if d.check == nil {
		return false
	}
	return d.check(value)
}

// WithMessage returns a copy of d using template instead of the default message.
func (d *Directive) WithMessage(template string) *Directive {
	c := *d
	c.template = template
	return &c
}

func (d *Directive) String() string {
	if len(d.args) == 0 {
		return d.name
	}
	return fmt.Sprintf("%s%v", d.name, d.args)
}

// keyFor turns "IsIntRange" into "validation.int_range".
func keyFor(name string) string {
	if rest, ok := strings.CutPrefix(name, "Is"); ok && rest != "" && unicode.IsUpper(rune(rest[0])) {
		name = rest
	}
	runes := []rune(name)
	var b strings.Builder
	b.WriteString("validation.")
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func asString(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	case []byte:
		return string(v), true
	case bool:
		return strconv.FormatBool(v), true
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case fmt.Stringer:
		if isNil(value) {
			return "", false
		}
		return v.String(), true
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	}
	return "", false
}

func isNil(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
