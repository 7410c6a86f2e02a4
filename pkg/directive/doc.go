// Package directive attaches declarative constraints to property writes and
// to method or function parameters.
//
// A Directive is an immutable, named predicate with a message template.
// Constructors such as IsInt, IsIntRange, IsDecimal and IsAlphanumeric wrap
// the predicates of package validator; Make and Strings build custom ones.
// Directives are stacked per Target in a Registry and run in declaration
// order. The first directive that rejects a value stops the check and its
// template becomes the message of a *ConstraintViolation. Nothing is written
// and no method body runs when a check fails.
//
// # Properties
//
//	type Vehicle struct{ name string }
//
//	var setName = directive.Property("Name", func(v *Vehicle, s string) error {
//	    v.name = s
//	    return nil
//	}).With(directive.IsAlphanumeric()).Validated()
//
//	err := setName.Set(v, "Boat Wake") // Value Boat Wake must contain only letters and numbers
//
// # Parameters
//
//	var scale = directive.Wrap1(
//	    directive.Method[*Vehicle]("Scale").
//	        Param(0, directive.IsInt(), directive.IsIntRange(10, 100)).
//	        Names("factor").
//	        Validated(),
//	    func(factor int) (int, error) { return factor * 2, nil },
//	)
//
// Parameters are checked from the lowest index up; arguments that were not
// passed are checked as nil.
//
// # Configuration errors
//
// Constructors validate their arguments when called. An unknown locale, an
// unsupported hash algorithm or an empty range yields a directive that
// cannot be registered: Build returns a *ConfigurationError wrapping the
// validator sentinel, and Validated panics with it.
//
// # Messages
//
// Templates use :value: and :target: placeholders, rendered by a Formatter.
// Config controls the placeholders, the sentinels used for nil, cyclic and
// unprintable values, and the maximum rendered length; LoadConfig reads it
// from GUARDRAIL_* environment variables.
//
// A Registry is safe for concurrent use. Registration normally happens
// during package initialisation; checks may run from any goroutine.
package directive
