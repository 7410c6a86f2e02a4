package directive

import (
	"context"
	"errors"
)

// PropertyBuilder declares the directives guarding one property of R.
type PropertyBuilder[R, T any] struct {
	name       string
	set        func(R, T) error
	registry   *Registry
	directives []*Directive
}

// Property starts a declaration for the property name of R. set performs the
// actual write once every directive has passed.
//
//	var setName = directive.Property("Name", func(v *Vehicle, s string) error {
//		v.name = s
//		return nil
//	}).With(directive.IsAlphanumeric()).Validated()
func Property[R, T any](name string, set func(R, T) error) *PropertyBuilder[R, T] {
	return &PropertyBuilder[R, T]{name: name, set: set}
}

// In registers the property in reg instead of Default().
func (b *PropertyBuilder[R, T]) In(reg *Registry) *PropertyBuilder[R, T] {
	b.registry = reg
	return b
}

// With stacks ds after any directives added earlier.
func (b *PropertyBuilder[R, T]) With(ds ...*Directive) *PropertyBuilder[R, T] {
	b.directives = append(b.directives, ds...)
	return b
}

// Build registers the directives and returns the guarded setter. Nothing is
// registered when an error is returned.
func (b *PropertyBuilder[R, T]) Build() (*Setter[R, T], error) {
	return b.BuildContext(context.Background())
}

// BuildContext is Build with ctx passed to the registry's logger.
func (b *PropertyBuilder[R, T]) BuildContext(ctx context.Context) (*Setter[R, T], error) {
	reg := b.registry
	if reg == nil {
		reg = Default()
	}
	target := AccessorTarget(OwnerOf[R](), b.name)
	if b.set == nil {
		return nil, &ConfigurationError{Target: target, Err: errors.New("nil setter")}
	}
	if err := reg.RegisterContext(ctx, target, b.directives...); err != nil {
		return nil, err
	}
	return &Setter[R, T]{target: target, set: b.set, registry: reg}, nil
}

// Validated is like Build but panics on a configuration error.
func (b *PropertyBuilder[R, T]) Validated() *Setter[R, T] {
	s, err := b.Build()
	if err != nil {
		panic(err)
	}
	return s
}

// Setter writes a property after checking it against the registry.
type Setter[R, T any] struct {
	target   Target
	set      func(R, T) error
	registry *Registry
}

// Set validates value and only then calls the underlying setter. On a
// violation the receiver is left untouched.
func (s *Setter[R, T]) Set(recv R, value T) error {
	if err := s.registry.Check(s.target, value); err != nil {
		return err
	}
	return s.set(recv, value)
}

// Target returns the registry key of the property.
func (s *Setter[R, T]) Target() Target {
	return s.target
}
