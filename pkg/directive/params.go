package directive

import (
	"context"
	"errors"
	"slices"
)

// MethodBuilder declares directives on the parameters of one method or
// function.
type MethodBuilder struct {
	owner    string
	name     string
	registry *Registry
	params   map[int][]*Directive
	labels   []string
	err      error
}

// Method starts a declaration for the method name of R.
func Method[R any](name string) *MethodBuilder {
	return Func(OwnerOf[R](), name)
}

// Func starts a declaration for a function. owner namespaces name and may be
// empty.
func Func(owner, name string) *MethodBuilder {
	return &MethodBuilder{owner: owner, name: name, params: make(map[int][]*Directive)}
}

// Param stacks ds on the parameter at index.
func (b *MethodBuilder) Param(index int, ds ...*Directive) *MethodBuilder {
	if index < 0 {
		b.err = errors.New("negative parameter index")
		return b
	}
	b.params[index] = append(b.params[index], ds...)
	return b
}

// Names labels the parameters by position for use in messages.
func (b *MethodBuilder) Names(names ...string) *MethodBuilder {
	b.labels = names
	return b
}

// In registers the parameters in reg instead of Default().
func (b *MethodBuilder) In(reg *Registry) *MethodBuilder {
	b.registry = reg
	return b
}

// Build registers every parameter declaration at once and returns the guard.
// If any directive is invalid, nothing is registered.
func (b *MethodBuilder) Build() (*Guard, error) {
	return b.BuildContext(context.Background())
}

// BuildContext is Build with ctx passed to the registry's logger.
func (b *MethodBuilder) BuildContext(ctx context.Context) (*Guard, error) {
	reg := b.registry
	if reg == nil {
		reg = Default()
	}
	if b.err != nil {
		return nil, &ConfigurationError{Target: ParamTarget(b.owner, b.name, 0), Err: b.err}
	}

	indexes := make([]int, 0, len(b.params)+len(b.labels))
	for i := range b.params {
		indexes = append(indexes, i)
	}
	for i, label := range b.labels {
		if _, ok := b.params[i]; !ok && label != "" {
			indexes = append(indexes, i)
		}
	}
	slices.Sort(indexes)

	bs := make([]binding, 0, len(indexes))
	for _, i := range indexes {
		bd := binding{target: ParamTarget(b.owner, b.name, i), directives: b.params[i]}
		if i < len(b.labels) {
			bd.label = b.labels[i]
		}
		bs = append(bs, bd)
	}
	if err := reg.registerAll(ctx, bs); err != nil {
		return nil, err
	}
	return &Guard{owner: b.owner, name: b.name, registry: reg}, nil
}

// Validated is like Build but panics on a configuration error.
func (b *MethodBuilder) Validated() *Guard {
	g, err := b.Build()
	if err != nil {
		panic(err)
	}
	return g
}

// Guard validates arguments before a method body runs.
type Guard struct {
	owner    string
	name     string
	registry *Registry
}

// Check validates args left to right and returns the first violation.
func (g *Guard) Check(args ...any) error {
	return g.registry.CheckArgs(g.owner, g.name, args...)
}

// Call runs fn with args once they pass.
func (g *Guard) Call(fn func(args ...any) (any, error), args ...any) (any, error) {
	if err := g.Check(args...); err != nil {
		return nil, err
	}
	return fn(args...)
}

// Wrap1 returns fn guarded by g.
func Wrap1[A, Out any](g *Guard, fn func(A) (Out, error)) func(A) (Out, error) {
	return func(a A) (Out, error) {
		if err := g.Check(a); err != nil {
			var zero Out
			return zero, err
		}
		return fn(a)
	}
}

// Wrap2 returns fn guarded by g.
func Wrap2[A, B, Out any](g *Guard, fn func(A, B) (Out, error)) func(A, B) (Out, error) {
	return func(a A, b B) (Out, error) {
		if err := g.Check(a, b); err != nil {
			var zero Out
			return zero, err
		}
		return fn(a, b)
	}
}

// Wrap3 returns fn guarded by g.
func Wrap3[A, B, C, Out any](g *Guard, fn func(A, B, C) (Out, error)) func(A, B, C) (Out, error) {
	return func(a A, b B, c C) (Out, error) {
		if err := g.Check(a, b, c); err != nil {
			var zero Out
			return zero, err
		}
		return fn(a, b, c)
	}
}
