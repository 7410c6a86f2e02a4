package directive

import (
	"context"
	"errors"
	"log/slog"
	"maps"
	"slices"
	"sync"

	"github.com/dmitrymomot/guardrail/pkg/logger"
)

// Registry maps targets to their ordered directive lists. Lists only grow;
// reads never block each other.
type Registry struct {
	mu         sync.RWMutex
	directives map[Target][]*Directive
	labels     map[Target]string
	params     map[methodKey][]int

	formatter *Formatter
	logger    *slog.Logger
}

type methodKey struct {
	owner, method string
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger records registrations on l. The validation path never logs.
func WithLogger(l *slog.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithFormatter replaces the message formatter.
func WithFormatter(f *Formatter) Option {
	return func(r *Registry) {
		if f != nil {
			r.formatter = f
		}
	}
}

// WithConfig builds the message formatter from cfg.
func WithConfig(cfg Config) Option {
	return func(r *Registry) {
		r.formatter = NewFormatter(cfg)
	}
}

// NewRegistry returns an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		directives: make(map[Target][]*Directive),
		labels:     make(map[Target]string),
		params:     make(map[methodKey][]int),
		formatter:  NewFormatter(DefaultConfig()),
		logger:     logger.Nop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by builders that were not
// given one with In.
func Default() *Registry {
	return defaultRegistry
}

// Register appends ds to target's list in argument order. If any directive is
// nil or was built with invalid arguments, nothing is appended and a
// *ConfigurationError is returned.
func (r *Registry) Register(target Target, ds ...*Directive) error {
	return r.RegisterContext(context.Background(), target, ds...)
}

// RegisterContext is Register with a context for the registration log
// records, so context extractors such as logger.ScopeExtractor apply.
func (r *Registry) RegisterContext(ctx context.Context, target Target, ds ...*Directive) error {
	return r.registerAll(ctx, []binding{{target: target, directives: ds}})
}

type binding struct {
	target     Target
	directives []*Directive
	label      string
}

// registerAll applies every binding or none of them.
func (r *Registry) registerAll(ctx context.Context, bs []binding) error {
	for _, b := range bs {
		if err := validateDirectives(b.target, b.directives); err != nil {
			r.logger.ErrorContext(ctx, "directive registration rejected",
				logger.Component("directive"),
				logger.Target(b.target.String()),
				logger.Error(err),
			)
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range bs {
		if b.label != "" {
			r.labels[b.target] = b.label
		}
		if len(b.directives) == 0 {
			continue
		}
		r.directives[b.target] = append(r.directives[b.target], b.directives...)
		if !b.target.IsAccessor() {
			r.trackParam(b.target)
		}
		r.logger.DebugContext(ctx, "directives registered",
			logger.Component("directive"),
			logger.Owner(b.target.Owner),
			logger.Target(b.target.String()),
			logger.Directives(names(b.directives)...),
		)
	}
	return nil
}

func (r *Registry) trackParam(t Target) {
	key := methodKey{t.Owner, t.Member}
	idx := r.params[key]
	if pos, found := slices.BinarySearch(idx, t.Param); !found {
		r.params[key] = slices.Insert(slices.Clone(idx), pos, t.Param)
	}
}

func validateDirectives(target Target, ds []*Directive) error {
	if target.Param < accessorParam {
		return &ConfigurationError{Target: target, Err: errors.New("negative parameter index")}
	}
	for _, d := range ds {
		if d == nil {
			return &ConfigurationError{Target: target, Err: errors.New("nil directive")}
		}
		if d.err != nil {
			return &ConfigurationError{Target: target, Directive: d.name, Err: d.err}
		}
	}
	return nil
}

func names(ds []*Directive) []string {
	out := make([]string, len(ds))
	for i, d := range ds {
		out[i] = d.name
	}
	return out
}

// Lookup returns target's directives in declaration order. The result is a
// copy; an undeclared target yields an empty slice.
func (r *Registry) Lookup(target Target) []*Directive {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.directives[target])
}

// Check runs target's directives against value in order and returns a
// *ConstraintViolation for the first that fails. A target with no directives
// accepts every value.
func (r *Registry) Check(target Target, value any) error {
	r.mu.RLock()
	ds := r.directives[target]
	r.mu.RUnlock()

	for _, d := range ds {
		if !d.Check(value) {
			return r.violation(target, d, value)
		}
	}
	return nil
}

// CheckArgs validates the arguments of owner.method, lowest parameter index
// first. Arguments missing from args are checked as nil.
func (r *Registry) CheckArgs(owner, method string, args ...any) error {
	r.mu.RLock()
	idx := r.params[methodKey{owner, method}]
	r.mu.RUnlock()

	for _, i := range idx {
		var v any
		if i < len(args) {
			v = args[i]
		}
		if err := r.Check(ParamTarget(owner, method, i), v); err != nil {
			return err
		}
	}
	return nil
}

func (r *Registry) violation(target Target, d *Directive, value any) *ConstraintViolation {
	name := r.DisplayName(target)
	return &ConstraintViolation{
		Target:    target,
		Name:      name,
		Directive: d.name,
		Key:       d.key,
		Value:     value,
		Message:   r.formatter.Format(d, value, name),
	}
}

// DisplayName is the name used for target in messages: its label when one
// was given, otherwise Target.String.
func (r *Registry) DisplayName(target Target) string {
	r.mu.RLock()
	label, ok := r.labels[target]
	r.mu.RUnlock()
	if !ok {
		return target.String()
	}
	if target.Owner == "" {
		return target.Member + "(" + label + ")"
	}
	return target.Owner + "." + target.Member + "(" + label + ")"
}

// Targets lists every target that has directives, sorted by owner, member and
// parameter index.
func (r *Registry) Targets() []Target {
	r.mu.RLock()
	out := slices.Collect(maps.Keys(r.directives))
	r.mu.RUnlock()
	slices.SortFunc(out, compareTargets)
	return out
}

// Len reports the number of targets with directives.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.directives)
}

// Formatter returns the formatter used for violation messages.
func (r *Registry) Formatter() *Formatter {
	return r.formatter
}
