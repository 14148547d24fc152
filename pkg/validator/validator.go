package validator

import (
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"slices"

	"github.com/dmitrymomot/livevalidator/pkg/declaration"
	"github.com/dmitrymomot/livevalidator/pkg/logger"
	"github.com/dmitrymomot/livevalidator/pkg/messages"
	"github.com/dmitrymomot/livevalidator/pkg/rules"
)

// Validator evaluates the fields of one form.
type Validator[E any] struct {
	env           Environment[E]
	specs         map[string]declaration.Spec
	registry      *rules.Registry
	catalog       *messages.Catalog
	scope         rules.Scope
	store         *Store[E]
	hooks         Hooks[E]
	disableSubmit bool
	logger        *slog.Logger
}

// field is the working copy of the field being evaluated. It is captured in
// full before any predicate runs.
type field[E any] struct {
	id    string
	name  string
	value string
	el    E
}

// New builds a Validator for env.
func New[E any](env Environment[E], opts ...Option) (*Validator[E], error) {
	if env == nil {
		return nil, ErrNilEnvironment
	}

	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	registry, err := buildRegistry(cfg)
	if err != nil {
		return nil, err
	}
	catalog, err := buildCatalog(cfg)
	if err != nil {
		return nil, err
	}

	var hooks Hooks[E]
	if cfg.hooks != nil {
		h, ok := cfg.hooks.(Hooks[E])
		if !ok {
			return nil, fmt.Errorf("%w: got %T", ErrHooksType, cfg.hooks)
		}
		hooks = h
	}

	log := cfg.logger
	if log == nil {
		log = logger.Discard()
	}

	specs := maps.Clone(cfg.rules)
	if specs == nil {
		specs = make(map[string]declaration.Spec)
	}
	if err := checkSpecs(specs, registry, cfg.strict); err != nil {
		return nil, err
	}

	v := &Validator[E]{
		env:           env,
		specs:         specs,
		registry:      registry,
		catalog:       catalog,
		store:         newStore[E](),
		hooks:         hooks,
		disableSubmit: cfg.disableSubmit,
		logger:        log,
	}
	v.scope = registry.Scope(formLookup[E]{env: env})
	return v, nil
}

func buildRegistry(cfg *config) (*rules.Registry, error) {
	if cfg.registry == nil {
		return rules.NewRegistry(cfg.ruleOverrides)
	}
	if len(cfg.ruleOverrides) > 0 {
		return nil, fmt.Errorf("%w: WithRegistry and WithValidationRules", ErrConflictingOptions)
	}
	return cfg.registry, nil
}

func buildCatalog(cfg *config) (*messages.Catalog, error) {
	if cfg.catalog == nil {
		return messages.NewCatalog(cfg.messageOverride), nil
	}
	if len(cfg.messageOverride) > 0 {
		return nil, fmt.Errorf("%w: WithCatalog and WithWarningMessages", ErrConflictingOptions)
	}
	return cfg.catalog, nil
}

func checkSpecs(specs map[string]declaration.Spec, registry *rules.Registry, strict bool) error {
	var errs []error
	for _, name := range slices.Sorted(maps.Keys(specs)) {
		spec := specs[name]
		if !spec.Valid() {
			errs = append(errs, fmt.Errorf("%w: field %q", ErrInvalidSpec, name))
			continue
		}
		if !strict || spec.Kind() != declaration.KindPreset {
			continue
		}
		for _, c := range spec.Clauses() {
			if !registry.Has(c.Name) {
				errs = append(errs, fmt.Errorf("%w: field %q: %q", ErrUnknownRule, name, c.Name))
			}
		}
	}
	return errors.Join(errs...)
}

// Store returns the error store. It must not be read while an evaluation is
// running.
func (v *Validator[E]) Store() *Store[E] {
	return v.store
}

// Registry returns the rule registry in use.
func (v *Validator[E]) Registry() *rules.Registry {
	return v.registry
}

// Declared reports whether a rule is declared for the field name.
func (v *Validator[E]) Declared(name string) bool {
	_, ok := v.specs[name]
	return ok
}

// CurrentErrors returns a copy of the active errors keyed by field id.
func (v *Validator[E]) CurrentErrors() map[string]ErrorEntry[E] {
	return v.store.Snapshot()
}

// Errors returns the active errors as an error value, or nil if the store is
// empty.
func (v *Validator[E]) Errors() error {
	if verrs := v.store.ValidationErrors(); verrs != nil {
		return verrs
	}
	return nil
}

// Message returns the active message for el, or "" when el is valid.
func (v *Validator[E]) Message(el E) string {
	id, _ := v.env.Identity(el)
	e, ok := v.store.Get(id)
	if !ok {
		return ""
	}
	return e.Message
}
