package validator

import (
	"log/slog"
	"maps"

	"github.com/dmitrymomot/livevalidator/pkg/declaration"
	"github.com/dmitrymomot/livevalidator/pkg/messages"
	"github.com/dmitrymomot/livevalidator/pkg/rules"
)

// Hooks are the lifecycle callbacks of a Validator. Every hook is optional
// and runs synchronously; panics propagate to the caller.
type Hooks[E any] struct {
	OnInit                 func(form Environment[E])
	BeforeFieldValidation  func(el E)
	AfterFieldValidation   func(el E, valid bool, message string)
	BeforeFormValidation   func(form Environment[E])
	OnSuccessfulValidation func(form Environment[E])
	OnFailedValidation     func(form Environment[E])
	OnSubmit               func(form Environment[E])
}

type config struct {
	rules           map[string]declaration.Spec
	ruleOverrides   map[string]rules.Predicate
	messageOverride map[string]string
	registry        *rules.Registry
	catalog         *messages.Catalog
	strict          bool
	disableSubmit   bool
	logger          *slog.Logger
	hooks           any
}

// Option configures a Validator.
type Option func(*config)

// WithRule declares the rule of one field.
func WithRule(field string, spec declaration.Spec) Option {
	return func(c *config) {
		if c.rules == nil {
			c.rules = make(map[string]declaration.Spec)
		}
		c.rules[field] = spec
	}
}

// WithRules declares rules for several fields at once.
func WithRules(specs map[string]declaration.Spec) Option {
	return func(c *config) {
		if c.rules == nil {
			c.rules = make(map[string]declaration.Spec, len(specs))
		}
		maps.Copy(c.rules, specs)
	}
}

// WithPresetRules declares clause-string rules, keyed by field name.
func WithPresetRules(decls map[string]string) Option {
	return func(c *config) {
		if c.rules == nil {
			c.rules = make(map[string]declaration.Spec, len(decls))
		}
		for field, decl := range decls {
			c.rules[field] = declaration.Preset(decl)
		}
	}
}

// WithValidationRules adds or replaces named predicates for this validator.
func WithValidationRules(overrides map[string]rules.Predicate) Option {
	return func(c *config) {
		if c.ruleOverrides == nil {
			c.ruleOverrides = make(map[string]rules.Predicate, len(overrides))
		}
		maps.Copy(c.ruleOverrides, overrides)
	}
}

// WithWarningMessages adds or replaces message templates, keyed by rule or
// field name.
func WithWarningMessages(overrides map[string]string) Option {
	return func(c *config) {
		if c.messageOverride == nil {
			c.messageOverride = make(map[string]string, len(overrides))
		}
		maps.Copy(c.messageOverride, overrides)
	}
}

// WithRegistry uses a prebuilt registry, typically shared between the
// validators of many requests. It cannot be combined with WithValidationRules.
func WithRegistry(r *rules.Registry) Option {
	return func(c *config) { c.registry = r }
}

// WithCatalog uses a prebuilt message catalog. It cannot be combined with
// WithWarningMessages.
func WithCatalog(cat *messages.Catalog) Option {
	return func(c *config) { c.catalog = cat }
}

// WithStrictRules makes New reject declarations naming unregistered rules.
// Without it such clauses simply fail.
func WithStrictRules() Option {
	return func(c *config) { c.strict = true }
}

// WithDisableSubmit keeps the environment's submit control disabled while
// the form is invalid. The environment must implement SubmitToggler.
func WithDisableSubmit() Option {
	return func(c *config) { c.disableSubmit = true }
}

// WithLogger sets the logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithHooks sets the lifecycle callbacks. E must match the environment's
// element type.
func WithHooks[E any](h Hooks[E]) Option {
	return func(c *config) { c.hooks = h }
}
