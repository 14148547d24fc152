package rules

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

var (
	// ErrInvalidRule is returned when a rule has an empty name or a nil predicate.
	ErrInvalidRule = errors.New("rule must have non-empty name and non-nil predicate")
)

var defaults = map[string]Predicate{
	"empty":     Empty,
	"required":  Required,
	"minlength": MinLength,
	"maxlength": MaxLength,

	"alphanumeric": Alphanumeric,
	"alphabetic":   Alphabetic,
	"numeric":      Numeric,
	"email":        Email,
	"zip":          Zip,
	"state_usa":    StateUSA,
	"phone_usa":    PhoneUSA,
	"date":         Date,
	"year":         Year,
	"url":          URL,
	"money_usa":    MoneyUSA,
	"money_euro":   MoneyEuro,
	"creditcard":   CreditCard,

	"min":     Min,
	"max":     Max,
	"range":   Range,
	"between": Between,

	"list":     List,
	"excludes": Excludes,
	"accepted": Accepted,

	"matches":   Matches,
	"different": Different,

	"before": Before,
	"after":  After,
}

// Defaults returns a copy of the built-in rule table.
func Defaults() map[string]Predicate {
	return maps.Clone(defaults)
}

// Registry maps rule names to predicates. It is read-only once built and
// safe for concurrent use.
type Registry struct {
	preds map[string]Predicate
}

// NewRegistry merges the built-in rules with overrides. An override replaces
// the built-in of the same name or adds a new rule.
func NewRegistry(overrides map[string]Predicate) (*Registry, error) {
	r := &Registry{preds: Defaults()}
	for name, pred := range overrides {
		if err := r.register(name, pred); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// MustRegistry is like NewRegistry but panics on error.
func MustRegistry(overrides map[string]Predicate) *Registry {
	r, err := NewRegistry(overrides)
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Registry) register(name string, pred Predicate) error {
	if name == "" || pred == nil {
		return fmt.Errorf("%w: %q", ErrInvalidRule, name)
	}
	r.preds[name] = pred
	return nil
}

// Resolve returns the predicate registered under name.
func (r *Registry) Resolve(name string) (Predicate, bool) {
	if r == nil {
		return nil, false
	}
	pred, ok := r.preds[name]
	return pred, ok
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.Resolve(name)
	return ok
}

// Names returns the registered rule names in sorted order.
func (r *Registry) Names() []string {
	if r == nil {
		return nil
	}
	return slices.Sorted(maps.Keys(r.preds))
}

// Scope returns a Scope resolving sibling rules through r.
func (r *Registry) Scope(form FormLookup) Scope {
	return Scope{Rules: r, Form: form}
}
