package validator

import (
	"github.com/dmitrymomot/livevalidator/pkg/declaration"
	"github.com/dmitrymomot/livevalidator/pkg/logger"
	"github.com/dmitrymomot/livevalidator/pkg/rules"
)

// EvaluateField checks el against its declaration and updates the store.
// A field without a declaration is valid and leaves the store untouched.
// Every clause runs even after a failure; the last failing clause decides
// the stored message.
func (v *Validator[E]) EvaluateField(el E) bool {
	id, name := v.env.Identity(el)
	spec, ok := v.specs[name]
	if !ok {
		return true
	}

	f := field[E]{id: id, name: name, value: v.env.Value(el), el: el}

	var valid bool
	switch spec.Kind() {
	case declaration.KindCustom:
		valid = v.evaluateCustom(f, spec)
	default:
		valid = v.evaluatePreset(f, spec)
	}

	v.logger.Debug("field evaluated", logger.Field(f.name), logger.Valid(valid))
	return valid
}

func (v *Validator[E]) evaluateCustom(f field[E], spec declaration.Spec) bool {
	if !spec.Call(f.value) {
		v.raise(f, "", rules.NoParams)
		return false
	}
	v.store.remove(f.id)
	return true
}

func (v *Validator[E]) evaluatePreset(f field[E], spec declaration.Spec) bool {
	valid := true
	for _, c := range spec.Clauses() {
		if !v.check(f, c) {
			valid = false
			v.raise(f, c.Name, c.Params)
		}
	}
	if valid {
		v.store.remove(f.id)
	}
	return valid
}

// check runs one clause. Unregistered rules fail.
func (v *Validator[E]) check(f field[E], c declaration.Clause) bool {
	pred, ok := v.registry.Resolve(c.Name)
	if !ok {
		v.logger.Warn("unknown rule in declaration", logger.Field(f.name), logger.Rule(c.Name))
		return false
	}
	return pred(v.scope, f.value, c.Params)
}

// raise stores the error of a failed clause, replacing any earlier one.
// rule is empty for custom predicates.
func (v *Validator[E]) raise(f field[E], rule string, p rules.Params) {
	v.store.set(f.id, ErrorEntry[E]{
		Element: f.el,
		Field:   f.name,
		Rule:    rule,
		Message: v.catalog.Resolve(f.name, rule, p),
	})
}

// EvaluateForm evaluates every declared field of the environment and
// reports whether the store is empty afterwards. Entries of fields that are
// no longer returned by Fields, such as disabled ones, are dropped.
func (v *Validator[E]) EvaluateForm() bool {
	seen := make(map[string]bool)
	for _, el := range v.env.Fields() {
		id, _ := v.env.Identity(el)
		seen[id] = true
		v.EvaluateField(el)
	}
	for _, id := range v.store.IDs() {
		if !seen[id] {
			v.store.remove(id)
		}
	}
	return v.store.Len() == 0
}
