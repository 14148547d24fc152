package formdef

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/dmitrymomot/livevalidator/pkg/declaration"
	"github.com/dmitrymomot/livevalidator/pkg/messages"
	"github.com/dmitrymomot/livevalidator/pkg/rules"
	"github.com/dmitrymomot/livevalidator/pkg/validator"
)

// Form is a compiled definition. Its registry and catalog are immutable, so
// one Form serves any number of validators concurrently.
type Form struct {
	Definition *Definition
	Registry   *rules.Registry
	Catalog    *messages.Catalog
	Specs      map[string]declaration.Spec
}

// Compile builds the registry, catalog and field declarations of def.
func Compile(def *Definition) (*Form, error) {
	if err := def.Check(); err != nil {
		return nil, err
	}

	overrides, err := compileRules(def.ValidationRules)
	if err != nil {
		return nil, err
	}
	registry, err := rules.NewRegistry(overrides)
	if err != nil {
		return nil, err
	}

	specs := make(map[string]declaration.Spec, len(def.Fields))
	var errs []error
	for _, f := range def.Fields {
		if _, seen := specs[f.Name]; seen {
			continue
		}
		switch {
		case f.Expr != "":
			spec, err := compileField(f)
			if err != nil {
				errs = append(errs, err)
				continue
			}
			specs[f.Name] = spec
		case f.Rules != "":
			specs[f.Name] = declaration.Preset(f.Rules)
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	return &Form{
		Definition: def,
		Registry:   registry,
		Catalog:    messages.NewCatalog(def.Messages),
		Specs:      specs,
	}, nil
}

// CompileAll compiles every definition, keyed by form name.
func CompileAll(defs map[string]*Definition) (map[string]*Form, error) {
	forms := make(map[string]*Form, len(defs))
	var errs []error
	for _, name := range slices.Sorted(maps.Keys(defs)) {
		form, err := Compile(defs[name])
		if err != nil {
			errs = append(errs, fmt.Errorf("form %q: %w", name, err))
			continue
		}
		forms[name] = form
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return forms, nil
}

// Options returns the validator options described by the form.
func (f *Form) Options() []validator.Option {
	opts := []validator.Option{
		validator.WithRegistry(f.Registry),
		validator.WithCatalog(f.Catalog),
		validator.WithRules(f.Specs),
	}
	if f.Definition.Strict {
		opts = append(opts, validator.WithStrictRules())
	}
	if f.Definition.DisableSubmit {
		opts = append(opts, validator.WithDisableSubmit())
	}
	return opts
}

func ruleEnv(value string, p rules.Params) map[string]any {
	params := p.List()
	if params == nil {
		params = []string{}
	}
	return map[string]any{
		"value":   value,
		"params":  params,
		"raw":     p.Raw,
		"present": p.Present,
	}
}

func compileRules(src map[string]string) (map[string]rules.Predicate, error) {
	if len(src) == 0 {
		return nil, nil
	}
	out := make(map[string]rules.Predicate, len(src))
	var errs []error
	for _, name := range slices.Sorted(maps.Keys(src)) {
		program, err := expr.Compile(src[name],
			expr.Env(ruleEnv("", rules.NoParams)),
			expr.AsBool())
		if err != nil {
			errs = append(errs, fmt.Errorf("%w: rule %q: %w", ErrCompileExpression, name, err))
			continue
		}
		out[name] = exprPredicate(program)
	}
	return out, errors.Join(errs...)
}

func exprPredicate(program *vm.Program) rules.Predicate {
	return func(_ rules.Scope, value string, p rules.Params) bool {
		result, err := expr.Run(program, ruleEnv(value, p))
		if err != nil {
			return false
		}
		ok, isBool := result.(bool)
		return isBool && ok
	}
}

func compileField(f Field) (declaration.Spec, error) {
	program, err := expr.Compile(f.Expr, expr.Env(map[string]any{"value": ""}))
	if err != nil {
		return declaration.Spec{}, fmt.Errorf("%w: field %q: %w", ErrCompileExpression, f.Name, err)
	}
	return declaration.Custom(func(value string) any {
		result, err := expr.Run(program, map[string]any{"value": value})
		if err != nil {
			return err
		}
		return result
	}), nil
}
