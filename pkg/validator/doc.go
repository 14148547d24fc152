// Package validator evaluates form fields against declarative rules and keeps
// track of which fields are currently invalid.
//
// A Validator is bound to one form through an Environment, the host's view of
// the form's fields (a DOM bridge, a submitted url.Values, a test fake). Each
// field name can carry a declaration.Spec: either a pipe-separated list of
// named rules such as "required|email" or a custom predicate.
//
// # Architecture
//
// Evaluation flows Validator → declaration clauses → rules.Registry →
// messages.Catalog → Store:
//
//   - EvaluateField runs every clause of a field's declaration in order,
//     without short-circuiting. Each failing clause overwrites the stored
//     message, so the last failure wins.
//   - EvaluateForm evaluates every declared field returned by
//     Environment.Fields and reports whether none failed.
//   - Store maps field ids to the single active ErrorEntry. A field id is
//     present exactly when its last evaluation failed.
//
// Validate, ValidateForm, Start and Submit wrap the two evaluators with the
// lifecycle Hooks a host wires to its input events.
//
// # Usage
//
//	v, err := validator.New[*Input](env,
//	    validator.WithPresetRules(map[string]string{
//	        "email":    "required|email",
//	        "age":      "numeric|range(:18,99)",
//	        "password": "required|minlength(:8)",
//	        "confirm":  "matches(:password)",
//	    }),
//	    validator.WithWarningMessages(map[string]string{
//	        "confirm": "Passwords do not match.",
//	    }),
//	    validator.WithHooks(validator.Hooks[*Input]{
//	        AfterFieldValidation: func(in *Input, valid bool, msg string) { in.Hint = msg },
//	    }),
//	)
//	if err != nil {
//	    return err
//	}
//	if !v.EvaluateForm() {
//	    return v.Errors()
//	}
//
// # Error Handling
//
// Failed rules are data, not errors: they end up in the Store and can be
// returned as ValidationErrors, which implements error. A rule name missing
// from the registry fails closed unless WithStrictRules is set, in which case
// New rejects the configuration with ErrUnknownRule. Panics raised by hooks or
// custom predicates are not recovered.
//
// # Concurrency
//
// A Validator is not safe for concurrent use. Every call runs to completion
// before returning. Registry and Catalog values are immutable and may be
// shared between validators.
package validator
