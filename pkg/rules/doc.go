// Package rules holds the named predicates used to validate form field values.
//
// A Predicate is a pure function of the current field value and the raw
// parameter block written in a rule declaration (for example the "5,10" in
// "range(:5,10)"). Each predicate parses its own parameters. Predicates that
// need more than the value receive a Scope: Scope.Rules resolves sibling
// predicates by name (min and max reuse numeric this way) and Scope.Form gives
// read-only access to the other fields of the form (matches, different and
// accepted).
//
// # Registry
//
// The package-level default table is never mutated. NewRegistry copies it,
// applies caller overrides by name and returns a Registry that is read-only
// from then on, so one Registry can be shared by many validators:
//
//	reg, err := rules.NewRegistry(map[string]rules.Predicate{
//	    "even": func(_ rules.Scope, value string, _ rules.Params) bool {
//	        n, err := strconv.Atoi(value)
//	        return value == "" || (err == nil && n%2 == 0)
//	    },
//	})
//
// # Empty values
//
// Every built-in except required treats the empty string as valid, so that
// optional fields can be left blank. Custom predicates are expected to follow
// the same convention.
//
// # Built-ins
//
// Built-in rules are grouped by family: string_rules.go (empty, required,
// minlength, maxlength), pattern_rules.go (alphanumeric, alphabetic, numeric,
// email, zip, state_usa, phone_usa, date, year, url, money_usa, money_euro,
// creditcard), numeric_rules.go (min, max, range, between), choice_rules.go
// (list, excludes, accepted), comparable_rules.go (matches, different) and
// date_rules.go (before, after).
package rules
