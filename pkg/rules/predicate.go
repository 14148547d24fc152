package rules

import "strings"

// Params is the raw parameter block of a clause with the marker syntax
// stripped, e.g. "1,10" for "range(:1,10)". Present is false when the clause
// carries no parameter block at all.
type Params struct {
	Raw     string
	Present bool
}

// NoParams is the zero Params.
var NoParams = Params{}

// With returns present params holding raw.
func With(raw string) Params {
	return Params{Raw: raw, Present: true}
}

// List splits the params on commas. Absent params yield nil.
func (p Params) List() []string {
	if !p.Present {
		return nil
	}
	return strings.Split(p.Raw, ",")
}

// At returns the i-th comma-separated parameter.
func (p Params) At(i int) (string, bool) {
	list := p.List()
	if i < 0 || i >= len(list) {
		return "", false
	}
	return list[i], true
}

func (p Params) String() string {
	if !p.Present {
		return ""
	}
	return p.Raw
}

// Predicate reports whether value satisfies a rule.
type Predicate func(s Scope, value string, p Params) bool

// Resolver looks up predicates by rule name.
type Resolver interface {
	Resolve(name string) (Predicate, bool)
}

// FormLookup is the read-only view of the surrounding form available to
// predicates comparing against other fields.
type FormLookup interface {
	// FieldValue returns the current value of the field with the given name.
	FieldValue(name string) (string, bool)
	// IsChecked reports whether an element carrying value is checked.
	IsChecked(value string) bool
}

// Scope is passed to every predicate call.
type Scope struct {
	Rules Resolver
	Form  FormLookup
}

// Check evaluates the named sibling rule. Unknown rules fail.
func (s Scope) Check(name, value string, p Params) bool {
	if s.Rules == nil {
		return false
	}
	pred, ok := s.Rules.Resolve(name)
	if !ok {
		return false
	}
	return pred(s, value, p)
}

// FieldValue is a nil-safe shortcut for Form.FieldValue.
func (s Scope) FieldValue(name string) (string, bool) {
	if s.Form == nil {
		return "", false
	}
	return s.Form.FieldValue(name)
}

// IsChecked is a nil-safe shortcut for Form.IsChecked.
func (s Scope) IsChecked(value string) bool {
	if s.Form == nil {
		return false
	}
	return s.Form.IsChecked(value)
}

// IsEmpty reports whether value has zero length.
func IsEmpty(value string) bool {
	return len(value) == 0
}
