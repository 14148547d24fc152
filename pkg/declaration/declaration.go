// Package declaration parses the rule declarations attached to form fields.
//
// A declaration is either a pipe-separated list of clauses, each an optional
// parameter block away from a rule name:
//
//	"required|numeric|range(:1,10)"
//
// or a single custom predicate. Spec values are built once when a form is
// configured and never re-inspected per evaluation.
package declaration

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/livevalidator/pkg/rules"
)

// Separator splits a declaration into clauses.
const Separator = "|"

var paramBlock = regexp.MustCompile(`\(:[\w\-,]+\)$`)

// Clause is one rule reference within a declaration.
type Clause struct {
	Name   string
	Params rules.Params
}

func (c Clause) String() string {
	if !c.Params.Present {
		return c.Name
	}
	return c.Name + "(:" + c.Params.Raw + ")"
}

// Parse splits decl into clauses, preserving order. A parameter block that
// does not match the (:p1,p2) syntax is left in the name and the clause
// gets no params.
func Parse(decl string) []Clause {
	parts := strings.Split(decl, Separator)
	clauses := make([]Clause, 0, len(parts))
	for _, part := range parts {
		clauses = append(clauses, parseClause(part))
	}
	return clauses
}

func parseClause(s string) Clause {
	loc := paramBlock.FindStringIndex(s)
	if loc == nil {
		return Clause{Name: s}
	}
	block := s[loc[0]:loc[1]]
	return Clause{
		Name:   s[:loc[0]],
		Params: rules.With(block[2 : len(block)-1]),
	}
}

// CustomFunc is a caller-supplied predicate over the raw field value. Only
// the boolean true counts as valid; any other result, truthy or not, marks
// the field invalid.
type CustomFunc func(value string) any

// Kind tells the two declaration shapes apart.
type Kind uint8

const (
	KindPreset Kind = iota + 1
	KindCustom
)

// Spec is a field's declaration: either a preset clause list or a custom
// predicate.
type Spec struct {
	kind    Kind
	source  string
	clauses []Clause
	custom  CustomFunc
}

// Preset builds a Spec from a clause string. The string is parsed once here.
func Preset(decl string) Spec {
	return Spec{kind: KindPreset, source: decl, clauses: Parse(decl)}
}

// Custom builds a Spec around a custom predicate.
func Custom(fn CustomFunc) Spec {
	return Spec{kind: KindCustom, custom: fn}
}

// CustomBool adapts a plain boolean predicate.
func CustomBool(fn func(value string) bool) Spec {
	return Custom(func(value string) any { return fn(value) })
}

func (s Spec) Kind() Kind { return s.kind }

// IsZero reports whether s was never initialised.
func (s Spec) IsZero() bool { return s.kind == 0 }

// Valid reports whether s is a preset spec or a custom spec with a predicate.
func (s Spec) Valid() bool {
	return s.kind == KindPreset || (s.kind == KindCustom && s.custom != nil)
}

// Source returns the clause string of a preset spec.
func (s Spec) Source() string { return s.source }

// Clauses returns a copy of the parsed clauses of a preset spec.
func (s Spec) Clauses() []Clause {
	return append([]Clause(nil), s.clauses...)
}

// Call runs the custom predicate. It reports false for preset specs and nil
// predicates.
func (s Spec) Call(value string) bool {
	if s.kind != KindCustom || s.custom == nil {
		return false
	}
	ok, isBool := s.custom(value).(bool)
	return isBool && ok
}
