package rules

import "slices"

// List passes when value is one of the comma-separated params.
// Absent params form an empty set.
func List(_ Scope, value string, p Params) bool {
	return IsEmpty(value) || slices.Contains(p.List(), value)
}

// Excludes passes when value is none of the comma-separated params.
func Excludes(_ Scope, value string, p Params) bool {
	return IsEmpty(value) || !slices.Contains(p.List(), value)
}

// Accepted passes when an element carrying value is checked, e.g. a
// terms-of-service checkbox.
func Accepted(s Scope, value string, _ Params) bool {
	return IsEmpty(value) || s.IsChecked(value)
}
