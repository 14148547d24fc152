package rules

// Matches passes when value equals the current value of the field named by
// the params. A field that cannot be found never matches.
func Matches(s Scope, value string, p Params) bool {
	if IsEmpty(value) {
		return true
	}
	other, ok := s.FieldValue(p.Raw)
	return ok && other == value
}

// Different passes when value differs from the named field's current value.
func Different(s Scope, value string, p Params) bool {
	if IsEmpty(value) {
		return true
	}
	other, ok := s.FieldValue(p.Raw)
	return !ok || other != value
}
