package validator

// Environment is the host's view of one form. E is the host's element handle
// and is stored as-is in error entries.
type Environment[E any] interface {
	// Fields returns the enabled, evaluable fields in document order.
	Fields() []E
	// Identity returns the field's id (the error store key) and name (the
	// rule and message lookup key).
	Identity(el E) (id, name string)
	// Value returns the field's current value.
	Value(el E) string
	// FindByName locates a field by name, for matches and different.
	FindByName(name string) (E, bool)
	// IsChecked reports whether an element carrying value is checked.
	IsChecked(value string) bool
}

// SubmitToggler is implemented by environments that own a submit control.
// It is only used when WithDisableSubmit is set.
type SubmitToggler interface {
	SetSubmitEnabled(enabled bool)
}

// formLookup exposes an Environment to predicates as a read-only lookup.
type formLookup[E any] struct {
	env Environment[E]
}

func (l formLookup[E]) FieldValue(name string) (string, bool) {
	el, ok := l.env.FindByName(name)
	if !ok {
		return "", false
	}
	return l.env.Value(el), true
}

func (l formLookup[E]) IsChecked(value string) bool {
	return l.env.IsChecked(value)
}
