package validator_test

import "slices"

type input struct {
	id       string
	name     string
	value    string
	checked  bool
	disabled bool
}

// fakeForm is an in-memory environment mimicking a rendered form.
type fakeForm struct {
	inputs        []*input
	submitEnabled bool
	toggles       []bool
}

func newForm(inputs ...*input) *fakeForm {
	return &fakeForm{inputs: inputs, submitEnabled: true}
}

func (f *fakeForm) Fields() []*input {
	var out []*input
	for _, in := range f.inputs {
		if !in.disabled {
			out = append(out, in)
		}
	}
	return out
}

func (f *fakeForm) Identity(in *input) (string, string) { return in.id, in.name }

func (f *fakeForm) Value(in *input) string { return in.value }

func (f *fakeForm) FindByName(name string) (*input, bool) {
	i := slices.IndexFunc(f.inputs, func(in *input) bool { return in.name == name })
	if i < 0 {
		return nil, false
	}
	return f.inputs[i], true
}

func (f *fakeForm) IsChecked(value string) bool {
	return slices.ContainsFunc(f.inputs, func(in *input) bool { return in.value == value && in.checked })
}

func (f *fakeForm) SetSubmitEnabled(enabled bool) {
	f.submitEnabled = enabled
	f.toggles = append(f.toggles, enabled)
}

func field(name, value string) *input {
	return &input{id: name + "-id", name: name, value: value}
}
