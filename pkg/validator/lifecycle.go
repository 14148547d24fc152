package validator

// Start runs OnInit, disables submission when configured and validates the
// whole form once. Call it when the form is first shown.
func (v *Validator[E]) Start() bool {
	if v.hooks.OnInit != nil {
		v.hooks.OnInit(v.env)
	}
	if v.disableSubmit {
		v.setSubmitEnabled(false)
	}
	return v.ValidateForm()
}

// Validate handles an interaction with one field, such as blur or change.
// Declared fields go through BeforeFieldValidation, EvaluateField and
// AfterFieldValidation; the form verdict is refreshed either way. The result
// is the field's validity.
func (v *Validator[E]) Validate(el E) bool {
	_, name := v.env.Identity(el)
	if !v.Declared(name) {
		v.ValidateForm()
		return true
	}

	if v.hooks.BeforeFieldValidation != nil {
		v.hooks.BeforeFieldValidation(el)
	}
	valid := v.EvaluateField(el)
	if v.hooks.AfterFieldValidation != nil {
		v.hooks.AfterFieldValidation(el, valid, v.Message(el))
	}
	v.ValidateForm()
	return valid
}

// ValidateForm evaluates the whole form between BeforeFormValidation and
// the success or failure hook.
func (v *Validator[E]) ValidateForm() bool {
	if v.hooks.BeforeFormValidation != nil {
		v.hooks.BeforeFormValidation(v.env)
	}
	if v.EvaluateForm() {
		v.succeeded()
		return true
	}
	v.failed()
	return false
}

// Submit evaluates the form on submission. A valid form runs OnSubmit and
// reports true; the host then sends it. An invalid form runs the failure
// hook and reports false.
func (v *Validator[E]) Submit() bool {
	if !v.EvaluateForm() {
		v.failed()
		return false
	}
	if v.disableSubmit {
		v.setSubmitEnabled(false)
	}
	if v.hooks.OnSubmit != nil {
		v.hooks.OnSubmit(v.env)
	}
	return true
}

func (v *Validator[E]) succeeded() {
	if v.hooks.OnSuccessfulValidation != nil {
		v.hooks.OnSuccessfulValidation(v.env)
	}
	if v.disableSubmit {
		v.setSubmitEnabled(true)
	}
}

func (v *Validator[E]) failed() {
	if v.hooks.OnFailedValidation != nil {
		v.hooks.OnFailedValidation(v.env)
	}
	if v.disableSubmit {
		v.setSubmitEnabled(false)
	}
}

func (v *Validator[E]) setSubmitEnabled(enabled bool) {
	if t, ok := v.env.(SubmitToggler); ok {
		t.SetSubmitEnabled(enabled)
	}
}
