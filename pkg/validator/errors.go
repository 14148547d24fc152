package validator

import "errors"

var (
	// ErrValidationFailed is the message of an empty ValidationErrors.
	ErrValidationFailed = errors.New("validation failed")

	// ErrNilEnvironment is returned by New when no environment is given.
	ErrNilEnvironment = errors.New("validator: environment is nil")

	// ErrUnknownRule is returned in strict mode when a declaration names a
	// rule that is not registered.
	ErrUnknownRule = errors.New("validator: unknown rule")

	// ErrInvalidSpec is returned for zero-value declaration specs and custom
	// specs without a predicate.
	ErrInvalidSpec = errors.New("validator: invalid rule declaration")

	// ErrConflictingOptions is returned when a prebuilt registry or catalog
	// is combined with overrides for it.
	ErrConflictingOptions = errors.New("validator: conflicting options")

	// ErrHooksType is returned when hooks were built for a different element type.
	ErrHooksType = errors.New("validator: hooks element type does not match environment")
)
