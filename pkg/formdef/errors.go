package formdef

import "errors"

var (
	// ErrInvalidDefinition is returned for structurally invalid definitions.
	ErrInvalidDefinition = errors.New("formdef: invalid definition")

	// ErrFailedToParseYAML is returned when the definition is not valid YAML.
	ErrFailedToParseYAML = errors.New("formdef: failed to parse YAML")

	// ErrCompileExpression is returned when an expression does not compile.
	ErrCompileExpression = errors.New("formdef: failed to compile expression")

	// ErrDuplicateForm is returned by LoadDir when two files define the same form.
	ErrDuplicateForm = errors.New("formdef: duplicate form name")
)
