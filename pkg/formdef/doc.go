// Package formdef loads form definitions from YAML and turns them into
// validator options.
//
// A definition lists the form's fields in document order together with
// their rule declarations, message overrides and extra named rules:
//
//	name: signup
//	disable_submit: true
//	fields:
//	  - name: email
//	    rules: required|email
//	  - name: nickname
//	    expr: len(value) >= 3
//	  - name: age
//	    rules: numeric|even
//	  - name: terms
//	    type: checkbox
//	    rules: accepted
//	messages:
//	  nickname: Pick a longer nickname.
//	  even: Please enter an even number.
//	validation_rules:
//	  even: value == "" || int(value) % 2 == 0
//
// Field expressions and validation_rules are compiled with expr-lang/expr.
// A field expression becomes a custom predicate over value; anything other
// than the boolean true, including evaluation errors, marks the field
// invalid. A validation rule also sees params (the comma-split parameter
// block), raw (the block as written) and present, and must be boolean.
package formdef
