package rules

import "unicode/utf8"

// Empty passes only the empty value.
func Empty(_ Scope, value string, _ Params) bool {
	return IsEmpty(value)
}

// Required fails on the empty value. It is the only built-in that does.
func Required(_ Scope, value string, _ Params) bool {
	return !IsEmpty(value)
}

// MinLength checks that value is at least n characters long.
func MinLength(_ Scope, value string, p Params) bool {
	if IsEmpty(value) {
		return true
	}
	n, ok := lengthParam(p)
	return ok && float64(utf8.RuneCountInString(value)) >= n
}

// MaxLength checks that value is at most n characters long.
func MaxLength(_ Scope, value string, p Params) bool {
	if IsEmpty(value) {
		return true
	}
	n, ok := lengthParam(p)
	return ok && float64(utf8.RuneCountInString(value)) <= n
}

// lengthParam reads the bound. A missing param block counts as zero.
func lengthParam(p Params) (float64, bool) {
	if !p.Present {
		return 0, true
	}
	return toNumber(p.Raw)
}
