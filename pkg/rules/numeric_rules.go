package rules

// Numeric comparisons use the integer prefix of both the value and the
// params, so "7.9" compares as 7. A non-numeric value always fails.

// Min checks value >= n.
func Min(s Scope, value string, p Params) bool {
	return compareInt(s, value, p, func(v, n int64) bool { return v >= n })
}

// Max checks value <= n.
func Max(s Scope, value string, p Params) bool {
	return compareInt(s, value, p, func(v, n int64) bool { return v <= n })
}

// Range checks a <= value <= b.
func Range(s Scope, value string, p Params) bool {
	return compareBounds(s, value, p, func(v, lo, hi int64) bool { return v >= lo && v <= hi })
}

// Between checks a < value < b.
func Between(s Scope, value string, p Params) bool {
	return compareBounds(s, value, p, func(v, lo, hi int64) bool { return v > lo && v < hi })
}

func compareInt(s Scope, value string, p Params, cmp func(v, n int64) bool) bool {
	if IsEmpty(value) {
		return true
	}
	if !s.Check("numeric", value, NoParams) {
		return false
	}
	v, okV := leadingInt(value)
	n, okN := leadingInt(p.Raw)
	return okV && okN && cmp(v, n)
}

func compareBounds(s Scope, value string, p Params, cmp func(v, lo, hi int64) bool) bool {
	if IsEmpty(value) {
		return true
	}
	if !s.Check("numeric", value, NoParams) {
		return false
	}
	v, ok := leadingInt(value)
	if !ok {
		return false
	}
	lo, hi, ok := intBounds(p)
	return ok && cmp(v, lo, hi)
}
