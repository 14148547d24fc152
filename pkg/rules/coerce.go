package rules

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// leadingInt parses the integer prefix of s the way browsers parse form
// numbers: leading whitespace and an optional sign are accepted, parsing
// stops at the first non-digit. ok is false when no digit was read.
func leadingInt(s string) (n int64, ok bool) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return 0, false
	}
	v, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		// overflow: saturate, ordering is still meaningful
		v = math.MaxInt64
	}
	if neg {
		v = -v
	}
	return v, true
}

// toNumber coerces s to a number. Blank strings are zero, anything that is
// not a complete decimal literal is rejected.
func toNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) {
		return 0, false
	}
	return f, true
}

// intBounds reads the first two comma-separated params as integers.
func intBounds(p Params) (lo, hi int64, ok bool) {
	a, okA := p.At(0)
	b, okB := p.At(1)
	if !okA || !okB {
		return 0, 0, false
	}
	lo, okA = leadingInt(a)
	hi, okB = leadingInt(b)
	return lo, hi, okA && okB
}
