package rules

import (
	"strings"
	"time"
)

// dateLayouts are tried in order. All dates are read as UTC.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
	"2006/01/02",
	"2006-1-2",
	"2006/1/2",
	"1/2/2006",
	"1-2-2006",
	"1/2/06",
	"1-2-06",
	"January 2, 2006",
	"Jan 2, 2006",
	"2 January 2006",
	"2 Jan 2006",
}

// ParseDate reads s using the date layouts understood by before and after.
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Before passes when value is strictly earlier than the date in params.
func Before(_ Scope, value string, p Params) bool {
	return compareDates(value, p, func(v, cutoff time.Time) bool { return v.Before(cutoff) })
}

// After passes when value is strictly later than the date in params.
func After(_ Scope, value string, p Params) bool {
	return compareDates(value, p, func(v, start time.Time) bool { return v.After(start) })
}

func compareDates(value string, p Params, cmp func(v, ref time.Time) bool) bool {
	if IsEmpty(value) {
		return true
	}
	v, okV := ParseDate(value)
	ref, okRef := ParseDate(p.Raw)
	return okV && okRef && cmp(v, ref)
}
