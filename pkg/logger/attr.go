package logger

import "log/slog"

// Error records err under "error". A nil error yields an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under "request_id".
func RequestID(id string) slog.Attr {
	return slog.String("request_id", id)
}

// Form records a form name under "form".
func Form(name string) slog.Attr {
	return slog.String("form", name)
}

// Field records a field name under "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Rule records a rule name under "rule".
func Rule(name string) slog.Attr {
	return slog.String("rule", name)
}

// Valid records an evaluation verdict under "valid".
func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}
