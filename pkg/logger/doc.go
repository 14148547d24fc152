// Package logger builds the *slog.Logger used across livevalidator.
//
// New creates a text or JSON logger configured by Option functions and wraps
// its handler so that attributes stored in a context.Context (the HTTP
// request id, for instance) are added to every record logged with a
// *Context method:
//
//	log := logger.New(
//	    logger.WithEnvironment("production", "livevalidate"),
//	    logger.WithContextValue("request_id", formhttp.RequestIDKey{}),
//	)
//	log.InfoContext(ctx, "form evaluated", logger.Form("signup"), logger.Valid(true))
//
// Attribute helpers in attr.go keep key names consistent. Error returns an
// empty attribute for a nil error, so it can be passed unconditionally.
package logger
