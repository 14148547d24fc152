// Package formhttp exposes compiled form definitions over HTTP.
//
// Each request builds a fresh validator from the form's shared registry and
// message catalog over a Submission, an environment backed by the posted
// url.Values. Whole-form and single-field validation answer 200 when valid
// and 422 with the active errors otherwise.
//
//	forms, _ := formdef.CompileAll(defs)
//	reg := prometheus.NewRegistry()
//	h, err := formhttp.NewHandler(forms,
//		formhttp.WithLogger(log),
//		formhttp.WithMetrics(formhttp.NewMetrics(reg), reg),
//	)
//	if err != nil {
//		return err
//	}
//	return formhttp.Serve(ctx, cfg, h.Router(), log)
//
// Requests carry an X-Request-ID, reused when well formed and generated
// otherwise; RequestIDExtractor adds it to log records.
package formhttp
