package formhttp

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"maps"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/livevalidator/pkg/formdef"
	"github.com/dmitrymomot/livevalidator/pkg/logger"
	"github.com/dmitrymomot/livevalidator/pkg/validator"
)

// FieldError is the JSON form of one active field error.
type FieldError struct {
	ID      string `json:"id"`
	Field   string `json:"field"`
	Rule    string `json:"rule,omitempty"`
	Message string `json:"message"`
}

// FormResult is the response of a whole-form validation.
type FormResult struct {
	Form   string       `json:"form"`
	Valid  bool         `json:"valid"`
	Errors []FieldError `json:"errors"`
}

// FieldResult is the response of a single-field validation.
type FieldResult struct {
	Form    string `json:"form"`
	Field   string `json:"field"`
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler serves validation endpoints for a fixed set of compiled forms.
type Handler struct {
	forms    map[string]*formdef.Form
	logger   *slog.Logger
	metrics  *Metrics
	gatherer prometheus.Gatherer
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the request logger. Nil loggers are ignored.
func WithLogger(l *slog.Logger) Option {
	return func(h *Handler) {
		if l != nil {
			h.logger = l
		}
	}
}

// WithMetrics records metrics and exposes g on GET /metrics.
func WithMetrics(m *Metrics, g prometheus.Gatherer) Option {
	return func(h *Handler) {
		h.metrics = m
		h.gatherer = g
	}
}

// NewHandler checks every form once by building a validator for an empty
// submission, so configuration errors surface at startup.
func NewHandler(forms map[string]*formdef.Form, opts ...Option) (*Handler, error) {
	h := &Handler{forms: forms, logger: logger.Discard()}
	for _, opt := range opts {
		opt(h)
	}

	var errs []error
	for _, name := range slices.Sorted(maps.Keys(forms)) {
		if _, err := h.newValidator(forms[name], NewSubmission(forms[name].Definition, nil)); err != nil {
			errs = append(errs, fmt.Errorf("form %q: %w", name, err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return h, nil
}

// Router mounts the endpoints:
//
//	GET  /forms
//	GET  /forms/{form}/rules
//	POST /forms/{form}/validate
//	POST /forms/{form}/fields/{field}/validate
//	GET  /metrics (with WithMetrics)
func (h *Handler) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(RequestID, middleware.Recoverer)

	r.Get("/forms", h.listForms)
	r.Route("/forms/{form}", func(fr chi.Router) {
		fr.Get("/rules", h.listRules)
		fr.Post("/validate", h.validateForm)
		fr.Post("/fields/{field}/validate", h.validateField)
	})
	if h.gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{}))
	}
	return r
}

func (h *Handler) newValidator(form *formdef.Form, sub *Submission) (*validator.Validator[*Element], error) {
	opts := append(form.Options(), validator.WithLogger(h.logger))
	return validator.New[*Element](sub, opts...)
}

func (h *Handler) listForms(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, slices.Sorted(maps.Keys(h.forms)))
}

func (h *Handler) listRules(w http.ResponseWriter, r *http.Request) {
	form, ok := h.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, form.Registry.Names())
}

func (h *Handler) validateForm(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	form, _, v, ok := h.prepare(w, r)
	if !ok {
		return
	}

	valid := v.EvaluateForm()
	res := FormResult{Form: form.Definition.Name, Valid: valid, Errors: []FieldError{}}
	for _, id := range v.Store().IDs() {
		e, _ := v.Store().Get(id)
		res.Errors = append(res.Errors, FieldError{ID: id, Field: e.Field, Rule: e.Rule, Message: e.Message})
		h.metrics.IncrementFieldFailure(res.Form, e.Field, e.Rule)
	}
	h.metrics.ObserveForm(res.Form, valid, start)
	h.logger.InfoContext(r.Context(), "form validated",
		logger.Form(res.Form),
		logger.Valid(valid),
		slog.Int("errors", len(res.Errors)),
	)

	writeJSON(w, statusFor(valid), res)
}

func (h *Handler) validateField(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	form, sub, v, ok := h.prepare(w, r)
	if !ok {
		return
	}

	name := chi.URLParam(r, "field")
	el, found := sub.FindByName(name)
	if !found {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown field " + name})
		return
	}

	valid := v.EvaluateField(el)
	res := FieldResult{Form: form.Definition.Name, Field: name, Valid: valid, Message: v.Message(el)}
	if e, failed := v.Store().Get(el.ID); failed {
		h.metrics.IncrementFieldFailure(res.Form, name, e.Rule)
	}
	h.metrics.ObserveField(res.Form, name, valid, start)
	h.logger.DebugContext(r.Context(), "field validated", logger.Form(res.Form), logger.Field(name), logger.Valid(valid))

	writeJSON(w, statusFor(valid), res)
}

// prepare resolves the form, parses the body and builds a validator.
func (h *Handler) prepare(w http.ResponseWriter, r *http.Request) (*formdef.Form, *Submission, *validator.Validator[*Element], bool) {
	form, ok := h.lookup(w, r)
	if !ok {
		return nil, nil, nil, false
	}
	if err := r.ParseForm(); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid form body"})
		return nil, nil, nil, false
	}
	sub := NewSubmission(form.Definition, r.PostForm)
	v, err := h.newValidator(form, sub)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "failed to build validator", logger.Form(form.Definition.Name), logger.Error(err))
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "validator configuration error"})
		return nil, nil, nil, false
	}
	return form, sub, v, true
}

func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (*formdef.Form, bool) {
	name := chi.URLParam(r, "form")
	form, ok := h.forms[name]
	if !ok {
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "unknown form " + name})
	}
	return form, ok
}

func statusFor(valid bool) int {
	if valid {
		return http.StatusOK
	}
	return http.StatusUnprocessableEntity
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
