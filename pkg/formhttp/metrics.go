package formhttp

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics tracks form and single-field verdicts and field failures.
type Metrics struct {
	FormValidations    *prometheus.CounterVec
	FieldValidations   *prometheus.CounterVec
	FieldFailures      *prometheus.CounterVec
	ValidationDuration *prometheus.HistogramVec
}

// NewMetrics registers the metrics with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		FormValidations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "livevalidator_form_validations_total",
			Help: "Total number of form validations by outcome",
		}, []string{"form", "outcome"}),
		FieldValidations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "livevalidator_field_validations_total",
			Help: "Total number of single-field validations by outcome",
		}, []string{"form", "field", "outcome"}),
		FieldFailures: f.NewCounterVec(prometheus.CounterOpts{
			Name: "livevalidator_field_failures_total",
			Help: "Total number of failed field evaluations by deciding rule",
		}, []string{"form", "field", "rule"}),
		ValidationDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "livevalidator_validation_duration_seconds",
			Help:    "Duration of form and field validation requests",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"form", "scope"}),
	}
}

// ObserveForm records one validation verdict.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveForm(form string, valid bool, start time.Time) {
	if m == nil {
		return
	}
	m.FormValidations.WithLabelValues(form, outcome(valid)).Inc()
	m.ValidationDuration.WithLabelValues(form, "form").Observe(time.Since(start).Seconds())
}

// ObserveField records one single-field verdict.
func (m *Metrics) ObserveField(form, field string, valid bool, start time.Time) {
	if m == nil {
		return
	}
	m.FieldValidations.WithLabelValues(form, field, outcome(valid)).Inc()
	m.ValidationDuration.WithLabelValues(form, "field").Observe(time.Since(start).Seconds())
}

// IncrementFieldFailure records the rule that decided a field's failure.
func (m *Metrics) IncrementFieldFailure(form, field, rule string) {
	if m == nil {
		return
	}
	if rule == "" {
		rule = "custom"
	}
	m.FieldFailures.WithLabelValues(form, field, rule).Inc()
}

func outcome(valid bool) string {
	if valid {
		return "valid"
	}
	return "invalid"
}
