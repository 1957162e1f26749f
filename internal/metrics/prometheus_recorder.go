package metrics

import (
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
)

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	resolutions  *prom.CounterVec
	outcomes     *prom.CounterVec
	ambiguous    prom.Counter
	passDuration *prom.HistogramVec
}

// NewPrometheusRecorder constructs and registers Prometheus metrics.
func NewPrometheusRecorder(reg *prom.Registry) *PrometheusRecorder {
	r := &PrometheusRecorder{
		resolutions: prom.NewCounterVec(prom.CounterOpts{
			Name: "crossref_resolutions_total",
			Help: "Resolved cross-references by winning domain and role.",
		}, []string{"domain", "role"}),
		outcomes: prom.NewCounterVec(prom.CounterOpts{
			Name: "crossref_outcomes_total",
			Help: "Per-placeholder resolution outcomes.",
		}, []string{"outcome"}),
		ambiguous: prom.NewCounter(prom.CounterOpts{
			Name: "crossref_ambiguous_total",
			Help: "Placeholders that matched more than one candidate.",
		}),
		passDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Name:    "crossref_pass_duration_seconds",
			Help:    "Duration of per-document resolution passes.",
			Buckets: prom.DefBuckets,
		}, []string{"document"}),
	}
	if reg != nil {
		reg.MustRegister(r.resolutions, r.outcomes, r.ambiguous, r.passDuration)
	}
	return r
}

func (r *PrometheusRecorder) IncResolution(domain, role string) {
	r.resolutions.WithLabelValues(domain, role).Inc()
}

func (r *PrometheusRecorder) IncOutcome(outcome Outcome) {
	r.outcomes.WithLabelValues(string(outcome)).Inc()
}

func (r *PrometheusRecorder) IncAmbiguous() {
	r.ambiguous.Inc()
}

func (r *PrometheusRecorder) ObservePassDuration(doc string, d time.Duration) {
	r.passDuration.WithLabelValues(doc).Observe(d.Seconds())
}
