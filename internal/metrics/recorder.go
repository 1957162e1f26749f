// Package metrics provides observability hooks for resolution passes.
//
// Components receive a Recorder through dependency injection; the default
// NoopRecorder makes metrics strictly optional with zero overhead. A
// Prometheus implementation (prometheus_recorder.go) is activated by the
// CLI when a metrics registry is configured.
package metrics

import "time"

// Outcome enumerates per-placeholder resolution results for counters.
type Outcome string

const (
	OutcomeResolved      Outcome = "resolved"
	OutcomeFallback      Outcome = "fallback"
	OutcomeUnresolved    Outcome = "unresolved"
	OutcomeUnaddressable Outcome = "unaddressable"
)

// Recorder defines observability hooks for resolution metrics. Implementations
// may forward to Prometheus, OpenTelemetry, etc.
type Recorder interface {
	IncResolution(domain, role string)
	IncOutcome(outcome Outcome)
	IncAmbiguous()
	ObservePassDuration(doc string, d time.Duration)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) IncResolution(string, string)              {}
func (NoopRecorder) IncOutcome(Outcome)                        {}
func (NoopRecorder) IncAmbiguous()                             {}
func (NoopRecorder) ObservePassDuration(string, time.Duration) {}
