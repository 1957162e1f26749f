// Package diag carries structured, non-fatal diagnostics out of the
// resolution pass. Nothing in this package aborts a build: callers emit a
// Diagnostic and continue. Strictness (fail-on-warning) is a CLI policy
// layered on top of what a Sink collected.
package diag

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"git.home.luguber.info/inful/crossref/internal/logfields"
)

// Severity mirrors log levels for downstream filtering.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Category identifies the diagnostic family. Suppression tooling matches
// on the rendered "crossref.<category>" tag.
type Category string

const (
	CategoryRef        Category = "ref"        // ambiguous cross-reference
	CategoryUnresolved Category = "unresolved" // no strategy or fallback matched
	CategoryDomains    Category = "domains"    // noncompliant domain implementation
)

// CandidateInfo names one tentative match inside an ambiguity diagnostic.
type CandidateInfo struct {
	Role string // "domain:role" tag, e.g. "std:ref"
	Text string // display text of the candidate's destination
}

// Diagnostic is a single structured emission from the resolution pass.
type Diagnostic struct {
	Severity   Severity
	Category   Category
	Message    string
	Doc        string // referring document
	Target     string
	Candidates []CandidateInfo // only set for CategoryRef
}

// String renders the diagnostic in a single log/console line.
func (d Diagnostic) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", d.Severity, d.Message)
	if d.Doc != "" {
		fmt.Fprintf(&b, " (in %s)", d.Doc)
	}
	fmt.Fprintf(&b, " [crossref.%s]", d.Category)
	return b.String()
}

// Sink receives diagnostics. Implementations must be safe for use from a
// single resolution pass; cross-document fan-out shares one Sink.
type Sink interface {
	Emit(d Diagnostic)
}

// LogSink forwards diagnostics to a slog.Logger.
type LogSink struct {
	Logger *slog.Logger
}

func (s LogSink) Emit(d Diagnostic) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	attrs := []any{
		slog.String("category", string(d.Category)),
		logfields.Document(d.Doc),
		logfields.Target(d.Target),
	}
	if len(d.Candidates) > 0 {
		attrs = append(attrs, logfields.Candidates(len(d.Candidates)))
	}
	if d.Severity == SeverityWarning {
		logger.Warn(d.Message, attrs...)
		return
	}
	logger.Info(d.Message, attrs...)
}

// Collector captures diagnostics in emission order. Used by the CLI for the
// end-of-run summary and by tests.
type Collector struct {
	mu   sync.Mutex
	list []Diagnostic
}

func (c *Collector) Emit(d Diagnostic) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.list = append(c.list, d)
}

// All returns a copy of the collected diagnostics.
func (c *Collector) All() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]Diagnostic, len(c.list))
	copy(out, c.list)
	return out
}

// Warnings counts collected warning-severity diagnostics.
func (c *Collector) Warnings() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, d := range c.list {
		if d.Severity == SeverityWarning {
			n++
		}
	}
	return n
}

// Tee fans one emission out to several sinks in order.
type Tee []Sink

func (t Tee) Emit(d Diagnostic) {
	for _, s := range t {
		s.Emit(d)
	}
}
