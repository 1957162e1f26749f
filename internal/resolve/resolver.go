// Package resolve implements cross-reference resolution: for every
// placeholder in a document tree it runs a fixed-precedence strategy chain
// against the label registry and the registered domains, reports ambiguous
// or unresolved targets through the diagnostic sink, and replaces the
// placeholder with a resolved reference node (or its own plain content).
//
// Nothing here aborts a build: every failure path ends in a diagnostic
// emission or a silent degrade.
package resolve

import (
	"errors"
	"log/slog"
	"time"

	gmast "github.com/yuin/goldmark/ast"

	"git.home.luguber.info/inful/crossref/internal/diag"
	"git.home.luguber.info/inful/crossref/internal/doctree"
	"git.home.luguber.info/inful/crossref/internal/domain"
	"git.home.luguber.info/inful/crossref/internal/logfields"
	"git.home.luguber.info/inful/crossref/internal/metrics"
	"git.home.luguber.info/inful/crossref/internal/registry"
	"git.home.luguber.info/inful/crossref/internal/util/sets"
)

// Fallback is an externally registered missing-reference handler. The
// chain is invoked in registration order when no built-in strategy
// produced a candidate; the first handler returning a non-nil node wins.
// Returning (nil, nil) declines the target; domain.ErrUnaddressable
// degrades the placeholder silently.
type Fallback func(target string, ph *doctree.CrossReference) (*doctree.Reference, error)

// Options carries the optional collaborators and policy knobs for a
// Resolver. The zero value gives a resolver with anchors disabled, all
// domains allowed, no fallbacks, and log-only diagnostics.
type Options struct {
	// HeadingAnchors is the configured anchor depth; 0 disables anchor
	// resolution entirely.
	HeadingAnchors int
	// SourceSuffixes are the recognized document suffixes (for the
	// strip-and-retry of document resolution). Defaults to [".md"].
	SourceSuffixes []string
	// RefDomains restricts participating domains by name; nil allows all.
	RefDomains []string
	// Strict warns on every unresolved target, not only must-resolve ones.
	Strict bool

	Fallbacks []Fallback
	Sink      diag.Sink
	Recorder  metrics.Recorder
	Logger    *slog.Logger
}

// Resolver runs resolution passes. It is created once per build pass;
// registries are read-only for its lifetime. A Resolver performs no I/O.
type Resolver struct {
	registry *registry.Registry
	domains  *domain.Registry

	headingAnchors int
	sourceSuffixes []string
	refDomains     sets.Set[string] // nil = all
	strict         bool

	fallbacks []Fallback
	sink      diag.Sink
	recorder  metrics.Recorder
	logger    *slog.Logger

	// warned holds domains already reported as noncompliant, so the
	// warning fires once per pass, not once per placeholder.
	warned sets.Set[string]
}

// New returns a Resolver over the given registries.
func New(reg *registry.Registry, domains *domain.Registry, opts Options) *Resolver {
	r := &Resolver{
		registry:       reg,
		domains:        domains,
		headingAnchors: opts.HeadingAnchors,
		sourceSuffixes: opts.SourceSuffixes,
		strict:         opts.Strict,
		fallbacks:      opts.Fallbacks,
		sink:           opts.Sink,
		recorder:       opts.Recorder,
		logger:         opts.Logger,
		warned:         sets.New[string](),
	}
	if len(r.sourceSuffixes) == 0 {
		r.sourceSuffixes = []string{".md"}
	}
	if opts.RefDomains != nil {
		r.refDomains = sets.New(opts.RefDomains...)
	}
	if r.sink == nil {
		r.sink = diag.LogSink{Logger: opts.Logger}
	}
	if r.recorder == nil {
		r.recorder = metrics.NoopRecorder{}
	}
	if r.logger == nil {
		r.logger = slog.Default()
	}
	return r
}

// ResolveDocument resolves every placeholder under root, in traversal
// order, replacing each exactly once. source is the document's Markdown
// body (needed to render nested text content).
func (r *Resolver) ResolveDocument(docname string, root gmast.Node, source []byte) {
	start := time.Now()
	for _, ph := range doctree.Placeholders(root) {
		r.resolvePlaceholder(ph, source)
	}
	r.recorder.ObservePassDuration(docname, time.Since(start))
}

func (r *Resolver) resolvePlaceholder(ph *doctree.CrossReference, source []byte) {
	candidates, err := r.collect(ph, source)
	if errors.Is(err, domain.ErrUnaddressable) {
		// Structurally valid but currently unaddressable: degrade to the
		// author's own content without a diagnostic.
		doctree.ReplaceWithContent(ph, source)
		r.recorder.IncOutcome(metrics.OutcomeUnaddressable)
		return
	}

	if len(candidates) == 0 {
		node, err := r.dispatchFallback(ph)
		if errors.Is(err, domain.ErrUnaddressable) {
			doctree.ReplaceWithContent(ph, source)
			r.recorder.IncOutcome(metrics.OutcomeUnaddressable)
			return
		}
		if node != nil {
			doctree.Replace(ph, node)
			r.recorder.IncOutcome(metrics.OutcomeFallback)
			return
		}
		r.reportUnresolved(ph)
		doctree.ReplaceWithContent(ph, source)
		r.recorder.IncOutcome(metrics.OutcomeUnresolved)
		return
	}

	if len(candidates) > 1 {
		r.reportAmbiguous(ph, candidates)
		r.recorder.IncAmbiguous()
	}

	winner := candidates[0]
	r.assemble(ph, winner, source)
	r.recorder.IncResolution(winner.Domain, winner.Role)
	r.recorder.IncOutcome(metrics.OutcomeResolved)
}

// dispatchFallback reclassifies the placeholder as a generic "any" lookup
// for the duration of the chain, mirroring how extensions such as external
// inventories key off the syntactic role.
func (r *Resolver) dispatchFallback(ph *doctree.CrossReference) (*doctree.Reference, error) {
	ph.RefKind = "any"
	defer func() { ph.RefKind = doctree.RefKindDefault }()

	for _, fb := range r.fallbacks {
		node, err := fb(ph.Target, ph)
		if err != nil {
			if errors.Is(err, domain.ErrUnaddressable) {
				return nil, err
			}
			r.logger.Debug("fallback handler failed",
				logfields.Target(ph.Target), logfields.Error(err))
			continue
		}
		if node != nil {
			return node, nil
		}
	}
	return nil, nil
}

func (r *Resolver) domainAllowed(name string) bool {
	return r.refDomains == nil || r.refDomains.Has(name)
}
