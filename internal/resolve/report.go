package resolve

import (
	"fmt"
	"strings"

	"git.home.luguber.info/inful/crossref/internal/diag"
	"git.home.luguber.info/inful/crossref/internal/doctree"
)

func (r *Resolver) reportAmbiguous(ph *doctree.CrossReference, candidates []Candidate) {
	infos := make([]diag.CandidateInfo, len(candidates))
	parts := make([]string, len(candidates))
	for i, c := range candidates {
		text := c.Ref.Title
		if text == "" {
			text = ph.Target
		}
		infos[i] = diag.CandidateInfo{Role: c.Tag(), Text: text}
		parts[i] = fmt.Sprintf(":%s:`%s`", c.Tag(), text)
	}
	r.sink.Emit(diag.Diagnostic{
		Severity: diag.SeverityWarning,
		Category: diag.CategoryRef,
		Message: fmt.Sprintf("more than one target found for cross-reference %q: could be %s",
			ph.Target, strings.Join(parts, " or ")),
		Doc:        ph.RefDoc,
		Target:     ph.Target,
		Candidates: infos,
	})
}

func (r *Resolver) reportUnresolved(ph *doctree.CrossReference) {
	if !r.strict && !ph.RefWarn {
		return
	}
	r.sink.Emit(diag.Diagnostic{
		Severity: diag.SeverityWarning,
		Category: diag.CategoryUnresolved,
		Message:  fmt.Sprintf("%s cross-reference target not found: %q", ph.RefKind, ph.Target),
		Doc:      ph.RefDoc,
		Target:   ph.Target,
	})
}

// warnNoncompliant reports a domain missing the ResolveAny capability,
// once per pass per domain. Built-in domains are exempt.
func (r *Resolver) warnNoncompliant(name string) {
	if r.domains.IsBuiltin(name) || r.warned.Has(name) {
		return
	}
	r.warned.Add(name)
	r.sink.Emit(diag.Diagnostic{
		Severity: diag.SeverityWarning,
		Category: diag.CategoryDomains,
		Message:  fmt.Sprintf("domain %q has not implemented a ResolveAny capability", name),
	})
}
