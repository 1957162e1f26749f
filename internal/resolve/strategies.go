package resolve

import (
	"errors"
	"path"
	"strings"

	gmast "github.com/yuin/goldmark/ast"

	"git.home.luguber.info/inful/crossref/internal/doctree"
	"git.home.luguber.info/inful/crossref/internal/domain"
	"git.home.luguber.info/inful/crossref/internal/logfields"
)

// Candidate is a tentative match for a placeholder, tagged with the
// domain and role that produced it.
type Candidate struct {
	Domain string
	Role   string
	Ref    *doctree.Reference
}

// Tag renders the "domain:role" pair used in diagnostics.
func (c Candidate) Tag() string { return c.Domain + ":" + c.Role }

// collect runs the strategy chain in its fixed precedence order:
//
//  1. anchored document (exclusive on success)
//  2. named label, then document name (both may match)
//  3. standard-domain objects
//  4. every other allowed domain
//
// Insertion order is the selection order; within one tier, ties follow
// kind/registration iteration order (stable, but implementation-defined).
func (r *Resolver) collect(ph *doctree.CrossReference, source []byte) ([]Candidate, error) {
	spec := SplitTarget(ph.Target)

	if r.headingAnchors > 0 && spec.HasAnchor {
		if ref := r.resolveAnchor(ph, spec, source); ref != nil {
			// An anchored doc match suppresses every later strategy;
			// searching on would only duplicate the same destination.
			return []Candidate{{Domain: domain.StandardName, Role: "doc", Ref: ref}}, nil
		}
	}

	var out []Candidate
	if ref := r.resolveRefNested(ph, "", source); ref != nil {
		out = append(out, Candidate{Domain: domain.StandardName, Role: "ref", Ref: ref})
	}
	if ref := r.resolveDocNested(ph); ref != nil {
		out = append(out, Candidate{Domain: domain.StandardName, Role: "doc", Ref: ref})
	}

	if r.domainAllowed(domain.StandardName) {
		if std, ok := r.domains.Standard(); ok {
			out = append(out, r.searchStandardObjects(std, ph.Target)...)
		}
	}

	others, err := r.searchDomains(ph)
	if err != nil {
		return nil, err
	}
	return append(out, others...), nil
}

// resolveAnchor resolves "path#anchor" targets against the label registry
// using the normalized source-path key.
func (r *Resolver) resolveAnchor(ph *doctree.CrossReference, spec TargetSpec, source []byte) *doctree.Reference {
	refSource := r.registry.SourcePath(ph.RefDoc)
	if refSource == "" {
		refSource = ph.RefDoc + r.sourceSuffixes[0]
	}
	return r.resolveRefNested(ph, anchorKey(spec, ph.RefDoc, refSource), source)
}

// resolveRefNested looks the target up as a label, preserving nested
// author content instead of flattening it to text.
//
// When key is empty the placeholder's own target is used, case-folded the
// way label names are registered. An explicit key (the anchored path form)
// is looked up exactly as given.
func (r *Resolver) resolveRefNested(ph *doctree.CrossReference, key string, source []byte) *doctree.Reference {
	if key == "" {
		key = strings.ToLower(ph.Target)
	}

	if ph.Explicit {
		// Reference to an anonymous label; the author's link content
		// supplies the caption (spliced in at assembly).
		anon, ok := r.registry.AnonLabelLookup(key)
		if !ok {
			return nil
		}
		node := doctree.NewReference(anon.Docname, anon.AnchorID)
		node.Title = doctree.Text(ph, source)
		return node
	}

	entry, ok := r.registry.LabelLookup(key)
	if !ok {
		return nil
	}
	node := doctree.NewReference(entry.Docname, entry.AnchorID)
	node.Title = entry.Text
	node.AppendChild(node, gmast.NewString([]byte(entry.Text)))
	return node
}

// resolveDocNested resolves the target directly as a document name joined
// against the referring document; a known source suffix is stripped and
// the lookup retried once.
func (r *Resolver) resolveDocNested(ph *doctree.CrossReference) *doctree.Reference {
	docname := docnameJoin(ph.RefDoc, ph.Target)

	if !r.registry.DocumentExists(docname) {
		if ext := path.Ext(docname); ext != "" && r.knownSuffix(ext) {
			docname = strings.TrimSuffix(docname, ext)
		}
	}
	if !r.registry.DocumentExists(docname) {
		return nil
	}

	node := doctree.NewReference(docname, "")
	node.Title = r.registry.DocumentTitle(docname)
	node.Classes = []string{"doc"}
	if !ph.Explicit {
		node.AppendChild(node, gmast.NewString([]byte(node.Title)))
	}
	return node
}

func (r *Resolver) knownSuffix(ext string) bool {
	for _, s := range r.sourceSuffixes {
		if ext == s {
			return true
		}
	}
	return false
}

// searchStandardObjects checks the target against every object kind of the
// standard domain, in kind registration order.
func (r *Resolver) searchStandardObjects(std *domain.Standard, target string) []Candidate {
	var out []Candidate
	for _, kind := range std.ObjectKinds() {
		ref, ok := std.ObjectLookup(kind, target)
		if !ok {
			continue
		}
		node := doctree.NewReference(ref.Docname, ref.AnchorID)
		node.Title = target
		out = append(out, Candidate{
			Domain: domain.StandardName,
			Role:   std.RoleForKind(kind),
			Ref:    node,
		})
	}
	return out
}

// searchDomains queries every non-standard allowed domain, preferring the
// ResolveAny capability and degrading to per-kind lookups for domains
// that lack it.
func (r *Resolver) searchDomains(ph *doctree.CrossReference) ([]Candidate, error) {
	var out []Candidate
	for _, d := range r.domains.All() {
		if d.Name() == domain.StandardName {
			continue // consulted earlier, ahead of generic iteration
		}
		if !r.domainAllowed(d.Name()) {
			continue
		}

		if ar, ok := d.(domain.AnyResolver); ok {
			matches, err := ar.ResolveAny(ph.Target, ph.RefDoc)
			if err != nil {
				if errors.Is(err, domain.ErrUnaddressable) {
					return nil, err
				}
				r.logger.Debug("domain resolve failed",
					logfields.Domain(d.Name()), logfields.Target(ph.Target), logfields.Error(err))
				continue
			}
			for _, m := range matches {
				out = append(out, Candidate{Domain: d.Name(), Role: m.Role, Ref: m.Ref})
			}
			continue
		}

		r.warnNoncompliant(d.Name())
		for _, kind := range d.ObjectKinds() {
			ref, ok := d.ObjectLookup(kind, domain.Fold(kind, ph.Target))
			if !ok {
				continue
			}
			node := doctree.NewReference(ref.Docname, ref.AnchorID)
			node.Title = ph.Target
			out = append(out, Candidate{Domain: d.Name(), Role: d.RoleForKind(kind), Ref: node})
		}
	}
	return out, nil
}
