package resolve

import (
	gmast "github.com/yuin/goldmark/ast"

	"git.home.luguber.info/inful/crossref/internal/doctree"
)

// assemble builds the final resolved node from the winning candidate and
// swaps it in for the placeholder.
//
// Explicit author content is spliced in structurally, displacing whatever
// implicit label the strategy attached. The winning candidate's tag
// becomes the styling classes [domain, domain-role].
func (r *Resolver) assemble(ph *doctree.CrossReference, winner Candidate, source []byte) {
	ref := winner.Ref
	ref.Classes = append(ref.Classes, winner.Domain, winner.Domain+"-"+winner.Role)

	if ph.Explicit {
		ref.RemoveChildren(ref)
		doctree.AdoptChildren(ref, ph)
	} else if ref.FirstChild() == nil {
		title := ref.Title
		if title == "" {
			title = ph.Target
		}
		ref.AppendChild(ref, gmast.NewString([]byte(title)))
	}

	doctree.Replace(ph, ref)
}
