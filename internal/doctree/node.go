// Package doctree models cross-reference placeholders and their resolved
// replacements directly on the Goldmark AST, so resolution is a plain tree
// transformation between the parse and render phases.
package doctree

import (
	"fmt"
	"strings"

	gmast "github.com/yuin/goldmark/ast"
)

// KindCrossReference is the node kind for unresolved placeholders.
var KindCrossReference = gmast.NewNodeKind("CrossReference")

// CrossReference is an unresolved in-text link awaiting target resolution.
//
// Children hold the author's nested inline content ([**bold**](target)).
// Explicit reports whether the author supplied any; an empty body
// ([](target)) means the display text comes from whatever the target
// resolves to.
type CrossReference struct {
	gmast.BaseInline

	Target   string
	RefDoc   string // referring document name
	RefKind  string // syntactic role; "xref" normally, "any" during fallback dispatch
	Explicit bool
	RefWarn  bool // per-placeholder must-resolve marker
}

// RefKindDefault is the syntactic role placeholders carry outside
// fallback dispatch.
const RefKindDefault = "xref"

// NewCrossReference returns a placeholder for target.
func NewCrossReference(target string) *CrossReference {
	return &CrossReference{Target: target, RefKind: RefKindDefault}
}

func (n *CrossReference) Kind() gmast.NodeKind { return KindCrossReference }

func (n *CrossReference) Dump(source []byte, level int) {
	gmast.DumpHelper(n, source, level, map[string]string{
		"Target":   n.Target,
		"RefDoc":   n.RefDoc,
		"Explicit": fmt.Sprintf("%v", n.Explicit),
	}, nil)
}

// KindReference is the node kind for resolved cross-references.
var KindReference = gmast.NewNodeKind("Reference")

// Reference is the resolved link node replacing a CrossReference.
//
// Children hold the label content. Classes carries the styling classes
// derived from the winning candidate's domain and role.
type Reference struct {
	gmast.BaseInline

	Docname  string
	AnchorID string
	Title    string // display text used for diagnostics and implicit labels
	Classes  []string
}

// NewReference returns a resolved link node pointing at docname (and an
// optional anchor within it).
func NewReference(docname, anchorID string) *Reference {
	return &Reference{Docname: docname, AnchorID: anchorID}
}

func (n *Reference) Kind() gmast.NodeKind { return KindReference }

func (n *Reference) Dump(source []byte, level int) {
	gmast.DumpHelper(n, source, level, map[string]string{
		"Docname":  n.Docname,
		"AnchorID": n.AnchorID,
		"Classes":  strings.Join(n.Classes, ","),
	}, nil)
}
