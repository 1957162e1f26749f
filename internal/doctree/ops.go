package doctree

import (
	"strings"

	gmast "github.com/yuin/goldmark/ast"
)

// Placeholders returns every CrossReference under root in traversal order.
//
// The slice is collected up front so callers can replace nodes without
// invalidating an in-flight walk.
func Placeholders(root gmast.Node) []*CrossReference {
	var out []*CrossReference
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if entering {
			if xref, ok := n.(*CrossReference); ok {
				out = append(out, xref)
			}
		}
		return gmast.WalkContinue, nil
	})
	return out
}

// Replace swaps node in for the placeholder at the same tree position.
// The placeholder must still be attached to a parent.
func Replace(ph *CrossReference, node gmast.Node) {
	parent := ph.Parent()
	parent.ReplaceChild(parent, ph, node)
}

// ReplaceWithContent splices the placeholder's children into its position
// and drops the placeholder itself, leaving the author's content unlinked.
//
// A placeholder with no children degrades to a plain text node holding the
// raw target, so the reader still sees what was written.
func ReplaceWithContent(ph *CrossReference, source []byte) {
	parent := ph.Parent()
	if ph.FirstChild() == nil {
		parent.ReplaceChild(parent, ph, gmast.NewString([]byte(ph.Target)))
		return
	}
	for child := ph.FirstChild(); child != nil; {
		next := child.NextSibling()
		parent.InsertBefore(parent, ph, child)
		child = next
	}
	parent.RemoveChild(parent, ph)
}

// AdoptChildren moves every child of from under to, preserving order.
func AdoptChildren(to gmast.Node, from gmast.Node) {
	for child := from.FirstChild(); child != nil; {
		next := child.NextSibling()
		to.AppendChild(to, child)
		child = next
	}
}

// Text renders the plain-text content of n against the original source.
func Text(n gmast.Node, source []byte) string {
	var b strings.Builder
	writeText(&b, n, source)
	return b.String()
}

func writeText(b *strings.Builder, n gmast.Node, source []byte) {
	switch t := n.(type) {
	case *gmast.Text:
		b.Write(t.Segment.Value(source))
		return
	case *gmast.String:
		b.Write(t.Value)
		return
	}
	for child := n.FirstChild(); child != nil; child = child.NextSibling() {
		writeText(b, child, source)
	}
}
