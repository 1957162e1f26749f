package doctree

import (
	"strings"

	"github.com/yuin/goldmark"
	gmast "github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// placeholderTransformer rewrites internal link destinations into
// CrossReference placeholders at parse time. External destinations
// (anything carrying a URI scheme) are left as ordinary links.
type placeholderTransformer struct{}

func (placeholderTransformer) Transform(doc *gmast.Document, reader text.Reader, pc parser.Context) {
	var replace []*gmast.Link
	_ = gmast.Walk(doc, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		if link, ok := n.(*gmast.Link); ok {
			if isInternalDestination(string(link.Destination)) {
				replace = append(replace, link)
			}
		}
		return gmast.WalkContinue, nil
	})

	for _, link := range replace {
		xref := NewCrossReference(string(link.Destination))
		for child := link.FirstChild(); child != nil; {
			next := child.NextSibling()
			xref.AppendChild(xref, child)
			child = next
		}
		xref.Explicit = xref.FirstChild() != nil
		parent := link.Parent()
		parent.ReplaceChild(parent, link, xref)
	}
}

// isInternalDestination reports whether dest should be resolved as a
// cross-reference rather than kept as a literal URL.
func isInternalDestination(dest string) bool {
	if dest == "" {
		return false
	}
	if strings.Contains(dest, "://") {
		return false
	}
	// scheme-style prefixes like mailto: or tel:
	if i := strings.IndexAny(dest, ":/#?"); i >= 0 && dest[i] == ':' {
		return false
	}
	return true
}

// NewMarkdown returns a goldmark instance whose parser produces
// CrossReference placeholders for internal links.
func NewMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithParserOptions(
			parser.WithASTTransformers(
				util.Prioritized(placeholderTransformer{}, 500),
			),
		),
	)
}

// Parse parses a Markdown body (frontmatter already removed) for the named
// document and stamps each placeholder with its referring document.
func Parse(docname string, body []byte) gmast.Node {
	md := NewMarkdown()
	root := md.Parser().Parse(text.NewReader(body))
	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if entering {
			if xref, ok := n.(*CrossReference); ok {
				xref.RefDoc = docname
			}
		}
		return gmast.WalkContinue, nil
	})
	return root
}
