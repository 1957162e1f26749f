package registry

import (
	"bytes"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"github.com/gosimple/slug"
	gmast "github.com/yuin/goldmark/ast"

	"git.home.luguber.info/inful/crossref/internal/doctree"
	cerrors "git.home.luguber.info/inful/crossref/internal/errors"
	"git.home.luguber.info/inful/crossref/internal/logfields"
)

// labelDefPattern matches a target line `(label)=` preceding a heading.
var labelDefPattern = regexp.MustCompile(`^\(([^()\s]+)\)=\s*$`)

// Builder scans a documentation tree and populates a Registry with
// documents, titles, heading anchors and label definitions.
type Builder struct {
	// SourceSuffixes lists the file suffixes treated as documents.
	SourceSuffixes []string
	// HeadingAnchors is the deepest heading level that gets an anchor;
	// 0 disables anchor generation entirely.
	HeadingAnchors int

	logger *slog.Logger
}

// NewBuilder returns a Builder with the given anchor depth and suffixes
// (defaulting to ".md" when none are given).
func NewBuilder(headingAnchors int, suffixes ...string) *Builder {
	if len(suffixes) == 0 {
		suffixes = []string{".md"}
	}
	return &Builder{
		SourceSuffixes: suffixes,
		HeadingAnchors: headingAnchors,
		logger:         slog.Default(),
	}
}

// WithLogger replaces the builder's logger.
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	b.logger = logger
	return b
}

// ScanDir walks root and indexes every document file found.
func (b *Builder) ScanDir(root string) (*Registry, error) {
	reg := New()
	fsys, err := filepath.Abs(root)
	if err != nil {
		return nil, cerrors.RegistryScanError(root, err)
	}
	err = filepath.WalkDir(fsys, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() {
			if strings.HasPrefix(d.Name(), ".") && path != fsys {
				return filepath.SkipDir
			}
			return nil
		}
		suffix := b.matchSuffix(d.Name())
		if suffix == "" {
			return nil
		}
		rel, err := filepath.Rel(fsys, path)
		if err != nil {
			return err
		}
		sourcePath := filepath.ToSlash(rel)
		docname := strings.TrimSuffix(sourcePath, suffix)

		// #nosec G304 -- path comes from the directory walk above.
		content, err := os.ReadFile(path)
		if err != nil {
			return cerrors.DocumentReadError(path, err)
		}
		b.IndexDocument(reg, docname, sourcePath, content)
		b.logger.Debug("indexed document", logfields.Document(docname))
		return nil
	})
	if err != nil {
		return nil, cerrors.RegistryScanError(root, err)
	}
	return reg, nil
}

func (b *Builder) matchSuffix(name string) string {
	for _, s := range b.SourceSuffixes {
		if strings.HasSuffix(name, s) {
			return s
		}
	}
	return ""
}

// IndexDocument records one document's title, heading anchors and label
// definitions into reg. sourcePath is the suffix-bearing path used as the
// anchor key prefix (anchored lookups carry the source suffix).
func (b *Builder) IndexDocument(reg *Registry, docname, sourcePath string, content []byte) {
	body := doctree.StripFrontmatter(content)
	root := doctree.Parse(docname, body)

	type headingInfo struct {
		level  int
		title  string
		anchor string
		offset int
	}
	var headings []headingInfo
	seen := map[string]int{}

	_ = gmast.Walk(root, func(n gmast.Node, entering bool) (gmast.WalkStatus, error) {
		if !entering {
			return gmast.WalkContinue, nil
		}
		h, ok := n.(*gmast.Heading)
		if !ok {
			return gmast.WalkContinue, nil
		}
		title := doctree.Text(h, body)
		offset := 0
		if h.Lines().Len() > 0 {
			offset = h.Lines().At(0).Start
		}
		anchor := ""
		if b.HeadingAnchors > 0 && h.Level <= b.HeadingAnchors {
			anchor = slug.Make(title)
			if c, dup := seen[anchor]; dup {
				seen[anchor] = c + 1
				anchor = anchor + "-" + strconv.Itoa(c)
			} else {
				seen[anchor] = 1
			}
		}
		headings = append(headings, headingInfo{level: h.Level, title: title, anchor: anchor, offset: offset})
		return gmast.WalkSkipChildren, nil
	})

	title := docname
	if len(headings) > 0 {
		title = headings[0].title
	}
	reg.AddDocument(docname, title, sourcePath)

	for _, h := range headings {
		if h.anchor == "" {
			continue
		}
		reg.AddLabel(sourcePath+"#"+h.anchor, LabelEntry{
			Docname:  docname,
			AnchorID: h.anchor,
			Text:     h.title,
		})
	}

	// `(name)=` targets label the next heading; a trailing target with no
	// heading after it becomes an anonymous label at its own position.
	for _, def := range scanLabelDefs(body) {
		name := strings.ToLower(def.name)
		attached := false
		for _, h := range headings {
			if h.offset > def.offset {
				reg.AddLabel(name, LabelEntry{Docname: docname, AnchorID: def.name, Text: h.title})
				attached = true
				break
			}
		}
		if !attached {
			reg.AddAnonLabel(name, AnchorRef{Docname: docname, AnchorID: def.name})
		}
	}
}

type labelDef struct {
	name   string
	offset int
}

func scanLabelDefs(body []byte) []labelDef {
	var defs []labelDef
	offset := 0
	for _, line := range bytes.SplitAfter(body, []byte("\n")) {
		if m := labelDefPattern.FindSubmatch(bytes.TrimRight(line, "\r\n")); m != nil {
			defs = append(defs, labelDef{name: string(m[1]), offset: offset})
		}
		offset += len(line)
	}
	return defs
}
