package resolve

import (
	"path"
	"strings"
)

// TargetSpec is the parsed form of a placeholder target: an optional
// document-path component and an optional anchor.
type TargetSpec struct {
	Path      string
	Anchor    string
	HasAnchor bool
}

// SplitTarget splits target on its last fragment separator. Without a
// separator the whole string is the path component.
func SplitTarget(target string) TargetSpec {
	i := strings.LastIndex(target, "#")
	if i < 0 {
		return TargetSpec{Path: target}
	}
	return TargetSpec{Path: target[:i], Anchor: target[i+1:], HasAnchor: true}
}

// anchorKey normalizes the path component against the referring document
// and returns the combined "normalized-path#anchor" registry key.
//
// A path of "." (including an empty path, as in "#section") addresses the
// referring document's own source file; anything else resolves lexically
// against the referring document's containing directory. Purely string
// arithmetic, no filesystem access.
func anchorKey(spec TargetSpec, refDoc, refDocSource string) string {
	rel := path.Clean(spec.Path)
	var docPath string
	if rel == "." {
		docPath = refDocSource
	} else {
		docPath = path.Clean(path.Join(refDoc, "..", rel))
	}
	return docPath + "#" + spec.Anchor
}

// docnameJoin resolves target as a document name relative to refDoc,
// collapsing "." and ".." segments. Absolute targets (leading "/") are
// taken from the document root.
func docnameJoin(refDoc, target string) string {
	if strings.HasPrefix(target, "/") {
		return strings.TrimPrefix(path.Clean(target), "/")
	}
	joined := path.Clean(path.Join("/"+refDoc, "..", target))
	return strings.TrimPrefix(joined, "/")
}
