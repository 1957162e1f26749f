// Package registry holds the pre-built index of documents, titles and
// labels that cross-reference resolution queries. The index is populated
// before resolution begins (by Builder or loaded from a Store) and is
// read-only for the duration of a pass.
package registry

// LabelEntry is a named anchor/section: the owning document, the anchor id
// within it, and the display text used for implicit labels.
type LabelEntry struct {
	Docname  string
	AnchorID string
	Text     string
}

// AnchorRef locates an anonymous label: document plus anchor id, no
// display text of its own.
type AnchorRef struct {
	Docname  string
	AnchorID string
}

type docInfo struct {
	title      string
	sourcePath string
}

// Registry is the queryable label/document index.
type Registry struct {
	docs       map[string]docInfo
	labels     map[string]LabelEntry
	anonLabels map[string]AnchorRef
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{
		docs:       make(map[string]docInfo),
		labels:     make(map[string]LabelEntry),
		anonLabels: make(map[string]AnchorRef),
	}
}

// AddDocument registers a document with its title and suffix-bearing
// source path (the path anchored lookups are keyed on).
func (r *Registry) AddDocument(docname, title, sourcePath string) {
	r.docs[docname] = docInfo{title: title, sourcePath: sourcePath}
}

// AddLabel registers a named label. The key is stored as given; callers
// normalize case before registration where the label syntax requires it.
func (r *Registry) AddLabel(name string, entry LabelEntry) {
	r.labels[name] = entry
	r.anonLabels[name] = AnchorRef{Docname: entry.Docname, AnchorID: entry.AnchorID}
}

// AddAnonLabel registers an anchor that has no display text of its own
// (it can only be referenced with explicit link content).
func (r *Registry) AddAnonLabel(name string, ref AnchorRef) {
	r.anonLabels[name] = ref
}

// DocumentExists reports whether docname is a known document.
func (r *Registry) DocumentExists(docname string) bool {
	_, ok := r.docs[docname]
	return ok
}

// DocumentTitle returns the title of a known document ("" if unknown).
func (r *Registry) DocumentTitle(docname string) string {
	return r.docs[docname].title
}

// SourcePath returns the document's source path ("" if unknown).
func (r *Registry) SourcePath(docname string) string {
	return r.docs[docname].sourcePath
}

// LabelLookup finds a named label by key.
func (r *Registry) LabelLookup(key string) (LabelEntry, bool) {
	e, ok := r.labels[key]
	return e, ok
}

// AnonLabelLookup finds an anonymous label by key.
func (r *Registry) AnonLabelLookup(key string) (AnchorRef, bool) {
	e, ok := r.anonLabels[key]
	return e, ok
}

// Documents returns every known docname (unspecified order).
func (r *Registry) Documents() []string {
	out := make([]string, 0, len(r.docs))
	for d := range r.docs {
		out = append(out, d)
	}
	return out
}

// Labels returns the named-label index. The map must not be mutated by
// callers; it is exposed for persistence and inspection.
func (r *Registry) Labels() map[string]LabelEntry {
	return r.labels
}

// AnonLabels returns the anonymous-label index (same caveat as Labels).
func (r *Registry) AnonLabels() map[string]AnchorRef {
	return r.anonLabels
}
