// Package domain defines the pluggable object-namespace abstraction that
// cross-reference resolution iterates. A domain owns typed objects (its
// "kinds") and maps each kind to the role name used for styling and
// diagnostics. Domains are registered once at setup and are read-only
// during a resolution pass; registration order is the iteration order.
package domain

import (
	"errors"

	"git.home.luguber.info/inful/crossref/internal/doctree"
)

// ErrUnaddressable signals a structurally valid reference whose destination
// has no resolvable location at build time (e.g. an interlinked external
// inventory without a URI). Resolution treats it as a silent degrade, not
// a failure.
var ErrUnaddressable = errors.New("reference target has no resolvable location")

// ObjectRef locates a domain object: owning document plus anchor id.
type ObjectRef struct {
	Docname  string
	AnchorID string
}

// Domain is the minimal capability every object namespace exposes.
type Domain interface {
	// Name is the registry key, e.g. "std".
	Name() string
	// ObjectKinds lists recognized kinds in a stable, significant order.
	ObjectKinds() []string
	// RoleForKind maps a kind to its reference role name.
	RoleForKind(kind string) string
	// ObjectLookup finds a named object of the given kind. Keys for
	// term-like kinds are case-folded by the caller before lookup.
	ObjectLookup(kind, key string) (ObjectRef, bool)
}

// Match is one candidate returned by an AnyResolver.
type Match struct {
	// Role is the domain-local role that matched (without the domain prefix).
	Role string
	// Ref is the destination node; its Title is used in ambiguity
	// diagnostics.
	Ref *doctree.Reference
}

// AnyResolver is the optional best-effort "resolve anything" capability.
// Domains lacking it are queried per kind as a degraded (slower) path,
// with a one-time warning unless the domain is built in.
type AnyResolver interface {
	ResolveAny(target, refDoc string) ([]Match, error)
}

// TermKinds lists the kinds whose lookup keys are case-folded.
var TermKinds = map[string]bool{"term": true}
