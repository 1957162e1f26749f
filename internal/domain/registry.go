package domain

import (
	"git.home.luguber.info/inful/crossref/internal/util/sets"
)

// StandardName is the name of the always-first standard domain.
const StandardName = "std"

// Registry holds the ordered set of domains for a build. The standard
// domain is tracked separately because the resolution chain consults it
// before generic domain iteration.
type Registry struct {
	ordered []Domain
	byName  map[string]Domain
	builtin sets.Set[string]
}

// NewRegistry returns an empty domain registry.
func NewRegistry() *Registry {
	return &Registry{
		byName:  make(map[string]Domain),
		builtin: sets.New[string](),
	}
}

// Register appends a domain; iteration order is registration order.
// Registering a name twice replaces the entry but keeps the original
// position.
func (r *Registry) Register(d Domain) {
	if _, ok := r.byName[d.Name()]; ok {
		for i, existing := range r.ordered {
			if existing.Name() == d.Name() {
				r.ordered[i] = d
				break
			}
		}
	} else {
		r.ordered = append(r.ordered, d)
	}
	r.byName[d.Name()] = d
}

// RegisterBuiltin registers a domain and exempts it from the
// noncompliant-domain warning.
func (r *Registry) RegisterBuiltin(d Domain) {
	r.Register(d)
	r.builtin.Add(d.Name())
}

// Get returns the domain registered under name.
func (r *Registry) Get(name string) (Domain, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// Standard returns the standard domain if registered.
func (r *Registry) Standard() (*Standard, bool) {
	d, ok := r.byName[StandardName]
	if !ok {
		return nil, false
	}
	std, ok := d.(*Standard)
	return std, ok
}

// All returns domains in registration order. Callers must not mutate the
// returned slice.
func (r *Registry) All() []Domain {
	return r.ordered
}

// IsBuiltin reports whether name was registered via RegisterBuiltin.
func (r *Registry) IsBuiltin(name string) bool {
	return r.builtin.Has(name)
}
