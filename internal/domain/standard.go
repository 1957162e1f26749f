package domain

import (
	"golang.org/x/text/cases"
)

// Standard is the built-in object namespace. Object kinds keep their
// registration order; lookups for term-like kinds are case-folded.
type Standard struct {
	kinds   []string
	roles   map[string]string
	objects map[objectKey]ObjectRef
}

type objectKey struct {
	kind string
	name string
}

// NewStandard returns an empty standard domain.
func NewStandard() *Standard {
	return &Standard{
		roles:   make(map[string]string),
		objects: make(map[objectKey]ObjectRef),
	}
}

func (s *Standard) Name() string { return StandardName }

func (s *Standard) ObjectKinds() []string { return s.kinds }

func (s *Standard) RoleForKind(kind string) string {
	if role, ok := s.roles[kind]; ok {
		return role
	}
	return kind
}

// AddKind declares an object kind and its role. Declaring a kind twice
// updates the role but keeps the original iteration position.
func (s *Standard) AddKind(kind, role string) {
	if _, ok := s.roles[kind]; !ok {
		s.kinds = append(s.kinds, kind)
	}
	s.roles[kind] = role
}

// AddObject indexes a named object. The kind is declared implicitly (with
// the kind name as role) if it wasn't declared before.
func (s *Standard) AddObject(kind, name string, ref ObjectRef) {
	if _, ok := s.roles[kind]; !ok {
		s.AddKind(kind, kind)
	}
	s.objects[objectKey{kind: kind, name: Fold(kind, name)}] = ref
}

// ObjectLookup finds a named object; the key is folded per kind rules.
func (s *Standard) ObjectLookup(kind, key string) (ObjectRef, bool) {
	ref, ok := s.objects[objectKey{kind: kind, name: Fold(kind, key)}]
	return ref, ok
}

// Fold lowers key for term-like kinds and returns it unchanged otherwise.
// A fresh Caser per call; Casers are stateful and not goroutine-safe.
func Fold(kind, key string) string {
	if TermKinds[kind] {
		return cases.Fold().String(key)
	}
	return key
}
