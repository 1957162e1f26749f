package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStandard_KindOrderIsRegistrationOrder(t *testing.T) {
	std := NewStandard()
	std.AddKind("option", "option")
	std.AddKind("term", "term")
	std.AddKind("envvar", "envvar")

	assert.Equal(t, []string{"option", "term", "envvar"}, std.ObjectKinds())

	// redeclaring updates the role, not the position
	std.AddKind("option", "cmdoption")
	assert.Equal(t, []string{"option", "term", "envvar"}, std.ObjectKinds())
	assert.Equal(t, "cmdoption", std.RoleForKind("option"))
}

func TestStandard_TermLookupIsCaseFolded(t *testing.T) {
	std := NewStandard()
	std.AddObject("term", "Glossary Entry", ObjectRef{Docname: "glossary", AnchorID: "glossary-entry"})

	ref, ok := std.ObjectLookup("term", "GLOSSARY entry")
	require.True(t, ok)
	assert.Equal(t, "glossary", ref.Docname)
}

func TestStandard_NonTermLookupIsExact(t *testing.T) {
	std := NewStandard()
	std.AddObject("option", "--Force", ObjectRef{Docname: "cli", AnchorID: "force"})

	_, ok := std.ObjectLookup("option", "--force")
	assert.False(t, ok)
	_, ok = std.ObjectLookup("option", "--Force")
	assert.True(t, ok)
}

func TestStandard_ImplicitKindDeclaration(t *testing.T) {
	std := NewStandard()
	std.AddObject("doc", "index", ObjectRef{Docname: "index"})

	assert.Equal(t, []string{"doc"}, std.ObjectKinds())
	assert.Equal(t, "doc", std.RoleForKind("doc"))
}

type stub struct{ name string }

func (s stub) Name() string                                  { return s.name }
func (s stub) ObjectKinds() []string                         { return nil }
func (s stub) RoleForKind(kind string) string                { return kind }
func (s stub) ObjectLookup(string, string) (ObjectRef, bool) { return ObjectRef{}, false }

func TestRegistry_OrderAndReplacement(t *testing.T) {
	r := NewRegistry()
	r.Register(stub{name: "a"})
	r.Register(stub{name: "b"})
	r.Register(stub{name: "a"}) // replaces, keeps position

	names := make([]string, 0, 2)
	for _, d := range r.All() {
		names = append(names, d.Name())
	}
	assert.Equal(t, []string{"a", "b"}, names)
}

func TestRegistry_BuiltinTracking(t *testing.T) {
	r := NewRegistry()
	r.RegisterBuiltin(NewStandard())
	r.Register(stub{name: "ext"})

	assert.True(t, r.IsBuiltin(StandardName))
	assert.False(t, r.IsBuiltin("ext"))

	std, ok := r.Standard()
	require.True(t, ok)
	assert.Equal(t, StandardName, std.Name())
}
