package doctree

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gmast "github.com/yuin/goldmark/ast"
)

func TestParse_InternalLinksBecomePlaceholders(t *testing.T) {
	src := []byte("A [guide](setup.md), an [external](https://example.com), and [mail](mailto:a@b.c).")
	root := Parse("docs/index", src)

	phs := Placeholders(root)
	require.Len(t, phs, 1, "only the internal destination becomes a placeholder")
	assert.Equal(t, "setup.md", phs[0].Target)
	assert.Equal(t, "docs/index", phs[0].RefDoc)
	assert.Equal(t, RefKindDefault, phs[0].RefKind)
	assert.True(t, phs[0].Explicit)
}

func TestParse_EmptyContentIsImplicit(t *testing.T) {
	root := Parse("docs/index", []byte("See [](target)."))
	phs := Placeholders(root)
	require.Len(t, phs, 1)
	assert.False(t, phs[0].Explicit)
	assert.Nil(t, phs[0].FirstChild())
}

func TestParse_AnchorOnlyDestination(t *testing.T) {
	root := Parse("docs/index", []byte("See [below](#section)."))
	phs := Placeholders(root)
	require.Len(t, phs, 1)
	assert.Equal(t, "#section", phs[0].Target)
}

func TestIsInternalDestination(t *testing.T) {
	cases := []struct {
		dest string
		want bool
	}{
		{"doc.md", true},
		{"./doc.md#x", true},
		{"../up/doc", true},
		{"#local", true},
		{"sub/dir/file", true},
		{"https://example.com", false},
		{"http://example.com/a.md", false},
		{"mailto:x@y.z", false},
		{"tel:123", false},
		{"", false},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, isInternalDestination(c.dest), c.dest)
	}
}

func TestReplace_SwapsAtSamePosition(t *testing.T) {
	src := []byte("Before [x](target) after.")
	root := Parse("d", src)
	phs := Placeholders(root)
	require.Len(t, phs, 1)

	ref := NewReference("other/doc", "a")
	ref.AppendChild(ref, gmast.NewString([]byte("X")))
	Replace(phs[0], ref)

	assert.Empty(t, Placeholders(root))
	assert.Equal(t, "Before X after.", Text(root, src))
}

func TestReplaceWithContent_SplicesChildren(t *testing.T) {
	src := []byte("Before [kept **bold**](target) after.")
	root := Parse("d", src)
	phs := Placeholders(root)
	require.Len(t, phs, 1)

	ReplaceWithContent(phs[0], src)

	assert.Empty(t, Placeholders(root))
	assert.Equal(t, "Before kept bold after.", Text(root, src))
}

func TestReplaceWithContent_EmptyPlaceholderKeepsRawTarget(t *testing.T) {
	src := []byte("See [](lost-target).")
	root := Parse("d", src)
	phs := Placeholders(root)
	require.Len(t, phs, 1)

	ReplaceWithContent(phs[0], src)

	assert.Equal(t, "See lost-target.", Text(root, src))
}

func TestStripFrontmatter(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"none", "# Title\n", "# Title\n"},
		{"simple", "---\nkey: v\n---\n# Title\n", "# Title\n"},
		{"empty block", "---\n---\n# Hi\n", "# Hi\n"},
		{"dashes in body", "# A\n\n---\n\nrule\n", "# A\n\n---\n\nrule\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, string(StripFrontmatter([]byte(c.in))))
		})
	}
}
