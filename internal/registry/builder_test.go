package registry

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndexDocument_TitleAndHeadingAnchors(t *testing.T) {
	reg := New()
	b := NewBuilder(2)

	body := []byte("# Getting Started\n\n## Install\n\ntext\n\n## Usage\n\n### Deep Detail\n")
	b.IndexDocument(reg, "guide/start", "guide/start.md", body)

	assert.True(t, reg.DocumentExists("guide/start"))
	assert.Equal(t, "Getting Started", reg.DocumentTitle("guide/start"))
	assert.Equal(t, "guide/start.md", reg.SourcePath("guide/start"))

	entry, ok := reg.LabelLookup("guide/start.md#install")
	require.True(t, ok)
	assert.Equal(t, "guide/start", entry.Docname)
	assert.Equal(t, "install", entry.AnchorID)
	assert.Equal(t, "Install", entry.Text)

	_, ok = reg.LabelLookup("guide/start.md#deep-detail")
	assert.False(t, ok, "headings below the configured depth get no anchor")
}

func TestIndexDocument_DuplicateHeadingsGetSuffixedAnchors(t *testing.T) {
	reg := New()
	b := NewBuilder(2)

	body := []byte("# Setup\n\n## Example\n\n## Example\n")
	b.IndexDocument(reg, "d", "d.md", body)

	_, ok := reg.LabelLookup("d.md#example")
	assert.True(t, ok)
	_, ok = reg.LabelLookup("d.md#example-1")
	assert.True(t, ok)
}

func TestIndexDocument_LabelDefinitionTargetsNextHeading(t *testing.T) {
	reg := New()
	b := NewBuilder(2)

	body := []byte("# Top\n\n(my-label)=\n\n## Section One\n\ntext\n")
	b.IndexDocument(reg, "d", "d.md", body)

	entry, ok := reg.LabelLookup("my-label")
	require.True(t, ok)
	assert.Equal(t, "d", entry.Docname)
	assert.Equal(t, "my-label", entry.AnchorID)
	assert.Equal(t, "Section One", entry.Text)
}

func TestIndexDocument_LabelNamesAreCaseFolded(t *testing.T) {
	reg := New()
	b := NewBuilder(0)

	body := []byte("(My-Label)=\n\n## Target\n")
	b.IndexDocument(reg, "d", "d.md", body)

	_, ok := reg.LabelLookup("my-label")
	assert.True(t, ok)
}

func TestIndexDocument_TrailingLabelBecomesAnonymous(t *testing.T) {
	reg := New()
	b := NewBuilder(2)

	body := []byte("# Top\n\ntext\n\n(tail)=\n")
	b.IndexDocument(reg, "d", "d.md", body)

	_, named := reg.LabelLookup("tail")
	assert.False(t, named)
	ref, ok := reg.AnonLabelLookup("tail")
	require.True(t, ok)
	assert.Equal(t, "d", ref.Docname)
	assert.Equal(t, "tail", ref.AnchorID)
}

func TestIndexDocument_AnchorsDisabled(t *testing.T) {
	reg := New()
	b := NewBuilder(0)

	b.IndexDocument(reg, "d", "d.md", []byte("# Title\n\n## Section\n"))

	assert.Equal(t, "Title", reg.DocumentTitle("d"))
	_, ok := reg.LabelLookup("d.md#section")
	assert.False(t, ok)
}

func TestScanDir_WalksTreeAndStripsFrontmatter(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "guide"), 0o750))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "index.md"),
		[]byte("---\ntitle: meta\n---\n# Home\n"), 0o600))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "guide", "intro.md"),
		[]byte("# Introduction\n\n## Overview\n"), 0o600))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "notes.txt"),
		[]byte("not a document"), 0o600))

	reg, err := NewBuilder(2).ScanDir(dir)
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"index", "guide/intro"}, reg.Documents())
	assert.Equal(t, "Home", reg.DocumentTitle("index"))
	entry, ok := reg.LabelLookup("guide/intro.md#overview")
	require.True(t, ok)
	assert.Equal(t, "guide/intro", entry.Docname)
}
