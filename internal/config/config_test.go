package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cerrors "git.home.luguber.info/inful/crossref/internal/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "crossref.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, "heading_anchors: 3\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "./docs", cfg.Docs)
	assert.Equal(t, []string{".md"}, cfg.SourceSuffixes)
	assert.Equal(t, 3, cfg.HeadingAnchors)
	assert.Nil(t, cfg.RefDomains)
	assert.False(t, cfg.Strict)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.True(t, cerrors.IsCategory(err, cerrors.CategoryConfig))
}

func TestLoad_ExpandsEnvironment(t *testing.T) {
	t.Setenv("CROSSREF_TEST_DOCS", "/srv/docs")
	path := writeConfig(t, "docs: ${CROSSREF_TEST_DOCS}\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/docs", cfg.Docs)
}

func TestLoad_ValidatesAnchorDepth(t *testing.T) {
	path := writeConfig(t, "heading_anchors: 9\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, cerrors.IsCategory(err, cerrors.CategoryValidation))
}

func TestLoad_ValidatesSuffixes(t *testing.T) {
	path := writeConfig(t, "source_suffixes: [md]\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.True(t, cerrors.IsCategory(err, cerrors.CategoryValidation))
}

func TestLoad_RefDomains(t *testing.T) {
	path := writeConfig(t, "ref_domains: [std, py]\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"std", "py"}, cfg.RefDomains)
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "./docs", cfg.Docs)
	assert.Equal(t, 2, cfg.HeadingAnchors)
	require.NoError(t, cfg.Validate())
}
