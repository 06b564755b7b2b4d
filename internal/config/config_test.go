package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"smartcommit/internal/classify"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	rules, err := Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, classify.DefaultRules(), rules)
}

func TestLoadOverridesListedSets(t *testing.T) {
	dir := t.TempDir()
	content := `
doc_extensions: [".texi", ".info"]
test_tokens: ["spec"]
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(content), 0644))

	rules, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{".texi", ".info"}, rules.DocExtensions)
	assert.Equal(t, []string{"spec"}, rules.TestTokens)

	// untouched sets keep their defaults
	defaults := classify.DefaultRules()
	assert.Equal(t, defaults.SourceExtensions, rules.SourceExtensions)
	assert.Equal(t, defaults.ManifestFiles, rules.ManifestFiles)
	assert.Equal(t, defaults.TestDirPrefixes, rules.TestDirPrefixes)
}

func TestLoadRejectsMalformedYAML(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("doc_extensions: [unclosed"), 0644))

	_, err := Load(dir)
	assert.ErrorContains(t, err, FileName)
}
