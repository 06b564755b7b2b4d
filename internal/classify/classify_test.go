package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	rules := DefaultRules()

	tests := []struct {
		name  string
		files []string
		want  Type
	}{
		{
			name:  "all docs",
			files: []string{"README.md", "docs/guide.md"},
			want:  TypeDocs,
		},
		{
			name:  "single doc",
			files: []string{"CHANGELOG.rst"},
			want:  TypeDocs,
		},
		{
			name:  "test token wins over source extension",
			files: []string{"pkg/server.go", "pkg/server_test.go"},
			want:  TypeTest,
		},
		{
			name:  "test token is case-insensitive",
			files: []string{"src/TestHelpers.java"},
			want:  TypeTest,
		},
		{
			name:  "tests dir prefix",
			files: []string{"tests/fixtures/data.json"},
			want:  TypeTest,
		},
		{
			name:  "docs plus test file is not docs",
			files: []string{"README.md", "tests/smoke.py"},
			want:  TypeTest,
		},
		{
			name:  "source extension",
			files: []string{"app/main.py", "static/logo.png"},
			want:  TypeFeat,
		},
		{
			name:  "docs mixed with source",
			files: []string{"README.md", "main.go"},
			want:  TypeFeat,
		},
		{
			name:  "manifest only",
			files: []string{"package.json", "package-lock.json"},
			want:  TypeChore,
		},
		{
			name:  "manifest in subdirectory",
			files: []string{"frontend/package.json"},
			want:  TypeChore,
		},
		{
			name:  "nothing recognized",
			files: []string{"assets/logo.svg", "data.csv"},
			want:  TypeChore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.Detect(tt.files))
		})
	}
}

func TestDetectRuleOrder(t *testing.T) {
	rules := DefaultRules()

	// A doc-only set containing a test-ish name is still docs: the
	// all-docs predicate runs first.
	assert.Equal(t, TypeDocs, rules.Detect([]string{"docs/testing.md"}))

	// A test file alongside a manifest is test, not chore.
	assert.Equal(t, TypeTest, rules.Detect([]string{"go.mod", "x_test.go"}))
}

func TestDetectWithCustomRules(t *testing.T) {
	rules := Rules{
		DocExtensions:    []string{".texi"},
		SourceExtensions: []string{".zig"},
		ManifestFiles:    []string{"build.zig.zon"},
		TestTokens:       []string{"spec"},
		TestDirPrefixes:  []string{"spec"},
	}

	assert.Equal(t, TypeDocs, rules.Detect([]string{"manual.texi"}))
	assert.Equal(t, TypeTest, rules.Detect([]string{"spec/parser_spec.zig"}))
	assert.Equal(t, TypeFeat, rules.Detect([]string{"src/main.zig"}))
	assert.Equal(t, TypeChore, rules.Detect([]string{"build.zig.zon"}))

	// default token set no longer applies
	assert.Equal(t, TypeChore, rules.Detect([]string{"testdata/blob.bin"}))
}
