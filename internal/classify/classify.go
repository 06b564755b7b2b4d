package classify

import (
	"path"
	"strings"
)

// Type is the conventional-commit label prefixed to a commit title.
type Type string

const (
	TypeDocs  Type = "docs"
	TypeTest  Type = "test"
	TypeFeat  Type = "feat"
	TypeChore Type = "chore"
)

// Rules holds the file-pattern sets the classifier matches against.
// Extensions include the leading dot and are compared case-insensitively;
// manifest names match the file's base name exactly.
type Rules struct {
	DocExtensions    []string
	SourceExtensions []string
	ManifestFiles    []string
	TestTokens       []string
	TestDirPrefixes  []string
}

func DefaultRules() Rules {
	return Rules{
		// .txt is deliberately absent: requirements.txt would satisfy the
		// all-docs predicate before the manifest rule ever ran.
		DocExtensions: []string{".md", ".rst", ".adoc"},
		SourceExtensions: []string{
			".go", ".py", ".js", ".ts", ".jsx", ".tsx",
			".c", ".cpp", ".h", ".hpp", ".rs", ".java", ".rb",
		},
		ManifestFiles: []string{
			"package.json", "package-lock.json", "pyproject.toml",
			"requirements.txt", "go.mod", "go.sum", "Cargo.toml",
			"Cargo.lock", "Makefile", "Dockerfile",
		},
		TestTokens:      []string{"test"},
		TestDirPrefixes: []string{"tests"},
	}
}

// Detect classifies a non-empty staged file set. Predicates are evaluated
// in order and the first match wins:
//
//  1. every file has a documentation extension  → docs
//  2. any file mentions tests                   → test
//  3. any file has a source extension           → feat
//  4. any file is a dependency/build manifest   → chore
//  5. anything else                             → chore
func (r Rules) Detect(files []string) Type {
	switch {
	case r.allDocs(files):
		return TypeDocs
	case r.anyTest(files):
		return TypeTest
	case r.anySource(files):
		return TypeFeat
	case r.anyManifest(files):
		return TypeChore
	default:
		return TypeChore
	}
}

func (r Rules) allDocs(files []string) bool {
	for _, f := range files {
		if !hasExtension(f, r.DocExtensions) {
			return false
		}
	}
	return len(files) > 0
}

func (r Rules) anyTest(files []string) bool {
	for _, f := range files {
		lower := strings.ToLower(f)
		for _, tok := range r.TestTokens {
			if strings.Contains(lower, strings.ToLower(tok)) {
				return true
			}
		}
		for _, prefix := range r.TestDirPrefixes {
			if strings.HasPrefix(f, prefix) {
				return true
			}
		}
	}
	return false
}

func (r Rules) anySource(files []string) bool {
	for _, f := range files {
		if hasExtension(f, r.SourceExtensions) {
			return true
		}
	}
	return false
}

func (r Rules) anyManifest(files []string) bool {
	for _, f := range files {
		base := path.Base(f)
		for _, name := range r.ManifestFiles {
			if base == name {
				return true
			}
		}
	}
	return false
}

func hasExtension(file string, exts []string) bool {
	lower := strings.ToLower(file)
	for _, ext := range exts {
		if strings.HasSuffix(lower, strings.ToLower(ext)) {
			return true
		}
	}
	return false
}
