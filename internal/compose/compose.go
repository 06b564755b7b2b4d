package compose

import (
	"fmt"
	"path/filepath"
	"strings"

	"smartcommit/internal/classify"
)

// Summarize builds the commit title from the detected type and the staged
// file set. A single staged file gets its basename as the scope.
func Summarize(commitType classify.Type, files []string) string {
	if len(files) == 1 {
		name := filepath.Base(files[0])
		scope := strings.TrimSuffix(name, filepath.Ext(name))
		if scope == "" {
			// dotfiles like .gitignore have no separate extension
			scope = name
		}
		return fmt.Sprintf("%s(%s): update %s", commitType, scope, name)
	}
	return fmt.Sprintf("%s: update %d files", commitType, len(files))
}

// Body lists every staged file, one bullet per line, in the order git
// reported them.
func Body(files []string) string {
	lines := make([]string, len(files))
	for i, f := range files {
		lines[i] = "- Modified: " + f
	}
	return strings.Join(lines, "\n")
}

// Message joins title and body the way git joins multiple -m arguments.
func Message(title, body string) string {
	if strings.TrimSpace(body) == "" {
		return title
	}
	return title + "\n\n" + body
}
