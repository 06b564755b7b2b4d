package git

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// StagedFiles returns the paths staged for the next commit, in the order
// git reports them. A repo with nothing staged yields an empty slice; a
// failed git invocation (binary missing, not a repository) is always an
// error, never an empty result.
func StagedFiles(repoDir string) ([]string, error) {
	cmd := exec.Command("git", "diff", "--cached", "--name-only")
	cmd.Dir = repoDir
	out, err := cmd.Output()
	if err != nil {
		return nil, fmt.Errorf("list staged files: %w", withStderr(err))
	}
	return splitFileList(string(out)), nil
}

// Commit runs git commit with the title as the first -m argument and, when
// the body is non-blank, a second -m argument. Git itself joins the two
// with a blank line. Output from git and any hooks goes straight to the
// terminal.
func Commit(repoDir, title, body string) error {
	args := []string{"commit", "-m", title}
	if strings.TrimSpace(body) != "" {
		args = append(args, "-m", body)
	}
	cmd := exec.Command("git", args...)
	cmd.Dir = repoDir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func splitFileList(out string) []string {
	var files []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			files = append(files, line)
		}
	}
	return files
}

// withStderr surfaces git's own diagnostic ("not a git repository", ...)
// captured by Output.
func withStderr(err error) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
		return fmt.Errorf("%w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
	}
	return err
}
