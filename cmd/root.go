package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var repoDir string

var rootCmd = &cobra.Command{
	Use:   "smartcommit",
	Short: "Suggest a commit message for staged changes and run the commit",
	Long: `smartcommit inspects the files staged for the next git commit, guesses a
conventional commit type from their names, composes a title and body, and
asks for confirmation before running git commit. Every attempt is recorded
in a local journal under .smartcommit/.`,
	RunE:         runCommit,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&repoDir, "repo", "", "repository directory (defaults to the current directory)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func repoRoot() (string, error) {
	if repoDir != "" {
		return repoDir, nil
	}
	return os.Getwd()
}
