package cmd

import (
	"fmt"
	"os"

	"smartcommit/internal/compose"
	"smartcommit/internal/config"
	"smartcommit/internal/git"
	"smartcommit/internal/journal"
	"smartcommit/internal/prompt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var copyMsg bool

func init() {
	rootCmd.Flags().BoolVar(&copyMsg, "copy", false, "copy the final commit message to the clipboard")
}

func runCommit(cmd *cobra.Command, args []string) error {
	dir, err := repoRoot()
	if err != nil {
		return err
	}

	files, err := git.StagedFiles(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		fmt.Println("No staged changes found. Use 'git add' first.")
		os.Exit(1)
	}

	rules, err := config.Load(dir)
	if err != nil {
		return err
	}

	commitType := rules.Detect(files)
	title := compose.Summarize(commitType, files)
	body := compose.Body(files)

	outcome, err := confirmInteractive(title, body)
	if err != nil {
		return err
	}

	if outcome.Canceled {
		fmt.Println("Commit canceled.")
		recordAttempt(dir, journal.Attempt{
			CommitType: string(commitType),
			Title:      title,
			FileCount:  len(files),
			Action:     journal.ActionCancel,
			Result:     journal.ResultCanceled,
		})
		return nil
	}

	title, body = outcome.Title, outcome.Body
	action := journal.ActionAccept
	if outcome.Edited {
		action = journal.ActionEdit
	}

	if copyMsg {
		if err := clipboard.WriteAll(compose.Message(title, body)); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not copy to clipboard: %v\n", err)
		} else {
			fmt.Println("Commit message copied to clipboard.")
		}
	}

	if err := git.Commit(dir, title, body); err != nil {
		fmt.Printf("Git commit failed: %v\n", err)
		recordAttempt(dir, journal.Attempt{
			CommitType: string(commitType),
			Title:      title,
			FileCount:  len(files),
			Action:     action,
			Result:     journal.ResultFailed,
		})
		os.Exit(1)
	}

	fmt.Println("Commit created successfully.")
	recordAttempt(dir, journal.Attempt{
		CommitType: string(commitType),
		Title:      title,
		FileCount:  len(files),
		Action:     action,
		Result:     journal.ResultCommitted,
	})
	return nil
}

// confirmInteractive owns the liner session so its terminal state is
// restored before any exit path runs.
func confirmInteractive(title, body string) (prompt.Outcome, error) {
	sess := prompt.NewLinerSession()
	defer sess.Close()
	return prompt.Confirm(sess, title, body)
}

// recordAttempt journals the run. Journal trouble must never break a
// commit, so failures are reported as warnings only.
func recordAttempt(dir string, a journal.Attempt) {
	j, err := journal.Open(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open commit journal: %v\n", err)
		return
	}
	defer j.Close()

	if err := j.Record(a); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not record commit attempt: %v\n", err)
	}
}
