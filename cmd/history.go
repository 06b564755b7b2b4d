package cmd

import (
	"fmt"

	"smartcommit/internal/journal"

	"github.com/spf13/cobra"
)

var historyLimit int

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "max number of attempts to show")
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List journaled commit attempts for this repository",
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := repoRoot()
		if err != nil {
			return err
		}

		j, err := journal.Open(dir)
		if err != nil {
			return err
		}
		defer j.Close()

		attempts, err := j.List(historyLimit)
		if err != nil {
			return err
		}

		if len(attempts) == 0 {
			fmt.Println("No commit attempts recorded yet.")
			return nil
		}

		fmt.Printf("%-17s %-6s %-7s %-10s %-6s %s\n", "CREATED", "TYPE", "ACTION", "RESULT", "FILES", "TITLE")
		fmt.Println("────────────────────────────────────────────────────────────────────────────")
		for _, a := range attempts {
			fmt.Printf("%-17s %-6s %-7s %-10s %-6d %s\n",
				a.CreatedAt.Local().Format("2006-01-02 15:04"),
				a.CommitType,
				a.Action,
				a.Result,
				a.FileCount,
				a.Title,
			)
		}
		return nil
	},
}
