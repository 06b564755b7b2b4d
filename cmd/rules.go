package cmd

import (
	"fmt"
	"strings"

	"smartcommit/internal/config"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(rulesCmd)
}

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the active classifier rule sets",
	Long: `Shows the file-pattern sets used to pick a commit type, after applying any
overrides from ` + config.FileName + ` in the repository root.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := repoRoot()
		if err != nil {
			return err
		}

		rules, err := config.Load(dir)
		if err != nil {
			return err
		}

		fmt.Printf("%-20s %s\n", "RULE SET", "PATTERNS")
		fmt.Println("──────────────────────────────────────────────────────────────────")
		fmt.Printf("%-20s %s\n", "doc extensions", strings.Join(rules.DocExtensions, " "))
		fmt.Printf("%-20s %s\n", "test tokens", strings.Join(rules.TestTokens, " "))
		fmt.Printf("%-20s %s\n", "test dir prefixes", strings.Join(rules.TestDirPrefixes, " "))
		fmt.Printf("%-20s %s\n", "source extensions", strings.Join(rules.SourceExtensions, " "))
		fmt.Printf("%-20s %s\n", "manifest files", strings.Join(rules.ManifestFiles, " "))
		return nil
	},
}
