package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff <commit> [<commit2>]",
	Short: "Compare two commits, or a commit against the working state",
	Long: `Show domain additions, removals, and field-level modifications, followed
by a unified diff per changed NGINX config. With one argument, the commit is
compared against the current live state.

Examples:
  confgit diff 3f2a91c
  confgit diff 3f2a91c 8b04d1e`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	repo, err := openRepo()
	if err != nil {
		return err
	}

	refB := ""
	if len(args) == 2 {
		refB = args[1]
	}

	text, err := repo.Diff(args[0], refB)
	if err != nil {
		return fmt.Errorf("failed to diff: %w", err)
	}

	fmt.Println(text)
	return nil
}
