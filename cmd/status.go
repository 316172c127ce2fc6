package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/alpkeskin/gotoon"
	"github.com/spf13/cobra"
)

var (
	statusJSON bool
	statusToon bool
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current branch and pending changes",
	Long: `Display the active branch, the last commit, and whether the live
configuration differs from it.

Examples:
  confgit status
  confgit status --json`,
	RunE: runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)

	statusCmd.Flags().BoolVar(&statusJSON, "json", false, "Output as JSON")
	statusCmd.Flags().BoolVar(&statusToon, "toon", false, "Output in LLM-friendly toon format")
}

func runStatus(cmd *cobra.Command, args []string) error {
	repo, err := openRepo()
	if err != nil {
		return err
	}

	status, err := repo.Status()
	if err != nil {
		return fmt.Errorf("failed to get status: %w", err)
	}

	if statusJSON {
		output, err := json.MarshalIndent(status, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	if statusToon {
		output, err := gotoon.Encode(status)
		if err != nil {
			return fmt.Errorf("failed to encode Toon: %w", err)
		}
		fmt.Println(output)
		return nil
	}

	fmt.Printf("On branch %s\n", status.Branch)
	if status.LastCommit == "" {
		fmt.Println("No commits yet")
	} else {
		fmt.Printf("Last commit: %s  %s  (%s)\n",
			status.LastCommit, status.LastCommitMessage, status.LastCommitTime)
	}
	fmt.Println()

	if status.HasUncommittedChanges {
		fmt.Println("Uncommitted changes present")
		fmt.Println("  (use \"confgit commit -m <message>\" to record them)")
	} else {
		fmt.Println("Working state clean")
	}
	fmt.Println()

	fmt.Printf("Commits: %d   Domains: %d\n", status.TotalCommits, status.DomainsCount)
	return nil
}
