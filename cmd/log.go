package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/alpkeskin/gotoon"
	"github.com/spf13/cobra"

	"github.com/mbierma/confgit/internal/config"
)

var (
	logLimit  int
	logBranch string
	logJSON   bool
	logToon   bool
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Show commit history",
	Long: `List the most recent commits of the shared log, newest last.

With --branch, the log is sliced at that branch's recorded head: everything
up to and including the commit the branch points at.

Examples:
  confgit log
  confgit log --limit 20
  confgit log --branch staging --json`,
	RunE: runLog,
}

func init() {
	rootCmd.AddCommand(logCmd)

	logCmd.Flags().IntVar(&logLimit, "limit", 0, "Maximum commits to show (default from config)")
	logCmd.Flags().StringVar(&logBranch, "branch", "", "Show history up to this branch's head")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "Output as JSON")
	logCmd.Flags().BoolVar(&logToon, "toon", false, "Output in LLM-friendly toon format")
}

func runLog(cmd *cobra.Command, args []string) error {
	limit := logLimit
	if limit == 0 {
		limit = config.GetLogLimit()
	}

	repo, err := openRepo()
	if err != nil {
		return err
	}

	commits, err := repo.Log(limit, logBranch)
	if err != nil {
		return fmt.Errorf("failed to read log: %w", err)
	}

	if logJSON {
		output, err := json.MarshalIndent(commits, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	if logToon {
		output, err := gotoon.Encode(commits)
		if err != nil {
			return fmt.Errorf("failed to encode Toon: %w", err)
		}
		fmt.Println(output)
		return nil
	}

	if len(commits) == 0 {
		fmt.Println("No commits yet")
		return nil
	}

	// Newest first for reading, like git log
	for i := len(commits) - 1; i >= 0; i-- {
		c := commits[i]
		fmt.Printf("commit %s\n", c.Hash)
		fmt.Printf("Author: %s\n", c.Author)
		fmt.Printf("Date:   %s\n", c.Timestamp)
		if len(c.Tags) > 0 {
			fmt.Printf("Tags:   %v\n", c.Tags)
		}
		fmt.Println()
		fmt.Printf("    %s\n", c.Message)
		if c.Description != "" {
			fmt.Printf("    %s\n", c.Description)
		}
		fmt.Println()
	}

	return nil
}
