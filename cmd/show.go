package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/alpkeskin/gotoon"
	"github.com/spf13/cobra"
)

var (
	showJSON bool
	showToon bool
)

var showCmd = &cobra.Command{
	Use:   "show <commit>",
	Short: "Show commit details and its diff against the parent",
	Long: `Display a commit's metadata, change stats, and a rendered diff of its
snapshot against the parent commit. The commit may be given as a full hash
or an unambiguous prefix.

Examples:
  confgit show 3f2a91c
  confgit show 3f2a91c --json`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)

	showCmd.Flags().BoolVar(&showJSON, "json", false, "Output as JSON")
	showCmd.Flags().BoolVar(&showToon, "toon", false, "Output in LLM-friendly toon format")
}

func runShow(cmd *cobra.Command, args []string) error {
	repo, err := openRepo()
	if err != nil {
		return err
	}

	commit, diffText, err := repo.Show(args[0])
	if err != nil {
		return fmt.Errorf("failed to show commit: %w", err)
	}

	if showJSON {
		output, err := json.MarshalIndent(commit, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	if showToon {
		output, err := gotoon.Encode(commit)
		if err != nil {
			return fmt.Errorf("failed to encode Toon: %w", err)
		}
		fmt.Println(output)
		return nil
	}

	fmt.Printf("commit %s\n", commit.Hash)
	fmt.Printf("Author: %s\n", commit.Author)
	fmt.Printf("Date:   %s\n", commit.Timestamp)
	fmt.Println()
	fmt.Printf("    %s\n", commit.Message)
	if commit.Description != "" {
		fmt.Printf("    %s\n", commit.Description)
	}
	fmt.Println()

	fmt.Println("Stats:")
	fmt.Printf("  Domains added:    %d\n", commit.Stats.DomainsAdded)
	fmt.Printf("  Domains removed:  %d\n", commit.Stats.DomainsRemoved)
	fmt.Printf("  Domains modified: %d\n", commit.Stats.DomainsModified)
	fmt.Printf("  Configs changed:  %d\n", commit.Stats.ConfigsChanged)
	fmt.Println()

	if len(commit.FilesChanged) > 0 {
		fmt.Printf("Files (%d):\n", len(commit.FilesChanged))
		for _, f := range commit.FilesChanged {
			fmt.Printf("  - %s\n", f)
		}
		fmt.Println()
	}

	fmt.Println(diffText)
	return nil
}
