package cmd

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/alpkeskin/gotoon"
	"github.com/spf13/cobra"
)

var (
	statsJSON bool
	statsToon bool
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show repository statistics",
	Long: `Display aggregate statistics: commit, branch, and tag counts,
cumulative domain churn, per-author activity, and on-disk store size.

Examples:
  confgit stats
  confgit stats --json`,
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "Output as JSON")
	statsCmd.Flags().BoolVar(&statsToon, "toon", false, "Output in LLM-friendly toon format")
}

func runStats(cmd *cobra.Command, args []string) error {
	repo, err := openRepo()
	if err != nil {
		return err
	}

	stats, err := repo.Stats()
	if err != nil {
		return fmt.Errorf("failed to get stats: %w", err)
	}

	if statsJSON {
		output, err := json.MarshalIndent(stats, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(output))
		return nil
	}

	if statsToon {
		output, err := gotoon.Encode(stats)
		if err != nil {
			return fmt.Errorf("failed to encode Toon: %w", err)
		}
		fmt.Println(output)
		return nil
	}

	fmt.Println("Repository Statistics")
	fmt.Println("━━━━━━━━━━━━━━━━━━━━━")
	fmt.Println()

	fmt.Printf("Commits:  %d\n", stats.TotalCommits)
	fmt.Printf("Branches: %d\n", stats.TotalBranches)
	fmt.Printf("Tags:     %d\n", stats.TotalTags)
	fmt.Printf("Size:     %s\n", stats.RepositorySize)
	fmt.Println()

	fmt.Printf("Domains added:   %d\n", stats.TotalDomainsAdded)
	fmt.Printf("Domains removed: %d\n", stats.TotalDomainsRemoved)
	fmt.Println()

	if len(stats.Authors) > 0 {
		fmt.Println("By Author:")
		authors := make([]string, 0, len(stats.Authors))
		for a := range stats.Authors {
			authors = append(authors, a)
		}
		sort.Slice(authors, func(i, j int) bool {
			if stats.Authors[authors[i]] == stats.Authors[authors[j]] {
				return authors[i] < authors[j]
			}
			return stats.Authors[authors[i]] > stats.Authors[authors[j]]
		})
		for _, a := range authors {
			fmt.Printf("  %-20s %3d\n", a, stats.Authors[a])
		}
	}

	return nil
}
