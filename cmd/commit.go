package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbierma/confgit/internal/config"
)

var (
	commitMessage     string
	commitDescription string
	commitAuthor      string
	commitTags        []string
)

var commitCmd = &cobra.Command{
	Use:   "commit",
	Short: "Record the current configuration as a new commit",
	Long: `Capture the live domain registry, settings, and generated NGINX configs
and record them as an immutable commit on the current branch.

Commits that change nothing against the parent are allowed; the diff stats
simply come out zero.

Examples:
  confgit commit -m "add api.example.com"
  confgit commit -m "ssl rollout" -d "wildcard certs for *.example.com" --tag production`,
	RunE: runCommit,
}

func init() {
	rootCmd.AddCommand(commitCmd)

	commitCmd.Flags().StringVarP(&commitMessage, "message", "m", "", "Commit message (required)")
	commitCmd.Flags().StringVarP(&commitDescription, "description", "d", "", "Detailed description")
	commitCmd.Flags().StringVar(&commitAuthor, "author", "", "Commit author (default from config)")
	commitCmd.Flags().StringSliceVar(&commitTags, "tag", []string{}, "Tags for categorization")
}

func runCommit(cmd *cobra.Command, args []string) error {
	if commitMessage == "" {
		return fmt.Errorf("commit message is required (use -m)")
	}

	author := commitAuthor
	if author == "" {
		author = config.GetAuthor()
	}

	repo, err := openRepo()
	if err != nil {
		return err
	}

	commit, err := repo.Commit(commitMessage, commitDescription, author, commitTags)
	if err != nil {
		return fmt.Errorf("failed to create commit: %w", err)
	}

	fmt.Printf("✓ Commit created: %s\n", commit.ShortHash())
	fmt.Printf("  Domains: %d added, %d removed, %d modified\n",
		commit.Stats.DomainsAdded, commit.Stats.DomainsRemoved, commit.Stats.DomainsModified)
	fmt.Printf("  Configs changed: %d\n", commit.Stats.ConfigsChanged)
	if len(commit.Tags) > 0 {
		fmt.Printf("  Tags: %v\n", commit.Tags)
	}

	return nil
}
