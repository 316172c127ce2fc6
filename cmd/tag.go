package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var tagMessage string

var tagCmd = &cobra.Command{
	Use:   "tag <commit> <name>",
	Short: "Tag a commit",
	Long: `Attach a named, immutable alias to a commit. The tag name is also added
to the commit's own tag set. Tagging the same commit with the same name again
is a no-op on the set but refreshes the tag record's message.

Examples:
  confgit tag 3f2a91c v1.0
  confgit tag 3f2a91c production-2026-08 -m "August rollout"`,
	Args: cobra.ExactArgs(2),
	RunE: runTag,
}

func init() {
	rootCmd.AddCommand(tagCmd)

	tagCmd.Flags().StringVarP(&tagMessage, "message", "m", "", "Tag message")
}

func runTag(cmd *cobra.Command, args []string) error {
	repo, err := openRepo()
	if err != nil {
		return err
	}

	tag, err := repo.Tag(args[0], args[1], tagMessage)
	if err != nil {
		return fmt.Errorf("failed to tag commit: %w", err)
	}

	short := tag.Commit
	if len(short) > 7 {
		short = short[:7]
	}
	fmt.Printf("✓ Created tag '%s' at %s\n", tag.Name, short)
	return nil
}
