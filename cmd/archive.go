package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var archiveOutput string

var archiveCmd = &cobra.Command{
	Use:   "archive <commit>",
	Short: "Export a commit's snapshot as a portable tar.gz",
	Long: `Package a commit's domains, settings, and NGINX configs into a
compressed archive for cold storage or transfer.

Examples:
  confgit archive 3f2a91c
  confgit archive 3f2a91c --output /backups/pre-migration.tar.gz`,
	Args: cobra.ExactArgs(1),
	RunE: runArchive,
}

func init() {
	rootCmd.AddCommand(archiveCmd)

	archiveCmd.Flags().StringVar(&archiveOutput, "output", "", "Output file path (default: confgit-<shorthash>.tar.gz)")
}

func runArchive(cmd *cobra.Command, args []string) error {
	repo, err := openRepo()
	if err != nil {
		return err
	}

	output := archiveOutput
	if output == "" {
		commit, err := repo.Resolve(args[0])
		if err != nil {
			return fmt.Errorf("failed to archive: %w", err)
		}
		output = fmt.Sprintf("confgit-%s.tar.gz", commit.ShortHash())
	}

	if _, err := repo.Export(args[0], output); err != nil {
		return fmt.Errorf("failed to archive: %w", err)
	}

	if fileInfo, err := os.Stat(output); err == nil {
		fmt.Printf("✓ Archive created: %s (%.2f KB)\n", output, float64(fileInfo.Size())/1024)
	} else {
		fmt.Printf("✓ Archive created: %s\n", output)
	}

	return nil
}
