package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mbierma/confgit/internal/vcs"
)

var checkoutCmd = &cobra.Command{
	Use:   "checkout <commit>",
	Short: "Restore the configuration recorded in a commit",
	Long: `Restore domains, settings, and NGINX configs to the state recorded in a
commit. A safety commit of the current state (tagged auto-backup) is always
recorded first, so the replaced configuration stays reachable.

If the configured post-restore validation fails, the live state is NOT rolled
back automatically; check out the safety commit printed in the error to
recover.

Examples:
  confgit checkout 3f2a91c`,
	Args: cobra.ExactArgs(1),
	RunE: runCheckout,
}

func init() {
	rootCmd.AddCommand(checkoutCmd)
}

func runCheckout(cmd *cobra.Command, args []string) error {
	repo, err := openRepo()
	if err != nil {
		return err
	}

	commit, err := repo.Checkout(args[0])
	if err != nil {
		if errors.Is(err, vcs.ErrValidationFailed) {
			return fmt.Errorf("restored state failed validation: %w", err)
		}
		return fmt.Errorf("failed to checkout: %w", err)
	}

	fmt.Printf("✓ Restored to commit %s\n", commit.ShortHash())
	fmt.Printf("  %s\n", commit.Message)
	fmt.Printf("  Domains: %d\n", len(commit.DomainsSnapshot.Domains))

	return nil
}
