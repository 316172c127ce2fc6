package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/mbierma/confgit/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the configuration repository",
	Long: `Create the version-control store and a default config file.

The store is seeded with an empty commit log, a main branch, and HEAD
pointing at main. Running init on an existing store is a no-op and never
discards data.`,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	repo, err := openRepo()
	if err != nil {
		return err
	}

	fmt.Printf("✓ Repository initialized: %s\n", repo.Store().Root())

	// Create default config if it doesn't exist
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(home, ".config", "confgit")
	configPath := filepath.Join(configDir, "config.toml")

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		if err := os.MkdirAll(configDir, 0o755); err != nil {
			return fmt.Errorf("failed to create config directory: %w", err)
		}

		defaultConfig := fmt.Sprintf(`[store]
dir = %q

[state]
data_dir = %q
sites_dir = %q
enabled_dir = ""

[commit]
author = "admin"

[log]
limit = 10

[diff]
max_lines = 50

[validate]
command = []
reload_command = []
`, config.GetStoreDir(), config.GetDataDir(), config.GetSitesDir())

		if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
			return fmt.Errorf("failed to create config file: %w", err)
		}

		fmt.Printf("✓ Created default config: %s\n", configPath)
	} else {
		fmt.Printf("Config already exists: %s\n", configPath)
	}

	fmt.Println("\nYou can now record a snapshot with: confgit commit -m <message>")
	return nil
}
