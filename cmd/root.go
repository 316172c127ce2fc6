package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mbierma/confgit/internal/config"
	"github.com/mbierma/confgit/internal/state"
	"github.com/mbierma/confgit/internal/vcs"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "confgit",
	Short: "Version control for live NGINX/VPS configuration",
	Long: `confgit snapshots the domain registry, settings, and generated NGINX
configs into immutable commits, organized under named branches with tags.

Any previous configuration can be inspected, diffed, and restored; a safety
commit is recorded before every restore so the replaced state stays
reachable.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/confgit/config.toml)")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		configDir := filepath.Join(home, ".config", "confgit")
		viper.AddConfigPath(configDir)
		viper.SetConfigType("toml")
		viper.SetConfigName("config")
	}

	viper.AutomaticEnv()

	home, _ := os.UserHomeDir()
	baseDir := filepath.Join(home, ".confgit")

	// Set defaults
	viper.SetDefault("store.dir", config.DefaultStoreDir(baseDir))
	viper.SetDefault("state.data_dir", baseDir)
	viper.SetDefault("state.sites_dir", "/etc/nginx/sites-available")
	viper.SetDefault("state.enabled_dir", "")
	viper.SetDefault("commit.author", "admin")
	viper.SetDefault("log.limit", 10)
	viper.SetDefault("diff.max_lines", 50)
	viper.SetDefault("validate.command", []string{})
	viper.SetDefault("validate.reload_command", []string{})

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// openRepo wires the file-backed state provider from config and opens the
// engine over the configured store.
func openRepo() (*vcs.Repo, error) {
	provider, err := state.NewFileProvider(config.GetDataDir(), config.GetSitesDir())
	if err != nil {
		return nil, fmt.Errorf("failed to set up state provider: %w", err)
	}
	provider.EnabledDir = config.GetEnabledDir()
	provider.ValidateCmd = config.GetValidateCmd()
	provider.ReloadCmd = config.GetReloadCmd()

	repo, err := vcs.Open(config.GetStoreDir(), provider, vcs.WithDiffMaxLines(config.GetDiffMaxLines()))
	if err != nil {
		return nil, fmt.Errorf("failed to open repository: %w", err)
	}
	return repo, nil
}
