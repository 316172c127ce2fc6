package config

import (
	"path/filepath"

	"github.com/spf13/viper"
)

// GetStoreDir returns the version-control store root.
func GetStoreDir() string {
	return viper.GetString("store.dir")
}

// GetDataDir returns the directory holding domains.json and settings.json.
func GetDataDir() string {
	return viper.GetString("state.data_dir")
}

// GetSitesDir returns the directory holding generated site configs.
func GetSitesDir() string {
	return viper.GetString("state.sites_dir")
}

// GetEnabledDir returns the sites-enabled symlink directory, empty when the
// enable step is not in use.
func GetEnabledDir() string {
	return viper.GetString("state.enabled_dir")
}

// GetAuthor returns the default commit author.
func GetAuthor() string {
	return viper.GetString("commit.author")
}

// GetLogLimit returns the default number of commits shown by log.
func GetLogLimit() int {
	return viper.GetInt("log.limit")
}

// GetDiffMaxLines returns the cap on unified diff lines per changed config.
func GetDiffMaxLines() int {
	return viper.GetInt("diff.max_lines")
}

// GetValidateCmd returns the post-restore validation command, e.g.
// ["nginx", "-t"]. Empty means validation is skipped.
func GetValidateCmd() []string {
	return viper.GetStringSlice("validate.command")
}

// GetReloadCmd returns the service reload command run after a passing
// validation.
func GetReloadCmd() []string {
	return viper.GetStringSlice("validate.reload_command")
}

// DefaultStoreDir returns the store root under a base directory.
func DefaultStoreDir(base string) string {
	return filepath.Join(base, "vcs")
}
