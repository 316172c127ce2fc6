package state

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/mbierma/confgit/internal/models"
)

// FileProvider is the default Provider. It keeps the domain registry and
// settings as JSON files under DataDir and the generated NGINX configs as
// plain files under SitesDir, mirroring an sites-available/sites-enabled
// layout when EnabledDir is set.
type FileProvider struct {
	DataDir    string
	SitesDir   string
	EnabledDir string

	// ValidateCmd and ReloadCmd are run by ValidateAndActivate, e.g.
	// ["nginx", "-t"] and ["systemctl", "reload", "nginx"]. When ValidateCmd
	// is empty, validation is skipped and reported as passing.
	ValidateCmd []string
	ReloadCmd   []string
}

const (
	domainsFile  = "domains.json"
	settingsFile = "settings.json"
)

// NewFileProvider creates a provider rooted at dataDir and sitesDir, creating
// both directories if needed.
func NewFileProvider(dataDir, sitesDir string) (*FileProvider, error) {
	for _, dir := range []string{dataDir, sitesDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", dir, err)
		}
	}
	return &FileProvider{DataDir: dataDir, SitesDir: sitesDir}, nil
}

// Capture reads the live domain registry, settings, and site configs.
func (p *FileProvider) Capture() (models.Snapshot, error) {
	snap := models.Snapshot{
		Config:       map[string]any{},
		NginxConfigs: map[string]string{},
		Timestamp:    time.Now().Format(time.RFC3339),
	}

	if err := p.readJSON(domainsFile, &snap.Domains); err != nil {
		return models.Snapshot{}, err
	}
	if err := p.readJSON(settingsFile, &snap.Config); err != nil {
		return models.Snapshot{}, err
	}

	for _, d := range snap.Domains {
		path := filepath.Join(p.SitesDir, d.Name)
		content, err := os.ReadFile(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return models.Snapshot{}, fmt.Errorf("failed to read site config %s: %w", d.Name, err)
		}
		snap.NginxConfigs[d.Name] = string(content)
	}

	return snap, nil
}

// Apply writes the snapshot back to the live locations and re-enables every
// site that has a generated config.
func (p *FileProvider) Apply(snap models.Snapshot) error {
	if err := p.writeJSON(domainsFile, snap.Domains); err != nil {
		return err
	}
	if err := p.writeJSON(settingsFile, snap.Config); err != nil {
		return err
	}

	for name, content := range snap.NginxConfigs {
		path := filepath.Join(p.SitesDir, name)
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return fmt.Errorf("failed to write site config %s: %w", name, err)
		}
		if err := p.enableSite(name); err != nil {
			return err
		}
	}

	return nil
}

// ValidateAndActivate runs the configured validation command and, when it
// passes, the reload command.
func (p *FileProvider) ValidateAndActivate() (bool, string, error) {
	if len(p.ValidateCmd) == 0 {
		return true, "validation skipped (no validate command configured)", nil
	}

	out, err := runCommand(p.ValidateCmd)
	if err != nil {
		if _, ok := err.(*exec.ExitError); ok {
			return false, strings.TrimSpace(out), nil
		}
		return false, "", fmt.Errorf("failed to run validate command: %w", err)
	}

	if len(p.ReloadCmd) > 0 {
		out, err := runCommand(p.ReloadCmd)
		if err != nil {
			if _, ok := err.(*exec.ExitError); ok {
				return false, strings.TrimSpace(out), nil
			}
			return false, "", fmt.Errorf("failed to run reload command: %w", err)
		}
	}

	return true, "configuration valid", nil
}

func (p *FileProvider) enableSite(name string) error {
	if p.EnabledDir == "" {
		return nil
	}
	if err := os.MkdirAll(p.EnabledDir, 0o755); err != nil {
		return fmt.Errorf("failed to create enabled dir: %w", err)
	}
	link := filepath.Join(p.EnabledDir, name)
	target := filepath.Join(p.SitesDir, name)
	if _, err := os.Lstat(link); err == nil {
		if err := os.Remove(link); err != nil {
			return fmt.Errorf("failed to replace site link %s: %w", name, err)
		}
	}
	if err := os.Symlink(target, link); err != nil {
		return fmt.Errorf("failed to enable site %s: %w", name, err)
	}
	return nil
}

func (p *FileProvider) readJSON(name string, v any) error {
	data, err := os.ReadFile(filepath.Join(p.DataDir, name))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

func (p *FileProvider) writeJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(p.DataDir, name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func runCommand(argv []string) (string, error) {
	cmd := exec.Command(argv[0], argv[1:]...)
	out, err := cmd.CombinedOutput()
	return string(out), err
}
