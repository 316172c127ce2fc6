package state_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbierma/confgit/internal/models"
	"github.com/mbierma/confgit/internal/state"
)

func newProvider(t *testing.T) *state.FileProvider {
	t.Helper()
	base := t.TempDir()
	p, err := state.NewFileProvider(filepath.Join(base, "data"), filepath.Join(base, "sites"))
	require.NoError(t, err)
	return p
}

func TestCaptureEmptyState(t *testing.T) {
	p := newProvider(t)

	snap, err := p.Capture()
	require.NoError(t, err)
	assert.Empty(t, snap.Domains)
	assert.Empty(t, snap.NginxConfigs)
	assert.NotEmpty(t, snap.Timestamp)
}

func TestApplyCaptureRoundTrip(t *testing.T) {
	p := newProvider(t)

	snap := models.Snapshot{
		Domains: []models.Domain{
			{Name: "a.com", Port: 3000, SSL: true},
			{Name: "b.com", Port: 4000, BackendIP: "10.0.0.5"},
		},
		Config: map[string]any{"email": "ops@example.com"},
		NginxConfigs: map[string]string{
			"a.com": "server { listen 80; }\n",
			"b.com": "server { listen 443; }\n",
		},
	}

	require.NoError(t, p.Apply(snap))

	got, err := p.Capture()
	require.NoError(t, err)
	assert.Equal(t, snap.Domains, got.Domains)
	assert.Equal(t, snap.NginxConfigs, got.NginxConfigs)
	assert.Equal(t, "ops@example.com", got.Config["email"])

	// Site configs land as plain files in the sites dir
	content, err := os.ReadFile(filepath.Join(p.SitesDir, "a.com"))
	require.NoError(t, err)
	assert.Equal(t, "server { listen 80; }\n", string(content))
}

func TestApplyEnablesSites(t *testing.T) {
	p := newProvider(t)
	p.EnabledDir = filepath.Join(filepath.Dir(p.SitesDir), "enabled")

	snap := models.Snapshot{
		Domains:      []models.Domain{{Name: "a.com", Port: 3000}},
		Config:       map[string]any{},
		NginxConfigs: map[string]string{"a.com": "server {}\n"},
	}
	require.NoError(t, p.Apply(snap))

	link := filepath.Join(p.EnabledDir, "a.com")
	target, err := os.Readlink(link)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(p.SitesDir, "a.com"), target)

	// Re-apply replaces the link without erroring
	require.NoError(t, p.Apply(snap))
}

func TestValidateSkippedWithoutCommand(t *testing.T) {
	p := newProvider(t)

	ok, msg, err := p.ValidateAndActivate()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Contains(t, msg, "skipped")
}

func TestValidateFailureReportsOutput(t *testing.T) {
	p := newProvider(t)
	p.ValidateCmd = []string{"sh", "-c", "echo config broken >&2; exit 1"}

	ok, msg, err := p.ValidateAndActivate()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Contains(t, msg, "config broken")
}

func TestValidateAndReloadSuccess(t *testing.T) {
	p := newProvider(t)
	p.ValidateCmd = []string{"true"}
	p.ReloadCmd = []string{"true"}

	ok, _, err := p.ValidateAndActivate()
	require.NoError(t, err)
	assert.True(t, ok)
}
