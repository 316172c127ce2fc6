package testutil

import (
	"errors"
	"testing"

	"github.com/mbierma/confgit/internal/models"
)

// FakeProvider is an in-memory state provider for tests. Capture returns a
// copy of Current; Apply overwrites it. Validation outcome and collaborator
// failures are configurable per test.
type FakeProvider struct {
	Current models.Snapshot

	CaptureErr  error
	ApplyErr    error
	ValidateOK  bool
	ValidateMsg string
	ValidateErr error

	Applied []models.Snapshot
}

// NewFakeProvider returns a provider with an empty state and passing
// validation.
func NewFakeProvider() *FakeProvider {
	return &FakeProvider{
		Current: models.Snapshot{
			Domains:      []models.Domain{},
			Config:       map[string]any{},
			NginxConfigs: map[string]string{},
		},
		ValidateOK:  true,
		ValidateMsg: "configuration valid",
	}
}

func (p *FakeProvider) Capture() (models.Snapshot, error) {
	if p.CaptureErr != nil {
		return models.Snapshot{}, p.CaptureErr
	}
	return copySnapshot(p.Current), nil
}

func (p *FakeProvider) Apply(snap models.Snapshot) error {
	if p.ApplyErr != nil {
		return p.ApplyErr
	}
	p.Applied = append(p.Applied, snap)
	p.Current = copySnapshot(snap)
	return nil
}

func (p *FakeProvider) ValidateAndActivate() (bool, string, error) {
	return p.ValidateOK, p.ValidateMsg, p.ValidateErr
}

// SetDomain adds or replaces a domain and its generated config in the live
// state.
func (p *FakeProvider) SetDomain(d models.Domain, config string) {
	for i := range p.Current.Domains {
		if p.Current.Domains[i].Name == d.Name {
			p.Current.Domains[i] = d
			p.Current.NginxConfigs[d.Name] = config
			return
		}
	}
	p.Current.Domains = append(p.Current.Domains, d)
	p.Current.NginxConfigs[d.Name] = config
}

// RemoveDomain deletes a domain and its config from the live state.
func (p *FakeProvider) RemoveDomain(name string) {
	kept := p.Current.Domains[:0]
	for _, d := range p.Current.Domains {
		if d.Name != name {
			kept = append(kept, d)
		}
	}
	p.Current.Domains = kept
	delete(p.Current.NginxConfigs, name)
}

func copySnapshot(s models.Snapshot) models.Snapshot {
	out := models.Snapshot{
		Domains:      append([]models.Domain{}, s.Domains...),
		Config:       map[string]any{},
		NginxConfigs: map[string]string{},
		Timestamp:    s.Timestamp,
	}
	for k, v := range s.Config {
		out.Config[k] = v
	}
	for k, v := range s.NginxConfigs {
		out.NginxConfigs[k] = v
	}
	return out
}

// ErrBoom is a reusable failure for collaborator error paths.
var ErrBoom = errors.New("boom")

// StoreRoot returns a fresh store root under the test's temp dir.
func StoreRoot(t *testing.T) string {
	t.Helper()
	return t.TempDir()
}
