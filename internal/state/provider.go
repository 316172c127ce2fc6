// Package state defines the boundary between the version-control engine and
// the live configuration it snapshots. The engine never touches NGINX, the
// domain registry, or systemd directly; it talks to a Provider.
package state

import "github.com/mbierma/confgit/internal/models"

// Provider captures and restores the live configuration state. Implementations
// are injected into the engine at construction time.
type Provider interface {
	// Capture produces the current live domain list, settings, and per-domain
	// generated NGINX configs.
	Capture() (models.Snapshot, error)

	// Apply writes domains, settings, and configs back to their live
	// locations and re-enables the sites.
	Apply(snap models.Snapshot) error

	// ValidateAndActivate runs the post-restore check, typically a config
	// syntax test followed by a service reload. ok is false when the live
	// configuration did not pass; err is reserved for failures to run the
	// check at all.
	ValidateAndActivate() (ok bool, msg string, err error)
}
