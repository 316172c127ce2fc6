package vcs

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/mbierma/confgit/internal/models"
	"github.com/mbierma/confgit/internal/state"
)

// Repo is the version-control engine. All public operations are synchronous
// and perform whole-file read/modify/write cycles against the store.
type Repo struct {
	store        *Store
	provider     state.Provider
	logger       *slog.Logger
	diffMaxLines int
}

// Option configures a Repo.
type Option func(*Repo)

// WithLogger sets the structured logger used by engine operations.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Repo) { r.logger = logger }
}

// WithDiffMaxLines caps the unified diff length per changed config in diff
// and show output.
func WithDiffMaxLines(n int) Option {
	return func(r *Repo) { r.diffMaxLines = n }
}

// Open initializes the store at root (idempotently) and returns an engine
// backed by the given state provider.
func Open(root string, provider state.Provider, opts ...Option) (*Repo, error) {
	r := &Repo{
		store:        NewStore(root),
		provider:     provider,
		logger:       slog.Default(),
		diffMaxLines: DefaultDiffMaxLines,
	}
	for _, opt := range opts {
		opt(r)
	}
	if err := r.store.Initialize(); err != nil {
		return nil, err
	}
	return r, nil
}

// Store exposes the underlying repository store.
func (r *Repo) Store() *Store {
	return r.store
}

// Resolve finds a commit by exact hash or unambiguous prefix.
func (r *Repo) Resolve(ref string) (models.Commit, error) {
	commits, err := r.store.LoadCommits()
	if err != nil {
		return models.Commit{}, err
	}
	return resolveCommit(commits, ref)
}

// resolveCommit finds a commit by exact hash or unambiguous prefix.
func resolveCommit(commits []models.Commit, ref string) (models.Commit, error) {
	if ref == "" {
		return models.Commit{}, fmt.Errorf("empty commit reference: %w", ErrNotFound)
	}

	var matches []models.Commit
	for _, c := range commits {
		if c.Hash == ref {
			return c, nil
		}
		if strings.HasPrefix(c.Hash, ref) {
			matches = append(matches, c)
		}
	}

	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return models.Commit{}, fmt.Errorf("commit '%s': %w", ref, ErrNotFound)
	default:
		return models.Commit{}, fmt.Errorf("commit '%s' is ambiguous (%d matches): %w", ref, len(matches), ErrNotFound)
	}
}

func emptySnapshot() models.Snapshot {
	return models.Snapshot{
		Domains:      []models.Domain{},
		Config:       map[string]any{},
		NginxConfigs: map[string]string{},
	}
}
