package vcs

import (
	"fmt"

	"github.com/mbierma/confgit/internal/models"
)

// Checkout restores the configuration recorded in a commit.
//
// A safety commit of the current state, tagged auto-backup/pre-checkout, is
// always recorded first so the pre-restore state stays reachable. The target
// snapshot is then handed to the state provider and the external validation
// hook is run. On validation failure the live state remains as overwritten;
// the returned error names the condition and recovery is an explicit checkout
// of the safety commit.
//
// Checkout does not move any branch pointer; only commits do that.
func (r *Repo) Checkout(ref string) (models.Commit, error) {
	commits, err := r.store.LoadCommits()
	if err != nil {
		return models.Commit{}, err
	}

	commit, err := resolveCommit(commits, ref)
	if err != nil {
		return models.Commit{}, err
	}

	safety, err := r.Commit(
		fmt.Sprintf("Auto-backup before checkout to %s", commit.ShortHash()),
		"Automatic safety backup",
		"system",
		[]string{"auto-backup", "pre-checkout"},
	)
	if err != nil {
		return models.Commit{}, fmt.Errorf("failed to create safety commit: %w", err)
	}

	if err := r.provider.Apply(commit.DomainsSnapshot); err != nil {
		return models.Commit{}, fmt.Errorf("%w: %v", ErrApplyFailed, err)
	}

	ok, msg, err := r.provider.ValidateAndActivate()
	if err != nil {
		return models.Commit{}, fmt.Errorf("%w: %v", ErrValidationFailed, err)
	}
	if !ok {
		r.logger.Error("post-checkout validation failed",
			"hash", commit.ShortHash(),
			"safety", safety.ShortHash(),
			"reason", msg)
		return models.Commit{}, fmt.Errorf(
			"%w: %s (previous state preserved in commit %s)",
			ErrValidationFailed, msg, safety.ShortHash())
	}

	r.logger.Info("checked out commit", "hash", commit.ShortHash())
	return commit, nil
}

// Show returns a commit plus its rendered diff against its parent's
// snapshot.
func (r *Repo) Show(ref string) (models.Commit, string, error) {
	commits, err := r.store.LoadCommits()
	if err != nil {
		return models.Commit{}, "", err
	}

	commit, err := resolveCommit(commits, ref)
	if err != nil {
		return models.Commit{}, "", err
	}

	parentState := emptySnapshot()
	parentLabel := "empty"
	if commit.Parent != "" {
		if parent, err := resolveCommit(commits, commit.Parent); err == nil {
			parentState = parent.DomainsSnapshot
			parentLabel = parent.ShortHash()
		}
	}

	text := DiffText(parentLabel, parentState, commit.ShortHash(), commit.DomainsSnapshot, r.diffMaxLines)
	return commit, text, nil
}

// Diff renders the differences between two commits, or between a commit and
// the current working state when refB is empty.
func (r *Repo) Diff(refA, refB string) (string, error) {
	commits, err := r.store.LoadCommits()
	if err != nil {
		return "", err
	}

	a, err := resolveCommit(commits, refA)
	if err != nil {
		return "", err
	}

	labelB := "working"
	var stateB models.Snapshot
	if refB != "" {
		b, err := resolveCommit(commits, refB)
		if err != nil {
			return "", err
		}
		stateB = b.DomainsSnapshot
		labelB = b.ShortHash()
	} else {
		stateB, err = r.provider.Capture()
		if err != nil {
			return "", fmt.Errorf("%w: %v", ErrCaptureFailed, err)
		}
	}

	return DiffText(a.ShortHash(), a.DomainsSnapshot, labelB, stateB, r.diffMaxLines), nil
}
