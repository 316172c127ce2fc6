package vcs

import (
	"fmt"
	"time"

	"github.com/mbierma/confgit/internal/models"
)

// Tag names a commit. The tag name is appended to the commit's own tag set if
// not already present, and a standalone tag record is written for name-based
// lookup. Re-tagging the same commit is idempotent on the tag set but
// rewrites the tag record with the latest message.
//
// Tagging never changes the target commit's hash, parent, or snapshot.
func (r *Repo) Tag(ref, name, message string) (models.Tag, error) {
	commits, err := r.store.LoadCommits()
	if err != nil {
		return models.Tag{}, err
	}

	commit, err := resolveCommit(commits, ref)
	if err != nil {
		return models.Tag{}, err
	}

	for i := range commits {
		if commits[i].Hash != commit.Hash {
			continue
		}
		if !commits[i].HasTag(name) {
			commits[i].Tags = append(commits[i].Tags, name)
		}
		commit = commits[i]
		break
	}

	if err := r.store.SaveCommits(commits); err != nil {
		return models.Tag{}, err
	}
	// Keep the standalone per-commit record in step with the log entry.
	if err := r.store.WriteCommitRecord(commit); err != nil {
		return models.Tag{}, err
	}

	tag := models.Tag{
		Name:      name,
		Commit:    commit.Hash,
		Message:   message,
		CreatedAt: time.Now().Format(time.RFC3339),
	}
	if err := r.store.WriteTag(tag); err != nil {
		return models.Tag{}, err
	}

	r.logger.Info("tagged commit", "hash", commit.ShortHash(), "tag", name)
	return tag, nil
}

// Tags returns all tag records.
func (r *Repo) Tags() ([]models.Tag, error) {
	return r.store.ListTags()
}

// ResolveTag returns the commit a tag points at.
func (r *Repo) ResolveTag(name string) (models.Commit, error) {
	tag, err := r.store.LoadTag(name)
	if err != nil {
		return models.Commit{}, err
	}
	commits, err := r.store.LoadCommits()
	if err != nil {
		return models.Commit{}, err
	}
	commit, err := resolveCommit(commits, tag.Commit)
	if err != nil {
		return models.Commit{}, fmt.Errorf("tag '%s' points at missing commit: %w", name, err)
	}
	return commit, nil
}
