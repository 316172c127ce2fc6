package vcs

import (
	"fmt"

	"github.com/mbierma/confgit/internal/models"
)

// Status is the read-only view of the repository and working state.
type Status struct {
	Branch                string `json:"branch"`
	LastCommit            string `json:"last_commit,omitempty"`
	LastCommitMessage     string `json:"last_commit_message,omitempty"`
	LastCommitTime        string `json:"last_commit_time,omitempty"`
	HasUncommittedChanges bool   `json:"has_uncommitted_changes"`
	TotalCommits          int    `json:"total_commits"`
	DomainsCount          int    `json:"domains_count"`
}

// RepoStats aggregates repository-wide counts.
type RepoStats struct {
	TotalCommits        int            `json:"total_commits"`
	TotalBranches       int            `json:"total_branches"`
	TotalTags           int            `json:"total_tags"`
	TotalDomainsAdded   int            `json:"total_domains_added"`
	TotalDomainsRemoved int            `json:"total_domains_removed"`
	Authors             map[string]int `json:"authors"`
	RepositorySize      string         `json:"repository_size"`
}

// Status reports the active branch, the last commit, and whether the live
// state differs from it. With no commits yet, any non-empty domain list
// counts as uncommitted changes.
func (r *Repo) Status() (Status, error) {
	branch, err := r.store.CurrentBranch()
	if err != nil {
		return Status{}, err
	}

	commits, err := r.store.LoadCommits()
	if err != nil {
		return Status{}, err
	}

	current, err := r.provider.Capture()
	if err != nil {
		return Status{}, fmt.Errorf("%w: %v", ErrCaptureFailed, err)
	}

	status := Status{
		Branch:       branch,
		TotalCommits: len(commits),
		DomainsCount: len(current.Domains),
	}

	if len(commits) == 0 {
		status.HasUncommittedChanges = len(current.Domains) > 0
		return status, nil
	}

	last := commits[len(commits)-1]
	status.LastCommit = last.ShortHash()
	status.LastCommitMessage = last.Message
	status.LastCommitTime = last.Timestamp
	status.HasUncommittedChanges = !DiffStats(last.DomainsSnapshot, current).Empty()

	return status, nil
}

// Log returns the most recent limit commits in creation order. When branch is
// set, the global log is sliced at that branch's recorded head: everything up
// to and including the head commit, found by scanning backward from the tail.
func (r *Repo) Log(limit int, branch string) ([]models.Commit, error) {
	commits, err := r.store.LoadCommits()
	if err != nil {
		return nil, err
	}

	if branch != "" {
		branches, err := r.store.LoadBranches()
		if err != nil {
			return nil, err
		}

		var target *models.Branch
		for i := range branches {
			if branches[i].Name == branch {
				target = &branches[i]
				break
			}
		}
		if target == nil {
			return nil, fmt.Errorf("branch '%s': %w", branch, ErrNotFound)
		}

		if target.CurrentCommit != "" {
			for i := len(commits) - 1; i >= 0; i-- {
				if commits[i].Hash == target.CurrentCommit {
					commits = commits[:i+1]
					break
				}
			}
		}
	}

	if limit > 0 && len(commits) > limit {
		commits = commits[len(commits)-limit:]
	}
	return commits, nil
}

// Stats aggregates repository statistics across the full history.
func (r *Repo) Stats() (RepoStats, error) {
	commits, err := r.store.LoadCommits()
	if err != nil {
		return RepoStats{}, err
	}

	branches, err := r.store.LoadBranches()
	if err != nil {
		return RepoStats{}, err
	}

	stats := RepoStats{
		TotalCommits:  len(commits),
		TotalBranches: len(branches),
		Authors:       map[string]int{},
	}

	tagNames := map[string]struct{}{}
	for _, c := range commits {
		stats.TotalDomainsAdded += c.Stats.DomainsAdded
		stats.TotalDomainsRemoved += c.Stats.DomainsRemoved
		stats.Authors[c.Author]++
		for _, t := range c.Tags {
			tagNames[t] = struct{}{}
		}
	}
	stats.TotalTags = len(tagNames)

	size, err := r.store.Size()
	if err != nil {
		return RepoStats{}, err
	}
	stats.RepositorySize = humanSize(size)

	return stats, nil
}

func humanSize(n int64) string {
	size := float64(n)
	for _, unit := range []string{"B", "KB", "MB", "GB"} {
		if size < 1024 {
			return fmt.Sprintf("%.2f %s", size, unit)
		}
		size /= 1024
	}
	return fmt.Sprintf("%.2f TB", size)
}
