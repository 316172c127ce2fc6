package vcs

import (
	"fmt"
	"time"

	"github.com/mbierma/confgit/internal/models"
)

// Branches returns all branch records and the name of the active branch.
func (r *Repo) Branches() ([]models.Branch, string, error) {
	branches, err := r.store.LoadBranches()
	if err != nil {
		return nil, "", err
	}
	current, err := r.store.CurrentBranch()
	if err != nil {
		return nil, "", err
	}
	return branches, current, nil
}

// CreateBranch records a new named checkpoint pointing at the current tail of
// the commit log. The head may be empty on a fresh repository.
func (r *Repo) CreateBranch(name, description string) (models.Branch, error) {
	branches, err := r.store.LoadBranches()
	if err != nil {
		return models.Branch{}, err
	}

	for _, b := range branches {
		if b.Name == name {
			return models.Branch{}, fmt.Errorf("branch '%s': %w", name, ErrAlreadyExists)
		}
	}

	commits, err := r.store.LoadCommits()
	if err != nil {
		return models.Branch{}, err
	}

	head := ""
	if len(commits) > 0 {
		head = commits[len(commits)-1].Hash
	}

	branch := models.Branch{
		Name:          name,
		CurrentCommit: head,
		CreatedAt:     time.Now().Format(time.RFC3339),
		Description:   description,
	}

	branches = append(branches, branch)
	if err := r.store.SaveBranches(branches); err != nil {
		return models.Branch{}, err
	}

	r.logger.Info("created branch", "name", name, "head", head)
	return branch, nil
}

// DeleteBranch removes a branch. The main branch and the currently
// checked-out branch are protected.
func (r *Repo) DeleteBranch(name string) error {
	current, err := r.store.CurrentBranch()
	if err != nil {
		return err
	}

	if name == MainBranch {
		return fmt.Errorf("cannot delete main branch: %w", ErrProtected)
	}
	if name == current {
		return fmt.Errorf("cannot delete current branch '%s': %w", name, ErrProtected)
	}

	branches, err := r.store.LoadBranches()
	if err != nil {
		return err
	}

	kept := branches[:0]
	found := false
	for _, b := range branches {
		if b.Name == name {
			found = true
			continue
		}
		kept = append(kept, b)
	}
	if !found {
		return fmt.Errorf("branch '%s': %w", name, ErrNotFound)
	}

	if err := r.store.SaveBranches(kept); err != nil {
		return err
	}

	r.logger.Info("deleted branch", "name", name)
	return nil
}

// SwitchBranch points HEAD at the named branch and restores the snapshot at
// the branch's recorded head. An empty head makes the restore a no-op.
// Switching changes which name future commits move; the shared linear log is
// unaffected.
func (r *Repo) SwitchBranch(name string) error {
	branches, err := r.store.LoadBranches()
	if err != nil {
		return err
	}

	var target *models.Branch
	for i := range branches {
		if branches[i].Name == name {
			target = &branches[i]
			break
		}
	}
	if target == nil {
		return fmt.Errorf("branch '%s': %w", name, ErrNotFound)
	}

	if err := r.store.SetCurrentBranch(name); err != nil {
		return err
	}

	if target.CurrentCommit != "" {
		if _, err := r.Checkout(target.CurrentCommit); err != nil {
			return fmt.Errorf("failed to restore branch head: %w", err)
		}
	}

	r.logger.Info("switched branch", "name", name)
	return nil
}
