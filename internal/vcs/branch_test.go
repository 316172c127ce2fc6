package vcs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbierma/confgit/internal/vcs"
)

func TestCreateBranchAtLogTail(t *testing.T) {
	repo, provider := newTestRepo(t)
	provider.SetDomain(domain("a.com", 3000), "server a")
	commit, err := repo.Commit("add a.com", "", "admin", nil)
	require.NoError(t, err)

	branch, err := repo.CreateBranch("staging", "trial run")
	require.NoError(t, err)
	assert.Equal(t, commit.Hash, branch.CurrentCommit)
	assert.Equal(t, "trial run", branch.Description)
}

func TestCreateBranchOnEmptyRepo(t *testing.T) {
	repo, _ := newTestRepo(t)

	branch, err := repo.CreateBranch("staging", "")
	require.NoError(t, err)
	assert.Empty(t, branch.CurrentCommit)
}

func TestCreateBranchDuplicate(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.CreateBranch("staging", "")
	require.NoError(t, err)

	_, err = repo.CreateBranch("staging", "")
	assert.ErrorIs(t, err, vcs.ErrAlreadyExists)
}

func TestDeleteBranchProtection(t *testing.T) {
	repo, _ := newTestRepo(t)

	// main is always protected
	assert.ErrorIs(t, repo.DeleteBranch(vcs.MainBranch), vcs.ErrProtected)

	// Any other branch can be deleted while not checked out
	_, err := repo.CreateBranch("feature", "")
	require.NoError(t, err)
	assert.NoError(t, repo.DeleteBranch("feature"))
}

func TestDeleteCurrentBranchProtected(t *testing.T) {
	repo, provider := newTestRepo(t)
	provider.SetDomain(domain("a.com", 3000), "server a")
	_, err := repo.Commit("add a.com", "", "admin", nil)
	require.NoError(t, err)

	_, err = repo.CreateBranch("staging", "")
	require.NoError(t, err)
	require.NoError(t, repo.SwitchBranch("staging"))

	assert.ErrorIs(t, repo.DeleteBranch("staging"), vcs.ErrProtected)

	// Back on main, staging becomes deletable
	require.NoError(t, repo.SwitchBranch(vcs.MainBranch))
	assert.NoError(t, repo.DeleteBranch("staging"))
}

func TestDeleteUnknownBranch(t *testing.T) {
	repo, _ := newTestRepo(t)
	assert.ErrorIs(t, repo.DeleteBranch("ghost"), vcs.ErrNotFound)
}

func TestSwitchBranchUnknown(t *testing.T) {
	repo, _ := newTestRepo(t)
	assert.ErrorIs(t, repo.SwitchBranch("ghost"), vcs.ErrNotFound)
}

func TestSwitchBranchRestoresRecordedState(t *testing.T) {
	repo, provider := newTestRepo(t)

	provider.SetDomain(domain("a.com", 3000), "server a")
	_, err := repo.Commit("add a.com", "", "admin", nil)
	require.NoError(t, err)

	_, err = repo.CreateBranch("checkpoint", "")
	require.NoError(t, err)

	// Keep evolving on main
	provider.SetDomain(domain("b.com", 4000), "server b")
	_, err = repo.Commit("add b.com", "", "admin", nil)
	require.NoError(t, err)

	require.NoError(t, repo.SwitchBranch("checkpoint"))

	_, current, err := repo.Branches()
	require.NoError(t, err)
	assert.Equal(t, "checkpoint", current)

	// Live state is back to the checkpoint's single domain
	require.Len(t, provider.Current.Domains, 1)
	assert.Equal(t, "a.com", provider.Current.Domains[0].Name)
}

func TestSwitchToEmptyHeadBranchSkipsRestore(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.CreateBranch("fresh", "")
	require.NoError(t, err)
	require.NoError(t, repo.SwitchBranch("fresh"))

	status, err := repo.Status()
	require.NoError(t, err)
	assert.Equal(t, "fresh", status.Branch)
	assert.Equal(t, 0, status.TotalCommits)
}
