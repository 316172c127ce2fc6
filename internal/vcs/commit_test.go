package vcs_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbierma/confgit/internal/testutil"
	"github.com/mbierma/confgit/internal/vcs"
)

func TestCommitRecordsSnapshot(t *testing.T) {
	repo, provider := newTestRepo(t)
	provider.SetDomain(domain("a.com", 3000), "server a")

	commit, err := repo.Commit("add a.com", "", "admin", nil)
	require.NoError(t, err)

	assert.NotEmpty(t, commit.Hash)
	assert.Empty(t, commit.Parent)
	assert.Equal(t, "add a.com", commit.Message)
	assert.Equal(t, 1, commit.Stats.DomainsAdded)
	assert.Equal(t, []string{"a.com"}, commit.FilesChanged)

	status, err := repo.Status()
	require.NoError(t, err)
	assert.Equal(t, 1, status.TotalCommits)

	// Commit is the branch head
	branches, _, err := repo.Branches()
	require.NoError(t, err)
	assert.Equal(t, commit.Hash, branches[0].CurrentCommit)

	// Portable archive exists for the commit
	_, err = os.Stat(repo.Store().ObjectPath(commit.Hash))
	assert.NoError(t, err)
}

func TestCommitHashesAreUniqueForIdenticalSnapshots(t *testing.T) {
	repo, provider := newTestRepo(t)
	provider.SetDomain(domain("a.com", 3000), "server a")

	seen := map[string]bool{}
	for i := 0; i < 10; i++ {
		commit, err := repo.Commit("same state", "", "admin", nil)
		require.NoError(t, err)
		assert.False(t, seen[commit.Hash], "duplicate hash %s", commit.Hash)
		seen[commit.Hash] = true
	}
}

func TestEmptyChangeCommitAllowed(t *testing.T) {
	repo, provider := newTestRepo(t)
	provider.SetDomain(domain("a.com", 3000), "server a")

	first, err := repo.Commit("add a.com", "", "admin", nil)
	require.NoError(t, err)

	second, err := repo.Commit("no-op", "", "admin", nil)
	require.NoError(t, err)

	assert.Equal(t, first.Hash, second.Parent)
	assert.True(t, second.Stats.Empty(), "expected zero stats, got %+v", second.Stats)

	status, err := repo.Status()
	require.NoError(t, err)
	assert.Equal(t, 2, status.TotalCommits)
}

func TestCommitStatsAgainstParent(t *testing.T) {
	repo, provider := newTestRepo(t)
	provider.SetDomain(domain("a.com", 3000), "server a")
	_, err := repo.Commit("add a.com", "", "admin", nil)
	require.NoError(t, err)

	provider.SetDomain(domain("b.com", 4000), "server b")
	provider.SetDomain(domain("a.com", 3001), "server a v2")
	commit, err := repo.Commit("add b.com, move a.com", "", "admin", nil)
	require.NoError(t, err)

	assert.Equal(t, 1, commit.Stats.DomainsAdded)
	assert.Equal(t, 1, commit.Stats.DomainsModified)
	assert.Equal(t, 0, commit.Stats.DomainsRemoved)
	assert.Equal(t, 2, commit.Stats.ConfigsChanged)
}

func TestCommitParentIsGlobalLogTailAfterSwitch(t *testing.T) {
	repo, provider := newTestRepo(t)

	provider.SetDomain(domain("a.com", 3000), "server a")
	_, err := repo.Commit("first", "", "admin", nil)
	require.NoError(t, err)

	_, err = repo.CreateBranch("checkpoint", "")
	require.NoError(t, err)

	provider.SetDomain(domain("b.com", 4000), "server b")
	second, err := repo.Commit("second", "", "admin", nil)
	require.NoError(t, err)

	// Switching records a safety commit while the branch head is behind the
	// tail; its parent must still be the newest commit of the shared log.
	require.NoError(t, repo.SwitchBranch("checkpoint"))

	commits, err := repo.Log(0, "")
	require.NoError(t, err)
	safety := commits[len(commits)-1]
	assert.Equal(t, second.Hash, safety.Parent)
	assert.True(t, safety.Stats.Empty(), "pre-switch state matches the tail, stats must be zero")
}

func TestCommitCaptureFailure(t *testing.T) {
	repo, provider := newTestRepo(t)
	provider.CaptureErr = testutil.ErrBoom

	_, err := repo.Commit("doomed", "", "admin", nil)
	assert.ErrorIs(t, err, vcs.ErrCaptureFailed)

	// No partial state left behind
	status := mustStatusWithoutCapture(t, repo, provider)
	assert.Equal(t, 0, status.TotalCommits)
}

func mustStatusWithoutCapture(t *testing.T, repo *vcs.Repo, provider *testutil.FakeProvider) vcs.Status {
	t.Helper()
	provider.CaptureErr = nil
	status, err := repo.Status()
	require.NoError(t, err)
	return status
}
