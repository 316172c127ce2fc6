package vcs_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbierma/confgit/internal/models"
	"github.com/mbierma/confgit/internal/vcs"
)

func TestInitializeCreatesLayout(t *testing.T) {
	root := t.TempDir()
	store := vcs.NewStore(root)
	require.NoError(t, store.Initialize())

	for _, name := range []string{"commits.json", "branches.json", "HEAD", "commits", "tags", "objects"} {
		_, err := os.Stat(filepath.Join(root, name))
		assert.NoError(t, err, "missing %s", name)
	}

	commits, err := store.LoadCommits()
	require.NoError(t, err)
	assert.Empty(t, commits)

	branches, err := store.LoadBranches()
	require.NoError(t, err)
	require.Len(t, branches, 1)
	assert.Equal(t, vcs.MainBranch, branches[0].Name)
	assert.Empty(t, branches[0].CurrentCommit)

	current, err := store.CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, vcs.MainBranch, current)
}

func TestInitializeIsIdempotent(t *testing.T) {
	root := t.TempDir()
	store := vcs.NewStore(root)
	require.NoError(t, store.Initialize())

	// Seed some data, then re-initialize
	commits := []models.Commit{{Hash: "abc123", Message: "seed"}}
	require.NoError(t, store.SaveCommits(commits))
	require.NoError(t, store.SaveBranches([]models.Branch{
		{Name: vcs.MainBranch, CurrentCommit: "abc123"},
		{Name: "staging"},
	}))
	require.NoError(t, store.SetCurrentBranch("staging"))

	require.NoError(t, store.Initialize())

	got, err := store.LoadCommits()
	require.NoError(t, err)
	assert.Len(t, got, 1)

	branches, err := store.LoadBranches()
	require.NoError(t, err)
	assert.Len(t, branches, 2)

	current, err := store.CurrentBranch()
	require.NoError(t, err)
	assert.Equal(t, "staging", current)
}

func TestAtomicWritesLeaveNoTempFiles(t *testing.T) {
	root := t.TempDir()
	store := vcs.NewStore(root)
	require.NoError(t, store.Initialize())

	for i := 0; i < 5; i++ {
		require.NoError(t, store.SaveCommits([]models.Commit{{Hash: "h", Message: "m"}}))
	}

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	for _, e := range entries {
		assert.False(t, strings.HasPrefix(e.Name(), "confgit-tmp-"), "leftover temp file %s", e.Name())
	}
}

func TestLoadTagNotFound(t *testing.T) {
	store := vcs.NewStore(t.TempDir())
	require.NoError(t, store.Initialize())

	_, err := store.LoadTag("nope")
	assert.ErrorIs(t, err, vcs.ErrNotFound)
}
