package vcs_test

import (
	"archive/tar"
	"compress/gzip"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mbierma/confgit/internal/models"
	"github.com/mbierma/confgit/internal/vcs"
)

func readArchive(t *testing.T, path string) map[string][]byte {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	gz, err := gzip.NewReader(f)
	require.NoError(t, err)
	defer gz.Close()

	entries := map[string][]byte{}
	tr := tar.NewReader(gz)
	for {
		header, err := tr.Next()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		data, err := io.ReadAll(tr)
		require.NoError(t, err)
		entries[header.Name] = data
	}
	return entries
}

func TestCommitWritesObjectArchive(t *testing.T) {
	repo, provider := newTestRepo(t)
	provider.SetDomain(domain("a.com", 3000), "server { listen 80; }")
	provider.Current.Config["email"] = "ops@example.com"

	commit, err := repo.Commit("add a.com", "", "admin", nil)
	require.NoError(t, err)

	entries := readArchive(t, repo.Store().ObjectPath(commit.Hash))

	var domains []models.Domain
	require.NoError(t, json.Unmarshal(entries["backup/domains.json"], &domains))
	require.Len(t, domains, 1)
	assert.Equal(t, "a.com", domains[0].Name)

	var settings map[string]any
	require.NoError(t, json.Unmarshal(entries["backup/config.json"], &settings))
	assert.Equal(t, "ops@example.com", settings["email"])

	assert.Equal(t, "server { listen 80; }", string(entries["backup/nginx/a.com.conf"]))
}

func TestExportToPath(t *testing.T) {
	repo, provider := newTestRepo(t)
	provider.SetDomain(domain("a.com", 3000), "server a")

	commit, err := repo.Commit("add a.com", "", "admin", nil)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "export.tar.gz")
	exported, err := repo.Export(commit.Hash[:7], out)
	require.NoError(t, err)
	assert.Equal(t, commit.Hash, exported.Hash)

	entries := readArchive(t, out)
	assert.Contains(t, entries, "backup/domains.json")
	assert.Contains(t, entries, "backup/config.json")
	assert.Contains(t, entries, "backup/nginx/a.com.conf")
}

func TestExportUnknownCommit(t *testing.T) {
	repo, _ := newTestRepo(t)
	_, err := repo.Export("deadbeef", filepath.Join(t.TempDir(), "x.tar.gz"))
	assert.ErrorIs(t, err, vcs.ErrNotFound)
}
