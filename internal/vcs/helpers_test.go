package vcs_test

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mbierma/confgit/internal/models"
	"github.com/mbierma/confgit/internal/testutil"
	"github.com/mbierma/confgit/internal/vcs"
)

func newTestRepo(t *testing.T) (*vcs.Repo, *testutil.FakeProvider) {
	t.Helper()

	provider := testutil.NewFakeProvider()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	repo, err := vcs.Open(testutil.StoreRoot(t), provider, vcs.WithLogger(logger))
	require.NoError(t, err)

	return repo, provider
}

func domain(name string, port int) models.Domain {
	return models.Domain{Name: name, Port: port, SSL: true}
}

func snapshotWith(domains ...models.Domain) models.Snapshot {
	snap := models.Snapshot{
		Domains:      domains,
		Config:       map[string]any{},
		NginxConfigs: map[string]string{},
	}
	for _, d := range domains {
		snap.NginxConfigs[d.Name] = "server { listen 80; server_name " + d.Name + "; }\n"
	}
	return snap
}
