package vcs

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/mbierma/confgit/internal/models"
)

// Commit captures the current live state and records it as a new commit on
// the shared log, updating the active branch's head as the final persisted
// step. Commits with no change against the parent are allowed; message
// validation is the caller's concern.
func (r *Repo) Commit(message, description, author string, tags []string) (models.Commit, error) {
	current, err := r.provider.Capture()
	if err != nil {
		return models.Commit{}, fmt.Errorf("%w: %v", ErrCaptureFailed, err)
	}

	commits, err := r.store.LoadCommits()
	if err != nil {
		return models.Commit{}, err
	}

	// Parent and diff baseline are always the tail of the single global log,
	// regardless of which branch is active.
	parentHash := ""
	parentState := emptySnapshot()
	if len(commits) > 0 {
		tail := commits[len(commits)-1]
		parentHash = tail.Hash
		parentState = tail.DomainsSnapshot
	}

	hash, err := commitHash(current)
	if err != nil {
		return models.Commit{}, err
	}

	if tags == nil {
		tags = []string{}
	}

	commit := models.Commit{
		Hash:            hash,
		Timestamp:       time.Now().Format(time.RFC3339),
		Author:          author,
		Message:         message,
		Description:     description,
		Tags:            tags,
		Parent:          parentHash,
		FilesChanged:    artifactNames(current),
		DomainsSnapshot: current,
		ConfigSnapshot:  current.Config,
		Stats:           DiffStats(parentState, current),
	}

	if err := r.store.WriteCommitRecord(commit); err != nil {
		return models.Commit{}, err
	}

	if err := writeArchive(r.store.ObjectPath(hash), current); err != nil {
		return models.Commit{}, fmt.Errorf("failed to write archive: %w: %v", ErrPersistFailed, err)
	}

	commits = append(commits, commit)
	if err := r.store.SaveCommits(commits); err != nil {
		return models.Commit{}, err
	}

	// Branch head update is the last persisted step; a failure before this
	// point leaves no new head behind.
	if err := r.setBranchHead(hash); err != nil {
		return models.Commit{}, err
	}

	r.logger.Info("created commit",
		"hash", commit.ShortHash(),
		"message", message,
		"domains", len(current.Domains))

	return commit, nil
}

func (r *Repo) setBranchHead(hash string) error {
	name, err := r.store.CurrentBranch()
	if err != nil {
		return err
	}
	branches, err := r.store.LoadBranches()
	if err != nil {
		return err
	}
	for i := range branches {
		if branches[i].Name == name {
			branches[i].CurrentCommit = hash
			break
		}
	}
	return r.store.SaveBranches(branches)
}

// artifactNames lists the generated config names in a snapshot, sorted so
// the persisted record is stable across runs.
func artifactNames(snap models.Snapshot) []string {
	names := snap.ArtifactNames()
	sort.Strings(names)
	return names
}

// commitHash derives the content identifier for a snapshot. The serialized
// snapshot is salted with the creation instant and a random nonce: the
// required property is uniqueness per commit event, not content addressing,
// so byte-identical snapshots committed twice still get distinct hashes.
func commitHash(snap models.Snapshot) (string, error) {
	payload, err := json.Marshal(snap)
	if err != nil {
		return "", fmt.Errorf("failed to serialize snapshot: %w: %v", ErrPersistFailed, err)
	}

	h := sha256.New()
	h.Write(payload)
	h.Write([]byte(time.Now().Format(time.RFC3339Nano)))
	h.Write([]byte(uuid.NewString()))
	return fmt.Sprintf("%x", h.Sum(nil)), nil
}
