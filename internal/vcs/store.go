package vcs

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mbierma/confgit/internal/models"
)

const (
	commitsFile  = "commits.json"
	branchesFile = "branches.json"
	headFile     = "HEAD"
	commitsDir   = "commits"
	tagsDir      = "tags"
	objectsDir   = "objects"

	// MainBranch always exists and can never be deleted.
	MainBranch = "main"

	tempFilePrefix = "confgit-tmp-"
)

// Store owns the on-disk repository layout and the raw read/write of
// persisted records. All writes go through a temp-file-then-rename cycle so a
// crash mid-write never leaves a half-written record visible.
type Store struct {
	root string
}

// NewStore creates a store handle rooted at root. Call Initialize before use.
func NewStore(root string) *Store {
	return &Store{root: root}
}

// Root returns the store's root directory.
func (s *Store) Root() string {
	return s.root
}

// Initialize creates the directory tree and seeds the empty commit log, the
// main branch, and the HEAD file, but only where absent. Calling it on an
// already-initialized store is a no-op and never discards existing data.
func (s *Store) Initialize() error {
	for _, dir := range []string{s.root, s.path(commitsDir), s.path(tagsDir), s.path(objectsDir)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create %s: %w: %v", dir, ErrPersistFailed, err)
		}
	}

	if _, err := os.Stat(s.path(commitsFile)); os.IsNotExist(err) {
		if err := s.SaveCommits([]models.Commit{}); err != nil {
			return err
		}
	}

	if _, err := os.Stat(s.path(branchesFile)); os.IsNotExist(err) {
		main := models.Branch{
			Name:        MainBranch,
			CreatedAt:   time.Now().Format(time.RFC3339),
			Description: "Main configuration branch",
		}
		if err := s.SaveBranches([]models.Branch{main}); err != nil {
			return err
		}
	}

	if _, err := os.Stat(s.path(headFile)); os.IsNotExist(err) {
		if err := s.SetCurrentBranch(MainBranch); err != nil {
			return err
		}
	}

	return nil
}

// LoadCommits reads the full commit log in creation order.
func (s *Store) LoadCommits() ([]models.Commit, error) {
	var commits []models.Commit
	if err := s.loadJSON(commitsFile, &commits); err != nil {
		return nil, err
	}
	return commits, nil
}

// SaveCommits replaces the full commit log.
func (s *Store) SaveCommits(commits []models.Commit) error {
	return s.saveJSON(commitsFile, commits)
}

// LoadBranches reads all branch records.
func (s *Store) LoadBranches() ([]models.Branch, error) {
	var branches []models.Branch
	if err := s.loadJSON(branchesFile, &branches); err != nil {
		return nil, err
	}
	return branches, nil
}

// SaveBranches replaces all branch records.
func (s *Store) SaveBranches(branches []models.Branch) error {
	return s.saveJSON(branchesFile, branches)
}

// CurrentBranch returns the active branch name from HEAD, defaulting to main
// when HEAD is missing.
func (s *Store) CurrentBranch() (string, error) {
	data, err := os.ReadFile(s.path(headFile))
	if os.IsNotExist(err) {
		return MainBranch, nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read HEAD: %w: %v", ErrPersistFailed, err)
	}
	return strings.TrimSpace(string(data)), nil
}

// SetCurrentBranch points HEAD at the named branch.
func (s *Store) SetCurrentBranch(name string) error {
	if err := writeFileAtomic(s.path(headFile), []byte(name), 0o644); err != nil {
		return fmt.Errorf("failed to write HEAD: %w: %v", ErrPersistFailed, err)
	}
	return nil
}

// WriteCommitRecord writes the standalone per-commit record used for direct
// lookup, duplicating the log entry.
func (s *Store) WriteCommitRecord(c models.Commit) error {
	return s.saveJSON(filepath.Join(commitsDir, c.Hash+".json"), c)
}

// WriteTag writes the tag record keyed by tag name. An existing record for
// the same name is replaced.
func (s *Store) WriteTag(t models.Tag) error {
	return s.saveJSON(filepath.Join(tagsDir, t.Name+".json"), t)
}

// LoadTag reads a tag record by name.
func (s *Store) LoadTag(name string) (models.Tag, error) {
	var t models.Tag
	data, err := os.ReadFile(s.path(filepath.Join(tagsDir, name+".json")))
	if os.IsNotExist(err) {
		return t, fmt.Errorf("tag '%s': %w", name, ErrNotFound)
	}
	if err != nil {
		return t, fmt.Errorf("failed to read tag %s: %w: %v", name, ErrPersistFailed, err)
	}
	if err := json.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("failed to parse tag %s: %w: %v", name, ErrPersistFailed, err)
	}
	return t, nil
}

// ListTags returns all tag records sorted by file name.
func (s *Store) ListTags() ([]models.Tag, error) {
	entries, err := os.ReadDir(s.path(tagsDir))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list tags: %w: %v", ErrPersistFailed, err)
	}

	var tags []models.Tag
	for _, entry := range entries {
		name, ok := strings.CutSuffix(entry.Name(), ".json")
		if !ok {
			continue
		}
		t, err := s.LoadTag(name)
		if err != nil {
			return nil, err
		}
		tags = append(tags, t)
	}
	return tags, nil
}

// ObjectPath returns the path of the portable archive for a commit hash.
func (s *Store) ObjectPath(hash string) string {
	return s.path(filepath.Join(objectsDir, hash+".tar.gz"))
}

// Size returns the total on-disk size of the store in bytes.
func (s *Store) Size() (int64, error) {
	var total int64
	err := filepath.WalkDir(s.root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		total += info.Size()
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to measure store: %w: %v", ErrPersistFailed, err)
	}
	return total, nil
}

func (s *Store) path(name string) string {
	return filepath.Join(s.root, name)
}

func (s *Store) loadJSON(name string, v any) error {
	data, err := os.ReadFile(s.path(name))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w: %v", name, ErrPersistFailed, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w: %v", name, ErrPersistFailed, err)
	}
	return nil
}

func (s *Store) saveJSON(name string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w: %v", name, ErrPersistFailed, err)
	}
	if err := writeFileAtomic(s.path(name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w: %v", name, ErrPersistFailed, err)
	}
	return nil
}

// writeFileAtomic writes data to a temp file in the target directory and
// renames it into place, so readers never observe a partial write.
func writeFileAtomic(filename string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(filename)

	tmpFile, err := os.CreateTemp(dir, tempFilePrefix+"*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmpFile.Name())

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Chmod(tmpFile.Name(), perm); err != nil {
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	if err := os.Rename(tmpFile.Name(), filename); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", filename, err)
	}

	return nil
}
