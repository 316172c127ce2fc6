package vcs

import (
	"archive/tar"
	"compress/gzip"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"time"

	"github.com/mbierma/confgit/internal/models"
)

// writeArchive serializes a snapshot into a portable tar.gz for cold storage:
// backup/domains.json, backup/config.json, and one backup/nginx/<name>.conf
// per generated config.
func writeArchive(filename string, snap models.Snapshot) error {
	outFile, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer outFile.Close()

	gzWriter := gzip.NewWriter(outFile)
	defer gzWriter.Close()

	tarWriter := tar.NewWriter(gzWriter)
	defer tarWriter.Close()

	domains, err := json.MarshalIndent(snap.Domains, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal domains: %w", err)
	}
	if err := addArchiveEntry(tarWriter, "backup/domains.json", domains); err != nil {
		return err
	}

	settings, err := json.MarshalIndent(snap.Config, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := addArchiveEntry(tarWriter, "backup/config.json", settings); err != nil {
		return err
	}

	for _, name := range artifactNames(snap) {
		entry := path.Join("backup", "nginx", name+".conf")
		if err := addArchiveEntry(tarWriter, entry, []byte(snap.NginxConfigs[name])); err != nil {
			return err
		}
	}

	return nil
}

func addArchiveEntry(tw *tar.Writer, name string, data []byte) error {
	header := &tar.Header{
		Name:    name,
		Mode:    0o644,
		Size:    int64(len(data)),
		ModTime: time.Now(),
	}
	if err := tw.WriteHeader(header); err != nil {
		return fmt.Errorf("failed to write archive header %s: %w", name, err)
	}
	if _, err := tw.Write(data); err != nil {
		return fmt.Errorf("failed to write archive entry %s: %w", name, err)
	}
	return nil
}

// Export writes the archived form of a commit's snapshot to outputPath,
// regenerating the packaging from the stored snapshot.
func (r *Repo) Export(ref, outputPath string) (models.Commit, error) {
	commits, err := r.store.LoadCommits()
	if err != nil {
		return models.Commit{}, err
	}

	commit, err := resolveCommit(commits, ref)
	if err != nil {
		return models.Commit{}, err
	}

	if err := writeArchive(outputPath, commit.DomainsSnapshot); err != nil {
		return models.Commit{}, fmt.Errorf("failed to export archive: %w: %v", ErrPersistFailed, err)
	}

	r.logger.Info("exported archive", "hash", commit.ShortHash(), "path", outputPath)
	return commit, nil
}
