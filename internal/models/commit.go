package models

// DiffStats holds precomputed change counts between two snapshots.
type DiffStats struct {
	DomainsAdded    int `json:"domains_added"`
	DomainsRemoved  int `json:"domains_removed"`
	DomainsModified int `json:"domains_modified"`
	ConfigsChanged  int `json:"configs_changed"`
	SettingsChanged int `json:"settings_changed"`
}

// Empty reports whether the stats describe no change at all.
func (s DiffStats) Empty() bool {
	return s == DiffStats{}
}

// Commit is an immutable record of a full configuration snapshot plus
// metadata and diff stats against its parent. The only permitted mutation
// after creation is appending to Tags.
type Commit struct {
	Hash            string         `json:"hash"`
	Timestamp       string         `json:"timestamp"`
	Author          string         `json:"author"`
	Message         string         `json:"message"`
	Description     string         `json:"description"`
	Tags            []string       `json:"tags"`
	Parent          string         `json:"parent,omitempty"`
	FilesChanged    []string       `json:"files_changed"`
	DomainsSnapshot Snapshot       `json:"domains_snapshot"`
	ConfigSnapshot  map[string]any `json:"config_snapshot"`
	Stats           DiffStats      `json:"stats"`
}

// ShortHash returns the first 7 characters of the commit hash.
func (c Commit) ShortHash() string {
	if len(c.Hash) < 7 {
		return c.Hash
	}
	return c.Hash[:7]
}

// HasTag reports whether the commit carries the given tag.
func (c Commit) HasTag(tag string) bool {
	for _, t := range c.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
