package models

// Snapshot is the full captured value of the live configuration at a point
// in time: the domain list, the free-form settings mapping, and the generated
// NGINX config text keyed by domain name.
//
// Snapshots are treated as values. They are compared for equality by the diff
// engine and never mutated once captured.
type Snapshot struct {
	Domains      []Domain          `json:"domains"`
	Config       map[string]any    `json:"config"`
	NginxConfigs map[string]string `json:"nginx_configs"`
	Timestamp    string            `json:"timestamp"`
}

// DomainByName returns the named domain and whether it exists.
func (s Snapshot) DomainByName(name string) (Domain, bool) {
	for _, d := range s.Domains {
		if d.Name == name {
			return d, true
		}
	}
	return Domain{}, false
}

// ArtifactNames returns the names of all generated configs in the snapshot.
func (s Snapshot) ArtifactNames() []string {
	names := make([]string, 0, len(s.NginxConfigs))
	for name := range s.NginxConfigs {
		names = append(names, name)
	}
	return names
}
