package vcs

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"github.com/mbierma/confgit/internal/models"
)

// DefaultDiffMaxLines caps the unified diff emitted per changed config.
const DefaultDiffMaxLines = 50

// DiffStats computes entity, artifact, and settings change counts between a
// base and a target snapshot.
func DiffStats(base, target models.Snapshot) models.DiffStats {
	var stats models.DiffStats

	baseDomains := domainsByName(base)
	targetDomains := domainsByName(target)

	for name := range targetDomains {
		if _, ok := baseDomains[name]; !ok {
			stats.DomainsAdded++
		}
	}
	for name, old := range baseDomains {
		updated, ok := targetDomains[name]
		if !ok {
			stats.DomainsRemoved++
			continue
		}
		if old != updated {
			stats.DomainsModified++
		}
	}

	for name := range union(base.NginxConfigs, target.NginxConfigs) {
		if base.NginxConfigs[name] != target.NginxConfigs[name] {
			stats.ConfigsChanged++
		}
	}

	if !reflect.DeepEqual(base.Config, target.Config) {
		stats.SettingsChanged = 1
	}

	return stats
}

// DiffText renders a human-readable report of the differences between two
// snapshots: domain additions, removals, and field-level modifications,
// followed by a unified diff per changed config. Domains and configs are
// listed in sorted name order so output is reproducible across runs; each
// config diff is capped at maxLines lines.
func DiffText(labelA string, a models.Snapshot, labelB string, b models.Snapshot, maxLines int) string {
	if maxLines <= 0 {
		maxLines = DefaultDiffMaxLines
	}

	lines := []string{fmt.Sprintf("diff %s..%s", labelA, labelB), ""}

	domainsA := domainsByName(a)
	domainsB := domainsByName(b)

	for _, name := range sortedKeys(union(domainsA, domainsB)) {
		da, inA := domainsA[name]
		db, inB := domainsB[name]

		switch {
		case inA && !inB:
			lines = append(lines, fmt.Sprintf("--- Domain removed: %s", name))
			lines = append(lines, fmt.Sprintf("    Port: %d, SSL: %t", da.Port, da.SSL))
		case !inA && inB:
			lines = append(lines, fmt.Sprintf("+++ Domain added: %s", name))
			lines = append(lines, fmt.Sprintf("    Port: %d, SSL: %t", db.Port, db.SSL))
		case da != db:
			lines = append(lines, fmt.Sprintf("~~~ Domain modified: %s", name))
			if da.Port != db.Port {
				lines = append(lines, fmt.Sprintf("    Port: %d -> %d", da.Port, db.Port))
			}
			if da.SSL != db.SSL {
				lines = append(lines, fmt.Sprintf("    SSL: %t -> %t", da.SSL, db.SSL))
			}
			if da.BackendIP != db.BackendIP {
				lines = append(lines, fmt.Sprintf("    Backend: %s -> %s", orDash(da.BackendIP), orDash(db.BackendIP)))
			}
			if da.Wildcard != db.Wildcard {
				lines = append(lines, fmt.Sprintf("    Wildcard: %t -> %t", da.Wildcard, db.Wildcard))
			}
			if da.CustomConfig != db.CustomConfig {
				lines = append(lines, fmt.Sprintf("    Custom config: %s", "changed"))
			}
		}
	}

	for _, name := range sortedKeys(union(a.NginxConfigs, b.NginxConfigs)) {
		oldText := a.NginxConfigs[name]
		newText := b.NginxConfigs[name]
		if oldText == newText {
			continue
		}

		lines = append(lines, "", fmt.Sprintf("Config: %s", name))
		unified, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
			A:        difflib.SplitLines(oldText),
			B:        difflib.SplitLines(newText),
			FromFile: fmt.Sprintf("%s (%s)", name, labelA),
			ToFile:   fmt.Sprintf("%s (%s)", name, labelB),
			Context:  3,
		})
		if err != nil {
			lines = append(lines, fmt.Sprintf("  (failed to diff: %v)", err))
			continue
		}

		diffLines := strings.Split(strings.TrimRight(unified, "\n"), "\n")
		if len(diffLines) > maxLines {
			diffLines = diffLines[:maxLines]
		}
		lines = append(lines, diffLines...)
	}

	return strings.Join(lines, "\n")
}

func domainsByName(s models.Snapshot) map[string]models.Domain {
	m := make(map[string]models.Domain, len(s.Domains))
	for _, d := range s.Domains {
		m[d.Name] = d
	}
	return m
}

func union[V any](a, b map[string]V) map[string]struct{} {
	names := make(map[string]struct{}, len(a)+len(b))
	for name := range a {
		names[name] = struct{}{}
	}
	for name := range b {
		names[name] = struct{}{}
	}
	return names
}

func sortedKeys(m map[string]struct{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
