package collection

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/wallpack-dev/wallpack/internal/manifest"
)

// ContributorsDir is the repository directory holding one subdirectory per
// contributor.
const ContributorsDir = "contributors"

// Group is the set of wallpaper indices a pack selects from one contributor.
type Group struct {
	Username string
	Indices  []int // sorted, deduplicated
}

// Entry is a fully resolved wallpaper: contributor metadata joined with the
// selected submission and the derived install names.
type Entry struct {
	Username  string
	Artist    string
	Email     string
	Index     int
	Format    string
	Title     string
	License   string
	Tags      []string
	EntryName string // e.g. "community-1--jodoe--Sunset"
	SourceDir string // contributors/<username>
	ImagePath string // absolute install path under /usr/share/backgrounds
}

// SourceFile returns the path of the original image inside the repository.
func (e Entry) SourceFile() string {
	return filepath.Join(e.SourceDir, fmt.Sprintf("%d.%s", e.Index, e.Format))
}

// GroupByContributor collapses pack selections into per-contributor groups,
// ordered by username with indices sorted and deduplicated.
func GroupByContributor(selections []manifest.Selection) []Group {
	byUser := make(map[string]map[int]struct{})
	for _, s := range selections {
		if byUser[s.Username] == nil {
			byUser[s.Username] = make(map[int]struct{})
		}
		byUser[s.Username][s.Index] = struct{}{}
	}

	usernames := make([]string, 0, len(byUser))
	for u := range byUser {
		usernames = append(usernames, u)
	}
	sort.Strings(usernames)

	groups := make([]Group, 0, len(usernames))
	for _, u := range usernames {
		indices := make([]int, 0, len(byUser[u]))
		for i := range byUser[u] {
			indices = append(indices, i)
		}
		sort.Ints(indices)
		groups = append(groups, Group{Username: u, Indices: indices})
	}
	return groups
}

// Resolve loads every selected contributor's metadata and returns the
// resolved entries, ordered by username then index. A selection that names
// an unknown contributor or a missing wallpaper index is an error.
func Resolve(repoRoot, packName string, groups []Group) ([]Entry, error) {
	var entries []Entry

	for _, g := range groups {
		dir := filepath.Join(repoRoot, ContributorsDir, g.Username)
		if _, err := os.Stat(dir); err != nil {
			return nil, fmt.Errorf("contributor %q: %w", g.Username, err)
		}

		c, err := manifest.ParseContributor(filepath.Join(dir, manifest.MetaFileName))
		if err != nil {
			return nil, err
		}

		for _, index := range g.Indices {
			w, ok := c.Find(index)
			if !ok {
				return nil, fmt.Errorf("contributor %q has no wallpaper with index %d", g.Username, index)
			}

			entryName := EntryName(packName, g.Username, w.Title)
			entries = append(entries, Entry{
				Username:  g.Username,
				Artist:    c.Name,
				Email:     c.Email,
				Index:     w.Index,
				Format:    w.Format,
				Title:     w.Title,
				License:   w.License,
				Tags:      w.Tags,
				EntryName: entryName,
				SourceDir: dir,
				ImagePath: fmt.Sprintf("/usr/share/backgrounds/%s/%s.%s", entryName, entryName, w.Format),
			})
		}
	}

	return entries, nil
}

// Plan summarizes a resolved pack for display before or after a build.
type Plan struct {
	PackName       string
	Total          int
	PerContributor map[string]int
}

// Summarize builds a Plan from resolved entries.
func Summarize(packName string, entries []Entry) Plan {
	p := Plan{
		PackName:       packName,
		Total:          len(entries),
		PerContributor: make(map[string]int),
	}
	for _, e := range entries {
		p.PerContributor[e.Username]++
	}
	return p
}
