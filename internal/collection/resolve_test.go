package collection

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/wallpack-dev/wallpack/internal/manifest"
)

func writeContributor(t *testing.T, root, username, meta string) {
	t.Helper()
	dir := filepath.Join(root, ContributorsDir, username)
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, manifest.MetaFileName), []byte(meta), 0644); err != nil {
		t.Fatal(err)
	}
}

const jodoeMeta = `{
  "name": "Jo Doe",
  "uname": "jodoe",
  "email": "jo@example.org",
  "uri": "https://example.org/~jo",
  "wallpapers": [
    {"i": 0, "f": "png", "t": "Sunset", "l": "CC0"},
    {"i": 1, "f": "jpg", "t": "Forest", "l": "CC-BY-4.0"}
  ]
}`

const anaMeta = `{
  "name": "Ana",
  "uname": "ana",
  "email": "ana@example.org",
  "uri": "https://example.org/~ana",
  "wallpapers": [
    {"i": 0, "f": "png", "t": "Blue Hour", "l": "CC0"}
  ]
}`

func TestGroupByContributor(t *testing.T) {
	selections := []manifest.Selection{
		{Username: "jodoe", Index: 1},
		{Username: "ana", Index: 0},
		{Username: "jodoe", Index: 0},
		{Username: "jodoe", Index: 1}, // duplicate
	}

	groups := GroupByContributor(selections)
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}

	if groups[0].Username != "ana" || groups[1].Username != "jodoe" {
		t.Errorf("groups not sorted by username: %+v", groups)
	}
	if len(groups[1].Indices) != 2 || groups[1].Indices[0] != 0 || groups[1].Indices[1] != 1 {
		t.Errorf("jodoe indices = %v, want [0 1]", groups[1].Indices)
	}
}

func TestResolve(t *testing.T) {
	root := t.TempDir()
	writeContributor(t, root, "jodoe", jodoeMeta)
	writeContributor(t, root, "ana", anaMeta)

	groups := GroupByContributor([]manifest.Selection{
		{Username: "jodoe", Index: 0},
		{Username: "jodoe", Index: 1},
		{Username: "ana", Index: 0},
	})

	entries, err := Resolve(root, "community-1", groups)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	// ana sorts first.
	e := entries[0]
	if e.Username != "ana" || e.Artist != "Ana" || e.Title != "Blue Hour" {
		t.Errorf("entries[0] = %+v", e)
	}
	if e.EntryName != "community-1--ana--BlueHour" {
		t.Errorf("EntryName = %q", e.EntryName)
	}
	if e.ImagePath != "/usr/share/backgrounds/community-1--ana--BlueHour/community-1--ana--BlueHour.png" {
		t.Errorf("ImagePath = %q", e.ImagePath)
	}
	if got, want := e.SourceFile(), filepath.Join(root, ContributorsDir, "ana", "0.png"); got != want {
		t.Errorf("SourceFile = %q, want %q", got, want)
	}

	if entries[1].Index != 0 || entries[2].Index != 1 {
		t.Errorf("jodoe entries out of index order: %+v", entries[1:])
	}
}

func TestResolve_UnknownContributor(t *testing.T) {
	root := t.TempDir()
	writeContributor(t, root, "jodoe", jodoeMeta)

	_, err := Resolve(root, "p", []Group{{Username: "ghost", Indices: []int{0}}})
	if err == nil {
		t.Fatal("expected error for unknown contributor, got nil")
	}
}

func TestResolve_MissingIndex(t *testing.T) {
	root := t.TempDir()
	writeContributor(t, root, "jodoe", jodoeMeta)

	_, err := Resolve(root, "p", []Group{{Username: "jodoe", Indices: []int{7}}})
	if err == nil {
		t.Fatal("expected error for missing index, got nil")
	}
}

func TestSummarize(t *testing.T) {
	entries := []Entry{
		{Username: "ana"},
		{Username: "jodoe"},
		{Username: "jodoe"},
	}

	p := Summarize("community-1", entries)
	if p.Total != 3 {
		t.Errorf("Total = %d, want 3", p.Total)
	}
	if p.PerContributor["jodoe"] != 2 || p.PerContributor["ana"] != 1 {
		t.Errorf("PerContributor = %v", p.PerContributor)
	}
}
