package pack

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/wallpack-dev/wallpack/internal/collection"
	"github.com/wallpack-dev/wallpack/internal/manifest"
)

const builderMeta = `{
  "name": "Jo Doe",
  "uname": "jodoe",
  "email": "jo@example.org",
  "uri": "https://example.org/~jo",
  "wallpapers": [
    {"i": 0, "f": "png", "t": "Sunset", "l": "CC0"}
  ]
}`

func resolveFixture(t *testing.T) (string, []collection.Entry) {
	t.Helper()

	root := t.TempDir()
	dir := filepath.Join(root, collection.ContributorsDir, "jodoe")
	if err := os.MkdirAll(dir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, manifest.MetaFileName), []byte(builderMeta), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "0.png"), []byte("fake png bytes"), 0644); err != nil {
		t.Fatal(err)
	}

	groups := collection.GroupByContributor([]manifest.Selection{{Username: "jodoe", Index: 0}})
	entries, err := collection.Resolve(root, "autumn", groups)
	if err != nil {
		t.Fatalf("Resolve error: %v", err)
	}
	return root, entries
}

func TestBuild_NormalVariant(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("build test assumes Unix symlinks")
	}

	_, entries := resolveFixture(t)
	dest := t.TempDir()

	b := &Builder{Dest: dest, Variant: Normal, Jobs: 2}
	if err := b.Build("autumn", entries); err != nil {
		t.Fatalf("Build error: %v", err)
	}

	entryName := entries[0].EntryName

	// Skeleton directories.
	for _, dir := range destDirs {
		if _, err := os.Stat(filepath.Join(dest, dir)); err != nil {
			t.Errorf("missing skeleton dir %s: %v", dir, err)
		}
	}

	// Image copied into place.
	installed := filepath.Join(dest, "usr/share/backgrounds", entryName, entryName+".png")
	data, err := os.ReadFile(installed)
	if err != nil {
		t.Fatalf("installed image: %v", err)
	}
	if string(data) != "fake png bytes" {
		t.Errorf("installed image content = %q", data)
	}

	// KDE metadata.
	desktop, err := os.ReadFile(filepath.Join(dest, "usr/share/wallpapers", entryName, "metadata.desktop"))
	if err != nil {
		t.Fatalf("metadata.desktop: %v", err)
	}
	if !strings.Contains(string(desktop), "Name=Sunset") {
		t.Errorf("metadata.desktop missing title:\n%s", desktop)
	}
	if !strings.Contains(string(desktop), "X-KDE-PluginInfo-Author=Jo Doe") {
		t.Errorf("metadata.desktop missing artist:\n%s", desktop)
	}

	// Screenshot symlink points at the installed path.
	screenshot := filepath.Join(dest, "usr/share/wallpapers", entryName, "screenshot.png")
	target, err := os.Readlink(screenshot)
	if err != nil {
		t.Fatalf("screenshot symlink: %v", err)
	}
	if target != entries[0].ImagePath {
		t.Errorf("screenshot -> %q, want %q", target, entries[0].ImagePath)
	}

	// One symlink per advertised resolution.
	images, err := os.ReadDir(filepath.Join(dest, "usr/share/wallpapers", entryName, "contents/images"))
	if err != nil {
		t.Fatal(err)
	}
	if len(images) != len(mainlineResolutions) {
		t.Errorf("resolution symlinks = %d, want %d", len(images), len(mainlineResolutions))
	}

	// One symlink per Xfce ratio.
	xfce, err := os.ReadDir(filepath.Join(dest, "usr/share/backgrounds/xfce"))
	if err != nil {
		t.Fatal(err)
	}
	if len(xfce) != len(xfceRatios) {
		t.Errorf("xfce symlinks = %d, want %d", len(xfce), len(xfceRatios))
	}

	// Album config plus gnome/mate symlinks.
	albumXML := filepath.Join(dest, "usr/share/background-properties/Autumn.xml")
	xml, err := os.ReadFile(albumXML)
	if err != nil {
		t.Fatalf("album config: %v", err)
	}
	if !strings.Contains(string(xml), "<name>Sunset</name>") {
		t.Errorf("album config missing entry:\n%s", xml)
	}
	for _, dir := range []string{"usr/share/gnome-background-properties", "usr/share/mate-background-properties"} {
		link := filepath.Join(dest, dir, "Autumn.xml")
		if _, err := os.Readlink(link); err != nil {
			t.Errorf("album symlink in %s: %v", dir, err)
		}
	}
}

func TestParseVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    Variant
		wantErr bool
	}{
		{"normal", Normal, false},
		{"Retro", Retro, false},
		{"NORMAL", Normal, false},
		{"sepia", Normal, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseVariant(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseVariant error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseVariant(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
