package sources

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"
	"time"
)

func TestFreshnessMarkerRoundTrip(t *testing.T) {
	dir := t.TempDir()

	WriteFreshnessMarker(dir)
	got := ReadFreshnessMarker(dir)
	if got.IsZero() {
		t.Fatal("marker read back as zero time")
	}
	if time.Since(got) > time.Minute {
		t.Errorf("marker timestamp too old: %v", got)
	}
}

func TestReadFreshnessMarker_Missing(t *testing.T) {
	if got := ReadFreshnessMarker(t.TempDir()); !got.IsZero() {
		t.Errorf("missing marker read as %v, want zero time", got)
	}
}

func TestIsStale(t *testing.T) {
	dir := t.TempDir()

	// No marker at all.
	if !IsStale(dir, DefaultMaxAge) {
		t.Error("missing marker should be stale")
	}

	// Fresh marker.
	WriteFreshnessMarker(dir)
	if IsStale(dir, DefaultMaxAge) {
		t.Error("fresh marker reported stale")
	}

	// Old marker.
	old := time.Now().Add(-8 * 24 * time.Hour).Unix()
	if err := os.WriteFile(filepath.Join(dir, freshnessFile), []byte(strconv.FormatInt(old, 10)), 0644); err != nil {
		t.Fatal(err)
	}
	if !IsStale(dir, DefaultMaxAge) {
		t.Error("8-day-old marker not reported stale")
	}
}

func TestExists(t *testing.T) {
	dir := t.TempDir()
	if !Exists(dir) {
		t.Error("existing dir reported missing")
	}
	if Exists(filepath.Join(dir, "nope")) {
		t.Error("missing dir reported existing")
	}
}
