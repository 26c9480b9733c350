// Package sources manages the local checkout of the wallpapers repository.
// It handles cloning, updating, and freshness tracking of the checkout.
package sources

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/wallpack-dev/wallpack/internal/branding"
	"github.com/wallpack-dev/wallpack/internal/config"
)

const (
	// freshnessFile is the name of the timestamp marker file.
	freshnessFile = ".wallpapers-updated"

	// DefaultMaxAge is the default staleness threshold (7 days).
	DefaultMaxAge = 7 * 24 * time.Hour

	// tmpSuffix is appended to the target dir during atomic clone.
	tmpSuffix = ".tmp"
)

// RepoURL returns the wallpapers repository URL, checking (in order):
// 1. <PREFIX>_REPO_URL env var
// 2. config key "repo_url"
// 3. branding.RepoURL() (from branding.yaml)
func RepoURL() string {
	if v := os.Getenv(branding.EnvVar("REPO_URL")); v != "" {
		return v
	}
	if v := config.Get(config.KeyRepoURL); v != "" {
		return v
	}
	return branding.RepoURL()
}

// RepoRoot returns the configured local checkout path, defaulting to
// ~/.wallpack/wallpapers.
func RepoRoot() string {
	if v := os.Getenv(branding.EnvVar("REPO_ROOT")); v != "" {
		return v
	}
	if v := config.Get(config.KeyRepoRoot); v != "" {
		return v
	}
	return filepath.Join(config.Dir(), "wallpapers")
}

// Clone performs a shallow clone of the wallpapers repository into
// targetDir. The clone is atomic: it writes to a .tmp directory first, then
// renames on success. On failure the .tmp directory is cleaned up.
func Clone(targetDir string) error {
	if err := ensureGit(); err != nil {
		return err
	}

	repoURL := RepoURL()
	tmpDir := targetDir + tmpSuffix

	// Clean up any leftover tmp dir from a previous failed attempt.
	_ = os.RemoveAll(tmpDir)

	if err := os.MkdirAll(filepath.Dir(tmpDir), 0755); err != nil {
		return fmt.Errorf("creating parent directory: %w", err)
	}

	cmd := exec.Command("git", "clone", "--depth=1", repoURL, tmpDir)
	if output, err := cmd.CombinedOutput(); err != nil {
		_ = os.RemoveAll(tmpDir)
		return fmt.Errorf("cloning wallpapers repository: %w\n%s", err, strings.TrimSpace(string(output)))
	}

	if err := os.RemoveAll(targetDir); err != nil {
		_ = os.RemoveAll(tmpDir)
		return fmt.Errorf("removing existing checkout: %w", err)
	}
	if err := os.Rename(tmpDir, targetDir); err != nil {
		_ = os.RemoveAll(tmpDir)
		return fmt.Errorf("finalizing clone: %w", err)
	}

	WriteFreshnessMarker(targetDir)
	return nil
}

// Update pulls the latest changes in the checkout. If the checkout doesn't
// exist yet, it clones instead.
func Update(repoDir string) error {
	if err := ensureGit(); err != nil {
		return err
	}

	gitDir := filepath.Join(repoDir, ".git")
	if _, err := os.Stat(gitDir); os.IsNotExist(err) {
		return Clone(repoDir)
	}

	cmd := exec.Command("git", "pull", "--depth=1", "--rebase")
	cmd.Dir = repoDir
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("pulling wallpapers updates: %w\n%s", err, strings.TrimSpace(string(output)))
	}

	WriteFreshnessMarker(repoDir)
	return nil
}

// WriteFreshnessMarker writes the current Unix timestamp to the freshness file.
func WriteFreshnessMarker(repoDir string) {
	markerPath := filepath.Join(repoDir, freshnessFile)
	ts := strconv.FormatInt(time.Now().Unix(), 10)
	_ = os.WriteFile(markerPath, []byte(ts), 0644)
}

// ReadFreshnessMarker reads the timestamp from the freshness file.
// Returns zero time if the file doesn't exist or can't be parsed.
func ReadFreshnessMarker(repoDir string) time.Time {
	markerPath := filepath.Join(repoDir, freshnessFile)
	data, err := os.ReadFile(markerPath)
	if err != nil {
		return time.Time{}
	}
	ts, err := strconv.ParseInt(strings.TrimSpace(string(data)), 10, 64)
	if err != nil {
		return time.Time{}
	}
	return time.Unix(ts, 0)
}

// IsStale reports whether the checkout's freshness marker is older than
// maxAge. A missing marker counts as stale.
func IsStale(repoDir string, maxAge time.Duration) bool {
	updated := ReadFreshnessMarker(repoDir)
	if updated.IsZero() {
		return true
	}
	return time.Since(updated) > maxAge
}

// Exists reports whether a checkout is present at repoDir.
func Exists(repoDir string) bool {
	info, err := os.Stat(repoDir)
	return err == nil && info.IsDir()
}

// ensureGit verifies that git is available on PATH.
func ensureGit() error {
	if _, err := exec.LookPath("git"); err != nil {
		return fmt.Errorf("git is required but not found on PATH: %w", err)
	}
	return nil
}
