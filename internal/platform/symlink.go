// Package platform isolates OS-specific filesystem behavior.
package platform

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// CreateSymlink creates a symbolic link at link pointing to target.
// On Unix systems this is os.Symlink. On Windows it attempts os.Symlink
// first (requires developer mode), then falls back to copying the target
// and writing a .target sidecar so the link destination stays recoverable.
func CreateSymlink(target, link string) error {
	if runtime.GOOS != "windows" {
		return os.Symlink(target, link)
	}

	if err := os.Symlink(target, link); err == nil {
		return nil
	}

	if err := copyForSymlink(target, link); err != nil {
		return fmt.Errorf("symlink fallback (copy) failed: %w", err)
	}

	// Best-effort sidecar; the copy itself already succeeded.
	_ = os.WriteFile(link+".target", []byte(target), 0644)
	return nil
}

// ReadSymlinkTarget returns the target of a symlink, consulting the
// .target sidecar on Windows when the copy fallback was used.
func ReadSymlinkTarget(path string) (string, error) {
	target, err := os.Readlink(path)
	if err == nil {
		return target, nil
	}

	if runtime.GOOS != "windows" {
		return "", err
	}

	data, readErr := os.ReadFile(path + ".target")
	if readErr != nil {
		return "", fmt.Errorf("readlink failed and no .target sidecar found: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// copyForSymlink copies src to dst. Relative targets resolve against the
// link's parent directory, matching symlink semantics.
func copyForSymlink(src, dst string) error {
	if !filepath.IsAbs(src) {
		src = filepath.Join(filepath.Dir(dst), src)
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Close()
}
