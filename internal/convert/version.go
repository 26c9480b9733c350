package convert

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// MinimumVersion is the oldest ImageMagick release the retro pipeline is
// known to work with (PNG8 output with -colors).
const MinimumVersion = "6.9.0"

// Detect locates the ImageMagick binary and reports its version string
// (e.g. "6.9.12-98"). It returns an error when the binary is missing or
// its version output is unrecognizable.
func Detect() (string, error) {
	if _, err := exec.LookPath(Binary); err != nil {
		return "", fmt.Errorf("ImageMagick not found: %w", err)
	}

	out, err := exec.Command(Binary, "-version").Output()
	if err != nil {
		return "", fmt.Errorf("querying ImageMagick version: %w", err)
	}

	version, err := parseVersionOutput(string(out))
	if err != nil {
		return "", err
	}
	return version, nil
}

// MeetsMinimum reports whether the detected version satisfies
// MinimumVersion under semver ordering.
func MeetsMinimum(version string) (bool, error) {
	v, err := parseSemver(version)
	if err != nil {
		return false, fmt.Errorf("parsing detected version %q: %w", version, err)
	}
	minimum, err := parseSemver(MinimumVersion)
	if err != nil {
		return false, fmt.Errorf("parsing minimum version %q: %w", MinimumVersion, err)
	}
	return v.Compare(minimum) >= 0, nil
}

// parseVersionOutput extracts the version token from `convert -version`
// output, whose first line reads "Version: ImageMagick <version> ...".
func parseVersionOutput(out string) (string, error) {
	line, _, _ := strings.Cut(out, "\n")
	fields := strings.Fields(line)
	for i, f := range fields {
		if f == "ImageMagick" && i+1 < len(fields) {
			return fields[i+1], nil
		}
	}
	return "", fmt.Errorf("unrecognized ImageMagick version output: %q", line)
}

// parseSemver strips a leading "v" and parses the version string.
// ImageMagick patch suffixes like "6.9.12-98" parse as a prerelease, which
// is good enough for a floor comparison.
func parseSemver(version string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(version, "v"))
}
