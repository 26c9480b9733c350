package cli

import (
	"fmt"
	"path/filepath"

	"github.com/wallpack-dev/wallpack/internal/collection"
	"github.com/wallpack-dev/wallpack/internal/manifest"
)

// resolvedPack bundles everything the pack-centric commands need.
type resolvedPack struct {
	Name     string
	RepoRoot string
	Entries  []collection.Entry
	Warnings []string
}

// resolvePack parses a pack file and resolves its selections against the
// repository it lives in. A pack file sits at <repo>/packs/<packname>, so
// the repository root is two levels up.
func resolvePack(packPath string) (*resolvedPack, error) {
	abs, err := filepath.Abs(packPath)
	if err != nil {
		return nil, fmt.Errorf("resolving pack path: %w", err)
	}

	selections, warnings, err := manifest.ParsePackFile(abs)
	if err != nil {
		return nil, err
	}

	packName := filepath.Base(abs)
	repoRoot := filepath.Dir(filepath.Dir(abs))

	groups := collection.GroupByContributor(selections)
	entries, err := collection.Resolve(repoRoot, packName, groups)
	if err != nil {
		return nil, err
	}

	return &resolvedPack{
		Name:     packName,
		RepoRoot: repoRoot,
		Entries:  entries,
		Warnings: warnings,
	}, nil
}
