package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wallpack-dev/wallpack/internal/collection"
	"github.com/wallpack-dev/wallpack/internal/manifest"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate <packfile>",
	Short: "Validate a pack file and its contributors",
	Long: `Check that every pack line parses, every selected contributor's me.json
passes schema validation, every selected index exists, and every referenced
image file is present.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	abs, err := filepath.Abs(args[0])
	if err != nil {
		return fmt.Errorf("resolving pack path: %w", err)
	}
	packName := filepath.Base(abs)
	repoRoot := filepath.Dir(filepath.Dir(abs))

	selections, warnings, err := manifest.ParsePackFile(abs)
	if err != nil {
		return err
	}

	problems := len(warnings)
	for _, w := range warnings {
		fmt.Fprintf(out, "pack: %s\n", w)
	}

	groups := collection.GroupByContributor(selections)

	// Schema-validate every contributor before resolving, so all metadata
	// issues are reported in one run.
	for _, g := range groups {
		metaPath := filepath.Join(repoRoot, collection.ContributorsDir, g.Username, manifest.MetaFileName)
		result, err := manifest.ValidateFile(metaPath)
		if err != nil {
			fmt.Fprintf(out, "%s: %v\n", g.Username, err)
			problems++
			continue
		}
		if !result.Valid {
			for _, issue := range result.Issues {
				fmt.Fprintf(out, "%s: %s: %s\n", g.Username, issue.Path, issue.Message)
				problems++
			}
		}
	}

	entries, err := collection.Resolve(repoRoot, packName, groups)
	if err != nil {
		fmt.Fprintf(out, "resolve: %v\n", err)
		problems++
	}

	for _, e := range entries {
		if _, err := os.Stat(e.SourceFile()); err != nil {
			fmt.Fprintf(out, "%s: missing image %s\n", e.Username, e.SourceFile())
			problems++
		}
	}

	if problems > 0 {
		return fmt.Errorf("%d problem(s) found in pack %q", problems, packName)
	}

	fmt.Fprintf(out, "Pack %q is valid: %d wallpapers from %d contributors\n",
		packName, len(entries), len(groups))
	return nil
}
