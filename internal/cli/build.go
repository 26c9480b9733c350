package cli

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/wallpack-dev/wallpack/internal/collection"
	"github.com/wallpack-dev/wallpack/internal/config"
	"github.com/wallpack-dev/wallpack/internal/convert"
	"github.com/wallpack-dev/wallpack/internal/pack"
)

var (
	buildDest    string
	buildVariant string
	buildClean   bool
	buildJobs    int
	buildVerbose bool
)

func init() {
	buildCmd.Flags().StringVar(&buildDest, "dest", "", "Output directory (default: config default_dest or ./dist)")
	buildCmd.Flags().StringVar(&buildVariant, "variant", "", "Pack variant: normal or retro (default: config default_variant or normal)")
	buildCmd.Flags().BoolVar(&buildClean, "clean", false, "Remove the destination directory first")
	buildCmd.Flags().IntVar(&buildJobs, "jobs", 0, "Max concurrent entries (default: number of CPUs)")
	buildCmd.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "Print per-file progress")
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build <packfile>",
	Short: "Assemble the installable pack tree",
	Long: `Resolve every selection in the pack file and assemble the output tree:
images, KDE metadata, the GNOME/MATE album config, and the symlink farms
under usr/share.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	dest := buildDest
	if dest == "" {
		dest = config.Get(config.KeyDefaultDest)
	}
	if dest == "" {
		dest = "dist"
	}

	variantName := buildVariant
	if variantName == "" {
		variantName = config.Get(config.KeyDefaultVariant)
	}
	if variantName == "" {
		variantName = "normal"
	}
	variant, err := pack.ParseVariant(variantName)
	if err != nil {
		return err
	}

	// Retro needs ImageMagick before any work starts.
	if variant == pack.Retro {
		version, err := convert.Detect()
		if err != nil {
			return err
		}
		ok, err := convert.MeetsMinimum(version)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("ImageMagick %s is older than the minimum supported %s", version, convert.MinimumVersion)
		}
	}

	resolved, err := resolvePack(args[0])
	if err != nil {
		return err
	}
	for _, w := range resolved.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
	}

	if buildClean {
		if err := os.RemoveAll(dest); err != nil {
			return fmt.Errorf("cleaning destination %s: %w", dest, err)
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Building %s variant of pack %q into %s\n", variant, resolved.Name, dest)

	b := &pack.Builder{Dest: dest, Variant: variant, Jobs: buildJobs}
	if buildVerbose {
		b.Log = cmd.OutOrStdout()
	}
	if err := b.Build(resolved.Name, resolved.Entries); err != nil {
		return err
	}

	plan := collection.Summarize(resolved.Name, resolved.Entries)
	fmt.Fprintf(cmd.OutOrStdout(), "Done: %d wallpapers from %d contributors\n", plan.Total, len(plan.PerContributor))

	usernames := make([]string, 0, len(plan.PerContributor))
	for u := range plan.PerContributor {
		usernames = append(usernames, u)
	}
	sort.Strings(usernames)
	for _, u := range usernames {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s: %d\n", u, plan.PerContributor[u])
	}
	return nil
}
