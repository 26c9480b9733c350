package cli

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/wallpack-dev/wallpack/internal/config"
	"github.com/wallpack-dev/wallpack/internal/convert"
	"github.com/wallpack-dev/wallpack/internal/sources"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the wallpack environment",
	Long:  `Run diagnostic checks on the tools and repository wallpack depends on.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		failures := runChecks(cmd.OutOrStdout())
		if failures > 0 {
			return fmt.Errorf("%d check(s) failed", failures)
		}
		return nil
	},
}

func runChecks(out io.Writer) int {
	failures := 0

	// git, needed for repo clone/update.
	if _, err := exec.LookPath("git"); err != nil {
		fmt.Fprintln(out, "[fail] git not found on PATH")
		failures++
	} else {
		fmt.Fprintln(out, "[ok]   git available")
	}

	// ImageMagick, needed for retro builds only.
	version, err := convert.Detect()
	switch {
	case err != nil:
		fmt.Fprintf(out, "[warn] ImageMagick unavailable (retro builds need it): %v\n", err)
	default:
		ok, cmpErr := convert.MeetsMinimum(version)
		if cmpErr != nil {
			fmt.Fprintf(out, "[warn] ImageMagick version %q unparsable: %v\n", version, cmpErr)
		} else if !ok {
			fmt.Fprintf(out, "[fail] ImageMagick %s older than minimum %s\n", version, convert.MinimumVersion)
			failures++
		} else {
			fmt.Fprintf(out, "[ok]   ImageMagick %s\n", version)
		}
	}

	// Wallpapers checkout.
	root := sources.RepoRoot()
	switch {
	case !sources.Exists(root):
		fmt.Fprintf(out, "[warn] wallpapers checkout missing at %s (run 'wallpack repo clone')\n", root)
	case sources.IsStale(root, sources.DefaultMaxAge):
		fmt.Fprintf(out, "[warn] wallpapers checkout at %s is stale (run 'wallpack repo update')\n", root)
	default:
		fmt.Fprintf(out, "[ok]   wallpapers checkout at %s\n", root)
	}

	// Config file.
	if _, err := os.Stat(config.FilePath()); err != nil {
		fmt.Fprintf(out, "[warn] no config file at %s (defaults in effect)\n", config.FilePath())
	} else {
		fmt.Fprintf(out, "[ok]   config at %s\n", config.FilePath())
	}

	return failures
}
