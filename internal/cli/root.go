package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wallpack-dev/wallpack/internal/branding"
	"github.com/wallpack-dev/wallpack/internal/config"
	"github.com/wallpack-dev/wallpack/internal/sources"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` builds distributable wallpaper packs for Linux desktops
from a contributors repository: it resolves pack selections, renders the
desktop-environment metadata, and assembles the installable file tree.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()

		// Skip the staleness banner for commands that manage their own state.
		name := cmd.Name()
		if p := cmd.Parent(); p != nil && p.Name() == "config" {
			name = "config"
		}
		if name == "clone" || name == "update" || name == "version" || name == "config" {
			return
		}

		root := sources.RepoRoot()
		if sources.Exists(root) && sources.IsStale(root, sources.DefaultMaxAge) {
			fmt.Fprintf(os.Stderr, "Wallpapers checkout is more than 7 days old. Run '%s repo update'.\n", branding.CLIName())
		}
	},
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
