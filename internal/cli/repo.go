package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wallpack-dev/wallpack/internal/sources"
)

func init() {
	repoCmd.AddCommand(repoCloneCmd)
	repoCmd.AddCommand(repoUpdateCmd)
	rootCmd.AddCommand(repoCmd)
}

var repoCmd = &cobra.Command{
	Use:   "repo",
	Short: "Manage the local wallpapers repository checkout",
}

var repoCloneCmd = &cobra.Command{
	Use:   "clone",
	Short: "Clone the wallpapers repository",
	RunE: func(cmd *cobra.Command, args []string) error {
		root := sources.RepoRoot()
		fmt.Fprintf(cmd.OutOrStdout(), "Cloning %s into %s\n", sources.RepoURL(), root)
		if err := sources.Clone(root); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Done.")
		return nil
	},
}

var repoUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update the wallpapers repository checkout",
	RunE: func(cmd *cobra.Command, args []string) error {
		root := sources.RepoRoot()
		fmt.Fprintf(cmd.OutOrStdout(), "Updating %s\n", root)
		if err := sources.Update(root); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Done.")
		return nil
	},
}
