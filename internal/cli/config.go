package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wallpack-dev/wallpack/internal/config"
)

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Read and write CLI configuration",
	Long: `Manage ` + config.FilePath() + `. Known keys: ` +
		config.KeyRepoRoot + `, ` + config.KeyRepoURL + `, ` + config.KeyDefaultVariant + `, ` + config.KeyDefaultDest + `.`,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print a config value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		value := config.Get(args[0])
		if value == "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is not set\n", args[0])
			return nil
		}
		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()
		if err := config.Set(args[0], args[1]); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", args[0], args[1])
		return nil
	},
}
