package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search <packfile> <query>",
	Short: "Fuzzy-search wallpapers in a pack",
	Long:  `Fuzzy match the query against wallpaper titles and artist names.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	pack, err := resolvePack(args[0])
	if err != nil {
		return err
	}

	haystack := make([]string, 0, len(pack.Entries))
	for _, e := range pack.Entries {
		haystack = append(haystack, e.Title+" "+e.Artist)
	}

	matches := fuzzy.Find(args[1], haystack)
	if len(matches) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No wallpapers matching %q\n", args[1])
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "TITLE\tARTIST\tCONTRIBUTOR\tLICENSE")
	for _, m := range matches {
		e := pack.Entries[m.Index]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Title, e.Artist, e.Username, e.License)
	}
	return w.Flush()
}
