package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var listJSON bool

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents a resolved wallpaper for display.
type listEntry struct {
	Title       string `json:"title"`
	Artist      string `json:"artist"`
	Contributor string `json:"contributor"`
	License     string `json:"license"`
	EntryName   string `json:"entry_name"`
}

var listCmd = &cobra.Command{
	Use:   "list <packfile>",
	Short: "List the wallpapers a pack resolves to",
	Args:  cobra.ExactArgs(1),
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	pack, err := resolvePack(args[0])
	if err != nil {
		return err
	}
	for _, w := range pack.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
	}

	if len(pack.Entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "Pack selects no wallpapers.")
		return nil
	}

	entries := make([]listEntry, 0, len(pack.Entries))
	for _, e := range pack.Entries {
		entries = append(entries, listEntry{
			Title:       e.Title,
			Artist:      e.Artist,
			Contributor: e.Username,
			License:     e.License,
			EntryName:   e.EntryName,
		})
	}

	if listJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "TITLE\tARTIST\tCONTRIBUTOR\tLICENSE")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Title, e.Artist, e.Contributor, e.License)
	}
	return w.Flush()
}
