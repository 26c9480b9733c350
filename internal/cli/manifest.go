package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/wallpack-dev/wallpack/internal/render"
)

var (
	manifestName         string
	manifestDate         string
	manifestComments     string
	manifestCommentsFile string
	manifestOutput       string
)

func init() {
	manifestCmd.Flags().StringVar(&manifestName, "name", "", "Pack display name (default: pack file name)")
	manifestCmd.Flags().StringVar(&manifestDate, "date", "", "Release date text (default: today, YYYY-MM-DD)")
	manifestCmd.Flags().StringVar(&manifestComments, "comments", "", "Comments block text")
	manifestCmd.Flags().StringVar(&manifestCommentsFile, "comments-file", "", "Read the comments block from a file")
	manifestCmd.Flags().StringVarP(&manifestOutput, "output", "o", "", "Write the manifest to a file instead of stdout")
	rootCmd.AddCommand(manifestCmd)
}

var manifestCmd = &cobra.Command{
	Use:   "manifest <packfile>",
	Short: "Render the pack manifest markdown",
	Long: `Render the markdown manifest describing a pack: name, date, entry count,
comments, and one table row per wallpaper. Field values are inserted
verbatim; keep '|' out of titles and backticks out of comments.`,
	Args: cobra.ExactArgs(1),
	RunE: runManifest,
}

func runManifest(cmd *cobra.Command, args []string) error {
	pack, err := resolvePack(args[0])
	if err != nil {
		return err
	}
	for _, w := range pack.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
	}

	in, err := manifestInput(pack, manifestName, manifestDate, manifestComments, manifestCommentsFile)
	if err != nil {
		return err
	}

	doc, err := render.PackManifest(in)
	if err != nil {
		return err
	}

	if manifestOutput != "" {
		if err := os.WriteFile(manifestOutput, []byte(doc), 0644); err != nil {
			return fmt.Errorf("writing manifest to %s: %w", manifestOutput, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", manifestOutput)
		return nil
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), doc)
	return err
}

// manifestInput assembles the renderer input from the resolved pack and the
// command flags. The date and comments are host concerns: the renderer
// takes them as opaque text.
func manifestInput(pack *resolvedPack, name, date, comments, commentsFile string) (render.ManifestInput, error) {
	if name == "" {
		name = pack.Name
	}

	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	if commentsFile != "" {
		data, err := os.ReadFile(commentsFile)
		if err != nil {
			return render.ManifestInput{}, fmt.Errorf("reading comments file: %w", err)
		}
		comments = string(data)
	}

	rows := make([]render.ManifestRow, 0, len(pack.Entries))
	for _, e := range pack.Entries {
		rows = append(rows, render.ManifestRow{
			Title:   e.Title,
			Artist:  e.Artist,
			License: e.License,
		})
	}

	return render.ManifestInput{
		Name:       name,
		Date:       date,
		Comments:   comments,
		Wallpapers: rows,
	}, nil
}
