package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/wallpack-dev/wallpack/internal/render"
)

var (
	previewWidth        int
	previewName         string
	previewDate         string
	previewComments     string
	previewCommentsFile string
)

func init() {
	previewCmd.Flags().IntVar(&previewWidth, "width", 80, "Word-wrap width")
	previewCmd.Flags().StringVar(&previewName, "name", "", "Pack display name (default: pack file name)")
	previewCmd.Flags().StringVar(&previewDate, "date", "", "Release date text (default: today, YYYY-MM-DD)")
	previewCmd.Flags().StringVar(&previewComments, "comments", "", "Comments block text")
	previewCmd.Flags().StringVar(&previewCommentsFile, "comments-file", "", "Read the comments block from a file")
	rootCmd.AddCommand(previewCmd)
}

var previewCmd = &cobra.Command{
	Use:   "preview <packfile>",
	Short: "Render the pack manifest in the terminal",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

func runPreview(cmd *cobra.Command, args []string) error {
	pack, err := resolvePack(args[0])
	if err != nil {
		return err
	}

	in, err := manifestInput(pack, previewName, previewDate, previewComments, previewCommentsFile)
	if err != nil {
		return err
	}

	doc, err := render.PackManifest(in)
	if err != nil {
		return err
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(previewWidth),
	)
	if err != nil {
		return fmt.Errorf("creating markdown renderer: %w", err)
	}

	out, err := r.Render(doc)
	if err != nil {
		return fmt.Errorf("rendering manifest preview: %w", err)
	}

	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
