package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/wallpack-dev/wallpack/internal/scaffold"
	"github.com/wallpack-dev/wallpack/internal/sources"
)

var initRepoRoot string

func init() {
	initContributorCmd.Flags().StringVar(&initRepoRoot, "repo", "", "Wallpapers repository root (default: configured checkout)")
	initCmd.AddCommand(initContributorCmd)
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Scaffold new repository content",
}

var initContributorCmd = &cobra.Command{
	Use:   "contributor",
	Short: "Interactively scaffold a contributor directory",
	Long: `Ask for the contributor's identity and generate
contributors/<username>/me.json plus a README stub.`,
	RunE: runInitContributor,
}

// contributorAnswers receives the survey responses.
type contributorAnswers struct {
	Name     string
	Username string
	Email    string
	URI      string
}

var contributorQuestions = []*survey.Question{
	{
		Name:     "name",
		Prompt:   &survey.Input{Message: "Display name:"},
		Validate: survey.Required,
	},
	{
		Name:     "username",
		Prompt:   &survey.Input{Message: "Username (directory name):"},
		Validate: survey.Required,
	},
	{
		Name:     "email",
		Prompt:   &survey.Input{Message: "Email:"},
		Validate: survey.Required,
	},
	{
		Name:   "uri",
		Prompt: &survey.Input{Message: "Homepage or profile URL:"},
	},
}

func runInitContributor(cmd *cobra.Command, args []string) error {
	root := initRepoRoot
	if root == "" {
		root = sources.RepoRoot()
	}
	if !sources.Exists(root) {
		return fmt.Errorf("wallpapers repository not found at %s (run 'wallpack repo clone' or pass --repo)", root)
	}

	var answers contributorAnswers
	if err := survey.Ask(contributorQuestions, &answers); err != nil {
		return err
	}

	data := scaffold.NewContributorData(answers.Name, answers.Username, answers.Email, answers.URI)
	result, err := scaffold.Generate(root, data)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", result.OutputDir)
	for _, f := range result.Files {
		fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", f)
	}
	for _, w := range result.Warnings {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w)
	}
	return nil
}
