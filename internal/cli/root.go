package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/arweaver-labs/arweaver/internal/branding"
	"github.com/arweaver-labs/arweaver/internal/project"
	"github.com/arweaver-labs/arweaver/internal/scaffold"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` scaffolds a marker-based AR narrative web project built
on AR.js. Run with no arguments inside the project directory: it creates the
standard layout (markers, models, assets, css, js), writes the starter
README.md, .gitignore, and render.yaml, and prints the manual steps that
remain (generating markers, pushing to GitHub, deploying on Render.com).`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runSetup(cmd.OutOrStdout())
	},
}

// runSetup executes the full setup sequence in the current directory:
// directories, starter files, git detection, next-steps guidance.
func runSetup(w io.Writer) error {
	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	fmt.Fprintf(w, "%s project setup\n", branding.DisplayName())
	fmt.Fprintf(w, "Root: %s\n\n", root)

	result, err := scaffold.Run(root, w)
	if err != nil {
		return fmt.Errorf("scaffolding project: %w", err)
	}

	for _, warning := range result.Warnings {
		fmt.Fprintf(w, "  [WARN] %s\n", warning)
	}

	fmt.Fprintln(w)
	if project.GitInitialized(root) {
		fmt.Fprintln(w, "Git repository detected")
	} else {
		fmt.Fprintln(w, "Git not initialized. Run: git init")
	}

	printNextSteps(w)
	return nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
