// Package main provides the entry point for the sprintburn CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sprintburn/sprintburn/cmd/sprintburn/commands"
	"github.com/sprintburn/sprintburn/pkg/version"
)

var (
	verbose bool
	quiet   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sprintburn",
		Short: "Sprintburn - sprint burndown charts and status reports",
		Long: `Sprintburn generates burndown charts and status reports from sprint YAML files.

Commands:
  generate  Render burndown charts and status tables for sprint files
  validate  Check a sprint file against the document schema
  bench     Gate go test -bench output against performance thresholds`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output")

	// Add commands.
	rootCmd.AddCommand(commands.NewGenerateCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewBenchCommand())
	rootCmd.AddCommand(versionCmd())

	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(_ *cobra.Command, _ []string) {
			fmt.Fprintf(os.Stdout, "sprintburn %s (commit: %s, built: %s)\n", version.Version, version.Commit, version.Date)
		},
	}
}
