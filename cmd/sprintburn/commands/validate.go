package commands

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/sprintburn/sprintburn/internal/sprint"
)

const (
	validateCmdUse   = "validate <sprint-file>"
	validateCmdShort = "Check a sprint file against the document schema"
	validateArgCount = 1
)

// NewValidateCommand creates the validate subcommand.
func NewValidateCommand() *cobra.Command {
	var noColor bool

	cmd := &cobra.Command{
		Use:   validateCmdUse,
		Short: validateCmdShort,
		Args:  cobra.ExactArgs(validateArgCount),
		RunE: func(cmd *cobra.Command, args []string) error {
			if noColor {
				color.NoColor = true //nolint:reassign // intentional override of library global
			}

			return runValidate(cmd, args[0])
		},
	}

	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable colored output")

	return cmd
}

func runValidate(cmd *cobra.Command, path string) error {
	out := cmd.OutOrStdout()

	s, loadErr := sprint.Load(path)
	if loadErr != nil {
		color.New(color.FgRed).Fprintf(out, "Sprint file is invalid (%s)\n", path)
		color.New(color.FgYellow).Fprintf(out, "  %v\n", loadErr)

		return loadErr
	}

	color.New(color.FgGreen).Fprintf(out, "Sprint file is valid (%s)\n", path)
	color.New(color.FgCyan).Fprintf(out, "  - %s: %s to %s\n",
		s.Name, s.StartDate.Format(sprint.DateLayout), s.EndDate.Format(sprint.DateLayout))
	color.New(color.FgCyan).Fprintf(out, "  - %d tasks, %d points, %.0f%% complete\n",
		len(s.Tasks), s.TotalPoints(), s.ProgressPercent())

	return nil
}
