// Package commands implements the sprintburn subcommands.
package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// newLogger builds the command logger on stderr, honoring the root
// --verbose and --quiet flags when present.
func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo

	if verbose, err := cmd.Root().PersistentFlags().GetBool("verbose"); err == nil && verbose {
		level = slog.LevelDebug
	}

	if quiet, err := cmd.Root().PersistentFlags().GetBool("quiet"); err == nil && quiet {
		level = slog.LevelError
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
