package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sprintburn/sprintburn/internal/bench"
	"github.com/sprintburn/sprintburn/internal/config"
)

const (
	benchCmdUse   = "bench [results-file]"
	benchCmdShort = "Gate go test -bench output against performance thresholds"
	benchArgMax   = 1
)

// ErrNoBenchmarkData is returned when the input is empty.
var ErrNoBenchmarkData = errors.New("no benchmark data provided")

// ErrNoBenchmarkResults is returned when the input contains no parseable
// benchmark lines.
var ErrNoBenchmarkResults = errors.New("no benchmark results found in input")

// ErrGatesFailed is returned when at least one gated benchmark exceeded its
// ceiling; the CLI exits non-zero so CI pipelines fail.
var ErrGatesFailed = errors.New("performance gates failed")

// NewBenchCommand creates the bench subcommand. Input comes from the file
// argument or stdin, so `go test -bench=. ./... | sprintburn bench` works.
func NewBenchCommand() *cobra.Command {
	var (
		jsonOutput bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:   benchCmdUse,
		Short: benchCmdShort,
		Args:  cobra.MaximumNArgs(benchArgMax),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, args, jsonOutput, configPath)
		},
	}

	cmd.Flags().BoolVarP(&jsonOutput, "json", "j", false, "emit the report as JSON")
	cmd.Flags().StringVar(&configPath, "config", "", "path to config file")

	return cmd
}

func runBench(cmd *cobra.Command, args []string, jsonOutput bool, configPath string) error {
	content, readErr := readBenchInput(cmd, args)
	if readErr != nil {
		return readErr
	}

	if strings.TrimSpace(content) == "" {
		return ErrNoBenchmarkData
	}

	results := bench.ParseString(content)
	if len(results) == 0 {
		return ErrNoBenchmarkResults
	}

	cfg, cfgErr := config.Load(configPath)
	if cfgErr != nil {
		return cfgErr
	}

	benchReport := bench.Check(results, cfg.Bench.GateTable())

	var writeErr error
	if jsonOutput {
		writeErr = bench.WriteJSON(cmd.OutOrStdout(), benchReport)
	} else {
		writeErr = bench.WriteText(cmd.OutOrStdout(), benchReport)
	}

	if writeErr != nil {
		return writeErr
	}

	if !benchReport.Passed {
		return ErrGatesFailed
	}

	return nil
}

func readBenchInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 {
		content, readErr := os.ReadFile(args[0]) //nolint:gosec // path comes from the CLI user
		if readErr != nil {
			return "", fmt.Errorf("read benchmark file: %w", readErr)
		}

		return string(content), nil
	}

	content, readErr := io.ReadAll(cmd.InOrStdin())
	if readErr != nil {
		return "", fmt.Errorf("read stdin: %w", readErr)
	}

	return string(content), nil
}
