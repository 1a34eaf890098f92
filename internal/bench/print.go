package bench

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
)

const (
	verdictPass   = "PASS"
	verdictFail   = "FAIL"
	verdictTarget = "target"
)

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, report Report) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")

	encodeErr := encoder.Encode(report)
	if encodeErr != nil {
		return fmt.Errorf("encode report: %w", encodeErr)
	}

	return nil
}

// WriteText writes a human-readable report: a summary, a table of gated
// benchmarks with colored verdicts, the ungated benchmarks, and the final
// verdict line.
func WriteText(w io.Writer, report Report) error {
	fmt.Fprintln(w, "Benchmark Performance Report")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Total benchmarks: %d\n", report.TotalBenchmarks)
	fmt.Fprintf(w, "Gated benchmarks: %d\n", report.GatedBenchmarks)
	fmt.Fprintf(w, "Gates passed:     %d/%d\n", report.GatesPassed, report.GatedBenchmarks)
	fmt.Fprintf(w, "Targets met:      %d/%d\n", report.TargetsMet, report.GatedBenchmarks)
	fmt.Fprintln(w)

	writeGatedTable(w, report)
	writeUngatedTable(w, report)

	fmt.Fprintln(w)

	if report.Passed {
		color.New(color.FgGreen).Fprintln(w, "ALL PERFORMANCE GATES PASSED")

		return nil
	}

	color.New(color.FgRed).Fprintln(w, "PERFORMANCE GATES FAILED")

	for _, result := range report.Results {
		if result.Gated && !result.GatePassed {
			color.New(color.FgRed).Fprintf(w, "  - %s: %.2fms > %.0fms\n",
				result.Name, result.ActualMillis, result.MaxMillis)
		}
	}

	return nil
}

func writeGatedTable(w io.Writer, report Report) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"Status", "Benchmark", "Description", "Actual (ms)", "Max (ms)", "Target (ms)", "Iterations"})

	for _, result := range report.Results {
		if !result.Gated {
			continue
		}

		status := color.New(color.FgGreen).Sprint(verdictPass)
		if !result.GatePassed {
			status = color.New(color.FgRed).Sprint(verdictFail)
		} else if result.TargetMet {
			status += " " + color.New(color.FgCyan).Sprint(verdictTarget)
		}

		tbl.AppendRow(table.Row{
			status,
			result.Name,
			result.Description,
			fmt.Sprintf("%.2f", result.ActualMillis),
			fmt.Sprintf("%.0f", result.MaxMillis),
			fmt.Sprintf("%.0f", result.TargetMillis),
			humanize.Comma(int64(result.Iterations)),
		})
	}

	if tbl.Length() > 0 {
		tbl.Render()
	}
}

func writeUngatedTable(w io.Writer, report Report) {
	var ungated []GateResult

	for _, result := range report.Results {
		if !result.Gated {
			ungated = append(ungated, result)
		}
	}

	if len(ungated) == 0 {
		return
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "Other benchmarks (no gate):")

	for _, result := range ungated {
		fmt.Fprintf(w, "  %s: %.2fms (%s iterations)\n",
			result.Name, result.ActualMillis, humanize.Comma(int64(result.Iterations)))
	}
}
