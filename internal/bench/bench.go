// Package bench parses `go test -bench` output and gates named benchmarks
// against latency thresholds. It is a sibling of the burndown engine: flat
// extract-then-compare logic, no shared state with the rest of the tool.
package bench

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
)

const (
	nsPerMs = 1_000_000
	nsPerUs = 1_000
)

// benchmarkPattern matches one benchmark line, e.g.
//
//	BenchmarkTUIStartup-8    1000    150000 ns/op    1024 B/op    10 allocs/op
//
// The CPU-count suffix and the memory columns are optional.
var benchmarkPattern = regexp.MustCompile(
	`(?m)^(Benchmark\w+)(?:-\d+)?\s+(\d+)\s+([\d.]+)\s+ns/op(?:\s+(\d+)\s+B/op)?(?:\s+(\d+)\s+allocs/op)?`,
)

// Result is one parsed benchmark measurement. BytesPerOp and AllocsPerOp
// are nil when the run did not report memory statistics.
type Result struct {
	Name        string  `json:"name"`
	Iterations  int     `json:"iterations"`
	NsPerOp     float64 `json:"ns_per_op"`
	BytesPerOp  *int64  `json:"bytes_per_op,omitempty"`
	AllocsPerOp *int64  `json:"allocs_per_op,omitempty"`
}

// MsPerOp converts the measurement to milliseconds per operation.
func (r Result) MsPerOp() float64 {
	return r.NsPerOp / nsPerMs
}

// UsPerOp converts the measurement to microseconds per operation.
func (r Result) UsPerOp() float64 {
	return r.NsPerOp / nsPerUs
}

// Parse extracts all benchmark results from raw `go test -bench` output.
// Lines that do not match the benchmark format are ignored, so the full
// test output can be piped in unfiltered.
func Parse(r io.Reader) ([]Result, error) {
	content, readErr := io.ReadAll(r)
	if readErr != nil {
		return nil, fmt.Errorf("read benchmark output: %w", readErr)
	}

	return ParseString(string(content)), nil
}

// ParseString extracts all benchmark results from a string.
func ParseString(content string) []Result {
	matches := benchmarkPattern.FindAllStringSubmatch(content, -1)
	results := make([]Result, 0, len(matches))

	for _, m := range matches {
		iterations, _ := strconv.Atoi(m[2])
		nsPerOp, _ := strconv.ParseFloat(m[3], 64)

		result := Result{
			Name:       m[1],
			Iterations: iterations,
			NsPerOp:    nsPerOp,
		}

		if m[4] != "" {
			bytesPerOp, _ := strconv.ParseInt(m[4], 10, 64)
			result.BytesPerOp = &bytesPerOp
		}

		if m[5] != "" {
			allocsPerOp, _ := strconv.ParseInt(m[5], 10, 64)
			result.AllocsPerOp = &allocsPerOp
		}

		results = append(results, result)
	}

	return results
}
