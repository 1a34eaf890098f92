package bench_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sprintburn/sprintburn/internal/bench"
)

const sampleBenchOutput = `goos: linux
goarch: amd64
pkg: github.com/example/safedownload
BenchmarkTUIStartup-8         	    1000	    150000 ns/op	    1024 B/op	      10 allocs/op
BenchmarkStateLoad-8          	    5000	  60000000 ns/op
BenchmarkParseManifest        	   20000	     72500.5 ns/op
PASS
ok  	github.com/example/safedownload	3.201s
`

func TestParseString_MixedOutput(t *testing.T) {
	t.Parallel()

	results := bench.ParseString(sampleBenchOutput)
	require.Len(t, results, 3)

	first := results[0]
	assert.Equal(t, "BenchmarkTUIStartup", first.Name)
	assert.Equal(t, 1000, first.Iterations)
	assert.InDelta(t, 150000.0, first.NsPerOp, 0.0)
	require.NotNil(t, first.BytesPerOp)
	assert.Equal(t, int64(1024), *first.BytesPerOp)
	require.NotNil(t, first.AllocsPerOp)
	assert.Equal(t, int64(10), *first.AllocsPerOp)

	// No memory columns and no CPU suffix are both fine.
	second := results[1]
	assert.Equal(t, "BenchmarkStateLoad", second.Name)
	assert.Nil(t, second.BytesPerOp)

	third := results[2]
	assert.Equal(t, "BenchmarkParseManifest", third.Name)
	assert.InDelta(t, 72500.5, third.NsPerOp, 0.0001)
}

func TestParseString_NoBenchmarks(t *testing.T) {
	t.Parallel()

	results := bench.ParseString("PASS\nok  \tgithub.com/example/x\t0.1s\n")
	assert.Empty(t, results)
}

func TestResult_UnitConversions(t *testing.T) {
	t.Parallel()

	result := bench.Result{NsPerOp: 150_000_000}
	assert.InDelta(t, 150.0, result.MsPerOp(), 0.0001)
	assert.InDelta(t, 150_000.0, result.UsPerOp(), 0.0001)
}

func TestCheck_GateVerdicts(t *testing.T) {
	t.Parallel()

	gates := map[string]bench.Gate{
		"BenchmarkFast": {MaxMillis: 100, TargetMillis: 50, Description: "fast op"},
		"BenchmarkSlow": {MaxMillis: 100, TargetMillis: 50, Description: "slow op"},
		"BenchmarkNear": {MaxMillis: 100, TargetMillis: 50, Description: "near op"},
	}

	results := []bench.Result{
		{Name: "BenchmarkFast", Iterations: 100, NsPerOp: 10 * 1_000_000},  // meets target
		{Name: "BenchmarkSlow", Iterations: 100, NsPerOp: 150 * 1_000_000}, // fails gate
		{Name: "BenchmarkNear", Iterations: 100, NsPerOp: 80 * 1_000_000},  // passes gate only
		{Name: "BenchmarkUngated", Iterations: 100, NsPerOp: 999 * 1_000_000},
	}

	report := bench.Check(results, gates)

	assert.False(t, report.Passed)
	assert.Equal(t, 4, report.TotalBenchmarks)
	assert.Equal(t, 3, report.GatedBenchmarks)
	assert.Equal(t, 2, report.GatesPassed)
	assert.Equal(t, 1, report.GatesFailed)
	assert.Equal(t, 1, report.TargetsMet)
	require.Len(t, report.Results, 4)

	// Ungated benchmarks are informational and never fail the run.
	ungated := report.Results[3]
	assert.False(t, ungated.Gated)
	assert.Equal(t, "No gate defined", ungated.Description)
}

func TestCheck_AllPass(t *testing.T) {
	t.Parallel()

	report := bench.Check(
		[]bench.Result{{Name: "BenchmarkTUIStartup", Iterations: 1000, NsPerOp: 150 * 1_000_000}},
		bench.DefaultGates(),
	)

	assert.True(t, report.Passed)
	assert.Equal(t, 1, report.GatesPassed)
	assert.Equal(t, 1, report.TargetsMet)
}

func TestCheck_BoundaryEqualsMax_Passes(t *testing.T) {
	t.Parallel()

	gates := map[string]bench.Gate{
		"BenchmarkEdge": {MaxMillis: 100, TargetMillis: 50, Description: "edge"},
	}

	report := bench.Check(
		[]bench.Result{{Name: "BenchmarkEdge", Iterations: 1, NsPerOp: 100 * 1_000_000}},
		gates,
	)

	assert.True(t, report.Passed)
}

func TestWriteJSON_RoundTrips(t *testing.T) {
	t.Parallel()

	report := bench.Check(bench.ParseString(sampleBenchOutput), bench.DefaultGates())

	var buf bytes.Buffer
	require.NoError(t, bench.WriteJSON(&buf, report))

	var decoded bench.Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, report.Passed, decoded.Passed)
	assert.Len(t, decoded.Results, len(report.Results))
}

func TestWriteText_FailedGateListed(t *testing.T) {
	t.Parallel()

	gates := map[string]bench.Gate{
		"BenchmarkStateLoad": {MaxMillis: 50, TargetMillis: 20, Description: "State file loading"},
	}

	report := bench.Check(bench.ParseString(sampleBenchOutput), gates)
	require.False(t, report.Passed)

	var buf bytes.Buffer
	require.NoError(t, bench.WriteText(&buf, report))

	text := buf.String()
	assert.Contains(t, text, "PERFORMANCE GATES FAILED")
	assert.Contains(t, text, "BenchmarkStateLoad")
	assert.True(t, strings.Contains(text, "60.00ms > 50ms"), "failure detail line, got:\n%s", text)
}

func TestWriteText_AllPassedVerdict(t *testing.T) {
	t.Parallel()

	report := bench.Check(
		[]bench.Result{{Name: "BenchmarkTUIStartup", Iterations: 1000, NsPerOp: 100 * 1_000_000}},
		bench.DefaultGates(),
	)

	var buf bytes.Buffer
	require.NoError(t, bench.WriteText(&buf, report))

	assert.Contains(t, buf.String(), "ALL PERFORMANCE GATES PASSED")
}
