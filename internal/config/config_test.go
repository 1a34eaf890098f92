package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sprintburn/sprintburn/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Chart: config.ChartConfig{
			Width:        600,
			Height:       400,
			MarginTop:    40,
			MarginRight:  40,
			MarginBottom: 60,
			MarginLeft:   60,
		},
		Output: config.OutputConfig{
			Dir:    "docs/charts",
			Format: config.FormatAll,
		},
	}
}

func TestValidate_ValidConfig_NoError(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	require.NoError(t, cfg.Validate())
}

func TestValidate_MarginsSwallowCanvas_ReturnsError(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Chart.MarginLeft = 300
	cfg.Chart.MarginRight = 300

	require.ErrorIs(t, cfg.Validate(), config.ErrBadCanvas)
}

func TestValidate_UnknownFormat_ReturnsError(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Output.Format = "docx"

	require.ErrorIs(t, cfg.Validate(), config.ErrBadFormat)
}

func TestValidate_GateTargetAboveMax_ReturnsError(t *testing.T) {
	t.Parallel()

	cfg := validConfig()
	cfg.Bench.Gates = map[string]config.GateConfig{
		"BenchmarkX": {MaxMillis: 50, TargetMillis: 100},
	}

	require.ErrorIs(t, cfg.Validate(), config.ErrBadGate)
}

func TestLoad_SearchMode_Defaults(t *testing.T) {
	origDir, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(origDir) })

	cfg, err := config.Load("")
	require.NoError(t, err)

	assert.InDelta(t, config.DefaultChartWidth, cfg.Chart.Width, 0.0)
	assert.InDelta(t, config.DefaultChartHeight, cfg.Chart.Height, 0.0)
	assert.Equal(t, config.DefaultOutputDir, cfg.Output.Dir)
	assert.Equal(t, config.FormatAll, cfg.Output.Format)

	// No configured gates means the compiled-in table.
	gates := cfg.Bench.GateTable()
	assert.Contains(t, gates, "BenchmarkTUIStartup")
}

func TestLoad_ExplicitFile_Overrides(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "sprintburn.yaml")

	doc := `chart:
  width: 800
  height: 500
output:
  format: svg
bench:
  gates:
    BenchmarkLoadSprint:
      max_ms: 10
      target_ms: 5
      description: Sprint file loading
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.InDelta(t, 800.0, cfg.Chart.Width, 0.0)
	assert.InDelta(t, 500.0, cfg.Chart.Height, 0.0)
	assert.Equal(t, config.FormatSVG, cfg.Output.Format)

	// Margins keep their defaults when the file omits them.
	assert.InDelta(t, config.DefaultChartMarginLeft, cfg.Chart.MarginLeft, 0.0)

	// Configured gates replace the compiled-in table wholesale.
	gates := cfg.Bench.GateTable()
	require.Len(t, gates, 1)
	assert.InDelta(t, 10.0, gates["BenchmarkLoadSprint"].MaxMillis, 0.0)
}

func TestGateTable_EmptyConfig_ReturnsDefaults(t *testing.T) {
	t.Parallel()

	var benchCfg config.BenchConfig

	gates := benchCfg.GateTable()
	require.NotEmpty(t, gates)
	assert.InDelta(t, 500.0, gates["BenchmarkTUIStartup"].MaxMillis, 0.0)
}
