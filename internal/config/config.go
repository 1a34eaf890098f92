// Package config loads sprintburn settings from file, environment, and
// defaults. Configuration is plain immutable data handed to the engine;
// the chart canvas and the benchmark gate table both live here so alternate
// sizes and thresholds never require a code change.
package config

import (
	"errors"
	"fmt"
	"slices"

	"github.com/sprintburn/sprintburn/internal/bench"
	"github.com/sprintburn/sprintburn/internal/chart"
)

// Default chart canvas dimensions.
const (
	DefaultChartWidth        = 600.0
	DefaultChartHeight       = 400.0
	DefaultChartMarginTop    = 40.0
	DefaultChartMarginRight  = 40.0
	DefaultChartMarginBottom = 60.0
	DefaultChartMarginLeft   = 60.0
)

// Default output settings.
const (
	DefaultOutputDir    = "docs/charts"
	DefaultOutputFormat = FormatAll
)

// Output format selectors.
const (
	FormatSVG      = "svg"
	FormatMarkdown = "md"
	FormatHTML     = "html"
	FormatPDF      = "pdf"
	FormatAll      = "all"
)

var (
	// ErrBadCanvas is returned when the configured canvas has no positive
	// plot area left after margins.
	ErrBadCanvas = errors.New("chart canvas leaves no plot area")

	// ErrBadFormat is returned for an unknown output format selector.
	ErrBadFormat = errors.New("unknown output format")

	// ErrBadGate is returned when a configured gate has a non-positive
	// ceiling or a target above it.
	ErrBadGate = errors.New("invalid benchmark gate")
)

// Config is the root sprintburn configuration.
type Config struct {
	Chart  ChartConfig  `mapstructure:"chart"`
	Output OutputConfig `mapstructure:"output"`
	Bench  BenchConfig  `mapstructure:"bench"`
}

// ChartConfig holds the logical canvas dimensions for rendered charts.
type ChartConfig struct {
	Width        float64 `mapstructure:"width"`
	Height       float64 `mapstructure:"height"`
	MarginTop    float64 `mapstructure:"margin_top"`
	MarginRight  float64 `mapstructure:"margin_right"`
	MarginBottom float64 `mapstructure:"margin_bottom"`
	MarginLeft   float64 `mapstructure:"margin_left"`
}

// Canvas converts the configured dimensions into a chart canvas.
func (c ChartConfig) Canvas() chart.Canvas {
	return chart.Canvas{
		Width:        c.Width,
		Height:       c.Height,
		MarginTop:    c.MarginTop,
		MarginRight:  c.MarginRight,
		MarginBottom: c.MarginBottom,
		MarginLeft:   c.MarginLeft,
	}
}

// OutputConfig holds the default output destination and format.
type OutputConfig struct {
	Dir    string `mapstructure:"dir"`
	Format string `mapstructure:"format"`
}

// BenchConfig overrides the benchmark gate table. An empty map keeps the
// compiled-in defaults.
type BenchConfig struct {
	Gates map[string]GateConfig `mapstructure:"gates"`
}

// GateConfig is one configured benchmark gate.
type GateConfig struct {
	MaxMillis    float64 `mapstructure:"max_ms"`
	TargetMillis float64 `mapstructure:"target_ms"`
	Description  string  `mapstructure:"description"`
}

// GateTable returns the effective gate table: the configured gates when any
// are present, the compiled-in defaults otherwise.
func (b BenchConfig) GateTable() map[string]bench.Gate {
	if len(b.Gates) == 0 {
		return bench.DefaultGates()
	}

	gates := make(map[string]bench.Gate, len(b.Gates))
	for name, g := range b.Gates {
		gates[name] = bench.Gate{
			MaxMillis:    g.MaxMillis,
			TargetMillis: g.TargetMillis,
			Description:  g.Description,
		}
	}

	return gates
}

// Validate checks the configuration for internal consistency.
func (c *Config) Validate() error {
	canvas := c.Chart.Canvas()
	if canvas.PlotWidth() <= 0 || canvas.PlotHeight() <= 0 {
		return fmt.Errorf("%w: %gx%g with margins %g/%g/%g/%g",
			ErrBadCanvas, canvas.Width, canvas.Height,
			canvas.MarginTop, canvas.MarginRight, canvas.MarginBottom, canvas.MarginLeft)
	}

	formats := []string{FormatSVG, FormatMarkdown, FormatHTML, FormatPDF, FormatAll}
	if !slices.Contains(formats, c.Output.Format) {
		return fmt.Errorf("%w: %q", ErrBadFormat, c.Output.Format)
	}

	for name, gate := range c.Bench.Gates {
		if gate.MaxMillis <= 0 || gate.TargetMillis <= 0 || gate.TargetMillis > gate.MaxMillis {
			return fmt.Errorf("%w: %s (max %g, target %g)", ErrBadGate, name, gate.MaxMillis, gate.TargetMillis)
		}
	}

	return nil
}
