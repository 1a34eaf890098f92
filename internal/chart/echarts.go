package chart

import (
	"fmt"
	"io"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/sprintburn/sprintburn/internal/burndown"
	"github.com/sprintburn/sprintburn/internal/sprint"
)

const (
	echartsIdealSeries  = "Ideal"
	echartsActualSeries = "Actual"
	echartsDashedLine   = "dashed"
)

// NewLineChart builds an interactive line chart of both burndown curves.
// The actual series is truncated at the reference date, matching the SVG
// renderer; the ideal series is always plotted in full.
func NewLineChart(s *sprint.Sprint, ideal, actual []burndown.Point, reference time.Time) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    s.Name + " - Burndown",
			Subtitle: fmt.Sprintf("Progress: %.0f%% (%d/%d points)", s.ProgressPercent(), s.CompletedPoints(), s.TotalPoints()),
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "5px"}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Date",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Story Points Remaining",
		}),
	)

	xLabels := make([]string, len(ideal))
	idealData := make([]opts.LineData, len(ideal))

	for i, p := range ideal {
		xLabels[i] = p.Date.Format(svgDateLayout)
		idealData[i] = opts.LineData{Value: p.Remaining}
	}

	line.SetXAxis(xLabels)
	line.AddSeries(
		echartsIdealSeries,
		idealData,
		charts.WithLineStyleOpts(opts.LineStyle{Type: echartsDashedLine}),
	)

	truncated := burndown.TruncateAtDate(actual, reference)
	if len(truncated) > 0 {
		actualData := make([]opts.LineData, len(truncated))
		for i, p := range truncated {
			actualData[i] = opts.LineData{Value: p.Remaining}
		}

		line.AddSeries(echartsActualSeries, actualData)
	}

	return line
}

// RenderHTML writes the interactive chart as a self-contained HTML page.
func RenderHTML(w io.Writer, s *sprint.Sprint, ideal, actual []burndown.Point, reference time.Time) error {
	line := NewLineChart(s, ideal, actual, reference)

	renderErr := line.Render(w)
	if renderErr != nil {
		return fmt.Errorf("render chart: %w", renderErr)
	}

	return nil
}
