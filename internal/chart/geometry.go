// Package chart maps burndown series into drawable coordinates and renders
// them as chart documents. The geometry mapper is pure arithmetic over a
// fixed logical canvas; the renderers (SVG, HTML) consume its output and
// never recompute scales themselves.
package chart

// yTickDivisor controls the y-axis density: step = max(1, total/5), which
// yields at most six ticks regardless of the total's magnitude.
const yTickDivisor = 5

// xLabelStride labels every other day index on the x axis.
const xLabelStride = 2

// Canvas is the logical drawing surface: outer dimensions plus margins on
// all four sides. It is plain immutable data so alternative sizes come from
// configuration, not code changes.
type Canvas struct {
	Width        float64
	Height       float64
	MarginTop    float64
	MarginRight  float64
	MarginBottom float64
	MarginLeft   float64
}

// DefaultCanvas returns the stock 600x400 canvas.
func DefaultCanvas() Canvas {
	return Canvas{
		Width:        600,
		Height:       400,
		MarginTop:    40,
		MarginRight:  40,
		MarginBottom: 60,
		MarginLeft:   60,
	}
}

// PlotWidth is the width of the interior plot area.
func (c Canvas) PlotWidth() float64 {
	return c.Width - c.MarginLeft - c.MarginRight
}

// PlotHeight is the height of the interior plot area.
func (c Canvas) PlotHeight() float64 {
	return c.Height - c.MarginTop - c.MarginBottom
}

// Geometry scales day/remaining data values into absolute canvas
// coordinates for one sprint's chart.
type Geometry struct {
	Canvas       Canvas
	TotalPoints  int
	DurationDays int
}

// NewGeometry builds a Geometry for a sprint with the given extent.
func NewGeometry(canvas Canvas, totalPoints, durationDays int) Geometry {
	return Geometry{
		Canvas:       canvas,
		TotalPoints:  totalPoints,
		DurationDays: durationDays,
	}
}

// XScale is plot width per day. Zero-duration sprints collapse every point
// onto the left edge.
func (g Geometry) XScale() float64 {
	if g.DurationDays <= 0 {
		return 0
	}

	return g.Canvas.PlotWidth() / float64(g.DurationDays)
}

// YScale is plot height per story point. Zero-point sprints collapse every
// point onto the top edge.
func (g Geometry) YScale() float64 {
	if g.TotalPoints <= 0 {
		return 0
	}

	return g.Canvas.PlotHeight() / float64(g.TotalPoints)
}

// MapPoint converts a (day, remaining) data point into absolute pixel
// coordinates. The y axis is inverted: full remaining sits at the top
// margin and zero remaining at the plot baseline.
func (g Geometry) MapPoint(day int, remaining float64) (float64, float64) {
	x := g.Canvas.MarginLeft + float64(day)*g.XScale()
	y := g.Canvas.MarginTop + (float64(g.TotalPoints)-remaining)*g.YScale()

	return x, y
}

// YTicks returns the story-point values that get an axis tick and a
// gridline: every multiple of max(1, total/5) from zero through the total.
func (g Geometry) YTicks() []int {
	step := g.TotalPoints / yTickDivisor
	if step < 1 {
		step = 1
	}

	ticks := make([]int, 0, g.TotalPoints/step+1)
	for v := 0; v <= g.TotalPoints; v += step {
		ticks = append(ticks, v)
	}

	return ticks
}

// XLabelDays returns the day indexes that receive an x-axis label: every
// other day, plus unconditionally the final day so the sprint's end date is
// always visible.
func (g Geometry) XLabelDays() []int {
	days := make([]int, 0, g.DurationDays/xLabelStride+2)

	for day := 0; day <= g.DurationDays; day++ {
		if day%xLabelStride == 0 || day == g.DurationDays {
			days = append(days, day)
		}
	}

	return days
}
