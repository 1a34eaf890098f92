package chart

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/sprintburn/sprintburn/internal/burndown"
	"github.com/sprintburn/sprintburn/internal/sprint"
)

const (
	svgColorIdeal  = "#2196F3"
	svgColorActual = "#4CAF50"
	svgColorGrid   = "#e0e0e0"

	svgIdealDash         = "5,5"
	svgIdealStrokeWidth  = 2
	svgActualStrokeWidth = 3

	svgTickFontSize = 10

	// x-axis date labels use a short month/day form.
	svgDateLayout = "01/02"
)

// SVGRenderer emits a self-contained SVG burndown chart. It is independent
// of the other renderers; the reference time is injected so output is
// reproducible.
type SVGRenderer struct {
	Canvas Canvas
}

// NewSVGRenderer creates an SVG renderer drawing on the given canvas.
func NewSVGRenderer(canvas Canvas) *SVGRenderer {
	return &SVGRenderer{Canvas: canvas}
}

// Render writes the chart for one sprint. The ideal series is always drawn
// in full; the actual series is truncated at the reference date and omitted
// entirely when no points qualify.
func (r *SVGRenderer) Render(w io.Writer, s *sprint.Sprint, ideal, actual []burndown.Point, reference time.Time) error {
	geom := NewGeometry(r.Canvas, s.TotalPoints(), s.DurationDays())
	canvas := r.Canvas

	idealPath := linePath(geom, ideal)
	actualPath := linePath(geom, burndown.TruncateAtDate(actual, reference))

	var b strings.Builder

	fmt.Fprintf(&b, "<?xml version=\"1.0\" encoding=\"UTF-8\"?>\n")
	fmt.Fprintf(&b, "<svg width=\"%s\" height=\"%s\" xmlns=\"http://www.w3.org/2000/svg\">\n",
		ftoa(canvas.Width), ftoa(canvas.Height))
	b.WriteString("  <style>\n")
	b.WriteString("    .title { font-family: Arial, sans-serif; font-size: 16px; font-weight: bold; }\n")
	b.WriteString("    .axis-label { font-family: Arial, sans-serif; font-size: 12px; }\n")
	b.WriteString("    .legend { font-family: Arial, sans-serif; font-size: 11px; }\n")
	b.WriteString("    text { font-family: Arial, sans-serif; }\n")
	b.WriteString("  </style>\n")

	// Background and title.
	fmt.Fprintf(&b, "  <rect width=\"%s\" height=\"%s\" fill=\"white\"/>\n", ftoa(canvas.Width), ftoa(canvas.Height))
	fmt.Fprintf(&b, "  <text x=\"%s\" y=\"25\" text-anchor=\"middle\" class=\"title\">%s - Burndown Chart</text>\n",
		ftoa(canvas.Width/2), escapeXML(s.Name))

	r.writeGrid(&b, geom)
	r.writeAxes(&b)
	r.writeAxisTitles(&b)
	r.writeXLabels(&b, geom, ideal)
	r.writeYLabels(&b, geom)

	fmt.Fprintf(&b, "  <path d=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"%d\" stroke-dasharray=\"%s\"/>\n",
		idealPath, svgColorIdeal, svgIdealStrokeWidth, svgIdealDash)

	if actualPath != "" {
		fmt.Fprintf(&b, "  <path d=\"%s\" fill=\"none\" stroke=\"%s\" stroke-width=\"%d\"/>\n",
			actualPath, svgColorActual, svgActualStrokeWidth)
	}

	r.writeLegend(&b, s)

	b.WriteString("</svg>\n")

	_, writeErr := io.WriteString(w, b.String())
	if writeErr != nil {
		return fmt.Errorf("write svg: %w", writeErr)
	}

	return nil
}

func (r *SVGRenderer) writeGrid(b *strings.Builder, geom Geometry) {
	canvas := r.Canvas

	for _, tick := range geom.YTicks() {
		_, y := geom.MapPoint(0, float64(tick))
		fmt.Fprintf(b, "  <line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\" stroke=\"%s\" stroke-width=\"1\"/>\n",
			ftoa(canvas.MarginLeft), ftoa(y), ftoa(canvas.Width-canvas.MarginRight), ftoa(y), svgColorGrid)
	}
}

func (r *SVGRenderer) writeAxes(b *strings.Builder) {
	canvas := r.Canvas
	baseline := canvas.Height - canvas.MarginBottom

	fmt.Fprintf(b, "  <line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\" stroke=\"black\" stroke-width=\"2\"/>\n",
		ftoa(canvas.MarginLeft), ftoa(canvas.MarginTop), ftoa(canvas.MarginLeft), ftoa(baseline))
	fmt.Fprintf(b, "  <line x1=\"%s\" y1=\"%s\" x2=\"%s\" y2=\"%s\" stroke=\"black\" stroke-width=\"2\"/>\n",
		ftoa(canvas.MarginLeft), ftoa(baseline), ftoa(canvas.Width-canvas.MarginRight), ftoa(baseline))
}

func (r *SVGRenderer) writeAxisTitles(b *strings.Builder) {
	canvas := r.Canvas

	fmt.Fprintf(b, "  <text x=\"%s\" y=\"%s\" text-anchor=\"middle\" class=\"axis-label\">Days</text>\n",
		ftoa(canvas.Width/2), ftoa(canvas.Height-10))
	fmt.Fprintf(b, "  <text x=\"15\" y=\"%s\" text-anchor=\"middle\" transform=\"rotate(-90, 15, %s)\" class=\"axis-label\">Story Points Remaining</text>\n",
		ftoa(canvas.Height/2), ftoa(canvas.Height/2))
}

func (r *SVGRenderer) writeXLabels(b *strings.Builder, geom Geometry, ideal []burndown.Point) {
	canvas := r.Canvas
	labelY := canvas.Height - canvas.MarginBottom + 20

	labeled := make(map[int]struct{}, len(ideal))
	for _, day := range geom.XLabelDays() {
		labeled[day] = struct{}{}
	}

	for _, p := range ideal {
		if _, ok := labeled[p.Day]; !ok {
			continue
		}

		x, _ := geom.MapPoint(p.Day, 0)
		fmt.Fprintf(b, "  <text x=\"%s\" y=\"%s\" text-anchor=\"middle\" font-size=\"%d\">%s</text>\n",
			ftoa(x), ftoa(labelY), svgTickFontSize, p.Date.Format(svgDateLayout))
	}
}

func (r *SVGRenderer) writeYLabels(b *strings.Builder, geom Geometry) {
	canvas := r.Canvas

	for _, tick := range geom.YTicks() {
		_, y := geom.MapPoint(0, float64(tick))
		fmt.Fprintf(b, "  <text x=\"%s\" y=\"%s\" text-anchor=\"end\" font-size=\"%d\">%d</text>\n",
			ftoa(canvas.MarginLeft-10), ftoa(y+4), svgTickFontSize, tick)
	}
}

func (r *SVGRenderer) writeLegend(b *strings.Builder, s *sprint.Sprint) {
	canvas := r.Canvas

	fmt.Fprintf(b, "  <line x1=\"%s\" y1=\"55\" x2=\"%s\" y2=\"55\" stroke=\"%s\" stroke-width=\"%d\" stroke-dasharray=\"%s\"/>\n",
		ftoa(canvas.Width-150), ftoa(canvas.Width-120), svgColorIdeal, svgIdealStrokeWidth, svgIdealDash)
	fmt.Fprintf(b, "  <text x=\"%s\" y=\"58\" class=\"legend\">Ideal</text>\n", ftoa(canvas.Width-115))

	fmt.Fprintf(b, "  <line x1=\"%s\" y1=\"75\" x2=\"%s\" y2=\"75\" stroke=\"%s\" stroke-width=\"%d\"/>\n",
		ftoa(canvas.Width-150), ftoa(canvas.Width-120), svgColorActual, svgActualStrokeWidth)
	fmt.Fprintf(b, "  <text x=\"%s\" y=\"78\" class=\"legend\">Actual</text>\n", ftoa(canvas.Width-115))

	fmt.Fprintf(b, "  <text x=\"%s\" y=\"100\" class=\"legend\">Progress: %.0f%%</text>\n",
		ftoa(canvas.Width-150), s.ProgressPercent())
	fmt.Fprintf(b, "  <text x=\"%s\" y=\"115\" class=\"legend\">%d/%d points</text>\n",
		ftoa(canvas.Width-150), s.CompletedPoints(), s.TotalPoints())
}

// linePath builds an SVG path ("M x,y L x,y ...") through the mapped
// points. Empty input yields an empty path so callers can omit the element.
func linePath(geom Geometry, points []burndown.Point) string {
	if len(points) == 0 {
		return ""
	}

	segments := make([]string, 0, len(points))

	for _, p := range points {
		x, y := geom.MapPoint(p.Day, p.Remaining)
		segments = append(segments, ftoa(x)+","+ftoa(y))
	}

	return "M " + strings.Join(segments, " L ")
}

// ftoa renders a coordinate without trailing zeros.
func ftoa(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// escapeXML escapes the characters that would break SVG text content.
func escapeXML(s string) string {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		`"`, "&quot;",
	)

	return replacer.Replace(s)
}
