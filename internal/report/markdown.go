// Package report renders sprint status documents: a Markdown report for
// docs and a paginated PDF. Renderers are mutually independent consumers of
// the same (sprint, ideal, actual, reference) tuple; a failure in one never
// touches another.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/sprintburn/sprintburn/internal/burndown"
	"github.com/sprintburn/sprintburn/internal/sprint"
)

const (
	glyphDone       = "✅"
	glyphInProgress = "⏳"
	glyphPending    = "📋"

	// futurePlaceholder stands in for actual values on days after the
	// reference date.
	futurePlaceholder = "-"
)

// MarkdownRenderer emits the sprint status document as Markdown.
type MarkdownRenderer struct{}

// Render writes sprint metadata, the goal list, the task table, and the
// day-by-day burndown table. Actual values for days after the reference
// date are replaced with a placeholder; they describe the future.
func (MarkdownRenderer) Render(w io.Writer, s *sprint.Sprint, ideal, actual []burndown.Point, reference time.Time) error {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s Status\n\n", s.Name)
	fmt.Fprintf(&b, "**Sprint Period**: %s to %s\n",
		s.StartDate.Format(sprint.DateLayout), s.EndDate.Format(sprint.DateLayout))
	fmt.Fprintf(&b, "**Progress**: %d/%d points (%s%%)\n\n",
		s.CompletedPoints(), s.TotalPoints(), humanize.FtoaWithDigits(s.ProgressPercent(), 0))

	b.WriteString("### Goals\n\n")

	for _, goal := range s.Goals {
		fmt.Fprintf(&b, "- %s\n", goal)
	}

	b.WriteString("\n### Tasks\n\n")
	b.WriteString(taskTable(s))
	b.WriteString("\n\n### Burndown Data\n\n")
	b.WriteString(burndownTable(ideal, actual, reference))
	b.WriteString("\n")

	_, writeErr := io.WriteString(w, b.String())
	if writeErr != nil {
		return fmt.Errorf("write markdown report: %w", writeErr)
	}

	return nil
}

func taskTable(s *sprint.Sprint) string {
	tbl := table.NewWriter()
	tbl.AppendHeader(table.Row{"ID", "Task", "Status", "Points"})

	for _, task := range s.Tasks {
		tbl.AppendRow(table.Row{task.ID, task.Title, statusGlyph(task) + " " + task.Status, task.StoryPoints})
	}

	return tbl.RenderMarkdown()
}

func burndownTable(ideal, actual []burndown.Point, reference time.Time) string {
	cutoff := burndown.DateOnly(reference)

	tbl := table.NewWriter()
	tbl.AppendHeader(table.Row{"Day", "Date", "Ideal", "Actual"})

	for i, p := range ideal {
		actualValue := futurePlaceholder
		if i < len(actual) && !actual[i].Date.After(cutoff) {
			actualValue = strconv.FormatFloat(actual[i].Remaining, 'f', -1, 64)
		}

		tbl.AppendRow(table.Row{
			p.Day,
			p.Date.Format(sprint.DateLayout),
			strconv.FormatFloat(p.Remaining, 'f', 1, 64),
			actualValue,
		})
	}

	return tbl.RenderMarkdown()
}

// statusGlyph picks the display marker for a task's status: a check for
// complete, an hourglass for in-progress, a clipboard otherwise.
func statusGlyph(task sprint.Task) string {
	if task.IsComplete() {
		return glyphDone
	}

	if strings.EqualFold(task.Status, sprint.StatusInProgress) {
		return glyphInProgress
	}

	return glyphPending
}
