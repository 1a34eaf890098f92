package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/go-pdf/fpdf"

	"github.com/sprintburn/sprintburn/internal/burndown"
	"github.com/sprintburn/sprintburn/internal/sprint"
)

// PDF cell layout in millimeters on an A4 portrait page.
const (
	pdfTitleHeight   = 10
	pdfLineHeight    = 8
	pdfRowHeight     = 7
	pdfColDayWidth   = 20
	pdfColDateWidth  = 40
	pdfColValueWidth = 30

	pdfFontTitle   = 16
	pdfFontSection = 14
	pdfFontBody    = 11
)

// Core PDF fonts cannot render emoji, so task markers fall back to ASCII.
const (
	pdfMarkDone       = "[x]"
	pdfMarkInProgress = "[~]"
	pdfMarkPending    = "[ ]"
)

// PDFRenderer emits the sprint status document as a paginated A4 PDF.
type PDFRenderer struct{}

// Render writes the same content as the Markdown report: metadata, goals,
// task list, and the day-by-day burndown table with future actuals blanked.
func (PDFRenderer) Render(w io.Writer, s *sprint.Sprint, ideal, actual []burndown.Point, reference time.Time) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", pdfFontTitle)
	pdf.Cell(0, pdfTitleHeight, fmt.Sprintf("%s Status", s.Name))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", pdfFontBody)
	pdf.Cell(0, pdfLineHeight, fmt.Sprintf("Sprint Period: %s to %s",
		s.StartDate.Format(sprint.DateLayout), s.EndDate.Format(sprint.DateLayout)))
	pdf.Ln(6)
	pdf.Cell(0, pdfLineHeight, fmt.Sprintf("Progress: %d/%d points (%s%%)",
		s.CompletedPoints(), s.TotalPoints(), humanize.FtoaWithDigits(s.ProgressPercent(), 0)))
	pdf.Ln(12)

	writeGoals(pdf, s)
	writeTasks(pdf, s)
	writeBurndownRows(pdf, ideal, actual, reference)

	outputErr := pdf.Output(w)
	if outputErr != nil {
		return fmt.Errorf("write pdf report: %w", outputErr)
	}

	return nil
}

func writeGoals(pdf *fpdf.Fpdf, s *sprint.Sprint) {
	pdf.SetFont("Arial", "B", pdfFontSection)
	pdf.Cell(0, pdfTitleHeight, "Goals")
	pdf.Ln(pdfLineHeight)

	pdf.SetFont("Arial", "", pdfFontBody)

	if len(s.Goals) == 0 {
		pdf.Cell(0, pdfLineHeight, "  - No goals recorded.")
		pdf.Ln(pdfLineHeight)
	}

	for _, goal := range s.Goals {
		pdf.MultiCell(0, 6, "  - "+goal, "", "", false)
	}

	pdf.Ln(4)
}

func writeTasks(pdf *fpdf.Fpdf, s *sprint.Sprint) {
	pdf.SetFont("Arial", "B", pdfFontSection)
	pdf.Cell(0, pdfTitleHeight, "Tasks")
	pdf.Ln(pdfLineHeight)

	pdf.SetFont("Arial", "", pdfFontBody)

	for _, task := range s.Tasks {
		line := fmt.Sprintf("%s %s  %s (%d pts, %s)",
			pdfStatusMark(task), task.ID, task.Title, task.StoryPoints, task.Status)
		pdf.MultiCell(0, 6, line, "", "", false)
	}

	pdf.Ln(4)
}

func writeBurndownRows(pdf *fpdf.Fpdf, ideal, actual []burndown.Point, reference time.Time) {
	cutoff := burndown.DateOnly(reference)

	pdf.SetFont("Arial", "B", pdfFontSection)
	pdf.Cell(0, pdfTitleHeight, "Burndown Data")
	pdf.Ln(pdfLineHeight)

	pdf.SetFont("Arial", "B", pdfFontBody)
	pdf.CellFormat(pdfColDayWidth, pdfRowHeight, "Day", "1", 0, "R", false, 0, "")
	pdf.CellFormat(pdfColDateWidth, pdfRowHeight, "Date", "1", 0, "L", false, 0, "")
	pdf.CellFormat(pdfColValueWidth, pdfRowHeight, "Ideal", "1", 0, "R", false, 0, "")
	pdf.CellFormat(pdfColValueWidth, pdfRowHeight, "Actual", "1", 1, "R", false, 0, "")

	pdf.SetFont("Arial", "", pdfFontBody)

	for i, p := range ideal {
		actualValue := futurePlaceholder
		if i < len(actual) && !actual[i].Date.After(cutoff) {
			actualValue = strconv.FormatFloat(actual[i].Remaining, 'f', -1, 64)
		}

		pdf.CellFormat(pdfColDayWidth, pdfRowHeight, strconv.Itoa(p.Day), "1", 0, "R", false, 0, "")
		pdf.CellFormat(pdfColDateWidth, pdfRowHeight, p.Date.Format(sprint.DateLayout), "1", 0, "L", false, 0, "")
		pdf.CellFormat(pdfColValueWidth, pdfRowHeight, strconv.FormatFloat(p.Remaining, 'f', 1, 64), "1", 0, "R", false, 0, "")
		pdf.CellFormat(pdfColValueWidth, pdfRowHeight, actualValue, "1", 1, "R", false, 0, "")
	}
}

func pdfStatusMark(task sprint.Task) string {
	if task.IsComplete() {
		return pdfMarkDone
	}

	if strings.EqualFold(task.Status, sprint.StatusInProgress) {
		return pdfMarkInProgress
	}

	return pdfMarkPending
}
