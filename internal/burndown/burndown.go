// Package burndown computes the ideal and actual remaining-work series for
// a sprint. Both series are day-indexed over the sprint's planning horizon
// and freshly allocated on every call; the calculators assume an
// already-validated sprint and cannot fail.
package burndown

import (
	"time"

	"github.com/sprintburn/sprintburn/internal/sprint"
)

// Point is one sample of a burndown series: the zero-based day index, the
// calendar date it maps to, and the story points still remaining. Remaining
// is kept unrounded; display layers round to one decimal place.
type Point struct {
	Day       int
	Date      time.Time
	Remaining float64
}

// Ideal returns the linear planned burndown: total points on day zero,
// falling uniformly to zero on the final day. The series has duration+1
// points. A zero-duration sprint yields a single point with remaining zero
// rather than dividing by zero.
func Ideal(s *sprint.Sprint) []Point {
	total := float64(s.TotalPoints())
	days := s.DurationDays()

	points := make([]Point, 0, days+1)

	for day := 0; day <= days; day++ {
		remaining := 0.0
		if days > 0 {
			remaining = total - total*float64(day)/float64(days)
		}

		points = append(points, Point{
			Day:       day,
			Date:      s.StartDate.AddDate(0, 0, day),
			Remaining: remaining,
		})
	}

	return points
}

// Actual returns the observed burndown derived from task completion dates.
// Completions sharing a date are aggregated before subtraction, and the
// running remainder is clamped at zero so the curve never reports negative
// work.
//
// A completion date that matches no produced day index (before the sprint
// start, or recorded on a complete task only as status) never decrements
// the curve; those points stay permanently unaccounted. Callers who care
// can compare the final sample against CompletedPoints.
func Actual(s *sprint.Sprint) []Point {
	completionsByDate := make(map[string]int)

	for _, task := range s.Tasks {
		if task.IsComplete() && task.HasCompletedDate() {
			key := task.CompletedDate.Format(sprint.DateLayout)
			completionsByDate[key] += task.StoryPoints
		}
	}

	days := s.DurationDays()
	remaining := s.TotalPoints()
	points := make([]Point, 0, days+1)

	for day := 0; day <= days; day++ {
		date := s.StartDate.AddDate(0, 0, day)

		if burned, ok := completionsByDate[date.Format(sprint.DateLayout)]; ok {
			remaining -= burned
		}

		if remaining < 0 {
			remaining = 0
		}

		points = append(points, Point{
			Day:       day,
			Date:      date,
			Remaining: float64(remaining),
		})
	}

	return points
}

// TruncateAtDate returns the prefix of points whose date is on or before
// the reference time's calendar date. Renderers use it to keep the actual
// curve from describing the future; the reference is always injected, never
// read from the wall clock here.
func TruncateAtDate(points []Point, reference time.Time) []Point {
	cutoff := DateOnly(reference)

	truncated := make([]Point, 0, len(points))

	for _, p := range points {
		if p.Date.After(cutoff) {
			break
		}

		truncated = append(truncated, p)
	}

	return truncated
}

// DateOnly strips the time-of-day from a moment, leaving midnight UTC of
// the same calendar date.
func DateOnly(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
