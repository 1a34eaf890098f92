// Package sprint holds the immutable sprint data model and the YAML loader
// that constructs it. All derived metrics are pure functions over the stored
// fields, recomputed on every call; nothing is cached or mutated in place.
package sprint

import (
	"fmt"
	"time"
)

// DateLayout is the calendar date format used by sprint documents.
const DateLayout = "2006-01-02"

const percentScale = 100.0

// Sprint is a planning window with its goals and tasks. Task order is
// declaration order; it is preserved for display but never significant for
// computation. EndDate is inclusive.
type Sprint struct {
	ID        string
	Name      string
	StartDate time.Time
	EndDate   time.Time
	Goals     []string
	Tasks     []Task
}

// New constructs a validated Sprint from already-parsed field values.
// It fails with an error wrapping ErrValidation when the end date precedes
// the start date, when any task weight is not positive, or when two tasks
// share an id. No side effects.
func New(id, name string, start, end time.Time, goals []string, tasks []Task) (*Sprint, error) {
	if end.Before(start) {
		return nil, fmt.Errorf("%w: %s < %s", ErrEndBeforeStart, end.Format(DateLayout), start.Format(DateLayout))
	}

	seen := make(map[string]struct{}, len(tasks))

	for _, task := range tasks {
		if task.StoryPoints <= 0 {
			return nil, fmt.Errorf("%w: task %q has %d", ErrNonPositivePoints, task.ID, task.StoryPoints)
		}

		if task.ID == "" {
			continue
		}

		if _, dup := seen[task.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTaskID, task.ID)
		}

		seen[task.ID] = struct{}{}
	}

	return &Sprint{
		ID:        id,
		Name:      name,
		StartDate: start,
		EndDate:   end,
		Goals:     goals,
		Tasks:     tasks,
	}, nil
}

// TotalPoints is the sum of all task weights.
func (s *Sprint) TotalPoints() int {
	total := 0
	for _, task := range s.Tasks {
		total += task.StoryPoints
	}

	return total
}

// CompletedPoints is the sum of weights of tasks whose status marks them complete.
func (s *Sprint) CompletedPoints() int {
	completed := 0

	for _, task := range s.Tasks {
		if task.IsComplete() {
			completed += task.StoryPoints
		}
	}

	return completed
}

// RemainingPoints is TotalPoints minus CompletedPoints.
func (s *Sprint) RemainingPoints() int {
	return s.TotalPoints() - s.CompletedPoints()
}

// DurationDays is the planning horizon in whole days. A one-day sprint
// (start equals end) has duration zero.
func (s *Sprint) DurationDays() int {
	return int(s.EndDate.Sub(s.StartDate).Hours() / 24)
}

// ProgressPercent is the completed share of total points in [0, 100].
// A sprint with zero total points reports 0, not a division error.
func (s *Sprint) ProgressPercent() float64 {
	total := s.TotalPoints()
	if total == 0 {
		return 0.0
	}

	return float64(s.CompletedPoints()) / float64(total) * percentScale
}
