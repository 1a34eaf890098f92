package sprint

import (
	"strings"
	"time"
)

// Status values a task may carry. Any other string is treated as pending
// for display purposes; completion is derived from the done synonyms only.
const (
	StatusPending    = "pending"
	StatusInProgress = "in-progress"
	StatusDone       = "done"
)

// DefaultStoryPoints is the weight assigned to a task that declares none.
const DefaultStoryPoints = 1

// Task is a single unit of sprint work. Values are immutable after
// construction; completion is derived solely from Status, never from the
// presence of CompletedDate.
type Task struct {
	ID            string
	Title         string
	Status        string
	StoryPoints   int
	CompletedDate time.Time // zero when no completion date was recorded
}

// IsComplete reports whether the task's status marks it as finished.
// Matching is case-insensitive over the done/complete/completed synonyms.
func (t Task) IsComplete() bool {
	switch strings.ToLower(t.Status) {
	case "done", "complete", "completed":
		return true
	default:
		return false
	}
}

// HasCompletedDate reports whether a completion date was recorded. A task
// may be complete without one; its points then never leave the actual curve.
func (t Task) HasCompletedDate() bool {
	return !t.CompletedDate.IsZero()
}
