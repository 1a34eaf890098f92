package sprint_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sprintburn/sprintburn/internal/sprint"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validTasks() []sprint.Task {
	return []sprint.Task{
		{ID: "T-1", Title: "Wire parser", Status: "done", StoryPoints: 3, CompletedDate: date(2025, 1, 2)},
		{ID: "T-2", Title: "Render chart", Status: "in-progress", StoryPoints: 2},
		{ID: "T-3", Title: "Write docs", Status: "pending", StoryPoints: 1},
	}
}

func TestNew_ValidFields_NoError(t *testing.T) {
	t.Parallel()

	s, err := sprint.New("sprint-01", "Sprint 01", date(2025, 1, 1), date(2025, 1, 5), []string{"ship it"}, validTasks())
	require.NoError(t, err)
	require.NotNil(t, s)
}

func TestNew_EndBeforeStart_ReturnsValidationError(t *testing.T) {
	t.Parallel()

	_, err := sprint.New("s", "s", date(2025, 1, 5), date(2025, 1, 1), nil, nil)
	require.ErrorIs(t, err, sprint.ErrEndBeforeStart)
	require.ErrorIs(t, err, sprint.ErrValidation)
}

func TestNew_NonPositivePoints_ReturnsValidationError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		points int
	}{
		{"zero", 0},
		{"negative", -2},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			tasks := []sprint.Task{{ID: "T-1", Title: "x", Status: "pending", StoryPoints: tt.points}}

			_, err := sprint.New("s", "s", date(2025, 1, 1), date(2025, 1, 5), nil, tasks)
			require.ErrorIs(t, err, sprint.ErrNonPositivePoints)
		})
	}
}

func TestNew_DuplicateTaskIDs_ReturnsValidationError(t *testing.T) {
	t.Parallel()

	tasks := []sprint.Task{
		{ID: "T-1", Title: "a", Status: "pending", StoryPoints: 1},
		{ID: "T-1", Title: "b", Status: "pending", StoryPoints: 1},
	}

	_, err := sprint.New("s", "s", date(2025, 1, 1), date(2025, 1, 5), nil, tasks)
	require.ErrorIs(t, err, sprint.ErrDuplicateTaskID)
}

func TestNew_StartEqualsEnd_NoError(t *testing.T) {
	t.Parallel()

	s, err := sprint.New("s", "s", date(2025, 1, 1), date(2025, 1, 1), nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, s.DurationDays())
}

func TestDerivedMetrics_MixedTasks(t *testing.T) {
	t.Parallel()

	s, err := sprint.New("sprint-01", "Sprint 01", date(2025, 1, 1), date(2025, 1, 5), nil, validTasks())
	require.NoError(t, err)

	assert.Equal(t, 6, s.TotalPoints())
	assert.Equal(t, 3, s.CompletedPoints())
	assert.Equal(t, 3, s.RemainingPoints())
	assert.Equal(t, 4, s.DurationDays())
	assert.InDelta(t, 50.0, s.ProgressPercent(), 0.001)
}

func TestProgressPercent_ZeroTasks_ReportsZero(t *testing.T) {
	t.Parallel()

	s, err := sprint.New("s", "s", date(2025, 1, 1), date(2025, 1, 5), nil, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, s.TotalPoints())
	assert.InDelta(t, 0.0, s.ProgressPercent(), 0.0001)
}

func TestIsComplete_StatusSynonyms(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status string
		want   bool
	}{
		{"done", true},
		{"Done", true},
		{"complete", true},
		{"COMPLETED", true},
		{"pending", false},
		{"in-progress", false},
		{"", false},
	}

	for _, tt := range tests {
		task := sprint.Task{Status: tt.status}
		assert.Equal(t, tt.want, task.IsComplete(), "status=%q", tt.status)
	}
}

func TestIsComplete_IgnoresCompletedDate(t *testing.T) {
	t.Parallel()

	// A recorded date never implies completion; only status does.
	task := sprint.Task{Status: "pending", CompletedDate: date(2025, 1, 2)}
	assert.False(t, task.IsComplete())

	// And a complete task may lack a date entirely.
	task = sprint.Task{Status: "done"}
	assert.True(t, task.IsComplete())
	assert.False(t, task.HasCompletedDate())
}

func TestDerivedMetrics_Idempotent(t *testing.T) {
	t.Parallel()

	s, err := sprint.New("s", "s", date(2025, 1, 1), date(2025, 1, 5), nil, validTasks())
	require.NoError(t, err)

	assert.Equal(t, s.TotalPoints(), s.TotalPoints())
	assert.Equal(t, s.CompletedPoints(), s.CompletedPoints())
	assert.InDelta(t, s.ProgressPercent(), s.ProgressPercent(), 0.0)
}
