package commands_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sprintburn/sprintburn/cmd/sprintburn/commands"
	"github.com/sprintburn/sprintburn/internal/sprint"
)

func TestValidate_ValidFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "sprint-01.yaml", testSprintYAML)

	out, err := execute(t, commands.NewValidateCommand(), "--no-color", path)
	require.NoError(t, err)

	assert.Contains(t, out, "Sprint file is valid")
	assert.Contains(t, out, "Sprint 01")
	assert.Contains(t, out, "2 tasks, 5 points")
}

func TestValidate_InvalidFile_ReturnsValidationError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := writeTestFile(t, dir, "sprint-01.yaml", "name: broken\nstart_date: \"2025-01-05\"\nend_date: \"2025-01-01\"\n")

	out, err := execute(t, commands.NewValidateCommand(), "--no-color", path)
	require.ErrorIs(t, err, sprint.ErrValidation)
	assert.Contains(t, out, "Sprint file is invalid")
}

func TestValidate_MissingFile_ReturnsError(t *testing.T) {
	t.Parallel()

	_, err := execute(t, commands.NewValidateCommand(), "--no-color", "/does/not/exist.yaml")
	require.Error(t, err)
}
