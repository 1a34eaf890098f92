package sprint

import (
	"errors"
	"fmt"
)

// ErrValidation is the root of all sprint validation failures. Every error
// returned by the model constructor and the loader wraps it, so callers can
// classify a failure with errors.Is and keep processing other sprints.
var ErrValidation = errors.New("sprint validation failed")

var (
	// ErrBadDate is returned when a date field cannot be parsed as YYYY-MM-DD.
	ErrBadDate = fmt.Errorf("%w: unparsable date", ErrValidation)

	// ErrEndBeforeStart is returned when the end date precedes the start date.
	ErrEndBeforeStart = fmt.Errorf("%w: end date before start date", ErrValidation)

	// ErrNonPositivePoints is returned when a task carries a story-point
	// weight that is not a positive integer. Weights are rejected, not clamped.
	ErrNonPositivePoints = fmt.Errorf("%w: story points must be a positive integer", ErrValidation)

	// ErrDuplicateTaskID is returned when two tasks share an identifier.
	ErrDuplicateTaskID = fmt.Errorf("%w: duplicate task id", ErrValidation)

	// ErrSchema is returned when the raw sprint document violates the
	// embedded JSON schema before model construction is attempted.
	ErrSchema = fmt.Errorf("%w: document schema violation", ErrValidation)
)
