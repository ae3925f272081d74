package timer

import (
	"errors"
	"fmt"

	"github.com/akyairhashvil/taskboard/internal/models"
)

// ErrInvalidTimerState marks a start on a running timer or a stop on an idle one.
var ErrInvalidTimerState = errors.New("invalid timer state")

type StateError struct {
	Op     string
	TaskID string
	Active bool
}

func (e *StateError) Error() string {
	if e == nil {
		return ""
	}
	state := "inactive"
	if e.Active {
		state = "active"
	}
	return fmt.Sprintf("%s timer on %s task %q: %v", e.Op, state, e.TaskID, ErrInvalidTimerState)
}

func (e *StateError) Unwrap() error { return ErrInvalidTimerState }

func newStateError(op string, task models.Task) error {
	return &StateError{Op: op, TaskID: task.ID, Active: task.TimerActive}
}
