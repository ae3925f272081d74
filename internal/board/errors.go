package board

import "errors"

var (
	// ErrStaleDragTarget means the drop resolved to a task or column that no
	// longer exists. The gesture has already been cancelled when it is returned.
	ErrStaleDragTarget   = errors.New("stale drag target")
	ErrGestureInProgress = errors.New("drag gesture already in progress")
	ErrNoGesture         = errors.New("no drag gesture in progress")
	ErrUnknownTask       = errors.New("unknown task")
)
