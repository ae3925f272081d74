package database

import (
	"errors"
	"fmt"
)

var (
	ErrTaskNotFound      = errors.New("task not found")
	ErrInvalidStatus     = errors.New("invalid task status")
	ErrInconsistentTimer = errors.New("timer update is inconsistent")
	ErrEmptyTitle        = errors.New("task title is empty")
)

type OpError struct {
	Op       string
	Resource string
	ID       string
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID != "" {
		return fmt.Sprintf("%s %s %s: %v", e.Op, e.Resource, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapTaskErr(op string, id string, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "task", ID: id, Err: err}
}
