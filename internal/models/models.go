package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// TaskStatus is the board column a task lives in.
type TaskStatus string

const (
	StatusPending    TaskStatus = "pending"
	StatusInProgress TaskStatus = "in-progress"
	StatusInReview   TaskStatus = "in-review"
	StatusCompleted  TaskStatus = "completed"
)

// Statuses lists the board columns in display order.
var Statuses = []TaskStatus{StatusPending, StatusInProgress, StatusInReview, StatusCompleted}

// ErrUnknownStatus is returned when a status string names no board column.
var ErrUnknownStatus = errors.New("unknown task status")

// Valid reports whether s is one of the four board columns.
func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusInReview, StatusCompleted:
		return true
	}
	return false
}

// Index returns the column index of s, or -1.
func (s TaskStatus) Index() int {
	for i, st := range Statuses {
		if st == s {
			return i
		}
	}
	return -1
}

func (s TaskStatus) String() string { return string(s) }

// ParseStatus accepts the canonical slugs only.
func ParseStatus(v string) (TaskStatus, error) {
	s := TaskStatus(strings.ToLower(strings.TrimSpace(v)))
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, v)
	}
	return s, nil
}

// legacyStatuses maps labels used by older data sets onto board columns.
// Blocked and cancelled are not columns; they fold into pending and completed.
var legacyStatuses = map[string]TaskStatus{
	"pendiente":   StatusPending,
	"todo":        StatusPending,
	"to do":       StatusPending,
	"bloqueado":   StatusPending,
	"blocked":     StatusPending,
	"en progreso": StatusInProgress,
	"in progress": StatusInProgress,
	"revisión":    StatusInReview,
	"revision":    StatusInReview,
	"en revisión": StatusInReview,
	"review":      StatusInReview,
	"completado":  StatusCompleted,
	"completada":  StatusCompleted,
	"done":        StatusCompleted,
	"cancelado":   StatusCompleted,
	"cancelled":   StatusCompleted,
}

// NormalizeStatus is the lenient parser used for imported data.
func NormalizeStatus(v string) (TaskStatus, error) {
	if s, err := ParseStatus(v); err == nil {
		return s, nil
	}
	if s, ok := legacyStatuses[strings.ToLower(strings.TrimSpace(v))]; ok {
		return s, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, v)
}

// Priority is display-only.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityUrgent}

// NormalizePriority maps free-form input to a priority, defaulting to medium.
func NormalizePriority(v string) Priority {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "low", "baja":
		return PriorityLow
	case "high", "alta":
		return PriorityHigh
	case "urgent", "urgente", "critical":
		return PriorityUrgent
	default:
		return PriorityMedium
	}
}

// Next cycles through priorities.
func (p Priority) Next() Priority {
	for i, v := range Priorities {
		if v == p {
			return Priorities[(i+1)%len(Priorities)]
		}
	}
	return PriorityMedium
}

// Task is a unit of work on the board.
type Task struct {
	ID             string
	Title          string
	Description    string
	Status         TaskStatus
	Priority       Priority
	AssigneeID     string
	ProjectID      string
	DueDate        *time.Time
	EstimatedHours float64
	CreatedAt      time.Time

	// Timer state. Both session fields are set iff TimerActive.
	AccumulatedSeconds        int64
	TimerActive               bool
	SessionStartedAtMs        *int64
	AccumulatedAtSessionStart *int64
}

// StatusChange is the command committed after a drag lands in a new column.
type StatusChange struct {
	TaskID string
	Status TaskStatus
}

// TimerUpdate is the command committed after a timer toggle.
type TimerUpdate struct {
	TaskID                    string
	AccumulatedSeconds        int64
	TimerActive               bool
	SessionStartedAtMs        *int64
	AccumulatedAtSessionStart *int64
}

// Apply copies the timer fields of u onto t.
func (u TimerUpdate) Apply(t Task) Task {
	t.AccumulatedSeconds = u.AccumulatedSeconds
	t.TimerActive = u.TimerActive
	t.SessionStartedAtMs = u.SessionStartedAtMs
	t.AccumulatedAtSessionStart = u.AccumulatedAtSessionStart
	return t
}

// CloneTasks deep-copies a task slice, including pointer fields.
func CloneTasks(in []Task) []Task {
	if in == nil {
		return nil
	}
	out := make([]Task, len(in))
	for i, t := range in {
		out[i] = t.Clone()
	}
	return out
}

// Clone returns a copy of t that shares no pointers with it.
func (t Task) Clone() Task {
	if t.DueDate != nil {
		d := *t.DueDate
		t.DueDate = &d
	}
	if t.SessionStartedAtMs != nil {
		v := *t.SessionStartedAtMs
		t.SessionStartedAtMs = &v
	}
	if t.AccumulatedAtSessionStart != nil {
		v := *t.AccumulatedAtSessionStart
		t.AccumulatedAtSessionStart = &v
	}
	return t
}
