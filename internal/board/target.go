package board

import (
	"strings"

	"github.com/akyairhashvil/taskboard/internal/models"
)

// columnPrefix marks drop targets that name a whole column rather than a task.
const columnPrefix = "column-"

type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetColumn
	TargetTask
)

// Target is whatever the pointer is over: a column or another task.
type Target struct {
	Kind   TargetKind
	Column models.TaskStatus
	TaskID string
}

func ColumnTarget(status models.TaskStatus) Target {
	return Target{Kind: TargetColumn, Column: status}
}

func TaskTarget(id string) Target {
	return Target{Kind: TargetTask, TaskID: id}
}

// ParseTarget decodes a hover id as produced by ColumnID or a bare task id.
func ParseTarget(id string) Target {
	id = strings.TrimSpace(id)
	if id == "" {
		return Target{}
	}
	if strings.HasPrefix(id, columnPrefix) {
		return ColumnTarget(models.TaskStatus(strings.TrimPrefix(id, columnPrefix)))
	}
	return TaskTarget(id)
}

// ColumnID is the hover id of a column.
func ColumnID(status models.TaskStatus) string {
	return columnPrefix + string(status)
}

func (t Target) String() string {
	switch t.Kind {
	case TargetColumn:
		return ColumnID(t.Column)
	case TargetTask:
		return t.TaskID
	}
	return "<none>"
}
