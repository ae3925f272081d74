package testutil

import (
	"time"

	"github.com/akyairhashvil/taskboard/internal/models"
	"github.com/akyairhashvil/taskboard/internal/util"
	"github.com/google/uuid"
)

// TaskBuilder provides fluent API for creating test tasks.
type TaskBuilder struct {
	task models.Task
}

func NewTask() *TaskBuilder {
	return &TaskBuilder{
		task: models.Task{
			ID:        uuid.NewString(),
			Title:     "Test Task",
			Status:    models.StatusPending,
			Priority:  models.PriorityMedium,
			CreatedAt: time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
		},
	}
}

func (b *TaskBuilder) WithID(id string) *TaskBuilder {
	b.task.ID = id
	return b
}

func (b *TaskBuilder) WithTitle(title string) *TaskBuilder {
	b.task.Title = title
	return b
}

func (b *TaskBuilder) WithStatus(s models.TaskStatus) *TaskBuilder {
	b.task.Status = s
	return b
}

func (b *TaskBuilder) WithPriority(p models.Priority) *TaskBuilder {
	b.task.Priority = p
	return b
}

func (b *TaskBuilder) WithAssignee(id string) *TaskBuilder {
	b.task.AssigneeID = id
	return b
}

func (b *TaskBuilder) WithAccumulated(seconds int64) *TaskBuilder {
	b.task.AccumulatedSeconds = seconds
	return b
}

// Running marks the timer active since startedAtMs.
func (b *TaskBuilder) Running(startedAtMs int64) *TaskBuilder {
	b.task.TimerActive = true
	b.task.SessionStartedAtMs = util.Ptr(startedAtMs)
	b.task.AccumulatedAtSessionStart = util.Ptr(b.task.AccumulatedSeconds)
	return b
}

func (b *TaskBuilder) Build() models.Task {
	return b.task.Clone()
}

// Board builds the two-column fixture used across board tests:
// Pending=[T1,T2], InProgress=[T3].
func Board() []models.Task {
	return []models.Task{
		NewTask().WithID("T1").WithTitle("Write docs").Build(),
		NewTask().WithID("T2").WithTitle("Review PR").WithPriority(models.PriorityHigh).Build(),
		NewTask().WithID("T3").WithTitle("Ship build").WithStatus(models.StatusInProgress).WithAccumulated(120).Running(5_000).Build(),
	}
}
