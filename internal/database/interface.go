package database

import (
	"context"
	"time"

	"github.com/akyairhashvil/taskboard/internal/models"
)

// TaskReader defines read-only task queries.
type TaskReader interface {
	ListTasks(ctx context.Context) ([]models.Task, error)
	ListTasksByStatus(ctx context.Context, status models.TaskStatus) ([]models.Task, error)
	ListActiveTimers(ctx context.Context) ([]models.Task, error)
	GetTask(ctx context.Context, id string) (models.Task, error)
}

// TaskWriter defines the commands that change the authoritative list.
type TaskWriter interface {
	CreateTask(ctx context.Context, seed TaskSeed) (models.Task, error)
	SeedTasks(ctx context.Context, seeds []TaskSeed) ([]models.Task, error)
	UpdateTaskStatus(ctx context.Context, change models.StatusChange) error
	ToggleTaskTimer(ctx context.Context, id string, now time.Time) (models.TimerUpdate, error)
	ApplyTimerUpdate(ctx context.Context, update models.TimerUpdate) error
	ResetTaskTimer(ctx context.Context, id string) error
	EditTask(ctx context.Context, id string, edit TaskEdit) error
	DeleteTask(ctx context.Context, id string) (models.Task, error)
}

// TaskRepository combines all task operations.
//
//go:generate mockgen -source=interface.go -destination=mocks/mock_repository.go -package=mocks
type TaskRepository interface {
	TaskReader
	TaskWriter
}

var _ TaskRepository = (*Database)(nil)
