package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/taskboard/internal/logger"
	"github.com/akyairhashvil/taskboard/internal/models"
	"github.com/akyairhashvil/taskboard/internal/timer"
	"github.com/akyairhashvil/taskboard/internal/util"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// TaskSeed describes a task to create.
type TaskSeed struct {
	Title              string
	Description        string
	Status             models.TaskStatus
	Priority           models.Priority
	AssigneeID         string
	ProjectID          string
	DueDate            *time.Time
	EstimatedHours     float64
	AccumulatedSeconds int64
	// RunningSince, when set, inserts the task with a timer session that
	// opened at that instant.
	RunningSince *time.Time
}

// TaskEdit carries the fields an edit form may change. Nil means unchanged.
type TaskEdit struct {
	Title       *string
	Description *string
	Priority    *models.Priority
	AssigneeID  *string
}

// CreateTask inserts a task at the end of its column with an idle timer.
func (d *Database) CreateTask(ctx context.Context, seed TaskSeed) (models.Task, error) {
	var created models.Task
	err := d.WithTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		t, err := insertTask(ctx, tx, seed, d.now())
		created = t
		return err
	})
	if err != nil {
		return models.Task{}, wrapTaskErr("create", created.ID, err)
	}
	logger.Info("task created", zap.String("task_id", created.ID), zap.String("status", string(created.Status)))
	return created, nil
}

// SeedTasks bulk-loads tasks in one transaction. The result is in input order.
func (d *Database) SeedTasks(ctx context.Context, seeds []TaskSeed) ([]models.Task, error) {
	created := make([]models.Task, 0, len(seeds))
	err := d.WithTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		for _, seed := range seeds {
			t, err := insertTask(ctx, tx, seed, d.now())
			if err != nil {
				return err
			}
			created = append(created, t)
		}
		return nil
	})
	if err != nil {
		return nil, wrapTaskErr("seed", "", err)
	}
	logger.Info("tasks seeded", zap.Int("count", len(created)))
	return created, nil
}

func insertTask(ctx context.Context, tx *sql.Tx, seed TaskSeed, now time.Time) (models.Task, error) {
	seed.Title = strings.TrimSpace(seed.Title)
	if seed.Title == "" {
		return models.Task{}, ErrEmptyTitle
	}
	if seed.Status == "" {
		seed.Status = models.StatusPending
	}
	if !seed.Status.Valid() {
		return models.Task{}, fmt.Errorf("%w: %q", ErrInvalidStatus, seed.Status)
	}
	if seed.Priority == "" {
		seed.Priority = models.PriorityMedium
	}
	if seed.AccumulatedSeconds < 0 {
		seed.AccumulatedSeconds = 0
	}
	pos, err := nextPosition(ctx, tx)
	if err != nil {
		return models.Task{}, err
	}
	t := models.Task{
		ID:                 uuid.NewString(),
		Title:              seed.Title,
		Description:        seed.Description,
		Status:             seed.Status,
		Priority:           seed.Priority,
		AssigneeID:         seed.AssigneeID,
		ProjectID:          seed.ProjectID,
		DueDate:            seed.DueDate,
		EstimatedHours:     seed.EstimatedHours,
		CreatedAt:          now.UTC(),
		AccumulatedSeconds: seed.AccumulatedSeconds,
	}
	if seed.RunningSince != nil {
		if t, err = timer.Start(t, timer.NowMs(*seed.RunningSince)); err != nil {
			return models.Task{}, err
		}
	}
	_, err = tx.ExecContext(ctx, `INSERT INTO tasks (id, title, description, status, priority, assignee_id, project_id, due_date, estimated_hours, position, created_at, accumulated_seconds, timer_active, session_started_at_ms, accumulated_at_session_start)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Title, nullableString(t.Description), string(t.Status), string(t.Priority),
		nullableString(t.AssigneeID), nullableString(t.ProjectID), nullableDate(t.DueDate),
		t.EstimatedHours, pos, t.CreatedAt, t.AccumulatedSeconds,
		util.BoolToInt(t.TimerActive), toNullableArg(t.SessionStartedAtMs), toNullableArg(t.AccumulatedAtSessionStart))
	return t, err
}

// UpdateTaskStatus commits a board move. Only status and list position change;
// the task is appended to the end of its new column.
func (d *Database) UpdateTaskStatus(ctx context.Context, change models.StatusChange) error {
	if !change.Status.Valid() {
		return wrapTaskErr("update status", change.TaskID, fmt.Errorf("%w: %q", ErrInvalidStatus, change.Status))
	}
	err := d.WithTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		pos, err := nextPosition(ctx, tx)
		if err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, "UPDATE tasks SET status = ?, position = ? WHERE id = ?", string(change.Status), pos, change.TaskID)
		if err != nil {
			return err
		}
		return requireAffected(res)
	})
	if err != nil {
		return wrapTaskErr("update status", change.TaskID, err)
	}
	logger.Info("task status committed", zap.String("task_id", change.TaskID), zap.String("status", string(change.Status)))
	return nil
}

// ToggleTaskTimer starts or stops the task's timer at now and commits the
// result. It is the collaborator side of every timer control.
func (d *Database) ToggleTaskTimer(ctx context.Context, id string, now time.Time) (models.TimerUpdate, error) {
	var update models.TimerUpdate
	err := d.WithTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		task, err := getTask(ctx, tx, id)
		if err != nil {
			return err
		}
		toggled, err := timer.Toggle(task, timer.NowMs(now))
		if err != nil {
			return err
		}
		update = timer.UpdateFor(toggled)
		return writeTimer(ctx, tx, update)
	})
	if err != nil {
		return models.TimerUpdate{}, wrapTaskErr("toggle timer", id, err)
	}
	logger.Debug("task timer toggled",
		zap.String("task_id", id),
		zap.Bool("active", update.TimerActive),
		zap.Int64("accumulated_seconds", update.AccumulatedSeconds))
	return update, nil
}

// ApplyTimerUpdate commits a timer command computed elsewhere.
func (d *Database) ApplyTimerUpdate(ctx context.Context, update models.TimerUpdate) error {
	hasSession := update.SessionStartedAtMs != nil && update.AccumulatedAtSessionStart != nil
	hasAny := update.SessionStartedAtMs != nil || update.AccumulatedAtSessionStart != nil
	if update.TimerActive != hasSession || (!update.TimerActive && hasAny) || update.AccumulatedSeconds < 0 {
		return wrapTaskErr("apply timer", update.TaskID, ErrInconsistentTimer)
	}
	err := d.WithTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return writeTimer(ctx, tx, update)
	})
	return wrapTaskErr("apply timer", update.TaskID, err)
}

// ResetTaskTimer zeroes the committed time and drops any open session.
func (d *Database) ResetTaskTimer(ctx context.Context, id string) error {
	err := d.WithTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		return writeTimer(ctx, tx, models.TimerUpdate{TaskID: id})
	})
	return wrapTaskErr("reset timer", id, err)
}

func writeTimer(ctx context.Context, tx *sql.Tx, u models.TimerUpdate) error {
	res, err := tx.ExecContext(ctx, `UPDATE tasks SET accumulated_seconds = ?, timer_active = ?, session_started_at_ms = ?, accumulated_at_session_start = ? WHERE id = ?`,
		u.AccumulatedSeconds, util.BoolToInt(u.TimerActive), toNullableArg(u.SessionStartedAtMs), toNullableArg(u.AccumulatedAtSessionStart), u.TaskID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// EditTask applies an edit form. Timer and status are never touched here.
func (d *Database) EditTask(ctx context.Context, id string, edit TaskEdit) error {
	var sets []string
	var args []interface{}
	if edit.Title != nil {
		title := strings.TrimSpace(*edit.Title)
		if title == "" {
			return wrapTaskErr("edit", id, ErrEmptyTitle)
		}
		sets = append(sets, "title = ?")
		args = append(args, title)
	}
	if edit.Description != nil {
		sets = append(sets, "description = ?")
		args = append(args, nullableString(*edit.Description))
	}
	if edit.Priority != nil {
		sets = append(sets, "priority = ?")
		args = append(args, string(*edit.Priority))
	}
	if edit.AssigneeID != nil {
		sets = append(sets, "assignee_id = ?")
		args = append(args, nullableString(*edit.AssigneeID))
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)
	return d.withDBContext(ctx, func(ctx context.Context) error {
		res, err := d.DB.ExecContext(ctx, "UPDATE tasks SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
		if err != nil {
			return wrapTaskErr("edit", id, err)
		}
		return wrapTaskErr("edit", id, requireAffected(res))
	})
}

// DeleteTask removes a task. An open timer session is discarded, not
// committed, and the row disappears in the same transaction. The returned
// task is the discarded record.
func (d *Database) DeleteTask(ctx context.Context, id string) (models.Task, error) {
	var removed models.Task
	err := d.WithTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		task, err := getTask(ctx, tx, id)
		if err != nil {
			return err
		}
		if task.TimerActive {
			logger.Warn("discarding open timer session on delete",
				zap.String("task_id", id),
				zap.Int64("uncommitted_seconds", timer.LiveElapsed(task, timer.NowMs(time.Now()))-util.Deref(task.AccumulatedAtSessionStart)))
		}
		removed = timer.Discard(task)
		res, err := tx.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
		if err != nil {
			return err
		}
		return requireAffected(res)
	})
	if err != nil {
		return models.Task{}, wrapTaskErr("delete", id, err)
	}
	logger.Info("task deleted", zap.String("task_id", id))
	return removed, nil
}

func requireAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrTaskNotFound
	}
	return nil
}
