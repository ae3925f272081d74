package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/akyairhashvil/taskboard/internal/models"
	"github.com/akyairhashvil/taskboard/internal/util"
)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTask(row rowScanner) (models.Task, error) {
	var t models.Task
	var (
		description sql.NullString
		assignee    sql.NullString
		project     sql.NullString
		due         sql.NullString
		status      string
		priority    string
		active      int
	)
	if err := row.Scan(
		&t.ID,
		&t.Title,
		&description,
		&status,
		&priority,
		&assignee,
		&project,
		&due,
		&t.EstimatedHours,
		&t.CreatedAt,
		&t.AccumulatedSeconds,
		&active,
		&t.SessionStartedAtMs,
		&t.AccumulatedAtSessionStart,
	); err != nil {
		return models.Task{}, err
	}
	t.Description = description.String
	t.AssigneeID = assignee.String
	t.ProjectID = project.String
	t.DueDate = parseDate(due)
	t.Status = models.TaskStatus(status)
	t.Priority = models.Priority(priority)
	t.TimerActive = util.IntToBool(active)
	return t, nil
}

// ListTasks returns every task in board order.
func (d *Database) ListTasks(ctx context.Context) ([]models.Task, error) {
	query, args := NewTaskQuery().Build()
	return d.queryTasks(ctx, "list", query, args...)
}

// ListTasksByStatus returns one column in board order.
func (d *Database) ListTasksByStatus(ctx context.Context, status models.TaskStatus) ([]models.Task, error) {
	query, args := NewTaskQuery().WhereStatus(status).Build()
	return d.queryTasks(ctx, "list status", query, args...)
}

// ListActiveTimers returns tasks with an open timer session.
func (d *Database) ListActiveTimers(ctx context.Context) ([]models.Task, error) {
	query, args := NewTaskQuery().WhereTimerActive().Build()
	return d.queryTasks(ctx, "list active timers", query, args...)
}

func (d *Database) GetTask(ctx context.Context, id string) (models.Task, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) (models.Task, error) {
		return getTask(ctx, d.DB, id)
	})
}

func getTask(ctx context.Context, q queryRower, id string) (models.Task, error) {
	query, args := NewTaskQuery().WhereID(id).Build()
	t, err := scanTask(q.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Task{}, wrapTaskErr("get", id, ErrTaskNotFound)
	}
	return t, wrapTaskErr("get", id, err)
}

func (d *Database) queryTasks(ctx context.Context, op string, query string, args ...interface{}) ([]models.Task, error) {
	return withDBContextResult(d, ctx, func(ctx context.Context) ([]models.Task, error) {
		rows, err := d.DB.QueryContext(ctx, query, args...)
		if err != nil {
			return nil, wrapTaskErr(op, "", err)
		}
		defer rows.Close()

		var tasks []models.Task
		for rows.Next() {
			t, err := scanTask(rows)
			if err != nil {
				return nil, wrapTaskErr(op, "", err)
			}
			tasks = append(tasks, t)
		}
		if err := rows.Err(); err != nil {
			return nil, wrapTaskErr(op, "", err)
		}
		return tasks, nil
	})
}
