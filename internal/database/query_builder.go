package database

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/taskboard/internal/models"
)

const taskColumns = `id, title, description, status, priority, assignee_id, project_id, due_date, estimated_hours, created_at, accumulated_seconds, timer_active, session_started_at_ms, accumulated_at_session_start`

type TaskQuery struct {
	columns string
	filters []string
	args    []interface{}
	orderBy string
	limit   int
}

func NewTaskQuery() *TaskQuery {
	return &TaskQuery{columns: taskColumns, orderBy: "position ASC, created_at ASC"}
}

func (q *TaskQuery) Where(filter string, args ...interface{}) *TaskQuery {
	q.filters = append(q.filters, filter)
	q.args = append(q.args, args...)
	return q
}

func (q *TaskQuery) WhereID(id string) *TaskQuery {
	return q.Where("id = ?", id)
}

func (q *TaskQuery) WhereStatus(status models.TaskStatus) *TaskQuery {
	return q.Where("status = ?", string(status))
}

func (q *TaskQuery) WhereAssignee(assigneeID string) *TaskQuery {
	return q.Where("assignee_id = ?", assigneeID)
}

func (q *TaskQuery) WhereTimerActive() *TaskQuery {
	return q.Where("timer_active = 1")
}

func (q *TaskQuery) OrderBy(orderBy string) *TaskQuery {
	q.orderBy = orderBy
	return q
}

func (q *TaskQuery) Limit(limit int) *TaskQuery {
	q.limit = limit
	return q
}

func (q *TaskQuery) Build() (string, []interface{}) {
	query := fmt.Sprintf("SELECT %s FROM tasks", q.columns)
	if len(q.filters) > 0 {
		query += " WHERE " + strings.Join(q.filters, " AND ")
	}
	if q.orderBy != "" {
		query += " ORDER BY " + q.orderBy
	}
	if q.limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", q.limit)
	}
	return query, q.args
}
