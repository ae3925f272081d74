package database

import (
	"context"
	"database/sql"
)

type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

// nextPosition returns one past the highest list position, so a task placed
// there lands last in whichever column it belongs to.
func nextPosition(ctx context.Context, q queryRower) (int, error) {
	var maxPos int
	err := q.QueryRowContext(ctx, "SELECT COALESCE(MAX(position), 0) FROM tasks").Scan(&maxPos)
	return maxPos + 1, err
}
