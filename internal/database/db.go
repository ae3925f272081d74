// Package database is the collaborator that owns the authoritative task list.
//
// It runs on SQLite, in memory by default, and is the only place that
// commits StatusChange and TimerUpdate commands produced by the board and the
// timer engine.
package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/akyairhashvil/taskboard/internal/logger"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"
)

// DefaultDSN is a process-local in-memory database.
const DefaultDSN = "file:taskboard?mode=memory&cache=shared"

const defaultDBTimeout = 5 * time.Second

type Database struct {
	DB  *sql.DB
	dsn string
	now func() time.Time
}

// Open connects to dsn and creates the schema. An empty dsn uses DefaultDSN.
func Open(ctx context.Context, dsn string) (*Database, error) {
	if dsn == "" {
		dsn = DefaultDSN
	}
	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, &OpError{Op: "open", Resource: "database", Err: err}
	}
	// A single connection keeps an in-memory database alive and serialises writers.
	conn.SetMaxOpenConns(1)
	d := &Database{DB: conn, dsn: dsn, now: time.Now}
	if err := d.withDBContext(ctx, func(ctx context.Context) error {
		return conn.PingContext(ctx)
	}); err != nil {
		_ = conn.Close()
		return nil, &OpError{Op: "ping", Resource: "database", Err: err}
	}
	if err := d.createTables(ctx); err != nil {
		_ = conn.Close()
		return nil, err
	}
	logger.Debug("database opened", zap.String("dsn", dsn))
	return d, nil
}

func (d *Database) Close() error {
	if d == nil || d.DB == nil {
		return nil
	}
	return d.DB.Close()
}

// SetClock overrides the wall clock used for created_at stamps.
func (d *Database) SetClock(now func() time.Time) {
	if now != nil {
		d.now = now
	}
}

func (d *Database) createTables(ctx context.Context) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS tasks (
			id TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			description TEXT,
			status TEXT NOT NULL DEFAULT 'pending',
			priority TEXT NOT NULL DEFAULT 'medium',
			assignee_id TEXT,
			project_id TEXT,
			due_date TEXT,
			estimated_hours REAL DEFAULT 0,
			position INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			accumulated_seconds INTEGER NOT NULL DEFAULT 0,
			timer_active INTEGER NOT NULL DEFAULT 0,
			session_started_at_ms INTEGER,
			accumulated_at_session_start INTEGER
		);`,
		`CREATE INDEX IF NOT EXISTS idx_tasks_status ON tasks(status, position);`,
	}
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	for _, query := range queries {
		if _, err := d.DB.ExecContext(ctx, query); err != nil {
			return &OpError{Op: "create schema", Resource: "database", Err: err}
		}
	}
	return d.migrate(ctx)
}

// migrate adds columns introduced after the first schema. Re-running is safe.
func (d *Database) migrate(ctx context.Context) error {
	columns := map[string]string{
		"project_id":      "ALTER TABLE tasks ADD COLUMN project_id TEXT",
		"estimated_hours": "ALTER TABLE tasks ADD COLUMN estimated_hours REAL DEFAULT 0",
	}
	existing, err := d.tableColumns(ctx, "tasks")
	if err != nil {
		return &OpError{Op: "migrate", Resource: "database", Err: err}
	}
	for name, stmt := range columns {
		if existing[name] {
			continue
		}
		if _, err := d.DB.ExecContext(ctx, stmt); err != nil {
			return &OpError{Op: "migrate", Resource: "database", Err: err}
		}
	}
	return nil
}

func (d *Database) tableColumns(ctx context.Context, table string) (map[string]bool, error) {
	rows, err := d.DB.QueryContext(ctx, "SELECT name FROM pragma_table_info(?)", table)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	out := make(map[string]bool)
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		out[name] = true
	}
	return out, rows.Err()
}

func (d *Database) withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

func (d *Database) withDBContext(ctx context.Context, fn func(context.Context) error) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	return fn(ctx)
}

func withDBContextResult[T any](d *Database, ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	return fn(ctx)
}

// WithTx runs fn in a transaction, rolling back if it fails.
func (d *Database) WithTx(ctx context.Context, fn func(context.Context, *sql.Tx) error) error {
	ctx, cancel := d.withTimeout(ctx, defaultDBTimeout)
	defer cancel()
	tx, err := d.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	if err := fn(ctx, tx); err != nil {
		return rollbackWithLog(tx, err)
	}
	return tx.Commit()
}

func rollbackWithLog(tx *sql.Tx, err error) error {
	if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
		logger.Error("rollback failed", rbErr)
	}
	return err
}
