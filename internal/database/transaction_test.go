package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
)

func TestWithTxRollback(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	err := db.WithTx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, "INSERT INTO tasks (id, title) VALUES (?, ?)", "tx-1", "Rolled back"); err != nil {
			return err
		}
		return fmt.Errorf("force rollback")
	})
	if err == nil {
		t.Fatalf("expected error from WithTx")
	}

	var count int
	if err := db.DB.QueryRowContext(ctx, "SELECT COUNT(1) FROM tasks WHERE id = ?", "tx-1").Scan(&count); err != nil {
		t.Fatalf("query count failed: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected rollback to remove task, got count %d", count)
	}
}

func TestSeedTasks_AllOrNothing(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t, ctx)
	_, err := db.SeedTasks(ctx, []TaskSeed{
		{Title: "Good"},
		{Title: "  "},
	})
	if !errors.Is(err, ErrEmptyTitle) {
		t.Fatalf("expected ErrEmptyTitle, got %v", err)
	}
	tasks, err := db.ListTasks(ctx)
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("expected seed to roll back, got %d tasks", len(tasks))
	}
}
