package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/akyairhashvil/taskboard/internal/models"
)

var testNow = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func setupTestDB(t *testing.T, ctx context.Context) *Database {
	t.Helper()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "test.db")
	db, err := Open(ctx, dbPath)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	db.SetClock(func() time.Time { return testNow })
	t.Cleanup(func() {
		if err := db.Close(); err != nil {
			t.Logf("db close failed: %v", err)
		}
	})
	return db
}

type TestDataBuilder struct {
	t     *testing.T
	ctx   context.Context
	db    *Database
	tasks []models.Task
}

func NewTestDataBuilder(t *testing.T) *TestDataBuilder {
	t.Helper()
	ctx := context.Background()
	return &TestDataBuilder{t: t, ctx: ctx, db: setupTestDB(t, ctx)}
}

func (b *TestDataBuilder) WithTask(title string, status models.TaskStatus) *TestDataBuilder {
	b.t.Helper()
	task, err := b.db.CreateTask(b.ctx, TaskSeed{Title: title, Status: status})
	if err != nil {
		b.t.Fatalf("CreateTask failed: %v", err)
	}
	b.tasks = append(b.tasks, task)
	return b
}

func (b *TestDataBuilder) Build() *Database {
	return b.db
}

func (b *TestDataBuilder) TaskID(i int) string {
	if i < 0 || i >= len(b.tasks) {
		return ""
	}
	return b.tasks[i].ID
}
