package seed

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/taskboard/internal/database"
	"github.com/akyairhashvil/taskboard/internal/database/mocks"
	"github.com/akyairhashvil/taskboard/internal/models"
	"github.com/akyairhashvil/taskboard/internal/util"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_SampleBoard(t *testing.T) {
	entries, err := Default()
	require.NoError(t, err)
	require.Len(t, entries, 6)

	counts := map[models.TaskStatus]int{}
	running := 0
	for _, e := range entries {
		s, err := e.TaskSeed()
		require.NoError(t, err, e.Title)
		counts[s.Status]++
		if e.RunningFor > 0 {
			running++
		}
	}
	assert.Equal(t, 2, counts[models.StatusPending])
	assert.Equal(t, 2, counts[models.StatusInProgress])
	assert.Equal(t, 1, counts[models.StatusInReview])
	assert.Equal(t, 1, counts[models.StatusCompleted])
	assert.Equal(t, 1, running)
}

func TestEntryTaskSeed(t *testing.T) {
	seed, err := Entry{
		Title:     "Deploy",
		Status:    "Revisión",
		Priority:  "Urgente",
		Due:       "2024-03-01",
		TimeSpent: 90,
	}.TaskSeed()
	require.NoError(t, err)
	assert.Equal(t, models.StatusInReview, seed.Status)
	assert.Equal(t, models.PriorityUrgent, seed.Priority)
	assert.Equal(t, int64(90), seed.AccumulatedSeconds)
	require.NotNil(t, seed.DueDate)
	assert.Equal(t, "2024-03-01", seed.DueDate.Format(dateLayout))

	defaulted, err := Entry{Title: "Bare"}.TaskSeed()
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, defaulted.Status)
	assert.Equal(t, models.PriorityMedium, defaulted.Priority)
}

func TestEntryTaskSeed_Invalid(t *testing.T) {
	cases := []Entry{
		{Title: " "},
		{Title: "x", Status: "archivado"},
		{Title: "x", Due: "15/02/2024"},
		{Title: "x", TimeSpent: -1},
	}
	for _, e := range cases {
		_, err := e.TaskSeed()
		assert.ErrorIs(t, err, ErrInvalidEntry, "%+v", e)
	}
}

func TestDecode_RejectsUnknownFields(t *testing.T) {
	_, err := Decode(strings.NewReader("tasks:\n  - title: a\n    colour: red\n"))
	assert.Error(t, err)

	entries, err := Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load("/nonexistent/seed.yaml")
	assert.Error(t, err)
}

func TestApply_StartsRunningTimersInOneCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTaskWriter(ctrl)
	ctx := context.Background()
	now := time.UnixMilli(10_000_000)

	entries := []Entry{
		{Title: "Idle", TimeSpent: 60},
		{Title: "Busy", TimeSpent: 600, RunningFor: 30 * time.Minute},
	}
	startMs := now.Add(-30 * time.Minute).UnixMilli()
	created := []models.Task{
		{ID: "a", Title: "Idle", Status: models.StatusPending, AccumulatedSeconds: 60},
		{
			ID: "b", Title: "Busy", Status: models.StatusPending, AccumulatedSeconds: 600,
			TimerActive: true, SessionStartedAtMs: util.Ptr(startMs), AccumulatedAtSessionStart: util.Ptr(int64(600)),
		},
	}

	// Only SeedTasks may be called; a separate toggle would leave a
	// half-seeded store if it failed.
	store.EXPECT().SeedTasks(ctx, gomock.Len(2)).DoAndReturn(
		func(_ context.Context, seeds []database.TaskSeed) ([]models.Task, error) {
			assert.Nil(t, seeds[0].RunningSince)
			require.NotNil(t, seeds[1].RunningSince)
			assert.Equal(t, startMs, seeds[1].RunningSince.UnixMilli())
			return created, nil
		})

	tasks, err := Apply(ctx, store, entries, now)
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.False(t, tasks[0].TimerActive)
	assert.True(t, tasks[1].TimerActive)
}

func TestApply_SeedFailureLeavesNothingBehind(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTaskWriter(ctrl)
	boom := errors.New("disk full")
	store.EXPECT().SeedTasks(gomock.Any(), gomock.Len(1)).Return(nil, boom)

	_, err := Apply(context.Background(), store, []Entry{{Title: "Busy", RunningFor: time.Minute}}, time.Now())
	assert.ErrorIs(t, err, boom)
}

func TestApply_StopsOnInvalidEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTaskWriter(ctrl)

	_, err := Apply(context.Background(), store, []Entry{{Title: ""}}, time.Now())
	assert.ErrorIs(t, err, ErrInvalidEntry)
}

func TestApply_IntoDatabase(t *testing.T) {
	ctx := context.Background()
	db, err := database.Open(ctx, "file:seed_apply?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	entries, err := Default()
	require.NoError(t, err)
	_, err = Apply(ctx, db, entries, time.Now())
	require.NoError(t, err)

	active, err := db.ListActiveTimers(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "Optimizar base de datos", active[0].Title)
	assert.Equal(t, int64(14400), active[0].AccumulatedSeconds)

	_, err = db.GetTask(ctx, "missing")
	assert.True(t, errors.Is(err, database.ErrTaskNotFound))
}
