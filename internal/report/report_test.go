package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/akyairhashvil/taskboard/internal/locale"
	"github.com/akyairhashvil/taskboard/internal/models"
	"github.com/akyairhashvil/taskboard/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTasks() []models.Task {
	return []models.Task{
		testutil.NewTask().WithID("a").WithAssignee("ana").WithStatus(models.StatusCompleted).WithAccumulated(3600).Build(),
		testutil.NewTask().WithID("b").WithAssignee("ana").WithStatus(models.StatusInProgress).WithAccumulated(600).Running(1_000_000).Build(),
		testutil.NewTask().WithID("c").WithAssignee("luis").WithStatus(models.StatusPending).WithAccumulated(60).Build(),
		testutil.NewTask().WithID("d").WithStatus(models.StatusPending).Build(),
	}
}

func TestBuild(t *testing.T) {
	now := int64(1_000_000 + 90_500)
	s := Build(sampleTasks(), now)

	assert.Equal(t, 4, s.Tasks)
	assert.Equal(t, 2, s.Counts[models.StatusPending])
	assert.Equal(t, 1, s.Counts[models.StatusInProgress])
	assert.Equal(t, 0, s.Counts[models.StatusInReview])
	assert.Equal(t, 1, s.Counts[models.StatusCompleted])
	assert.Equal(t, 1, s.ActiveTimers)
	assert.Equal(t, int64(3600+600+90+60), s.TotalSeconds)
	assert.Equal(t, 25.0, s.CompletionRate)

	require.Len(t, s.Assignees, 3)
	assert.Equal(t, Group{Key: "ana", Tasks: 2, Completed: 1, Seconds: 4290}, s.Assignees[0])
	assert.Equal(t, "luis", s.Assignees[1].Key)
	assert.Equal(t, "", s.Assignees[2].Key)
}

func TestBuild_Empty(t *testing.T) {
	s := Build(nil, 0)
	assert.Zero(t, s.Tasks)
	assert.Zero(t, s.CompletionRate)
	assert.Empty(t, s.Assignees)
}

func TestBuild_RoundsCompletionRate(t *testing.T) {
	tasks := []models.Task{
		testutil.NewTask().WithStatus(models.StatusCompleted).Build(),
		testutil.NewTask().Build(),
		testutil.NewTask().Build(),
	}
	assert.Equal(t, 33.3, Build(tasks, 0).CompletionRate)
}

func TestWritePDF(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "reports")
	tasks := sampleTasks()
	s := Build(tasks, 1_090_500)

	path, err := WritePDF(dir, s, tasks, locale.Spanish)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".pdf"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}
