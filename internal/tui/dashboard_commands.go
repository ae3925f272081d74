package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/taskboard/internal/database"
	"github.com/akyairhashvil/taskboard/internal/locale"
	"github.com/akyairhashvil/taskboard/internal/models"
	"github.com/akyairhashvil/taskboard/internal/report"
	"github.com/akyairhashvil/taskboard/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
)

// --- Messages ---

// tasksLoadedMsg delivers a fresh authoritative list from the store.
type tasksLoadedMsg struct {
	tasks []models.Task
	err   error
}

type statusCommittedMsg struct {
	change models.StatusChange
	err    error
}

type timerToggledMsg struct {
	update models.TimerUpdate
	err    error
}

type timerResetMsg struct {
	id  string
	err error
}

type taskCreatedMsg struct {
	task models.Task
	err  error
}

type taskEditedMsg struct {
	id  string
	err error
}

type taskDeletedMsg struct {
	task models.Task
	err  error
}

type reportWrittenMsg struct {
	path string
	err  error
}

// --- Commands ---

func loadTasksCmd(ctx context.Context, store database.TaskReader) tea.Cmd {
	return func() tea.Msg {
		tasks, err := store.ListTasks(ctx)
		return tasksLoadedMsg{tasks: tasks, err: err}
	}
}

func commitStatusCmd(ctx context.Context, store database.TaskWriter, change models.StatusChange) tea.Cmd {
	return func() tea.Msg {
		return statusCommittedMsg{change: change, err: store.UpdateTaskStatus(ctx, change)}
	}
}

// toggleTimerCmd is the one path every timer control goes through: board
// card, table row and details panel alike.
func toggleTimerCmd(ctx context.Context, store database.TaskWriter, id string, now time.Time) tea.Cmd {
	return func() tea.Msg {
		update, err := store.ToggleTaskTimer(ctx, id, now)
		return timerToggledMsg{update: update, err: err}
	}
}

func resetTimerCmd(ctx context.Context, store database.TaskWriter, id string) tea.Cmd {
	return func() tea.Msg {
		return timerResetMsg{id: id, err: store.ResetTaskTimer(ctx, id)}
	}
}

func createTaskCmd(ctx context.Context, store database.TaskWriter, seed database.TaskSeed) tea.Cmd {
	return func() tea.Msg {
		task, err := store.CreateTask(ctx, seed)
		return taskCreatedMsg{task: task, err: err}
	}
}

func editTaskCmd(ctx context.Context, store database.TaskWriter, id string, edit database.TaskEdit) tea.Cmd {
	return func() tea.Msg {
		return taskEditedMsg{id: id, err: store.EditTask(ctx, id, edit)}
	}
}

func deleteTaskCmd(ctx context.Context, store database.TaskWriter, id string) tea.Cmd {
	return func() tea.Msg {
		task, err := store.DeleteTask(ctx, id)
		return taskDeletedMsg{task: task, err: err}
	}
}

func writeReportCmd(dir string, tasks []models.Task, now time.Time, labels locale.Labels) tea.Cmd {
	return func() tea.Msg {
		summary := report.Build(tasks, timer.NowMs(now))
		path, err := report.WritePDF(dir, summary, tasks, labels)
		return reportWrittenMsg{path: path, err: err}
	}
}
