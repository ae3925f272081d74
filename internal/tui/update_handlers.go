package tui

import (
	"strings"

	"github.com/akyairhashvil/taskboard/internal/config"
	"github.com/akyairhashvil/taskboard/internal/database"
	"github.com/akyairhashvil/taskboard/internal/models"
	"github.com/akyairhashvil/taskboard/internal/util"
	tea "github.com/charmbracelet/bubbletea"
)

// openDetailsMsg asks the root model to show the details panel for a task.
type openDetailsMsg struct {
	taskID string
}

var boardOnly = []int{config.ViewModeBoard}

func registerBindings(r *HandlerRegistry) {
	r.Register(
		KeyBinding{Key: "left", Handler: handleFocusLeft, ViewModes: boardOnly},
		KeyBinding{Key: "right", Handler: handleFocusRight, ViewModes: boardOnly},
		KeyBinding{Key: "up", Handler: handleFocusUp},
		KeyBinding{Key: "down", Handler: handleFocusDown},
		KeyBinding{Key: "space", Handler: handlePickUp, Description: "move", ViewModes: boardOnly, Priority: 10},
		KeyBinding{Key: "t", Handler: handleToggleTimer, Description: "timer", Priority: 10},
		KeyBinding{Key: "enter", Handler: handleOpenDetails, Description: "details"},
		KeyBinding{Key: "n", Handler: handleNewTask, Description: "new", ViewModes: boardOnly},
		KeyBinding{Key: "e", Handler: handleEditTask, Description: "edit"},
		KeyBinding{Key: "d", Handler: handleDeleteTask, Description: "delete"},
		KeyBinding{Key: "v", Handler: handleToggleView, Description: "view"},
		KeyBinding{Key: "l", Handler: handleToggleLocale, Description: "lang"},
		KeyBinding{Key: "R", Handler: handleReport, Description: "report"},
		KeyBinding{Key: "q", Handler: handleQuit, Description: "quit"},
		KeyBinding{Key: "ctrl+c", Handler: handleQuit},
	)
	registerDragBindings(r)
}

func handleFocusLeft(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.view.focusedCol = util.Clamp(m.view.focusedCol-1, 0, len(models.Statuses)-1)
	m.view.focusedIdx = 0
	return m, nil, true
}

func handleFocusRight(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.view.focusedCol = util.Clamp(m.view.focusedCol+1, 0, len(models.Statuses)-1)
	m.view.focusedIdx = 0
	return m, nil, true
}

func handleFocusUp(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	return m.moveCursor(-1), nil, true
}

func handleFocusDown(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	return m.moveCursor(1), nil, true
}

func (m DashboardModel) moveCursor(delta int) DashboardModel {
	if m.view.mode == config.ViewModeTable {
		m.view.tableRow = util.Clamp(m.view.tableRow+delta, 0, len(m.tableRows())-1)
		return m
	}
	n := len(m.rec.Column(m.focusedStatus()))
	m.view.focusedIdx = util.Clamp(m.view.focusedIdx+delta, 0, n-1)
	return m
}

func handleToggleTimer(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	task, ok := m.focusedTask()
	if !ok {
		return m, nil, true
	}
	return m, toggleTimerCmd(m.ctx, m.store, task.ID, m.now()), true
}

func handleOpenDetails(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	task, ok := m.focusedTask()
	if !ok {
		return m, nil, true
	}
	id := task.ID
	return m, func() tea.Msg { return openDetailsMsg{taskID: id} }, true
}

func handleNewTask(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.modals.Open(&TaskCreateState{Column: m.view.focusedCol})
	m.inputs.textInput.Reset()
	m.inputs.textInput.Placeholder = m.labels.NewTaskTitle
	return m, m.inputs.textInput.Focus(), true
}

func handleEditTask(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	task, ok := m.focusedTask()
	if !ok {
		return m, nil, true
	}
	m.modals.Open(&TaskEditState{TaskID: task.ID})
	m.inputs.textInput.Placeholder = m.labels.EditTitle
	m.inputs.textInput.SetValue(task.Title)
	m.inputs.textInput.CursorEnd()
	return m, m.inputs.textInput.Focus(), true
}

func handleDeleteTask(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	task, ok := m.focusedTask()
	if !ok {
		return m, nil, true
	}
	m.modals.Open(&TaskDeleteState{TaskID: task.ID, Title: task.Title})
	return m, nil, true
}

func handleToggleView(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	if m.view.mode == config.ViewModeBoard {
		m.view.mode = config.ViewModeTable
	} else {
		m.view.mode = config.ViewModeBoard
	}
	return m, nil, true
}

func handleToggleLocale(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	m.labels = m.labels.Toggle()
	return m, nil, true
}

func handleReport(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	dir := m.reportsDir
	if dir == "" {
		dir = util.ReportsDir(config.AppName)
	}
	return m, writeReportCmd(dir, m.rec.Tasks(), m.now(), m.labels), true
}

func handleQuit(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	return m, tea.Quit, true
}

func (m DashboardModel) handleModalKey(msg tea.KeyMsg) (DashboardModel, tea.Cmd) {
	switch state := m.modals.Current().(type) {
	case *TaskDeleteState:
		m.modals.Close()
		if msg.String() == "y" || msg.String() == "Y" {
			return m, deleteTaskCmd(m.ctx, m.store, state.TaskID)
		}
		return m, nil
	case *TaskCreateState, *TaskEditState:
		switch msg.Type {
		case tea.KeyEsc:
			m.modals.Close()
			m.inputs.textInput.Blur()
			return m, nil
		case tea.KeyEnter:
			return m.submitTitle()
		}
		var cmd tea.Cmd
		m.inputs.textInput, cmd = m.inputs.textInput.Update(msg)
		return m, cmd
	}
	m.modals.Close()
	return m, nil
}

func (m DashboardModel) submitTitle() (DashboardModel, tea.Cmd) {
	title := strings.TrimSpace(m.inputs.textInput.Value())
	if title == "" {
		m.err = database.ErrEmptyTitle
		return m, nil
	}
	state := m.modals.Current()
	m.modals.Close()
	m.inputs.textInput.Blur()
	m.inputs.textInput.Reset()
	switch s := state.(type) {
	case *TaskCreateState:
		status := models.Statuses[util.Clamp(s.Column, 0, len(models.Statuses)-1)]
		return m, createTaskCmd(m.ctx, m.store, database.TaskSeed{Title: title, Status: status})
	case *TaskEditState:
		return m, editTaskCmd(m.ctx, m.store, s.TaskID, database.TaskEdit{Title: &title})
	}
	return m, nil
}
