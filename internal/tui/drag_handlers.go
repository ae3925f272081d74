package tui

import (
	"github.com/akyairhashvil/taskboard/internal/board"
	"github.com/akyairhashvil/taskboard/internal/config"
	"github.com/akyairhashvil/taskboard/internal/logger"
	"github.com/akyairhashvil/taskboard/internal/models"
	"github.com/akyairhashvil/taskboard/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Keyboard drag adapter. Space picks the focused card up, arrows move the
// hover pointer, enter or space drops and esc cancels.
func registerDragBindings(r *HandlerRegistry) {
	r.Register(
		KeyBinding{Key: "left", Handler: handleHoverLeft, Description: "column", ViewModes: boardOnly, Dragging: true},
		KeyBinding{Key: "right", Handler: handleHoverRight, Description: "column", ViewModes: boardOnly, Dragging: true},
		KeyBinding{Key: "up", Handler: handleHoverUp, Description: "position", ViewModes: boardOnly, Dragging: true},
		KeyBinding{Key: "down", Handler: handleHoverDown, Description: "position", ViewModes: boardOnly, Dragging: true},
		KeyBinding{Key: "enter", Handler: handleDrop, Description: "drop", ViewModes: boardOnly, Dragging: true},
		KeyBinding{Key: "space", Handler: handleDrop, ViewModes: boardOnly, Dragging: true},
		KeyBinding{Key: "esc", Handler: handleCancelDrag, Description: "cancel", ViewModes: boardOnly, Dragging: true},
		KeyBinding{Key: "ctrl+c", Handler: handleQuit, Dragging: true},
	)
}

func handlePickUp(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	task, ok := m.focusedTask()
	if !ok {
		return m, nil, true
	}
	if err := m.rec.DragStart(task.ID); err != nil {
		m.err = err
		return m, nil, true
	}
	m.view.hoverCol = task.Status.Index()
	m.view.hoverIdx = -1
	return m, nil, true
}

func handleHoverLeft(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	return m.hoverColumn(-1), nil, true
}

func handleHoverRight(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	return m.hoverColumn(1), nil, true
}

func handleHoverUp(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	return m.hoverCard(-1), nil, true
}

func handleHoverDown(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	return m.hoverCard(1), nil, true
}

func (m DashboardModel) hoverColumn(delta int) DashboardModel {
	m.view.hoverCol = util.Clamp(m.view.hoverCol+delta, 0, len(models.Statuses)-1)
	m.view.hoverIdx = -1
	m.dragOver(board.ColumnTarget(models.Statuses[m.view.hoverCol]))
	return m
}

func (m DashboardModel) hoverCard(delta int) DashboardModel {
	col := m.rec.Column(models.Statuses[m.view.hoverCol])
	m.view.hoverIdx = util.Clamp(m.view.hoverIdx+delta, -1, len(col)-1)
	if m.view.hoverIdx < 0 {
		m.dragOver(board.ColumnTarget(models.Statuses[m.view.hoverCol]))
		return m
	}
	m.dragOver(board.TaskTarget(col[m.view.hoverIdx].ID))
	return m
}

func (m DashboardModel) dragOver(target board.Target) {
	if err := m.rec.DragOver(target); err != nil {
		logger.Debug("drag over ignored", zap.Stringer("target", target), zap.Error(err))
	}
}

func handleDrop(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	g, ok := m.rec.Gesture()
	if !ok {
		return m, nil, true
	}
	target := g.Hover
	if target.Kind == board.TargetNone {
		target = board.ColumnTarget(g.Origin.Status)
	}
	change, err := m.rec.DragEnd(target)
	m.mouse = mouseDrag{}
	m.focusTask(g.TaskID)
	next, cmd := m.handleDropResult(change, err)
	return next, cmd, true
}

func handleCancelDrag(m DashboardModel, _ string) (DashboardModel, tea.Cmd, bool) {
	g, ok := m.rec.Gesture()
	m.rec.DragCancel()
	m.mouse = mouseDrag{}
	if ok {
		m.focusTask(g.TaskID)
	}
	return m, nil, true
}

// handleMouse is the pointer drag adapter: press on a card starts a gesture,
// motion hovers, release drops. Releasing off the board cancels.
func (m DashboardModel) handleMouse(msg tea.MouseMsg) (DashboardModel, tea.Cmd) {
	if m.view.mode != config.ViewModeBoard || m.modals.IsOpen() {
		return m, nil
	}
	target, onBoard := m.hitTest(msg.X, msg.Y)
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || m.rec.Dragging() || target.Kind != board.TargetTask {
			return m, nil
		}
		if err := m.rec.DragStart(target.TaskID); err != nil {
			m.err = err
			return m, nil
		}
		m.mouse = mouseDrag{active: true, taskID: target.TaskID}
		m.focusTask(target.TaskID)
	case tea.MouseActionMotion:
		if m.mouse.active && onBoard {
			m.dragOver(target)
		}
	case tea.MouseActionRelease:
		id, active := m.mouse.taskID, m.mouse.active
		m.mouse = mouseDrag{}
		if !active || !m.rec.Dragging() {
			return m, nil
		}
		if !onBoard {
			m.rec.DragCancel()
			m.focusTask(id)
			return m, nil
		}
		change, err := m.rec.DragEnd(target)
		m.focusTask(id)
		return m.handleDropResult(change, err)
	}
	return m, nil
}
