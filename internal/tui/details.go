package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/akyairhashvil/taskboard/internal/board"
	"github.com/akyairhashvil/taskboard/internal/database"
	"github.com/akyairhashvil/taskboard/internal/locale"
	"github.com/akyairhashvil/taskboard/internal/models"
	"github.com/akyairhashvil/taskboard/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
)

// closeDetailsMsg returns the root model to the board.
type closeDetailsMsg struct{}

// DetailsModel is the single-task panel. It keeps its own live tick so the
// elapsed time keeps moving while the board is hidden.
type DetailsModel struct {
	ctx    context.Context
	store  database.TaskWriter
	task   models.Task
	labels locale.Labels
	ticker liveTicker
	now    func() time.Time
	nowMs  int64
	gone   bool
	width  int
}

func NewDetailsModel(ctx context.Context, store database.TaskWriter, task models.Task, labels locale.Labels, opts Options) DetailsModel {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return DetailsModel{
		ctx:    ctx,
		store:  store,
		task:   task,
		labels: labels,
		ticker: newLiveTicker(opts.TickInterval),
		now:    opts.Now,
		nowMs:  timer.NowMs(opts.Now()),
	}
}

func (m DetailsModel) Update(msg tea.Msg) (DetailsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case liveTickMsg:
		if !m.ticker.Owns(msg) {
			return m, nil
		}
		m.nowMs = timer.NowMs(msg.at)
		return m, m.ticker.Next(msg)
	case tea.KeyMsg:
		switch keyString(msg) {
		case "t", "space":
			if m.gone {
				return m, nil
			}
			return m, toggleTimerCmd(m.ctx, m.store, m.task.ID, m.now())
		case "r":
			if m.gone {
				return m, nil
			}
			return m, resetTimerCmd(m.ctx, m.store, m.task.ID)
		case "esc", "q", "enter", "backspace":
			return m, func() tea.Msg { return closeDetailsMsg{} }
		}
	}
	return m, nil
}

// sync refreshes the panel from the board mirror after a reload.
func (m DetailsModel) sync(rec *board.Reconciler) DetailsModel {
	t, ok := rec.Task(m.task.ID)
	if !ok {
		m.gone = true
		return m
	}
	m.task = t
	m.gone = false
	m.nowMs = timer.NowMs(m.now())
	return m
}

func (m DetailsModel) View() string {
	l := m.labels
	t := m.task
	row := func(label, value string) string {
		return CurrentTheme.Dim.Render(padRight(label+":", 14)) + value
	}

	lines := []string{CurrentTheme.Header.Render(t.Title)}
	if t.Description != "" {
		lines = append(lines, t.Description)
	}
	lines = append(lines, "",
		row(l.Status, l.StatusName(t.Status)),
		row(l.Priority, priorityStyle(t.Priority).Render(l.PriorityName(t.Priority))),
		row(l.Assignee, formatAssignee(t.AssigneeID, l)),
	)
	if t.ProjectID != "" {
		lines = append(lines, row(l.Project, t.ProjectID))
	}
	if t.DueDate != nil {
		lines = append(lines, row(l.Due, t.DueDate.Format("2006-01-02")))
	}
	if t.EstimatedHours > 0 {
		lines = append(lines, row(l.Estimated, fmt.Sprintf("%.1fh", t.EstimatedHours)))
	}

	elapsed := formatElapsed(t, m.nowMs)
	state := formatTimerState(t, l)
	if t.TimerActive {
		elapsed = CurrentTheme.Running.Render(elapsed)
		state = CurrentTheme.Running.Render(state)
	}
	lines = append(lines, "", row(l.TimeSpent, elapsed+"  "+state))
	if m.gone {
		lines = append(lines, "", CurrentTheme.Error.Render(database.ErrTaskNotFound.Error()))
	}
	lines = append(lines, "", CurrentTheme.Dim.Render("[t] timer  [r] reset  [esc] back"))

	panel := CurrentTheme.Panel
	if m.width > 4 {
		panel = panel.Width(m.width - 4)
	}
	return panel.Render(strings.Join(lines, "\n"))
}
