package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/taskboard/internal/config"
	"github.com/akyairhashvil/taskboard/internal/models"
	"github.com/charmbracelet/lipgloss"
)

func (m DashboardModel) View() string {
	var body string
	if m.view.mode == config.ViewModeTable {
		body = m.renderTable()
	} else {
		body = m.renderBoard()
	}
	return strings.Join([]string{m.renderHeader(), "", body, "", m.renderFooter()}, "\n")
}

func (m DashboardModel) renderHeader() string {
	title := m.labels.BoardTitle
	if m.view.mode == config.ViewModeTable {
		title = m.labels.TableTitle
	}
	active := 0
	for _, t := range m.rec.Tasks() {
		if t.TimerActive {
			active++
		}
	}
	line := fmt.Sprintf("%s  ·  %s: %d  ·  %s", title, m.labels.ActiveTimers, active, strings.ToUpper(m.labels.Code))
	if !m.loaded {
		line += "  …"
	}
	if m.width > 0 {
		line = truncateLabel(line, m.width)
	}
	return CurrentTheme.Header.Render(line)
}

func (m DashboardModel) renderBoard() string {
	w := m.columnWidth()
	g, dragging := m.rec.Gesture()
	dragStatus := models.TaskStatus("")
	if dragging {
		if t, ok := m.rec.Task(g.TaskID); ok {
			dragStatus = t.Status
		}
	}

	cols := make([]string, 0, len(models.Statuses))
	for ci, col := range m.rec.Columns() {
		headerStyle := CurrentTheme.ColumnHeader
		if dragging && col.Status == dragStatus {
			headerStyle = CurrentTheme.DropColumn
		}
		lines := []string{headerStyle.Render(cell(FormatTaskCount(m.labels.StatusName(col.Status), len(col.Tasks)), w))}

		visible := visibleTasks(col.Tasks)
		if len(visible) == 0 {
			lines = append(lines, CurrentTheme.Dim.Render(cell("  "+m.labels.EmptyColumn, w)))
		}
		for ti, t := range visible {
			focused := !dragging && ci == m.view.focusedCol && ti == m.view.focusedIdx
			lines = append(lines, m.renderCard(t, w, focused, dragging && t.ID == g.TaskID)...)
		}
		if extra := len(col.Tasks) - len(visible); extra > 0 {
			lines = append(lines, CurrentTheme.Dim.Render(cell(fmt.Sprintf("  +%d", extra), w)))
		}
		cols = append(cols, strings.Join(lines, "\n"))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cols...)
}

// renderCard returns exactly CardHeight lines.
func (m DashboardModel) renderCard(t models.Task, w int, focused, dragged bool) []string {
	marker, style := "  ", CurrentTheme.Card
	switch {
	case dragged:
		marker, style = "≡ ", CurrentTheme.DraggedCard
	case focused:
		marker, style = "> ", CurrentTheme.FocusedCard
	}
	meta := fmt.Sprintf("  %s %s", m.labels.PriorityName(t.Priority), formatElapsed(t, m.nowMs))
	metaStyle := priorityStyle(t.Priority)
	if t.TimerActive {
		meta += " ▶"
		metaStyle = CurrentTheme.Running
	}
	lines := []string{
		style.Render(cell(marker+t.Title, w)),
		metaStyle.Render(cell(meta, w)),
	}
	for len(lines) < config.CardHeight {
		lines = append(lines, strings.Repeat(" ", w))
	}
	return lines
}

func (m DashboardModel) renderTable() string {
	widths := []int{28, 14, 10, 12, 10, 12}
	row := func(cells ...string) string {
		var b strings.Builder
		for i, c := range cells {
			b.WriteString(cell(c, widths[i]))
		}
		return b.String()
	}
	l := m.labels
	lines := []string{CurrentTheme.ColumnHeader.Render(row(l.Title, l.Status, l.Priority, l.Assignee, l.TimeSpent, ""))}
	rows := m.tableRows()
	if len(rows) == 0 {
		lines = append(lines, CurrentTheme.Dim.Render(l.EmptyColumn))
	}
	for i, t := range rows {
		text := row(t.Title, l.StatusName(t.Status), l.PriorityName(t.Priority), formatAssignee(t.AssigneeID, l), formatElapsed(t, m.nowMs), formatTimerState(t, l))
		style := CurrentTheme.Card
		switch {
		case i == m.view.tableRow:
			style = CurrentTheme.FocusedCard
		case t.TimerActive:
			style = CurrentTheme.Running
		}
		lines = append(lines, style.Render(text))
	}
	return strings.Join(lines, "\n")
}

func (m DashboardModel) renderFooter() string {
	switch state := m.modals.Current().(type) {
	case *TaskDeleteState:
		return CurrentTheme.Focused.Render(fmt.Sprintf(m.labels.ConfirmDelete, state.Title))
	case *TaskCreateState, *TaskEditState:
		return CurrentTheme.Input.Render(m.inputs.textInput.View())
	}

	var lines []string
	if g, ok := m.rec.Gesture(); ok {
		if t, found := m.rec.Task(g.TaskID); found {
			lines = append(lines, CurrentTheme.Focused.Render(fmt.Sprintf(m.labels.Dragging, t.Title)))
		}
	}
	switch {
	case m.err != nil:
		lines = append(lines, CurrentTheme.Error.Render(m.err.Error()))
	case m.Message != "":
		lines = append(lines, CurrentTheme.Focused.Render(m.Message))
	}
	lines = append(lines, CurrentTheme.Dim.Render(m.registry.HelpFor(m.view.mode, m.rec.Dragging())))
	return strings.Join(lines, "\n")
}

// cell fits text into a fixed-width slot with one trailing space of gutter.
func cell(text string, w int) string {
	return padRight(truncateLabel(text, w-1), w)
}
