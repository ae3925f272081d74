package tui

import (
	"github.com/akyairhashvil/taskboard/internal/board"
	"github.com/akyairhashvil/taskboard/internal/config"
	"github.com/akyairhashvil/taskboard/internal/models"
)

const defaultColumnWidth = 24

// columnWidth is the cell width of one board column.
func (m DashboardModel) columnWidth() int {
	if m.width <= 0 {
		return defaultColumnWidth
	}
	w := m.width / len(models.Statuses)
	if w < config.MinColumnWidth {
		return config.MinColumnWidth
	}
	return w
}

// hitTest maps a screen cell to a drop target. Rows 0 and 1 hold the title,
// row 2 the column headers, and cards start at HeaderHeight. The second
// result is false when the cell is off the board.
func (m DashboardModel) hitTest(x, y int) (board.Target, bool) {
	w := m.columnWidth()
	if x < 0 || y < config.HeaderHeight-1 {
		return board.Target{}, false
	}
	col := x / w
	if col >= len(models.Statuses) {
		return board.Target{}, false
	}
	status := models.Statuses[col]
	if y < config.HeaderHeight {
		return board.ColumnTarget(status), true
	}
	idx := (y - config.HeaderHeight) / config.CardHeight
	tasks := visibleTasks(m.rec.Column(status))
	if idx < len(tasks) {
		return board.TaskTarget(tasks[idx].ID), true
	}
	if idx > config.MaxVisibleTasks {
		return board.Target{}, false
	}
	return board.ColumnTarget(status), true
}

func visibleTasks(tasks []models.Task) []models.Task {
	if len(tasks) > config.MaxVisibleTasks {
		return tasks[:config.MaxVisibleTasks]
	}
	return tasks
}
