package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/taskboard/internal/config"
	"github.com/akyairhashvil/taskboard/internal/locale"
	"github.com/akyairhashvil/taskboard/internal/models"
	"github.com/akyairhashvil/taskboard/internal/timer"
	"github.com/charmbracelet/x/ansi"
)

// truncateLabel cuts text to max display cells, keeping escape codes intact.
func truncateLabel(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

// padRight pads text with spaces to exactly width cells.
func padRight(text string, width int) string {
	text = truncateLabel(text, width)
	if gap := width - ansi.StringWidth(text); gap > 0 {
		return text + strings.Repeat(" ", gap)
	}
	return text
}

// formatElapsed renders the live elapsed time of a task at nowMs.
func formatElapsed(t models.Task, nowMs int64) string {
	return timer.FormatDuration(timer.LiveElapsed(t, nowMs))
}

func formatTimerState(t models.Task, labels locale.Labels) string {
	if t.TimerActive {
		return "▶ " + labels.Running
	}
	return "‖ " + labels.Paused
}

// FormatTaskCount formats a column header count.
func FormatTaskCount(name string, n int) string {
	return fmt.Sprintf("%s (%d)", name, n)
}

func formatAssignee(id string, labels locale.Labels) string {
	if id == "" {
		return labels.Unassigned
	}
	return id
}
