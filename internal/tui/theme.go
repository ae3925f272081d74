package tui

import (
	"github.com/akyairhashvil/taskboard/internal/models"
	"github.com/charmbracelet/lipgloss"
)

type Theme struct {
	Name         string
	Border       lipgloss.Color
	Header       lipgloss.Style
	ColumnHeader lipgloss.Style
	DropColumn   lipgloss.Style
	Card         lipgloss.Style
	FocusedCard  lipgloss.Style
	DraggedCard  lipgloss.Style
	Running      lipgloss.Style
	Input        lipgloss.Style
	Panel        lipgloss.Style
	Priorities   map[models.Priority]lipgloss.Style
	Focused      lipgloss.Style
	Dim          lipgloss.Style
	Error        lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:         "Default",
		Border:       lipgloss.Color("63"),
		Header:       lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		ColumnHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		DropColumn:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true).Underline(true),
		Card:         lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		FocusedCard:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		DraggedCard:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true).Reverse(true),
		Running:      lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Input:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("205")).Padding(0, 1).Width(50),
		Panel:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("63")).Padding(1, 2),
		Priorities: map[models.Priority]lipgloss.Style{
			models.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			models.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
			models.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
			models.PriorityUrgent: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		},
		Focused: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	},
	"dracula": {
		Name:         "Dracula",
		Border:       lipgloss.Color("62"),
		Header:       lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		ColumnHeader: lipgloss.NewStyle().Foreground(lipgloss.Color("141")).Bold(true),
		DropColumn:   lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true).Underline(true),
		Card:         lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		FocusedCard:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		DraggedCard:  lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true).Reverse(true),
		Running:      lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true),
		Input:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("50")).Padding(0, 1).Width(50),
		Panel:        lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("62")).Padding(1, 2),
		Priorities: map[models.Priority]lipgloss.Style{
			models.PriorityLow:    lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
			models.PriorityMedium: lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
			models.PriorityHigh:   lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true),
			models.PriorityUrgent: lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true),
		},
		Focused: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
	},
}

// CurrentTheme holds the currently active theme.
var CurrentTheme = Themes["default"]

// SetTheme switches themes and reports whether name exists.
func SetTheme(name string) bool {
	t, ok := Themes[name]
	if ok {
		CurrentTheme = t
	}
	return ok
}

func priorityStyle(p models.Priority) lipgloss.Style {
	if s, ok := CurrentTheme.Priorities[p]; ok {
		return s
	}
	return CurrentTheme.Dim
}
