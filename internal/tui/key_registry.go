package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

type KeyHandler func(m DashboardModel, key string) (DashboardModel, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	ViewModes   []int
	Priority    int
	// Dragging bindings only run while a gesture is in flight; others only
	// run when idle.
	Dragging bool
}

func (b KeyBinding) AppliesToView(mode int) bool {
	if len(b.ViewModes) == 0 {
		return true
	}
	for _, v := range b.ViewModes {
		if v == mode {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(bindings ...KeyBinding) {
	r.bindings = append(r.bindings, bindings...)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m DashboardModel, key string) (DashboardModel, tea.Cmd, bool) {
	dragging := m.rec.Dragging()
	for _, b := range r.bindings {
		if b.Key != key || b.Dragging != dragging || !b.AppliesToView(m.view.mode) {
			continue
		}
		next, cmd, handled := b.Handler(m, key)
		if handled {
			return next, cmd, true
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsFor(mode int, dragging bool) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.Dragging == dragging && b.AppliesToView(mode) {
			out = append(out, b)
		}
	}
	return out
}

// HelpFor renders the footer help line for a view and gesture state.
func (r *HandlerRegistry) HelpFor(mode int, dragging bool) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.BindingsFor(mode, dragging) {
		if b.Description == "" || seen[b.Description] {
			continue
		}
		seen[b.Description] = true
		parts = append(parts, "["+b.Key+"] "+b.Description)
	}
	return strings.Join(parts, "  ")
}
