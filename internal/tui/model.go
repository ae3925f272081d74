package tui

import (
	"context"

	"github.com/akyairhashvil/taskboard/internal/database"
	"github.com/akyairhashvil/taskboard/internal/logger"
	"github.com/akyairhashvil/taskboard/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// SessionState defines the high-level mode of the application.
type SessionState int

const (
	StateBoard SessionState = iota
	StateDetails
)

// MainModel is the root bubbletea model that switches between sub-models.
type MainModel struct {
	state     SessionState
	ctx       context.Context
	store     database.TaskRepository
	opts      Options
	dashboard DashboardModel
	details   DetailsModel
	width     int
	height    int
}

func NewMainModel(ctx context.Context, store database.TaskRepository, opts Options) MainModel {
	return MainModel{
		state:     StateBoard,
		ctx:       ctx,
		store:     store,
		opts:      opts,
		dashboard: NewDashboardModel(ctx, store, opts),
	}
}

func (m MainModel) Init() tea.Cmd {
	return m.dashboard.Init()
}

func (m MainModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.details, _ = m.details.Update(msg)
	case openDetailsMsg:
		return m.openDetails(msg.taskID)
	case closeDetailsMsg:
		return m.closeDetails()
	case liveTickMsg:
		// Each view drops ticks it does not own.
		var cmds []tea.Cmd
		var cmd tea.Cmd
		m.dashboard, cmd = m.updateDashboard(msg)
		cmds = append(cmds, cmd)
		if m.state == StateDetails {
			m.details, cmd = m.details.Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	if m.state == StateDetails {
		switch msg.(type) {
		case tea.KeyMsg:
			var cmd tea.Cmd
			m.details, cmd = m.details.Update(msg)
			return m, cmd
		case tea.MouseMsg:
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.dashboard, cmd = m.updateDashboard(msg)
	if m.state == StateDetails {
		if _, ok := msg.(tasksLoadedMsg); ok {
			m.details = m.details.sync(m.dashboard.rec)
		}
	}
	return m, cmd
}

func (m MainModel) updateDashboard(msg tea.Msg) (DashboardModel, tea.Cmd) {
	next, cmd := m.dashboard.Update(msg)
	return next.(DashboardModel), cmd
}

// openDetails swaps the board's tick subscription for the panel's.
func (m MainModel) openDetails(id string) (tea.Model, tea.Cmd) {
	task, ok := m.dashboard.rec.Task(id)
	if !ok {
		logger.Debug("details requested for unknown task", zap.String("task_id", id))
		return m, nil
	}
	m.dashboard.ticker.Dispose()
	opts := m.opts
	opts.Now = m.dashboard.now
	m.details = NewDetailsModel(m.ctx, m.store, task, m.dashboard.labels, opts)
	m.details.width = m.width
	m.state = StateDetails
	return m, m.details.ticker.Start()
}

func (m MainModel) closeDetails() (tea.Model, tea.Cmd) {
	m.details.ticker.Dispose()
	m.state = StateBoard
	m.dashboard.nowMs = timer.NowMs(m.dashboard.now())
	return m, tea.Batch(m.dashboard.ticker.Start(), m.dashboard.reload())
}

func (m MainModel) View() string {
	if m.state == StateDetails {
		return m.details.View()
	}
	return m.dashboard.View()
}
