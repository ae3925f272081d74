package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akyairhashvil/taskboard/internal/board"
	"github.com/akyairhashvil/taskboard/internal/config"
	"github.com/akyairhashvil/taskboard/internal/database"
	"github.com/akyairhashvil/taskboard/internal/locale"
	"github.com/akyairhashvil/taskboard/internal/logger"
	"github.com/akyairhashvil/taskboard/internal/models"
	"github.com/akyairhashvil/taskboard/internal/timer"
	"github.com/akyairhashvil/taskboard/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Options configures the UI. Zero values fall back to defaults.
type Options struct {
	Locale       string
	Theme        string
	TickInterval time.Duration
	ReportsDir   string
	Now          func() time.Time
}

// mouseDrag tracks a pointer gesture between press and release.
type mouseDrag struct {
	active bool
	taskID string
}

// DashboardModel shows the board and table views over the store's task list.
type DashboardModel struct {
	ctx        context.Context
	store      database.TaskRepository
	rec        *board.Reconciler
	registry   *HandlerRegistry
	view       *ViewState
	modals     *ModalManager
	inputs     *InputState
	labels     locale.Labels
	ticker     liveTicker
	now        func() time.Time
	nowMs      int64
	reportsDir string
	mouse      mouseDrag
	loaded     bool
	err        error
	Message    string
	width      int
	height     int
}

func NewDashboardModel(ctx context.Context, store database.TaskRepository, opts Options) DashboardModel {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.TickInterval <= 0 {
		opts.TickInterval = config.TickInterval
	}
	if opts.Theme != "" && !SetTheme(opts.Theme) {
		logger.Warn("unknown theme, using default", zap.String("theme", opts.Theme))
	}
	m := DashboardModel{
		ctx:        ctx,
		store:      store,
		rec:        board.New(nil),
		registry:   NewHandlerRegistry(),
		view:       newViewState(),
		modals:     newModalManager(),
		inputs:     newInputState(),
		labels:     locale.For(opts.Locale),
		ticker:     newLiveTicker(opts.TickInterval),
		now:        opts.Now,
		nowMs:      timer.NowMs(opts.Now()),
		reportsDir: opts.ReportsDir,
	}
	m.ticker.activate()
	registerBindings(m.registry)
	return m
}

func (m DashboardModel) Init() tea.Cmd {
	return tea.Batch(loadTasksCmd(m.ctx, m.store), m.ticker.schedule())
}

func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case liveTickMsg:
		if !m.ticker.Owns(msg) {
			return m, nil
		}
		m.nowMs = timer.NowMs(msg.at)
		return m, m.ticker.Next(msg)
	case tasksLoadedMsg:
		return m.handleTasksLoaded(msg)
	case statusCommittedMsg:
		m.noteStoreError("commit status", msg.change.TaskID, msg.err)
		return m, m.reload()
	case timerToggledMsg:
		m.noteStoreError("toggle timer", msg.update.TaskID, msg.err)
		return m, m.reload()
	case timerResetMsg:
		m.noteStoreError("reset timer", msg.id, msg.err)
		return m, m.reload()
	case taskCreatedMsg:
		m.noteStoreError("create task", msg.task.ID, msg.err)
		return m, m.reload()
	case taskEditedMsg:
		m.noteStoreError("edit task", msg.id, msg.err)
		return m, m.reload()
	case taskDeletedMsg:
		m.noteStoreError("delete task", msg.task.ID, msg.err)
		return m, m.reload()
	case reportWrittenMsg:
		if msg.err != nil {
			m.err = msg.err
			util.LogError("write report", msg.err)
		} else {
			m.Message = fmt.Sprintf(m.labels.ReportSaved, msg.path)
		}
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case tea.KeyMsg:
		if m.modals.IsOpen() {
			return m.handleModalKey(msg)
		}
		m.err, m.Message = nil, ""
		next, cmd, _ := m.registry.Handle(m, keyString(msg))
		return next, cmd
	}
	return m, nil
}

func (m DashboardModel) handleTasksLoaded(msg tasksLoadedMsg) (DashboardModel, tea.Cmd) {
	if msg.err != nil {
		m.err = msg.err
		util.LogError("load tasks", msg.err)
		return m, nil
	}
	m.loaded = true
	m.rec.ReconcileExternal(msg.tasks)
	if m.rec.Dragging() {
		logger.Debug("task list deferred until drag settles", zap.Int("queued", m.rec.Pending()))
	}
	m.nowMs = timer.NowMs(m.now())
	return m, nil
}

func (m *DashboardModel) noteStoreError(op, id string, err error) {
	if err == nil {
		return
	}
	m.err = err
	logger.Error(op+" failed", err, zap.String("task_id", id))
}

func (m DashboardModel) reload() tea.Cmd {
	return loadTasksCmd(m.ctx, m.store)
}

// focusedTask is the card under the cursor in the current view.
func (m DashboardModel) focusedTask() (models.Task, bool) {
	if m.view.mode == config.ViewModeTable {
		rows := m.tableRows()
		if len(rows) == 0 {
			return models.Task{}, false
		}
		return rows[util.Clamp(m.view.tableRow, 0, len(rows)-1)], true
	}
	col := m.rec.Column(m.focusedStatus())
	if len(col) == 0 {
		return models.Task{}, false
	}
	return col[util.Clamp(m.view.focusedIdx, 0, len(col)-1)], true
}

func (m DashboardModel) focusedStatus() models.TaskStatus {
	return models.Statuses[util.Clamp(m.view.focusedCol, 0, len(models.Statuses)-1)]
}

// tableRows lists tasks grouped by column, in board order.
func (m DashboardModel) tableRows() []models.Task {
	var rows []models.Task
	for _, col := range m.rec.Columns() {
		rows = append(rows, col.Tasks...)
	}
	return rows
}

// focusTask moves the board cursor onto id wherever it now sits.
func (m *DashboardModel) focusTask(id string) {
	for ci, col := range m.rec.Columns() {
		for ti, t := range col.Tasks {
			if t.ID == id {
				m.view.focusedCol, m.view.focusedIdx = ci, ti
				return
			}
		}
	}
}

func (m DashboardModel) handleDropResult(change *models.StatusChange, err error) (DashboardModel, tea.Cmd) {
	if errors.Is(err, board.ErrStaleDragTarget) {
		logger.Debug("stale drop treated as cancel", zap.Error(err))
		return m, m.reload()
	}
	if err != nil {
		m.err = err
		return m, nil
	}
	if change == nil {
		return m, nil
	}
	m.focusTask(change.TaskID)
	return m, commitStatusCmd(m.ctx, m.store, *change)
}

// keyString normalises the few keys whose String form is awkward to bind.
func keyString(msg tea.KeyMsg) string {
	if msg.Type == tea.KeySpace {
		return "space"
	}
	return msg.String()
}
