package tui

import (
	"context"
	"testing"
	"time"

	"github.com/akyairhashvil/taskboard/internal/database/mocks"
	"github.com/akyairhashvil/taskboard/internal/models"
	"github.com/akyairhashvil/taskboard/internal/testutil"
	"github.com/akyairhashvil/taskboard/internal/timer"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/golang/mock/gomock"
)

var fixedNow = time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func newTestMainModel(t *testing.T, store *mocks.MockTaskRepository) MainModel {
	t.Helper()
	m := NewMainModel(context.Background(), store, Options{Now: fixedClock})
	next, _ := m.Update(tasksLoadedMsg{tasks: testutil.Board()})
	return next.(MainModel)
}

func TestNewMainModelStartsOnBoard(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := NewMainModel(context.Background(), mocks.NewMockTaskRepository(ctrl), Options{Now: fixedClock})
	if m.state != StateBoard {
		t.Fatalf("expected board state, got %v", m.state)
	}
	if !m.dashboard.ticker.Active() {
		t.Fatalf("board ticker should be live from the start")
	}
	if m.Init() == nil {
		t.Fatalf("Init should load tasks and schedule a tick")
	}
}

func TestMainModelInitLoadsFromStore(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTaskRepository(ctrl)
	store.EXPECT().ListTasks(gomock.Any()).Return(testutil.Board(), nil)

	m := NewMainModel(context.Background(), store, Options{Now: fixedClock})
	msg := loadTasksCmd(m.ctx, m.store)()
	next, _ := m.Update(msg)
	mm := next.(MainModel)
	if !mm.dashboard.loaded {
		t.Fatalf("dashboard should be loaded")
	}
	if got := len(mm.dashboard.rec.Tasks()); got != 3 {
		t.Fatalf("expected 3 tasks, got %d", got)
	}
}

func TestMainModelDetailsTickerLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newTestMainModel(t, mocks.NewMockTaskRepository(ctrl))
	boardTick := liveTickMsg{id: m.dashboard.ticker.id, at: fixedNow.Add(5 * time.Second)}

	next, cmd := m.Update(openDetailsMsg{taskID: "T3"})
	m = next.(MainModel)
	if m.state != StateDetails {
		t.Fatalf("expected details state, got %v", m.state)
	}
	if cmd == nil {
		t.Fatalf("opening details should start its ticker")
	}
	if m.dashboard.ticker.Active() {
		t.Fatalf("board ticker should be disposed while details is open")
	}
	if !m.details.ticker.Active() {
		t.Fatalf("details ticker should be live")
	}

	before := m.dashboard.nowMs
	next, _ = m.Update(boardTick)
	m = next.(MainModel)
	if m.dashboard.nowMs != before {
		t.Fatalf("disposed board ticker must ignore its late tick")
	}

	detailsTick := liveTickMsg{id: m.details.ticker.id, at: fixedNow.Add(10 * time.Second)}
	next, _ = m.Update(detailsTick)
	m = next.(MainModel)
	if m.details.nowMs != timer.NowMs(detailsTick.at) {
		t.Fatalf("details should advance on its own tick")
	}

	next, cmd = m.Update(closeDetailsMsg{})
	m = next.(MainModel)
	if m.state != StateBoard {
		t.Fatalf("expected board state after close")
	}
	if cmd == nil {
		t.Fatalf("closing details should restart the board ticker")
	}
	if m.details.ticker.Active() {
		t.Fatalf("details ticker should be disposed after close")
	}
	if !m.dashboard.ticker.Active() || m.dashboard.ticker.Owns(boardTick) {
		t.Fatalf("board ticker should be restarted under a new subscription")
	}
}

func TestMainModelOpenDetailsUnknownTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newTestMainModel(t, mocks.NewMockTaskRepository(ctrl))
	next, cmd := m.Update(openDetailsMsg{taskID: "missing"})
	if next.(MainModel).state != StateBoard || cmd != nil {
		t.Fatalf("unknown task should leave the board in place")
	}
}

func TestDetailsToggleUsesSharedTimerPath(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := mocks.NewMockTaskRepository(ctrl)
	store.EXPECT().
		ToggleTaskTimer(gomock.Any(), "T1", fixedNow).
		Return(models.TimerUpdate{TaskID: "T1", TimerActive: true}, nil)

	m := newTestMainModel(t, store)
	next, _ := m.Update(openDetailsMsg{taskID: "T1"})
	m = next.(MainModel)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")})
	if cmd == nil {
		t.Fatalf("t should toggle the timer")
	}
	if _, ok := cmd().(timerToggledMsg); !ok {
		t.Fatalf("expected timerToggledMsg")
	}
}

func TestDetailsSyncMarksDeletedTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newTestMainModel(t, mocks.NewMockTaskRepository(ctrl))
	next, _ := m.Update(openDetailsMsg{taskID: "T1"})
	m = next.(MainModel)

	remaining := testutil.Board()[1:]
	next, _ = m.Update(tasksLoadedMsg{tasks: remaining})
	m = next.(MainModel)
	if !m.details.gone {
		t.Fatalf("details should notice the task is gone")
	}
	if _, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("t")}); cmd != nil {
		t.Fatalf("toggling a deleted task should do nothing")
	}
}

func TestDetailsEscCloses(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newTestMainModel(t, mocks.NewMockTaskRepository(ctrl))
	next, _ := m.Update(openDetailsMsg{taskID: "T1"})
	m = next.(MainModel)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("esc should close the panel")
	}
	if _, ok := cmd().(closeDetailsMsg); !ok {
		t.Fatalf("expected closeDetailsMsg")
	}
}

func TestMainModelUpdateCtrlC(t *testing.T) {
	ctrl := gomock.NewController(t)
	m := newTestMainModel(t, mocks.NewMockTaskRepository(ctrl))
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatalf("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("expected tea.QuitMsg")
	}
}
