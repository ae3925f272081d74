package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var tickerSeq atomic.Uint64

// liveTickMsg carries the id of the subscription that scheduled it.
type liveTickMsg struct {
	id uint64
	at time.Time
}

// liveTicker is one view's subscription to the live tick. Each visible view
// owns its own; a disposed ticker stops rescheduling and ignores late ticks.
type liveTicker struct {
	id       uint64
	interval time.Duration
	active   bool
}

func newLiveTicker(interval time.Duration) liveTicker {
	if interval <= 0 {
		interval = time.Second
	}
	return liveTicker{interval: interval}
}

// Start opens a fresh subscription. Ticks from any earlier one become stale.
func (t *liveTicker) Start() tea.Cmd {
	t.activate()
	return t.schedule()
}

func (t *liveTicker) activate() {
	t.id = tickerSeq.Add(1)
	t.active = true
}

func (t *liveTicker) Dispose() {
	t.active = false
}

func (t liveTicker) Active() bool { return t.active }

// Owns reports whether msg belongs to the live subscription.
func (t liveTicker) Owns(msg liveTickMsg) bool {
	return t.active && msg.id == t.id
}

// Next reschedules after an owned tick. Stale ticks return nil.
func (t liveTicker) Next(msg liveTickMsg) tea.Cmd {
	if !t.Owns(msg) {
		return nil
	}
	return t.schedule()
}

func (t liveTicker) schedule() tea.Cmd {
	id := t.id
	return tea.Tick(t.interval, func(at time.Time) tea.Msg {
		return liveTickMsg{id: id, at: at}
	})
}
