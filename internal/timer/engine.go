// Package timer keeps per-task work time from wall-clock deltas.
//
// A session stores the instant it opened and the committed total at that
// moment, so live elapsed time is recomputed on read instead of being
// incremented by a running process timer. All functions take the current
// time as epoch milliseconds and return new values; nothing here schedules
// or mutates shared state.
package timer

import (
	"time"

	"github.com/akyairhashvil/taskboard/internal/models"
)

// NowMs converts t to epoch milliseconds.
func NowMs(t time.Time) int64 {
	return t.UnixMilli()
}

// sessionSeconds is floor((now-start)/1000), clamped at zero.
func sessionSeconds(startMs, nowMs int64) int64 {
	delta := nowMs - startMs
	if delta <= 0 {
		return 0
	}
	return delta / 1000
}

// Start opens a session. The task must not already be running.
func Start(task models.Task, nowMs int64) (models.Task, error) {
	if task.TimerActive {
		return task, newStateError("start", task)
	}
	out := task.Clone()
	started := nowMs
	snapshot := task.AccumulatedSeconds
	out.TimerActive = true
	out.SessionStartedAtMs = &started
	out.AccumulatedAtSessionStart = &snapshot
	return out, nil
}

// Stop closes the open session and commits its whole seconds.
func Stop(task models.Task, nowMs int64) (models.Task, error) {
	if !task.TimerActive || task.SessionStartedAtMs == nil || task.AccumulatedAtSessionStart == nil {
		return task, newStateError("stop", task)
	}
	out := task.Clone()
	out.AccumulatedSeconds = *task.AccumulatedAtSessionStart + sessionSeconds(*task.SessionStartedAtMs, nowMs)
	out.TimerActive = false
	out.SessionStartedAtMs = nil
	out.AccumulatedAtSessionStart = nil
	return out, nil
}

// Toggle starts an idle timer or stops a running one. Every UI surface goes
// through here so Start and Stop preconditions always hold.
func Toggle(task models.Task, nowMs int64) (models.Task, error) {
	if task.TimerActive {
		return Stop(task, nowMs)
	}
	return Start(task, nowMs)
}

// MustToggle is Toggle for callers that treat a state error as a bug.
func MustToggle(task models.Task, nowMs int64) models.Task {
	out, err := Toggle(task, nowMs)
	if err != nil {
		panic(err)
	}
	return out
}

// LiveElapsed returns the total seconds including any open session.
func LiveElapsed(task models.Task, nowMs int64) int64 {
	if !task.TimerActive || task.SessionStartedAtMs == nil || task.AccumulatedAtSessionStart == nil {
		return task.AccumulatedSeconds
	}
	return *task.AccumulatedAtSessionStart + sessionSeconds(*task.SessionStartedAtMs, nowMs)
}

// Discard closes an open session without committing it. Used when a task is
// deleted while its timer runs.
func Discard(task models.Task) models.Task {
	out := task.Clone()
	if out.AccumulatedAtSessionStart != nil {
		out.AccumulatedSeconds = *out.AccumulatedAtSessionStart
	}
	out.TimerActive = false
	out.SessionStartedAtMs = nil
	out.AccumulatedAtSessionStart = nil
	return out
}

// UpdateFor builds the timer command the collaborator commits.
func UpdateFor(task models.Task) models.TimerUpdate {
	c := task.Clone()
	return models.TimerUpdate{
		TaskID:                    c.ID,
		AccumulatedSeconds:        c.AccumulatedSeconds,
		TimerActive:               c.TimerActive,
		SessionStartedAtMs:        c.SessionStartedAtMs,
		AccumulatedAtSessionStart: c.AccumulatedAtSessionStart,
	}
}

// Consistent reports whether the active flag agrees with the session fields.
func Consistent(task models.Task) bool {
	hasStart := task.SessionStartedAtMs != nil
	hasSnapshot := task.AccumulatedAtSessionStart != nil
	if task.TimerActive {
		return hasStart && hasSnapshot
	}
	return !hasStart && !hasSnapshot && task.AccumulatedSeconds >= 0
}
