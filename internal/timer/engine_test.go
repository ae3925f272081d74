package timer

import (
	"errors"
	"testing"

	"github.com/akyairhashvil/taskboard/internal/models"
)

func idle(id string, acc int64) models.Task {
	return models.Task{ID: id, Title: "task " + id, Status: models.StatusPending, Priority: models.PriorityHigh, AccumulatedSeconds: acc}
}

func TestStartOpensSession(t *testing.T) {
	task := idle("t1", 42)
	got, err := Start(task, 5000)
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	if !got.TimerActive || got.SessionStartedAtMs == nil || *got.SessionStartedAtMs != 5000 {
		t.Fatalf("session not opened: %+v", got)
	}
	if got.AccumulatedAtSessionStart == nil || *got.AccumulatedAtSessionStart != 42 {
		t.Fatalf("snapshot not taken: %+v", got)
	}
	if got.AccumulatedSeconds != 42 {
		t.Fatalf("start must not change committed seconds, got %d", got.AccumulatedSeconds)
	}
	if task.TimerActive {
		t.Fatalf("input task was mutated")
	}
	if !Consistent(got) {
		t.Fatalf("started task is inconsistent")
	}
}

func TestStartOnActiveIsStateError(t *testing.T) {
	running, _ := Start(idle("t1", 0), 0)
	_, err := Start(running, 10)
	if !errors.Is(err, ErrInvalidTimerState) {
		t.Fatalf("expected ErrInvalidTimerState, got %v", err)
	}
	var se *StateError
	if !errors.As(err, &se) || se.Op != "start" || !se.Active || se.TaskID != "t1" {
		t.Fatalf("unexpected state error: %#v", err)
	}
}

func TestStopOnIdleIsStateError(t *testing.T) {
	_, err := Stop(idle("t1", 0), 10)
	if !errors.Is(err, ErrInvalidTimerState) {
		t.Fatalf("expected ErrInvalidTimerState, got %v", err)
	}
}

func TestRoundTripCommitsWholeSeconds(t *testing.T) {
	cases := []struct {
		name   string
		acc    int64
		t0, t1 int64
		want   int64
	}{
		{"zero interval", 10, 1000, 1000, 10},
		{"sub second", 10, 1000, 1999, 10},
		{"exact seconds", 0, 0, 60000, 60},
		{"floors partial", 100, 500, 3700, 103},
		{"long session", 3600, 1_000_000, 1_001_800, 3600 + 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			started, err := Start(idle("t", tc.acc), tc.t0)
			if err != nil {
				t.Fatalf("Start failed: %v", err)
			}
			stopped, err := Stop(started, tc.t1)
			if err != nil {
				t.Fatalf("Stop failed: %v", err)
			}
			if stopped.TimerActive || stopped.SessionStartedAtMs != nil || stopped.AccumulatedAtSessionStart != nil {
				t.Fatalf("session not cleared: %+v", stopped)
			}
			if stopped.AccumulatedSeconds != tc.want {
				t.Fatalf("accumulated = %d, want %d", stopped.AccumulatedSeconds, tc.want)
			}
		})
	}
}

func TestClockSkewClampsToZero(t *testing.T) {
	started, _ := Start(idle("t", 7), 10_000)
	if got := LiveElapsed(started, 2_000); got != 7 {
		t.Fatalf("live elapsed with skew = %d, want 7", got)
	}
	stopped, err := Stop(started, 2_000)
	if err != nil {
		t.Fatalf("Stop failed: %v", err)
	}
	if stopped.AccumulatedSeconds != 7 {
		t.Fatalf("skewed stop = %d, want 7", stopped.AccumulatedSeconds)
	}
}

func TestLiveElapsedMonotonicAndMatchesStop(t *testing.T) {
	started, _ := Start(idle("t", 50), 0)
	prev := int64(-1)
	for now := int64(0); now <= 10_000; now += 137 {
		got := LiveElapsed(started, now)
		if got < prev {
			t.Fatalf("live elapsed went backwards at %d: %d < %d", now, got, prev)
		}
		prev = got
		stopped, err := Stop(started, now)
		if err != nil {
			t.Fatalf("Stop failed: %v", err)
		}
		if stopped.AccumulatedSeconds != got {
			t.Fatalf("stop at %d committed %d, live read %d", now, stopped.AccumulatedSeconds, got)
		}
		if LiveElapsed(stopped, now+99_999) != got {
			t.Fatalf("idle live elapsed must equal committed seconds")
		}
	}
}

func TestTogglePairsNeverLoseOrDoubleCount(t *testing.T) {
	task := idle("t", 0)
	var want int64
	now := int64(0)
	for i := 0; i < 20; i++ {
		t0 := now + int64(i*250)
		t1 := t0 + int64(1000*i+333)
		var err error
		task, err = Toggle(task, t0)
		if err != nil || !task.TimerActive {
			t.Fatalf("toggle on failed: %v", err)
		}
		task, err = Toggle(task, t1)
		if err != nil || task.TimerActive {
			t.Fatalf("toggle off failed: %v", err)
		}
		want += (t1 - t0) / 1000
		now = t1
	}
	if task.AccumulatedSeconds != want {
		t.Fatalf("accumulated = %d, want %d", task.AccumulatedSeconds, want)
	}
}

func TestToggleScenario(t *testing.T) {
	t1 := idle("T1", 3600)
	t1 = MustToggle(t1, 1_000_000)
	if !t1.TimerActive || *t1.SessionStartedAtMs != 1_000_000 || *t1.AccumulatedAtSessionStart != 3600 {
		t.Fatalf("unexpected started state: %+v", t1)
	}
	if got := LiveElapsed(t1, 1_001_800); got != 3601 {
		t.Fatalf("live elapsed = %d, want 3601", got)
	}
	if got := LiveElapsed(t1, 1_000_000+1_800_000); got != 5400 {
		t.Fatalf("live elapsed = %d, want 5400", got)
	}
	t1 = MustToggle(t1, 1_000_000+1_800_000)
	if t1.TimerActive || t1.AccumulatedSeconds != 5400 {
		t.Fatalf("unexpected stopped state: %+v", t1)
	}
}

func TestTogglePreservesOtherFields(t *testing.T) {
	task := idle("t", 0)
	task.AssigneeID = "u-1"
	got := MustToggle(task, 100)
	if got.Title != task.Title || got.Priority != task.Priority || got.Status != task.Status || got.AssigneeID != "u-1" {
		t.Fatalf("toggle altered non-timer fields: %+v", got)
	}
}

func TestMustTogglePanicsOnCorruptState(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic")
		}
	}()
	corrupt := idle("t", 0)
	corrupt.TimerActive = true
	MustToggle(corrupt, 0)
}

func TestDiscardDropsOpenSession(t *testing.T) {
	started, _ := Start(idle("t", 30), 0)
	got := Discard(started)
	if got.TimerActive || got.SessionStartedAtMs != nil || got.AccumulatedSeconds != 30 {
		t.Fatalf("discard did not drop session: %+v", got)
	}
	if !Consistent(got) {
		t.Fatalf("discarded task inconsistent")
	}
}

func TestUpdateForCopiesTimerFields(t *testing.T) {
	started, _ := Start(idle("t", 9), 77)
	u := UpdateFor(started)
	if u.TaskID != "t" || !u.TimerActive || *u.SessionStartedAtMs != 77 || *u.AccumulatedAtSessionStart != 9 {
		t.Fatalf("unexpected update: %+v", u)
	}
	*u.SessionStartedAtMs = 1
	if *started.SessionStartedAtMs != 77 {
		t.Fatalf("update shares pointers with task")
	}
}
