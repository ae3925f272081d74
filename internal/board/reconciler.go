// Package board turns drag gestures into status changes on a task list.
//
// The collaborator that owns the authoritative list pushes it in with
// ReconcileExternal and receives committed StatusChange commands back from
// DragEnd. In between, the Reconciler keeps an optimistic mirror so the
// dragged card follows the pointer across columns. Only one gesture runs at a
// time, and lists pushed during a gesture are queued until it settles.
package board

import (
	"fmt"

	"github.com/akyairhashvil/taskboard/internal/models"
)

type Phase int

const (
	Idle Phase = iota
	Dragging
)

func (p Phase) String() string {
	if p == Dragging {
		return "dragging"
	}
	return "idle"
}

// Position is a column and an index inside that column.
type Position struct {
	Status models.TaskStatus
	Index  int
}

// Gesture is the in-flight drag intent.
type Gesture struct {
	TaskID string
	Origin Position
	Hover  Target

	snapshot []models.Task
}

// Column is one status bucket in display order.
type Column struct {
	Status models.TaskStatus
	Tasks  []models.Task
}

type Reconciler struct {
	tasks    []models.Task
	known    []models.Task
	gesture  *Gesture
	deferred [][]models.Task
}

// New seeds the mirror with the collaborator's current list.
func New(tasks []models.Task) *Reconciler {
	r := &Reconciler{}
	r.replace(tasks)
	return r
}

func (r *Reconciler) Phase() Phase {
	if r.gesture != nil {
		return Dragging
	}
	return Idle
}

func (r *Reconciler) Dragging() bool { return r.gesture != nil }

// Gesture returns a copy of the active gesture, if any.
func (r *Reconciler) Gesture() (Gesture, bool) {
	if r.gesture == nil {
		return Gesture{}, false
	}
	g := *r.gesture
	g.snapshot = nil
	return g, true
}

// Pending is the number of external lists waiting for the gesture to end.
func (r *Reconciler) Pending() int { return len(r.deferred) }

// Tasks returns a copy of the mirror in list order.
func (r *Reconciler) Tasks() []models.Task {
	return models.CloneTasks(r.tasks)
}

// Task looks up a task in the mirror.
func (r *Reconciler) Task(id string) (models.Task, bool) {
	if i := indexOf(r.tasks, id); i >= 0 {
		return r.tasks[i].Clone(), true
	}
	return models.Task{}, false
}

// Column returns the tasks currently in status, in order.
func (r *Reconciler) Column(status models.TaskStatus) []models.Task {
	var out []models.Task
	for _, t := range r.tasks {
		if t.Status == status {
			out = append(out, t.Clone())
		}
	}
	return out
}

// Columns groups the mirror into the four board columns.
func (r *Reconciler) Columns() []Column {
	cols := make([]Column, len(models.Statuses))
	for i, s := range models.Statuses {
		cols[i] = Column{Status: s, Tasks: r.Column(s)}
	}
	return cols
}

// ReconcileExternal takes a fresh authoritative list. While a gesture is in
// progress the list is queued and applied, in arrival order, once it settles.
func (r *Reconciler) ReconcileExternal(tasks []models.Task) {
	if r.gesture != nil {
		r.deferred = append(r.deferred, models.CloneTasks(tasks))
		return
	}
	r.replace(tasks)
}

// DragStart captures the origin of taskID and enters Dragging.
func (r *Reconciler) DragStart(taskID string) error {
	if r.gesture != nil {
		return fmt.Errorf("drag %q: %w", taskID, ErrGestureInProgress)
	}
	i := indexOf(r.tasks, taskID)
	if i < 0 {
		return fmt.Errorf("drag %q: %w", taskID, ErrUnknownTask)
	}
	status := r.tasks[i].Status
	r.gesture = &Gesture{
		TaskID:   taskID,
		Origin:   Position{Status: status, Index: columnIndex(r.tasks, i)},
		snapshot: models.CloneTasks(r.tasks),
	}
	return nil
}

// DragOver moves the dragged task optimistically under the hovered target.
// Targets that resolve to nothing are ignored and the gesture continues.
// Repeating the current hover target is a no-op.
func (r *Reconciler) DragOver(target Target) error {
	if r.gesture == nil {
		return ErrNoGesture
	}
	if target == r.gesture.Hover {
		return nil
	}
	r.gesture.Hover = target
	r.place(target)
	return nil
}

// DragEnd drops the dragged task on target. A StatusChange is returned only
// when the final column differs from the column the gesture started in.
func (r *Reconciler) DragEnd(target Target) (*models.StatusChange, error) {
	if r.gesture == nil {
		return nil, ErrNoGesture
	}
	g := r.gesture
	latest := r.latestKnown()
	if indexOf(latest, g.TaskID) < 0 || !r.targetExists(target, latest) {
		r.gesture = nil
		r.deferred = nil
		r.replace(latest)
		return nil, fmt.Errorf("drop %q on %s: %w", g.TaskID, target, ErrStaleDragTarget)
	}

	placed := target
	if target.Kind == TargetTask && indexOf(r.tasks, target.TaskID) < 0 {
		// Only a queued list knows the target; its column decides.
		placed = ColumnTarget(latest[indexOf(latest, target.TaskID)].Status)
	}
	// The hovered target has already been applied; placing it again would
	// undo a within-column swap.
	if target != g.Hover || placed != target {
		r.place(placed)
	}
	final := r.tasks[indexOf(r.tasks, g.TaskID)].Status
	r.gesture = nil

	var change *models.StatusChange
	if final != g.Origin.Status {
		change = &models.StatusChange{TaskID: g.TaskID, Status: final}
	}
	flushed := r.flush()
	switch {
	case change != nil:
		// The collaborator appends a moved task to its new column, and queued
		// lists predate the commit. Land the card where the commit will put it.
		if i := indexOf(r.tasks, change.TaskID); i >= 0 {
			r.tasks = moveToColumnEnd(r.tasks, i, change.Status)
		}
	case !flushed:
		// Nothing is committed, so hover reordering is dropped.
		r.tasks = models.CloneTasks(r.known)
	}
	return change, nil
}

// DragCancel restores the board exactly as it was at DragStart, then applies
// any lists that arrived during the gesture.
func (r *Reconciler) DragCancel() {
	if r.gesture == nil {
		return
	}
	r.tasks = r.gesture.snapshot
	r.gesture = nil
	r.flush()
}

// place applies the optimistic move for target to the mirror.
func (r *Reconciler) place(target Target) {
	from := indexOf(r.tasks, r.gesture.TaskID)
	if from < 0 {
		return
	}
	current := r.tasks[from].Status
	switch target.Kind {
	case TargetColumn:
		if !target.Column.Valid() || target.Column == current {
			return
		}
		r.tasks = moveToColumnEnd(r.tasks, from, target.Column)
	case TargetTask:
		if target.TaskID == r.gesture.TaskID {
			return
		}
		to := indexOf(r.tasks, target.TaskID)
		if to < 0 {
			return
		}
		r.tasks = arrayMove(r.tasks, from, to, r.tasks[to].Status)
	}
}

func (r *Reconciler) targetExists(target Target, latest []models.Task) bool {
	switch target.Kind {
	case TargetColumn:
		return target.Column.Valid()
	case TargetTask:
		return indexOf(latest, target.TaskID) >= 0
	}
	return false
}

// latestKnown is the newest collaborator list, queued or applied.
func (r *Reconciler) latestKnown() []models.Task {
	if n := len(r.deferred); n > 0 {
		return r.deferred[n-1]
	}
	return r.known
}

func (r *Reconciler) flush() bool {
	if len(r.deferred) == 0 {
		return false
	}
	for _, list := range r.deferred {
		r.replace(list)
	}
	r.deferred = nil
	return true
}

func (r *Reconciler) replace(tasks []models.Task) {
	r.known = models.CloneTasks(tasks)
	r.tasks = models.CloneTasks(tasks)
}

func indexOf(tasks []models.Task, id string) int {
	for i := range tasks {
		if tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// columnIndex is the position of tasks[i] among tasks sharing its status.
func columnIndex(tasks []models.Task, i int) int {
	n := 0
	for j := 0; j < i; j++ {
		if tasks[j].Status == tasks[i].Status {
			n++
		}
	}
	return n
}

// moveToColumnEnd rebuilds the list with tasks[from] moved to the end and
// given status, so it lands last in its new column.
func moveToColumnEnd(tasks []models.Task, from int, status models.TaskStatus) []models.Task {
	out := make([]models.Task, 0, len(tasks))
	moved := tasks[from]
	moved.Status = status
	out = append(out, tasks[:from]...)
	out = append(out, tasks[from+1:]...)
	return append(out, moved)
}

// arrayMove rebuilds the list with tasks[from] taking index to, matching the
// sortable-list convention: dragging down lands after the target, up before it.
func arrayMove(tasks []models.Task, from, to int, status models.TaskStatus) []models.Task {
	moved := tasks[from]
	moved.Status = status
	rest := make([]models.Task, 0, len(tasks)-1)
	rest = append(rest, tasks[:from]...)
	rest = append(rest, tasks[from+1:]...)
	out := make([]models.Task, 0, len(tasks))
	out = append(out, rest[:to]...)
	out = append(out, moved)
	return append(out, rest[to:]...)
}
