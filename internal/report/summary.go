// Package report aggregates timer totals and writes them out as PDF.
package report

import (
	"math"
	"sort"

	"github.com/akyairhashvil/taskboard/internal/models"
	"github.com/akyairhashvil/taskboard/internal/timer"
)

// Group totals tasks sharing an assignee or project.
type Group struct {
	Key       string
	Tasks     int
	Completed int
	Seconds   int64
}

type Summary struct {
	GeneratedAtMs  int64
	Tasks          int
	Counts         map[models.TaskStatus]int
	TotalSeconds   int64
	EstimatedHours float64
	ActiveTimers   int
	// CompletionRate is a percentage rounded to one decimal.
	CompletionRate float64
	Assignees      []Group
	Projects       []Group
}

// Build totals tasks at nowMs. Running timers contribute their live elapsed
// time, so the report matches what the board shows at that instant.
func Build(tasks []models.Task, nowMs int64) Summary {
	s := Summary{
		GeneratedAtMs: nowMs,
		Tasks:         len(tasks),
		Counts:        make(map[models.TaskStatus]int, len(models.Statuses)),
	}
	assignees := map[string]*Group{}
	projects := map[string]*Group{}
	add := func(groups map[string]*Group, key string, t models.Task, secs int64) {
		g, ok := groups[key]
		if !ok {
			g = &Group{Key: key}
			groups[key] = g
		}
		g.Tasks++
		g.Seconds += secs
		if t.Status == models.StatusCompleted {
			g.Completed++
		}
	}
	for _, t := range tasks {
		secs := timer.LiveElapsed(t, nowMs)
		s.Counts[t.Status]++
		s.TotalSeconds += secs
		s.EstimatedHours += t.EstimatedHours
		if t.TimerActive {
			s.ActiveTimers++
		}
		add(assignees, t.AssigneeID, t, secs)
		add(projects, t.ProjectID, t, secs)
	}
	if s.Tasks > 0 {
		rate := float64(s.Counts[models.StatusCompleted]) / float64(s.Tasks) * 100
		s.CompletionRate = math.Round(rate*10) / 10
	}
	s.Assignees = sortedGroups(assignees)
	s.Projects = sortedGroups(projects)
	return s
}

// sortedGroups orders by time spent, most first, then by key.
func sortedGroups(m map[string]*Group) []Group {
	out := make([]Group, 0, len(m))
	for _, g := range m {
		out = append(out, *g)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Seconds != out[j].Seconds {
			return out[i].Seconds > out[j].Seconds
		}
		return out[i].Key < out[j].Key
	})
	return out
}
