// Package seed loads the sample board from YAML.
package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/akyairhashvil/taskboard/internal/database"
	"github.com/akyairhashvil/taskboard/internal/logger"
	"github.com/akyairhashvil/taskboard/internal/models"
	"github.com/akyairhashvil/taskboard/internal/util"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

const dateLayout = "2006-01-02"

var ErrInvalidEntry = errors.New("invalid seed entry")

type File struct {
	Tasks []Entry `yaml:"tasks"`
}

// Entry is one task in a seed file. Status and priority accept the
// canonical slugs as well as the legacy Spanish labels.
type Entry struct {
	Title          string        `yaml:"title"`
	Description    string        `yaml:"description"`
	Status         string        `yaml:"status"`
	Priority       string        `yaml:"priority"`
	Assignee       string        `yaml:"assignee"`
	Project        string        `yaml:"project"`
	Due            string        `yaml:"due"`
	EstimatedHours float64       `yaml:"estimated_hours"`
	TimeSpent      int64         `yaml:"time_spent"`
	RunningFor     time.Duration `yaml:"running_for"`
}

// Default returns the embedded sample board.
func Default() ([]Entry, error) {
	return Decode(bytes.NewReader(defaultSeed))
}

// Load reads a seed file. An empty path returns the embedded sample board.
func Load(path string) ([]Entry, error) {
	if path == "" {
		return Default()
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed %s: %w", path, err)
	}
	defer file.Close()
	return Decode(file)
}

func Decode(r io.Reader) ([]Entry, error) {
	var f File
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	return f.Tasks, nil
}

// TaskSeed converts the entry into a store seed.
func (e Entry) TaskSeed() (database.TaskSeed, error) {
	if strings.TrimSpace(e.Title) == "" {
		return database.TaskSeed{}, fmt.Errorf("%w: empty title", ErrInvalidEntry)
	}
	status := models.StatusPending
	if e.Status != "" {
		s, err := models.NormalizeStatus(e.Status)
		if err != nil {
			return database.TaskSeed{}, fmt.Errorf("%w: %q: %v", ErrInvalidEntry, e.Title, err)
		}
		status = s
	}
	var due *time.Time
	if e.Due != "" {
		d, err := time.Parse(dateLayout, e.Due)
		if err != nil {
			return database.TaskSeed{}, fmt.Errorf("%w: %q due date: %v", ErrInvalidEntry, e.Title, err)
		}
		due = &d
	}
	if e.TimeSpent < 0 || e.RunningFor < 0 {
		return database.TaskSeed{}, fmt.Errorf("%w: %q has negative time", ErrInvalidEntry, e.Title)
	}
	return database.TaskSeed{
		Title:              e.Title,
		Description:        e.Description,
		Status:             status,
		Priority:           models.NormalizePriority(e.Priority),
		AssigneeID:         e.Assignee,
		ProjectID:          e.Project,
		DueDate:            due,
		EstimatedHours:     e.EstimatedHours,
		AccumulatedSeconds: e.TimeSpent,
	}, nil
}

// Apply seeds store with entries in a single SeedTasks call, so a failure
// leaves the store untouched. Entries with RunningFor set get a timer session
// that started that long before now.
func Apply(ctx context.Context, store database.TaskWriter, entries []Entry, now time.Time) ([]models.Task, error) {
	seeds := make([]database.TaskSeed, 0, len(entries))
	for _, e := range entries {
		s, err := e.TaskSeed()
		if err != nil {
			return nil, err
		}
		if e.RunningFor > 0 {
			s.RunningSince = util.Ptr(now.Add(-e.RunningFor))
		}
		seeds = append(seeds, s)
	}
	created, err := store.SeedTasks(ctx, seeds)
	if err != nil {
		return nil, err
	}
	for i, e := range entries {
		if e.RunningFor > 0 && i < len(created) {
			logger.Debug("seeded running timer", zap.String("task_id", created[i].ID), zap.Duration("running_for", e.RunningFor))
		}
	}
	return created, nil
}
