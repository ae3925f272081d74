package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/taskboard/internal/config"
	"github.com/akyairhashvil/taskboard/internal/database"
	"github.com/akyairhashvil/taskboard/internal/locale"
	"github.com/akyairhashvil/taskboard/internal/logger"
	"github.com/akyairhashvil/taskboard/internal/models"
	"github.com/akyairhashvil/taskboard/internal/report"
	"github.com/akyairhashvil/taskboard/internal/seed"
	"github.com/akyairhashvil/taskboard/internal/timer"
	"github.com/akyairhashvil/taskboard/internal/tui"
	"github.com/akyairhashvil/taskboard/internal/util"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
	interactive := term.IsTerminal(int(os.Stdout.Fd()))
	if err := run(context.Background(), cfg, os.Stdout, interactive); err != nil {
		fmt.Fprintf(os.Stderr, "Alas, there's been an error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, out io.Writer, interactive bool) error {
	if err := initLogging(cfg.Logging); err != nil {
		return err
	}
	defer logger.Sync()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	labels := locale.For(cfg.UI.Locale)
	if !interactive {
		tasks, err := store.ListTasks(ctx)
		if err != nil {
			return err
		}
		return printSummary(out, tasks, time.Now(), labels)
	}

	model := tui.NewMainModel(ctx, store, tui.Options{
		Locale:       cfg.UI.Locale,
		Theme:        cfg.UI.Theme,
		TickInterval: cfg.UI.TickInterval,
		ReportsDir:   cfg.Reports.Dir,
	})
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	logActiveTimers(ctx, store)
	return nil
}

func initLogging(cfg config.LoggingConfig) error {
	if cfg.Path != "" {
		if _, err := util.EnsureDir(filepath.Dir(cfg.Path)); err != nil {
			return fmt.Errorf("create log dir: %w", err)
		}
	}
	if err := logger.Init(cfg.Development, cfg.Path); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	return nil
}

// openStore opens the database and loads the seed board into an empty store.
func openStore(ctx context.Context, cfg *config.Config) (*database.Database, error) {
	store, err := database.Open(ctx, cfg.Database.DSN)
	if err != nil {
		return nil, err
	}
	if cfg.Seed.Disabled {
		return store, nil
	}
	existing, err := store.ListTasks(ctx)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	if len(existing) > 0 {
		logger.Info("store already populated, skipping seed", zap.Int("tasks", len(existing)))
		return store, nil
	}
	entries, err := seed.Load(cfg.Seed.Path)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	if _, err := seed.Apply(ctx, store, entries, time.Now()); err != nil {
		_ = store.Close()
		return nil, err
	}
	return store, nil
}

// printSummary is the non-interactive output: one line per column and the
// overall totals.
func printSummary(w io.Writer, tasks []models.Task, now time.Time, labels locale.Labels) error {
	s := report.Build(tasks, timer.NowMs(now))
	if _, err := fmt.Fprintf(w, "%s\n", labels.ReportTitle); err != nil {
		return err
	}
	for _, status := range models.Statuses {
		if _, err := fmt.Fprintf(w, "  %-14s %d\n", labels.StatusName(status), s.Counts[status]); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "%s: %s  %s: %d  %s: %.1f%%\n",
		labels.Total, timer.FormatDuration(s.TotalSeconds),
		labels.ActiveTimers, s.ActiveTimers,
		labels.Completion, s.CompletionRate)
	return err
}

func logActiveTimers(ctx context.Context, store database.TaskReader) {
	running, err := store.ListActiveTimers(ctx)
	if err != nil {
		logger.Error("list active timers", err)
		return
	}
	for _, t := range running {
		logger.Info("timer still running at exit",
			zap.String("task_id", t.ID),
			zap.String("title", t.Title),
			zap.Int64("elapsed_seconds", timer.LiveElapsed(t, timer.NowMs(time.Now()))))
	}
}
