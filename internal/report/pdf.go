package report

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/akyairhashvil/taskboard/internal/locale"
	"github.com/akyairhashvil/taskboard/internal/models"
	"github.com/akyairhashvil/taskboard/internal/timer"
	"github.com/akyairhashvil/taskboard/internal/util"
	"github.com/go-pdf/fpdf"
)

// FileName is the report name for a given instant.
func FileName(nowMs int64) string {
	return fmt.Sprintf("report_%s.pdf", time.UnixMilli(nowMs).Format("2006-01-02_150405"))
}

// WritePDF renders the summary and the task list into dir and returns the
// absolute path of the file.
func WritePDF(dir string, s Summary, tasks []models.Task, labels locale.Labels) (string, error) {
	if _, err := util.EnsureDir(dir); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, tr(fmt.Sprintf("%s: %s", labels.ReportTitle, time.UnixMilli(s.GeneratedAtMs).Format("2006-01-02 15:04"))))
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 8, tr(fmt.Sprintf("%s: %s (%d)", labels.Total, timer.FormatDuration(s.TotalSeconds), s.Tasks)))
	pdf.Ln(6)
	pdf.Cell(0, 8, tr(fmt.Sprintf("%s: %.1f%%", labels.Completion, s.CompletionRate)))
	pdf.Ln(6)
	pdf.Cell(0, 8, tr(fmt.Sprintf("%s: %d", labels.ActiveTimers, s.ActiveTimers)))
	pdf.Ln(10)

	for _, status := range models.Statuses {
		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 10, tr(fmt.Sprintf("%s (%d)", labels.StatusName(status), s.Counts[status])))
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 11)
		for _, t := range tasks {
			if t.Status != status {
				continue
			}
			marker := "   "
			if t.TimerActive {
				marker = ">> "
			}
			secs := timer.LiveElapsed(t, s.GeneratedAtMs)
			line := fmt.Sprintf("%s%s  [%s]  %s", marker, timer.FormatDuration(secs), labels.PriorityName(t.Priority), t.Title)
			pdf.MultiCell(0, 6, tr(line), "", "", false)
		}
		pdf.Ln(4)
	}

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 10, tr(labels.Assignee))
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 11)
	for _, g := range s.Assignees {
		name := g.Key
		if name == "" {
			name = labels.Unassigned
		}
		pdf.Cell(0, 6, tr(fmt.Sprintf("%s: %s (%d/%d)", name, timer.FormatHours(g.Seconds), g.Completed, g.Tasks)))
		pdf.Ln(6)
	}

	path := filepath.Join(dir, FileName(s.GeneratedAtMs))
	if err := pdf.OutputFileAndClose(path); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return path, nil
	}
	return abs, nil
}
