package reminder

import (
	"context"
	"fmt"
	"time"
)

// Report is the Inspector's response payload. It mirrors what the scan
// engine's window test would select, over the full task set, with none of the
// status/flag/email filters applied.
type Report struct {
	NowISO       string       `json:"nowIso"`
	WindowEndISO string       `json:"windowEndIso"`
	TotalTasks   int          `json:"totalTasks"`
	Tasks        []TaskReport `json:"tasks"`
}

// TaskReport is one task's row in the Report
type TaskReport struct {
	ID                string `json:"id"`
	Path              string `json:"path"`
	Title             string `json:"title"`
	Status            string `json:"status"`
	UserEmail         string `json:"userEmail"`
	EmailReminderSent bool   `json:"emailReminderSent"`
	DueISO            string `json:"dueIso"`
	InWindow          bool   `json:"inWindow"`
}

// Inspector recomputes the reminder window on demand and reports the raw
// window test for every task in the store. Read-only; safe to call
// repeatedly. Lets an operator compare against what the engine selected
// without waiting for the schedule.
type Inspector struct {
	tasks  TaskStore
	window time.Duration
	now    func() time.Time
}

func NewInspector(tasks TaskStore, window time.Duration) *Inspector {
	if window <= 0 {
		window = 60 * time.Minute
	}
	return &Inspector{tasks: tasks, window: window, now: time.Now}
}

// WithClock overrides the inspector's time source
func (i *Inspector) WithClock(now func() time.Time) *Inspector {
	i.now = now
	return i
}

func (i *Inspector) Report(ctx context.Context) (*Report, error) {
	now := i.now()
	windowEnd := now.Add(i.window)

	tasks, err := i.tasks.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("window inspection scan: %w", err)
	}

	report := &Report{
		NowISO:       now.Format(time.RFC3339),
		WindowEndISO: windowEnd.Format(time.RFC3339),
		TotalTasks:   len(tasks),
		Tasks:        make([]TaskReport, 0, len(tasks)),
	}
	for _, t := range tasks {
		row := TaskReport{
			ID:                t.ID,
			Path:              t.Path,
			Title:             t.Title,
			Status:            string(t.Status),
			UserEmail:         t.UserEmail,
			EmailReminderSent: t.EmailReminderSent,
			InWindow:          inWindow(now, windowEnd, t.DueDate),
		}
		if t.DueDate != nil {
			row.DueISO = t.DueDate.Format(time.RFC3339)
		}
		report.Tasks = append(report.Tasks, row)
	}
	return report, nil
}
