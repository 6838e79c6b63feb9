package reminder

import (
	"context"
	"fmt"
	"html"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	notifdomain "mytask-backend/internal/notification/domain"
	taskdomain "mytask-backend/internal/task/domain"
	"mytask-backend/pkg/mailer"
)

// TaskStore is the slice of task storage the reminder job needs
type TaskStore interface {
	// FindDueBetween returns every task across all users whose due date falls
	// in (from, to]
	FindDueBetween(ctx context.Context, from, to time.Time) ([]*taskdomain.Task, error)

	// ListAll returns every live task in the store
	ListAll(ctx context.Context) ([]*taskdomain.Task, error)

	// MarkReminderSent sets emailReminderSent=true on the task at path
	MarkReminderSent(ctx context.Context, path string) error
}

// NotificationStore writes in-app notifications for a user
type NotificationStore interface {
	Create(ctx context.Context, userID string, notification *notifdomain.Notification) error
}

// Config carries the engine's operational parameters. It is built once at
// startup and passed in explicitly; the engine reads no ambient state.
type Config struct {
	SenderAddress string
	SenderName    string
	Window        time.Duration
	Location      *time.Location
}

// Engine is the periodic deadline-reminder job. Each run scans for tasks due
// within the lookahead window and, per eligible task, sends a reminder email,
// records an in-app notification, and sets the task's emailReminderSent flag.
// The three side effects are independent: an email failure does not stop the
// notification write or the flag update for that task.
type Engine struct {
	tasks         TaskStore
	notifications NotificationStore
	mailer        mailer.Mailer
	cfg           Config
	now           func() time.Time
	log           *logrus.Entry
}

// NewEngine creates a reminder engine. A nil mailer (delivery credentials not
// configured) disables dispatch: runs become logged no-ops.
func NewEngine(tasks TaskStore, notifications NotificationStore, m mailer.Mailer, cfg Config) *Engine {
	if cfg.Window <= 0 {
		cfg.Window = 60 * time.Minute
	}
	return &Engine{
		tasks:         tasks,
		notifications: notifications,
		mailer:        m,
		cfg:           cfg,
		now:           time.Now,
		log:           logrus.WithField("component", "reminder"),
	}
}

// WithClock overrides the engine's time source
func (e *Engine) WithClock(now func() time.Time) *Engine {
	e.now = now
	return e
}

// taskResult captures the outcome of one task's three side effects so partial
// failures stay observable after the run.
type taskResult struct {
	task      *taskdomain.Task
	emailErr  error
	notifyErr error
	flagErr   error
}

func (r taskResult) failed() bool {
	return r.emailErr != nil || r.notifyErr != nil || r.flagErr != nil
}

// Run executes one reminder scan. It returns a non-nil error only for
// run-level failures (the scan query itself); per-task failures are logged
// and absorbed so the remaining tasks still get processed.
func (e *Engine) Run(ctx context.Context) error {
	if e.mailer == nil || e.cfg.SenderAddress == "" {
		e.log.Error("email delivery not configured, skipping reminder run")
		return nil
	}

	now := e.now()
	windowEnd := now.Add(e.cfg.Window)

	candidates, err := e.tasks.FindDueBetween(ctx, now, windowEnd)
	if err != nil {
		e.log.WithError(err).Error("reminder scan query failed")
		return fmt.Errorf("reminder scan: %w", err)
	}

	var eligible []*taskdomain.Task
	for _, t := range candidates {
		if t.Status == taskdomain.TaskStatusDone {
			continue
		}
		if t.EmailReminderSent {
			continue
		}
		if t.UserEmail == "" {
			e.log.WithField("task", t.Path).Warn("task due soon but has no owner email, skipping")
			continue
		}
		if t.DueDate == nil {
			e.log.WithField("task", t.Path).Warn("task matched scan without a due date, skipping")
			continue
		}
		eligible = append(eligible, t)
	}

	if len(eligible) == 0 {
		e.log.Info("no tasks due within reminder window")
		return nil
	}

	results := make([]taskResult, len(eligible))
	var wg sync.WaitGroup
	for i, t := range eligible {
		wg.Add(1)
		go func(i int, t *taskdomain.Task) {
			defer wg.Done()
			results[i] = e.process(ctx, t)
		}(i, t)
	}
	wg.Wait()

	failures := 0
	for _, r := range results {
		if r.failed() {
			failures++
		}
	}
	e.log.WithFields(logrus.Fields{
		"processed": len(eligible),
		"failures":  failures,
	}).Info("reminder run complete")
	return nil
}

// process runs one task's three side effects concurrently and joins them.
// Failures are recorded, not chained: a failed email still leaves the task
// marked as reminded.
func (e *Engine) process(ctx context.Context, t *taskdomain.Task) taskResult {
	res := taskResult{task: t}
	dueText := formatDueTime(*t.DueDate, e.cfg.Location)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		res.emailErr = e.sendEmail(ctx, t, dueText)
	}()
	go func() {
		defer wg.Done()
		res.notifyErr = e.writeNotification(ctx, t, dueText)
	}()
	go func() {
		defer wg.Done()
		res.flagErr = e.tasks.MarkReminderSent(ctx, t.Path)
	}()
	wg.Wait()

	log := e.log.WithField("task", t.Path)
	if res.emailErr != nil {
		log.WithError(res.emailErr).Warn("reminder email failed")
	}
	if res.notifyErr != nil {
		log.WithError(res.notifyErr).Warn("notification write failed")
	}
	if res.flagErr != nil {
		log.WithError(res.flagErr).Warn("reminder flag update failed")
	}
	return res
}

func (e *Engine) sendEmail(ctx context.Context, t *taskdomain.Task, dueText string) error {
	from := e.cfg.SenderAddress
	if e.cfg.SenderName != "" {
		from = fmt.Sprintf("%s <%s>", e.cfg.SenderName, e.cfg.SenderAddress)
	}
	return e.mailer.Send(ctx, mailer.Message{
		To:      t.UserEmail,
		From:    from,
		Subject: fmt.Sprintf("Task due soon: %s", t.Title),
		HTML:    reminderBody(t, dueText),
	})
}

func (e *Engine) writeNotification(ctx context.Context, t *taskdomain.Task, dueText string) error {
	return e.notifications.Create(ctx, t.OwnerID(), &notifdomain.Notification{
		Title:   "Task Due Soon",
		Message: fmt.Sprintf("Your task %q is due at %s", t.Title, dueText),
		Type:    notifdomain.TypeWarning,
	})
}

func reminderBody(t *taskdomain.Task, dueText string) string {
	body := fmt.Sprintf(
		`<h2>⏰ Task Reminder</h2>
<p>Your task <strong>%s</strong> is due at <strong>%s</strong>.</p>`,
		html.EscapeString(t.Title), html.EscapeString(dueText),
	)
	if t.Priority != "" {
		body += fmt.Sprintf("\n<p>Priority: %s</p>", html.EscapeString(string(t.Priority)))
	}
	body += fmt.Sprintf("\n<p>Status: %s</p>", html.EscapeString(string(t.Status)))
	return body
}
