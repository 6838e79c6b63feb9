package reminder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	taskdomain "mytask-backend/internal/task/domain"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func newTestEngine(store *fakeTaskStore, notifs *fakeNotificationStore, m *fakeMailer) *Engine {
	e := NewEngine(store, notifs, m, Config{
		SenderAddress: "reminders@mytask.app",
		SenderName:    "MyTask Reminders",
		Window:        60 * time.Minute,
		Location:      time.UTC,
	})
	return e.WithClock(func() time.Time { return testNow })
}

func dueIn(d time.Duration) *time.Time {
	t := testNow.Add(d)
	return &t
}

func testTask(id string, due *time.Duration, status taskdomain.TaskStatus, email string, reminded bool) *taskdomain.Task {
	task := &taskdomain.Task{
		ID:                id,
		Title:             "Task " + id,
		Status:            status,
		UserEmail:         email,
		EmailReminderSent: reminded,
		Path:              "users/u-" + id + "/boards/b1/tasks/" + id,
	}
	if due != nil {
		task.DueDate = dueIn(*due)
	}
	return task
}

func d(v time.Duration) *time.Duration { return &v }

func TestRunProcessesOnlyEligibleTasks(t *testing.T) {
	// Scenario: pending in window, done in window, pending outside window.
	store := &fakeTaskStore{tasks: []*taskdomain.Task{
		testTask("t1", d(10*time.Minute), taskdomain.TaskStatusPending, "a@example.com", false),
		testTask("t2", d(10*time.Minute), taskdomain.TaskStatusDone, "b@example.com", false),
		testTask("t3", d(120*time.Minute), taskdomain.TaskStatusPending, "c@example.com", false),
	}}
	notifs := &fakeNotificationStore{}
	m := &fakeMailer{}

	err := newTestEngine(store, notifs, m).Run(context.Background())
	require.NoError(t, err)

	require.Len(t, m.sent, 1)
	assert.Equal(t, "a@example.com", m.sent[0].To)
	assert.Equal(t, "MyTask Reminders <reminders@mytask.app>", m.sent[0].From)
	assert.Contains(t, m.sent[0].Subject, "Task t1")
	assert.Contains(t, m.sent[0].HTML, "Task t1")

	assert.Equal(t, 1, notifs.total())
	require.Len(t, notifs.created["u-t1"], 1)
	assert.Equal(t, "Task Due Soon", notifs.created["u-t1"][0].Title)
	assert.Equal(t, "warning", string(notifs.created["u-t1"][0].Type))

	assert.Equal(t, []string{"users/u-t1/boards/b1/tasks/t1"}, store.marked)
}

func TestRunIsIdempotentPerTask(t *testing.T) {
	store := &fakeTaskStore{tasks: []*taskdomain.Task{
		testTask("t1", d(30*time.Minute), taskdomain.TaskStatusPending, "a@example.com", false),
	}}
	notifs := &fakeNotificationStore{}
	m := &fakeMailer{}
	engine := newTestEngine(store, notifs, m)

	require.NoError(t, engine.Run(context.Background()))
	require.NoError(t, engine.Run(context.Background()))

	assert.Len(t, m.sent, 1, "second run must not re-send for a reminded task")
	assert.Equal(t, 1, notifs.total())
}

func TestRunSkipsAlreadyRemindedEvenWhenFlagWriteIsStale(t *testing.T) {
	store := &fakeTaskStore{tasks: []*taskdomain.Task{
		testTask("t1", d(30*time.Minute), taskdomain.TaskStatusPending, "a@example.com", true),
	}}
	notifs := &fakeNotificationStore{}
	m := &fakeMailer{}

	require.NoError(t, newTestEngine(store, notifs, m).Run(context.Background()))
	assert.Empty(t, m.sent)
	assert.Zero(t, notifs.total())
	assert.Empty(t, store.marked)
}

func TestRunSkipsDoneTasksRegardlessOfFlag(t *testing.T) {
	store := &fakeTaskStore{tasks: []*taskdomain.Task{
		testTask("t1", d(30*time.Minute), taskdomain.TaskStatusDone, "a@example.com", false),
	}}
	m := &fakeMailer{}

	require.NoError(t, newTestEngine(store, &fakeNotificationStore{}, m).Run(context.Background()))
	assert.Empty(t, m.sent)
	assert.Empty(t, store.marked)
}

func TestRunSkipsTasksWithoutOwnerEmail(t *testing.T) {
	store := &fakeTaskStore{tasks: []*taskdomain.Task{
		testTask("t1", d(30*time.Minute), taskdomain.TaskStatusPending, "", false),
	}}
	notifs := &fakeNotificationStore{}
	m := &fakeMailer{}

	err := newTestEngine(store, notifs, m).Run(context.Background())
	require.NoError(t, err, "missing email is a data-quality skip, not a failure")
	assert.Empty(t, m.sent)
	assert.Zero(t, notifs.total())
	assert.Empty(t, store.marked)
}

func TestEmailFailureDoesNotBlockOtherSideEffects(t *testing.T) {
	store := &fakeTaskStore{tasks: []*taskdomain.Task{
		testTask("t1", d(30*time.Minute), taskdomain.TaskStatusPending, "a@example.com", false),
		testTask("t2", d(30*time.Minute), taskdomain.TaskStatusPending, "b@example.com", false),
	}}
	notifs := &fakeNotificationStore{}
	m := &fakeMailer{failTo: map[string]error{"a@example.com": errors.New("provider rejected")}}

	err := newTestEngine(store, notifs, m).Run(context.Background())
	require.NoError(t, err, "per-task delivery failures must not fail the run")

	// t1's email failed, but its notification and flag update still happened.
	require.Len(t, notifs.created["u-t1"], 1)
	assert.Contains(t, store.marked, "users/u-t1/boards/b1/tasks/t1")

	// t2 was unaffected.
	require.Len(t, m.sent, 1)
	assert.Equal(t, "b@example.com", m.sent[0].To)
	assert.Contains(t, store.marked, "users/u-t2/boards/b1/tasks/t2")
}

func TestFlagWriteFailureDoesNotBlockEmail(t *testing.T) {
	store := &fakeTaskStore{
		tasks: []*taskdomain.Task{
			testTask("t1", d(30*time.Minute), taskdomain.TaskStatusPending, "a@example.com", false),
		},
		markErr: map[string]error{"users/u-t1/boards/b1/tasks/t1": errors.New("write failed")},
	}
	notifs := &fakeNotificationStore{}
	m := &fakeMailer{}

	require.NoError(t, newTestEngine(store, notifs, m).Run(context.Background()))
	assert.Len(t, m.sent, 1)
	assert.Equal(t, 1, notifs.total())
}

func TestRunAbortsWhenDeliveryNotConfigured(t *testing.T) {
	store := &fakeTaskStore{tasks: []*taskdomain.Task{
		testTask("t1", d(30*time.Minute), taskdomain.TaskStatusPending, "a@example.com", false),
	}}

	// Nil mailer: API key absent.
	engine := NewEngine(store, &fakeNotificationStore{}, nil, Config{
		SenderAddress: "reminders@mytask.app",
		Window:        time.Hour,
	}).WithClock(func() time.Time { return testNow })
	require.NoError(t, engine.Run(context.Background()))
	assert.Empty(t, store.marked, "unconfigured run must not touch the store")

	// Sender missing.
	m := &fakeMailer{}
	engine = NewEngine(store, &fakeNotificationStore{}, m, Config{Window: time.Hour}).
		WithClock(func() time.Time { return testNow })
	require.NoError(t, engine.Run(context.Background()))
	assert.Empty(t, m.sent)
}

func TestRunPropagatesScanFailure(t *testing.T) {
	store := &fakeTaskStore{scanErr: errors.New("firestore unavailable")}
	m := &fakeMailer{}

	err := newTestEngine(store, &fakeNotificationStore{}, m).Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "firestore unavailable")
}

func TestRunWithNoCandidatesIsANoOp(t *testing.T) {
	store := &fakeTaskStore{}
	m := &fakeMailer{}

	require.NoError(t, newTestEngine(store, &fakeNotificationStore{}, m).Run(context.Background()))
	assert.Empty(t, m.sent)
	assert.Empty(t, store.marked)
}

func TestReminderBodyIncludesPriorityOnlyWhenSet(t *testing.T) {
	task := testTask("t1", d(30*time.Minute), taskdomain.TaskStatusPending, "a@example.com", false)
	body := reminderBody(task, "Mar 14, 12:30 PM")
	assert.NotContains(t, body, "Priority:")
	assert.Contains(t, body, "Status: pending")

	task.Priority = taskdomain.PriorityHigh
	body = reminderBody(task, "Mar 14, 12:30 PM")
	assert.Contains(t, body, "Priority: high")
	assert.Contains(t, body, "Mar 14, 12:30 PM")
}
