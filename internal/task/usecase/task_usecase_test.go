package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mytask-backend/internal/task/domain"
)

type fakeTaskRepo struct {
	byID     map[string]*domain.Task
	archived map[string]*domain.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{byID: map[string]*domain.Task{}, archived: map[string]*domain.Task{}}
}

func (f *fakeTaskRepo) Create(ctx context.Context, userID, boardID string, task *domain.Task) error {
	f.byID[task.ID] = task
	return nil
}

func (f *fakeTaskRepo) FindByID(ctx context.Context, userID, boardID, taskID string) (*domain.Task, error) {
	return f.byID[taskID], nil
}

func (f *fakeTaskRepo) FindByBoard(ctx context.Context, userID, boardID string) ([]*domain.Task, error) {
	var out []*domain.Task
	for _, t := range f.byID {
		if t.BoardID == boardID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) Update(ctx context.Context, userID, boardID string, task *domain.Task) error {
	f.byID[task.ID] = task
	return nil
}

func (f *fakeTaskRepo) Delete(ctx context.Context, userID, boardID, taskID string) error {
	delete(f.byID, taskID)
	return nil
}

func (f *fakeTaskRepo) Archive(ctx context.Context, userID, boardID, taskID string) error {
	f.archived[taskID] = f.byID[taskID]
	delete(f.byID, taskID)
	return nil
}

func (f *fakeTaskRepo) FindArchived(ctx context.Context, userID, boardID string) ([]*domain.Task, error) {
	var out []*domain.Task
	for _, t := range f.archived {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeTaskRepo) FindDueBetween(ctx context.Context, from, to time.Time) ([]*domain.Task, error) {
	return nil, nil
}

func (f *fakeTaskRepo) ListAll(ctx context.Context) ([]*domain.Task, error) { return nil, nil }

func (f *fakeTaskRepo) MarkReminderSent(ctx context.Context, path string) error { return nil }

func (f *fakeTaskRepo) CountByStatus(ctx context.Context, userID string) (map[domain.TaskStatus]int, error) {
	counts := map[domain.TaskStatus]int{}
	for _, t := range f.byID {
		counts[t.Status]++
	}
	return counts, nil
}

func TestCreateTaskStampsOwnerEmail(t *testing.T) {
	repo := newFakeTaskRepo()
	u := NewTaskUsecase(repo)

	due := time.Now().Add(2 * time.Hour).Format(time.RFC3339)
	task, err := u.CreateTask(context.Background(), "u1", "u1@example.com", "b1", "Ship release", "", &due, "high")
	require.NoError(t, err)

	assert.Equal(t, "u1@example.com", task.UserEmail)
	assert.Equal(t, domain.TaskStatusPending, task.Status)
	assert.Equal(t, domain.PriorityHigh, task.Priority)
	assert.False(t, task.EmailReminderSent)
	require.NotNil(t, task.DueDate)
}

func TestUpdateDueDateDoesNotRearmReminder(t *testing.T) {
	repo := newFakeTaskRepo()
	u := NewTaskUsecase(repo)

	task, err := u.CreateTask(context.Background(), "u1", "u1@example.com", "b1", "Ship release", "", nil, "")
	require.NoError(t, err)

	// Simulate a dispatched reminder, then move the due date.
	task.EmailReminderSent = true
	repo.byID[task.ID] = task

	newDue := time.Now().Add(48 * time.Hour).Format(time.RFC3339)
	updated, err := u.UpdateTask(context.Background(), "u1", "b1", task.ID, TaskUpdateRequest{DueDate: &newDue})
	require.NoError(t, err)

	assert.True(t, updated.EmailReminderSent, "moving the due date must not clear the reminded flag")
}

func TestUpdateTaskStatusRejectsUnknownStatus(t *testing.T) {
	repo := newFakeTaskRepo()
	u := NewTaskUsecase(repo)

	task, err := u.CreateTask(context.Background(), "u1", "u1@example.com", "b1", "Ship release", "", nil, "")
	require.NoError(t, err)

	_, err = u.UpdateTaskStatus(context.Background(), "u1", "b1", task.ID, domain.TaskStatus("archived"))
	assert.ErrorIs(t, err, ErrInvalidStatus)

	updated, err := u.UpdateTaskStatus(context.Background(), "u1", "b1", task.ID, domain.TaskStatusDone)
	require.NoError(t, err)
	assert.Equal(t, domain.TaskStatusDone, updated.Status)
}

func TestGetTaskByIDNotFound(t *testing.T) {
	u := NewTaskUsecase(newFakeTaskRepo())

	_, err := u.GetTaskByID(context.Background(), "u1", "b1", "missing")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestArchiveRemovesTaskFromBoard(t *testing.T) {
	repo := newFakeTaskRepo()
	u := NewTaskUsecase(repo)

	task, err := u.CreateTask(context.Background(), "u1", "u1@example.com", "b1", "Old task", "", nil, "")
	require.NoError(t, err)

	require.NoError(t, u.ArchiveTask(context.Background(), "u1", "b1", task.ID))

	live, err := u.GetBoardTasks(context.Background(), "u1", "b1")
	require.NoError(t, err)
	assert.Empty(t, live)

	archived, err := u.GetArchivedTasks(context.Background(), "u1", "b1")
	require.NoError(t, err)
	assert.Len(t, archived, 1)
}
