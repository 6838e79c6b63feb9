package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"mytask-backend/internal/task/domain"
	"mytask-backend/internal/task/repository"
)

var (
	ErrTaskNotFound  = errors.New("task not found")
	ErrInvalidStatus = errors.New("invalid task status")
)

// taskUsecase implements TaskUsecase
type taskUsecase struct {
	taskRepo repository.TaskRepository
}

// NewTaskUsecase creates a new instance of taskUsecase
func NewTaskUsecase(taskRepo repository.TaskRepository) TaskUsecase {
	return &taskUsecase{taskRepo: taskRepo}
}

func (u *taskUsecase) CreateTask(ctx context.Context, userID, userEmail, boardID, title, description string, dueDate *string, priority string) (*domain.Task, error) {
	// UserEmail is captured here, once, from the verified token. Reminders
	// go to this address even if the account email later changes.
	task := &domain.Task{
		ID:          uuid.New().String(),
		BoardID:     boardID,
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      domain.TaskStatusPending,
		Priority:    parsePriority(priority),
		UserEmail:   userEmail,
	}

	if dueDate != nil && *dueDate != "" {
		if t, err := time.Parse(time.RFC3339, *dueDate); err == nil {
			task.DueDate = &t
		}
	}

	if err := u.taskRepo.Create(ctx, userID, boardID, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) GetTaskByID(ctx context.Context, userID, boardID, taskID string) (*domain.Task, error) {
	task, err := u.taskRepo.FindByID(ctx, userID, boardID, taskID)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func (u *taskUsecase) GetBoardTasks(ctx context.Context, userID, boardID string) ([]*domain.Task, error) {
	return u.taskRepo.FindByBoard(ctx, userID, boardID)
}

func (u *taskUsecase) UpdateTask(ctx context.Context, userID, boardID, taskID string, updates TaskUpdateRequest) (*domain.Task, error) {
	task, err := u.GetTaskByID(ctx, userID, boardID, taskID)
	if err != nil {
		return nil, err
	}

	if updates.Title != nil {
		task.Title = *updates.Title
	}
	if updates.Description != nil {
		task.Description = *updates.Description
	}
	if updates.Priority != nil {
		task.Priority = parsePriority(*updates.Priority)
	}
	if updates.Status != nil {
		status, err := parseStatus(*updates.Status)
		if err != nil {
			return nil, err
		}
		task.Status = status
	}
	if updates.DueDate != nil {
		// Moving the due date does not clear emailReminderSent; a task is
		// reminded at most once in its lifetime.
		if *updates.DueDate == "" {
			task.DueDate = nil
		} else if t, err := time.Parse(time.RFC3339, *updates.DueDate); err == nil {
			task.DueDate = &t
		}
	}

	if err := u.taskRepo.Update(ctx, userID, boardID, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) UpdateTaskStatus(ctx context.Context, userID, boardID, taskID string, status domain.TaskStatus) (*domain.Task, error) {
	if _, err := parseStatus(string(status)); err != nil {
		return nil, err
	}
	task, err := u.GetTaskByID(ctx, userID, boardID, taskID)
	if err != nil {
		return nil, err
	}
	task.Status = status
	if err := u.taskRepo.Update(ctx, userID, boardID, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (u *taskUsecase) DeleteTask(ctx context.Context, userID, boardID, taskID string) error {
	return u.taskRepo.Delete(ctx, userID, boardID, taskID)
}

func (u *taskUsecase) ArchiveTask(ctx context.Context, userID, boardID, taskID string) error {
	return u.taskRepo.Archive(ctx, userID, boardID, taskID)
}

func (u *taskUsecase) GetArchivedTasks(ctx context.Context, userID, boardID string) ([]*domain.Task, error) {
	return u.taskRepo.FindArchived(ctx, userID, boardID)
}

func (u *taskUsecase) CountByStatus(ctx context.Context, userID string) (map[domain.TaskStatus]int, error) {
	return u.taskRepo.CountByStatus(ctx, userID)
}

func parsePriority(p string) domain.Priority {
	switch domain.Priority(p) {
	case domain.PriorityHigh, domain.PriorityMedium, domain.PriorityLow:
		return domain.Priority(p)
	case "":
		return ""
	default:
		return domain.PriorityMedium
	}
}

func parseStatus(s string) (domain.TaskStatus, error) {
	switch domain.TaskStatus(s) {
	case domain.TaskStatusPending, domain.TaskStatusInProgress, domain.TaskStatusDone:
		return domain.TaskStatus(s), nil
	default:
		return "", ErrInvalidStatus
	}
}
