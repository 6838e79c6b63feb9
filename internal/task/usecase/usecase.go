package usecase

import (
	"context"

	"mytask-backend/internal/task/domain"
)

// TaskUpdateRequest carries the mutable task fields; nil means "leave as is".
// The reminded flag is deliberately absent: it belongs to the reminder engine
// and is never re-armed through the API, even when the due date moves.
type TaskUpdateRequest struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Priority    *string `json:"priority"`
	Status      *string `json:"status"`
	DueDate     *string `json:"due_date"`
}

// TaskUsecase defines the business operations on tasks
type TaskUsecase interface {
	CreateTask(ctx context.Context, userID, userEmail, boardID, title, description string, dueDate *string, priority string) (*domain.Task, error)
	GetTaskByID(ctx context.Context, userID, boardID, taskID string) (*domain.Task, error)
	GetBoardTasks(ctx context.Context, userID, boardID string) ([]*domain.Task, error)
	UpdateTask(ctx context.Context, userID, boardID, taskID string, updates TaskUpdateRequest) (*domain.Task, error)
	UpdateTaskStatus(ctx context.Context, userID, boardID, taskID string, status domain.TaskStatus) (*domain.Task, error)
	DeleteTask(ctx context.Context, userID, boardID, taskID string) error
	ArchiveTask(ctx context.Context, userID, boardID, taskID string) error
	GetArchivedTasks(ctx context.Context, userID, boardID string) ([]*domain.Task, error)
	CountByStatus(ctx context.Context, userID string) (map[domain.TaskStatus]int, error)
}
