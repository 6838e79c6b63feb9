package repository

import (
	"context"
	"time"

	"mytask-backend/internal/task/domain"
)

// TaskRepository defines the interface for task data access
type TaskRepository interface {
	// Create creates a new task under the given user's board
	Create(ctx context.Context, userID, boardID string, task *domain.Task) error

	// FindByID finds a task by its ID within a board
	FindByID(ctx context.Context, userID, boardID, taskID string) (*domain.Task, error)

	// FindByBoard returns all live tasks on a board
	FindByBoard(ctx context.Context, userID, boardID string) ([]*domain.Task, error)

	// Update overwrites an existing task
	Update(ctx context.Context, userID, boardID string, task *domain.Task) error

	// Delete deletes a task by ID
	Delete(ctx context.Context, userID, boardID, taskID string) error

	// Archive moves a task from the live tasks subcollection to the board's
	// archived subcollection, removing it from reminder scans
	Archive(ctx context.Context, userID, boardID, taskID string) error

	// FindArchived returns a board's archived tasks
	FindArchived(ctx context.Context, userID, boardID string) ([]*domain.Task, error)

	// FindDueBetween returns every task, across all users and boards, whose
	// due date falls in (from, to]. Single collection-group range query.
	FindDueBetween(ctx context.Context, from, to time.Time) ([]*domain.Task, error)

	// ListAll returns every live task in the store, across all users and boards
	ListAll(ctx context.Context) ([]*domain.Task, error)

	// MarkReminderSent sets emailReminderSent=true on the task at the given
	// storage path. The flag is monotonic; it is never cleared.
	MarkReminderSent(ctx context.Context, path string) error

	// CountByStatus returns the number of a user's tasks per status
	CountByStatus(ctx context.Context, userID string) (map[domain.TaskStatus]int, error)
}
