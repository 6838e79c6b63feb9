package repository

import (
	"context"

	"mytask-backend/internal/board/domain"
)

// BoardRepository defines the interface for board data access
type BoardRepository interface {
	Create(ctx context.Context, userID string, board *domain.Board) error
	FindByID(ctx context.Context, userID, boardID string) (*domain.Board, error)
	FindByUser(ctx context.Context, userID string) ([]*domain.Board, error)
	Update(ctx context.Context, userID string, board *domain.Board) error
	Delete(ctx context.Context, userID, boardID string) error
}
