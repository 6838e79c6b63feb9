package repository

import (
	"context"

	"mytask-backend/internal/plan/domain"
)

// PlanRepository defines the interface for planner data access
type PlanRepository interface {
	Create(ctx context.Context, userID string, plan *domain.Plan) error
	FindByUser(ctx context.Context, userID string) ([]*domain.Plan, error)
	Update(ctx context.Context, userID string, plan *domain.Plan) error
	Delete(ctx context.Context, userID, planID string) error
}
