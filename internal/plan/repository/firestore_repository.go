package repository

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"mytask-backend/internal/plan/domain"
)

// firestorePlanRepository implements PlanRepository on Cloud Firestore
type firestorePlanRepository struct {
	client *firestore.Client
}

// NewFirestorePlanRepository creates a new Firestore-based PlanRepository
func NewFirestorePlanRepository(client *firestore.Client) PlanRepository {
	return &firestorePlanRepository{client: client}
}

func (r *firestorePlanRepository) plansRef(userID string) *firestore.CollectionRef {
	return r.client.Collection("users").Doc(userID).Collection("plans")
}

func (r *firestorePlanRepository) Create(ctx context.Context, userID string, plan *domain.Plan) error {
	if plan.ID == "" {
		plan.ID = uuid.New().String()
	}
	plan.CreatedAt = time.Now()
	plan.UpdatedAt = time.Now()
	_, err := r.plansRef(userID).Doc(plan.ID).Create(ctx, plan)
	if err != nil {
		return fmt.Errorf("failed to create plan: %w", err)
	}
	return nil
}

func (r *firestorePlanRepository) FindByUser(ctx context.Context, userID string) ([]*domain.Plan, error) {
	iter := r.plansRef(userID).OrderBy("date", firestore.Desc).Documents(ctx)
	defer iter.Stop()

	var plans []*domain.Plan
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var plan domain.Plan
		if err := doc.DataTo(&plan); err != nil {
			return nil, err
		}
		if plan.ID == "" {
			plan.ID = doc.Ref.ID
		}
		plans = append(plans, &plan)
	}
	return plans, nil
}

func (r *firestorePlanRepository) Update(ctx context.Context, userID string, plan *domain.Plan) error {
	plan.UpdatedAt = time.Now()
	_, err := r.plansRef(userID).Doc(plan.ID).Set(ctx, plan)
	return err
}

func (r *firestorePlanRepository) Delete(ctx context.Context, userID, planID string) error {
	_, err := r.plansRef(userID).Doc(planID).Delete(ctx)
	return err
}
