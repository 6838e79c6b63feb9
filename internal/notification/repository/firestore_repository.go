package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"google.golang.org/api/iterator"

	"mytask-backend/internal/notification/domain"
)

// firestoreNotificationRepository implements NotificationRepository on Cloud Firestore
type firestoreNotificationRepository struct {
	client *firestore.Client
}

// NewFirestoreNotificationRepository creates a new Firestore-based NotificationRepository
func NewFirestoreNotificationRepository(client *firestore.Client) NotificationRepository {
	return &firestoreNotificationRepository{client: client}
}

func (r *firestoreNotificationRepository) notificationsRef(userID string) *firestore.CollectionRef {
	return r.client.Collection("users").Doc(userID).Collection("notifications")
}

func (r *firestoreNotificationRepository) Create(ctx context.Context, userID string, notification *domain.Notification) error {
	if notification.ID == "" {
		notification.ID = uuid.New().String()
	}
	_, err := r.notificationsRef(userID).Doc(notification.ID).Create(ctx, notification)
	if err != nil {
		return fmt.Errorf("failed to create notification for user %s: %w", userID, err)
	}
	return nil
}

func (r *firestoreNotificationRepository) FindByUser(ctx context.Context, userID string) ([]*domain.Notification, error) {
	iter := r.notificationsRef(userID).
		OrderBy("createdAt", firestore.Desc).
		Documents(ctx)
	defer iter.Stop()

	var notifications []*domain.Notification
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, err
		}
		var n domain.Notification
		if err := doc.DataTo(&n); err != nil {
			return nil, err
		}
		if n.ID == "" {
			n.ID = doc.Ref.ID
		}
		notifications = append(notifications, &n)
	}
	return notifications, nil
}

func (r *firestoreNotificationRepository) MarkRead(ctx context.Context, userID, notificationID string) error {
	_, err := r.notificationsRef(userID).Doc(notificationID).Update(ctx, []firestore.Update{
		{Path: "read", Value: true},
	})
	return err
}

func (r *firestoreNotificationRepository) Delete(ctx context.Context, userID, notificationID string) error {
	_, err := r.notificationsRef(userID).Doc(notificationID).Delete(ctx)
	return err
}
