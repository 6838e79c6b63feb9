package repository

import (
	"context"

	"mytask-backend/internal/notification/domain"
)

// NotificationRepository defines the interface for notification data access
type NotificationRepository interface {
	// Create appends a notification to the user's notifications subcollection
	Create(ctx context.Context, userID string, notification *domain.Notification) error

	// FindByUser returns a user's notifications, newest first
	FindByUser(ctx context.Context, userID string) ([]*domain.Notification, error)

	// MarkRead sets the read flag on a notification
	MarkRead(ctx context.Context, userID, notificationID string) error

	// Delete removes a notification
	Delete(ctx context.Context, userID, notificationID string) error
}
