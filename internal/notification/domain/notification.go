package domain

import "time"

// NotificationType categorizes a notification for the UI
type NotificationType string

const (
	TypeInfo    NotificationType = "info"
	TypeWarning NotificationType = "warning"
)

// Notification is an in-app message stored at users/{uid}/notifications/{id}.
// Documents are append-only from the backend's point of view; the UI later
// flips the read flag.
type Notification struct {
	ID      string           `firestore:"id" json:"id"`
	Title   string           `firestore:"title" json:"title"`
	Message string           `firestore:"message" json:"message"`
	Type    NotificationType `firestore:"type" json:"type"`
	Read    bool             `firestore:"read" json:"read"`

	// CreatedAt is assigned by the server on write.
	CreatedAt time.Time `firestore:"createdAt,serverTimestamp" json:"created_at"`
}
