package domain

import "time"

// Board is a named task container stored at users/{uid}/boards/{boardId}.
// Tasks, archived tasks and documents hang off it as subcollections.
type Board struct {
	ID        string    `firestore:"id" json:"id"`
	Name      string    `firestore:"name" json:"name"`
	CreatedAt time.Time `firestore:"createdAt" json:"created_at"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updated_at"`
}
