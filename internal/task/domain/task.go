package domain

import (
	"strings"
	"time"
)

// Priority represents task priority level
type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// TaskStatus represents the current state of a task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusDone       TaskStatus = "done"
)

// Task is a board item stored at users/{uid}/boards/{boardId}/tasks/{taskId}.
//
// UserEmail is a denormalized copy of the owner's address captured when the
// task is created; reminders never look the address up live. EmailReminderSent
// is written only by the reminder engine and only ever flips false to true, so
// a task receives at most one reminder in its lifetime even if the due date
// later changes.
type Task struct {
	ID          string     `firestore:"id" json:"id"`
	BoardID     string     `firestore:"boardId" json:"board_id"`
	UserID      string     `firestore:"userId" json:"user_id"`
	Title       string     `firestore:"title" json:"title"`
	Description string     `firestore:"description,omitempty" json:"description,omitempty"`
	Status      TaskStatus `firestore:"status" json:"status"`
	Priority    Priority   `firestore:"priority,omitempty" json:"priority,omitempty"`
	DueDate     *time.Time `firestore:"dueDate,omitempty" json:"due_date,omitempty"`
	UserEmail   string     `firestore:"userEmail,omitempty" json:"user_email,omitempty"`

	EmailReminderSent bool `firestore:"emailReminderSent" json:"email_reminder_sent"`

	CreatedAt time.Time `firestore:"createdAt" json:"created_at"`
	UpdatedAt time.Time `firestore:"updatedAt" json:"updated_at"`

	// Path is the document's storage path relative to the database root,
	// e.g. "users/u1/boards/b1/tasks/t1". Populated on reads, never stored.
	Path string `firestore:"-" json:"path,omitempty"`
}

// OwnerID returns the user id encoded in the task's storage path (the segment
// after the top-level "users" collection), or the UserID field when the path
// is not set.
func (t *Task) OwnerID() string {
	parts := strings.Split(t.Path, "/")
	if len(parts) >= 2 && parts[0] == "users" && parts[1] != "" {
		return parts[1]
	}
	return t.UserID
}
