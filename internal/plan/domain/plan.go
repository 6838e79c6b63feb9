package domain

import "time"

// PlanItem is a single entry on a day plan
type PlanItem struct {
	Time  string `firestore:"time" json:"time"`
	Label string `firestore:"label" json:"label"`
	Done  bool   `firestore:"done" json:"done"`
}

// Plan is a per-day planner document stored at users/{uid}/plans/{id}.
// The reminder engine never touches plans; they exist for the planner screen.
type Plan struct {
	ID        string     `firestore:"id" json:"id"`
	Date      string     `firestore:"date" json:"date"` // YYYY-MM-DD
	Items     []PlanItem `firestore:"items" json:"items"`
	CreatedAt time.Time  `firestore:"createdAt" json:"created_at"`
	UpdatedAt time.Time  `firestore:"updatedAt" json:"updated_at"`
}
