package reminder

import "time"

// inWindow reports whether due falls inside the reminder window (now, windowEnd].
// The lower bound is strict: a task already past due is not selected.
func inWindow(now, windowEnd time.Time, due *time.Time) bool {
	if due == nil {
		return false
	}
	return due.After(now) && !due.After(windowEnd)
}

// formatDueTime renders a due date the way the app shows it: short month and
// day with a 12-hour clock, in the configured location.
func formatDueTime(t time.Time, loc *time.Location) string {
	if loc != nil {
		t = t.In(loc)
	}
	return t.Format("Jan 2, 3:04 PM")
}
