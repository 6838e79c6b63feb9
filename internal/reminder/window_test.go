package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestInWindow(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	end := now.Add(60 * time.Minute)

	at := func(d time.Duration) *time.Time {
		v := now.Add(d)
		return &v
	}

	tests := []struct {
		name string
		due  *time.Time
		want bool
	}{
		{"30min ahead", at(30 * time.Minute), true},
		{"90min ahead", at(90 * time.Minute), false},
		{"5min past", at(-5 * time.Minute), false},
		{"exactly now", at(0), false},
		{"exactly window end", at(60 * time.Minute), true},
		{"one ns past window end", at(60*time.Minute + time.Nanosecond), false},
		{"no due date", nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, inWindow(now, end, tt.due))
		})
	}
}

func TestFormatDueTime(t *testing.T) {
	manila, err := time.LoadLocation("Asia/Manila")
	if err != nil {
		t.Skip("tzdata not available")
	}

	// 07:30 UTC is 15:30 in Manila (UTC+8).
	due := time.Date(2026, 3, 14, 7, 30, 0, 0, time.UTC)
	assert.Equal(t, "Mar 14, 3:30 PM", formatDueTime(due, manila))
	assert.Equal(t, "Mar 14, 7:30 AM", formatDueTime(due, time.UTC))
	assert.Equal(t, "Mar 14, 7:30 AM", formatDueTime(due, nil))
}
