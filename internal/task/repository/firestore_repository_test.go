package repository

import (
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelativePath(t *testing.T) {
	ref := &firestore.DocumentRef{
		Path: "projects/my-task-app/databases/(default)/documents/users/u1/boards/b1/tasks/t1",
	}
	assert.Equal(t, "users/u1/boards/b1/tasks/t1", RelativePath(ref))

	// Already-relative paths pass through.
	ref = &firestore.DocumentRef{Path: "users/u1/boards/b1/tasks/t1"}
	assert.Equal(t, "users/u1/boards/b1/tasks/t1", RelativePath(ref))
}

func TestAsTimeCoercion(t *testing.T) {
	want := time.Date(2026, 3, 14, 12, 30, 0, 0, time.UTC)

	got, err := asTime(want)
	require.NoError(t, err)
	assert.True(t, got.Equal(want))

	got, err = asTime("2026-03-14T12:30:00Z")
	require.NoError(t, err)
	assert.True(t, got.Equal(want))

	// datetime-local strings from the web UI carry no zone or seconds.
	got, err = asTime("2026-03-14T12:30")
	require.NoError(t, err)
	assert.Equal(t, 12, got.Hour())
	assert.Equal(t, 30, got.Minute())

	_, err = asTime("next tuesday")
	assert.Error(t, err)

	_, err = asTime(12345)
	assert.Error(t, err)
}
