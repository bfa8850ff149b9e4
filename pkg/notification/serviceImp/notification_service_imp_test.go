package serviceImp

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mycolab/pkg/apperr"
	"mycolab/pkg/notification/repositoryImp"
	"mycolab/pkg/notification/service"
	"mycolab/pkg/testutil"
)

func TestNotificationService(t *testing.T) {
	s := NewNotificationService(repositoryImp.New(testutil.OpenDB(t))).(*notificationSvc)
	tick := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	s.now = func() time.Time { tick = tick.Add(time.Minute); return tick }

	first, err := s.Notify("u1", service.TopicSuggestion, "Approved", "your strain was added")
	require.NoError(t, err)
	_, err = s.Notify("u1", service.TopicContamination, "Check tub", "")
	require.NoError(t, err)
	_, err = s.Notify("u2", service.TopicSuggestion, "Other", "")
	require.NoError(t, err)

	t.Run("should reject an empty title", func(t *testing.T) {
		_, err := s.Notify("u1", "x", " ", "")
		assert.True(t, errors.Is(err, apperr.ErrValidation))
	})

	t.Run("should list newest first per user", func(t *testing.T) {
		list, err := s.List("u1", false)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Check tub", list[0].Title)
	})

	t.Run("should count and mark read", func(t *testing.T) {
		n, err := s.UnreadCount("u1")
		require.NoError(t, err)
		assert.EqualValues(t, 2, n)

		require.NoError(t, s.MarkRead("u1", first.NotificationID))
		require.NoError(t, s.MarkRead("u1", first.NotificationID))
		unread, err := s.List("u1", true)
		require.NoError(t, err)
		require.Len(t, unread, 1)
		assert.Equal(t, "Check tub", unread[0].Title)

		assert.True(t, errors.Is(s.MarkRead("u2", first.NotificationID), apperr.ErrNotFound))

		changed, err := s.MarkAllRead("u1")
		require.NoError(t, err)
		assert.EqualValues(t, 1, changed)
		n, err = s.UnreadCount("u1")
		require.NoError(t, err)
		assert.Zero(t, n)
	})

	t.Run("should delete only own notifications", func(t *testing.T) {
		assert.True(t, errors.Is(s.Delete("u2", first.NotificationID), apperr.ErrNotFound))
		assert.NoError(t, s.Delete("u1", first.NotificationID))
	})
}
