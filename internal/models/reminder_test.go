package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCombineDateTime(t *testing.T) {
	t.Parallel()

	at, err := CombineDateTime("2024-01-15", "09:00")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.January, 15, 9, 0, 0, 0, time.UTC), at)

	_, err = CombineDateTime("15-01-2024", "09:00")
	assert.Error(t, err)

	_, err = CombineDateTime("2024-01-15", "9am")
	assert.Error(t, err)
}

func TestIsValidNotificationMethod(t *testing.T) {
	t.Parallel()

	for _, method := range []string{
		NotificationMethodEmail,
		NotificationMethodWhatsApp,
		NotificationMethodPush,
	} {
		assert.True(t, IsValidNotificationMethod(method), method)
	}

	for _, method := range []string{"", "sms", "EMAIL", "pigeon"} {
		assert.False(t, IsValidNotificationMethod(method), method)
	}
}

func TestIsValidReminderType(t *testing.T) {
	t.Parallel()

	for _, reminderType := range []string{
		ReminderTypeContentCreation,
		ReminderTypeCheckIn,
		ReminderTypeGoalReview,
		ReminderTypeCustom,
		ReminderTypeOneTime,
		ReminderTypeRecurring,
	} {
		assert.True(t, IsValidReminderType(reminderType), reminderType)
	}

	for _, reminderType := range []string{"", "checkin", "Check-In", "weekly"} {
		assert.False(t, IsValidReminderType(reminderType), reminderType)
	}
}
