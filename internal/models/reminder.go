package models

import (
	"fmt"
	"time"
)

const (
	NotificationMethodEmail    = "email"
	NotificationMethodWhatsApp = "whatsapp"
	NotificationMethodPush     = "push"
)

const (
	ReminderTypeContentCreation = "content-creation"
	ReminderTypeCheckIn         = "check-in"
	ReminderTypeGoalReview      = "goal-review"
	ReminderTypeCustom          = "custom"
	ReminderTypeOneTime         = "one-time"
	ReminderTypeRecurring       = "recurring"
)

const (
	// DateLayout is the wire and storage format of Reminder.Date.
	DateLayout = "2006-01-02"
	// TimeLayout is the wire and storage format of Reminder.Time.
	TimeLayout = "15:04"
)

type Reminder struct {
	ID                 string
	UserID             string
	Title              string
	Date               string
	Time               string
	NotificationMethod string
	ReminderType       string
	Completed          bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// At combines the date and time columns into a single orderable
// instant. Date and time must never be compared independently.
func (r *Reminder) At() (time.Time, error) {
	return CombineDateTime(r.Date, r.Time)
}

func CombineDateTime(date, timeOfDay string) (time.Time, error) {
	t, err := time.Parse(DateLayout+" "+TimeLayout, date+" "+timeOfDay)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time %q %q: %w", date, timeOfDay, err)
	}
	return t, nil
}

func IsValidNotificationMethod(method string) bool {
	switch method {
	case NotificationMethodEmail,
		NotificationMethodWhatsApp,
		NotificationMethodPush:
		return true
	}
	return false
}

func IsValidReminderType(reminderType string) bool {
	switch reminderType {
	case ReminderTypeContentCreation,
		ReminderTypeCheckIn,
		ReminderTypeGoalReview,
		ReminderTypeCustom,
		ReminderTypeOneTime,
		ReminderTypeRecurring:
		return true
	}
	return false
}
