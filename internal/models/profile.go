package models

import "time"

type Profile struct {
	ID             string
	FirstName      string
	LastName       string
	Email          string
	Age            string
	Gender         string
	Job            string
	WhatsAppNumber string
	AvatarURL      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type CoachingPreferences struct {
	ID              string
	UserID          string
	CoachingStyle   string
	MotivationStyle string
	PersonalityType string
	WorkSchedule    string
	Hobbies         []string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type NotificationPreferences struct {
	ID                  string
	UserID              string
	NotificationMethods []string
	ReminderFrequency   string
	PreferredTime       string
	CreatedAt           time.Time
	UpdatedAt           time.Time
}
