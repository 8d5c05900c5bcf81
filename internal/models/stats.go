package models

import "time"

type UserStats struct {
	ID                string
	UserID            string
	TotalCheckIns     int
	CurrentStreak     int
	LastCheckIn       *time.Time
	ProfileCompletion int
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
