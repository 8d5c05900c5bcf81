package models

import "time"

type Goal struct {
	ID          string
	UserID      string
	Title       string
	Description string
	Progress    int
	Completed   bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
