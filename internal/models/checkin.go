package models

import "time"

const (
	MessageSenderUser  = "user"
	MessageSenderCoach = "coach"
)

type CheckIn struct {
	ID        string
	UserID    string
	CreatedAt time.Time
}

type Message struct {
	ID        string
	CheckInID string
	Content   string
	Sender    string
	CreatedAt time.Time
}
