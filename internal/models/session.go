package models

import "time"

// Session is a fingerprinted refresh session. One user holds at most
// one live session; a new login replaces any previous ones.
type Session struct {
	ID           string
	UserID       string
	Fingerprint  string
	RefreshToken string
	ExpiresAt    time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
