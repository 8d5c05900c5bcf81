package services

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/dkoroteev/go-coachly/internal/models"
)

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrUserAlreadyExists    = errors.New("user already exists")
	ErrUserPasswordMismatch = errors.New("user password mismatch")
	ErrSessionNotFound      = errors.New("session not found")
	ErrSessionExpired       = errors.New("session expired")

	ErrReminderNotFound          = errors.New("reminder not found")
	ErrReminderTitleRequired     = errors.New("reminder title is required")
	ErrReminderDateTimeInvalid   = errors.New("reminder date or time is invalid")
	ErrInvalidNotificationMethod = errors.New("invalid notification method")
	ErrInvalidReminderType       = errors.New("invalid reminder type")

	ErrGoalNotFound        = errors.New("goal not found")
	ErrGoalTitleRequired   = errors.New("goal title is required")
	ErrGoalProgressInvalid = errors.New("goal progress must be between 0 and 100")

	ErrCheckInNotFound       = errors.New("check-in not found")
	ErrMessageContentMissing = errors.New("message content is required")

	ErrProfileNotFound = errors.New("profile not found")
)

type AuthService interface {
	// Login authenticates the user by email and password.
	//
	// It deletes all sessions with the same user ID and creates
	// a new session and generates a new JWT token pair.
	//
	// It returns ErrUserNotFound if the user with the given
	// email doesn't exist or ErrUserPasswordMismatch if the
	// given password doesn't match the user's password.
	Login(ctx context.Context, params LoginParams) (*LoginResult, error)

	// Refresh updates the session with the given refresh token.
	//
	// It returns ErrSessionNotFound if the session with the
	// given refresh token doesn't exist or ErrSessionExpired
	// if the session is expired.
	Refresh(ctx context.Context, params RefreshParams) (*LoginResult, error)

	// Register a user with the given email and password.
	//
	// It hashes the password, generates a unique ID, seeds an empty
	// profile and stats row, and creates a session with the given
	// fingerprint and a fresh JWT token pair.
	//
	// It returns ErrUserAlreadyExists if the user
	// with the given email already exists.
	Register(ctx context.Context, params LoginParams) (*LoginResult, error)

	// Logout invalidates all sessions with the given user ID.
	Logout(ctx context.Context, userID string) error

	// ParseJWTToken parses the given JWT token and returns the registered
	// claims or jwt.ErrTokenExpired if the token is expired.
	ParseJWTToken(token string) (*jwt.RegisteredClaims, error)
}

type SessionService interface {
	GetSessionByID(ctx context.Context, sessionID string) (*models.Session, error)

	// DeleteExpiredSessions removes sessions whose expiry is in the
	// past and reports how many were purged.
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}

// ReminderService owns a user's reminder list. Every method operates
// only on rows belonging to the given user; a reminder id that exists
// but belongs to someone else behaves as if it did not exist.
type ReminderService interface {
	// ListReminders returns the user's reminders ordered by the
	// combined (date, time) instant ascending. An empty list is not
	// an error.
	ListReminders(ctx context.Context, userID string) ([]models.Reminder, error)

	// CreateReminder validates and persists a new reminder with
	// completed=false. It returns ErrReminderTitleRequired,
	// ErrReminderDateTimeInvalid, ErrInvalidNotificationMethod or
	// ErrInvalidReminderType when the input fails validation.
	CreateReminder(ctx context.Context, params CreateReminderParams) (*models.Reminder, error)

	// UpdateReminder applies the non-nil fields of params to the
	// reminder. It returns ErrReminderNotFound if the id does not
	// exist or belongs to another user.
	UpdateReminder(ctx context.Context, params UpdateReminderParams) (*models.Reminder, error)

	// DeleteReminder removes exactly one reminder. Deleting an absent
	// id reports ErrReminderNotFound, never a silent no-op.
	DeleteReminder(ctx context.Context, userID, reminderID string) error
}

type GoalService interface {
	ListGoals(ctx context.Context, userID string) ([]models.Goal, error)
	CreateGoal(ctx context.Context, params CreateGoalParams) (*models.Goal, error)
	UpdateGoal(ctx context.Context, params UpdateGoalParams) (*models.Goal, error)
	DeleteGoal(ctx context.Context, userID, goalID string) error
}

type CheckInService interface {
	// ListCheckIns returns the user's check-ins, newest first.
	ListCheckIns(ctx context.Context, userID string) ([]models.CheckIn, error)

	// CreateCheckIn opens a new check-in thread seeded with a coach
	// greeting and bumps the user's stats counters in the same
	// transaction.
	CreateCheckIn(ctx context.Context, userID string) (*models.CheckIn, []models.Message, error)

	// GetMessages returns the thread's messages oldest first. It
	// returns ErrCheckInNotFound if the check-in does not exist or
	// belongs to another user.
	GetMessages(ctx context.Context, userID, checkInID string) ([]models.Message, error)

	// AddMessage stores the user's message and a simulated coach
	// reply, returning both in order.
	AddMessage(ctx context.Context, userID, checkInID, content string) ([]models.Message, error)
}

type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (*models.Profile, error)
	UpdateProfile(ctx context.Context, params UpdateProfileParams) (*models.Profile, error)

	GetCoachingPreferences(ctx context.Context, userID string) (*models.CoachingPreferences, error)
	UpsertCoachingPreferences(ctx context.Context, params CoachingPreferencesParams) (*models.CoachingPreferences, error)

	GetNotificationPreferences(ctx context.Context, userID string) (*models.NotificationPreferences, error)
	UpsertNotificationPreferences(ctx context.Context, params NotificationPreferencesParams) (*models.NotificationPreferences, error)

	GetStats(ctx context.Context, userID string) (*models.UserStats, error)
}

type LoginParams struct {
	Email       string
	Password    string
	Fingerprint string
}

type LoginResult struct {
	UserID                string
	SessionID             string
	AccessToken           string
	AccessTokenExpiresAt  time.Time
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
}

type RefreshParams struct {
	RefreshToken string
	Fingerprint  string
}

type CreateReminderParams struct {
	UserID             string
	Title              string
	Date               string
	Time               string
	NotificationMethod string
	ReminderType       string
}

type UpdateReminderParams struct {
	ID                 string
	UserID             string
	Title              *string
	Date               *string
	Time               *string
	NotificationMethod *string
	ReminderType       *string
	Completed          *bool
}

type CreateGoalParams struct {
	UserID      string
	Title       string
	Description string
}

type UpdateGoalParams struct {
	ID          string
	UserID      string
	Title       *string
	Description *string
	Progress    *int
	Completed   *bool
}

type UpdateProfileParams struct {
	UserID         string
	FirstName      *string
	LastName       *string
	Age            *string
	Gender         *string
	Job            *string
	WhatsAppNumber *string
	AvatarURL      *string
}

type CoachingPreferencesParams struct {
	UserID          string
	CoachingStyle   string
	MotivationStyle string
	PersonalityType string
	WorkSchedule    string
	Hobbies         []string
}

type NotificationPreferencesParams struct {
	UserID              string
	NotificationMethods []string
	ReminderFrequency   string
	PreferredTime       string
}
