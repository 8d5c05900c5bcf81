package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/dkoroteev/go-coachly/internal/models"
)

type reminderServiceImpl struct {
	logger       zerolog.Logger
	pgPool       *pgxpool.Pool
	queryTimeout time.Duration
}

func NewReminderService(
	logger zerolog.Logger,
	pgPool *pgxpool.Pool,
	queryTimeout time.Duration,
) ReminderService {
	return &reminderServiceImpl{
		logger:       logger,
		pgPool:       pgPool,
		queryTimeout: queryTimeout,
	}
}

func (s *reminderServiceImpl) ListReminders(ctx context.Context, userID string) ([]models.Reminder, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	const selectRemindersByUserIDQuery = `
SELECT id,
       title,
       to_char(date, 'YYYY-MM-DD'),
       to_char(time, 'HH24:MI'),
       notification_method,
       reminder_type,
       completed,
       created_at,
       updated_at
FROM reminders
WHERE user_id = $1
ORDER BY date, time, created_at
`
	rows, err := s.pgPool.Query(
		ctx,
		selectRemindersByUserIDQuery,
		userID,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", userID).
			Msg("failed to select reminders by user id")
		return nil, err
	}
	defer rows.Close()

	var reminders []models.Reminder
	for rows.Next() {
		reminder := models.Reminder{UserID: userID}
		err = rows.Scan(
			&reminder.ID,
			&reminder.Title,
			&reminder.Date,
			&reminder.Time,
			&reminder.NotificationMethod,
			&reminder.ReminderType,
			&reminder.Completed,
			&reminder.CreatedAt,
			&reminder.UpdatedAt,
		)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to scan reminder")
			return nil, err
		}
		reminders = append(reminders, reminder)
	}

	err = rows.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, err
	}

	s.logger.Debug().
		Int("count", len(reminders)).
		Str("user_id", userID).
		Msg("selected reminders by user id")
	return reminders, nil
}

func (s *reminderServiceImpl) CreateReminder(ctx context.Context, params CreateReminderParams) (*models.Reminder, error) {
	err := validateCreateReminderParams(&params)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("user_id", params.UserID).
			Msg("rejected reminder")
		return nil, err
	}

	reminderUUID, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate reminder uuid")
		return nil, err
	}

	now := time.Now()
	reminder := &models.Reminder{
		ID:                 reminderUUID.String(),
		UserID:             params.UserID,
		Title:              params.Title,
		Date:               params.Date,
		Time:               params.Time,
		NotificationMethod: params.NotificationMethod,
		ReminderType:       params.ReminderType,
		Completed:          false,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	const insertReminderQuery = `
INSERT INTO reminders (id,
                       user_id,
                       title,
                       date,
                       time,
                       notification_method,
                       reminder_type,
                       completed,
                       created_at,
                       updated_at)
VALUES ($1, $2, $3, $4::date, $5::time, $6, $7, $8, $9, $10)
`
	_, err = s.pgPool.Exec(
		ctx,
		insertReminderQuery,
		reminder.ID,
		reminder.UserID,
		reminder.Title,
		reminder.Date,
		reminder.Time,
		reminder.NotificationMethod,
		reminder.ReminderType,
		reminder.Completed,
		reminder.CreatedAt,
		reminder.UpdatedAt,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", reminder.UserID).
			Msg("failed to insert reminder")
		return nil, err
	}

	s.logger.Info().
		Str("reminder_id", reminder.ID).
		Str("user_id", reminder.UserID).
		Msg("created reminder")
	return reminder, nil
}

func (s *reminderServiceImpl) UpdateReminder(ctx context.Context, params UpdateReminderParams) (*models.Reminder, error) {
	err := validateUpdateReminderParams(&params)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("reminder_id", params.ID).
			Msg("rejected reminder update")
		return nil, err
	}

	reminder := &models.Reminder{
		ID:        params.ID,
		UserID:    params.UserID,
		UpdatedAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	const updateReminderQuery = `
UPDATE reminders
SET title = COALESCE($1, title),
    date = COALESCE($2::date, date),
    time = COALESCE($3::time, time),
    notification_method = COALESCE($4, notification_method),
    reminder_type = COALESCE($5, reminder_type),
    completed = COALESCE($6, completed),
    updated_at = $7
WHERE id = $8 AND user_id = $9
RETURNING title,
          to_char(date, 'YYYY-MM-DD'),
          to_char(time, 'HH24:MI'),
          notification_method,
          reminder_type,
          completed,
          created_at
`
	err = s.pgPool.QueryRow(
		ctx,
		updateReminderQuery,
		params.Title,
		params.Date,
		params.Time,
		params.NotificationMethod,
		params.ReminderType,
		params.Completed,
		reminder.UpdatedAt,
		reminder.ID,
		reminder.UserID,
	).Scan(
		&reminder.Title,
		&reminder.Date,
		&reminder.Time,
		&reminder.NotificationMethod,
		&reminder.ReminderType,
		&reminder.Completed,
		&reminder.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn().
				Str("reminder_id", reminder.ID).
				Str("user_id", reminder.UserID).
				Msg("reminder not found")
			return nil, ErrReminderNotFound
		}

		s.logger.Error().
			Err(err).
			Str("reminder_id", reminder.ID).
			Msg("failed to update reminder")
		return nil, err
	}

	s.logger.Info().
		Str("reminder_id", reminder.ID).
		Str("user_id", reminder.UserID).
		Msg("updated reminder")
	return reminder, nil
}

func (s *reminderServiceImpl) DeleteReminder(ctx context.Context, userID, reminderID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	const deleteReminderQuery = `
DELETE FROM reminders
WHERE id = $1 AND user_id = $2
`
	tag, err := s.pgPool.Exec(
		ctx,
		deleteReminderQuery,
		reminderID,
		userID,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("reminder_id", reminderID).
			Msg("failed to delete reminder")
		return err
	}
	if tag.RowsAffected() == 0 {
		s.logger.Warn().
			Str("reminder_id", reminderID).
			Str("user_id", userID).
			Msg("reminder not found")
		return ErrReminderNotFound
	}

	s.logger.Info().
		Str("reminder_id", reminderID).
		Str("user_id", userID).
		Msg("deleted reminder")
	return nil
}

func validateCreateReminderParams(params *CreateReminderParams) error {
	params.Title = strings.TrimSpace(params.Title)
	if params.Title == "" {
		return ErrReminderTitleRequired
	}
	if _, err := models.CombineDateTime(params.Date, params.Time); err != nil {
		return ErrReminderDateTimeInvalid
	}
	if !models.IsValidNotificationMethod(params.NotificationMethod) {
		return ErrInvalidNotificationMethod
	}
	if !models.IsValidReminderType(params.ReminderType) {
		return ErrInvalidReminderType
	}
	return nil
}

func validateUpdateReminderParams(params *UpdateReminderParams) error {
	if params.Title != nil {
		trimmed := strings.TrimSpace(*params.Title)
		if trimmed == "" {
			return ErrReminderTitleRequired
		}
		params.Title = &trimmed
	}
	if params.Date != nil {
		if _, err := time.Parse(models.DateLayout, *params.Date); err != nil {
			return ErrReminderDateTimeInvalid
		}
	}
	if params.Time != nil {
		if _, err := time.Parse(models.TimeLayout, *params.Time); err != nil {
			return ErrReminderDateTimeInvalid
		}
	}
	if params.NotificationMethod != nil && !models.IsValidNotificationMethod(*params.NotificationMethod) {
		return ErrInvalidNotificationMethod
	}
	if params.ReminderType != nil && !models.IsValidReminderType(*params.ReminderType) {
		return ErrInvalidReminderType
	}
	return nil
}
