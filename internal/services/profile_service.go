package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/dkoroteev/go-coachly/internal/models"
)

type profileServiceImpl struct {
	logger       zerolog.Logger
	pgPool       *pgxpool.Pool
	queryTimeout time.Duration
}

func NewProfileService(
	logger zerolog.Logger,
	pgPool *pgxpool.Pool,
	queryTimeout time.Duration,
) ProfileService {
	return &profileServiceImpl{
		logger:       logger,
		pgPool:       pgPool,
		queryTimeout: queryTimeout,
	}
}

func (s *profileServiceImpl) GetProfile(ctx context.Context, userID string) (*models.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	profile := &models.Profile{ID: userID}

	const selectProfileQuery = `
SELECT first_name,
       last_name,
       email,
       age,
       gender,
       job,
       whatsapp_number,
       avatar_url,
       created_at,
       updated_at
FROM profiles
WHERE id = $1
`
	err := s.pgPool.QueryRow(
		ctx,
		selectProfileQuery,
		profile.ID,
	).Scan(
		&profile.FirstName,
		&profile.LastName,
		&profile.Email,
		&profile.Age,
		&profile.Gender,
		&profile.Job,
		&profile.WhatsAppNumber,
		&profile.AvatarURL,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn().
				Str("user_id", userID).
				Msg("profile not found")
			return nil, ErrProfileNotFound
		}

		s.logger.Error().
			Err(err).
			Str("user_id", userID).
			Msg("failed to select profile")
		return nil, err
	}

	return profile, nil
}

func (s *profileServiceImpl) UpdateProfile(ctx context.Context, params UpdateProfileParams) (*models.Profile, error) {
	profile := &models.Profile{
		ID:        params.UserID,
		UpdatedAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	tx, err := s.pgPool.Begin(ctx)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to begin transaction")
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const updateProfileQuery = `
UPDATE profiles
SET first_name = COALESCE($1, first_name),
    last_name = COALESCE($2, last_name),
    age = COALESCE($3, age),
    gender = COALESCE($4, gender),
    job = COALESCE($5, job),
    whatsapp_number = COALESCE($6, whatsapp_number),
    avatar_url = COALESCE($7, avatar_url),
    updated_at = $8
WHERE id = $9
RETURNING first_name, last_name, email, age, gender, job, whatsapp_number, avatar_url, created_at
`
	err = tx.QueryRow(
		ctx,
		updateProfileQuery,
		params.FirstName,
		params.LastName,
		params.Age,
		params.Gender,
		params.Job,
		params.WhatsAppNumber,
		params.AvatarURL,
		profile.UpdatedAt,
		profile.ID,
	).Scan(
		&profile.FirstName,
		&profile.LastName,
		&profile.Email,
		&profile.Age,
		&profile.Gender,
		&profile.Job,
		&profile.WhatsAppNumber,
		&profile.AvatarURL,
		&profile.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn().
				Str("user_id", profile.ID).
				Msg("profile not found")
			return nil, ErrProfileNotFound
		}

		s.logger.Error().
			Err(err).
			Str("user_id", profile.ID).
			Msg("failed to update profile")
		return nil, err
	}

	const updateCompletionQuery = `
UPDATE user_stats
SET profile_completion = $1,
    updated_at = $2
WHERE user_id = $3
`
	_, err = tx.Exec(
		ctx,
		updateCompletionQuery,
		ProfileCompletion(profile),
		profile.UpdatedAt,
		profile.ID,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", profile.ID).
			Msg("failed to update profile completion")
		return nil, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to commit transaction")
		return nil, err
	}

	s.logger.Info().
		Str("user_id", profile.ID).
		Msg("updated profile")
	return profile, nil
}

func (s *profileServiceImpl) GetCoachingPreferences(ctx context.Context, userID string) (*models.CoachingPreferences, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	preferences := &models.CoachingPreferences{UserID: userID}

	const selectCoachingPreferencesQuery = `
SELECT id,
       coaching_style,
       motivation_style,
       personality_type,
       work_schedule,
       hobbies,
       created_at,
       updated_at
FROM coaching_preferences
WHERE user_id = $1
`
	err := s.pgPool.QueryRow(
		ctx,
		selectCoachingPreferencesQuery,
		userID,
	).Scan(
		&preferences.ID,
		&preferences.CoachingStyle,
		&preferences.MotivationStyle,
		&preferences.PersonalityType,
		&preferences.WorkSchedule,
		&preferences.Hobbies,
		&preferences.CreatedAt,
		&preferences.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Absent preferences are not an error: onboarding has
			// simply not happened yet.
			return nil, nil
		}

		s.logger.Error().
			Err(err).
			Str("user_id", userID).
			Msg("failed to select coaching preferences")
		return nil, err
	}

	return preferences, nil
}

func (s *profileServiceImpl) UpsertCoachingPreferences(ctx context.Context, params CoachingPreferencesParams) (*models.CoachingPreferences, error) {
	preferencesUUID, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate preferences uuid")
		return nil, err
	}

	now := time.Now()
	preferences := &models.CoachingPreferences{
		UserID:          params.UserID,
		CoachingStyle:   params.CoachingStyle,
		MotivationStyle: params.MotivationStyle,
		PersonalityType: params.PersonalityType,
		WorkSchedule:    params.WorkSchedule,
		Hobbies:         params.Hobbies,
		UpdatedAt:       now,
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	const upsertCoachingPreferencesQuery = `
INSERT INTO coaching_preferences (id,
                                  user_id,
                                  coaching_style,
                                  motivation_style,
                                  personality_type,
                                  work_schedule,
                                  hobbies,
                                  created_at,
                                  updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (user_id) DO UPDATE
SET coaching_style = EXCLUDED.coaching_style,
    motivation_style = EXCLUDED.motivation_style,
    personality_type = EXCLUDED.personality_type,
    work_schedule = EXCLUDED.work_schedule,
    hobbies = EXCLUDED.hobbies,
    updated_at = EXCLUDED.updated_at
RETURNING id, created_at
`
	err = s.pgPool.QueryRow(
		ctx,
		upsertCoachingPreferencesQuery,
		preferencesUUID.String(),
		preferences.UserID,
		preferences.CoachingStyle,
		preferences.MotivationStyle,
		preferences.PersonalityType,
		preferences.WorkSchedule,
		preferences.Hobbies,
		now,
		now,
	).Scan(
		&preferences.ID,
		&preferences.CreatedAt,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", preferences.UserID).
			Msg("failed to upsert coaching preferences")
		return nil, err
	}

	s.logger.Info().
		Str("user_id", preferences.UserID).
		Msg("saved coaching preferences")
	return preferences, nil
}

func (s *profileServiceImpl) GetNotificationPreferences(ctx context.Context, userID string) (*models.NotificationPreferences, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	preferences := &models.NotificationPreferences{UserID: userID}

	const selectNotificationPreferencesQuery = `
SELECT id,
       notification_methods,
       reminder_frequency,
       preferred_time,
       created_at,
       updated_at
FROM notification_preferences
WHERE user_id = $1
`
	err := s.pgPool.QueryRow(
		ctx,
		selectNotificationPreferencesQuery,
		userID,
	).Scan(
		&preferences.ID,
		&preferences.NotificationMethods,
		&preferences.ReminderFrequency,
		&preferences.PreferredTime,
		&preferences.CreatedAt,
		&preferences.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}

		s.logger.Error().
			Err(err).
			Str("user_id", userID).
			Msg("failed to select notification preferences")
		return nil, err
	}

	return preferences, nil
}

func (s *profileServiceImpl) UpsertNotificationPreferences(ctx context.Context, params NotificationPreferencesParams) (*models.NotificationPreferences, error) {
	for _, method := range params.NotificationMethods {
		if !models.IsValidNotificationMethod(method) {
			return nil, ErrInvalidNotificationMethod
		}
	}

	preferencesUUID, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate preferences uuid")
		return nil, err
	}

	now := time.Now()
	preferences := &models.NotificationPreferences{
		UserID:              params.UserID,
		NotificationMethods: params.NotificationMethods,
		ReminderFrequency:   params.ReminderFrequency,
		PreferredTime:       params.PreferredTime,
		UpdatedAt:           now,
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	const upsertNotificationPreferencesQuery = `
INSERT INTO notification_preferences (id,
                                      user_id,
                                      notification_methods,
                                      reminder_frequency,
                                      preferred_time,
                                      created_at,
                                      updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (user_id) DO UPDATE
SET notification_methods = EXCLUDED.notification_methods,
    reminder_frequency = EXCLUDED.reminder_frequency,
    preferred_time = EXCLUDED.preferred_time,
    updated_at = EXCLUDED.updated_at
RETURNING id, created_at
`
	err = s.pgPool.QueryRow(
		ctx,
		upsertNotificationPreferencesQuery,
		preferencesUUID.String(),
		preferences.UserID,
		preferences.NotificationMethods,
		preferences.ReminderFrequency,
		preferences.PreferredTime,
		now,
		now,
	).Scan(
		&preferences.ID,
		&preferences.CreatedAt,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", preferences.UserID).
			Msg("failed to upsert notification preferences")
		return nil, err
	}

	s.logger.Info().
		Str("user_id", preferences.UserID).
		Msg("saved notification preferences")
	return preferences, nil
}

func (s *profileServiceImpl) GetStats(ctx context.Context, userID string) (*models.UserStats, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	stats := &models.UserStats{UserID: userID}

	const selectStatsQuery = `
SELECT id,
       total_check_ins,
       current_streak,
       last_check_in,
       profile_completion,
       created_at,
       updated_at
FROM user_stats
WHERE user_id = $1
`
	err := s.pgPool.QueryRow(
		ctx,
		selectStatsQuery,
		userID,
	).Scan(
		&stats.ID,
		&stats.TotalCheckIns,
		&stats.CurrentStreak,
		&stats.LastCheckIn,
		&stats.ProfileCompletion,
		&stats.CreatedAt,
		&stats.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn().
				Str("user_id", userID).
				Msg("user stats not found")
			return nil, ErrProfileNotFound
		}

		s.logger.Error().
			Err(err).
			Str("user_id", userID).
			Msg("failed to select user stats")
		return nil, err
	}

	return stats, nil
}

// ProfileCompletion scores a profile from 0 to 100, 20 points per
// filled field the dashboard cares about.
func ProfileCompletion(profile *models.Profile) int {
	score := 0
	for _, field := range []string{
		profile.FirstName,
		profile.LastName,
		profile.Age,
		profile.Gender,
		profile.Job,
	} {
		if field != "" {
			score += 20
		}
	}
	return score
}
