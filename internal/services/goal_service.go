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

type goalServiceImpl struct {
	logger       zerolog.Logger
	pgPool       *pgxpool.Pool
	queryTimeout time.Duration
}

func NewGoalService(
	logger zerolog.Logger,
	pgPool *pgxpool.Pool,
	queryTimeout time.Duration,
) GoalService {
	return &goalServiceImpl{
		logger:       logger,
		pgPool:       pgPool,
		queryTimeout: queryTimeout,
	}
}

func (s *goalServiceImpl) ListGoals(ctx context.Context, userID string) ([]models.Goal, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	const selectGoalsByUserIDQuery = `
SELECT id,
       title,
       description,
       progress,
       completed,
       created_at,
       updated_at
FROM goals
WHERE user_id = $1
ORDER BY created_at DESC
`
	rows, err := s.pgPool.Query(
		ctx,
		selectGoalsByUserIDQuery,
		userID,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", userID).
			Msg("failed to select goals by user id")
		return nil, err
	}
	defer rows.Close()

	var goals []models.Goal
	for rows.Next() {
		goal := models.Goal{UserID: userID}
		err = rows.Scan(
			&goal.ID,
			&goal.Title,
			&goal.Description,
			&goal.Progress,
			&goal.Completed,
			&goal.CreatedAt,
			&goal.UpdatedAt,
		)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to scan goal")
			return nil, err
		}
		goals = append(goals, goal)
	}

	err = rows.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, err
	}

	s.logger.Debug().
		Int("count", len(goals)).
		Str("user_id", userID).
		Msg("selected goals by user id")
	return goals, nil
}

func (s *goalServiceImpl) CreateGoal(ctx context.Context, params CreateGoalParams) (*models.Goal, error) {
	params.Title = strings.TrimSpace(params.Title)
	if params.Title == "" {
		return nil, ErrGoalTitleRequired
	}

	goalUUID, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate goal uuid")
		return nil, err
	}

	now := time.Now()
	goal := &models.Goal{
		ID:          goalUUID.String(),
		UserID:      params.UserID,
		Title:       params.Title,
		Description: params.Description,
		Progress:    0,
		Completed:   false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	const insertGoalQuery = `
INSERT INTO goals (id,
                   user_id,
                   title,
                   description,
                   progress,
                   completed,
                   created_at,
                   updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`
	_, err = s.pgPool.Exec(
		ctx,
		insertGoalQuery,
		goal.ID,
		goal.UserID,
		goal.Title,
		goal.Description,
		goal.Progress,
		goal.Completed,
		goal.CreatedAt,
		goal.UpdatedAt,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", goal.UserID).
			Msg("failed to insert goal")
		return nil, err
	}

	s.logger.Info().
		Str("goal_id", goal.ID).
		Str("user_id", goal.UserID).
		Msg("created goal")
	return goal, nil
}

func (s *goalServiceImpl) UpdateGoal(ctx context.Context, params UpdateGoalParams) (*models.Goal, error) {
	if params.Title != nil {
		trimmed := strings.TrimSpace(*params.Title)
		if trimmed == "" {
			return nil, ErrGoalTitleRequired
		}
		params.Title = &trimmed
	}
	if params.Progress != nil && (*params.Progress < 0 || *params.Progress > 100) {
		return nil, ErrGoalProgressInvalid
	}

	goal := &models.Goal{
		ID:        params.ID,
		UserID:    params.UserID,
		UpdatedAt: time.Now(),
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	const updateGoalQuery = `
UPDATE goals
SET title = COALESCE($1, title),
    description = COALESCE($2, description),
    progress = COALESCE($3, progress),
    completed = COALESCE($4, completed),
    updated_at = $5
WHERE id = $6 AND user_id = $7
RETURNING title, description, progress, completed, created_at
`
	err := s.pgPool.QueryRow(
		ctx,
		updateGoalQuery,
		params.Title,
		params.Description,
		params.Progress,
		params.Completed,
		goal.UpdatedAt,
		goal.ID,
		goal.UserID,
	).Scan(
		&goal.Title,
		&goal.Description,
		&goal.Progress,
		&goal.Completed,
		&goal.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn().
				Str("goal_id", goal.ID).
				Str("user_id", goal.UserID).
				Msg("goal not found")
			return nil, ErrGoalNotFound
		}

		s.logger.Error().
			Err(err).
			Str("goal_id", goal.ID).
			Msg("failed to update goal")
		return nil, err
	}

	s.logger.Info().
		Str("goal_id", goal.ID).
		Str("user_id", goal.UserID).
		Msg("updated goal")
	return goal, nil
}

func (s *goalServiceImpl) DeleteGoal(ctx context.Context, userID, goalID string) error {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	const deleteGoalQuery = `
DELETE FROM goals
WHERE id = $1 AND user_id = $2
`
	tag, err := s.pgPool.Exec(
		ctx,
		deleteGoalQuery,
		goalID,
		userID,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("goal_id", goalID).
			Msg("failed to delete goal")
		return err
	}
	if tag.RowsAffected() == 0 {
		s.logger.Warn().
			Str("goal_id", goalID).
			Str("user_id", userID).
			Msg("goal not found")
		return ErrGoalNotFound
	}

	s.logger.Info().
		Str("goal_id", goalID).
		Str("user_id", userID).
		Msg("deleted goal")
	return nil
}
