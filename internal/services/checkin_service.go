package services

import (
	"context"
	"errors"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/dkoroteev/go-coachly/internal/models"
)

const checkInGreeting = "Good morning! How are you feeling today? Did you make progress on your goals yesterday?"

// coachReplies is the canned pool the simulated coach answers from.
// There is no AI behind this; a reply is picked at random.
var coachReplies = []string{
	"That's great to hear! What specific progress did you make?",
	"I understand. What were your priorities instead?",
	"Thanks for sharing. What's your plan for today?",
	"That's interesting! Tell me more about that.",
	"How did that make you feel?",
	"What can I help you with specifically today?",
}

type checkInServiceImpl struct {
	logger       zerolog.Logger
	pgPool       *pgxpool.Pool
	queryTimeout time.Duration
	pickReply    func() string
}

func NewCheckInService(
	logger zerolog.Logger,
	pgPool *pgxpool.Pool,
	queryTimeout time.Duration,
) CheckInService {
	return &checkInServiceImpl{
		logger:       logger,
		pgPool:       pgPool,
		queryTimeout: queryTimeout,
		pickReply: func() string {
			return coachReplies[rand.Intn(len(coachReplies))]
		},
	}
}

func (s *checkInServiceImpl) ListCheckIns(ctx context.Context, userID string) ([]models.CheckIn, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	const selectCheckInsByUserIDQuery = `
SELECT id,
       created_at
FROM check_ins
WHERE user_id = $1
ORDER BY created_at DESC
`
	rows, err := s.pgPool.Query(
		ctx,
		selectCheckInsByUserIDQuery,
		userID,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", userID).
			Msg("failed to select check-ins by user id")
		return nil, err
	}
	defer rows.Close()

	var checkIns []models.CheckIn
	for rows.Next() {
		checkIn := models.CheckIn{UserID: userID}
		err = rows.Scan(
			&checkIn.ID,
			&checkIn.CreatedAt,
		)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to scan check-in")
			return nil, err
		}
		checkIns = append(checkIns, checkIn)
	}

	err = rows.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, err
	}

	s.logger.Debug().
		Int("count", len(checkIns)).
		Str("user_id", userID).
		Msg("selected check-ins by user id")
	return checkIns, nil
}

func (s *checkInServiceImpl) CreateCheckIn(ctx context.Context, userID string) (*models.CheckIn, []models.Message, error) {
	checkInUUID, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate check-in uuid")
		return nil, nil, err
	}

	now := time.Now()
	checkIn := &models.CheckIn{
		ID:        checkInUUID.String(),
		UserID:    userID,
		CreatedAt: now,
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	tx, err := s.pgPool.Begin(ctx)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to begin transaction")
		return nil, nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	const insertCheckInQuery = `
INSERT INTO check_ins (id, user_id, created_at)
VALUES ($1, $2, $3)
`
	_, err = tx.Exec(
		ctx,
		insertCheckInQuery,
		checkIn.ID,
		checkIn.UserID,
		checkIn.CreatedAt,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", userID).
			Msg("failed to insert check-in")
		return nil, nil, err
	}

	greeting, err := insertMessage(ctx, tx, checkIn.ID, checkInGreeting, models.MessageSenderCoach, now)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert greeting message")
		return nil, nil, err
	}

	err = s.bumpStats(ctx, tx, userID, now)
	if err != nil {
		return nil, nil, err
	}

	err = tx.Commit(ctx)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to commit transaction")
		return nil, nil, err
	}

	s.logger.Info().
		Str("check_in_id", checkIn.ID).
		Str("user_id", userID).
		Msg("created check-in")
	return checkIn, []models.Message{*greeting}, nil
}

func (s *checkInServiceImpl) GetMessages(ctx context.Context, userID, checkInID string) ([]models.Message, error) {
	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	err := s.checkOwnership(ctx, userID, checkInID)
	if err != nil {
		return nil, err
	}

	const selectMessagesQuery = `
SELECT id,
       content,
       sender,
       created_at
FROM messages
WHERE check_in_id = $1
ORDER BY created_at
`
	rows, err := s.pgPool.Query(
		ctx,
		selectMessagesQuery,
		checkInID,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("check_in_id", checkInID).
			Msg("failed to select messages")
		return nil, err
	}
	defer rows.Close()

	var messages []models.Message
	for rows.Next() {
		message := models.Message{CheckInID: checkInID}
		err = rows.Scan(
			&message.ID,
			&message.Content,
			&message.Sender,
			&message.CreatedAt,
		)
		if err != nil {
			s.logger.Error().
				Err(err).
				Msg("failed to scan message")
			return nil, err
		}
		messages = append(messages, message)
	}

	err = rows.Err()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to iterate over rows")
		return nil, err
	}

	return messages, nil
}

func (s *checkInServiceImpl) AddMessage(ctx context.Context, userID, checkInID, content string) ([]models.Message, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrMessageContentMissing
	}

	ctx, cancel := context.WithTimeout(ctx, s.queryTimeout)
	defer cancel()

	err := s.checkOwnership(ctx, userID, checkInID)
	if err != nil {
		return nil, err
	}

	tx, err := s.pgPool.Begin(ctx)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to begin transaction")
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	now := time.Now()
	userMessage, err := insertMessage(ctx, tx, checkInID, content, models.MessageSenderUser, now)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("check_in_id", checkInID).
			Msg("failed to insert user message")
		return nil, err
	}

	// The coach reply lands one instant later to keep the thread
	// ordering stable under ORDER BY created_at.
	coachMessage, err := insertMessage(ctx, tx, checkInID, s.pickReply(), models.MessageSenderCoach, now.Add(time.Millisecond))
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("check_in_id", checkInID).
			Msg("failed to insert coach message")
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
		Str("check_in_id", checkInID).
		Str("user_id", userID).
		Msg("added message with coach reply")
	return []models.Message{*userMessage, *coachMessage}, nil
}

func (s *checkInServiceImpl) checkOwnership(ctx context.Context, userID, checkInID string) error {
	const selectCheckInQuery = `
SELECT 1
FROM check_ins
WHERE id = $1 AND user_id = $2
`
	var one int
	err := s.pgPool.QueryRow(
		ctx,
		selectCheckInQuery,
		checkInID,
		userID,
	).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn().
				Str("check_in_id", checkInID).
				Str("user_id", userID).
				Msg("check-in not found")
			return ErrCheckInNotFound
		}

		s.logger.Error().
			Err(err).
			Str("check_in_id", checkInID).
			Msg("failed to select check-in")
		return err
	}
	return nil
}

// bumpStats maintains the check-in counters: the streak grows when
// the previous check-in was yesterday, stays when it was today, and
// resets to 1 otherwise.
func (s *checkInServiceImpl) bumpStats(ctx context.Context, tx pgx.Tx, userID string, now time.Time) error {
	const selectStatsQuery = `
SELECT total_check_ins,
       current_streak,
       last_check_in
FROM user_stats
WHERE user_id = $1
FOR UPDATE
`
	var (
		totalCheckIns int
		currentStreak int
		lastCheckIn   *time.Time
	)
	err := tx.QueryRow(
		ctx,
		selectStatsQuery,
		userID,
	).Scan(
		&totalCheckIns,
		&currentStreak,
		&lastCheckIn,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", userID).
			Msg("failed to select user stats")
		return err
	}

	today := now.Truncate(24 * time.Hour)
	switch {
	case lastCheckIn == nil:
		currentStreak = 1
	case lastCheckIn.Truncate(24 * time.Hour).Equal(today):
		// Second check-in today, streak unchanged.
	case lastCheckIn.Truncate(24 * time.Hour).Equal(today.AddDate(0, 0, -1)):
		currentStreak++
	default:
		currentStreak = 1
	}

	const updateStatsQuery = `
UPDATE user_stats
SET total_check_ins = $1,
    current_streak = $2,
    last_check_in = $3,
    updated_at = $4
WHERE user_id = $5
`
	_, err = tx.Exec(
		ctx,
		updateStatsQuery,
		totalCheckIns+1,
		currentStreak,
		now,
		now,
		userID,
	)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", userID).
			Msg("failed to update user stats")
		return err
	}
	return nil
}

func insertMessage(ctx context.Context, tx pgx.Tx, checkInID, content, sender string, at time.Time) (*models.Message, error) {
	messageUUID, err := uuid.NewV7()
	if err != nil {
		return nil, err
	}

	message := &models.Message{
		ID:        messageUUID.String(),
		CheckInID: checkInID,
		Content:   content,
		Sender:    sender,
		CreatedAt: at,
	}

	const insertMessageQuery = `
INSERT INTO messages (id, check_in_id, content, sender, created_at)
VALUES ($1, $2, $3, $4, $5)
`
	_, err = tx.Exec(
		ctx,
		insertMessageQuery,
		message.ID,
		message.CheckInID,
		message.Content,
		message.Sender,
		message.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return message, nil
}
