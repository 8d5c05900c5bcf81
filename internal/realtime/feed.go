// Package realtime delivers reminder change events to connected
// clients. Postgres triggers publish a JSON payload on the
// reminder_events channel for every insert, update and delete; the
// feed listens on a dedicated connection and fans the events out to
// per-user subscribers. Clients without a subscription simply
// re-fetch, so losing an event is never fatal.
package realtime

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const channelName = "reminder_events"

// Event mirrors the payload built by the reminders notify trigger.
// Subscribers re-fetch the list on receipt; the event itself only
// says what changed.
type Event struct {
	Op         string `json:"op"`
	ReminderID string `json:"id"`
	UserID     string `json:"user_id"`
}

type Feed struct {
	logger zerolog.Logger
	pgPool *pgxpool.Pool

	mu          sync.Mutex
	subscribers map[string]map[chan Event]struct{}
}

func NewFeed(logger zerolog.Logger, pgPool *pgxpool.Pool) *Feed {
	return &Feed{
		logger:      logger,
		pgPool:      pgPool,
		subscribers: make(map[string]map[chan Event]struct{}),
	}
}

// Run listens for notifications until ctx is cancelled, reconnecting
// with a short backoff after connection failures.
func (f *Feed) Run(ctx context.Context) {
	for {
		err := f.listen(ctx)
		if ctx.Err() != nil {
			f.logger.Info().Msg("stopped reminder feed")
			return
		}
		f.logger.Error().
			Err(err).
			Msg("reminder feed listener failed, reconnecting")

		select {
		case <-ctx.Done():
			f.logger.Info().Msg("stopped reminder feed")
			return
		case <-time.After(time.Second):
		}
	}
}

func (f *Feed) listen(ctx context.Context) error {
	conn, err := f.pgPool.Acquire(ctx)
	if err != nil {
		return err
	}
	defer conn.Release()

	_, err = conn.Exec(ctx, "LISTEN "+channelName)
	if err != nil {
		return err
	}
	f.logger.Info().
		Str("channel", channelName).
		Msg("listening for reminder events")

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			return err
		}

		var event Event
		err = json.Unmarshal([]byte(notification.Payload), &event)
		if err != nil {
			f.logger.Error().
				Err(err).
				Str("payload", notification.Payload).
				Msg("failed to unmarshal reminder event")
			continue
		}

		f.dispatch(event)
	}
}

// Subscribe registers a listener for one user's events. The returned
// cancel func must be called when the client disconnects.
func (f *Feed) Subscribe(userID string) (<-chan Event, func()) {
	events := make(chan Event, 16)

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.subscribers[userID] == nil {
		f.subscribers[userID] = make(map[chan Event]struct{})
	}
	f.subscribers[userID][events] = struct{}{}

	cancel := func() {
		f.mu.Lock()
		defer f.mu.Unlock()

		listeners, ok := f.subscribers[userID]
		if !ok {
			return
		}
		if _, ok = listeners[events]; !ok {
			return
		}
		delete(listeners, events)
		if len(listeners) == 0 {
			delete(f.subscribers, userID)
		}
		close(events)
	}
	return events, cancel
}

func (f *Feed) dispatch(event Event) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for events := range f.subscribers[event.UserID] {
		select {
		case events <- event:
		default:
			// Slow consumer: drop rather than stall the listener. The
			// client falls back to a re-fetch.
			f.logger.Warn().
				Str("user_id", event.UserID).
				Msg("dropped reminder event for slow subscriber")
		}
	}
}
